package services

import (
	"context"

	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// The interfaces below are the persistence contracts the services depend on.
// The repositories package satisfies them against PostgreSQL.

// SlugLister lists the stored slugs that could collide with base, skipping
// the row excludeID.
type SlugLister interface {
	ListSlugs(ctx context.Context, base string, excludeID int64) (map[string]struct{}, error)
}

type DepartmentStore interface {
	SlugLister
	List(ctx context.Context, sort helpers.SortSpec) ([]models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetBySlug(ctx context.Context, slug string) (*models.Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, d *models.Department) error
	Update(ctx context.Context, d *models.Department) error
	Delete(ctx context.Context, id int64) error
}

type FacultyMemberStore interface {
	ListByDepartment(ctx context.Context, departmentID int64) ([]models.FacultyMember, error)
	Create(ctx context.Context, m *models.FacultyMember) error
	Delete(ctx context.Context, departmentID, id int64) error
}

type NewsStore interface {
	SlugLister
	List(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.News, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
	Create(ctx context.Context, n *models.News) error
	Update(ctx context.Context, n *models.News) error
	Delete(ctx context.Context, id int64) error
}

type CourseStore interface {
	SlugLister
	List(ctx context.Context, sort helpers.SortSpec) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
	Create(ctx context.Context, c *models.Course) error
	Update(ctx context.Context, c *models.Course) error
	Delete(ctx context.Context, id int64) error
}

type EventStore interface {
	List(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id int64) error
}

type BookStore interface {
	List(ctx context.Context, category string, sort helpers.SortSpec) ([]models.LibraryBook, error)
	GetByID(ctx context.Context, id int64) (*models.LibraryBook, error)
	Create(ctx context.Context, b *models.LibraryBook) error
	Delete(ctx context.Context, id int64) error
}

type ExamStore interface {
	ListExams(ctx context.Context) ([]models.Exam, error)
	GetExam(ctx context.Context, id int64) (*models.Exam, error)
	CreateExam(ctx context.Context, e *models.Exam) error
	DeleteExam(ctx context.Context, id int64) error
	ListResults(ctx context.Context) ([]models.ExamResult, error)
	CreateResult(ctx context.Context, res *models.ExamResult, check func(exam *models.Exam) error) error
	DeleteResult(ctx context.Context, id int64) error
	ListRules(ctx context.Context, visibleOnly bool) ([]models.Rule, error)
	CreateRule(ctx context.Context, rule *models.Rule) error
	DeleteRule(ctx context.Context, id int64) error
}

type SiteContentStore interface {
	Count(ctx context.Context, table string) (int64, error)

	PrincipalMessages(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.PrincipalMessage, error)
	AcademicExcellence(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.AcademicExcellence, error)
	HostelIntros(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.HostelIntro, error)
	HighlightSections(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.HighlightSection, error)
	ContactInformation(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.ContactInformation, error)
	ApplicationDownloads(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.ApplicationDownload, error)

	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	Facilities(ctx context.Context) ([]models.Facility, error)
	HostelFacilities(ctx context.Context) ([]models.HostelFacility, error)
	AdmissionSteps(ctx context.Context) ([]models.AdmissionStep, error)
	FeeStructures(ctx context.Context) ([]models.FeeStructure, error)
	Admissions(ctx context.Context) ([]models.Admission, error)
	PhilosophyBlocks(ctx context.Context) ([]models.PhilosophyBlock, error)
	Statistics(ctx context.Context) ([]models.Statistic, error)
	GalleryImages(ctx context.Context) ([]models.GalleryImage, error)

	CreatePrincipalMessage(ctx context.Context, m *models.PrincipalMessage) error
	CreateAcademicExcellence(ctx context.Context, a *models.AcademicExcellence) error
	CreateTestimonial(ctx context.Context, t *models.Testimonial) error
	CreateFacility(ctx context.Context, f *models.Facility) error
	CreateHostelIntro(ctx context.Context, h *models.HostelIntro) error
	CreateHostelFacility(ctx context.Context, h *models.HostelFacility) error
	CreateAdmissionStep(ctx context.Context, s *models.AdmissionStep) error
	CreateFeeStructure(ctx context.Context, f *models.FeeStructure) error
	CreateApplicationDownload(ctx context.Context, a *models.ApplicationDownload) error
	CreateAdmission(ctx context.Context, a *models.Admission) error
	CreatePhilosophyBlock(ctx context.Context, p *models.PhilosophyBlock) error
	CreateStatistic(ctx context.Context, s *models.Statistic) error
	CreateHighlightSection(ctx context.Context, h *models.HighlightSection) error
	CreateContactInformation(ctx context.Context, c *models.ContactInformation) error
	DeleteContent(ctx context.Context, kind models.ContentKind, id int64) error

	CreateGalleryImage(ctx context.Context, g *models.GalleryImage) error
	DeleteGalleryImage(ctx context.Context, id int64) error
}

type InquiryStore interface {
	CreateContactMessage(ctx context.Context, m *models.ContactMessage) error
	CreateVisitRequest(ctx context.Context, v *models.VisitRequest) error
	CreateApplication(ctx context.Context, a *models.OnlineApplication) error
	ListContactMessages(ctx context.Context, page, size int) ([]models.ContactMessage, int64, error)
	ListVisitRequests(ctx context.Context, page, size int) ([]models.VisitRequest, int64, error)
	ListApplications(ctx context.Context, page, size int) ([]models.OnlineApplication, int64, error)
}
