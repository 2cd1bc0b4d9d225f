package controllers

import (
	"context"

	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/app/services"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// Service contracts used by the controllers. The services package satisfies
// them; tests use stubs.

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
}

type DepartmentService interface {
	List(ctx context.Context, sort helpers.SortSpec) ([]models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetWithFaculty(ctx context.Context, slug string) (*models.Department, error)
	Create(ctx context.Context, req dto.DepartmentRequest) (*models.Department, error)
	Update(ctx context.Context, id int64, req dto.DepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
	ListFaculty(ctx context.Context, departmentID int64) ([]models.FacultyMember, error)
	AddFacultyMember(ctx context.Context, departmentID int64, req dto.FacultyMemberRequest) (*models.FacultyMember, error)
	DeleteFacultyMember(ctx context.Context, departmentID, memberID int64) error
}

type NewsService interface {
	List(ctx context.Context, sort helpers.SortSpec) ([]models.News, error)
	Latest(ctx context.Context, n int) ([]models.News, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
	GetByID(ctx context.Context, id int64) (*models.News, error)
	Create(ctx context.Context, req dto.NewsRequest) (*models.News, error)
	Update(ctx context.Context, id int64, req dto.NewsRequest) (*models.News, error)
	Delete(ctx context.Context, id int64) error
}

type CourseService interface {
	List(ctx context.Context, sort helpers.SortSpec) ([]models.Course, error)
	GetBySlug(ctx context.Context, slug string) (*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, req dto.CourseRequest) (*models.Course, error)
	Update(ctx context.Context, id int64, req dto.CourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type EventService interface {
	ListCategorized(ctx context.Context) ([]models.CategorizedEvent, error)
	GetByID(ctx context.Context, id int64) (*models.CategorizedEvent, error)
	Create(ctx context.Context, req dto.EventRequest) (*models.Event, error)
	Update(ctx context.Context, id int64, req dto.EventRequest) (*models.Event, error)
	Delete(ctx context.Context, id int64) error
}

type LibraryService interface {
	Browse(ctx context.Context, query, category string, page int) (*services.LibraryPage, error)
	GetBook(ctx context.Context, id int64) (*models.LibraryBook, error)
	CreateBook(ctx context.Context, req dto.BookRequest) (*models.LibraryBook, error)
	DeleteBook(ctx context.Context, id int64) error
}

type ExamService interface {
	Overview(ctx context.Context) (*services.ExamOverview, error)
	ListExams(ctx context.Context) ([]models.Exam, error)
	CreateExam(ctx context.Context, req dto.ExamRequest) (*models.Exam, error)
	DeleteExam(ctx context.Context, id int64) error
	ListResults(ctx context.Context) ([]models.ExamResult, error)
	CreateResult(ctx context.Context, req dto.ExamResultRequest) (*models.ExamResult, error)
	DeleteResult(ctx context.Context, id int64) error
	ListRules(ctx context.Context) ([]models.Rule, error)
	CreateRule(ctx context.Context, req dto.RuleRequest) (*models.Rule, error)
	DeleteRule(ctx context.Context, id int64) error
}

type SiteService interface {
	Home(ctx context.Context) (*services.HomePage, error)
	About(ctx context.Context) (*services.AboutPage, error)
	Facilities(ctx context.Context) (*services.FacilitiesPage, error)
	Admission(ctx context.Context) (*services.AdmissionPage, error)
	ContactInformation(ctx context.Context) (*models.ContactInformation, error)
	Gallery(ctx context.Context) ([]models.GalleryImage, error)
	Singleton(ctx context.Context, kind models.SingletonKind) (interface{}, error)
	AddGalleryImage(ctx context.Context, req dto.GalleryImageRequest) (*models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id int64) error

	ListContent(ctx context.Context, kind models.ContentKind) (interface{}, error)
	DeleteContent(ctx context.Context, kind models.ContentKind, id int64) error
	CreatePrincipalMessage(ctx context.Context, req dto.PrincipalMessageRequest) (*models.PrincipalMessage, error)
	CreateAcademicExcellence(ctx context.Context, req dto.AcademicExcellenceRequest) (*models.AcademicExcellence, error)
	CreateTestimonial(ctx context.Context, req dto.TestimonialRequest) (*models.Testimonial, error)
	CreateFacility(ctx context.Context, req dto.FacilityRequest) (*models.Facility, error)
	CreateHostelIntro(ctx context.Context, req dto.HostelIntroRequest) (*models.HostelIntro, error)
	CreateHostelFacility(ctx context.Context, req dto.HostelFacilityRequest) (*models.HostelFacility, error)
	CreateAdmissionStep(ctx context.Context, req dto.AdmissionStepRequest) (*models.AdmissionStep, error)
	CreateFeeStructure(ctx context.Context, req dto.FeeStructureRequest) (*models.FeeStructure, error)
	CreateApplicationDownload(ctx context.Context, req dto.ApplicationDownloadRequest) (*models.ApplicationDownload, error)
	CreateAdmission(ctx context.Context, req dto.AdmissionRequest) (*models.Admission, error)
	CreatePhilosophyBlock(ctx context.Context, req dto.PhilosophyBlockRequest) (*models.PhilosophyBlock, error)
	CreateStatistic(ctx context.Context, req dto.StatisticRequest) (*models.Statistic, error)
	CreateHighlightSection(ctx context.Context, req dto.HighlightSectionRequest) (*models.HighlightSection, error)
	CreateContactInformation(ctx context.Context, req dto.ContactInformationRequest) (*models.ContactInformation, error)
}

type InquiryService interface {
	SubmitContact(ctx context.Context, form dto.ContactForm) (*models.ContactMessage, error)
	SubmitVisitRequest(ctx context.Context, form dto.VisitRequestForm) (*models.VisitRequest, error)
	SubmitApplication(ctx context.Context, form dto.OnlineApplicationForm) (*models.OnlineApplication, error)
	ListContactMessages(ctx context.Context, page, size int) ([]models.ContactMessage, int64, error)
	ListVisitRequests(ctx context.Context, page, size int) ([]models.VisitRequest, int64, error)
	ListApplications(ctx context.Context, page, size int) ([]models.OnlineApplication, int64, error)
}
