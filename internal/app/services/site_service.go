package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// Number of items shown in the home page teasers.
const (
	HomeNewsCount   = 6
	HomeEventsCount = 3
)

// HomePage is the content of the landing page.
type HomePage struct {
	PrincipalMessage   *models.PrincipalMessage
	AcademicExcellence *models.AcademicExcellence
	ContactInformation *models.ContactInformation
	Testimonials       []models.Testimonial
	Departments        []models.Department
	Facilities         []models.Facility
	News               []models.News
	LatestEvents       []models.CategorizedEvent
	Courses            []models.Course
}

// AboutPage is the content of the about page.
type AboutPage struct {
	PrincipalMessage *models.PrincipalMessage
	Highlight        *models.HighlightSection
	Philosophy       []models.PhilosophyBlock
	Statistics       []models.Statistic
	Testimonials     []models.Testimonial
}

// FacilitiesPage lists the labs and the hostel.
type FacilitiesPage struct {
	Labs             []models.Facility
	HostelIntro      *models.HostelIntro
	HostelFacilities []models.HostelFacility
	VisitInterests   models.ChoiceSet
}

// AdmissionPage holds the admission steps, fees and the current form.
type AdmissionPage struct {
	Steps       []models.AdmissionStep
	Fees        []models.FeeStructure
	Programs    []models.Admission
	Application *models.ApplicationDownload
}

// SiteService assembles the informational pages and resolves singleton blocks.
type SiteService struct {
	content     SiteContentStore
	departments DepartmentStore
	news        NewsStore
	courses     CourseStore
	events      *EventService
	logger      zerolog.Logger
}

// NewSiteService creates a new site service
func NewSiteService(content SiteContentStore, departments DepartmentStore, news NewsStore, courses CourseStore, events *EventService, logger zerolog.Logger) *SiteService {
	return &SiteService{
		content:     content,
		departments: departments,
		news:        news,
		courses:     courses,
		events:      events,
		logger:      logger,
	}
}

// pickSingleton returns the row chosen by the kind's policy, or nil when the
// table is empty. Extra rows are reported at warn level.
func pickSingleton[T any](ctx context.Context, log zerolog.Logger, kind models.SingletonKind, fetch func(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]T, error)) (*T, error) {
	order := helpers.Asc("id")
	policy := models.SingletonPolicies[kind]
	if policy == models.PickLatest {
		order = helpers.Desc("id")
	}

	rows, err := fetch(ctx, order, 2)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", kind, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) > 1 {
		log.Warn().Str("kind", string(kind)).Str("policy", string(policy)).
			Msg("Several rows stored for a single content block, using policy pick")
	}
	return &rows[0], nil
}

// Singleton resolves one of the single-row content blocks. The result is a
// pointer to the matching model type, or nil when nothing is stored.
func (s *SiteService) Singleton(ctx context.Context, kind models.SingletonKind) (interface{}, error) {
	switch kind {
	case models.SingletonPrincipalMessage:
		v, err := s.PrincipalMessage(ctx)
		return orNil(v, err)
	case models.SingletonAcademicExcellence:
		v, err := pickSingleton(ctx, s.logger, kind, s.content.AcademicExcellence)
		return orNil(v, err)
	case models.SingletonHostelIntro:
		v, err := pickSingleton(ctx, s.logger, kind, s.content.HostelIntros)
		return orNil(v, err)
	case models.SingletonHighlightSection:
		v, err := pickSingleton(ctx, s.logger, kind, s.content.HighlightSections)
		return orNil(v, err)
	case models.SingletonContactInformation:
		v, err := s.ContactInformation(ctx)
		return orNil(v, err)
	case models.SingletonApplicationDownload:
		v, err := pickSingleton(ctx, s.logger, kind, s.content.ApplicationDownloads)
		return orNil(v, err)
	}
	return nil, fmt.Errorf("unknown content block %q", kind)
}

// orNil keeps a missing block an untyped nil once boxed.
func orNil[T any](v *T, err error) (interface{}, error) {
	if err != nil || v == nil {
		return nil, err
	}
	return v, nil
}

// PrincipalMessage returns the principal's message block.
func (s *SiteService) PrincipalMessage(ctx context.Context) (*models.PrincipalMessage, error) {
	return pickSingleton(ctx, s.logger, models.SingletonPrincipalMessage, s.content.PrincipalMessages)
}

// ContactInformation returns the contact details block.
func (s *SiteService) ContactInformation(ctx context.Context) (*models.ContactInformation, error) {
	return pickSingleton(ctx, s.logger, models.SingletonContactInformation, s.content.ContactInformation)
}

// Gallery returns every gallery picture in upload order.
func (s *SiteService) Gallery(ctx context.Context) ([]models.GalleryImage, error) {
	return s.content.GalleryImages(ctx)
}

// Home assembles the landing page.
func (s *SiteService) Home(ctx context.Context) (*HomePage, error) {
	page := &HomePage{}
	var err error

	if page.PrincipalMessage, err = s.PrincipalMessage(ctx); err != nil {
		return nil, err
	}
	if page.AcademicExcellence, err = pickSingleton(ctx, s.logger, models.SingletonAcademicExcellence, s.content.AcademicExcellence); err != nil {
		return nil, err
	}
	if page.ContactInformation, err = s.ContactInformation(ctx); err != nil {
		return nil, err
	}
	if page.Testimonials, err = s.content.Testimonials(ctx); err != nil {
		return nil, err
	}
	if page.Facilities, err = s.content.Facilities(ctx); err != nil {
		return nil, err
	}
	if page.Departments, err = s.departments.List(ctx, helpers.Asc("name")); err != nil {
		return nil, err
	}
	if page.News, err = s.news.List(ctx, DefaultNewsOrder, HomeNewsCount); err != nil {
		return nil, err
	}
	if page.LatestEvents, err = s.events.Latest(ctx, HomeEventsCount); err != nil {
		return nil, err
	}
	if page.Courses, err = s.courses.List(ctx, helpers.Asc("title")); err != nil {
		return nil, err
	}
	return page, nil
}

// About assembles the about page.
func (s *SiteService) About(ctx context.Context) (*AboutPage, error) {
	page := &AboutPage{}
	var err error

	if page.PrincipalMessage, err = s.PrincipalMessage(ctx); err != nil {
		return nil, err
	}
	if page.Highlight, err = pickSingleton(ctx, s.logger, models.SingletonHighlightSection, s.content.HighlightSections); err != nil {
		return nil, err
	}
	if page.Philosophy, err = s.content.PhilosophyBlocks(ctx); err != nil {
		return nil, err
	}
	if page.Statistics, err = s.content.Statistics(ctx); err != nil {
		return nil, err
	}
	if page.Testimonials, err = s.content.Testimonials(ctx); err != nil {
		return nil, err
	}
	return page, nil
}

// Facilities assembles the facilities page. Labs are listed by lab type.
func (s *SiteService) Facilities(ctx context.Context) (*FacilitiesPage, error) {
	labs, err := s.content.Facilities(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(labs, func(i, j int) bool { return labs[i].Name < labs[j].Name })

	intro, err := pickSingleton(ctx, s.logger, models.SingletonHostelIntro, s.content.HostelIntros)
	if err != nil {
		return nil, err
	}
	hostel, err := s.content.HostelFacilities(ctx)
	if err != nil {
		return nil, err
	}
	return &FacilitiesPage{Labs: labs, HostelIntro: intro, HostelFacilities: hostel, VisitInterests: models.VisitInterests}, nil
}

// Admission assembles the admission page. The application form shown is the
// most recently uploaded one.
func (s *SiteService) Admission(ctx context.Context) (*AdmissionPage, error) {
	page := &AdmissionPage{}
	var err error

	if page.Steps, err = s.content.AdmissionSteps(ctx); err != nil {
		return nil, err
	}
	if page.Fees, err = s.content.FeeStructures(ctx); err != nil {
		return nil, err
	}
	if page.Programs, err = s.content.Admissions(ctx); err != nil {
		return nil, err
	}
	if page.Application, err = pickSingleton(ctx, s.logger, models.SingletonApplicationDownload, s.content.ApplicationDownloads); err != nil {
		return nil, err
	}
	return page, nil
}

// AddGalleryImage stores a gallery picture.
func (s *SiteService) AddGalleryImage(ctx context.Context, req dto.GalleryImageRequest) (*models.GalleryImage, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	image := &models.GalleryImage{Image: req.Image, Caption: req.Caption}
	if err := s.content.CreateGalleryImage(ctx, image); err != nil {
		return nil, fmt.Errorf("error creating gallery image: %w", err)
	}
	return image, nil
}

// DeleteGalleryImage removes a gallery picture.
func (s *SiteService) DeleteGalleryImage(ctx context.Context, id int64) error {
	return s.content.DeleteGalleryImage(ctx, id)
}
