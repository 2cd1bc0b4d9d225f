package controllers

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/app/services"
	"github.com/yigit/sitehub/internal/middleware"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/catalog"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Minimal page templates exposing the values the handlers pass in.
const testTemplates = `
{{define "404.html"}}not found{{end}}
{{define "500.html"}}server error{{end}}
{{define "departments.html"}}{{.Title}}|{{range .Departments}}{{.Slug}};{{end}}{{end}}
{{define "department_detail.html"}}{{.Department.Name}}|{{range .Department.FacultyMembers}}{{.Name}};{{end}}{{end}}
{{define "news_detail.html"}}{{.Article.Title}}|{{len .Latest}}{{end}}
{{define "event_detail.html"}}{{.Event.Title}}|{{.Event.Category}}{{end}}
{{define "library.html"}}{{.Library.Query}}|{{.Library.Category}}|{{.Library.Books.Number}}/{{.Library.Books.TotalPages}}{{end}}
{{define "contact.html"}}{{.Active}}|{{.Form.Name}}|{{range $k, $v := .Errors}}{{$k}}={{$v}};{{end}}|{{.Sent}}{{end}}
{{define "facilities.html"}}{{.Form.Interest}}|{{range $k, $v := .Errors}}{{$k}}={{$v}};{{end}}|{{.Sent}}{{end}}
{{define "apply_online.html"}}{{.Form.YearCompleted}}|{{range $k, $v := .Errors}}{{$k}}={{$v}};{{end}}|{{len .Programs}}{{end}}
`

func newTestRouter() *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	r.NoRoute(middleware.NotFoundPage)
	return r
}

func do(r http.Handler, method, target, body, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type stubDepartments struct {
	DepartmentService
	list     []models.Department
	sort     helpers.SortSpec
	bySlug   map[string]*models.Department
	created  *dto.DepartmentRequest
	createFn func(req dto.DepartmentRequest) (*models.Department, error)
	deleted  []int64
}

func (s *stubDepartments) List(_ context.Context, sort helpers.SortSpec) ([]models.Department, error) {
	s.sort = sort
	return s.list, nil
}

func (s *stubDepartments) GetWithFaculty(_ context.Context, slug string) (*models.Department, error) {
	if d, ok := s.bySlug[slug]; ok {
		return d, nil
	}
	return nil, apperrors.NewResourceNotFoundError("department not found")
}

func (s *stubDepartments) Create(_ context.Context, req dto.DepartmentRequest) (*models.Department, error) {
	s.created = &req
	return s.createFn(req)
}

func (s *stubDepartments) Delete(_ context.Context, id int64) error {
	if id == 404 {
		return apperrors.NewResourceNotFoundError("department not found")
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubNews struct {
	NewsService
	article *models.News
	latest  []models.News
}

func (s *stubNews) GetBySlug(_ context.Context, slug string) (*models.News, error) {
	if s.article != nil && s.article.Slug == slug {
		return s.article, nil
	}
	return nil, apperrors.NewResourceNotFoundError("news not found")
}

func (s *stubNews) Latest(_ context.Context, n int) ([]models.News, error) {
	if n < len(s.latest) {
		return s.latest[:n], nil
	}
	return s.latest, nil
}

type stubEvents struct {
	EventService
	event *models.CategorizedEvent
}

func (s *stubEvents) GetByID(_ context.Context, id int64) (*models.CategorizedEvent, error) {
	if s.event != nil && s.event.ID == id {
		return s.event, nil
	}
	return nil, apperrors.NewResourceNotFoundError("event not found")
}

type stubLibrary struct {
	LibraryService
	query, category string
	page            int
}

func (s *stubLibrary) Browse(_ context.Context, query, category string, page int) (*services.LibraryPage, error) {
	s.query, s.category, s.page = query, category, page
	return &services.LibraryPage{
		Books:    catalog.Page[models.LibraryBook]{Number: 2, TotalPages: 2},
		Query:    query,
		Category: category,
	}, nil
}

type stubSite struct {
	SiteService
	contact   *models.ContactInformation
	singleton interface{}
	kinds     []models.SingletonKind

	contentErr error
	created    []models.ContentKind
	listed     []models.ContentKind
	removed    []int64
}

// record notes which create method a request reached.
func (s *stubSite) record(kind models.ContentKind) error {
	s.created = append(s.created, kind)
	return s.contentErr
}

func (s *stubSite) ListContent(_ context.Context, kind models.ContentKind) (interface{}, error) {
	s.listed = append(s.listed, kind)
	return []models.Testimonial{{ID: 1, Name: "Ayesha"}}, nil
}

func (s *stubSite) DeleteContent(_ context.Context, _ models.ContentKind, id int64) error {
	if id > 1 {
		return apperrors.NewResourceNotFoundError("testimonial not found")
	}
	s.removed = append(s.removed, id)
	return nil
}

func (s *stubSite) CreatePrincipalMessage(_ context.Context, req dto.PrincipalMessageRequest) (*models.PrincipalMessage, error) {
	if err := s.record(models.ContentPrincipalMessage); err != nil {
		return nil, err
	}
	return &models.PrincipalMessage{ID: 1, Message: req.Message}, nil
}

func (s *stubSite) CreateAcademicExcellence(_ context.Context, req dto.AcademicExcellenceRequest) (*models.AcademicExcellence, error) {
	if err := s.record(models.ContentAcademicExcellence); err != nil {
		return nil, err
	}
	return &models.AcademicExcellence{ID: 1, Heading: req.Heading}, nil
}

func (s *stubSite) CreateTestimonial(_ context.Context, req dto.TestimonialRequest) (*models.Testimonial, error) {
	if err := s.record(models.ContentTestimonial); err != nil {
		return nil, err
	}
	return &models.Testimonial{ID: 1, Name: req.Name}, nil
}

func (s *stubSite) CreateFacility(_ context.Context, req dto.FacilityRequest) (*models.Facility, error) {
	if err := s.record(models.ContentFacility); err != nil {
		return nil, err
	}
	return &models.Facility{ID: 1, Title: req.Title}, nil
}

func (s *stubSite) CreateHostelIntro(_ context.Context, req dto.HostelIntroRequest) (*models.HostelIntro, error) {
	if err := s.record(models.ContentHostelIntro); err != nil {
		return nil, err
	}
	return &models.HostelIntro{ID: 1, Heading: req.Heading}, nil
}

func (s *stubSite) CreateHostelFacility(_ context.Context, req dto.HostelFacilityRequest) (*models.HostelFacility, error) {
	if err := s.record(models.ContentHostelFacility); err != nil {
		return nil, err
	}
	return &models.HostelFacility{ID: 1, Title: req.Title}, nil
}

func (s *stubSite) CreateAdmissionStep(_ context.Context, req dto.AdmissionStepRequest) (*models.AdmissionStep, error) {
	if err := s.record(models.ContentAdmissionStep); err != nil {
		return nil, err
	}
	return &models.AdmissionStep{ID: 1, Title: req.Title}, nil
}

func (s *stubSite) CreateFeeStructure(_ context.Context, req dto.FeeStructureRequest) (*models.FeeStructure, error) {
	if err := s.record(models.ContentFeeStructure); err != nil {
		return nil, err
	}
	return &models.FeeStructure{ID: 1, Program: req.Program}, nil
}

func (s *stubSite) CreateApplicationDownload(_ context.Context, req dto.ApplicationDownloadRequest) (*models.ApplicationDownload, error) {
	if err := s.record(models.ContentApplicationDownload); err != nil {
		return nil, err
	}
	return &models.ApplicationDownload{ID: 1, FormFile: req.FormFile}, nil
}

func (s *stubSite) CreateAdmission(_ context.Context, req dto.AdmissionRequest) (*models.Admission, error) {
	if err := s.record(models.ContentAdmission); err != nil {
		return nil, err
	}
	return &models.Admission{ID: 1, Department: req.Department}, nil
}

func (s *stubSite) CreatePhilosophyBlock(_ context.Context, req dto.PhilosophyBlockRequest) (*models.PhilosophyBlock, error) {
	if err := s.record(models.ContentPhilosophyBlock); err != nil {
		return nil, err
	}
	return &models.PhilosophyBlock{ID: 1, Title: req.Title}, nil
}

func (s *stubSite) CreateStatistic(_ context.Context, req dto.StatisticRequest) (*models.Statistic, error) {
	if err := s.record(models.ContentStatistic); err != nil {
		return nil, err
	}
	return &models.Statistic{ID: 1, Title: req.Title, Count: req.Count}, nil
}

func (s *stubSite) CreateHighlightSection(_ context.Context, req dto.HighlightSectionRequest) (*models.HighlightSection, error) {
	if err := s.record(models.ContentHighlightSection); err != nil {
		return nil, err
	}
	return &models.HighlightSection{ID: 1, Heading: req.Heading}, nil
}

func (s *stubSite) CreateContactInformation(_ context.Context, req dto.ContactInformationRequest) (*models.ContactInformation, error) {
	if err := s.record(models.ContentContactInformation); err != nil {
		return nil, err
	}
	return &models.ContactInformation{ID: 1, Email: req.Email}, nil
}

func (s *stubSite) ContactInformation(context.Context) (*models.ContactInformation, error) {
	return s.contact, nil
}

func (s *stubSite) Facilities(context.Context) (*services.FacilitiesPage, error) {
	return &services.FacilitiesPage{VisitInterests: models.VisitInterests}, nil
}

func (s *stubSite) Singleton(_ context.Context, kind models.SingletonKind) (interface{}, error) {
	s.kinds = append(s.kinds, kind)
	return s.singleton, nil
}

type stubInquiries struct {
	InquiryService
	err         error
	contact     *dto.ContactForm
	visit       *dto.VisitRequestForm
	application *dto.OnlineApplicationForm
	total       int64
	page, size  int
}

func (s *stubInquiries) SubmitContact(_ context.Context, form dto.ContactForm) (*models.ContactMessage, error) {
	s.contact = &form
	if s.err != nil {
		return nil, s.err
	}
	return &models.ContactMessage{ID: 1, Name: form.Name}, nil
}

func (s *stubInquiries) SubmitVisitRequest(_ context.Context, form dto.VisitRequestForm) (*models.VisitRequest, error) {
	s.visit = &form
	if s.err != nil {
		return nil, s.err
	}
	return &models.VisitRequest{ID: 1, Name: form.Name}, nil
}

func (s *stubInquiries) SubmitApplication(_ context.Context, form dto.OnlineApplicationForm) (*models.OnlineApplication, error) {
	s.application = &form
	if s.err != nil {
		return nil, s.err
	}
	return &models.OnlineApplication{ID: 1, FullName: form.FullName}, nil
}

func (s *stubInquiries) ListContactMessages(_ context.Context, page, size int) ([]models.ContactMessage, int64, error) {
	s.page, s.size = page, size
	return []models.ContactMessage{{ID: 3}}, s.total, nil
}
