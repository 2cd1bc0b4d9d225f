package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// Site content tables.
const (
	TablePrincipalMessages    = "principal_messages"
	TableAcademicExcellence   = "academic_excellence"
	TableTestimonials         = "testimonials"
	TableFacilities           = "facilities"
	TableHostelIntros         = "hostel_intros"
	TableHostelFacilities     = "hostel_facilities"
	TableAdmissionSteps       = "admission_steps"
	TableFeeStructures        = "fee_structures"
	TableApplicationDownloads = "application_downloads"
	TableAdmissions           = "admissions"
	TablePhilosophyBlocks     = "philosophy_blocks"
	TableStatistics           = "statistics"
	TableHighlightSections    = "highlight_sections"
	TableContactInformation   = "contact_information"
	TableGalleryImages        = "gallery_images"
)

var siteTables = map[string]struct{}{
	TablePrincipalMessages: {}, TableAcademicExcellence: {}, TableTestimonials: {},
	TableFacilities: {}, TableHostelIntros: {}, TableHostelFacilities: {},
	TableAdmissionSteps: {}, TableFeeStructures: {}, TableApplicationDownloads: {},
	TableAdmissions: {}, TablePhilosophyBlocks: {}, TableStatistics: {},
	TableHighlightSections: {}, TableContactInformation: {}, TableGalleryImages: {},
}

// contentTables maps the admin API content kinds to their tables.
var contentTables = map[models.ContentKind]string{
	models.ContentPrincipalMessage:    TablePrincipalMessages,
	models.ContentAcademicExcellence:  TableAcademicExcellence,
	models.ContentTestimonial:         TableTestimonials,
	models.ContentFacility:            TableFacilities,
	models.ContentHostelIntro:         TableHostelIntros,
	models.ContentHostelFacility:      TableHostelFacilities,
	models.ContentAdmissionStep:       TableAdmissionSteps,
	models.ContentFeeStructure:        TableFeeStructures,
	models.ContentApplicationDownload: TableApplicationDownloads,
	models.ContentAdmission:           TableAdmissions,
	models.ContentPhilosophyBlock:     TablePhilosophyBlocks,
	models.ContentStatistic:           TableStatistics,
	models.ContentHighlightSection:    TableHighlightSections,
	models.ContentContactInformation:  TableContactInformation,
}

var idOrder = map[string]string{"id": "id"}

// SiteContentRepository reads and writes the editable page blocks.
type SiteContentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSiteContentRepository creates a new site content repository
func NewSiteContentRepository(db *pgxpool.Pool) *SiteContentRepository {
	return &SiteContentRepository{db: db, sb: newBuilder()}
}

func fetch[T any](ctx context.Context, r *SiteContentRepository, table string, columns []string, sort helpers.SortSpec, limit uint64, scan func(row pgx.CollectableRow) (T, error)) ([]T, error) {
	query := r.sb.Select(columns...).From(table).OrderBy(orderBy(sort, idOrder, helpers.Asc("id")))
	if limit > 0 {
		query = query.Limit(limit)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s query: %w", table, err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", table, err)
	}
	return items, nil
}

// Count returns the number of rows in one of the site content tables.
func (r *SiteContentRepository) Count(ctx context.Context, table string) (int64, error) {
	if _, ok := siteTables[table]; !ok {
		return 0, fmt.Errorf("unknown site content table %q", table)
	}
	return countRows(ctx, r.db, r.sb, table)
}

func (r *SiteContentRepository) insert(ctx context.Context, table string, values map[string]interface{}) (int64, error) {
	id, err := insertReturningID(ctx, r.db, r.sb, table, values)
	if err != nil {
		return 0, mapWriteError(err, "")
	}
	return id, nil
}

// --- singletons ---

func (r *SiteContentRepository) PrincipalMessages(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.PrincipalMessage, error) {
	return fetch(ctx, r, TablePrincipalMessages, []string{"id", "title", "subtitle", "message", "image"}, sort, limit,
		func(row pgx.CollectableRow) (models.PrincipalMessage, error) {
			var m models.PrincipalMessage
			err := row.Scan(&m.ID, &m.Title, &m.Subtitle, &m.Message, &m.Image)
			return m, err
		})
}

func (r *SiteContentRepository) AcademicExcellence(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.AcademicExcellence, error) {
	return fetch(ctx, r, TableAcademicExcellence, []string{
		"id", "background_image", "heading", "subheading", "search_placeholder",
		"students_enrolled", "academic_programs", "employment_rate",
	}, sort, limit, func(row pgx.CollectableRow) (models.AcademicExcellence, error) {
		var a models.AcademicExcellence
		err := row.Scan(&a.ID, &a.BackgroundImage, &a.Heading, &a.Subheading, &a.SearchPlaceholder,
			&a.StudentsEnrolled, &a.AcademicPrograms, &a.EmploymentRate)
		return a, err
	})
}

func (r *SiteContentRepository) HostelIntros(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.HostelIntro, error) {
	return fetch(ctx, r, TableHostelIntros, []string{"id", "heading", "description", "image"}, sort, limit,
		func(row pgx.CollectableRow) (models.HostelIntro, error) {
			var h models.HostelIntro
			err := row.Scan(&h.ID, &h.Heading, &h.Description, &h.Image)
			return h, err
		})
}

func (r *SiteContentRepository) HighlightSections(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.HighlightSection, error) {
	return fetch(ctx, r, TableHighlightSections, []string{
		"id", "heading", "subheading", "description", "background_image", "button_text", "button_url",
	}, sort, limit, func(row pgx.CollectableRow) (models.HighlightSection, error) {
		var h models.HighlightSection
		err := row.Scan(&h.ID, &h.Heading, &h.Subheading, &h.Description, &h.BackgroundImage, &h.ButtonText, &h.ButtonURL)
		return h, err
	})
}

func (r *SiteContentRepository) ContactInformation(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.ContactInformation, error) {
	return fetch(ctx, r, TableContactInformation, []string{
		"id", "address", "phone", "email", "facebook_link", "twitter_link", "linkedin_link", "google_plus_link",
	}, sort, limit, func(row pgx.CollectableRow) (models.ContactInformation, error) {
		var c models.ContactInformation
		var fb, tw, li, gp sql.NullString
		err := row.Scan(&c.ID, &c.Address, &c.Phone, &c.Email, &fb, &tw, &li, &gp)
		c.FacebookLink = helpers.StringOrEmpty(fb)
		c.TwitterLink = helpers.StringOrEmpty(tw)
		c.LinkedinLink = helpers.StringOrEmpty(li)
		c.GooglePlusLink = helpers.StringOrEmpty(gp)
		return c, err
	})
}

func (r *SiteContentRepository) ApplicationDownloads(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.ApplicationDownload, error) {
	return fetch(ctx, r, TableApplicationDownloads, []string{"id", "intake_season", "description", "form_file"}, sort, limit,
		func(row pgx.CollectableRow) (models.ApplicationDownload, error) {
			var a models.ApplicationDownload
			err := row.Scan(&a.ID, &a.IntakeSeason, &a.Description, &a.FormFile)
			return a, err
		})
}

// --- lists, always in insertion order ---

func (r *SiteContentRepository) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	return fetch(ctx, r, TableTestimonials, []string{"id", "name", "role", "message", "image"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.Testimonial, error) {
			var t models.Testimonial
			err := row.Scan(&t.ID, &t.Name, &t.Role, &t.Message, &t.Image)
			return t, err
		})
}

func (r *SiteContentRepository) Facilities(ctx context.Context) ([]models.Facility, error) {
	return fetch(ctx, r, TableFacilities, []string{"id", "name", "title", "description", "image", "features"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.Facility, error) {
			var f models.Facility
			err := row.Scan(&f.ID, &f.Name, &f.Title, &f.Description, &f.Image, &f.Features)
			return f, err
		})
}

func (r *SiteContentRepository) HostelFacilities(ctx context.Context) ([]models.HostelFacility, error) {
	return fetch(ctx, r, TableHostelFacilities, []string{"id", "title", "description", "image", "features"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.HostelFacility, error) {
			var h models.HostelFacility
			err := row.Scan(&h.ID, &h.Title, &h.Description, &h.Image, &h.Features)
			return h, err
		})
}

func (r *SiteContentRepository) AdmissionSteps(ctx context.Context) ([]models.AdmissionStep, error) {
	return fetch(ctx, r, TableAdmissionSteps, []string{"id", "title", "icon_class", "description"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.AdmissionStep, error) {
			var s models.AdmissionStep
			err := row.Scan(&s.ID, &s.Title, &s.IconClass, &s.Description)
			return s, err
		})
}

func (r *SiteContentRepository) FeeStructures(ctx context.Context) ([]models.FeeStructure, error) {
	return fetch(ctx, r, TableFeeStructures, []string{"id", "department", "program", "fee_range", "duration"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.FeeStructure, error) {
			var f models.FeeStructure
			err := row.Scan(&f.ID, &f.Department, &f.Program, &f.FeeRange, &f.Duration)
			return f, err
		})
}

func (r *SiteContentRepository) Admissions(ctx context.Context) ([]models.Admission, error) {
	return fetch(ctx, r, TableAdmissions, []string{"id", "department", "program", "duration", "eligibility"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.Admission, error) {
			var a models.Admission
			err := row.Scan(&a.ID, &a.Department, &a.Program, &a.Duration, &a.Eligibility)
			return a, err
		})
}

func (r *SiteContentRepository) PhilosophyBlocks(ctx context.Context) ([]models.PhilosophyBlock, error) {
	return fetch(ctx, r, TablePhilosophyBlocks, []string{"id", "title", "description", "icon"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.PhilosophyBlock, error) {
			var p models.PhilosophyBlock
			err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Icon)
			return p, err
		})
}

func (r *SiteContentRepository) Statistics(ctx context.Context) ([]models.Statistic, error) {
	return fetch(ctx, r, TableStatistics, []string{"id", "title", "count", "color"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.Statistic, error) {
			var s models.Statistic
			err := row.Scan(&s.ID, &s.Title, &s.Count, &s.Color)
			return s, err
		})
}

func (r *SiteContentRepository) GalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	return fetch(ctx, r, TableGalleryImages, []string{"id", "image", "caption"}, helpers.Asc("id"), 0,
		func(row pgx.CollectableRow) (models.GalleryImage, error) {
			var g models.GalleryImage
			err := row.Scan(&g.ID, &g.Image, &g.Caption)
			return g, err
		})
}

// --- writes ---

func (r *SiteContentRepository) CreatePrincipalMessage(ctx context.Context, m *models.PrincipalMessage) (err error) {
	m.ID, err = r.insert(ctx, TablePrincipalMessages, map[string]interface{}{
		"title": m.Title, "subtitle": m.Subtitle, "message": m.Message, "image": m.Image,
	})
	return err
}

func (r *SiteContentRepository) CreateAcademicExcellence(ctx context.Context, a *models.AcademicExcellence) (err error) {
	a.ID, err = r.insert(ctx, TableAcademicExcellence, map[string]interface{}{
		"background_image": a.BackgroundImage, "heading": a.Heading, "subheading": a.Subheading,
		"search_placeholder": a.SearchPlaceholder, "students_enrolled": a.StudentsEnrolled,
		"academic_programs": a.AcademicPrograms, "employment_rate": a.EmploymentRate,
	})
	return err
}

func (r *SiteContentRepository) CreateTestimonial(ctx context.Context, t *models.Testimonial) (err error) {
	t.ID, err = r.insert(ctx, TableTestimonials, map[string]interface{}{
		"name": t.Name, "role": t.Role, "message": t.Message, "image": t.Image,
	})
	return err
}

func (r *SiteContentRepository) CreateFacility(ctx context.Context, f *models.Facility) (err error) {
	f.ID, err = r.insert(ctx, TableFacilities, map[string]interface{}{
		"name": f.Name, "title": f.Title, "description": f.Description, "image": f.Image, "features": f.Features,
	})
	return err
}

func (r *SiteContentRepository) CreateHostelIntro(ctx context.Context, h *models.HostelIntro) (err error) {
	h.ID, err = r.insert(ctx, TableHostelIntros, map[string]interface{}{
		"heading": h.Heading, "description": h.Description, "image": h.Image,
	})
	return err
}

func (r *SiteContentRepository) CreateHostelFacility(ctx context.Context, h *models.HostelFacility) (err error) {
	h.ID, err = r.insert(ctx, TableHostelFacilities, map[string]interface{}{
		"title": h.Title, "description": h.Description, "image": h.Image, "features": h.Features,
	})
	return err
}

func (r *SiteContentRepository) CreateAdmissionStep(ctx context.Context, s *models.AdmissionStep) (err error) {
	s.ID, err = r.insert(ctx, TableAdmissionSteps, map[string]interface{}{
		"title": s.Title, "icon_class": s.IconClass, "description": s.Description,
	})
	return err
}

func (r *SiteContentRepository) CreateFeeStructure(ctx context.Context, f *models.FeeStructure) (err error) {
	f.ID, err = r.insert(ctx, TableFeeStructures, map[string]interface{}{
		"department": f.Department, "program": f.Program, "fee_range": f.FeeRange, "duration": f.Duration,
	})
	return err
}

func (r *SiteContentRepository) CreateApplicationDownload(ctx context.Context, a *models.ApplicationDownload) (err error) {
	a.ID, err = r.insert(ctx, TableApplicationDownloads, map[string]interface{}{
		"intake_season": a.IntakeSeason, "description": a.Description, "form_file": a.FormFile,
	})
	return err
}

func (r *SiteContentRepository) CreateAdmission(ctx context.Context, a *models.Admission) (err error) {
	a.ID, err = r.insert(ctx, TableAdmissions, map[string]interface{}{
		"department": a.Department, "program": a.Program, "duration": a.Duration, "eligibility": a.Eligibility,
	})
	return err
}

func (r *SiteContentRepository) CreatePhilosophyBlock(ctx context.Context, p *models.PhilosophyBlock) (err error) {
	p.ID, err = r.insert(ctx, TablePhilosophyBlocks, map[string]interface{}{
		"title": p.Title, "description": p.Description, "icon": p.Icon,
	})
	return err
}

func (r *SiteContentRepository) CreateStatistic(ctx context.Context, s *models.Statistic) (err error) {
	s.ID, err = r.insert(ctx, TableStatistics, map[string]interface{}{
		"title": s.Title, "count": s.Count, "color": s.Color,
	})
	return err
}

func (r *SiteContentRepository) CreateHighlightSection(ctx context.Context, h *models.HighlightSection) (err error) {
	h.ID, err = r.insert(ctx, TableHighlightSections, map[string]interface{}{
		"heading": h.Heading, "subheading": h.Subheading, "description": h.Description,
		"background_image": h.BackgroundImage, "button_text": h.ButtonText, "button_url": h.ButtonURL,
	})
	return err
}

func (r *SiteContentRepository) CreateContactInformation(ctx context.Context, c *models.ContactInformation) (err error) {
	c.ID, err = r.insert(ctx, TableContactInformation, map[string]interface{}{
		"address": c.Address, "phone": c.Phone, "email": c.Email,
		"facebook_link":    helpers.GetContentNullString(c.FacebookLink),
		"twitter_link":     helpers.GetContentNullString(c.TwitterLink),
		"linkedin_link":    helpers.GetContentNullString(c.LinkedinLink),
		"google_plus_link": helpers.GetContentNullString(c.GooglePlusLink),
	})
	return err
}

func (r *SiteContentRepository) CreateGalleryImage(ctx context.Context, g *models.GalleryImage) (err error) {
	g.ID, err = r.insert(ctx, TableGalleryImages, map[string]interface{}{
		"image": g.Image, "caption": g.Caption,
	})
	return err
}

// DeleteContent removes one row of a content kind.
func (r *SiteContentRepository) DeleteContent(ctx context.Context, kind models.ContentKind, id int64) error {
	table, ok := contentTables[kind]
	if !ok {
		return fmt.Errorf("unknown content kind %q", kind)
	}
	return deleteByID(ctx, r.db, r.sb, table, strings.ReplaceAll(string(kind), "_", " "), id)
}

// DeleteGalleryImage removes a gallery picture.
func (r *SiteContentRepository) DeleteGalleryImage(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, TableGalleryImages, "gallery image", id)
}
