package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

// slugTable mimics a table with a unique slug column.
type slugTable struct {
	mu     sync.Mutex
	nextID int64
	slugs  map[int64]string

	// claimBeforeWrite holds slugs a concurrent writer commits right after
	// the next ListSlugs call, one per write attempt.
	claimBeforeWrite []string
	listCalls        int
}

func newSlugTable() *slugTable {
	return &slugTable{slugs: map[int64]string{}}
}

func (t *slugTable) ListSlugs(_ context.Context, base string, excludeID int64) (map[string]struct{}, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listCalls++
	out := map[string]struct{}{}
	for id, s := range t.slugs {
		if id == excludeID {
			continue
		}
		if s == base || strings.HasPrefix(s, base+"-") {
			out[s] = struct{}{}
		}
	}
	return out, nil
}

// claim inserts a row for the slug, failing like the unique constraint would.
func (t *slugTable) claim(id int64, s string) (int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.claimBeforeWrite) > 0 {
		t.nextID++
		t.slugs[t.nextID] = t.claimBeforeWrite[0]
		t.claimBeforeWrite = t.claimBeforeWrite[1:]
	}
	for other, existing := range t.slugs {
		if other != id && existing == s {
			return 0, fmt.Errorf("%w: test_slug_key", apperrors.ErrSlugConflict)
		}
	}
	if id == 0 {
		t.nextID++
		id = t.nextID
	}
	t.slugs[id] = s
	return id, nil
}

func (t *slugTable) remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.slugs[id]; !ok {
		return false
	}
	delete(t.slugs, id)
	return true
}

type fakeDepartments struct {
	*slugTable
	rows map[int64]models.Department
}

func newFakeDepartments() *fakeDepartments {
	return &fakeDepartments{slugTable: newSlugTable(), rows: map[int64]models.Department{}}
}

func (f *fakeDepartments) List(_ context.Context, _ helpers.SortSpec) ([]models.Department, error) {
	out := make([]models.Department, 0, len(f.rows))
	for _, d := range f.rows {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeDepartments) GetByID(_ context.Context, id int64) (*models.Department, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("department not found")
	}
	return &d, nil
}

func (f *fakeDepartments) GetBySlug(_ context.Context, s string) (*models.Department, error) {
	for _, d := range f.rows {
		if d.Slug == s {
			d := d
			return &d, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("department not found")
}

func (f *fakeDepartments) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.rows[id]
	return ok, nil
}

func (f *fakeDepartments) Create(_ context.Context, d *models.Department) error {
	id, err := f.claim(0, d.Slug)
	if err != nil {
		return err
	}
	d.ID = id
	f.rows[id] = *d
	return nil
}

func (f *fakeDepartments) Update(_ context.Context, d *models.Department) error {
	if _, err := f.claim(d.ID, d.Slug); err != nil {
		return err
	}
	f.rows[d.ID] = *d
	return nil
}

func (f *fakeDepartments) Delete(_ context.Context, id int64) error {
	if !f.remove(id) {
		return apperrors.NewResourceNotFoundError("department not found")
	}
	delete(f.rows, id)
	return nil
}

type fakeFaculty struct {
	rows []models.FacultyMember
}

func (f *fakeFaculty) ListByDepartment(_ context.Context, departmentID int64) ([]models.FacultyMember, error) {
	var out []models.FacultyMember
	for _, m := range f.rows {
		if m.DepartmentID == departmentID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeFaculty) Create(_ context.Context, m *models.FacultyMember) error {
	m.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *m)
	return nil
}

func (f *fakeFaculty) Delete(_ context.Context, departmentID, id int64) error {
	for i, m := range f.rows {
		if m.ID == id && m.DepartmentID == departmentID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("faculty member not found")
}

type fakeNews struct {
	*slugTable
	rows map[int64]models.News
}

func newFakeNews() *fakeNews {
	return &fakeNews{slugTable: newSlugTable(), rows: map[int64]models.News{}}
}

func (f *fakeNews) List(_ context.Context, _ helpers.SortSpec, limit uint64) ([]models.News, error) {
	out := make([]models.News, 0, len(f.rows))
	for _, n := range f.rows {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && uint64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNews) GetByID(_ context.Context, id int64) (*models.News, error) {
	n, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("news not found")
	}
	return &n, nil
}

func (f *fakeNews) GetBySlug(_ context.Context, s string) (*models.News, error) {
	for _, n := range f.rows {
		if n.Slug == s {
			n := n
			return &n, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("news not found")
}

func (f *fakeNews) Create(_ context.Context, n *models.News) error {
	id, err := f.claim(0, n.Slug)
	if err != nil {
		return err
	}
	n.ID = id
	f.rows[id] = *n
	return nil
}

func (f *fakeNews) Update(_ context.Context, n *models.News) error {
	if _, err := f.claim(n.ID, n.Slug); err != nil {
		return err
	}
	f.rows[n.ID] = *n
	return nil
}

func (f *fakeNews) Delete(_ context.Context, id int64) error {
	if !f.remove(id) {
		return apperrors.NewResourceNotFoundError("news not found")
	}
	delete(f.rows, id)
	return nil
}

type fakeCourses struct {
	*slugTable
	rows map[int64]models.Course
}

func newFakeCourses() *fakeCourses {
	return &fakeCourses{slugTable: newSlugTable(), rows: map[int64]models.Course{}}
}

func (f *fakeCourses) List(_ context.Context, _ helpers.SortSpec) ([]models.Course, error) {
	out := make([]models.Course, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	c, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("course not found")
	}
	return &c, nil
}

func (f *fakeCourses) GetBySlug(_ context.Context, s string) (*models.Course, error) {
	for _, c := range f.rows {
		if c.Slug == s {
			c := c
			return &c, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("course not found")
}

func (f *fakeCourses) Create(_ context.Context, c *models.Course) error {
	id, err := f.claim(0, c.Slug)
	if err != nil {
		return err
	}
	c.ID = id
	f.rows[id] = *c
	return nil
}

func (f *fakeCourses) Update(_ context.Context, c *models.Course) error {
	if _, err := f.claim(c.ID, c.Slug); err != nil {
		return err
	}
	f.rows[c.ID] = *c
	return nil
}

func (f *fakeCourses) Delete(_ context.Context, id int64) error {
	if !f.remove(id) {
		return apperrors.NewResourceNotFoundError("course not found")
	}
	delete(f.rows, id)
	return nil
}

type fakeEvents struct {
	rows []models.Event
}

func (f *fakeEvents) List(_ context.Context, _ helpers.SortSpec, limit uint64) ([]models.Event, error) {
	out := append([]models.Event(nil), f.rows...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if limit > 0 && uint64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEvents) GetByID(_ context.Context, id int64) (*models.Event, error) {
	for _, e := range f.rows {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("event not found")
}

func (f *fakeEvents) Create(_ context.Context, e *models.Event) error {
	e.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *e)
	return nil
}

func (f *fakeEvents) Update(_ context.Context, e *models.Event) error {
	for i := range f.rows {
		if f.rows[i].ID == e.ID {
			f.rows[i] = *e
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("event not found")
}

func (f *fakeEvents) Delete(_ context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("event not found")
}

type fakeBooks struct {
	rows []models.LibraryBook
}

func (f *fakeBooks) List(_ context.Context, category string, _ helpers.SortSpec) ([]models.LibraryBook, error) {
	var out []models.LibraryBook
	for _, b := range f.rows {
		if category == "" || b.Category == category {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBooks) GetByID(_ context.Context, id int64) (*models.LibraryBook, error) {
	for _, b := range f.rows {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("book not found")
}

func (f *fakeBooks) Create(_ context.Context, b *models.LibraryBook) error {
	b.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, *b)
	return nil
}

func (f *fakeBooks) Delete(_ context.Context, id int64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("book not found")
}

type fakeExams struct {
	exams   []models.Exam
	results []models.ExamResult
	rules   []models.Rule
}

func (f *fakeExams) ListExams(_ context.Context) ([]models.Exam, error) {
	return f.exams, nil
}

func (f *fakeExams) GetExam(_ context.Context, id int64) (*models.Exam, error) {
	for _, e := range f.exams {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("exam not found")
}

func (f *fakeExams) CreateExam(_ context.Context, e *models.Exam) error {
	e.ID = int64(len(f.exams) + 1)
	f.exams = append(f.exams, *e)
	return nil
}

func (f *fakeExams) DeleteExam(_ context.Context, id int64) error {
	for i := range f.exams {
		if f.exams[i].ID == id {
			f.exams = append(f.exams[:i], f.exams[i+1:]...)
			return nil
		}
	}
	return apperrors.NewResourceNotFoundError("exam not found")
}

func (f *fakeExams) ListResults(_ context.Context) ([]models.ExamResult, error) {
	return f.results, nil
}

func (f *fakeExams) CreateResult(ctx context.Context, res *models.ExamResult, check func(exam *models.Exam) error) error {
	exam, err := f.GetExam(ctx, res.ExamID)
	if err != nil {
		return apperrors.NewReferenceNotFoundError("examId", "exam does not exist")
	}
	if err := check(exam); err != nil {
		return err
	}
	res.ID = int64(len(f.results) + 1)
	f.results = append(f.results, *res)
	return nil
}

func (f *fakeExams) DeleteResult(_ context.Context, id int64) error {
	return nil
}

func (f *fakeExams) ListRules(_ context.Context, visibleOnly bool) ([]models.Rule, error) {
	var out []models.Rule
	for _, r := range f.rules {
		if !visibleOnly || r.Visible {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeExams) CreateRule(_ context.Context, rule *models.Rule) error {
	rule.ID = int64(len(f.rules) + 1)
	f.rules = append(f.rules, *rule)
	return nil
}

func (f *fakeExams) DeleteRule(_ context.Context, id int64) error {
	return nil
}

// fakeContent implements only what the tests call. Anything else panics on
// the nil embedded interface.
type fakeContent struct {
	SiteContentStore

	principals []models.PrincipalMessage
	downloads  []models.ApplicationDownload
	facilities []models.Facility
	gallery    []models.GalleryImage
	sorts      []helpers.SortSpec

	created []interface{}
	removed []models.ContentKind
}

// ordered applies the id order requested by the service.
func ordered[T any](rows []T, id func(T) int64, spec helpers.SortSpec, limit uint64) []T {
	out := append([]T(nil), rows...)
	desc := spec.Desc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return id(out[i]) > id(out[j])
		}
		return id(out[i]) < id(out[j])
	})
	if limit > 0 && uint64(len(out)) > limit {
		out = out[:limit]
	}
	return out
}

func (f *fakeContent) PrincipalMessages(_ context.Context, spec helpers.SortSpec, limit uint64) ([]models.PrincipalMessage, error) {
	f.sorts = append(f.sorts, spec)
	return ordered(f.principals, func(p models.PrincipalMessage) int64 { return p.ID }, spec, limit), nil
}

func (f *fakeContent) ApplicationDownloads(_ context.Context, spec helpers.SortSpec, limit uint64) ([]models.ApplicationDownload, error) {
	f.sorts = append(f.sorts, spec)
	return ordered(f.downloads, func(d models.ApplicationDownload) int64 { return d.ID }, spec, limit), nil
}

func (f *fakeContent) Facilities(_ context.Context) ([]models.Facility, error) {
	return append([]models.Facility(nil), f.facilities...), nil
}

func (f *fakeContent) HostelIntros(_ context.Context, _ helpers.SortSpec, _ uint64) ([]models.HostelIntro, error) {
	return nil, nil
}

func (f *fakeContent) HostelFacilities(_ context.Context) ([]models.HostelFacility, error) {
	return nil, nil
}

func (f *fakeContent) CreateGalleryImage(_ context.Context, g *models.GalleryImage) error {
	g.ID = int64(len(f.gallery) + 1)
	f.gallery = append(f.gallery, *g)
	return nil
}

// add records a created block and returns its id.
func (f *fakeContent) add(row interface{}) int64 {
	f.created = append(f.created, row)
	return int64(len(f.created))
}

func (f *fakeContent) CreatePrincipalMessage(_ context.Context, m *models.PrincipalMessage) error {
	m.ID = f.add(m)
	return nil
}

func (f *fakeContent) CreateAcademicExcellence(_ context.Context, a *models.AcademicExcellence) error {
	a.ID = f.add(a)
	return nil
}

func (f *fakeContent) CreateTestimonial(_ context.Context, t *models.Testimonial) error {
	t.ID = f.add(t)
	return nil
}

func (f *fakeContent) CreateFacility(_ context.Context, fc *models.Facility) error {
	fc.ID = f.add(fc)
	return nil
}

func (f *fakeContent) CreateHostelIntro(_ context.Context, h *models.HostelIntro) error {
	h.ID = f.add(h)
	return nil
}

func (f *fakeContent) CreateHostelFacility(_ context.Context, h *models.HostelFacility) error {
	h.ID = f.add(h)
	return nil
}

func (f *fakeContent) CreateAdmissionStep(_ context.Context, st *models.AdmissionStep) error {
	st.ID = f.add(st)
	return nil
}

func (f *fakeContent) CreateFeeStructure(_ context.Context, fs *models.FeeStructure) error {
	fs.ID = f.add(fs)
	return nil
}

func (f *fakeContent) CreateApplicationDownload(_ context.Context, a *models.ApplicationDownload) error {
	a.ID = f.add(a)
	return nil
}

func (f *fakeContent) CreateAdmission(_ context.Context, a *models.Admission) error {
	a.ID = f.add(a)
	return nil
}

func (f *fakeContent) CreatePhilosophyBlock(_ context.Context, p *models.PhilosophyBlock) error {
	p.ID = f.add(p)
	return nil
}

func (f *fakeContent) CreateStatistic(_ context.Context, st *models.Statistic) error {
	st.ID = f.add(st)
	return nil
}

func (f *fakeContent) CreateHighlightSection(_ context.Context, h *models.HighlightSection) error {
	h.ID = f.add(h)
	return nil
}

func (f *fakeContent) CreateContactInformation(_ context.Context, c *models.ContactInformation) error {
	c.ID = f.add(c)
	return nil
}

func (f *fakeContent) DeleteContent(_ context.Context, kind models.ContentKind, id int64) error {
	if id > int64(len(f.created)) {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", kind, id))
	}
	f.removed = append(f.removed, kind)
	return nil
}

type fakeInquiries struct {
	contacts     []models.ContactMessage
	visits       []models.VisitRequest
	applications []models.OnlineApplication
}

func (f *fakeInquiries) CreateContactMessage(_ context.Context, m *models.ContactMessage) error {
	m.ID = int64(len(f.contacts) + 1)
	f.contacts = append(f.contacts, *m)
	return nil
}

func (f *fakeInquiries) CreateVisitRequest(_ context.Context, v *models.VisitRequest) error {
	v.ID = int64(len(f.visits) + 1)
	f.visits = append(f.visits, *v)
	return nil
}

func (f *fakeInquiries) CreateApplication(_ context.Context, a *models.OnlineApplication) error {
	a.ID = int64(len(f.applications) + 1)
	f.applications = append(f.applications, *a)
	return nil
}

func (f *fakeInquiries) ListContactMessages(_ context.Context, _, _ int) ([]models.ContactMessage, int64, error) {
	return f.contacts, int64(len(f.contacts)), nil
}

func (f *fakeInquiries) ListVisitRequests(_ context.Context, _, _ int) ([]models.VisitRequest, int64, error) {
	return f.visits, int64(len(f.visits)), nil
}

func (f *fakeInquiries) ListApplications(_ context.Context, _, _ int) ([]models.OnlineApplication, int64, error) {
	return f.applications, int64(len(f.applications)), nil
}

type recordingNotifier struct {
	subjects []string
	err      error
}

func (n *recordingNotifier) SendInquiryNotification(subject string, _ map[string]string) error {
	n.subjects = append(n.subjects, subject)
	return n.err
}
