package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// ExamOverview is everything the examination page shows.
type ExamOverview struct {
	Departments []models.Department // each with its Exams
	Results     []models.ExamResult
	Rules       []models.Rule
}

// ExamService handles exam schedules, results and rules
type ExamService struct {
	examRepo       ExamStore
	departmentRepo DepartmentStore
	logger         zerolog.Logger
	loc            *time.Location
}

// NewExamService creates a new exam service
func NewExamService(examRepo ExamStore, departmentRepo DepartmentStore, loc *time.Location, logger zerolog.Logger) *ExamService {
	if loc == nil {
		loc = time.UTC
	}
	return &ExamService{examRepo: examRepo, departmentRepo: departmentRepo, logger: logger, loc: loc}
}

// Overview returns departments with their exams, every published result with
// its exam, and the visible rules by sort order then creation time.
func (s *ExamService) Overview(ctx context.Context) (*ExamOverview, error) {
	departments, err := s.departmentRepo.List(ctx, helpers.Asc("name"))
	if err != nil {
		return nil, fmt.Errorf("error loading departments: %w", err)
	}
	exams, err := s.examRepo.ListExams(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading exams: %w", err)
	}

	byDepartment := make(map[int64][]models.Exam)
	for _, e := range exams {
		byDepartment[e.DepartmentID] = append(byDepartment[e.DepartmentID], e)
	}
	for i := range departments {
		departments[i].Exams = byDepartment[departments[i].ID]
	}

	results, err := s.examRepo.ListResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading exam results: %w", err)
	}
	rules, err := s.examRepo.ListRules(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("error loading rules: %w", err)
	}

	return &ExamOverview{Departments: departments, Results: results, Rules: rules}, nil
}

// ListExams returns every exam by start date.
func (s *ExamService) ListExams(ctx context.Context) ([]models.Exam, error) {
	return s.examRepo.ListExams(ctx)
}

// CreateExam schedules an exam for an existing department.
func (s *ExamService) CreateExam(ctx context.Context, req dto.ExamRequest) (*models.Exam, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	verr := apperrors.NewValidationError(nil)
	start, err := helpers.ParseDate(req.StartDate, s.loc)
	if err != nil {
		verr.Add("startDate", "Enter a valid date (YYYY-MM-DD).")
	}
	end, err := helpers.ParseDate(req.EndDate, s.loc)
	if err != nil {
		verr.Add("endDate", "Enter a valid date (YYYY-MM-DD).")
	}
	if !verr.HasErrors() && end.Before(start) {
		verr.Add("endDate", "End date cannot be earlier than start date.")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	exists, err := s.departmentRepo.Exists(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewReferenceNotFoundError("departmentId", "department does not exist")
	}

	exam := &models.Exam{
		Title:        strings.TrimSpace(req.Title),
		DepartmentID: req.DepartmentID,
		StartDate:    start,
		EndDate:      end,
		Time:         req.Time,
		Venue:        req.Venue,
		Instructions: req.Instructions,
		Status:       req.Status,
		ScheduleFile: req.ScheduleFile,
	}
	if err := s.examRepo.CreateExam(ctx, exam); err != nil {
		return nil, fmt.Errorf("error creating exam: %w", err)
	}
	return exam, nil
}

// DeleteExam removes an exam and its results.
func (s *ExamService) DeleteExam(ctx context.Context, id int64) error {
	return s.examRepo.DeleteExam(ctx, id)
}

// ListResults returns every exam result with its exam.
func (s *ExamService) ListResults(ctx context.Context) ([]models.ExamResult, error) {
	return s.examRepo.ListResults(ctx)
}

// CreateResult publishes result information for an existing exam. The release
// date may not precede the exam's end date.
func (s *ExamService) CreateResult(ctx context.Context, req dto.ExamResultRequest) (*models.ExamResult, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	release, err := helpers.ParseDate(req.ReleaseDate, s.loc)
	if err != nil {
		return nil, apperrors.FieldError("releaseDate", "Enter a valid date (YYYY-MM-DD).")
	}

	result := &models.ExamResult{
		ExamID:       req.ExamID,
		Status:       defaultString(req.Status, models.DefaultResultStatus),
		ReleaseDate:  release,
		AccessMethod: defaultString(req.AccessMethod, "Online"),
		RequiredInfo: defaultString(req.RequiredInfo, "Student ID"),
		Progress:     req.Progress,
		ResultFile:   req.ResultFile,
	}
	err = s.examRepo.CreateResult(ctx, result, func(exam *models.Exam) error {
		if releaseBeforeEnd(release, exam.EndDate) {
			return apperrors.FieldError("releaseDate", "Release date cannot be before the exam's end date.")
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creating exam result: %w", err)
	}
	return result, nil
}

// releaseBeforeEnd compares calendar days only.
func releaseBeforeEnd(release, end time.Time) bool {
	ry, rm, rd := release.Date()
	ey, em, ed := end.Date()
	return time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC).Before(time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC))
}

// DeleteResult removes an exam result.
func (s *ExamService) DeleteResult(ctx context.Context, id int64) error {
	return s.examRepo.DeleteResult(ctx, id)
}

// ListRules returns every rule, hidden ones included.
func (s *ExamService) ListRules(ctx context.Context) ([]models.Rule, error) {
	return s.examRepo.ListRules(ctx, false)
}

// CreateRule adds an examination rule. Rules are visible unless told otherwise.
func (s *ExamService) CreateRule(ctx context.Context, req dto.RuleRequest) (*models.Rule, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	rule := &models.Rule{
		Category:  defaultString(req.Category, "General"),
		Content:   strings.TrimSpace(req.Content),
		Visible:   req.Visible == nil || *req.Visible,
		SortOrder: req.SortOrder,
	}
	if err := s.examRepo.CreateRule(ctx, rule); err != nil {
		return nil, fmt.Errorf("error creating rule: %w", err)
	}
	return rule, nil
}

// DeleteRule removes a rule.
func (s *ExamService) DeleteRule(ctx context.Context, id int64) error {
	return s.examRepo.DeleteRule(ctx, id)
}
