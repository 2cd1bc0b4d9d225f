package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
)

func newExamService(t *testing.T) (*ExamService, *fakeExams, int64) {
	t.Helper()
	departments := newFakeDepartments()
	d := &models.Department{Name: "Computer Science", Slug: "computer-science"}
	require.NoError(t, departments.Create(context.Background(), d))

	exams := &fakeExams{}
	return NewExamService(exams, departments, time.UTC, zerolog.Nop()), exams, d.ID
}

func examRequest(departmentID int64) dto.ExamRequest {
	return dto.ExamRequest{
		Title:        "Midterm",
		DepartmentID: departmentID,
		StartDate:    "2024-03-10",
		EndDate:      "2024-03-20",
		Time:         "9:00 AM",
		Venue:        "Main Hall",
		Status:       "Scheduled",
	}
}

func TestCreateExam(t *testing.T) {
	svc, store, departmentID := newExamService(t)
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		exam, err := svc.CreateExam(ctx, examRequest(departmentID))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), exam.EndDate)
	})

	t.Run("unknown department", func(t *testing.T) {
		_, err := svc.CreateExam(ctx, examRequest(999))
		assert.True(t, errors.Is(err, apperrors.ErrReferenceNotFound))
	})

	t.Run("end before start", func(t *testing.T) {
		req := examRequest(departmentID)
		req.EndDate = "2024-03-01"
		_, err := svc.CreateExam(ctx, req)
		ve, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "endDate")
	})

	t.Run("same day", func(t *testing.T) {
		req := examRequest(departmentID)
		req.EndDate = req.StartDate
		_, err := svc.CreateExam(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		req := examRequest(departmentID)
		req.StartDate = "10/03/2024"
		_, err := svc.CreateExam(ctx, req)
		ve, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "startDate")
	})

	assert.Len(t, store.exams, 2)
}

func TestCreateResult(t *testing.T) {
	svc, store, departmentID := newExamService(t)
	ctx := context.Background()
	exam, err := svc.CreateExam(ctx, examRequest(departmentID))
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		res, err := svc.CreateResult(ctx, dto.ExamResultRequest{ExamID: exam.ID, ReleaseDate: "2024-03-20"})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultResultStatus, res.Status)
		assert.Equal(t, "Online", res.AccessMethod)
		assert.Equal(t, "Student ID", res.RequiredInfo)
	})

	t.Run("release before the exam ends", func(t *testing.T) {
		_, err := svc.CreateResult(ctx, dto.ExamResultRequest{ExamID: exam.ID, ReleaseDate: "2024-03-19"})
		ve, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "releaseDate")
	})

	t.Run("unknown exam", func(t *testing.T) {
		_, err := svc.CreateResult(ctx, dto.ExamResultRequest{ExamID: 404, ReleaseDate: "2024-04-01"})
		assert.True(t, errors.Is(err, apperrors.ErrReferenceNotFound))
	})

	t.Run("progress out of range", func(t *testing.T) {
		_, err := svc.CreateResult(ctx, dto.ExamResultRequest{ExamID: exam.ID, ReleaseDate: "2024-04-01", Progress: 120})
		ve, ok := apperrors.AsValidationError(err)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "progress")
	})

	assert.Len(t, store.results, 1)
}

func TestOverview_GroupsExamsAndHidesRules(t *testing.T) {
	svc, _, departmentID := newExamService(t)
	ctx := context.Background()

	_, err := svc.CreateExam(ctx, examRequest(departmentID))
	require.NoError(t, err)
	hidden := false
	_, err = svc.CreateRule(ctx, dto.RuleRequest{Content: "No phones"})
	require.NoError(t, err)
	_, err = svc.CreateRule(ctx, dto.RuleRequest{Content: "Draft rule", Visible: &hidden})
	require.NoError(t, err)

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Departments, 1)
	assert.Len(t, overview.Departments[0].Exams, 1)
	require.Len(t, overview.Rules, 1)
	assert.Equal(t, "General", overview.Rules[0].Category)

	all, err := svc.ListRules(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
