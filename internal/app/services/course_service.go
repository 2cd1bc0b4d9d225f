package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// CourseService handles course pages
type CourseService struct {
	courseRepo CourseStore
	logger     zerolog.Logger
}

// NewCourseService creates a new course service
func NewCourseService(courseRepo CourseStore, logger zerolog.Logger) *CourseService {
	return &CourseService{courseRepo: courseRepo, logger: logger}
}

// List returns every course in the given order.
func (s *CourseService) List(ctx context.Context, sort helpers.SortSpec) ([]models.Course, error) {
	return s.courseRepo.List(ctx, sort)
}

// GetBySlug retrieves a course by slug
func (s *CourseService) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	return s.courseRepo.GetBySlug(ctx, slug)
}

// GetByID retrieves a course by ID
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

func applyCourse(c *models.Course, req dto.CourseRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	c.Title = strings.TrimSpace(req.Title)
	c.Description = req.Description
	c.Duration = req.Duration
	c.Image = req.Image
	return nil
}

// Create stores a new course with a unique slug.
func (s *CourseService) Create(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	course := &models.Course{}
	if err := applyCourse(course, req); err != nil {
		return nil, err
	}

	explicit, _ := slugChange(req.Slug, "")
	err := saveWithSlug(ctx, s.logger, s.courseRepo, slugRequest{
		entity: "course", titleField: "title", title: course.Title, explicit: explicit,
	}, func(ctx context.Context, slug string) error {
		course.Slug = slug
		return s.courseRepo.Create(ctx, course)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return course, nil
}

// Update changes a course, keeping its slug unless cleared or replaced.
func (s *CourseService) Update(ctx context.Context, id int64, req dto.CourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyCourse(course, req); err != nil {
		return nil, err
	}

	explicit, current := slugChange(req.Slug, course.Slug)
	err = saveWithSlug(ctx, s.logger, s.courseRepo, slugRequest{
		entity: "course", titleField: "title", title: course.Title,
		explicit: explicit, current: current, id: course.ID,
	}, func(ctx context.Context, slug string) error {
		course.Slug = slug
		return s.courseRepo.Update(ctx, course)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}
	return course, nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.Delete(ctx, id)
}
