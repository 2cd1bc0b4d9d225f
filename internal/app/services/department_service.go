package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo DepartmentStore
	facultyRepo    FacultyMemberStore
	logger         zerolog.Logger
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo DepartmentStore, facultyRepo FacultyMemberStore, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
		logger:         logger,
	}
}

// List returns every department in the given order.
func (s *DepartmentService) List(ctx context.Context, sort helpers.SortSpec) ([]models.Department, error) {
	departments, err := s.departmentRepo.List(ctx, sort)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	return departments, nil
}

// GetByID retrieves a department by ID
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	if id <= 0 {
		return nil, apperrors.NewResourceNotFoundError("department not found")
	}
	return s.departmentRepo.GetByID(ctx, id)
}

// GetBySlug retrieves a department by slug
func (s *DepartmentService) GetBySlug(ctx context.Context, slug string) (*models.Department, error) {
	return s.departmentRepo.GetBySlug(ctx, slug)
}

// GetWithFaculty loads a department and its members, ordered by name.
func (s *DepartmentService) GetWithFaculty(ctx context.Context, slug string) (*models.Department, error) {
	department, err := s.departmentRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	members, err := s.facultyRepo.ListByDepartment(ctx, department.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading faculty: %w", err)
	}
	department.FacultyMembers = members
	return department, nil
}

func (s *DepartmentService) apply(d *models.Department, req dto.DepartmentRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	degree := strings.TrimSpace(req.DegreeType)
	if degree == "" {
		degree = "BS"
	}
	if !models.DegreeTypes.Contains(degree) {
		return apperrors.FieldError("degreeType", "Select a valid choice.")
	}

	d.Name = strings.TrimSpace(req.Name)
	d.Image = req.Image
	if d.Image == "" {
		d.Image = models.DefaultDepartmentImage
	}
	d.Faculty = req.Faculty
	d.HeadOfDepartment = req.HeadOfDepartment
	d.HODImage = req.HODImage
	d.Description = req.Description
	d.NumOfCourses = req.NumOfCourses
	d.NumOfStudents = req.NumOfStudents
	d.DegreeType = degree
	return nil
}

// Create validates and stores a new department, assigning a unique slug when
// none is given.
func (s *DepartmentService) Create(ctx context.Context, req dto.DepartmentRequest) (*models.Department, error) {
	department := &models.Department{}
	if err := s.apply(department, req); err != nil {
		return nil, err
	}

	explicit, _ := slugChange(req.Slug, "")
	err := saveWithSlug(ctx, s.logger, s.departmentRepo, slugRequest{
		entity:     "department",
		titleField: "name",
		title:      department.Name,
		explicit:   explicit,
	}, func(ctx context.Context, slug string) error {
		department.Slug = slug
		return s.departmentRepo.Create(ctx, department)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	s.logger.Info().Int64("departmentId", department.ID).Str("slug", department.Slug).Msg("Department created")
	return department, nil
}

// Update changes a department. The stored slug is kept unless the request
// clears or replaces it.
func (s *DepartmentService) Update(ctx context.Context, id int64, req dto.DepartmentRequest) (*models.Department, error) {
	department, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(department, req); err != nil {
		return nil, err
	}

	explicit, current := slugChange(req.Slug, department.Slug)
	err = saveWithSlug(ctx, s.logger, s.departmentRepo, slugRequest{
		entity:     "department",
		titleField: "name",
		title:      department.Name,
		explicit:   explicit,
		current:    current,
		id:         department.ID,
	}, func(ctx context.Context, slug string) error {
		department.Slug = slug
		return s.departmentRepo.Update(ctx, department)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating department: %w", err)
	}
	return department, nil
}

// Delete removes a department together with its faculty and exams. Its slug
// becomes available again.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	s.logger.Info().Int64("departmentId", id).Msg("Department deleted")
	return nil
}

// ListFaculty returns the members of a department ordered by name.
func (s *DepartmentService) ListFaculty(ctx context.Context, departmentID int64) ([]models.FacultyMember, error) {
	if _, err := s.GetByID(ctx, departmentID); err != nil {
		return nil, err
	}
	return s.facultyRepo.ListByDepartment(ctx, departmentID)
}

// AddFacultyMember adds a member to an existing department.
func (s *DepartmentService) AddFacultyMember(ctx context.Context, departmentID int64, req dto.FacultyMemberRequest) (*models.FacultyMember, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Designation != "" && !models.Designations.Contains(req.Designation) {
		return nil, apperrors.FieldError("designation", "Select a valid choice.")
	}

	exists, err := s.departmentRepo.Exists(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewReferenceNotFoundError("departmentId", "department does not exist")
	}

	member := &models.FacultyMember{
		DepartmentID: departmentID,
		Name:         strings.TrimSpace(req.Name),
		Designation:  req.Designation,
		Subject:      strings.TrimSpace(req.Subject),
		Image:        req.Image,
	}
	if member.Image == "" {
		member.Image = models.DefaultFacultyImage
	}
	if err := s.facultyRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("error creating faculty member: %w", err)
	}
	return member, nil
}

// DeleteFacultyMember removes one member of a department.
func (s *DepartmentService) DeleteFacultyMember(ctx context.Context, departmentID, memberID int64) error {
	return s.facultyRepo.Delete(ctx, departmentID, memberID)
}
