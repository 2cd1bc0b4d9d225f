package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/logger"
)

const departmentSlugConstraint = "departments_slug_key"

var departmentColumns = []string{
	"id", "name", "slug", "image", "faculty", "head_of_department", "hod_image",
	"description", "num_of_courses", "num_of_students", "degree_type",
}

// DepartmentSortColumns whitelists the fields departments can be ordered by.
var DepartmentSortColumns = map[string]string{
	"id":   "id",
	"name": "name",
	"slug": "slug",
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: newBuilder(),
	}
}

func scanDepartment(row pgx.Row) (*models.Department, error) {
	var d models.Department
	var hodImage sql.NullString
	err := row.Scan(
		&d.ID, &d.Name, &d.Slug, &d.Image, &d.Faculty, &d.HeadOfDepartment, &hodImage,
		&d.Description, &d.NumOfCourses, &d.NumOfStudents, &d.DegreeType,
	)
	if err != nil {
		return nil, err
	}
	d.HODImage = helpers.StringOrEmpty(hodImage)
	return &d, nil
}

// List returns every department in the requested order.
func (r *DepartmentRepository) List(ctx context.Context, sort helpers.SortSpec) ([]models.Department, error) {
	sqlStr, args, err := r.sb.Select(departmentColumns...).
		From("departments").
		OrderBy(orderBy(sort, DepartmentSortColumns, helpers.Asc("name"))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying departments")
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, *d)
	}
	return departments, rows.Err()
}

func (r *DepartmentRepository) getBy(ctx context.Context, where squirrel.Eq) (*models.Department, error) {
	sqlStr, args, err := r.sb.Select(departmentColumns...).From("departments").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	d, err := scanDepartment(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, notFound(err, "department")
	}
	return d, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetBySlug retrieves a department by its slug
func (r *DepartmentRepository) GetBySlug(ctx context.Context, slug string) (*models.Department, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug})
}

// Exists reports whether a department with id is stored.
func (r *DepartmentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking department existence: %w", err)
	}
	return exists, nil
}

// ListSlugs returns the stored slugs that could collide with base.
func (r *DepartmentRepository) ListSlugs(ctx context.Context, base string, excludeID int64) (map[string]struct{}, error) {
	return listSlugs(ctx, r.db, r.sb, "departments", base, excludeID)
}

func departmentValues(d *models.Department) map[string]interface{} {
	return map[string]interface{}{
		"name":               d.Name,
		"slug":               d.Slug,
		"image":              d.Image,
		"faculty":            d.Faculty,
		"head_of_department": d.HeadOfDepartment,
		"hod_image":          helpers.GetContentNullString(d.HODImage),
		"description":        d.Description,
		"num_of_courses":     d.NumOfCourses,
		"num_of_students":    d.NumOfStudents,
		"degree_type":        d.DegreeType,
	}
}

// Create inserts a department and sets its ID.
func (r *DepartmentRepository) Create(ctx context.Context, d *models.Department) error {
	id, err := insertReturningID(ctx, r.db, r.sb, "departments", departmentValues(d))
	if err != nil {
		return mapWriteError(err, departmentSlugConstraint)
	}
	d.ID = id
	return nil
}

// Update overwrites every column of an existing department.
func (r *DepartmentRepository) Update(ctx context.Context, d *models.Department) error {
	sqlStr, args, err := r.sb.Update("departments").
		SetMap(departmentValues(d)).
		Where(squirrel.Eq{"id": d.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update department query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapWriteError(err, departmentSlugConstraint)
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, "department")
	}
	return nil
}

// Delete removes a department. Its faculty members and exams go with it.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "departments", "department", id)
}
