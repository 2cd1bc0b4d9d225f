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
)

const courseSlugConstraint = "courses_slug_key"

var courseColumns = []string{"id", "title", "slug", "description", "duration", "image", "created_at"}

// CourseSortColumns whitelists the fields courses can be ordered by.
var CourseSortColumns = map[string]string{
	"id":        "id",
	"title":     "title",
	"createdAt": "created_at",
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db, sb: newBuilder()}
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	var c models.Course
	var image sql.NullString
	if err := row.Scan(&c.ID, &c.Title, &c.Slug, &c.Description, &c.Duration, &image, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Image = helpers.StringOrEmpty(image)
	return &c, nil
}

// List returns every course in the requested order.
func (r *CourseRepository) List(ctx context.Context, sort helpers.SortSpec) ([]models.Course, error) {
	sqlStr, args, err := r.sb.Select(courseColumns...).
		From("courses").
		OrderBy(orderBy(sort, CourseSortColumns, helpers.Asc("title"))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, *c)
	}
	return courses, rows.Err()
}

func (r *CourseRepository) getBy(ctx context.Context, where squirrel.Eq) (*models.Course, error) {
	sqlStr, args, err := r.sb.Select(courseColumns...).From("courses").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}
	c, err := scanCourse(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, notFound(err, "course")
	}
	return c, nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetBySlug retrieves a course by slug
func (r *CourseRepository) GetBySlug(ctx context.Context, slug string) (*models.Course, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug})
}

// ListSlugs returns the stored slugs that could collide with base.
func (r *CourseRepository) ListSlugs(ctx context.Context, base string, excludeID int64) (map[string]struct{}, error) {
	return listSlugs(ctx, r.db, r.sb, "courses", base, excludeID)
}

func courseValues(c *models.Course) map[string]interface{} {
	return map[string]interface{}{
		"title":       c.Title,
		"slug":        c.Slug,
		"description": c.Description,
		"duration":    c.Duration,
		"image":       helpers.GetContentNullString(c.Image),
	}
}

// Create inserts a course and sets its ID and creation time.
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	sqlStr, args, err := r.sb.Insert("courses").
		SetMap(courseValues(c)).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert course query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&c.ID, &c.CreatedAt); err != nil {
		return mapWriteError(err, courseSlugConstraint)
	}
	return nil
}

// Update overwrites an existing course.
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	sqlStr, args, err := r.sb.Update("courses").SetMap(courseValues(c)).Where(squirrel.Eq{"id": c.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapWriteError(err, courseSlugConstraint)
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, "course")
	}
	return nil
}

// Delete removes a course.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "courses", "course", id)
}
