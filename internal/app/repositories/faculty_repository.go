package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/sitehub/internal/app/models"
)

// FacultyMemberRepository handles faculty_members rows.
type FacultyMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyMemberRepository creates a new faculty member repository
func NewFacultyMemberRepository(db *pgxpool.Pool) *FacultyMemberRepository {
	return &FacultyMemberRepository{db: db, sb: newBuilder()}
}

// ListByDepartment returns the members of a department ordered by name.
func (r *FacultyMemberRepository) ListByDepartment(ctx context.Context, departmentID int64) ([]models.FacultyMember, error) {
	sqlStr, args, err := r.sb.Select("id", "department_id", "name", "designation", "subject", "image").
		From("faculty_members").
		Where(squirrel.Eq{"department_id": departmentID}).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query faculty members: %w", err)
	}
	members, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FacultyMember, error) {
		var m models.FacultyMember
		err := row.Scan(&m.ID, &m.DepartmentID, &m.Name, &m.Designation, &m.Subject, &m.Image)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan faculty members: %w", err)
	}
	return members, nil
}

// Create inserts a faculty member. A missing department yields
// apperrors.ErrReferenceNotFound.
func (r *FacultyMemberRepository) Create(ctx context.Context, m *models.FacultyMember) error {
	id, err := insertReturningID(ctx, r.db, r.sb, "faculty_members", map[string]interface{}{
		"department_id": m.DepartmentID,
		"name":          m.Name,
		"designation":   m.Designation,
		"subject":       m.Subject,
		"image":         m.Image,
	})
	if err != nil {
		return mapWriteError(err, "")
	}
	m.ID = id
	return nil
}

// Delete removes one member of a department.
func (r *FacultyMemberRepository) Delete(ctx context.Context, departmentID, id int64) error {
	sqlStr, args, err := r.sb.Delete("faculty_members").
		Where(squirrel.Eq{"id": id, "department_id": departmentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return fmt.Errorf("failed to delete faculty member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, "faculty member")
	}
	return nil
}
