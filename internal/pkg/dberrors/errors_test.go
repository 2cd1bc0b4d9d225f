package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "news_slug_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "exams_department_id_fkey"}
	wrapped := fmt.Errorf("insert news: %w", dup)

	assert.True(t, IsDuplicateConstraintError(wrapped, "news_slug_key"))
	assert.False(t, IsDuplicateConstraintError(wrapped, "courses_slug_key"))
	assert.True(t, IsUniqueViolation(wrapped))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk, ""))
	assert.True(t, IsForeignKeyViolation(fk, "exams_department_id_fkey"))
	assert.False(t, IsForeignKeyViolation(fk, "exam_results_exam_id_fkey"))
	assert.False(t, IsForeignKeyViolation(errors.New("boom"), ""))
}
