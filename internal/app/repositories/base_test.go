package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

func TestMapWriteError(t *testing.T) {
	slugDup := &pgconn.PgError{Code: "23505", ConstraintName: departmentSlugConstraint}
	otherDup := &pgconn.PgError{Code: "23505", ConstraintName: "something_else_key"}
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "exams_department_id_fkey"}
	plain := errors.New("boom")

	assert.NoError(t, mapWriteError(nil, departmentSlugConstraint))
	assert.ErrorIs(t, mapWriteError(slugDup, departmentSlugConstraint), apperrors.ErrSlugConflict)
	assert.ErrorIs(t, mapWriteError(otherDup, departmentSlugConstraint), apperrors.ErrResourceAlreadyExists)
	assert.ErrorIs(t, mapWriteError(fk, ""), apperrors.ErrReferenceNotFound)
	assert.Equal(t, plain, mapWriteError(plain, ""))

	// without a slug constraint every unique violation is a plain duplicate
	assert.NotErrorIs(t, mapWriteError(slugDup, ""), apperrors.ErrSlugConflict)
}

func TestNotFound(t *testing.T) {
	err := notFound(pgx.ErrNoRows, "department")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "department not found", err.Error())

	other := errors.New("connection reset")
	assert.Equal(t, other, notFound(other, "department"))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `computer-science`, escapeLike("computer-science"))
	assert.Equal(t, `a\%b\_c\\d`, escapeLike(`a%b_c\d`))
}

func TestListSlugsQueryShape(t *testing.T) {
	sql, args, err := newBuilder().Select("slug").From("news").
		Where(slugCandidates("computer-science")).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT slug FROM news WHERE (slug = $1 OR slug LIKE $2)", sql)
	assert.Equal(t, []interface{}{"computer-science", "computer-science-%"}, args)
}

func TestOrderByWhitelist(t *testing.T) {
	assert.Equal(t, "date DESC, id DESC", orderBy(helpers.Desc("date"), NewsSortColumns, helpers.Asc("title")))
	assert.Equal(t, "title ASC, id ASC", orderBy(helpers.Desc("date; DROP TABLE news"), NewsSortColumns, helpers.Asc("title")))
}

func TestContentTablesCoverEveryKind(t *testing.T) {
	require.Len(t, contentTables, len(models.ContentKinds))
	for _, kind := range models.ContentKinds {
		table, ok := contentTables[kind]
		require.True(t, ok, kind)
		assert.Contains(t, siteTables, table)
	}

	r := NewSiteContentRepository(nil)
	assert.Error(t, r.DeleteContent(context.Background(), models.ContentKind("gallery"), 1))
}
