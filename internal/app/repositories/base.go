package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/dberrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/logger"
)

func newBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// notFound maps pgx.ErrNoRows to a resource-not-found error naming the entity.
func notFound(err error, entity string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewResourceNotFoundError(entity + " not found")
	}
	return err
}

// mapWriteError translates constraint violations of an insert or update. A
// unique violation on slugConstraint becomes apperrors.ErrSlugConflict so the
// caller can pick another slug.
func mapWriteError(err error, slugConstraint string) error {
	switch {
	case err == nil:
		return nil
	case slugConstraint != "" && dberrors.IsDuplicateConstraintError(err, slugConstraint):
		return fmt.Errorf("%w: %s", apperrors.ErrSlugConflict, slugConstraint)
	case dberrors.IsForeignKeyViolation(err, ""):
		return apperrors.ErrReferenceNotFound
	case dberrors.IsUniqueViolation(err):
		return apperrors.ErrResourceAlreadyExists
	}
	return err
}

// listSlugs returns every slug of table equal to base or starting with
// "base-", skipping the row excludeID. Pass 0 to exclude nothing.
func listSlugs(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table, base string, excludeID int64) (map[string]struct{}, error) {
	query := sb.Select("slug").From(table).Where(slugCandidates(base))
	if excludeID > 0 {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build slug query: %w", err)
	}

	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error listing slugs")
		return nil, fmt.Errorf("failed to list slugs: %w", err)
	}
	slugs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan slugs: %w", err)
	}

	set := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		set[s] = struct{}{}
	}
	return set, nil
}

func slugCandidates(base string) squirrel.Sqlizer {
	return squirrel.Or{
		squirrel.Eq{"slug": base},
		squirrel.Like{"slug": escapeLike(base) + "-%"},
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// orderBy resolves a sort spec against a column whitelist.
func orderBy(spec helpers.SortSpec, columns map[string]string, fallback helpers.SortSpec) string {
	return helpers.OrderByClause(spec, columns, fallback)
}

// insertReturningID runs an INSERT ... RETURNING id built from a column map.
func insertReturningID(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string, values map[string]interface{}) (int64, error) {
	sqlStr, args, err := sb.Insert(table).SetMap(values).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert into %s: %w", table, err)
	}

	var id int64
	if err := db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// deleteByID removes one row and reports a not-found error when nothing matched.
func deleteByID(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table, entity string, id int64) error {
	sqlStr, args, err := sb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete from %s: %w", table, err)
	}

	tag, err := db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapWriteError(err, "")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError(entity + " not found")
	}
	return nil
}

// countRows returns the number of rows in table.
func countRows(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string) (int64, error) {
	sqlStr, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}
	var n int64
	if err := db.QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}
