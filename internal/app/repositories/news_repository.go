package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/logger"
)

const newsSlugConstraint = "news_slug_key"

var newsColumns = []string{"id", "title", "slug", "description", "image", "author", "date"}

// NewsSortColumns whitelists the fields news can be ordered by.
var NewsSortColumns = map[string]string{
	"id":    "id",
	"title": "title",
	"date":  "date",
}

// NewsRepository handles database operations for news items
type NewsRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *pgxpool.Pool) *NewsRepository {
	return &NewsRepository{db: db, sb: newBuilder()}
}

func scanNews(row pgx.Row) (*models.News, error) {
	var n models.News
	if err := row.Scan(&n.ID, &n.Title, &n.Slug, &n.Description, &n.Image, &n.Author, &n.Date); err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns news items in the requested order. A limit of 0 returns all.
func (r *NewsRepository) List(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.News, error) {
	query := r.sb.Select(newsColumns...).
		From("news").
		OrderBy(orderBy(sort, NewsSortColumns, helpers.Desc("date")))
	if limit > 0 {
		query = query.Limit(limit)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list news query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying news")
		return nil, fmt.Errorf("failed to query news: %w", err)
	}
	defer rows.Close()

	items := []models.News{}
	for rows.Next() {
		n, err := scanNews(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan news row: %w", err)
		}
		items = append(items, *n)
	}
	return items, rows.Err()
}

func (r *NewsRepository) getBy(ctx context.Context, where squirrel.Eq) (*models.News, error) {
	sqlStr, args, err := r.sb.Select(newsColumns...).From("news").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get news query: %w", err)
	}
	n, err := scanNews(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, notFound(err, "news item")
	}
	return n, nil
}

// GetByID retrieves a news item by ID
func (r *NewsRepository) GetByID(ctx context.Context, id int64) (*models.News, error) {
	return r.getBy(ctx, squirrel.Eq{"id": id})
}

// GetBySlug retrieves a news item by slug
func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	return r.getBy(ctx, squirrel.Eq{"slug": slug})
}

// ListSlugs returns the stored slugs that could collide with base.
func (r *NewsRepository) ListSlugs(ctx context.Context, base string, excludeID int64) (map[string]struct{}, error) {
	return listSlugs(ctx, r.db, r.sb, "news", base, excludeID)
}

func newsValues(n *models.News) map[string]interface{} {
	return map[string]interface{}{
		"title":       n.Title,
		"slug":        n.Slug,
		"description": n.Description,
		"image":       n.Image,
		"author":      n.Author,
		"date":        n.Date,
	}
}

// Create inserts a news item and sets its ID.
func (r *NewsRepository) Create(ctx context.Context, n *models.News) error {
	id, err := insertReturningID(ctx, r.db, r.sb, "news", newsValues(n))
	if err != nil {
		return mapWriteError(err, newsSlugConstraint)
	}
	n.ID = id
	return nil
}

// Update overwrites an existing news item.
func (r *NewsRepository) Update(ctx context.Context, n *models.News) error {
	sqlStr, args, err := r.sb.Update("news").SetMap(newsValues(n)).Where(squirrel.Eq{"id": n.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update news query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapWriteError(err, newsSlugConstraint)
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, "news item")
	}
	return nil
}

// Delete removes a news item.
func (r *NewsRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "news", "news item", id)
}
