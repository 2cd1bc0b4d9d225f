package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/pkg/helpers"
)

var bookColumns = []string{
	"id", "title", "author", "publisher", "category", "edition", "published_year", "description", "image",
}

// BookSortColumns whitelists the fields books can be ordered by.
var BookSortColumns = map[string]string{
	"id":     "id",
	"title":  "title",
	"author": "author",
}

// LibraryRepository handles library_books rows.
type LibraryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLibraryRepository creates a new library repository
func NewLibraryRepository(db *pgxpool.Pool) *LibraryRepository {
	return &LibraryRepository{db: db, sb: newBuilder()}
}

func scanBook(row pgx.Row) (models.LibraryBook, error) {
	var b models.LibraryBook
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.Publisher, &b.Category, &b.Edition,
		&b.PublishedYear, &b.Description, &b.Image)
	return b, err
}

// List returns the books of category, or of every category when it is empty.
func (r *LibraryRepository) List(ctx context.Context, category string, sort helpers.SortSpec) ([]models.LibraryBook, error) {
	query := r.sb.Select(bookColumns...).
		From("library_books").
		OrderBy(orderBy(sort, BookSortColumns, helpers.Asc("id")))
	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list books query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LibraryBook, error) {
		return scanBook(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a book by ID
func (r *LibraryRepository) GetByID(ctx context.Context, id int64) (*models.LibraryBook, error) {
	sqlStr, args, err := r.sb.Select(bookColumns...).From("library_books").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get book query: %w", err)
	}
	b, err := scanBook(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, notFound(err, "book")
	}
	return &b, nil
}

// Create inserts a book and sets its ID.
func (r *LibraryRepository) Create(ctx context.Context, b *models.LibraryBook) error {
	id, err := insertReturningID(ctx, r.db, r.sb, "library_books", map[string]interface{}{
		"title":          b.Title,
		"author":         b.Author,
		"publisher":      b.Publisher,
		"category":       b.Category,
		"edition":        b.Edition,
		"published_year": b.PublishedYear,
		"description":    b.Description,
		"image":          b.Image,
	})
	if err != nil {
		return mapWriteError(err, "")
	}
	b.ID = id
	return nil
}

// Delete removes a book.
func (r *LibraryRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "library_books", "book", id)
}
