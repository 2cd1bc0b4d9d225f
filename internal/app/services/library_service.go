package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/catalog"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/slug"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// DefaultBookOrder is the order books are listed in before filtering.
var DefaultBookOrder = helpers.Asc("id")

// LibraryPage is one page of the library catalog.
type LibraryPage struct {
	Books      catalog.Page[models.LibraryBook]
	Categories []models.CategoryFilter
	Query      string
	Category   string
}

// LibraryService handles the library catalog
type LibraryService struct {
	bookRepo BookStore
	logger   zerolog.Logger
}

// NewLibraryService creates a new library service
func NewLibraryService(bookRepo BookStore, logger zerolog.Logger) *LibraryService {
	return &LibraryService{bookRepo: bookRepo, logger: logger}
}

// Browse filters the catalog by title query and category and returns the
// requested page. Out of range pages resolve to the nearest valid page. The
// category filters offered are those of the books matching the query, before
// the category itself is applied.
func (s *LibraryService) Browse(ctx context.Context, query, category string, page int) (*LibraryPage, error) {
	category = strings.TrimSpace(category)
	query = strings.TrimSpace(query)

	books, err := s.bookRepo.List(ctx, "", DefaultBookOrder)
	if err != nil {
		return nil, fmt.Errorf("error loading books: %w", err)
	}

	matching := catalog.Filter(books, query, func(b models.LibraryBook) string { return b.Title })
	filters := CategoryFilters(matching)
	if category != "" {
		inCategory := matching[:0:0]
		for _, b := range matching {
			if b.Category == category {
				inCategory = append(inCategory, b)
			}
		}
		matching = inCategory
	}

	return &LibraryPage{
		Books:      catalog.Paginate(matching, page, catalog.PageSize),
		Categories: filters,
		Query:      query,
		Category:   category,
	}, nil
}

// CategoryFilters returns the distinct categories of books in first-seen order.
func CategoryFilters(books []models.LibraryBook) []models.CategoryFilter {
	seen := make(map[string]struct{})
	filters := []models.CategoryFilter{}
	for _, b := range books {
		if _, ok := seen[b.Category]; ok {
			continue
		}
		seen[b.Category] = struct{}{}
		label := b.CategoryLabel()
		filters = append(filters, models.CategoryFilter{
			Name:  b.Category,
			Label: label,
			Slug:  slug.Slugify(label),
		})
	}
	return filters
}

// GetBook retrieves a book by ID
func (s *LibraryService) GetBook(ctx context.Context, id int64) (*models.LibraryBook, error) {
	return s.bookRepo.GetByID(ctx, id)
}

// CreateBook adds a book to the catalog.
func (s *LibraryService) CreateBook(ctx context.Context, req dto.BookRequest) (*models.LibraryBook, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if !models.BookCategories.Contains(req.Category) {
		return nil, apperrors.FieldError("category", "Select a valid choice.")
	}

	book := &models.LibraryBook{
		Title:         strings.TrimSpace(req.Title),
		Author:        defaultString(req.Author, "Unknown Author"),
		Publisher:     defaultString(req.Publisher, "Unknown Publisher"),
		Category:      req.Category,
		Edition:       req.Edition,
		PublishedYear: req.PublishedYear,
		Description:   req.Description,
		Image:         defaultString(req.Image, "library_books/default.jpg"),
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("error creating book: %w", err)
	}
	return book, nil
}

// DeleteBook removes a book from the catalog.
func (s *LibraryService) DeleteBook(ctx context.Context, id int64) error {
	return s.bookRepo.Delete(ctx, id)
}

func defaultString(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}
