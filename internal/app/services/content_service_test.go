package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/calendar"
)

func TestNewsCreate_DefaultsAndSlugs(t *testing.T) {
	store := newFakeNews()
	svc := NewNewsService(store, zerolog.Nop())
	fixed := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	first, err := svc.Create(ctx, dto.NewsRequest{Title: "Convocation 2024"})
	require.NoError(t, err)
	assert.Equal(t, "convocation-2024", first.Slug)
	assert.Equal(t, models.DefaultNewsAuthor, first.Author)
	assert.Equal(t, "news/default.jpg", first.Image)
	assert.True(t, first.Date.Equal(fixed))

	second, err := svc.Create(ctx, dto.NewsRequest{Title: "Convocation 2024", Author: "Registrar"})
	require.NoError(t, err)
	assert.Equal(t, "convocation-2024-1", second.Slug)
	assert.Equal(t, "Registrar", second.Author)

	got, err := svc.GetBySlug(ctx, "convocation-2024-1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)

	_, err = svc.GetBySlug(ctx, "missing")
	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestNewsUpdate_KeepsSlugWhenUnset(t *testing.T) {
	svc := NewNewsService(newFakeNews(), zerolog.Nop())
	ctx := context.Background()

	n, err := svc.Create(ctx, dto.NewsRequest{Title: "Admissions Open"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, n.ID, dto.NewsRequest{Title: "Admissions Extended", Author: "Registrar"})
	require.NoError(t, err)
	assert.Equal(t, "admissions-open", updated.Slug)
	assert.Equal(t, "Admissions Extended", updated.Title)

	got, err := svc.GetBySlug(ctx, "admissions-open")
	require.NoError(t, err)
	assert.Equal(t, "Registrar", got.Author)

	cleared, err := svc.Update(ctx, n.ID, dto.NewsRequest{Title: "Admissions Extended", Slug: strPtr(" ")})
	require.NoError(t, err)
	assert.Equal(t, "admissions-extended", cleared.Slug)
}

func TestNewsLatest(t *testing.T) {
	store := newFakeNews()
	svc := NewNewsService(store, zerolog.Nop())
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		d := base.AddDate(0, 0, i)
		_, err := svc.Create(ctx, dto.NewsRequest{Title: "Notice", Date: &d})
		require.NoError(t, err)
	}

	latest, err := svc.Latest(ctx, HomeNewsCount)
	require.NoError(t, err)
	require.Len(t, latest, HomeNewsCount)
	assert.True(t, latest[0].Date.Equal(base.AddDate(0, 0, 7)))
}

func TestEventCategories(t *testing.T) {
	loc := time.FixedZone("PKT", 5*60*60)
	today := time.Date(2024, 5, 10, 23, 30, 0, 0, loc)

	store := &fakeEvents{rows: []models.Event{
		{ID: 1, Title: "Sports Gala", Date: time.Date(2024, 5, 10, 8, 0, 0, 0, loc)},
		{ID: 2, Title: "Career Fair", Date: time.Date(2024, 5, 11, 10, 0, 0, 0, loc)},
		{ID: 3, Title: "Orientation", Date: time.Date(2024, 5, 9, 10, 0, 0, 0, loc)},
		{ID: 4, Title: "Science Expo", Date: time.Date(2024, 6, 1, 10, 0, 0, 0, loc)},
	}}
	svc := NewEventService(store, loc, zerolog.Nop())
	svc.now = func() time.Time { return today.UTC() }
	ctx := context.Background()

	events, err := svc.ListCategorized(ctx)
	require.NoError(t, err)
	got := map[string]calendar.Category{}
	for _, e := range events {
		got[e.Title] = e.Category
	}
	assert.Equal(t, map[string]calendar.Category{
		"Sports Gala":  calendar.Happening,
		"Career Fair":  calendar.Upcoming,
		"Orientation":  calendar.Expired,
		"Science Expo": calendar.Upcoming,
	}, got)

	latest, err := svc.Latest(ctx, HomeEventsCount)
	require.NoError(t, err)
	require.Len(t, latest, HomeEventsCount)
	assert.Equal(t, "Science Expo", latest[0].Title)

	one, err := svc.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, calendar.Expired, one.Category)
}

func TestEventCreate_RequiresTitleAndDate(t *testing.T) {
	store := &fakeEvents{}
	svc := NewEventService(store, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), dto.EventRequest{})
	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "date")
	assert.Empty(t, store.rows)
}

func TestLibraryBrowse(t *testing.T) {
	var books []models.LibraryBook
	for i := 1; i <= 12; i++ {
		books = append(books, models.LibraryBook{ID: int64(i), Title: "Data Structures Vol", Category: "cs"})
	}
	books = append(books,
		models.LibraryBook{ID: 13, Title: "Principles of Economics", Category: "economics"},
		models.LibraryBook{ID: 14, Title: "Big Data Economics", Category: "ba_economics"},
	)
	svc := NewLibraryService(&fakeBooks{rows: books}, zerolog.Nop())
	ctx := context.Background()

	t.Run("query is case-insensitive and paged by nine", func(t *testing.T) {
		page, err := svc.Browse(ctx, "DATA", "", 1)
		require.NoError(t, err)
		assert.Equal(t, 13, page.Books.TotalItems)
		assert.Equal(t, 2, page.Books.TotalPages)
		assert.Len(t, page.Books.Items, 9)
		assert.True(t, page.Books.HasNext)
	})

	t.Run("out of range page clamps to the last", func(t *testing.T) {
		page, err := svc.Browse(ctx, "data", "", 99)
		require.NoError(t, err)
		assert.Equal(t, 2, page.Books.Number)
		assert.Len(t, page.Books.Items, 4)
	})

	t.Run("category filters come from the query matches", func(t *testing.T) {
		page, err := svc.Browse(ctx, "economics", "economics", 1)
		require.NoError(t, err)
		require.Len(t, page.Books.Items, 1)
		assert.Equal(t, int64(13), page.Books.Items[0].ID)
		assert.Equal(t, []models.CategoryFilter{
			{Name: "economics", Label: "Economics", Slug: "economics"},
			{Name: "ba_economics", Label: "BA Economics", Slug: "ba-economics"},
		}, page.Categories)
	})

	t.Run("no match", func(t *testing.T) {
		page, err := svc.Browse(ctx, "zoology", "", 3)
		require.NoError(t, err)
		assert.Empty(t, page.Books.Items)
		assert.Empty(t, page.Categories)
	})
}

func TestLibraryCreateBook(t *testing.T) {
	store := &fakeBooks{}
	svc := NewLibraryService(store, zerolog.Nop())
	ctx := context.Background()

	book, err := svc.CreateBook(ctx, dto.BookRequest{Title: "Calculus", Category: "mathematics"})
	require.NoError(t, err)
	assert.Equal(t, "Unknown Author", book.Author)
	assert.Equal(t, "Unknown Publisher", book.Publisher)
	assert.Equal(t, "library_books/default.jpg", book.Image)

	_, err = svc.CreateBook(ctx, dto.BookRequest{Title: "Calculus", Category: "astrology"})
	ve, ok := apperrors.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "category")
	assert.Len(t, store.rows, 1)
}
