package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// DefaultNewsOrder lists the newest article first.
var DefaultNewsOrder = helpers.Desc("date")

// NewsService handles news articles
type NewsService struct {
	newsRepo NewsStore
	logger   zerolog.Logger
	now      func() time.Time
}

// NewNewsService creates a new news service
func NewNewsService(newsRepo NewsStore, logger zerolog.Logger) *NewsService {
	return &NewsService{newsRepo: newsRepo, logger: logger, now: time.Now}
}

// List returns every article in the given order.
func (s *NewsService) List(ctx context.Context, sort helpers.SortSpec) ([]models.News, error) {
	return s.newsRepo.List(ctx, sort, 0)
}

// Latest returns the n most recent articles.
func (s *NewsService) Latest(ctx context.Context, n int) ([]models.News, error) {
	if n <= 0 {
		return []models.News{}, nil
	}
	return s.newsRepo.List(ctx, DefaultNewsOrder, uint64(n))
}

// GetBySlug retrieves an article by slug
func (s *NewsService) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	return s.newsRepo.GetBySlug(ctx, slug)
}

// GetByID retrieves an article by ID
func (s *NewsService) GetByID(ctx context.Context, id int64) (*models.News, error) {
	return s.newsRepo.GetByID(ctx, id)
}

func (s *NewsService) apply(n *models.News, req dto.NewsRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	n.Title = strings.TrimSpace(req.Title)
	n.Description = req.Description
	n.Image = req.Image
	if n.Image == "" {
		n.Image = "news/default.jpg"
	}
	n.Author = strings.TrimSpace(req.Author)
	if n.Author == "" {
		n.Author = models.DefaultNewsAuthor
	}
	switch {
	case req.Date != nil:
		n.Date = *req.Date
	case n.Date.IsZero():
		n.Date = s.now()
	}
	return nil
}

// Create stores a new article with a unique slug.
func (s *NewsService) Create(ctx context.Context, req dto.NewsRequest) (*models.News, error) {
	news := &models.News{}
	if err := s.apply(news, req); err != nil {
		return nil, err
	}

	explicit, _ := slugChange(req.Slug, "")
	err := saveWithSlug(ctx, s.logger, s.newsRepo, slugRequest{
		entity: "news", titleField: "title", title: news.Title, explicit: explicit,
	}, func(ctx context.Context, slug string) error {
		news.Slug = slug
		return s.newsRepo.Create(ctx, news)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating news: %w", err)
	}
	return news, nil
}

// Update changes an article, keeping its slug unless cleared or replaced.
func (s *NewsService) Update(ctx context.Context, id int64, req dto.NewsRequest) (*models.News, error) {
	news, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(news, req); err != nil {
		return nil, err
	}

	explicit, current := slugChange(req.Slug, news.Slug)
	err = saveWithSlug(ctx, s.logger, s.newsRepo, slugRequest{
		entity: "news", titleField: "title", title: news.Title,
		explicit: explicit, current: current, id: news.ID,
	}, func(ctx context.Context, slug string) error {
		news.Slug = slug
		return s.newsRepo.Update(ctx, news)
	})
	if err != nil {
		return nil, fmt.Errorf("error updating news: %w", err)
	}
	return news, nil
}

// Delete removes an article.
func (s *NewsService) Delete(ctx context.Context, id int64) error {
	return s.newsRepo.Delete(ctx, id)
}
