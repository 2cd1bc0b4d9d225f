package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/app/models/dto"
	"github.com/yigit/sitehub/internal/pkg/calendar"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/validation"
)

// DefaultEventOrder lists the latest dated event first.
var DefaultEventOrder = helpers.Desc("date")

// EventService handles campus events
type EventService struct {
	eventRepo EventStore
	logger    zerolog.Logger
	loc       *time.Location
	now       func() time.Time
}

// NewEventService creates a new event service. Events are bucketed by the
// calendar day in loc.
func NewEventService(eventRepo EventStore, loc *time.Location, logger zerolog.Logger) *EventService {
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{eventRepo: eventRepo, logger: logger, loc: loc, now: time.Now}
}

func (s *EventService) today() time.Time {
	return s.now().In(s.loc)
}

func (s *EventService) categorize(events []models.Event) []models.CategorizedEvent {
	today := s.today()
	out := make([]models.CategorizedEvent, len(events))
	for i, e := range events {
		out[i] = models.CategorizedEvent{Event: e, Category: calendar.Classify(e.Date, today)}
	}
	return out
}

// ListCategorized returns every event, latest first, each with its category
// for the current day.
func (s *EventService) ListCategorized(ctx context.Context) ([]models.CategorizedEvent, error) {
	events, err := s.eventRepo.List(ctx, DefaultEventOrder, 0)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return s.categorize(events), nil
}

// Latest returns the n latest events with their categories.
func (s *EventService) Latest(ctx context.Context, n int) ([]models.CategorizedEvent, error) {
	if n <= 0 {
		return []models.CategorizedEvent{}, nil
	}
	events, err := s.eventRepo.List(ctx, DefaultEventOrder, uint64(n))
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return s.categorize(events), nil
}

// GetByID retrieves an event with its category.
func (s *EventService) GetByID(ctx context.Context, id int64) (*models.CategorizedEvent, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.CategorizedEvent{Event: *event, Category: calendar.Classify(event.Date, s.today())}, nil
}

func applyEvent(e *models.Event, req dto.EventRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	e.Title = strings.TrimSpace(req.Title)
	e.Description = req.Description
	e.Date = req.Date
	e.Venue = req.Venue
	e.Image = req.Image
	if e.Image == "" {
		e.Image = "event/default.png"
	}
	return nil
}

// Create stores a new event.
func (s *EventService) Create(ctx context.Context, req dto.EventRequest) (*models.Event, error) {
	event := &models.Event{}
	if err := applyEvent(event, req); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return event, nil
}

// Update changes an event.
func (s *EventService) Update(ctx context.Context, id int64, req dto.EventRequest) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyEvent(event, req); err != nil {
		return nil, err
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}
	return event, nil
}

// Delete removes an event.
func (s *EventService) Delete(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}
