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

var eventColumns = []string{"id", "title", "description", "date", "venue", "image"}

// EventSortColumns whitelists the fields events can be ordered by.
var EventSortColumns = map[string]string{
	"id":    "id",
	"title": "title",
	"date":  "date",
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db, sb: newBuilder()}
}

func scanEvent(row pgx.Row) (models.Event, error) {
	var e models.Event
	err := row.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.Venue, &e.Image)
	return e, err
}

// List returns events in the requested order. A limit of 0 returns all.
func (r *EventRepository) List(ctx context.Context, sort helpers.SortSpec, limit uint64) ([]models.Event, error) {
	query := r.sb.Select(eventColumns...).
		From("events").
		OrderBy(orderBy(sort, EventSortColumns, helpers.Desc("date")))
	if limit > 0 {
		query = query.Limit(limit)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Event, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan events: %w", err)
	}
	return events, nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sqlStr, args, err := r.sb.Select(eventColumns...).From("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}
	e, err := scanEvent(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, notFound(err, "event")
	}
	return &e, nil
}

func eventValues(e *models.Event) map[string]interface{} {
	return map[string]interface{}{
		"title":       e.Title,
		"description": e.Description,
		"date":        e.Date,
		"venue":       e.Venue,
		"image":       e.Image,
	}
}

// Create inserts an event and sets its ID.
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	id, err := insertReturningID(ctx, r.db, r.sb, "events", eventValues(e))
	if err != nil {
		return mapWriteError(err, "")
	}
	e.ID = id
	return nil
}

// Update overwrites an existing event.
func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	sqlStr, args, err := r.sb.Update("events").SetMap(eventValues(e)).Where(squirrel.Eq{"id": e.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapWriteError(err, "")
	}
	if tag.RowsAffected() == 0 {
		return notFound(pgx.ErrNoRows, "event")
	}
	return nil
}

// Delete removes an event.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "events", "event", id)
}
