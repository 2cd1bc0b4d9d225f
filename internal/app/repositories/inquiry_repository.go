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

// InquiryRepository stores visitor submissions.
type InquiryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(db *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{db: db, sb: newBuilder()}
}

// CreateContactMessage inserts a contact message and sets its ID and send time.
func (r *InquiryRepository) CreateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	sqlStr, args, err := r.sb.Insert("contact_messages").SetMap(map[string]interface{}{
		"name": m.Name, "email": m.Email, "phone": m.Phone, "subject": m.Subject, "message": m.Message,
	}).Suffix("RETURNING id, date_sent").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert contact message query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&m.ID, &m.DateSent); err != nil {
		logger.Error().Err(err).Msg("Error inserting contact message")
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

// CreateVisitRequest inserts a visit request and sets its ID and submission time.
func (r *InquiryRepository) CreateVisitRequest(ctx context.Context, v *models.VisitRequest) error {
	sqlStr, args, err := r.sb.Insert("visit_requests").SetMap(map[string]interface{}{
		"name": v.Name, "email": v.Email, "phone": v.Phone, "interest": v.Interest, "message": v.Message,
	}).Suffix("RETURNING id, submitted_at").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert visit request query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&v.ID, &v.SubmittedAt); err != nil {
		logger.Error().Err(err).Msg("Error inserting visit request")
		return fmt.Errorf("failed to save visit request: %w", err)
	}
	return nil
}

// CreateApplication inserts an online application and sets its ID and creation time.
func (r *InquiryRepository) CreateApplication(ctx context.Context, a *models.OnlineApplication) error {
	sqlStr, args, err := r.sb.Insert("online_applications").SetMap(map[string]interface{}{
		"full_name": a.FullName, "email": a.Email, "phone": a.Phone, "address": a.Address,
		"program": a.Program, "previous_institute": a.PreviousInstitute, "year_completed": a.YearCompleted,
	}).Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert application query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&a.ID, &a.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error inserting online application")
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

func listPage[T any](ctx context.Context, r *InquiryRepository, table string, columns []string, orderColumn string, page, size int, scan pgx.RowToFunc[T]) ([]T, int64, error) {
	total, err := countRows(ctx, r.db, r.sb, table)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []T{}, 0, nil
	}

	page, _ = helpers.ClampPage(page, int(total), size)
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := r.sb.Select(columns...).
		From(table).
		OrderBy(orderColumn+" DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build %s page query: %w", table, err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query %s: %w", table, err)
	}
	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan %s: %w", table, err)
	}
	return items, total, nil
}

// ListContactMessages returns one page of contact messages, newest first.
func (r *InquiryRepository) ListContactMessages(ctx context.Context, page, size int) ([]models.ContactMessage, int64, error) {
	return listPage(ctx, r, "contact_messages",
		[]string{"id", "name", "email", "phone", "subject", "message", "date_sent"}, "date_sent", page, size,
		func(row pgx.CollectableRow) (models.ContactMessage, error) {
			var m models.ContactMessage
			err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.DateSent)
			return m, err
		})
}

// ListVisitRequests returns one page of visit requests, newest first.
func (r *InquiryRepository) ListVisitRequests(ctx context.Context, page, size int) ([]models.VisitRequest, int64, error) {
	return listPage(ctx, r, "visit_requests",
		[]string{"id", "name", "email", "phone", "interest", "message", "submitted_at"}, "submitted_at", page, size,
		func(row pgx.CollectableRow) (models.VisitRequest, error) {
			var v models.VisitRequest
			err := row.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Interest, &v.Message, &v.SubmittedAt)
			return v, err
		})
}

// ListApplications returns one page of online applications, newest first.
func (r *InquiryRepository) ListApplications(ctx context.Context, page, size int) ([]models.OnlineApplication, int64, error) {
	return listPage(ctx, r, "online_applications",
		[]string{"id", "full_name", "email", "phone", "address", "program", "previous_institute", "year_completed", "created_at"},
		"created_at", page, size,
		func(row pgx.CollectableRow) (models.OnlineApplication, error) {
			var a models.OnlineApplication
			err := row.Scan(&a.ID, &a.FullName, &a.Email, &a.Phone, &a.Address, &a.Program,
				&a.PreviousInstitute, &a.YearCompleted, &a.CreatedAt)
			return a, err
		})
}
