package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/sitehub/internal/app/models"
	"github.com/yigit/sitehub/internal/db"
	"github.com/yigit/sitehub/internal/pkg/apperrors"
	"github.com/yigit/sitehub/internal/pkg/helpers"
	"github.com/yigit/sitehub/internal/pkg/logger"
)

var examColumns = []string{
	"e.id", "e.title", "e.department_id", "e.start_date", "e.end_date", "e.time", "e.venue",
	"e.instructions", "e.status", "e.schedule_file", "e.created_at",
}

// ExamRepository handles exams, exam results and examination rules.
type ExamRepository struct {
	db *pgxpool.Pool
	tx *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewExamRepository creates a new exam repository
func NewExamRepository(pg *db.PostgresDB) *ExamRepository {
	return &ExamRepository{db: pg.Pool, tx: pg, sb: newBuilder()}
}

func scanExam(row pgx.Row, extra ...any) (models.Exam, error) {
	var e models.Exam
	var schedule sql.NullString
	dest := []any{
		&e.ID, &e.Title, &e.DepartmentID, &e.StartDate, &e.EndDate, &e.Time, &e.Venue,
		&e.Instructions, &e.Status, &schedule, &e.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return e, err
	}
	e.ScheduleFile = helpers.StringOrEmpty(schedule)
	return e, nil
}

// ListExams returns every exam ordered by start date.
func (r *ExamRepository) ListExams(ctx context.Context) ([]models.Exam, error) {
	sqlStr, args, err := r.sb.Select(examColumns...).
		From("exams e").
		OrderBy("e.start_date ASC", "e.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list exams query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying exams")
		return nil, fmt.Errorf("failed to query exams: %w", err)
	}
	exams, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Exam, error) {
		return scanExam(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exams: %w", err)
	}
	return exams, nil
}

// GetExam retrieves an exam by ID
func (r *ExamRepository) GetExam(ctx context.Context, id int64) (*models.Exam, error) {
	sqlStr, args, err := r.sb.Select(examColumns...).From("exams e").Where(squirrel.Eq{"e.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get exam query: %w", err)
	}
	e, err := scanExam(r.db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, notFound(err, "exam")
	}
	return &e, nil
}

// CreateExam inserts an exam. An unknown department yields
// apperrors.ErrReferenceNotFound.
func (r *ExamRepository) CreateExam(ctx context.Context, e *models.Exam) error {
	sqlStr, args, err := r.sb.Insert("exams").SetMap(map[string]interface{}{
		"title":         e.Title,
		"department_id": e.DepartmentID,
		"start_date":    e.StartDate,
		"end_date":      e.EndDate,
		"time":          e.Time,
		"venue":         e.Venue,
		"instructions":  e.Instructions,
		"status":        e.Status,
		"schedule_file": helpers.GetContentNullString(e.ScheduleFile),
	}).Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert exam query: %w", err)
	}
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return mapWriteError(err, "")
	}
	return nil
}

// DeleteExam removes an exam and its results.
func (r *ExamRepository) DeleteExam(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "exams", "exam", id)
}

// ListResults returns every exam result with its exam, ordered by release date.
func (r *ExamRepository) ListResults(ctx context.Context) ([]models.ExamResult, error) {
	columns := append([]string{}, examColumns...)
	columns = append(columns,
		"er.id", "er.exam_id", "er.status", "er.release_date", "er.access_method",
		"er.required_info", "er.progress", "er.result_file",
	)
	sqlStr, args, err := r.sb.Select(columns...).
		From("exam_results er").
		Join("exams e ON er.exam_id = e.id").
		OrderBy("er.release_date ASC", "er.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exam results: %w", err)
	}
	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExamResult, error) {
		var res models.ExamResult
		var resultFile sql.NullString
		exam, err := scanExam(row,
			&res.ID, &res.ExamID, &res.Status, &res.ReleaseDate, &res.AccessMethod,
			&res.RequiredInfo, &res.Progress, &resultFile,
		)
		if err != nil {
			return res, err
		}
		res.ResultFile = helpers.StringOrEmpty(resultFile)
		res.Exam = &exam
		return res, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exam results: %w", err)
	}
	return results, nil
}

// CreateResult inserts a result inside a transaction that holds a share lock
// on the exam row. check runs against the locked exam before the insert; a
// missing exam yields apperrors.ErrReferenceNotFound.
func (r *ExamRepository) CreateResult(ctx context.Context, res *models.ExamResult, check func(exam *models.Exam) error) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		lockSQL, lockArgs, err := r.sb.Select(examColumns...).
			From("exams e").
			Where(squirrel.Eq{"e.id": res.ExamID}).
			Suffix("FOR SHARE").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build exam lock query: %w", err)
		}

		exam, err := scanExam(tx.QueryRow(ctx, lockSQL, lockArgs...))
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewReferenceNotFoundError("examId", "exam does not exist")
		}
		if err != nil {
			return fmt.Errorf("failed to load exam: %w", err)
		}
		if check != nil {
			if err := check(&exam); err != nil {
				return err
			}
		}

		sqlStr, args, err := r.sb.Insert("exam_results").SetMap(map[string]interface{}{
			"exam_id":       res.ExamID,
			"status":        res.Status,
			"release_date":  res.ReleaseDate,
			"access_method": res.AccessMethod,
			"required_info": res.RequiredInfo,
			"progress":      res.Progress,
			"result_file":   helpers.GetContentNullString(res.ResultFile),
		}).Suffix("RETURNING id").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert result query: %w", err)
		}
		if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&res.ID); err != nil {
			return mapWriteError(err, "")
		}
		res.Exam = &exam
		return nil
	})
}

// DeleteResult removes an exam result.
func (r *ExamRepository) DeleteResult(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "exam_results", "exam result", id)
}

// ListRules returns rules by sort order, then creation time. visibleOnly hides
// rules that are switched off.
func (r *ExamRepository) ListRules(ctx context.Context, visibleOnly bool) ([]models.Rule, error) {
	query := r.sb.Select("id", "category", "content", "visible", "sort_order", "created_at").
		From("rules").
		OrderBy("sort_order ASC", "created_at ASC", "id ASC")
	if visibleOnly {
		query = query.Where(squirrel.Eq{"visible": true})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list rules query: %w", err)
	}
	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	rules, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Rule, error) {
		var rule models.Rule
		err := row.Scan(&rule.ID, &rule.Category, &rule.Content, &rule.Visible, &rule.SortOrder, &rule.CreatedAt)
		return rule, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rules: %w", err)
	}
	return rules, nil
}

// CreateRule inserts a rule and sets its ID and creation time.
func (r *ExamRepository) CreateRule(ctx context.Context, rule *models.Rule) error {
	sqlStr, args, err := r.sb.Insert("rules").SetMap(map[string]interface{}{
		"category":   rule.Category,
		"content":    rule.Content,
		"visible":    rule.Visible,
		"sort_order": rule.SortOrder,
	}).Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert rule query: %w", err)
	}
	return r.db.QueryRow(ctx, sqlStr, args...).Scan(&rule.ID, &rule.CreatedAt)
}

// DeleteRule removes a rule.
func (r *ExamRepository) DeleteRule(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, r.sb, "rules", "rule", id)
}
