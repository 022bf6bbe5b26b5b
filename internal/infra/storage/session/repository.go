package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/dbmetrics"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/psqlbuilder"
)

const table = "driving_sessions"

// PostgreSQL коды ошибок, означающие занятый интервал
const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
)

var columns = []string{
	"id",
	"instructor_id",
	"student_id",
	"start_at",
	"end_at",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с занятиями по вождению
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория занятий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое занятие.
// Пересечение с другим активным занятием инструктора отклоняется базой
// (unique + exclusion constraint) и возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, s *domain.DrivingSession) (*domain.DrivingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"instructor_id",
			"student_id",
			"start_at",
			"end_at",
			"status",
			"notes",
		).
		Values(
			s.InstructorID,
			s.StudentID,
			s.StartAt,
			s.EndAt,
			s.Status,
			s.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if IsConflict(err) {
			return nil, fmt.Errorf("%w: instructor=%d start=%s", ErrSlotTaken, s.InstructorID, s.StartAt.Format(time.RFC3339))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает занятие по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) до её завершения.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DrivingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan session: %w", ErrScanRow, err)
	}

	return s, nil
}

// GetByInstructor получает занятия инструктора с фильтрацией по периоду и статусу.
// Период фильтруется по пересечению: занятие попадает в [From, To), если хотя бы частично в нем лежит.
func (r *Repository) GetByInstructor(ctx context.Context, filter domain.InstructorSessionsFilter) ([]*domain.DrivingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"instructor_id": filter.InstructorID})

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
	}

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": statusStrings(domain.ActiveSessionStatuses)})
	}

	query, args, err := selectBuilder.OrderBy("start_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructor - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetActiveInRange получает активные занятия инструктора, пересекающиеся с [from, to).
// Внутри транзакции строки блокируются, чтобы параллельное бронирование ждало завершения.
func (r *Repository) GetActiveInRange(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.DrivingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"instructor_id": instructorID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveSessionStatuses)}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// Cancel отменяет занятие с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.SessionStatus, reason *string, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", cancelledAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// IsConflict сообщает, что ошибка базы означает уже занятый интервал
func IsConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation || pqErr.Code == pqExclusionViolation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.DrivingSession, error) {
	var s domain.DrivingSession
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.InstructorID,
		&s.StudentID,
		&s.StartAt,
		&s.EndAt,
		&s.Status,
		&s.Notes,
		&s.CancellationReason,
		&s.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSessions сканирует результаты запроса в слайс занятий
func scanSessions(rows *sql.Rows) ([]*domain.DrivingSession, error) {
	sessions := make([]*domain.DrivingSession, 0)

	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSessions - scan row: %w", ErrScanRow, err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSessions - rows error: %w", ErrScanRow, err)
	}

	return sessions, nil
}

func statusStrings(statuses []domain.SessionStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
