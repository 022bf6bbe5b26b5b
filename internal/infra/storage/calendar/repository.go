package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/dbmetrics"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/psqlbuilder"
)

const table = "instructor_working_calendars"

var columns = []string{
	"instructor_id",
	"working_days",
	"start_time",
	"end_time",
	"break_start",
	"break_end",
	"slot_interval_minutes",
	"min_notice_hours",
	"is_active",
	"timezone",
	"created_at",
	"updated_at",
}

// Repository репозиторий рабочих календарей инструкторов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByInstructorID получает календарь инструктора
func (r *Repository) GetByInstructorID(ctx context.Context, instructorID int64) (*domain.WorkingCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"instructor_id": instructorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - build select query: %v", ErrBuildQuery, err)
	}

	var cal domain.WorkingCalendar
	var workingDays pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cal.InstructorID,
		&workingDays,
		&cal.StartTime,
		&cal.EndTime,
		&cal.BreakStart,
		&cal.BreakEnd,
		&cal.SlotIntervalMinutes,
		&cal.MinNoticeHours,
		&cal.IsActive,
		&cal.Timezone,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCalendarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByInstructorID - scan calendar: %w", ErrScanRow, err)
	}

	cal.WorkingDays = make([]int, len(workingDays))
	for i, d := range workingDays {
		cal.WorkingDays[i] = int(d)
	}
	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return &cal, nil
}

// Upsert создает или перезаписывает календарь инструктора (последняя запись побеждает)
func (r *Repository) Upsert(ctx context.Context, cal *domain.WorkingCalendar) (*domain.WorkingCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	workingDays := make(pq.Int64Array, len(cal.WorkingDays))
	for i, d := range cal.WorkingDays {
		workingDays[i] = int64(d)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"instructor_id",
			"working_days",
			"start_time",
			"end_time",
			"break_start",
			"break_end",
			"slot_interval_minutes",
			"min_notice_hours",
			"is_active",
			"timezone",
		).
		Values(
			cal.InstructorID,
			workingDays,
			cal.StartTime,
			cal.EndTime,
			cal.BreakStart,
			cal.BreakEnd,
			cal.SlotIntervalMinutes,
			cal.MinNoticeHours,
			cal.IsActive,
			cal.Timezone,
		).
		Suffix(`ON CONFLICT (instructor_id) DO UPDATE SET
			working_days = EXCLUDED.working_days,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			min_notice_hours = EXCLUDED.min_notice_hours,
			is_active = EXCLUDED.is_active,
			timezone = EXCLUDED.timezone,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}

	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return cal, nil
}
