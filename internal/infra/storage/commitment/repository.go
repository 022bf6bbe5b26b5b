package commitment

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/dbmetrics"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/psqlbuilder"
)

// Repository читает занятость инструктора вне вождения: учебные дни классов и отпуска.
// Записи создаются другими частями системы, здесь только чтение.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetClassCommitments получает учебные дни классов инструктора, пересекающиеся с [from, to)
func (r *Repository) GetClassCommitments(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.ClassCommitment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "instructor_id", "class_id", "start_at", "end_at").
		From("class_commitments").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetClassCommitments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetClassCommitments - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	commitments := make([]*domain.ClassCommitment, 0)
	for rows.Next() {
		var c domain.ClassCommitment
		if err := rows.Scan(&c.ID, &c.InstructorID, &c.ClassID, &c.StartAt, &c.EndAt); err != nil {
			return nil, fmt.Errorf("%w: GetClassCommitments - scan row: %w", ErrScanRow, err)
		}
		commitments = append(commitments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetClassCommitments - rows error: %w", ErrScanRow, err)
	}

	return commitments, nil
}

// GetApprovedTimeOff получает одобренные отпуска инструктора, пересекающиеся с [from, to).
// Заявки в статусах pending и rejected время не блокируют.
func (r *Repository) GetApprovedTimeOff(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.TimeOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "instructor_id", "start_at", "end_at", "status", "reason").
		From("instructor_time_off").
		Where(squirrel.Eq{"instructor_id": instructorID}).
		Where(squirrel.Eq{"status": string(domain.TimeOffApproved)}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedTimeOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetApprovedTimeOff - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	timeOff := make([]*domain.TimeOff, 0)
	for rows.Next() {
		var t domain.TimeOff
		if err := rows.Scan(&t.ID, &t.InstructorID, &t.StartAt, &t.EndAt, &t.Status, &t.Reason); err != nil {
			return nil, fmt.Errorf("%w: GetApprovedTimeOff - scan row: %w", ErrScanRow, err)
		}
		timeOff = append(timeOff, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetApprovedTimeOff - rows error: %w", ErrScanRow, err)
	}

	return timeOff, nil
}
