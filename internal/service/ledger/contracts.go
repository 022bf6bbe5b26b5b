package ledger

import (
	"context"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// SessionRepository источник активных занятий по вождению
type SessionRepository interface {
	GetActiveInRange(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.DrivingSession, error)
}

// CommitmentRepository источник учебных дней классов и отпусков
type CommitmentRepository interface {
	GetClassCommitments(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.ClassCommitment, error)
	GetApprovedTimeOff(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.TimeOff, error)
}

// BusyBlockStore кеш занятости из внешних календарей
type BusyBlockStore interface {
	Get(ctx context.Context, instructorID int64, day time.Time) ([]domain.BusyBlock, error)
}
