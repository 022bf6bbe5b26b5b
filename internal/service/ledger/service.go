package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
)

// Service сводит занятость инструктора из всех источников в единый список интервалов.
// Для движка доступности источник интервала значения не имеет.
type Service struct {
	sessions    SessionRepository
	commitments CommitmentRepository
	busyBlocks  BusyBlockStore
}

// NewService создает сервис занятости
func NewService(sessions SessionRepository, commitments CommitmentRepository, busyBlocks BusyBlockStore) *Service {
	return &Service{
		sessions:    sessions,
		commitments: commitments,
		busyBlocks:  busyBlocks,
	}
}

// LoadOccupancy возвращает занятые интервалы инструктора, пересекающиеся с [from, to).
// Ошибка любого источника проваливает весь вызов, частичный результат не возвращается.
func (s *Service) LoadOccupancy(ctx context.Context, instructorID int64, from, to time.Time) ([]domain.Interval, error) {
	intervals := make([]domain.Interval, 0)

	sessions, err := s.sessions.GetActiveInRange(ctx, instructorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: instructor=%d: %w", ErrLoadSessions, instructorID, err)
	}
	for _, session := range sessions {
		intervals = append(intervals, domain.Interval{Start: session.StartAt, End: session.EndAt, Source: domain.SourceDrivingSession})
	}

	commitments, err := s.commitments.GetClassCommitments(ctx, instructorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: instructor=%d: %w", ErrLoadCommitments, instructorID, err)
	}
	for _, c := range commitments {
		intervals = append(intervals, domain.Interval{Start: c.StartAt, End: c.EndAt, Source: domain.SourceClassCommitment})
	}

	timeOff, err := s.commitments.GetApprovedTimeOff(ctx, instructorID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: instructor=%d: %w", ErrLoadTimeOff, instructorID, err)
	}
	for _, t := range timeOff {
		intervals = append(intervals, domain.Interval{Start: t.StartAt, End: t.EndAt, Source: domain.SourceTimeOff})
	}

	// Блоки внешнего календаря лежат по дням, обходим каждый день окна
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		blocks, err := s.busyBlocks.Get(ctx, instructorID, day)
		if err != nil {
			return nil, fmt.Errorf("%w: instructor=%d: %w", ErrLoadBusyBlocks, instructorID, err)
		}
		for _, b := range blocks {
			if !scheduling.Overlaps(b.Start, b.End, from, to) {
				continue
			}
			intervals = append(intervals, domain.Interval{Start: b.Start, End: b.End, Source: domain.SourceExternalBusy})
		}
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})

	return intervals, nil
}
