package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

type fakeSessions struct {
	sessions []*domain.DrivingSession
	err      error
}

func (f *fakeSessions) GetActiveInRange(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.DrivingSession, error) {
	return f.sessions, f.err
}

type fakeCommitments struct {
	classes []*domain.ClassCommitment
	timeOff []*domain.TimeOff
	err     error
}

func (f *fakeCommitments) GetClassCommitments(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.ClassCommitment, error) {
	return f.classes, f.err
}

func (f *fakeCommitments) GetApprovedTimeOff(ctx context.Context, instructorID int64, from, to time.Time) ([]*domain.TimeOff, error) {
	return f.timeOff, nil
}

type fakeBusy struct {
	byDay map[string][]domain.BusyBlock
	days  []string
}

func (f *fakeBusy) Get(ctx context.Context, instructorID int64, day time.Time) ([]domain.BusyBlock, error) {
	key := day.Format(domain.DateFormat)
	f.days = append(f.days, key)
	return f.byDay[key], nil
}

func hour(h int) time.Time {
	return time.Date(2024, 3, 15, h, 0, 0, 0, time.UTC)
}

func TestLoadOccupancyMergesAllSources(t *testing.T) {
	busy := &fakeBusy{byDay: map[string][]domain.BusyBlock{
		"2024-03-15": {
			{ExternalID: "dentist", Start: hour(8), End: hour(9)},
			{ExternalID: "yesterday-late", Start: hour(-2), End: hour(-1)},
		},
	}}
	svc := NewService(
		&fakeSessions{sessions: []*domain.DrivingSession{{StartAt: hour(10), EndAt: hour(11)}}},
		&fakeCommitments{
			classes: []*domain.ClassCommitment{{StartAt: hour(13), EndAt: hour(16)}},
			timeOff: []*domain.TimeOff{{StartAt: hour(-24), EndAt: hour(7)}},
		},
		busy,
	)

	intervals, err := svc.LoadOccupancy(context.Background(), 3, hour(0), hour(24))
	require.NoError(t, err)

	sources := make([]domain.OccupancySource, 0, len(intervals))
	for _, i := range intervals {
		sources = append(sources, i.Source)
	}
	assert.Equal(t, []domain.OccupancySource{
		domain.SourceTimeOff,
		domain.SourceExternalBusy,
		domain.SourceDrivingSession,
		domain.SourceClassCommitment,
	}, sources)
	assert.Equal(t, []string{"2024-03-15"}, busy.days)
}

func TestLoadOccupancyFailsOnAnySource(t *testing.T) {
	boom := errors.New("boom")

	svc := NewService(&fakeSessions{err: boom}, &fakeCommitments{}, &fakeBusy{})
	_, err := svc.LoadOccupancy(context.Background(), 3, hour(0), hour(24))
	assert.ErrorIs(t, err, ErrLoadSessions)

	svc = NewService(&fakeSessions{}, &fakeCommitments{err: boom}, &fakeBusy{})
	_, err = svc.LoadOccupancy(context.Background(), 3, hour(0), hour(24))
	assert.ErrorIs(t, err, ErrLoadCommitments)
}
