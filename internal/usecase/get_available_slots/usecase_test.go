package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	calendarRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/logger"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/metrics"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/ptr"
)

type fakeCalendars struct {
	byInstructor map[int64]*domain.WorkingCalendar
	err          error
}

func (f *fakeCalendars) GetByInstructorID(ctx context.Context, instructorID int64) (*domain.WorkingCalendar, error) {
	if f.err != nil {
		return nil, f.err
	}
	cal, ok := f.byInstructor[instructorID]
	if !ok {
		return nil, calendarRepo.ErrCalendarNotFound
	}
	return cal, nil
}

type fakeOccupancy struct {
	byInstructor map[int64][]domain.Interval
	err          error
	calls        int
}

func (f *fakeOccupancy) LoadOccupancy(ctx context.Context, instructorID int64, from, to time.Time) ([]domain.Interval, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.byInstructor[instructorID], nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

// Friday 2024-03-15
var day = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return time.Date(2024, 3, 15, hour, 0, 0, 0, time.UTC)
}

func calendar(id int64) *domain.WorkingCalendar {
	return &domain.WorkingCalendar{
		InstructorID:        id,
		WorkingDays:         []int{1, 2, 3, 4, 5},
		StartTime:           "9:00 AM",
		EndTime:             "5:00 PM",
		SlotIntervalMinutes: 60,
		MinNoticeHours:      12,
		IsActive:            true,
		Timezone:            "UTC",
	}
}

func newUseCase(cals *fakeCalendars, occ *fakeOccupancy, now time.Time) *UseCase {
	uc := NewUseCase(cals, occ, metrics.NewAvailabilityRecorder(nil), logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func startHours(slots []domain.TimeSlot) []int {
	out := make([]int, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.Hour())
	}
	return out
}

func TestExecuteFiltersOccupancy(t *testing.T) {
	cals := &fakeCalendars{byInstructor: map[int64]*domain.WorkingCalendar{1: calendar(1)}}
	occ := &fakeOccupancy{byInstructor: map[int64][]domain.Interval{1: {
		{Start: at(10), End: at(11), Source: domain.SourceDrivingSession},
		{Start: at(13), End: at(16), Source: domain.SourceClassCommitment},
	}}}
	uc := newUseCase(cals, occ, day.AddDate(0, 0, -2))

	resp, err := uc.Execute(context.Background(), &Request{InstructorIDs: []int64{1}, Date: day, DurationMinutes: 60})
	require.NoError(t, err)

	assert.Equal(t, []int{9, 11, 12, 16}, startHours(resp.Slots))
	assert.Empty(t, resp.Warnings)
}

func TestExecuteNoticeCutoff(t *testing.T) {
	cal := calendar(1)
	cal.StartTime = "6:00 AM"
	cal.EndTime = "11:00 PM"
	cals := &fakeCalendars{byInstructor: map[int64]*domain.WorkingCalendar{1: cal}}
	uc := newUseCase(cals, &fakeOccupancy{}, at(8))

	resp, err := uc.Execute(context.Background(), &Request{InstructorIDs: []int64{1}, Date: day, DurationMinutes: 60})
	require.NoError(t, err)

	// cutoff = 8:00 + 12h = 20:00
	assert.Equal(t, []int{20, 21, 22}, startHours(resp.Slots))
	for _, s := range resp.Slots {
		assert.False(t, s.Start.Before(at(20)))
	}
}

func TestExecuteZeroAvailabilityCases(t *testing.T) {
	inactive := calendar(2)
	inactive.IsActive = false
	weekend := calendar(3)
	weekend.WorkingDays = []int{0, 6}

	cals := &fakeCalendars{byInstructor: map[int64]*domain.WorkingCalendar{2: inactive, 3: weekend}}
	occ := &fakeOccupancy{}
	uc := newUseCase(cals, occ, day.AddDate(0, 0, -2))

	for _, id := range []int64{1, 2, 3} {
		resp, err := uc.Execute(context.Background(), &Request{InstructorIDs: []int64{id}, Date: day, DurationMinutes: 60})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots, "instructor %d", id)
	}
	assert.Zero(t, occ.calls)
}

func TestExecuteMisconfiguredCalendar(t *testing.T) {
	cal := calendar(1)
	cal.StartTime = "6:00 PM"
	cals := &fakeCalendars{byInstructor: map[int64]*domain.WorkingCalendar{1: cal}}
	uc := newUseCase(cals, &fakeOccupancy{}, day)

	_, err := uc.Execute(context.Background(), &Request{InstructorIDs: []int64{1}, Date: day, DurationMinutes: 60})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)

	var cfgErr *scheduling.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, scheduling.MsgEndBeforeStart, cfgErr.Issues[0].Message)
}

func TestExecuteMergesInstructors(t *testing.T) {
	second := calendar(2)
	second.StartTime = "10:00 AM"
	second.EndTime = "1:00 PM"
	second.BreakStart = ptr.Ptr("11:00 AM")

	cals := &fakeCalendars{byInstructor: map[int64]*domain.WorkingCalendar{1: calendar(1), 2: second}}
	uc := newUseCase(cals, &fakeOccupancy{}, day.AddDate(0, 0, -2))

	resp, err := uc.Execute(context.Background(), &Request{InstructorIDs: []int64{2, 1, 2}, Date: day, DurationMinutes: 120})
	require.NoError(t, err)

	type key struct {
		id   int64
		hour int
	}
	got := make([]key, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		got = append(got, key{s.InstructorID, s.Start.Hour()})
	}
	assert.Equal(t, []key{
		{1, 9}, {1, 10}, {2, 10}, {1, 11}, {2, 11}, {1, 12}, {1, 13}, {1, 14}, {1, 15},
	}, got)

	// у обоих неполный последний слот, у второго ещё перерыв без конца
	require.Len(t, resp.Warnings, 2)
	assert.Equal(t, int64(2), resp.Warnings[0].InstructorID)
	assert.Len(t, resp.Warnings[0].Issues, 2)
}

func TestExecuteFailsWholeRequestOnIOError(t *testing.T) {
	cals := &fakeCalendars{byInstructor: map[int64]*domain.WorkingCalendar{1: calendar(1), 2: calendar(2)}}
	occ := &fakeOccupancy{err: errors.New("db down")}
	uc := newUseCase(cals, occ, day.AddDate(0, 0, -2))

	resp, err := uc.Execute(context.Background(), &Request{InstructorIDs: []int64{1, 2}, Date: day, DurationMinutes: 60})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)

	uc = newUseCase(&fakeCalendars{err: errors.New("db down")}, &fakeOccupancy{}, day)
	_, err = uc.Execute(context.Background(), &Request{InstructorIDs: []int64{1}, Date: day, DurationMinutes: 60})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteValidatesInput(t *testing.T) {
	uc := newUseCase(&fakeCalendars{}, &fakeOccupancy{}, day)

	for name, req := range map[string]*Request{
		"no instructors": {Date: day, DurationMinutes: 60},
		"negative id":    {InstructorIDs: []int64{-1}, Date: day, DurationMinutes: 60},
		"no date":        {InstructorIDs: []int64{1}, DurationMinutes: 60},
		"too short":      {InstructorIDs: []int64{1}, Date: day, DurationMinutes: 5},
		"too long":       {InstructorIDs: []int64{1}, Date: day, DurationMinutes: 600},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
