package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	sessionRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/session"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions/models"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/logger"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/ptr"
)

type fakeSessions struct {
	byID      map[int64]*domain.DrivingSession
	listed    domain.InstructorSessionsFilter
	listErr   error
	cancelled []domain.SessionStatus
}

func (f *fakeSessions) GetByID(ctx context.Context, id int64) (*domain.DrivingSession, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessions) GetByInstructor(ctx context.Context, filter domain.InstructorSessionsFilter) ([]*domain.DrivingSession, error) {
	f.listed = filter
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.DrivingSession, 0)
	for _, s := range f.byID {
		if s.InstructorID == filter.InstructorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSessions) Cancel(ctx context.Context, id int64, status domain.SessionStatus, reason *string, cancelledAt time.Time) error {
	s, ok := f.byID[id]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.Status = status
	s.CancellationReason = reason
	s.CancelledAt = &cancelledAt
	f.cancelled = append(f.cancelled, status)
	return nil
}

type directTx struct{}

func (directTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC)

func newTestService(repo *fakeSessions) *Service {
	svc := NewService(repo, directTx{}, logger.NewNop())
	svc.timeProvider = fixedTime{now: now}
	return svc
}

func scheduled(id, instructorID, studentID int64) *domain.DrivingSession {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	return &domain.DrivingSession{
		ID:           id,
		InstructorID: instructorID,
		StudentID:    studentID,
		StartAt:      start,
		EndAt:        start.Add(time.Hour),
		Status:       domain.SessionScheduled,
	}
}

func TestGetByID(t *testing.T) {
	repo := &fakeSessions{byID: map[int64]*domain.DrivingSession{1: scheduled(1, 7, 42)}}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.StudentID)
	assert.Equal(t, "2024-03-15", resp.Date)
	assert.Equal(t, "10:00 AM", resp.StartTime)
	assert.Equal(t, "11:00 AM", resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "scheduled", resp.Status)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCancelByStudent(t *testing.T) {
	repo := &fakeSessions{byID: map[int64]*domain.DrivingSession{1: scheduled(1, 7, 42)}}
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelSessionRequest{
		UserID:             42,
		CancellationReason: ptr.Ptr("sick"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.SessionCancelledByStudent), resp.Status)
	require.NotNil(t, resp.CancelledAt)
	assert.True(t, resp.CancelledAt.Equal(now))
	assert.Equal(t, "sick", *resp.CancellationReason)
	assert.Equal(t, []domain.SessionStatus{domain.SessionCancelledByStudent}, repo.cancelled)
}

func TestCancelBySchool(t *testing.T) {
	repo := &fakeSessions{byID: map[int64]*domain.DrivingSession{1: scheduled(1, 7, 42)}}
	svc := newTestService(repo)

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelSessionRequest{UserID: 3})
	require.NoError(t, err)
	assert.Equal(t, string(domain.SessionCancelledBySchool), resp.Status)
}

func TestCancelTwiceFails(t *testing.T) {
	repo := &fakeSessions{byID: map[int64]*domain.DrivingSession{1: scheduled(1, 7, 42)}}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelSessionRequest{UserID: 42})
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), 1, &models.CancelSessionRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Len(t, repo.cancelled, 1)
}

func TestCancelValidation(t *testing.T) {
	repo := &fakeSessions{byID: map[int64]*domain.DrivingSession{1: scheduled(1, 7, 42)}}
	svc := newTestService(repo)

	_, err := svc.Cancel(context.Background(), 1, &models.CancelSessionRequest{UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	long := string(make([]rune, domain.MaxCancellationReasonLength+1))
	_, err = svc.Cancel(context.Background(), 1, &models.CancelSessionRequest{UserID: 42, CancellationReason: &long})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Cancel(context.Background(), 5, &models.CancelSessionRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Empty(t, repo.cancelled)
}

func TestGetInstructorSessions(t *testing.T) {
	repo := &fakeSessions{byID: map[int64]*domain.DrivingSession{
		1: scheduled(1, 7, 42),
		2: scheduled(2, 8, 43),
	}}
	svc := newTestService(repo)

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	resp, err := svc.GetInstructorSessions(context.Background(), &models.GetInstructorSessionsRequest{
		InstructorID: 7,
		From:         &from,
		To:           &to,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, int64(7), repo.listed.InstructorID)
	assert.False(t, repo.listed.IncludeInactive)

	_, err = svc.GetInstructorSessions(context.Background(), &models.GetInstructorSessionsRequest{
		InstructorID: 7,
		From:         &to,
		To:           &from,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("db down")
	_, err = svc.GetInstructorSessions(context.Background(), &models.GetInstructorSessionsRequest{InstructorID: 7})
	assert.ErrorIs(t, err, ErrInternal)
}
