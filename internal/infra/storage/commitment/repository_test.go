package commitment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/dbmetrics"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/txmanager"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewRepository(dbmetrics.Wrap(db, nil)), mock, func() { db.Close() }
}

func TestGetClassCommitments(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM class_commitments WHERE instructor_id = $1 AND start_at < $2 AND end_at > $3")).
		WithArgs(int64(3), to, from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "instructor_id", "class_id", "start_at", "end_at"}).
			AddRow(int64(1), int64(3), int64(77), from.Add(13*time.Hour), from.Add(16*time.Hour)))

	commitments, err := repo.GetClassCommitments(context.Background(), 3, from, to)
	require.NoError(t, err)
	require.Len(t, commitments, 1)
	assert.Equal(t, int64(77), commitments[0].ClassID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetApprovedTimeOffFiltersByStatus(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM instructor_time_off WHERE instructor_id = $1 AND status = $2")).
		WithArgs(int64(3), "approved", to, from).
		WillReturnRows(sqlmock.NewRows([]string{"id", "instructor_id", "start_at", "end_at", "status", "reason"}).
			AddRow(int64(9), int64(3), from.Add(-24*time.Hour), from.Add(48*time.Hour), "approved", "vacation"))

	timeOff, err := repo.GetApprovedTimeOff(context.Background(), 3, from, to)
	require.NoError(t, err)
	require.Len(t, timeOff, 1)
	assert.Equal(t, domain.TimeOffApproved, timeOff[0].Status)
	assert.Equal(t, "vacation", *timeOff[0].Reason)
}

func TestGetApprovedTimeOffQueryError(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	mock.ExpectQuery("FROM instructor_time_off").WillReturnError(errors.New("timeout"))

	_, err := repo.GetApprovedTimeOff(context.Background(), 3, time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestSerializationFailureSurvivesWrapping(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	from := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(regexp.QuoteMeta("FROM class_commitments")).
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectQuery(regexp.QuoteMeta("FROM instructor_time_off")).
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.GetClassCommitments(context.Background(), 3, from, to)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, txmanager.IsSerializationFailure(err))

	_, err = repo.GetApprovedTimeOff(context.Background(), 3, from, to)
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.True(t, txmanager.IsSerializationFailure(err))
}
