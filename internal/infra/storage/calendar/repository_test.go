package calendar

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
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/ptr"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/txmanager"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewRepository(dbmetrics.Wrap(db, nil)), mock, func() { db.Close() }
}

func TestGetByInstructorID(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	ts := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM instructor_working_calendars WHERE instructor_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			int64(5), "{1,2,3,4,5}", "9:00 AM", "5:00 PM", "12:00 PM", "1:00 PM",
			60, 12.0, true, "America/New_York", ts, ts,
		))

	cal, err := repo.GetByInstructorID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cal.WorkingDays)
	assert.Equal(t, "9:00 AM", cal.StartTime)
	require.NotNil(t, cal.BreakStart)
	assert.Equal(t, "12:00 PM", *cal.BreakStart)
	assert.Equal(t, 12.0, cal.MinNoticeHours)
	assert.Equal(t, "America/New_York", cal.Timezone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByInstructorIDNotFound(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	mock.ExpectQuery("FROM instructor_working_calendars").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByInstructorID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrCalendarNotFound)
}

func TestUpsert(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	ts := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO instructor_working_calendars")+".*ON CONFLICT \\(instructor_id\\) DO UPDATE").
		WithArgs(int64(5), "{1,3,5}", "8:00 AM", "4:00 PM", "12:00 PM", nil, 30, 2.5, true, "UTC").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(ts, ts))

	cal, err := repo.Upsert(context.Background(), &domain.WorkingCalendar{
		InstructorID:        5,
		WorkingDays:         []int{1, 3, 5},
		StartTime:           "8:00 AM",
		EndTime:             "4:00 PM",
		BreakStart:          ptr.Ptr("12:00 PM"),
		SlotIntervalMinutes: 30,
		MinNoticeHours:      2.5,
		IsActive:            true,
		Timezone:            "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, ts, cal.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertExecError(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO instructor_working_calendars").WillReturnError(errors.New("disk full"))

	_, err := repo.Upsert(context.Background(), &domain.WorkingCalendar{InstructorID: 5})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestGetByInstructorIDKeepsDriverError(t *testing.T) {
	repo, mock, cleanup := newRepo(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("FROM instructor_working_calendars")).
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.GetByInstructorID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrScanRow)
	assert.True(t, txmanager.IsSerializationFailure(err))
}
