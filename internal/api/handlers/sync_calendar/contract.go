package sync_calendar

import (
	"context"

	syncCalendar "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/sync_external_calendar"
)

type SyncCalendarUseCase interface {
	Execute(ctx context.Context, req *syncCalendar.Request) (*syncCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
