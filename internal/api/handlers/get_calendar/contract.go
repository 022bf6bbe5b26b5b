package get_calendar

import (
	"context"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar/models"
)

type CalendarService interface {
	Get(ctx context.Context, instructorID int64) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
