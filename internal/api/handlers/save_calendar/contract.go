package save_calendar

import (
	"context"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar/models"
)

type CalendarService interface {
	Save(ctx context.Context, req *models.SaveCalendarRequest) (*models.SaveCalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
