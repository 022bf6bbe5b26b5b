package calendar

import (
	"context"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// CalendarRepository интерфейс репозитория рабочих календарей
type CalendarRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.WorkingCalendar, error)
	Upsert(ctx context.Context, cal *domain.WorkingCalendar) (*domain.WorkingCalendar, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
