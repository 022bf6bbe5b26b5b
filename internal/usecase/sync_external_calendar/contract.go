package sync_external_calendar

import (
	"context"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// CalendarBridge клиент моста внешних календарей
type CalendarBridge interface {
	GetBusyBlocks(ctx context.Context, instructorID int64, from, to time.Time) ([]domain.BusyBlock, error)
}

// BusyBlockStore кеш занятости по дням
type BusyBlockStore interface {
	Replace(ctx context.Context, instructorID int64, day time.Time, blocks []domain.BusyBlock) error
}

// CalendarRepository нужен только для часового пояса инструктора
type CalendarRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.WorkingCalendar, error)
}

// MetricsRecorder счетчик запусков синхронизации
type MetricsRecorder interface {
	CalendarSync(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
