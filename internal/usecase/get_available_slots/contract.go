package get_available_slots

import (
	"context"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// CalendarRepository интерфейс репозитория рабочих календарей
type CalendarRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.WorkingCalendar, error)
}

// OccupancyLoader сводная занятость инструктора (занятия, классы, отпуска, внешний календарь)
type OccupancyLoader interface {
	LoadOccupancy(ctx context.Context, instructorID int64, from, to time.Time) ([]domain.Interval, error)
}

// MetricsRecorder счетчики генерации и фильтрации слотов
type MetricsRecorder interface {
	SlotsGenerated(n int)
	SlotsFiltered(reason string, n int)
	SlotsReturned(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
