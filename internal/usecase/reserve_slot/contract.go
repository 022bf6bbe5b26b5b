package reserve_slot

import (
	"context"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// SessionRepository интерфейс репозитория занятий
type SessionRepository interface {
	Create(ctx context.Context, session *domain.DrivingSession) (*domain.DrivingSession, error)
}

// CalendarRepository интерфейс репозитория рабочих календарей
type CalendarRepository interface {
	GetByInstructorID(ctx context.Context, instructorID int64) (*domain.WorkingCalendar, error)
}

// OccupancyLoader сводная занятость инструктора
type OccupancyLoader interface {
	LoadOccupancy(ctx context.Context, instructorID int64, from, to time.Time) ([]domain.Interval, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder счетчик исходов бронирования
type MetricsRecorder interface {
	Reservation(result string)
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
