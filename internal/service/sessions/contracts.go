package sessions

import (
	"context"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// SessionRepository интерфейс репозитория занятий
type SessionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.DrivingSession, error)
	GetByInstructor(ctx context.Context, filter domain.InstructorSessionsFilter) ([]*domain.DrivingSession, error)
	Cancel(ctx context.Context, id int64, status domain.SessionStatus, reason *string, cancelledAt time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
