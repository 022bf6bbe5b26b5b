package domain

import "time"

// SessionStatus represents the status of a driving session
type SessionStatus string

const (
	SessionScheduled          SessionStatus = "scheduled"
	SessionCompleted          SessionStatus = "completed"
	SessionCancelledByStudent SessionStatus = "cancelled_by_student"
	SessionCancelledBySchool  SessionStatus = "cancelled_by_school"
	SessionNoShow             SessionStatus = "no_show"
)

// DrivingSession a behind-the-wheel appointment between an instructor and a student
type DrivingSession struct {
	ID           int64
	InstructorID int64
	StudentID    int64
	StartAt      time.Time
	EndAt        time.Time
	Status       SessionStatus
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the session still occupies the instructor's time
func (s *DrivingSession) IsActive() bool {
	return s.Status == SessionScheduled || s.Status == SessionCompleted
}

// CanBeCancelled returns true if the session can be cancelled
func (s *DrivingSession) CanBeCancelled() bool {
	return s.Status == SessionScheduled
}

// DurationMinutes returns the session length in whole minutes
func (s *DrivingSession) DurationMinutes() int {
	return int(s.EndAt.Sub(s.StartAt) / time.Minute)
}

// InstructorSessionsFilter фильтр для получения занятий инструктора
type InstructorSessionsFilter struct {
	InstructorID    int64      // Обязательный параметр
	From            *time.Time // Начало периода (включительно), nil - без ограничения
	To              *time.Time // Конец периода (исключительно), nil - без ограничения
	IncludeInactive bool       // Включать отмененные и no-show
}
