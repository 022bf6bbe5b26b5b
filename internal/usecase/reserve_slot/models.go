package reserve_slot

import (
	"time"
)

// Request модель запроса на бронирование слота
type Request struct {
	InstructorID int64
	StudentID    int64     // ID ученика (X-User-ID)
	Start        time.Time // Начало слота, как его вернул поиск доступных слотов
	End          time.Time
	Notes        *string // Комментарий к занятию (опционально)
}

// Response модель ответа с созданным занятием
type Response struct {
	ID              int64
	InstructorID    int64
	StudentID       int64
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
