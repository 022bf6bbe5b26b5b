package models

import (
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
)

// Request модели

// CancelSessionRequest запрос на отмену занятия
type CancelSessionRequest struct {
	UserID             int64   `json:"userId"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// GetInstructorSessionsRequest запрос на получение расписания инструктора
type GetInstructorSessionsRequest struct {
	InstructorID    int64      `json:"instructorId"`
	From            *time.Time `json:"from,omitempty"` // Начало периода (опционально)
	To              *time.Time `json:"to,omitempty"`   // Конец периода, исключительно (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetInstructorSessionsRequest) ToDomainFilter() domain.InstructorSessionsFilter {
	return domain.InstructorSessionsFilter{
		InstructorID:    r.InstructorID,
		From:            r.From,
		To:              r.To,
		IncludeInactive: r.IncludeInactive,
	}
}

// Response модели

// SessionResponse ответ с данными занятия
type SessionResponse struct {
	ID                 int64      `json:"id"`
	InstructorID       int64      `json:"instructorId"`
	StudentID          int64      `json:"studentId"`
	Start              time.Time  `json:"start"`
	End                time.Time  `json:"end"`
	Date               string     `json:"date"`      // "2025-10-15"
	StartTime          string     `json:"startTime"` // "9:00 AM"
	EndTime            string     `json:"endTime"`   // "11:00 AM"
	DurationMinutes    int        `json:"durationMinutes"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// SessionListResponse список занятий
type SessionListResponse struct {
	Sessions []SessionResponse `json:"sessions"`
	Total    int               `json:"total"`
}

// FromDomainSession конвертирует domain модель в response
func FromDomainSession(s *domain.DrivingSession) *SessionResponse {
	return &SessionResponse{
		ID:                 s.ID,
		InstructorID:       s.InstructorID,
		StudentID:          s.StudentID,
		Start:              s.StartAt,
		End:                s.EndAt,
		Date:               s.StartAt.Format(domain.DateFormat),
		StartTime:          scheduling.FormatClock(s.StartAt),
		EndTime:            scheduling.FormatClock(s.EndAt),
		DurationMinutes:    s.DurationMinutes(),
		Status:             string(s.Status),
		Notes:              s.Notes,
		CancellationReason: s.CancellationReason,
		CancelledAt:        s.CancelledAt,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// FromDomainSessionList конвертирует список domain моделей в response
func FromDomainSessionList(sessions []*domain.DrivingSession) *SessionListResponse {
	list := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		list = append(list, *FromDomainSession(s))
	}
	return &SessionListResponse{
		Sessions: list,
		Total:    len(list),
	}
}
