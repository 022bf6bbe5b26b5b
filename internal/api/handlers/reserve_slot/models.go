package reserve_slot

import (
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	reserveSlot "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/reserve_slot"
)

// ReserveSlotRequest HTTP request model
type ReserveSlotRequest struct {
	InstructorID int64     `json:"instructorId"`
	Start        time.Time `json:"start"` // RFC 3339, как в ответе поиска слотов
	End          time.Time `json:"end"`
	Notes        *string   `json:"notes,omitempty"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	ID              int64   `json:"id"`
	InstructorID    int64   `json:"instructorId"`
	StudentID       int64   `json:"studentId"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReserveSlotRequest) ToUseCaseRequest(studentID int64) *reserveSlot.Request {
	return &reserveSlot.Request{
		InstructorID: r.InstructorID,
		StudentID:    studentID,
		Start:        r.Start,
		End:          r.End,
		Notes:        r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *SessionResponse {
	return &SessionResponse{
		ID:              resp.ID,
		InstructorID:    resp.InstructorID,
		StudentID:       resp.StudentID,
		Start:           resp.Start.Format(time.RFC3339),
		End:             resp.End.Format(time.RFC3339),
		Date:            resp.Start.Format(domain.DateFormat),
		StartTime:       scheduling.FormatClock(resp.Start),
		EndTime:         scheduling.FormatClock(resp.End),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
