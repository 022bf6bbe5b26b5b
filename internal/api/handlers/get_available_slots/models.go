package get_available_slots

import (
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	getAvailableSlots "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	InstructorID    int64     `json:"instructorId"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	StartTime       string    `json:"startTime"` // "9:00 AM"
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
}

// InstructorWarningsResponse предупреждения по календарю инструктора
type InstructorWarningsResponse struct {
	InstructorID int64            `json:"instructorId"`
	Issues       []handlers.Issue `json:"issues"`
}

// AvailableSlotsResponse HTTP модель ответа
type AvailableSlotsResponse struct {
	Date            string                       `json:"date"`
	DurationMinutes int                          `json:"durationMinutes"`
	Slots           []SlotResponse               `json:"slots"`
	Warnings        []InstructorWarningsResponse `json:"warnings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			InstructorID:    s.InstructorID,
			Start:           s.Start,
			End:             s.End,
			StartTime:       scheduling.FormatClock(s.Start),
			EndTime:         scheduling.FormatClock(s.End),
			DurationMinutes: s.DurationMinutes(),
		})
	}

	warnings := make([]InstructorWarningsResponse, 0, len(resp.Warnings))
	for _, w := range resp.Warnings {
		warnings = append(warnings, InstructorWarningsResponse{
			InstructorID: w.InstructorID,
			Issues:       handlers.FromIssues(w.Issues),
		})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
		Warnings:        warnings,
	}
}
