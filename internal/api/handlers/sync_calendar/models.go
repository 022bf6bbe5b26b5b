package sync_calendar

import (
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	syncCalendar "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/sync_external_calendar"
)

// SyncResponse HTTP модель итога синхронизации
type SyncResponse struct {
	InstructorID int64  `json:"instructorId"`
	From         string `json:"from"`
	To           string `json:"to"`
	DaysSynced   int    `json:"daysSynced"`
	BlocksSynced int    `json:"blocksSynced"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *syncCalendar.Response) *SyncResponse {
	return &SyncResponse{
		InstructorID: resp.InstructorID,
		From:         resp.From.Format(domain.DateFormat),
		To:           resp.To.Format(domain.DateFormat),
		DaysSynced:   resp.DaysSynced,
		BlocksSynced: resp.BlocksSynced,
	}
}
