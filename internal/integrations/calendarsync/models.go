package calendarsync

import "time"

// BusyResponse ответ моста календарей
type BusyResponse struct {
	InstructorID int64       `json:"instructorId"`
	Blocks       []BusyEvent `json:"blocks"`
}

// BusyEvent занятый интервал во внешнем календаре
type BusyEvent struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ErrorResponse модель ошибки от моста календарей
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
