package sync_external_calendar

import "time"

// Request модель запроса на синхронизацию; From и To - календарные даты включительно
type Request struct {
	InstructorID int64
	From         time.Time
	To           time.Time
}

// Response итог синхронизации
type Response struct {
	InstructorID int64
	From         time.Time
	To           time.Time
	DaysSynced   int
	BlocksSynced int
}
