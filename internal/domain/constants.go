package domain

// Default calendar values for a newly configured instructor
const (
	DefaultSlotIntervalMinutes = 60
	DefaultMinNoticeHours      = 12
	DefaultTimezone            = "UTC"
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 15
	MaxServiceDurationMinutes   = 480 // 8 hours
	MaxSlotIntervalMinutes      = 480
	MaxMinNoticeHours           = 24 * 14
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxSyncRangeDays            = 31
	MaxInstructorsPerQuery      = 20
)

// Time format constants
const (
	ClockFormat = "3:04 PM"    // h:mm AM/PM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
)

// InactiveSessionStatuses статусы, которые не занимают время инструктора
var InactiveSessionStatuses = []SessionStatus{
	SessionCancelledByStudent,
	SessionCancelledBySchool,
	SessionNoShow,
}

// ActiveSessionStatuses статусы, которые занимают время инструктора
var ActiveSessionStatuses = []SessionStatus{
	SessionScheduled,
	SessionCompleted,
}
