package domain

import "time"

// TimeSlot a candidate bookable interval for an instructor. Never persisted.
type TimeSlot struct {
	InstructorID int64
	Start        time.Time
	End          time.Time
}

// DurationMinutes returns the slot length in whole minutes
func (s TimeSlot) DurationMinutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}
