package domain

import "time"

// WorkingCalendar weekly availability of a single instructor.
// Clock fields keep the "h:mm AM/PM" text used by the configuration screens.
type WorkingCalendar struct {
	InstructorID        int64
	WorkingDays         []int // 0=Sunday .. 6=Saturday
	StartTime           string
	EndTime             string
	BreakStart          *string
	BreakEnd            *string
	SlotIntervalMinutes int
	MinNoticeHours      float64
	IsActive            bool
	Timezone            string // IANA name, empty means UTC
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// WorksOn returns true if the weekday is one of the calendar's working days
func (c *WorkingCalendar) WorksOn(day time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == int(day) {
			return true
		}
	}
	return false
}

// Location resolves the calendar timezone, falling back to UTC
func (c *WorkingCalendar) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}
