package scheduling

import (
	"strings"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// IssueKind severity of a validation issue
type IssueKind string

const (
	IssueError   IssueKind = "error"
	IssueWarning IssueKind = "warning"
)

// Issue a single validation finding
type Issue struct {
	Kind    IssueKind
	Field   string
	Message string
}

// Validation result of ValidateCalendar
type Validation struct {
	Errors   []Issue
	Warnings []Issue
}

// HasErrors returns true if slot generation must not run
func (v Validation) HasErrors() bool {
	return len(v.Errors) > 0
}

// Err returns a *ConfigurationError when there are errors, nil otherwise
func (v Validation) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return &ConfigurationError{Issues: v.Errors}
}

// Validation messages. The configuration UI matches on these strings.
const (
	MsgInvalidWorkingHours = "invalid start/end time format"
	MsgEndBeforeStart      = "end time must be after start time"
	MsgIntervalNotPositive = "slot interval must be positive"
	MsgIntervalTooLarge    = "slot interval cannot exceed 480 minutes"
	MsgNegativeNotice      = "minimum notice cannot be negative"
	MsgNoticeTooLarge      = "minimum notice cannot exceed 336 hours"
	MsgInvalidWorkingDay   = "working day must be between 0 (Sunday) and 6 (Saturday)"
	MsgNoWorkingDays       = "active calendar requires at least one working day"
	MsgUnknownTimezone     = "unknown timezone"
	MsgDurationNotPositive = "service duration must be positive"
	MsgDurationTooLarge    = "service duration cannot exceed 480 minutes"
	MsgBreakIncomplete     = "break window requires both start and end times"
	MsgInvalidBreakFormat  = "invalid break time format"
	MsgBreakEndBeforeStart = "break end must be after break start"
	MsgBreakOutsideHours   = "break window must lie within working hours"
	MsgIntervalCreatesGaps = "interval larger than duration creates gaps"
	MsgDurationNotMultiple = "duration not a multiple of interval, may cause scheduling issues"
)

// ValidateCalendar checks a calendar draft. Structural errors stop validation at the
// first one found; warnings accumulate. Rules that compare the service duration with
// the slot interval run only for a positive serviceDurationMinutes.
func ValidateCalendar(cal *domain.WorkingCalendar, serviceDurationMinutes int) Validation {
	var v Validation

	start, errStart := ParseClock(cal.StartTime)
	end, errEnd := ParseClock(cal.EndTime)
	if errStart != nil || errEnd != nil {
		return v.fail("startTime", MsgInvalidWorkingHours)
	}

	if end.Minutes() <= start.Minutes() {
		return v.fail("endTime", MsgEndBeforeStart)
	}

	if cal.SlotIntervalMinutes <= 0 {
		return v.fail("slotIntervalMinutes", MsgIntervalNotPositive)
	}
	if cal.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return v.fail("slotIntervalMinutes", MsgIntervalTooLarge)
	}

	if cal.MinNoticeHours < 0 {
		return v.fail("minNoticeHours", MsgNegativeNotice)
	}
	if cal.MinNoticeHours > domain.MaxMinNoticeHours {
		return v.fail("minNoticeHours", MsgNoticeTooLarge)
	}

	for _, d := range cal.WorkingDays {
		if d < 0 || d > 6 {
			return v.fail("workingDays", MsgInvalidWorkingDay)
		}
	}
	if cal.IsActive && len(cal.WorkingDays) == 0 {
		return v.fail("workingDays", MsgNoWorkingDays)
	}

	if _, err := cal.Location(); err != nil {
		return v.fail("timezone", MsgUnknownTimezone)
	}

	v.checkBreak(cal, start, end)

	if serviceDurationMinutes > 0 {
		interval := cal.SlotIntervalMinutes
		switch {
		case serviceDurationMinutes < interval:
			v.warn("slotIntervalMinutes", MsgIntervalCreatesGaps)
		case serviceDurationMinutes > interval && serviceDurationMinutes%interval != 0:
			v.warn("slotIntervalMinutes", MsgDurationNotMultiple)
		}
	}

	return v
}

func (v *Validation) checkBreak(cal *domain.WorkingCalendar, start, end ClockTime) {
	hasStart := isSet(cal.BreakStart)
	hasEnd := isSet(cal.BreakEnd)

	if hasStart != hasEnd {
		v.warn("breakStart", MsgBreakIncomplete)
		return
	}
	if !hasStart {
		return
	}

	breakStart, errStart := ParseClock(*cal.BreakStart)
	breakEnd, errEnd := ParseClock(*cal.BreakEnd)
	if errStart != nil || errEnd != nil {
		v.warn("breakStart", MsgInvalidBreakFormat)
		return
	}

	if breakEnd.Minutes() <= breakStart.Minutes() {
		v.warn("breakEnd", MsgBreakEndBeforeStart)
	}
	if !withinHours(breakStart, start, end) || !withinHours(breakEnd, start, end) {
		v.warn("breakStart", MsgBreakOutsideHours)
	}
}

func withinHours(t, start, end ClockTime) bool {
	return t.Minutes() >= start.Minutes() && t.Minutes() <= end.Minutes()
}

func (v Validation) fail(field, message string) Validation {
	v.Errors = append(v.Errors, Issue{Kind: IssueError, Field: field, Message: message})
	return v
}

func (v *Validation) warn(field, message string) {
	v.Warnings = append(v.Warnings, Issue{Kind: IssueWarning, Field: field, Message: message})
}

func isSet(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// breakWindow returns the break on day when it is usable for slot generation
func breakWindow(cal *domain.WorkingCalendar, day time.Time) (time.Time, time.Time, bool) {
	if !isSet(cal.BreakStart) || !isSet(cal.BreakEnd) {
		return time.Time{}, time.Time{}, false
	}
	breakStart, errStart := ParseClock(*cal.BreakStart)
	breakEnd, errEnd := ParseClock(*cal.BreakEnd)
	if errStart != nil || errEnd != nil || breakEnd.Minutes() <= breakStart.Minutes() {
		return time.Time{}, time.Time{}, false
	}
	return breakStart.On(day), breakEnd.On(day), true
}
