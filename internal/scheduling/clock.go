package scheduling

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// ClockTime wall-clock time of day with minute precision
type ClockTime struct {
	minutes int // minutes since midnight
}

// ParseClock parses "h:mm AM/PM" (case-insensitive, optional leading zero)
func ParseClock(text string) (ClockTime, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))

	m := clockPattern.FindStringSubmatch(normalized)
	if m == nil {
		return ClockTime{}, &ParseError{Text: text}
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return ClockTime{}, &ParseError{Text: text}
	}

	hour %= 12
	if m[3] == "PM" {
		hour += 12
	}

	return ClockTime{minutes: hour*60 + minute}, nil
}

// ParseClockTime parses text and anchors it on the reference date
func ParseClockTime(text string, referenceDate time.Time) (time.Time, error) {
	c, err := ParseClock(text)
	if err != nil {
		return time.Time{}, err
	}
	return c.On(referenceDate), nil
}

// ClockOf returns the wall-clock part of t (seconds are dropped)
func ClockOf(t time.Time) ClockTime {
	return ClockTime{minutes: t.Hour()*60 + t.Minute()}
}

// Minutes since midnight
func (c ClockTime) Minutes() int {
	return c.minutes
}

// On places the clock time on date's year/month/day in date's location
func (c ClockTime) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, c.minutes/60, c.minutes%60, 0, 0, date.Location())
}

// String formats as "h:mm AM/PM"
func (c ClockTime) String() string {
	hour := c.minutes / 60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.minutes%60, suffix)
}

// FormatClock formats a timestamp's wall clock as "h:mm AM/PM"
func FormatClock(t time.Time) string {
	return ClockOf(t).String()
}

// AddMinutes shifts t by whole minutes. No wraparound handling.
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// IsBefore strict ordering at second precision
func IsBefore(a, b time.Time) bool {
	return a.Truncate(time.Second).Before(b.Truncate(time.Second))
}

// IsAfter strict ordering at second precision
func IsAfter(a, b time.Time) bool {
	return a.Truncate(time.Second).After(b.Truncate(time.Second))
}
