package scheduling

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidClockTime возвращается для строки времени не в формате h:mm AM/PM
	ErrInvalidClockTime = errors.New("scheduling: invalid clock time")

	// ErrInvalidCalendar возвращается, когда календарь содержит ошибки уровня error
	ErrInvalidCalendar = errors.New("scheduling: invalid working calendar")
)

// ParseError malformed clock-time text
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid clock time %q, expected h:mm AM/PM", e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidClockTime
}

// ConfigurationError structurally invalid calendar; blocks slot generation
type ConfigurationError struct {
	Issues []Issue
}

func (e *ConfigurationError) Error() string {
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message)
	}
	return "invalid working calendar: " + strings.Join(messages, "; ")
}

func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidCalendar
}
