package models

import (
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
)

// Request модели

// CalendarDraft черновик рабочего календаря в том виде, в каком его редактирует школа
type CalendarDraft struct {
	WorkingDays         []int   `json:"workingDays"` // 0=воскресенье .. 6=суббота
	StartTime           string  `json:"startTime"`   // "9:00 AM"
	EndTime             string  `json:"endTime"`     // "5:00 PM"
	BreakStart          *string `json:"breakStart,omitempty"`
	BreakEnd            *string `json:"breakEnd,omitempty"`
	SlotIntervalMinutes int     `json:"slotIntervalMinutes"`
	MinNoticeHours      float64 `json:"minNoticeHours"`
	IsActive            bool    `json:"isActive"`
	Timezone            string  `json:"timezone,omitempty"` // IANA, пусто - UTC
}

// ToDomainCalendar конвертирует черновик в domain модель
func (d *CalendarDraft) ToDomainCalendar(instructorID int64) *domain.WorkingCalendar {
	days := make([]int, len(d.WorkingDays))
	copy(days, d.WorkingDays)
	return &domain.WorkingCalendar{
		InstructorID:        instructorID,
		WorkingDays:         days,
		StartTime:           d.StartTime,
		EndTime:             d.EndTime,
		BreakStart:          d.BreakStart,
		BreakEnd:            d.BreakEnd,
		SlotIntervalMinutes: d.SlotIntervalMinutes,
		MinNoticeHours:      d.MinNoticeHours,
		IsActive:            d.IsActive,
		Timezone:            d.Timezone,
	}
}

// SaveCalendarRequest запрос на сохранение календаря инструктора
type SaveCalendarRequest struct {
	InstructorID           int64         `json:"-"`
	UserID                 int64         `json:"-"`
	Calendar               CalendarDraft `json:"calendar"`
	ServiceDurationMinutes int           `json:"serviceDurationMinutes,omitempty"`
}

// ValidateCalendarRequest запрос на проверку черновика без сохранения
type ValidateCalendarRequest struct {
	Calendar               CalendarDraft `json:"calendar"`
	ServiceDurationMinutes int           `json:"serviceDurationMinutes,omitempty"`
}

// PreviewRequest запрос на предпросмотр слотов черновика на дату
type PreviewRequest struct {
	Calendar        CalendarDraft `json:"calendar"`
	Date            string        `json:"date"` // "2025-10-15"
	DurationMinutes int           `json:"durationMinutes"`
}

// Response модели

// IssueResponse одна находка валидации
type IssueResponse struct {
	Kind    string `json:"kind"` // error, warning
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CalendarResponse сохраненный календарь
type CalendarResponse struct {
	InstructorID        int64     `json:"instructorId"`
	WorkingDays         []int     `json:"workingDays"`
	StartTime           string    `json:"startTime"`
	EndTime             string    `json:"endTime"`
	BreakStart          *string   `json:"breakStart,omitempty"`
	BreakEnd            *string   `json:"breakEnd,omitempty"`
	SlotIntervalMinutes int       `json:"slotIntervalMinutes"`
	MinNoticeHours      float64   `json:"minNoticeHours"`
	IsActive            bool      `json:"isActive"`
	Timezone            string    `json:"timezone"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// SaveCalendarResponse календарь и предупреждения, найденные при сохранении
type SaveCalendarResponse struct {
	Calendar *CalendarResponse `json:"calendar"`
	Warnings []IssueResponse   `json:"warnings"`
}

// ValidationResponse результат проверки черновика
type ValidationResponse struct {
	Valid    bool            `json:"valid"`
	Errors   []IssueResponse `json:"errors"`
	Warnings []IssueResponse `json:"warnings"`
}

// SlotResponse слот в предпросмотре
type SlotResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StartTime string    `json:"startTime"` // "9:00 AM"
	EndTime   string    `json:"endTime"`
}

// PreviewResponse слоты, которые черновик дает на дату без учета занятости
type PreviewResponse struct {
	Date     string          `json:"date"`
	Slots    []SlotResponse  `json:"slots"`
	Errors   []IssueResponse `json:"errors"`
	Warnings []IssueResponse `json:"warnings"`
}

// FromDomainCalendar конвертирует domain модель в response
func FromDomainCalendar(cal *domain.WorkingCalendar) *CalendarResponse {
	tz := cal.Timezone
	if tz == "" {
		tz = domain.DefaultTimezone
	}
	return &CalendarResponse{
		InstructorID:        cal.InstructorID,
		WorkingDays:         cal.WorkingDays,
		StartTime:           cal.StartTime,
		EndTime:             cal.EndTime,
		BreakStart:          cal.BreakStart,
		BreakEnd:            cal.BreakEnd,
		SlotIntervalMinutes: cal.SlotIntervalMinutes,
		MinNoticeHours:      cal.MinNoticeHours,
		IsActive:            cal.IsActive,
		Timezone:            tz,
		CreatedAt:           cal.CreatedAt,
		UpdatedAt:           cal.UpdatedAt,
	}
}

// FromIssues конвертирует находки валидации; nil превращается в пустой список
func FromIssues(issues []scheduling.Issue) []IssueResponse {
	out := make([]IssueResponse, 0, len(issues))
	for _, issue := range issues {
		out = append(out, IssueResponse{
			Kind:    string(issue.Kind),
			Field:   issue.Field,
			Message: issue.Message,
		})
	}
	return out
}

// FromSlots конвертирует слоты для предпросмотра
func FromSlots(slots []domain.TimeSlot) []SlotResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotResponse{
			Start:     s.Start,
			End:       s.End,
			StartTime: scheduling.FormatClock(s.Start),
			EndTime:   scheduling.FormatClock(s.End),
		})
	}
	return out
}
