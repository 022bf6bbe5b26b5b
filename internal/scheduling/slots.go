package scheduling

import (
	"fmt"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// Generation output of GenerateSlots
type Generation struct {
	Slots    []domain.TimeSlot
	Errors   []Issue
	Warnings []Issue
}

// GenerateSlots produces candidate slots of durationMinutes for the calendar on date,
// ignoring bookings. The calendar is validated first; with any error no slots are
// generated. Only the year/month/day of date are used, in the calendar's timezone.
func GenerateSlots(cal *domain.WorkingCalendar, date time.Time, durationMinutes int) Generation {
	if durationMinutes <= 0 {
		return Generation{
			Slots:  []domain.TimeSlot{},
			Errors: []Issue{{Kind: IssueError, Field: "durationMinutes", Message: MsgDurationNotPositive}},
		}
	}
	if durationMinutes > domain.MaxServiceDurationMinutes {
		return Generation{
			Slots:  []domain.TimeSlot{},
			Errors: []Issue{{Kind: IssueError, Field: "durationMinutes", Message: MsgDurationTooLarge}},
		}
	}

	validation := ValidateCalendar(cal, durationMinutes)
	if validation.HasErrors() {
		return Generation{
			Slots:    []domain.TimeSlot{},
			Errors:   validation.Errors,
			Warnings: validation.Warnings,
		}
	}

	slots, warnings := generate(cal, date, durationMinutes)

	return Generation{
		Slots:    slots,
		Warnings: append(validation.Warnings, warnings...),
	}
}

// generate runs the cursor walk on an already validated calendar
func generate(cal *domain.WorkingCalendar, date time.Time, durationMinutes int) ([]domain.TimeSlot, []Issue) {
	loc, _ := cal.Location()
	day := DayStart(date, loc)

	start, _ := ParseClock(cal.StartTime)
	end, _ := ParseClock(cal.EndTime)
	dayStart := start.On(day)
	dayEnd := end.On(day)

	breakStart, breakEnd, hasBreak := breakWindow(cal, day)

	slots := make([]domain.TimeSlot, 0)
	var warnings []Issue

	for cursor := dayStart; cursor.Before(dayEnd); {
		slotEnd := AddMinutes(cursor, durationMinutes)
		if !slotEnd.After(cursor) {
			break
		}

		// Хвост короче длительности услуги не бронируется
		if slotEnd.After(dayEnd) {
			remaining := int(dayEnd.Sub(cursor) / time.Minute)
			warnings = append(warnings, Issue{
				Kind:    IssueWarning,
				Field:   "endTime",
				Message: fmt.Sprintf("partial slot of %d minutes at the end", remaining),
			})
			break
		}

		if !hasBreak || !Overlaps(cursor, slotEnd, breakStart, breakEnd) {
			slots = append(slots, domain.TimeSlot{
				InstructorID: cal.InstructorID,
				Start:        cursor,
				End:          slotEnd,
			})
		}

		// Курсор обязан двигаться вперед
		next := AddMinutes(cursor, cal.SlotIntervalMinutes)
		if !next.After(cursor) {
			break
		}
		cursor = next
	}

	return slots, warnings
}

// DayStart midnight of date's calendar day in loc
func DayStart(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DayWindow [midnight, next midnight) of date's calendar day in loc
func DayWindow(date time.Time, loc *time.Location) (time.Time, time.Time) {
	start := DayStart(date, loc)
	return start, start.AddDate(0, 0, 1)
}
