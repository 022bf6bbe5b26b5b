package reserve_slot

import (
	"fmt"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	if req.StudentID <= 0 {
		return fmt.Errorf("%w: studentID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.End.After(req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}

	duration := int(req.End.Sub(req.Start) / time.Minute)
	if req.End.Sub(req.Start)%time.Minute != 0 {
		return fmt.Errorf("%w: slot must be a whole number of minutes", ErrInvalidInput)
	}
	if duration < domain.MinServiceDurationMinutes || duration > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// sameDay проверяет, что начало и конец приходятся на один календарный день в loc
func sameDay(start, end time.Time, loc *time.Location) bool {
	y1, m1, d1 := start.In(loc).Date()
	// конец ровно в полночь относится к предыдущему дню
	y2, m2, d2 := end.In(loc).Add(-time.Nanosecond).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
