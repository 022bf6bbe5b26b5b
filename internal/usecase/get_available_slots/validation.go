package get_available_slots

import (
	"fmt"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса и убирает повторы инструкторов
func validateRequest(req *Request) error {
	if len(req.InstructorIDs) == 0 {
		return fmt.Errorf("%w: at least one instructorID is required", ErrInvalidInput)
	}

	if len(req.InstructorIDs) > domain.MaxInstructorsPerQuery {
		return fmt.Errorf("%w: at most %d instructors per query", ErrInvalidInput, domain.MaxInstructorsPerQuery)
	}

	seen := make(map[int64]struct{}, len(req.InstructorIDs))
	unique := make([]int64, 0, len(req.InstructorIDs))
	for _, id := range req.InstructorIDs {
		if id <= 0 {
			return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	req.InstructorIDs = unique

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	return nil
}
