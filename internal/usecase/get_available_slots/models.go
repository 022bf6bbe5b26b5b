package get_available_slots

import (
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	InstructorIDs   []int64   // Один или несколько инструкторов
	Date            time.Time // Календарная дата (используются только год/месяц/день)
	DurationMinutes int       // Длительность занятия
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	DurationMinutes int
	Slots           []domain.TimeSlot    // Отсортированы по началу, затем по ID инструктора
	Warnings        []InstructorWarnings // Предупреждения генератора, только непустые
}

// InstructorWarnings предупреждения по календарю конкретного инструктора
type InstructorWarnings struct {
	InstructorID int64
	Issues       []scheduling.Issue
}
