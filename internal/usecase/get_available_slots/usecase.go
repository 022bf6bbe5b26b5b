package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	calendarRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
)

// Причины отбрасывания слотов для метрик
const (
	filterReasonNotice    = "notice"
	filterReasonOccupancy = "occupancy"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	calendarRepo CalendarRepository
	occupancy    OccupancyLoader
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	calendarRepo CalendarRepository,
	occupancy OccupancyLoader,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendarRepo: calendarRepo,
		occupancy:    occupancy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Ошибка по любому инструктору проваливает весь запрос, частичных результатов нет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: instructors=%v, date=%s, duration=%d",
		req.InstructorIDs, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время один раз на весь запрос
	now := uc.timeProvider.Now()

	groups := make([][]domain.TimeSlot, 0, len(req.InstructorIDs))
	warnings := make([]InstructorWarnings, 0)

	// 3. Считаем слоты каждого инструктора
	for _, instructorID := range req.InstructorIDs {
		slots, issues, err := uc.instructorSlots(ctx, instructorID, req.Date, req.DurationMinutes, now)
		if err != nil {
			return nil, err
		}
		groups = append(groups, slots)
		if len(issues) > 0 {
			warnings = append(warnings, InstructorWarnings{InstructorID: instructorID, Issues: issues})
		}
	}

	// 4. Сливаем и сортируем по началу, затем по инструктору
	merged := scheduling.MergeSlots(groups...)
	uc.metrics.SlotsReturned(len(merged))

	uc.logger.Info("GetAvailableSlots: %d slots for instructors=%v, date=%s",
		len(merged), req.InstructorIDs, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           merged,
		Warnings:        warnings,
	}, nil
}

// instructorSlots свободные слоты одного инструктора на дату
func (uc *UseCase) instructorSlots(
	ctx context.Context,
	instructorID int64,
	date time.Time,
	durationMinutes int,
	now time.Time,
) ([]domain.TimeSlot, []scheduling.Issue, error) {
	// 3.1. Календарь; ненастроенный инструктор просто недоступен
	cal, err := uc.calendarRepo.GetByInstructorID(ctx, instructorID)
	if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
		uc.logger.Info("GetAvailableSlots: instructor id=%d has no calendar", instructorID)
		return nil, nil, nil
	}
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get calendar for instructor id=%d: %v", instructorID, err)
		return nil, nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
	}

	// 3.2. Неактивный календарь или нерабочий день
	if !cal.IsActive {
		uc.logger.Info("GetAvailableSlots: calendar of instructor id=%d is inactive", instructorID)
		return nil, nil, nil
	}

	loc, err := cal.Location()
	if err == nil {
		weekday := scheduling.DayStart(date, loc).Weekday()
		if !cal.WorksOn(weekday) {
			uc.logger.Info("GetAvailableSlots: instructor id=%d does not work on %s", instructorID, weekday)
			return nil, nil, nil
		}
	}

	validation := scheduling.ValidateCalendar(cal, durationMinutes)
	if validation.HasErrors() {
		uc.logger.Warn("GetAvailableSlots: calendar of instructor id=%d is invalid: %v", instructorID, validation.Err())
		return nil, nil, fmt.Errorf("%w: instructor=%d: %w", ErrConfiguration, instructorID, validation.Err())
	}

	dayStart, dayEnd := scheduling.DayWindow(date, loc)

	// 3.3. Кандидаты по календарю
	gen := scheduling.GenerateSlots(cal, dayStart, durationMinutes)
	uc.metrics.SlotsGenerated(len(gen.Slots))

	// 3.4. Минимальное время до начала занятия
	slots, dropped := scheduling.FilterNotice(gen.Slots, scheduling.NoticeCutoff(now, cal.MinNoticeHours))
	uc.metrics.SlotsFiltered(filterReasonNotice, dropped)
	if len(slots) == 0 {
		return slots, gen.Warnings, nil
	}

	// 3.5. Занятость за день
	busy, err := uc.occupancy.LoadOccupancy(ctx, instructorID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load occupancy for instructor id=%d: %v", instructorID, err)
		return nil, nil, fmt.Errorf("%w: failed to load occupancy: %v", ErrInternal, err)
	}

	slots, dropped = scheduling.FilterFree(slots, busy)
	uc.metrics.SlotsFiltered(filterReasonOccupancy, dropped)

	return slots, gen.Warnings, nil
}
