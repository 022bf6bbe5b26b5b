package reserve_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	calendarRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/calendar"
	sessionRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/session"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/txmanager"
)

// Исходы бронирования для метрик
const (
	resultCreated  = "created"
	resultConflict = "conflict"
	resultRejected = "rejected"
	resultError    = "error"
)

// UseCase use case для бронирования слота
type UseCase struct {
	sessionRepo  SessionRepository
	calendarRepo CalendarRepository
	occupancy    OccupancyLoader
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	calendarRepo CalendarRepository,
	occupancy OccupancyLoader,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:  sessionRepo,
		calendarRepo: calendarRepo,
		occupancy:    occupancy,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования слота.
// Проверка слота и вставка выполняются в одной сериализуемой транзакции:
// из двух параллельных запросов на один слот успешен ровно один, второй получает ErrConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: instructor=%d, student=%d, start=%s, end=%s",
		req.InstructorID, req.StudentID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		uc.metrics.Reservation(resultRejected)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.DrivingSession

	// 3. Выполняем проверку и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result = nil
		created, err := uc.reserve(txCtx, req, now)
		if err != nil {
			return err
		}
		result = created
		return nil
	})

	if err != nil {
		// Повторы исчерпаны: кто-то другой занял интервал
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("ReserveSlot: serialization conflict for instructor=%d start=%s: %v",
				req.InstructorID, req.Start.Format(time.RFC3339), err)
			err = fmt.Errorf("%w: concurrent reservation", ErrConflict)
		}
		uc.metrics.Reservation(outcome(err))
		return nil, err
	}

	uc.metrics.Reservation(resultCreated)
	uc.logger.Info("ReserveSlot: successfully created session id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		InstructorID:    result.InstructorID,
		StudentID:       result.StudentID,
		Start:           result.StartAt,
		End:             result.EndAt,
		DurationMinutes: result.DurationMinutes(),
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// reserve повторно проверяет слот и создает занятие; вызывается внутри транзакции
func (uc *UseCase) reserve(ctx context.Context, req *Request, now time.Time) (*domain.DrivingSession, error) {
	// 3.1. Календарь инструктора
	cal, err := uc.calendarRepo.GetByInstructorID(ctx, req.InstructorID)
	if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
		uc.logger.Warn("ReserveSlot: instructor id=%d has no calendar", req.InstructorID)
		return nil, fmt.Errorf("%w: instructor has no calendar", ErrSlotNotOffered)
	}
	if err != nil {
		uc.logger.Error("ReserveSlot: failed to get calendar: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendar: %w", ErrInternal, err)
	}

	if !cal.IsActive {
		uc.logger.Warn("ReserveSlot: calendar of instructor id=%d is inactive", req.InstructorID)
		return nil, fmt.Errorf("%w: calendar is inactive", ErrSlotNotOffered)
	}

	duration := int(req.End.Sub(req.Start) / time.Minute)

	validation := scheduling.ValidateCalendar(cal, duration)
	if validation.HasErrors() {
		uc.logger.Warn("ReserveSlot: calendar of instructor id=%d is invalid: %v", req.InstructorID, validation.Err())
		return nil, fmt.Errorf("%w: instructor=%d: %w", ErrConfiguration, req.InstructorID, validation.Err())
	}

	// 3.2. Слот должен быть одним из сгенерированных на этот день
	loc, _ := cal.Location()
	if !sameDay(req.Start, req.End, loc) {
		return nil, fmt.Errorf("%w: slot must start and end on the same calendar day", ErrInvalidInput)
	}

	dayStart, dayEnd := scheduling.DayWindow(req.Start.In(loc), loc)
	if !cal.WorksOn(dayStart.Weekday()) {
		uc.logger.Warn("ReserveSlot: instructor id=%d does not work on %s", req.InstructorID, dayStart.Weekday())
		return nil, fmt.Errorf("%w: not a working day", ErrSlotNotOffered)
	}

	gen := scheduling.GenerateSlots(cal, dayStart, duration)
	if !scheduling.ContainsSlot(gen.Slots, req.Start, req.End) {
		uc.logger.Warn("ReserveSlot: %s-%s is not a slot of instructor id=%d",
			scheduling.FormatClock(req.Start.In(loc)), scheduling.FormatClock(req.End.In(loc)), req.InstructorID)
		return nil, fmt.Errorf("%w: interval does not match the calendar grid", ErrSlotNotOffered)
	}

	// 3.3. Минимальное время до начала
	cutoff := scheduling.NoticeCutoff(now, cal.MinNoticeHours)
	if req.Start.Before(cutoff) {
		uc.logger.Warn("ReserveSlot: start %s is before notice cutoff %s",
			req.Start.Format(time.RFC3339), cutoff.Format(time.RFC3339))
		return nil, fmt.Errorf("%w: must book at least %g hours in advance", ErrTooLateToBook, cal.MinNoticeHours)
	}

	// 3.4. Повторно читаем занятость внутри транзакции
	busy, err := uc.occupancy.LoadOccupancy(ctx, req.InstructorID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("ReserveSlot: failed to load occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to load occupancy: %w", ErrInternal, err)
	}

	if scheduling.OverlapsAny(req.Start, req.End, busy) {
		uc.logger.Warn("ReserveSlot: slot %s is no longer available for instructor id=%d",
			req.Start.Format(time.RFC3339), req.InstructorID)
		return nil, ErrConflict
	}

	// 3.5. Создаем занятие
	created, err := uc.sessionRepo.Create(ctx, &domain.DrivingSession{
		InstructorID: req.InstructorID,
		StudentID:    req.StudentID,
		StartAt:      req.Start,
		EndAt:        req.End,
		Status:       domain.SessionScheduled,
		Notes:        req.Notes,
	})
	if errors.Is(err, sessionRepo.ErrSlotTaken) {
		uc.logger.Warn("ReserveSlot: storage rejected overlapping session: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrConflict, err)
	}
	if err != nil {
		uc.logger.Error("ReserveSlot: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: failed to create session: %w", ErrInternal, err)
	}

	return created, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrConflict):
		return resultConflict
	case errors.Is(err, ErrInternal):
		return resultError
	default:
		return resultRejected
	}
}
