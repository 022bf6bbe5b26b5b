package sync_external_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	calendarRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/integrations/calendarsync"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
)

// Исходы синхронизации для метрик
const (
	resultOK          = "ok"
	resultUnavailable = "unavailable"
	resultNotLinked   = "not_linked"
	resultError       = "error"
)

// UseCase переносит занятость из внешнего календаря инструктора в кеш по дням
type UseCase struct {
	bridge       CalendarBridge
	store        BusyBlockStore
	calendarRepo CalendarRepository
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bridge CalendarBridge,
	store BusyBlockStore,
	calendarRepo CalendarRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bridge:       bridge,
		store:        store,
		calendarRepo: calendarRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет синхронизацию за диапазон дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SyncExternalCalendar: instructor=%d, from=%s, to=%s",
		req.InstructorID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SyncExternalCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Дни считаются в часовом поясе инструктора; без календаря - UTC
	loc := time.UTC
	cal, err := uc.calendarRepo.GetByInstructorID(ctx, req.InstructorID)
	switch {
	case errors.Is(err, calendarRepo.ErrCalendarNotFound):
	case err != nil:
		uc.logger.Error("SyncExternalCalendar: failed to get calendar: %v", err)
		uc.metrics.CalendarSync(resultError)
		return nil, fmt.Errorf("%w: failed to get calendar: %v", ErrInternal, err)
	default:
		if l, err := cal.Location(); err == nil {
			loc = l
		}
	}

	rangeStart := scheduling.DayStart(req.From, loc)
	rangeEnd := scheduling.DayStart(req.To, loc).AddDate(0, 0, 1)

	// 3. Забираем блоки одним запросом на весь диапазон
	blocks, err := uc.bridge.GetBusyBlocks(ctx, req.InstructorID, rangeStart, rangeEnd)
	if err != nil {
		if errors.Is(err, calendarsync.ErrInstructorNotLinked) {
			uc.logger.Info("SyncExternalCalendar: instructor id=%d has no linked calendar", req.InstructorID)
			uc.metrics.CalendarSync(resultNotLinked)
			return nil, ErrNotLinked
		}
		// Graceful degradation: старые блоки остаются до истечения TTL
		uc.logger.Error("SyncExternalCalendar: calendar bridge unavailable for instructor id=%d, keeping cached blocks: %v",
			req.InstructorID, err)
		uc.metrics.CalendarSync(resultUnavailable)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 4. Раскладываем по дням и перезаписываем каждый день целиком
	resp := &Response{InstructorID: req.InstructorID, From: req.From, To: req.To}
	for day := rangeStart; day.Before(rangeEnd); day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)

		dayBlocks := make([]domain.BusyBlock, 0)
		for _, b := range blocks {
			if scheduling.Overlaps(b.Start, b.End, day, next) {
				dayBlocks = append(dayBlocks, b)
			}
		}

		if err := uc.store.Replace(ctx, req.InstructorID, day, dayBlocks); err != nil {
			uc.logger.Error("SyncExternalCalendar: failed to store blocks for %s: %v", day.Format(domain.DateFormat), err)
			uc.metrics.CalendarSync(resultError)
			return nil, fmt.Errorf("%w: failed to store blocks: %v", ErrInternal, err)
		}

		resp.DaysSynced++
		resp.BlocksSynced += len(dayBlocks)
	}

	uc.metrics.CalendarSync(resultOK)
	uc.logger.Info("SyncExternalCalendar: synced %d blocks over %d days for instructor id=%d",
		resp.BlocksSynced, resp.DaysSynced, req.InstructorID)

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.InstructorID <= 0 {
		return fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from := scheduling.DayStart(req.From, time.UTC)
	to := scheduling.DayStart(req.To, time.UTC)
	if to.Before(from) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	if days := int(to.Sub(from)/(24*time.Hour)) + 1; days > domain.MaxSyncRangeDays {
		return fmt.Errorf("%w: at most %d days per sync", ErrInvalidInput, domain.MaxSyncRangeDays)
	}

	return nil
}
