package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	calendarRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar/models"
)

// Service сервис для работы с рабочими календарями инструкторов
type Service struct {
	calendarRepo CalendarRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса календарей
func NewService(calendarRepo CalendarRepository, logger Logger) *Service {
	return &Service{
		calendarRepo: calendarRepo,
		logger:       logger,
	}
}

// Get получает рабочий календарь инструктора
func (s *Service) Get(ctx context.Context, instructorID int64) (*models.CalendarResponse, error) {
	s.logger.Info("Get: fetching calendar for instructor=%d", instructorID)

	if instructorID <= 0 {
		return nil, fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}

	cal, err := s.calendarRepo.GetByInstructorID(ctx, instructorID)
	if err != nil {
		if errors.Is(err, calendarRepo.ErrCalendarNotFound) {
			s.logger.Warn("Get: calendar for instructor=%d not found", instructorID)
			return nil, ErrCalendarNotFound
		}
		s.logger.Error("Get: repository error for instructor=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCalendar(cal), nil
}

// Save сохраняет календарь инструктора (последняя запись побеждает).
// Ошибки валидации блокируют сохранение и возвращаются как *scheduling.ConfigurationError,
// предупреждения возвращаются вместе с сохраненным календарем.
func (s *Service) Save(ctx context.Context, req *models.SaveCalendarRequest) (*models.SaveCalendarResponse, error) {
	s.logger.Info("Save: saving calendar for instructor=%d by user=%d", req.InstructorID, req.UserID)

	if req.InstructorID <= 0 {
		return nil, fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}
	if err := validateServiceDuration(req.ServiceDurationMinutes); err != nil {
		return nil, err
	}

	draft := req.Calendar.ToDomainCalendar(req.InstructorID)

	validation := scheduling.ValidateCalendar(draft, req.ServiceDurationMinutes)
	if validation.HasErrors() {
		s.logger.Warn("Save: calendar for instructor=%d rejected: %v", req.InstructorID, validation.Err())
		return nil, fmt.Errorf("instructor=%d: %w", req.InstructorID, validation.Err())
	}

	saved, err := s.calendarRepo.Upsert(ctx, draft)
	if err != nil {
		s.logger.Error("Save: repository error for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: Save - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Save: saved calendar for instructor=%d with %d warnings",
		req.InstructorID, len(validation.Warnings))
	return &models.SaveCalendarResponse{
		Calendar: models.FromDomainCalendar(saved),
		Warnings: models.FromIssues(validation.Warnings),
	}, nil
}

// Validate проверяет черновик без сохранения
func (s *Service) Validate(ctx context.Context, req *models.ValidateCalendarRequest) (*models.ValidationResponse, error) {
	if err := validateServiceDuration(req.ServiceDurationMinutes); err != nil {
		return nil, err
	}

	validation := scheduling.ValidateCalendar(req.Calendar.ToDomainCalendar(0), req.ServiceDurationMinutes)

	return &models.ValidationResponse{
		Valid:    !validation.HasErrors(),
		Errors:   models.FromIssues(validation.Errors),
		Warnings: models.FromIssues(validation.Warnings),
	}, nil
}

// Preview показывает слоты, которые черновик дает на дату, без учета занятий
func (s *Service) Preview(ctx context.Context, req *models.PreviewRequest) (*models.PreviewResponse, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	if err := validateServiceDuration(req.DurationMinutes); err != nil {
		return nil, err
	}

	generation := scheduling.GenerateSlots(req.Calendar.ToDomainCalendar(0), date, req.DurationMinutes)

	return &models.PreviewResponse{
		Date:     date.Format(domain.DateFormat),
		Slots:    models.FromSlots(generation.Slots),
		Errors:   models.FromIssues(generation.Errors),
		Warnings: models.FromIssues(generation.Warnings),
	}, nil
}

// validateServiceDuration 0 означает, что длительность услуги не указана
func validateServiceDuration(minutes int) error {
	if minutes == 0 {
		return nil
	}
	if minutes < domain.MinServiceDurationMinutes || minutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: serviceDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
