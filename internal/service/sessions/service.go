package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	sessionRepo "github.com/Bam123-spec/drivofy-v2-sub000/internal/infra/storage/session"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions/models"
)

// Service сервис для работы с занятиями по вождению
type Service struct {
	sessionRepo  SessionRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса занятий
func NewService(
	sessionRepo SessionRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает занятие по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SessionResponse, error) {
	s.logger.Info("GetByID: fetching session id=%d", id)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			s.logger.Warn("GetByID: session id=%d not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("GetByID: repository error for session id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSession(session), nil
}

// GetInstructorSessions получает расписание инструктора за период.
// По умолчанию только активные занятия (scheduled, completed).
func (s *Service) GetInstructorSessions(ctx context.Context, req *models.GetInstructorSessionsRequest) (*models.SessionListResponse, error) {
	s.logger.Info("GetInstructorSessions: fetching sessions for instructor=%d, includeInactive=%t",
		req.InstructorID, req.IncludeInactive)

	if req.InstructorID <= 0 {
		return nil, fmt.Errorf("%w: instructorID must be positive", ErrInvalidInput)
	}
	if req.From != nil && req.To != nil && !req.To.After(*req.From) {
		s.logger.Warn("GetInstructorSessions: invalid period for instructor=%d", req.InstructorID)
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}

	sessions, err := s.sessionRepo.GetByInstructor(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("GetInstructorSessions: repository error for instructor=%d: %v", req.InstructorID, err)
		return nil, fmt.Errorf("%w: GetInstructorSessions - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetInstructorSessions: fetched %d sessions for instructor=%d", len(sessions), req.InstructorID)
	return models.FromDomainSessionList(sessions), nil
}

// Cancel отменяет занятие и освобождает его интервал.
// Ученик, отменяющий своё занятие, получает cancelled_by_student, любой другой - cancelled_by_school.
func (s *Service) Cancel(ctx context.Context, sessionID int64, req *models.CancelSessionRequest) (*models.SessionResponse, error) {
	s.logger.Info("Cancel: cancelling session id=%d by user=%d", sessionID, req.UserID)

	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.CancellationReason != nil && len([]rune(*req.CancellationReason)) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason must be at most %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *domain.DrivingSession

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Строка блокируется до конца транзакции
		session, err := s.sessionRepo.GetByID(txCtx, sessionID)
		if err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				s.logger.Warn("Cancel: session id=%d not found", sessionID)
				return ErrSessionNotFound
			}
			s.logger.Error("Cancel: repository error for session id=%d: %v", sessionID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !session.CanBeCancelled() {
			s.logger.Warn("Cancel: session id=%d cannot be cancelled, status=%s", sessionID, session.Status)
			return ErrCannotCancel
		}

		cancelStatus := domain.SessionCancelledBySchool
		if session.StudentID == req.UserID {
			cancelStatus = domain.SessionCancelledByStudent
		}

		now := s.timeProvider.Now()
		if err := s.sessionRepo.Cancel(txCtx, sessionID, cancelStatus, req.CancellationReason, now); err != nil {
			if errors.Is(err, sessionRepo.ErrSessionNotFound) {
				return ErrSessionNotFound
			}
			s.logger.Error("Cancel: repository error for session id=%d: %v", sessionID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		session.Status = cancelStatus
		session.CancellationReason = req.CancellationReason
		session.CancelledAt = &now
		result = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled session id=%d with status=%s", sessionID, result.Status)
	return models.FromDomainSession(result), nil
}
