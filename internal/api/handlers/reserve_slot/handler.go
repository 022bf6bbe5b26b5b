package reserve_slot

import (
	"errors"
	"net/http"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/middleware"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	reserveSlot "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgSlotTaken          = "slot no longer available"
	msgSlotNotOffered     = "выбранный слот не предлагается расписанием инструктора"
	msgTooLateToBook      = "слишком поздно для бронирования этого слота"
	msgMisconfigured      = "рабочий календарь инструктора настроен некорректно"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	var req ReserveSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		var cfgErr *scheduling.ConfigurationError
		switch {
		case errors.Is(err, reserveSlot.ErrConflict):
			h.logger.Warn("POST /sessions - Slot taken: instructor_id=%d, student_id=%d, start=%s",
				req.InstructorID, userID, req.Start)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reserveSlot.ErrSlotNotOffered):
			h.logger.Warn("POST /sessions - Slot not offered: instructor_id=%d, start=%s", req.InstructorID, req.Start)
			handlers.RespondUnprocessable(w, msgSlotNotOffered, nil)

		case errors.Is(err, reserveSlot.ErrTooLateToBook):
			h.logger.Warn("POST /sessions - Too late to book: instructor_id=%d, start=%s", req.InstructorID, req.Start)
			handlers.RespondUnprocessable(w, msgTooLateToBook, nil)

		case errors.As(err, &cfgErr):
			h.logger.Warn("POST /sessions - Calendar misconfigured: instructor_id=%d: %v", req.InstructorID, err)
			handlers.RespondUnprocessable(w, msgMisconfigured, handlers.FromIssues(cfgErr.Issues))

		default:
			h.logger.Error("POST /sessions - Failed to reserve slot: instructor_id=%d, student_id=%d, error=%v",
				req.InstructorID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session reserved: session_id=%d, instructor_id=%d, student_id=%d",
		result.ID, result.InstructorID, result.StudentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
