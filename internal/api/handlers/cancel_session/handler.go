package cancel_session

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/middleware"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions"
)

const (
	msgInvalidSessionID   = "некорректный ID занятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные для отмены"
	msgSessionNotFound    = "занятие не найдено"
	msgCannotCancel       = "занятие не может быть отменено"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/sessions/{sessionId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	sessionID, err := strconv.ParseInt(mux.Vars(r)["sessionId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid session ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	// Тело необязательно: причина отмены опциональна
	var req CancelSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Cancel(r.Context(), sessionID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Session not found: id=%d", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrCannotCancel):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Cannot cancel: id=%d", sessionID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("PATCH /sessions/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /sessions/{id}/cancel - Failed to cancel session: id=%d, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /sessions/{id}/cancel - Session cancelled: id=%d, user_id=%d, status=%s",
		sessionID, userID, session.Status)
	handlers.RespondJSON(w, http.StatusOK, session)
}
