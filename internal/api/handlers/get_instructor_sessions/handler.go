package get_instructor_sessions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions/models"
)

const (
	msgInvalidInstructorID = "некорректный ID инструктора"
	msgInvalidFrom         = "некорректный параметр from, ожидается RFC 3339"
	msgInvalidTo           = "некорректный параметр to, ожидается RFC 3339"
	msgInvalidInclude      = "некорректный параметр includeInactive"
	msgInvalidPeriod       = "некорректный период"
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

// Handle GET /api/v1/instructors/{instructorId}/sessions
// Query params: from, to (RFC 3339, optional), includeInactive (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := strconv.ParseInt(mux.Vars(r)["instructorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /instructors/{id}/sessions - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	query := r.URL.Query()
	req := &models.GetInstructorSessionsRequest{InstructorID: instructorID}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /instructors/{id}/sessions - Invalid from: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		req.From = &from
	}
	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /instructors/{id}/sessions - Invalid to: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTo)
			return
		}
		req.To = &to
	}
	if raw := query.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /instructors/{id}/sessions - Invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInclude)
			return
		}
		req.IncludeInactive = include
	}

	result, err := h.service.GetInstructorSessions(r.Context(), req)
	if err != nil {
		if errors.Is(err, sessions.ErrInvalidInput) {
			h.logger.Warn("GET /instructors/{id}/sessions - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /instructors/{id}/sessions - Failed to get sessions: instructor_id=%d, error=%v",
			instructorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /instructors/{id}/sessions - Found %d sessions: instructor_id=%d", result.Total, instructorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
