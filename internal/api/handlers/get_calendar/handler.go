package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar"
)

const (
	msgInvalidInstructorID = "некорректный ID инструктора"
	msgCalendarNotFound    = "рабочий календарь инструктора не найден"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := strconv.ParseInt(mux.Vars(r)["instructorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /instructors/{id}/calendar - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	cal, err := h.service.Get(r.Context(), instructorID)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrCalendarNotFound):
			h.logger.Warn("GET /instructors/{id}/calendar - Calendar not found: instructor_id=%d", instructorID)
			handlers.RespondNotFound(w, msgCalendarNotFound)
		case errors.Is(err, calendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInstructorID)
		default:
			h.logger.Error("GET /instructors/{id}/calendar - Failed to get calendar: instructor_id=%d, error=%v",
				instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cal)
}
