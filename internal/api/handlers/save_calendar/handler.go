package save_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/middleware"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar/models"
)

const (
	msgInvalidInstructorID = "некорректный ID инструктора"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные календаря"
	msgInvalidCalendar     = "рабочий календарь содержит ошибки"
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

// Handle PUT /api/v1/instructors/{instructorId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /instructors/{id}/calendar - Unauthorized access attempt")
		handlers.RespondUnauthorized(w)
		return
	}

	instructorID, err := strconv.ParseInt(mux.Vars(r)["instructorId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /instructors/{id}/calendar - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	var req models.SaveCalendarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /instructors/{id}/calendar - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.InstructorID = instructorID
	req.UserID = userID

	result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		var cfgErr *scheduling.ConfigurationError
		switch {
		case errors.As(err, &cfgErr):
			h.logger.Warn("PUT /instructors/{id}/calendar - Invalid calendar: instructor_id=%d: %v", instructorID, err)
			handlers.RespondUnprocessable(w, msgInvalidCalendar, handlers.FromIssues(cfgErr.Issues))

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("PUT /instructors/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /instructors/{id}/calendar - Failed to save calendar: instructor_id=%d, error=%v",
				instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /instructors/{id}/calendar - Calendar saved: instructor_id=%d, user_id=%d, warnings=%d",
		instructorID, userID, len(result.Warnings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
