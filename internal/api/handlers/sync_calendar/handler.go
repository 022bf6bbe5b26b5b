package sync_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	syncCalendar "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/sync_external_calendar"
)

const (
	msgInvalidInstructorID = "некорректный ID инструктора"
	msgInvalidFrom         = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidTo           = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректный диапазон дат"
	msgNotLinked           = "внешний календарь инструктора не подключен"
	msgUnavailable         = "внешний календарь временно недоступен"
)

type Handler struct {
	useCase SyncCalendarUseCase
	logger  Logger
}

func NewHandler(useCase SyncCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/instructors/{instructorId}/calendar-sync
// Query params: from, to (required, YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := strconv.ParseInt(mux.Vars(r)["instructorId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /instructors/{id}/calendar-sync - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	query := r.URL.Query()
	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("POST /instructors/{id}/calendar-sync - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}
	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("POST /instructors/{id}/calendar-sync - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTo)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &syncCalendar.Request{
		InstructorID: instructorID,
		From:         from,
		To:           to,
	})
	if err != nil {
		switch {
		case errors.Is(err, syncCalendar.ErrInvalidInput):
			h.logger.Warn("POST /instructors/{id}/calendar-sync - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, syncCalendar.ErrNotLinked):
			h.logger.Warn("POST /instructors/{id}/calendar-sync - Not linked: instructor_id=%d", instructorID)
			handlers.RespondNotFound(w, msgNotLinked)

		case errors.Is(err, syncCalendar.ErrCalendarUnavailable):
			h.logger.Warn("POST /instructors/{id}/calendar-sync - Bridge unavailable: instructor_id=%d: %v",
				instructorID, err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("POST /instructors/{id}/calendar-sync - Failed to sync: instructor_id=%d, error=%v",
				instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /instructors/{id}/calendar-sync - Synced %d blocks over %d days: instructor_id=%d",
		result.BlocksSynced, result.DaysSynced, instructorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
