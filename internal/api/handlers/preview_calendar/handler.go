package preview_calendar

import (
	"errors"
	"net/http"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle POST /api/v1/calendars/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendars/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Preview(r.Context(), &req)
	if err != nil {
		if errors.Is(err, calendar.ErrInvalidInput) {
			h.logger.Warn("POST /calendars/preview - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("POST /calendars/preview - Failed to preview calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /calendars/preview - Generated %d slots for %s", len(result.Slots), result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
