package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	getAvailableSlots "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/get_available_slots"
)

const (
	msgInvalidInstructorID  = "некорректный ID инструктора"
	msgMissingInstructorIDs = "список инструкторов обязателен"
	msgMissingDate          = "дата обязательна"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration      = "некорректная длительность занятия"
	msgInvalidInput         = "некорректные параметры запроса"
	msgMisconfigured        = "рабочий календарь инструктора настроен некорректно"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (required, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	instructorID, err := strconv.ParseInt(mux.Vars(r)["instructorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /instructors/{id}/available-slots - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	h.serve(w, r, "GET /instructors/{id}/available-slots", []int64{instructorID})
}

// HandleMulti GET /api/v1/available-slots
// Query params: instructorIds (required, через запятую), date, duration
func (h *Handler) HandleMulti(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("instructorIds"))
	if raw == "" {
		h.logger.Warn("GET /available-slots - Missing instructor IDs")
		handlers.RespondBadRequest(w, msgMissingInstructorIDs)
		return
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			h.logger.Warn("GET /available-slots - Invalid instructor ID %q: %v", part, err)
			handlers.RespondBadRequest(w, msgInvalidInstructorID)
			return
		}
		ids = append(ids, id)
	}

	h.serve(w, r, "GET /available-slots", ids)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, route string, instructorIDs []int64) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("%s - Missing date", route)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("%s - Invalid date format: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := strconv.Atoi(query.Get("duration"))
	if err != nil {
		h.logger.Warn("%s - Invalid duration: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		InstructorIDs:   instructorIDs,
		Date:            date,
		DurationMinutes: duration,
	})
	if err != nil {
		var cfgErr *scheduling.ConfigurationError
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.As(err, &cfgErr):
			h.logger.Warn("%s - Calendar misconfigured: %v", route, err)
			handlers.RespondUnprocessable(w, msgMisconfigured, handlers.FromIssues(cfgErr.Issues))

		default:
			h.logger.Error("%s - Failed to get available slots: instructors=%v, error=%v", route, instructorIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Found %d slots: instructors=%v, date=%s", route, len(result.Slots), instructorIDs, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
