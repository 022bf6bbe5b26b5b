package save_calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/middleware"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/scheduling"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/calendar/models"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/logger"
)

type fakeService struct {
	got *models.SaveCalendarRequest
	err error
}

func (f *fakeService) Save(ctx context.Context, req *models.SaveCalendarRequest) (*models.SaveCalendarResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SaveCalendarResponse{Calendar: &models.CalendarResponse{InstructorID: req.InstructorID}}, nil
}

const payload = `{"calendar":{"workingDays":[1,2,3],"startTime":"9:00 AM","endTime":"5:00 PM","slotIntervalMinutes":60,"minNoticeHours":12,"isActive":true},"serviceDurationMinutes":60}`

func put(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/instructors/7/calendar", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"instructorId": "7"})
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleSave(t *testing.T) {
	svc := &fakeService{}
	rec := put(NewHandler(svc, logger.NewNop()), payload)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.got.InstructorID)
	assert.Equal(t, []int{1, 2, 3}, svc.got.Calendar.WorkingDays)
	assert.Equal(t, 60, svc.got.ServiceDurationMinutes)
}

func TestHandleSaveInvalidCalendar(t *testing.T) {
	cfgErr := &scheduling.ConfigurationError{Issues: []scheduling.Issue{
		{Kind: scheduling.IssueError, Field: "endTime", Message: scheduling.MsgEndBeforeStart},
	}}
	svc := &fakeService{err: fmt.Errorf("instructor=7: %w", cfgErr)}
	rec := put(NewHandler(svc, logger.NewNop()), payload)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Code   string `json:"code"`
		Issues []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Issues, 1)
	assert.Equal(t, "endTime", resp.Issues[0].Field)
	assert.Equal(t, scheduling.MsgEndBeforeStart, resp.Issues[0].Message)
}
