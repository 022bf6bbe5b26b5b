package sync_calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	syncCalendar "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/sync_external_calendar"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/logger"
)

type fakeUseCase struct {
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *syncCalendar.Request) (*syncCalendar.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &syncCalendar.Response{InstructorID: req.InstructorID, From: req.From, To: req.To, DaysSynced: 2}, nil
}

func TestHandleStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		err    error
		status int
	}{
		{"ok", "from=2024-03-15&to=2024-03-16", nil, http.StatusOK},
		{"bad from", "from=x&to=2024-03-16", nil, http.StatusBadRequest},
		{"bad range", "from=2024-03-15&to=2024-03-16", syncCalendar.ErrInvalidInput, http.StatusBadRequest},
		{"not linked", "from=2024-03-15&to=2024-03-16", syncCalendar.ErrNotLinked, http.StatusNotFound},
		{"bridge down", "from=2024-03-15&to=2024-03-16",
			fmt.Errorf("%w: timeout", syncCalendar.ErrCalendarUnavailable), http.StatusServiceUnavailable},
		{"internal", "from=2024-03-15&to=2024-03-16", syncCalendar.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			req := httptest.NewRequest(http.MethodPost, "/instructors/7/calendar-sync?"+tt.query, nil)
			req = mux.SetURLVars(req, map[string]string{"instructorId": "7"})
			rec := httptest.NewRecorder()
			h.Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
