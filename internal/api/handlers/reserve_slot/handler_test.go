package reserve_slot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/handlers"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/middleware"
	reserveSlot "github.com/Bam123-spec/drivofy-v2-sub000/internal/usecase/reserve_slot"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/logger"
)

type fakeUseCase struct {
	got *reserveSlot.Request
	err error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *reserveSlot.Request) (*reserveSlot.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &reserveSlot.Response{
		ID:              11,
		InstructorID:    req.InstructorID,
		StudentID:       req.StudentID,
		Start:           req.Start,
		End:             req.End,
		DurationMinutes: int(req.End.Sub(req.Start) / time.Minute),
		Status:          "scheduled",
	}, nil
}

const body = `{"instructorId":3,"start":"2024-03-15T10:00:00Z","end":"2024-03-15T11:00:00Z"}`

func post(h *Handler, payload string, userID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(payload))
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleCreated(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(NewHandler(uc, logger.NewNop()), body, 42)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(42), uc.got.StudentID)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "10:00 AM", resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestHandleConflictMessage(t *testing.T) {
	uc := &fakeUseCase{err: fmt.Errorf("%w: instructor=3", reserveSlot.ErrConflict)}
	rec := post(NewHandler(uc, logger.NewNop()), body, 42)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, handlers.CodeConflict, resp.Code)
	assert.Equal(t, "slot no longer available", resp.Message)
}

func TestHandleErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", reserveSlot.ErrInvalidInput, http.StatusBadRequest},
		{"not offered", reserveSlot.ErrSlotNotOffered, http.StatusUnprocessableEntity},
		{"too late", reserveSlot.ErrTooLateToBook, http.StatusUnprocessableEntity},
		{"internal", reserveSlot.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop()), body, 42)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandleRejectsBadRequests(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, logger.NewNop())

	assert.Equal(t, http.StatusUnauthorized, post(h, body, 0).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"instructorId":`, 42).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"instructorId":3,"studentId":9}`, 42).Code)
}
