package cancel_session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/api/middleware"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions"
	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions/models"
	"github.com/Bam123-spec/drivofy-v2-sub000/pkg/logger"
)

type fakeService struct {
	got *models.CancelSessionRequest
	err error
}

func (f *fakeService) Cancel(ctx context.Context, sessionID int64, req *models.CancelSessionRequest) (*models.SessionResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{ID: sessionID, Status: "cancelled_by_student"}, nil
}

func patch(h *Handler, id, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/sessions/"+id+"/cancel", strings.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"sessionId": id})
	req = req.WithContext(middleware.WithUserID(req.Context(), 42))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleCancel(t *testing.T) {
	svc := &fakeService{}
	rec := patch(NewHandler(svc, logger.NewNop()), "5", `{"cancellationReason":"sick"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), svc.got.UserID)
	assert.Equal(t, "sick", *svc.got.CancellationReason)
}

func TestHandleCancelWithoutBody(t *testing.T) {
	svc := &fakeService{}
	rec := patch(NewHandler(svc, logger.NewNop()), "5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.CancellationReason)
}

func TestHandleCancelErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", sessions.ErrSessionNotFound, http.StatusNotFound},
		{"already cancelled", sessions.ErrCannotCancel, http.StatusConflict},
		{"invalid", sessions.ErrInvalidInput, http.StatusBadRequest},
		{"internal", sessions.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := patch(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), "5", "")
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	assert.Equal(t, http.StatusBadRequest, patch(NewHandler(&fakeService{}, logger.NewNop()), "abc", "").Code)
}
