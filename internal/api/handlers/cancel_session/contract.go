package cancel_session

import (
	"context"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions/models"
)

type SessionService interface {
	Cancel(ctx context.Context, sessionID int64, req *models.CancelSessionRequest) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
