package get_instructor_sessions

import (
	"context"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions/models"
)

type SessionService interface {
	GetInstructorSessions(ctx context.Context, req *models.GetInstructorSessionsRequest) (*models.SessionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
