package cancel_session

import "github.com/Bam123-spec/drivofy-v2-sub000/internal/service/sessions/models"

// CancelSessionRequest HTTP модель запроса на отмену
type CancelSessionRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelSessionRequest) ToServiceRequest(userID int64) *models.CancelSessionRequest {
	return &models.CancelSessionRequest{
		UserID:             userID,
		CancellationReason: r.CancellationReason,
	}
}
