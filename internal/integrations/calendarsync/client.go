package calendarsync

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// Client клиент моста внешних календарей (Google/Outlook) инструкторов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusyBlocks получает занятые интервалы инструктора в [from, to).
// Интервалы с end <= start отбрасываются.
func (c *Client) GetBusyBlocks(ctx context.Context, instructorID int64, from, to time.Time) ([]domain.BusyBlock, error) {
	query := url.Values{}
	query.Set("from", from.Format(time.RFC3339))
	query.Set("to", to.Format(time.RFC3339))
	endpoint := fmt.Sprintf("%s/internal/instructors/%d/busy?%s", c.baseURL, instructorID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Calendar bridge request failed for instructor_id=%d: %v", instructorID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrInstructorNotLinked
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("Calendar bridge returned %d for instructor_id=%d: %s", resp.StatusCode, instructorID, string(body))
		return nil, fmt.Errorf("%w: status code %d", ErrServiceUnavailable, resp.StatusCode)
	default:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Message)
	}

	// Парсим ответ
	var busy BusyResponse
	if err := json.NewDecoder(resp.Body).Decode(&busy); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	blocks := make([]domain.BusyBlock, 0, len(busy.Blocks))
	for _, e := range busy.Blocks {
		if !e.End.After(e.Start) {
			c.log.Warn("Skipping empty busy block id=%s for instructor_id=%d", e.ID, instructorID)
			continue
		}
		blocks = append(blocks, domain.BusyBlock{
			ExternalID: e.ID,
			Start:      e.Start,
			End:        e.End,
		})
	}

	c.log.Info("Fetched %d busy blocks for instructor_id=%d", len(blocks), instructorID)
	return blocks, nil
}
