package busyblock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bam123-spec/drivofy-v2-sub000/internal/domain"
)

// DefaultTTL сколько живут синхронизированные блоки, если не задано в конфиге
const DefaultTTL = 72 * time.Hour

// Store хранит занятость из внешнего календаря по дням: busy:{instructorID}:{YYYY-MM-DD}.
// Nil-клиент означает, что внешний календарь не подключен: чтение пустое, запись игнорируется.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore создает хранилище блоков
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Key ключ дня инструктора. День берется по календарной дате day (в её location).
func Key(instructorID int64, day time.Time) string {
	return fmt.Sprintf("busy:%d:%s", instructorID, day.Format(domain.DateFormat))
}

// Get возвращает блоки инструктора на день; отсутствие ключа - пустой список
func (s *Store) Get(ctx context.Context, instructorID int64, day time.Time) ([]domain.BusyBlock, error) {
	if s == nil || s.client == nil {
		return []domain.BusyBlock{}, nil
	}

	raw, err := s.client.Get(ctx, Key(instructorID, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.BusyBlock{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: instructor=%d day=%s: %v", ErrCacheRead, instructorID, day.Format(domain.DateFormat), err)
	}

	return decode(raw)
}

// Replace перезаписывает блоки инструктора на день
func (s *Store) Replace(ctx context.Context, instructorID int64, day time.Time, blocks []domain.BusyBlock) error {
	if s == nil || s.client == nil {
		return nil
	}

	raw, err := encode(blocks)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, Key(instructorID, day), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: instructor=%d day=%s: %v", ErrCacheWrite, instructorID, day.Format(domain.DateFormat), err)
	}
	return nil
}

// Enabled сообщает, подключен ли Redis
func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

func encode(blocks []domain.BusyBlock) ([]byte, error) {
	if blocks == nil {
		blocks = []domain.BusyBlock{}
	}
	raw, err := json.Marshal(blocks)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return raw, nil
}

func decode(raw []byte) ([]domain.BusyBlock, error) {
	blocks := make([]domain.BusyBlock, 0)
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return blocks, nil
}
