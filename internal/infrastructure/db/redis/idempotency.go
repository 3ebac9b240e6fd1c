package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = time.Hour

// IdempotencyStore maps Idempotency-Key headers to the id of the request they
// created, so a replayed submission returns the original request without side
// effects. Keys expire after idempotencyTTL.
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Lookup returns the request id previously recorded for key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	id, err := s.client.Get(ctx, s.key(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	return id, true, nil
}

// Remember records that key produced requestID.
func (s *IdempotencyStore) Remember(ctx context.Context, key string, requestID int64) error {
	return s.client.Set(ctx, s.key(key), requestID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(k string) string {
	return "idem:request:" + k
}
