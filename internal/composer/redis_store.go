package composer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/giftworks/holiday-shop-backend/pkg/redis"
)

// RedisStore persists snapshots in Redis with a TTL, so a wizard session
// survives API restarts and expires on its own when abandoned.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed snapshot store.
func NewRedisStore(client *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*State, error) {
	raw, err := s.client.Get(ctx, s.client.WizardKey(sessionID))
	if err != nil {
		if redis.IsNil(err) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("load wizard snapshot: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("decode wizard snapshot: %w", err)
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, state *State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode wizard snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.client.WizardKey(state.SessionID), payload, s.ttl); err != nil {
		return fmt.Errorf("save wizard snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.client.WizardKey(sessionID)); err != nil {
		return fmt.Errorf("clear wizard snapshot: %w", err)
	}
	return nil
}
