// Package filterstore keeps each user's last applied listing criteria in redis.
package filterstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farellandr/eventportal/internal/catalog"
)

const (
	keyPrefix  = "eventFilters:"
	DefaultTTL = 30 * 24 * time.Hour
)

// Store persists criteria per user. A Store with a nil client is disabled and
// every operation is a no-op.
type Store struct {
	redis redis.Cmdable
	ttl   time.Duration
}

func New(client redis.Cmdable, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{redis: client, ttl: ttl}
}

func (s *Store) Enabled() bool {
	return s != nil && s.redis != nil
}

func key(userID int64) string {
	return keyPrefix + strconv.FormatInt(userID, 10)
}

// Save stores c for userID. Zero criteria clear the entry instead.
func (s *Store) Save(ctx context.Context, userID int64, c catalog.Criteria) error {
	if !s.Enabled() {
		return nil
	}
	c = c.Normalize()
	if c.IsZero() {
		return s.Clear(ctx, userID)
	}

	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode filters: %w", err)
	}
	if err := s.redis.Set(ctx, key(userID), string(payload), s.ttl).Err(); err != nil {
		return fmt.Errorf("save filters: %w", err)
	}
	return nil
}

// Load returns the saved criteria for userID, and false when none are stored.
func (s *Store) Load(ctx context.Context, userID int64) (catalog.Criteria, bool, error) {
	if !s.Enabled() {
		return catalog.Criteria{}, false, nil
	}

	raw, err := s.redis.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return catalog.Criteria{}, false, nil
	}
	if err != nil {
		return catalog.Criteria{}, false, fmt.Errorf("load filters: %w", err)
	}

	var c catalog.Criteria
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return catalog.Criteria{}, false, fmt.Errorf("decode filters: %w", err)
	}
	return c.Normalize(), true, nil
}

func (s *Store) Clear(ctx context.Context, userID int64) error {
	if !s.Enabled() {
		return nil
	}
	if err := s.redis.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("clear filters: %w", err)
	}
	return nil
}
