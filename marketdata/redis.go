package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSnapshotKey = "fxlib:marketdata:snapshot"

// RedisStore persists snapshots in Redis as a single JSON value, so multiple
// pricing processes can share one market data feed.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKey overrides the Redis key holding the snapshot.
func WithKey(key string) RedisOption {
	return func(r *RedisStore) {
		r.key = key
	}
}

// WithTTL sets an expiry on saved snapshots. Zero means no expiry.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *RedisStore) {
		r.ttl = ttl
	}
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(addr, password string, db int, options ...RedisOption) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	store := &RedisStore{
		client: client,
		key:    defaultSnapshotKey,
	}
	for _, option := range options {
		option(store)
	}
	return store, nil
}

// SaveSnapshot writes the snapshot as JSON under the store's key.
func (r *RedisStore) SaveSnapshot(ctx context.Context, s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("SaveSnapshot: nil snapshot")
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("SaveSnapshot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("SaveSnapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the snapshot, returning ErrNoSnapshot when the key is
// absent or expired.
func (r *RedisStore) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	payload, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("LoadSnapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("LoadSnapshot: %w", err)
	}
	return &s, nil
}

// Close releases the Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
