// internal/common/database/redis.go
package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"saas-benchmarks/internal/common/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the Redis client
type RedisClient struct {
	Client *redis.Client
}

func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &RedisClient{Client: rdb}, nil
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *RedisClient) Close() error {
	if c.Client != nil {
		return c.Client.Close()
	}
	return nil
}

// ReportStore hands finished reports from one process step to the next.
// Entries expire after ttl; the engine never reads from it.
type ReportStore struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewReportStore(client redis.Cmdable, prefix string, ttl time.Duration) *ReportStore {
	return &ReportStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *ReportStore) key(id string) string {
	return s.prefix + id
}

// TTL is how long stored reports live.
func (s *ReportStore) TTL() time.Duration {
	return s.ttl
}

// PutWithID stores report as JSON under id, replacing any earlier value.
func (s *ReportStore) PutWithID(ctx context.Context, id string, report interface{}) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store report %s: %w", id, err)
	}
	return nil
}

// Get decodes the report stored under id into out. An expired or unknown ID
// is ErrNotFound.
func (s *ReportStore) Get(ctx context.Context, id string, out interface{}) error {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("load report %s: %w", id, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode report %s: %w", id, err)
	}
	return nil
}

// Delete removes the report. Delivery markers are left to expire.
func (s *ReportStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete report %s: %w", id, err)
	}
	return nil
}

func (s *ReportStore) sentKey(id, channel string) string {
	return s.prefix + id + ":sent:" + channel
}

// SentMessageID returns the message ID recorded by MarkSent for the report
// and channel, or "" when nothing was sent yet.
func (s *ReportStore) SentMessageID(ctx context.Context, id, channel string) (string, error) {
	msgID, err := s.client.Get(ctx, s.sentKey(id, channel)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load %s marker for %s: %w", channel, id, err)
	}
	return msgID, nil
}

// MarkSent records that the report went out on channel. The marker lives as
// long as the report. The first marker wins; later calls keep it.
func (s *ReportStore) MarkSent(ctx context.Context, id, channel, msgID string) error {
	if err := s.client.SetNX(ctx, s.sentKey(id, channel), msgID, s.ttl).Err(); err != nil {
		return fmt.Errorf("store %s marker for %s: %w", channel, id, err)
	}
	return nil
}
