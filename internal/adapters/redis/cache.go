// Package redis provides a ports.TaskCache backed by Redis, for deployments
// where webhook turns may land on different instances mid-paging.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// Cache implements ports.TaskCache using Redis.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Cache)

// WithTTL sets the expiration for cached lists.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

// New creates a new Redis cache with options.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "alice:tasks:",
		ttl:    5 * time.Minute,
	}
	for _, opt := range opts {
		opt(cache)
	}
	return cache
}

func (c *Cache) key(sessionID string, filter domain.TaskFilter) string {
	return c.prefix + sessionID + ":" + string(filter)
}

// Save persists the list as JSON with the configured TTL.
func (c *Cache) Save(ctx context.Context, sessionID string, filter domain.TaskFilter, tasks []domain.Task) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	if err := c.client.Set(ctx, c.key(sessionID, filter), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the list, or domain.ErrCacheMiss when absent or expired.
func (c *Cache) Load(ctx context.Context, sessionID string, filter domain.TaskFilter) ([]domain.Task, error) {
	val, err := c.client.Get(ctx, c.key(sessionID, filter)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(val), &tasks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}
	return tasks, nil
}

// Delete removes the cached list.
func (c *Cache) Delete(ctx context.Context, sessionID string, filter domain.TaskFilter) error {
	return c.client.Del(ctx, c.key(sessionID, filter)).Err()
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
