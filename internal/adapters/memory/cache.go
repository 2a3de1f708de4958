// Package memory provides an in-memory ports.TaskCache, used when no redis
// address is configured and in tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

type entry struct {
	tasks   []domain.Task
	expires time.Time
}

// Cache implements ports.TaskCache in memory.
// Safe for concurrent use.
type Cache struct {
	mu   sync.RWMutex
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
}

// Option configures the cache.
type Option func(*Cache)

// WithTTL bounds how long a cached list stays valid. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// NewCache creates a new in-memory cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[string]entry),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func key(sessionID string, filter domain.TaskFilter) string {
	return sessionID + ":" + string(filter)
}

// Save stores a copy of the list so the caller cannot mutate the cached slice.
func (c *Cache) Save(ctx context.Context, sessionID string, filter domain.TaskFilter, tasks []domain.Task) error {
	copied := make([]domain.Task, len(tasks))
	copy(copied, tasks)

	var expires time.Time
	if c.ttl > 0 {
		expires = c.now().Add(c.ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key(sessionID, filter)] = entry{tasks: copied, expires: expires}
	return nil
}

// Load returns a copy of the stored list, or domain.ErrCacheMiss.
func (c *Cache) Load(ctx context.Context, sessionID string, filter domain.TaskFilter) ([]domain.Task, error) {
	c.mu.RLock()
	e, ok := c.data[key(sessionID, filter)]
	c.mu.RUnlock()

	if !ok {
		return nil, domain.ErrCacheMiss
	}
	if !e.expires.IsZero() && c.now().After(e.expires) {
		// Lazy expiry; the entry is dropped on the next Save or Delete.
		return nil, domain.ErrCacheMiss
	}

	ret := make([]domain.Task, len(e.tasks))
	copy(ret, e.tasks)
	return ret, nil
}

// Delete drops the cached list.
func (c *Cache) Delete(ctx context.Context, sessionID string, filter domain.TaskFilter) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key(sessionID, filter))
	return nil
}
