package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisAdapter "github.com/RasimKhusaenov/alice-todoist-integration/internal/adapters/redis"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

func newTestCache(t *testing.T, opts ...redisAdapter.Option) (*redisAdapter.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redisAdapter.NewFromClient(client, opts...), mr
}

func TestCache_SaveLoadDelete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	tasks := []domain.Task{
		{ID: "1", Content: "купить молоко"},
		{ID: "2", Content: "позвонить маме", Due: &domain.TaskDue{Date: "2026-06-16"}},
	}

	// 1. Miss before save
	_, err := cache.Load(ctx, "s1", domain.FilterToday)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	// 2. Round trip through JSON
	require.NoError(t, cache.Save(ctx, "s1", domain.FilterToday, tasks))
	got, err := cache.Load(ctx, "s1", domain.FilterToday)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)

	// 3. Delete
	require.NoError(t, cache.Delete(ctx, "s1", domain.FilterToday))
	_, err = cache.Load(ctx, "s1", domain.FilterToday)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCache_TTLExpiration(t *testing.T) {
	cache, mr := newTestCache(t, redisAdapter.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "s1", domain.FilterToday, []domain.Task{{ID: "1"}}))

	// Fast forward time in miniredis past the TTL.
	mr.FastForward(2 * time.Second)

	_, err := cache.Load(ctx, "s1", domain.FilterToday)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestCache_KeysArePerSessionAndFilter(t *testing.T) {
	cache, _ := newTestCache(t, redisAdapter.WithPrefix("test:"))
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "s1", domain.FilterToday, []domain.Task{{ID: "a"}}))
	require.NoError(t, cache.Save(ctx, "s2", domain.FilterToday, []domain.Task{{ID: "b"}}))
	require.NoError(t, cache.Save(ctx, "s1", domain.FilterTomorrow, []domain.Task{{ID: "c"}}))

	got, err := cache.Load(ctx, "s1", domain.FilterToday)
	require.NoError(t, err)
	assert.Equal(t, "a", got[0].ID)

	got, err = cache.Load(ctx, "s1", domain.FilterTomorrow)
	require.NoError(t, err)
	assert.Equal(t, "c", got[0].ID)
}
