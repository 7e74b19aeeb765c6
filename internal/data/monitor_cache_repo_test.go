package data

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/chroniker-go/internal/domain/model"
	apperrors "github.com/target/chroniker-go/internal/errors"
	"github.com/target/chroniker-go/internal/testutil"
)

func TestMonitorCacheKey(t *testing.T) {
	assert.Equal(t, "chroniker:monitor:shop.Order", MonitorCacheKey("shop.Order"))
}

func TestMonitorCacheRepo_PutGet(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	client := testutil.SetupTestRedis(t)
	defer client.Close()

	ttl := 5 * time.Minute
	repo := NewMonitorCacheRepo(client, ttl)
	ctx := context.Background()

	t.Run("put and get", func(t *testing.T) {
		checked := testutil.TestTime()
		in := model.MonitorResult{
			Model:     "shop.Order",
			Table:     "shop_order",
			Filter:    "status=open",
			Count:     3,
			CheckedAt: checked,
		}
		require.NoError(t, repo.Put(ctx, in))

		got, err := repo.Get(ctx, "shop.Order")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, in.Count, got.Count)
		assert.Equal(t, in.Filter, got.Filter)
		assert.True(t, checked.Equal(got.CheckedAt))

		actualTTL := client.TTL(ctx, MonitorCacheKey("shop.Order")).Val()
		assert.True(t, actualTTL > 0 && actualTTL <= ttl)
	})

	t.Run("missing entry", func(t *testing.T) {
		got, err := repo.Get(ctx, "shop.Missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("empty model rejected", func(t *testing.T) {
		require.Error(t, repo.Put(ctx, model.MonitorResult{}))
		_, err := repo.Get(ctx, "")
		require.Error(t, err)
	})
}

func TestMonitorCacheRepo_GetUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: time.Second})
	defer client.Close()

	repo := NewMonitorCacheRepo(client, time.Minute)
	_, err := repo.Get(context.Background(), "shop.Order")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInternal, apperrors.GetCode(err))
	assert.Contains(t, err.Error(), "redis get chroniker:monitor:shop.Order")
}
