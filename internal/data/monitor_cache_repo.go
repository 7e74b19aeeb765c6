package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/target/chroniker-go/internal/domain/model"
	apperrors "github.com/target/chroniker-go/internal/errors"
)

const monitorCacheKeyPrefix = "chroniker:monitor:"

// MonitorCacheRepo keeps the last monitor result per model in Redis so dashboards
// can read it without re-running the count.
type MonitorCacheRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewMonitorCacheRepo creates a MonitorCacheRepo. Entries expire after ttl.
func NewMonitorCacheRepo(client redis.UniversalClient, ttl time.Duration) *MonitorCacheRepo {
	return &MonitorCacheRepo{client: client, ttl: ttl}
}

// MonitorCacheKey returns the Redis key holding the last result for a model label.
func MonitorCacheKey(modelLabel string) string {
	return monitorCacheKeyPrefix + modelLabel
}

// Put stores result under its model label.
func (r *MonitorCacheRepo) Put(ctx context.Context, result model.MonitorResult) error {
	if result.Model == "" {
		return errors.New("monitor result model cannot be empty")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode monitor result: %w", err)
	}
	if err := r.client.Set(ctx, MonitorCacheKey(result.Model), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Get returns the last result for modelLabel, or nil when none is cached.
func (r *MonitorCacheRepo) Get(ctx context.Context, modelLabel string) (*model.MonitorResult, error) {
	if modelLabel == "" {
		return nil, errors.New("model label cannot be empty")
	}

	key := MonitorCacheKey(modelLabel)
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperrors.Wrapf(err, apperrors.ErrCodeInternal, "redis get %s", key)
	}

	var result model.MonitorResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode monitor result: %w", err)
	}
	return &result, nil
}
