package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_ParseMonitorEnv(t *testing.T) {
	t.Setenv("CHRONIKER_JOB_ID", "  6f1c1d52-5a43-4c7e-8f0e-2d6f3f7c9b10 ")
	t.Setenv("MONITOR_MODELS", "shop.Order:shop_orders, auth.User,")
	t.Setenv("MONITOR_TIMEOUT", "30s")
	t.Setenv("DB_HOST", "db.internal")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "6f1c1d52-5a43-4c7e-8f0e-2d6f3f7c9b10", cfg.Monitor.JobID)
	assert.Equal(t, []string{"shop.Order:shop_orders", "auth.User"}, cfg.Monitor.Models)
	assert.Equal(t, 30*time.Second, cfg.Monitor.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Monitor.CacheTTL)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.False(t, cfg.Redis.Configured())
}

func TestMonitorConfig_Sanitize(t *testing.T) {
	tests := []struct {
		name    string
		in      MonitorConfig
		timeout time.Duration
		ttl     time.Duration
	}{
		{
			name:    "zero timeout falls back to default",
			in:      MonitorConfig{Timeout: 0, CacheTTL: time.Hour},
			timeout: defaultMonitorTimeout,
			ttl:     time.Hour,
		},
		{
			name:    "negative ttl falls back to default",
			in:      MonitorConfig{Timeout: time.Second, CacheTTL: -time.Second},
			timeout: time.Second,
			ttl:     defaultMonitorCacheTTL,
		},
		{
			name:    "zero ttl disables caching",
			in:      MonitorConfig{Timeout: time.Second},
			timeout: time.Second,
			ttl:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Sanitize()
			assert.Equal(t, tt.timeout, cfg.Timeout)
			assert.Equal(t, tt.ttl, cfg.CacheTTL)
		})
	}
}

func TestRedisConfig_Configured(t *testing.T) {
	tests := []struct {
		name string
		cfg  *RedisConfig
		want bool
	}{
		{name: "nil", cfg: nil, want: false},
		{name: "empty", cfg: &RedisConfig{}, want: false},
		{name: "blank uri", cfg: &RedisConfig{URI: "   "}, want: false},
		{name: "bare address", cfg: &RedisConfig{URI: "localhost:6379"}, want: true},
		{name: "url", cfg: &RedisConfig{URI: "rediss://cache:6380/2"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Configured())
		})
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{Enabled: true, PushgatewayURL: "   ", JobName: ""}
	cfg.Sanitize()

	assert.False(t, cfg.IsEnabled())
	assert.Equal(t, defaultMetricsJobName, cfg.JobName)

	cfg = ObservabilityMetricsConfig{Enabled: true, PushgatewayURL: " http://pushgateway:9091 "}
	cfg.Sanitize()
	assert.True(t, cfg.IsEnabled())
	assert.Equal(t, "http://pushgateway:9091", cfg.PushgatewayURL)
}
