package config

import (
	"strings"
	"time"
)

const (
	defaultMonitorTimeout  = time.Minute
	defaultMonitorCacheTTL = 24 * time.Hour
)

// MonitorConfig controls the check-monitor command.
type MonitorConfig struct {
	// JobID identifies the job row that should receive the monitor count.
	// The job runner exports it for the processes it launches; --job-id overrides it.
	JobID string `env:"CHRONIKER_JOB_ID"`

	// Models registers additional monitorable models as "app.Model:table" entries.
	// The table part is optional and defaults to the lowercase "app_model" convention.
	Models []string `env:"MONITOR_MODELS" envSeparator:","`

	// Timeout bounds the count query and job update.
	Timeout time.Duration `env:"MONITOR_TIMEOUT" envDefault:"1m"`

	// CacheTTL controls how long the last result stays in Redis. Zero disables caching.
	CacheTTL time.Duration `env:"MONITOR_CACHE_TTL" envDefault:"24h"`
}

// Sanitize normalises monitor settings.
func (c *MonitorConfig) Sanitize() {
	c.JobID = strings.TrimSpace(c.JobID)

	models := c.Models[:0]
	for _, m := range c.Models {
		if trimmed := strings.TrimSpace(m); trimmed != "" {
			models = append(models, trimmed)
		}
	}
	c.Models = models

	if c.Timeout <= 0 {
		c.Timeout = defaultMonitorTimeout
	}
	if c.CacheTTL < 0 {
		c.CacheTTL = defaultMonitorCacheTTL
	}
}
