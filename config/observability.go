package config

import "strings"

const defaultMetricsJobName = "chroniker_check_monitor"

// ObservabilityConfig groups configuration that controls metrics emission.
type ObservabilityConfig struct {
	Metrics ObservabilityMetricsConfig
}

// Sanitize applies guardrails to observability sub-configs.
func (c *ObservabilityConfig) Sanitize() {
	c.Metrics.Sanitize()
}

// ObservabilityMetricsConfig controls pushing monitor metrics to a Prometheus Pushgateway.
// CLI runs are too short-lived to be scraped, so results are pushed once per run.
type ObservabilityMetricsConfig struct {
	Enabled        bool   `env:"OBSERVABILITY_METRICS_ENABLED"         envDefault:"false"`
	PushgatewayURL string `env:"OBSERVABILITY_METRICS_PUSHGATEWAY_URL" envDefault:""`
	JobName        string `env:"OBSERVABILITY_METRICS_JOB_NAME"        envDefault:"chroniker_check_monitor"`
}

// Sanitize normalises derived fields and enforces safe defaults.
func (c *ObservabilityMetricsConfig) Sanitize() {
	c.PushgatewayURL = strings.TrimSpace(c.PushgatewayURL)
	if c.PushgatewayURL == "" {
		c.Enabled = false
	}
	if c.JobName = strings.TrimSpace(c.JobName); c.JobName == "" {
		c.JobName = defaultMetricsJobName
	}
}

// IsEnabled returns true when metrics emission is active after sanitisation.
func (c *ObservabilityMetricsConfig) IsEnabled() bool {
	return c.Enabled && c.PushgatewayURL != ""
}
