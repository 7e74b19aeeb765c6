package bootstrap

import (
	"github.com/target/chroniker-go/config"
	"github.com/target/chroniker-go/internal/observability/metrics"
)

// NewMonitorMetrics builds the Pushgateway reporter described by cfg.
// It returns nil when metrics are disabled; a nil reporter drops everything.
func NewMonitorMetrics(cfg config.ObservabilityMetricsConfig) *metrics.MonitorReporter {
	if !cfg.IsEnabled() {
		return nil
	}
	return metrics.NewMonitorReporter(metrics.ReporterConfig{
		PushgatewayURL: cfg.PushgatewayURL,
		JobName:        cfg.JobName,
	})
}
