// Package metrics reports check-monitor results to a Prometheus Pushgateway.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Result constants for metric labels.
const (
	ResultSuccess      = "success"
	ResultError        = "error"
	ResultInvalidInput = "invalid_input"
)

// Metric names.
const (
	MetricMonitorRecords         = "chroniker_monitor_records"
	MetricMonitorRunsTotal       = "chroniker_monitor_runs_total"
	MetricMonitorDurationSeconds = "chroniker_monitor_duration_seconds"
	MetricMonitorLastRunUnix     = "chroniker_monitor_last_run_timestamp_seconds"

	groupingLabel = "model"
)

// MonitorMetric captures the outcome of a single check-monitor run.
type MonitorMetric struct {
	Model    string
	Count    int64
	Result   string
	Duration time.Duration
	// ErrorCode is an optional error category, e.g. "validation" or "not_found".
	ErrorCode string
}

// ReporterConfig configures a MonitorReporter.
type ReporterConfig struct {
	PushgatewayURL string
	JobName        string
	// Doer overrides the HTTP client used for pushes (tests).
	Doer push.HTTPDoer
}

// MonitorReporter collects monitor metrics in a private registry and pushes them.
// A reporter tracks a single model: the model travels in the Pushgateway
// grouping key, so the collectors carry no model label of their own.
// A nil *MonitorReporter is valid and drops everything.
type MonitorReporter struct {
	cfg      ReporterConfig
	registry *prometheus.Registry

	records  prometheus.Gauge
	runs     *prometheus.CounterVec
	duration prometheus.Gauge
	lastRun  *prometheus.GaugeVec

	model string
}

// NewMonitorReporter registers the monitor collectors on a fresh registry.
func NewMonitorReporter(cfg ReporterConfig) *MonitorReporter {
	registry := prometheus.NewRegistry()

	r := &MonitorReporter{
		cfg:      cfg,
		registry: registry,
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricMonitorRecords,
			Help: "Number of records that matched the monitor filter on the last run.",
		}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricMonitorRunsTotal,
			Help: "Monitor runs by result.",
		}, []string{"result", "error_code"}),
		duration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricMonitorDurationSeconds,
			Help: "Wall time of the last monitor run.",
		}),
		lastRun: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: MetricMonitorLastRunUnix,
			Help: "Unix time of the last monitor run.",
		}, []string{"result"}),
	}

	registry.MustRegister(r.records, r.runs, r.duration, r.lastRun)
	return r
}

// Registry exposes the underlying registry.
func (r *MonitorReporter) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Model returns the model the reporter is pushing for.
func (r *MonitorReporter) Model() string {
	if r == nil {
		return ""
	}
	return r.model
}

// Observe records a run outcome. The first non-empty model observed names
// the Pushgateway group; later observations for other models are dropped.
func (r *MonitorReporter) Observe(in MonitorMetric) {
	if r == nil {
		return
	}
	if r.model == "" {
		r.model = in.Model
	} else if in.Model != "" && in.Model != r.model {
		return
	}

	r.runs.WithLabelValues(in.Result, in.ErrorCode).Inc()
	r.lastRun.WithLabelValues(in.Result).SetToCurrentTime()
	if in.Duration > 0 {
		r.duration.Set(in.Duration.Seconds())
	}
	if in.Result == ResultSuccess {
		r.records.Set(float64(in.Count))
	}
}

// Push sends the collected metrics to the Pushgateway, grouped by model
// so runs against different models do not overwrite each other.
func (r *MonitorReporter) Push(ctx context.Context) error {
	if r == nil {
		return nil
	}

	pusher := push.New(r.cfg.PushgatewayURL, r.cfg.JobName).Gatherer(r.registry)
	if r.model != "" {
		pusher = pusher.Grouping(groupingLabel, r.model)
	}
	if r.cfg.Doer != nil {
		pusher = pusher.Client(r.cfg.Doer)
	}

	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push monitor metrics: %w", err)
	}
	return nil
}
