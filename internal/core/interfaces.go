package core

import (
	"context"

	"github.com/target/chroniker-go/internal/domain/model"
	"github.com/target/chroniker-go/internal/observability/metrics"
)

// This file contains the port interfaces between the monitor service and
// its collaborators. Service implementations depend on these interfaces,
// not on internal/data or internal/registry directly.

// ModelResolver resolves an "app_label.ModelName" identifier to a monitorable model.
type ModelResolver interface {
	Resolve(ref string) (model.Model, error)
}

// RecordCounter counts rows of a table matching a conjunction of equality filters.
type RecordCounter interface {
	Count(ctx context.Context, table string, filters []model.FieldFilter) (int64, error)
}

// JobStore persists the monitor record count on a job tracking row.
type JobStore interface {
	SaveMonitorRecords(ctx context.Context, id string, count int64) error
}

// MonitorCache keeps the last result per model for readers outside the CLI.
type MonitorCache interface {
	Put(ctx context.Context, result model.MonitorResult) error
}

// MonitorMetrics records and publishes run outcomes.
type MonitorMetrics interface {
	Observe(metric metrics.MonitorMetric)
	Push(ctx context.Context) error
}
