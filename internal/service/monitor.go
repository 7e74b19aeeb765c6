package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/target/chroniker-go/internal/core"
	"github.com/target/chroniker-go/internal/data"
	"github.com/target/chroniker-go/internal/domain/model"
	apperrors "github.com/target/chroniker-go/internal/errors"
	"github.com/target/chroniker-go/internal/observability/metrics"
)

var (
	// ErrInvalidInput marks failures caused by the caller's model or filter argument.
	// Such failures have already been reported on the error stream.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidModel is returned when the model identifier is malformed or unknown.
	ErrInvalidModel = errors.New("invalid model")
	// ErrCounterRequired is returned by Execute when no RecordCounter is configured.
	ErrCounterRequired = errors.New("record counter is required")
)

const invalidFilterMessage = "Invalid filter format. Expected key=value,key2=value2"

// CheckRequest is a single check-monitor invocation.
type CheckRequest struct {
	Model   string
	Filter  string
	Verbose bool
	// JobID names the job tracking row to update. Empty means no current job.
	JobID string
}

// MonitorPorts groups the collaborators the check reads from and writes to.
type MonitorPorts struct {
	Resolver core.ModelResolver // Required
	Counter  core.RecordCounter // Required by Execute; Prepare runs without it
	Jobs     core.JobStore      // Optional: required only when requests carry a job ID
}

// MonitorSinks groups optional side outputs. Failures there are logged only.
type MonitorSinks struct {
	Cache   core.MonitorCache
	Metrics core.MonitorMetrics
	Now     func() time.Time
}

// MonitorOutput holds the streams the status line is written to.
type MonitorOutput struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// MonitorServiceOptions groups dependencies for MonitorService.
type MonitorServiceOptions struct {
	Ports  MonitorPorts
	Sinks  MonitorSinks
	Output MonitorOutput
}

// MonitorService counts records of a registered model that match a filter and
// reports whether any of them need attention.
type MonitorService struct {
	resolver core.ModelResolver
	counter  core.RecordCounter
	jobs     core.JobStore
	cache    core.MonitorCache
	metrics  core.MonitorMetrics
	now      func() time.Time
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
}

// CheckPlan is a check whose model resolved and whose filter parsed.
// It is produced by Prepare and consumed by Execute.
type CheckPlan struct {
	Request CheckRequest
	Model   model.Model
	Filter  Filter
	started time.Time
}

// NewMonitorService constructs a MonitorService. It panics when the resolver is missing.
func NewMonitorService(opts MonitorServiceOptions) *MonitorService {
	if opts.Ports.Resolver == nil {
		panic("ModelResolver is required")
	}

	s := &MonitorService{
		resolver: opts.Ports.Resolver,
		counter:  opts.Ports.Counter,
		jobs:     opts.Ports.Jobs,
		cache:    opts.Sinks.Cache,
		metrics:  opts.Sinks.Metrics,
		now:      opts.Sinks.Now,
		stdout:   opts.Output.Stdout,
		stderr:   opts.Output.Stderr,
		logger:   opts.Output.Logger,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "monitor_service")
	return s
}

// Check runs one monitor pass and prints "{count} records require attention."
// to stderr when count > 0 and to stdout otherwise. It is Prepare followed by Execute.
//
// Invalid model or filter input is reported on stderr and returned wrapped in
// ErrInvalidInput without querying. Count and job store failures are returned.
func (s *MonitorService) Check(ctx context.Context, req CheckRequest) (*model.MonitorResult, error) {
	plan, err := s.Prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.Execute(ctx, plan)
}

// Prepare resolves the model and parses the filter without touching storage.
// Invalid input is reported on stderr and returned wrapped in ErrInvalidInput.
func (s *MonitorService) Prepare(ctx context.Context, req CheckRequest) (*CheckPlan, error) {
	start := s.now()

	m, err := s.resolver.Resolve(req.Model)
	if err != nil {
		fmt.Fprintf(s.stderr, "Invalid model: %s. Error: %v\n", req.Model, err)
		s.record(ctx, req.Model, metrics.MonitorMetric{Result: metrics.ResultInvalidInput, ErrorCode: "invalid_model"}, start)
		return nil, fmt.Errorf("%w: %w: %w", ErrInvalidInput, ErrInvalidModel, err)
	}

	filter, err := ParseFilter(req.Filter)
	if err != nil {
		fmt.Fprintln(s.stderr, invalidFilterMessage)
		s.record(ctx, m.Label(), metrics.MonitorMetric{Result: metrics.ResultInvalidInput, ErrorCode: "invalid_filter"}, start)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return &CheckPlan{Request: req, Model: m, Filter: filter, started: start}, nil
}

// Execute counts the records of a prepared check, updates the job and prints the status line.
func (s *MonitorService) Execute(ctx context.Context, plan *CheckPlan) (*model.MonitorResult, error) {
	if s.counter == nil {
		return nil, ErrCounterRequired
	}
	if plan == nil {
		return nil, errors.New("check plan is required")
	}

	m, filter, req := plan.Model, plan.Filter, plan.Request
	label := m.Label()
	start := plan.started
	if start.IsZero() {
		start = s.now()
	}

	if req.Verbose {
		fmt.Fprintf(s.stdout, "Filtering %s (table %s) with: %s\n", label, m.Table, filter)
	}

	count, err := s.counter.Count(ctx, m.Table, filter)
	if err != nil {
		s.record(ctx, label, metrics.MonitorMetric{Result: metrics.ResultError, ErrorCode: string(apperrors.GetCode(err))}, start)
		return nil, fmt.Errorf("count %s: %w", label, err)
	}

	result := &model.MonitorResult{
		Model:     label,
		Table:     m.Table,
		Filter:    req.Filter,
		Count:     count,
		JobID:     req.JobID,
		CheckedAt: start.UTC(),
	}

	if req.JobID != "" {
		updated, saveErr := s.saveJob(ctx, req.JobID, count)
		if saveErr != nil {
			s.record(ctx, label, metrics.MonitorMetric{Result: metrics.ResultError, ErrorCode: string(apperrors.GetCode(saveErr))}, start)
			return nil, saveErr
		}
		result.JobUpdated = updated
	}

	s.cacheResult(ctx, *result)
	s.record(ctx, label, metrics.MonitorMetric{Result: metrics.ResultSuccess, Count: count}, start)

	out := s.stdout
	if result.NeedsAttention() {
		out = s.stderr
	}
	fmt.Fprintf(out, "%d records require attention.\n", count)

	s.logger.DebugContext(ctx, "monitor check complete",
		"model", label,
		"table", m.Table,
		"filters", filter.Len(),
		"count", count,
		"job_updated", result.JobUpdated,
	)
	return result, nil
}

// saveJob stores count on the job row. A job ID that matches no row is
// treated as "no current job".
func (s *MonitorService) saveJob(ctx context.Context, jobID string, count int64) (bool, error) {
	if s.jobs == nil {
		s.logger.WarnContext(ctx, "job id supplied but no job store configured", "job_id", jobID)
		return false, nil
	}

	err := s.jobs.SaveMonitorRecords(ctx, jobID, count)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, data.ErrJobNotFound):
		s.logger.WarnContext(ctx, "current job not found; monitor records not saved", "job_id", jobID)
		return false, nil
	default:
		return false, fmt.Errorf("save monitor records: %w", err)
	}
}

func (s *MonitorService) cacheResult(ctx context.Context, result model.MonitorResult) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, result); err != nil {
		s.logger.WarnContext(ctx, "failed to cache monitor result", "model", result.Model, "error", err)
	}
}

func (s *MonitorService) record(ctx context.Context, label string, m metrics.MonitorMetric, start time.Time) {
	if s.metrics == nil {
		return
	}
	m.Model = label
	m.Duration = s.now().Sub(start)
	s.metrics.Observe(m)
	if err := s.metrics.Push(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to push monitor metrics", "model", label, "error", err)
	}
}
