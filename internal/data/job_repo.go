package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/target/chroniker-go/internal/data/database"
	"github.com/target/chroniker-go/internal/domain/model"
	apperrors "github.com/target/chroniker-go/internal/errors"
)

// RepoConfig holds configuration options for the job repository.
type RepoConfig struct {
	Logger       *slog.Logger
	TimeProvider TimeProvider
}

// JobRepo provides database operations on job tracking records.
type JobRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
	logger       *slog.Logger
}

// NewJobRepo creates a new JobRepo instance with the given database connection and configuration.
func NewJobRepo(db *sql.DB, cfg RepoConfig) *JobRepo {
	tp := cfg.TimeProvider
	if tp == nil {
		tp = RealTimeProvider{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &JobRepo{
		DB:           db,
		timeProvider: tp,
		logger:       logger.With("component", "job_repo"),
	}
}

const (
	jobsTable  = "jobs"
	jobColumns = `id, name, command, monitor_records, created_at, updated_at`
)

var jobColumnNames = []string{"id", "name", "command", "monitor_records", "created_at", "updated_at"}

// JobListOptions narrows List.
type JobListOptions struct {
	// NeedsAttention keeps only jobs whose last monitor count was positive.
	NeedsAttention bool
	// Limit caps the result; zero means no limit.
	Limit int
}

// Create inserts a job row and returns it.
func (r *JobRepo) Create(ctx context.Context, name, command string) (*model.Job, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validationf("job name is required")
	}

	now := r.timeProvider.Now().UTC()
	query := `INSERT INTO jobs (id, name, command, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + jobColumns

	job, err := scanJob(r.DB.QueryRowContext(ctx, query, model.NewJobID(), name, command, now))
	if err != nil {
		return nil, fmt.Errorf("create job: %w", apperrors.MapDBError(err))
	}
	return job, nil
}

// GetByID returns the job with the given id or ErrJobNotFound.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if id == "" {
		return nil, ErrJobIDRequired
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, apperrors.MapDBError(err))
	}
	return job, nil
}

// List returns jobs, most recently updated first.
func (r *JobRepo) List(ctx context.Context, opts JobListOptions) (jobs []*model.Job, err error) {
	if opts.Limit < 0 {
		return nil, apperrors.Validationf("limit must not be negative")
	}

	queryOpts := []database.ListQueryOption{
		database.WithColumns(jobColumnNames...),
		database.WithOrderBy("updated_at", "DESC"),
	}
	if opts.NeedsAttention {
		queryOpts = append(queryOpts, database.WithCondition(database.WhereCond("monitor_records", database.GreaterThan, int64(0))))
	}
	if opts.Limit > 0 {
		queryOpts = append(queryOpts, database.WithLimit(opts.Limit))
	}
	query, args := database.BuildListQuery(database.NewListQueryOptions(jobsTable, queryOpts...))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", apperrors.MapDBError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("list jobs: close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		job, scanErr := scanJob(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("list jobs: scan: %w", scanErr)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", apperrors.MapDBError(err))
	}
	return jobs, nil
}

// SaveMonitorRecords stores count as the job's monitor record count.
// It returns ErrJobNotFound when no row was updated.
func (r *JobRepo) SaveMonitorRecords(ctx context.Context, id string, count int64) error {
	if id == "" {
		return ErrJobIDRequired
	}

	res, err := r.DB.ExecContext(ctx,
		`UPDATE jobs SET monitor_records = $1, updated_at = $2 WHERE id = $3`,
		count, r.timeProvider.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("save monitor records for job %s: %w", id, apperrors.MapDBError(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save monitor records for job %s: rows affected: %w", id, err)
	}
	if affected == 0 {
		return ErrJobNotFound
	}

	r.logger.DebugContext(ctx, "saved monitor records", "job_id", id, "monitor_records", count)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*model.Job, error) {
	var (
		job     model.Job
		records sql.NullInt64
	)
	if err := row.Scan(&job.ID, &job.Name, &job.Command, &records, &job.CreatedAt, &job.UpdatedAt); err != nil {
		return nil, err
	}
	if records.Valid {
		v := records.Int64
		job.MonitorRecords = &v
	}
	return &job, nil
}
