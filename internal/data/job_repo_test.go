package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/target/chroniker-go/internal/errors"
)

const testJobID = "6f1c1d52-5a43-4c7e-8f0e-2d6f3f7c9b10"

func newMockJobRepo(t *testing.T, now time.Time) (*JobRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewJobRepo(db, RepoConfig{TimeProvider: NewFixedTimeProvider(now)}), mock
}

func TestJobRepo_SaveMonitorRecords(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	const query = `UPDATE jobs SET monitor_records = $1, updated_at = $2 WHERE id = $3`

	t.Run("updates the row", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectExec(query).WithArgs(int64(5), now, testJobID).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SaveMonitorRecords(context.Background(), testJobID, 5))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectExec(query).WithArgs(int64(0), now, testJobID).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SaveMonitorRecords(context.Background(), testJobID, 0)
		assert.True(t, errors.Is(err, ErrJobNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectExec(query).WithArgs(int64(2), now, testJobID).WillReturnError(context.DeadlineExceeded)

		err := repo.SaveMonitorRecords(context.Background(), testJobID, 2)
		require.Error(t, err)
		assert.True(t, apperrors.IsTimeout(err))
		assert.Contains(t, err.Error(), testJobID)
	})

	t.Run("id required", func(t *testing.T) {
		repo, _ := newMockJobRepo(t, now)
		assert.True(t, errors.Is(repo.SaveMonitorRecords(context.Background(), "", 1), ErrJobIDRequired))
	})
}

func TestJobRepo_GetByID(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	const query = `SELECT id, name, command, monitor_records, created_at, updated_at FROM jobs WHERE id = $1`
	cols := []string{"id", "name", "command", "monitor_records", "created_at", "updated_at"}

	t.Run("with monitor records", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectQuery(query).WithArgs(testJobID).WillReturnRows(
			sqlmock.NewRows(cols).AddRow(testJobID, "nightly", "check-monitor shop.Order", int64(7), now, now),
		)

		job, err := repo.GetByID(context.Background(), testJobID)
		require.NoError(t, err)
		assert.Equal(t, "nightly", job.Name)
		require.NotNil(t, job.MonitorRecords)
		assert.Equal(t, int64(7), *job.MonitorRecords)
	})

	t.Run("null monitor records", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectQuery(query).WithArgs(testJobID).WillReturnRows(
			sqlmock.NewRows(cols).AddRow(testJobID, "nightly", "", nil, now, now),
		)

		job, err := repo.GetByID(context.Background(), testJobID)
		require.NoError(t, err)
		assert.Nil(t, job.MonitorRecords)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectQuery(query).WithArgs(testJobID).WillReturnRows(sqlmock.NewRows(cols))

		_, err := repo.GetByID(context.Background(), testJobID)
		assert.True(t, errors.Is(err, ErrJobNotFound))
	})
}

func TestJobRepo_Create(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	repo, mock := newMockJobRepo(t, now)

	mock.ExpectQuery(`INSERT INTO jobs (id, name, command, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, name, command, monitor_records, created_at, updated_at`).
		WithArgs(sqlmock.AnyArg(), "nightly", "check-monitor shop.Order", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "command", "monitor_records", "created_at", "updated_at"}).
			AddRow(testJobID, "nightly", "check-monitor shop.Order", nil, now, now))

	job, err := repo.Create(context.Background(), " nightly ", "check-monitor shop.Order")
	require.NoError(t, err)
	assert.Equal(t, testJobID, job.ID)
	assert.Nil(t, job.MonitorRecords)
	require.NoError(t, mock.ExpectationsWereMet())

	_, err = repo.Create(context.Background(), "  ", "")
	assert.True(t, apperrors.IsValidation(err))
}

func TestJobRepo_List(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	cols := []string{"id", "name", "command", "monitor_records", "created_at", "updated_at"}
	const selectJobs = `SELECT "id", "name", "command", "monitor_records", "created_at", "updated_at" FROM "jobs"`

	t.Run("all jobs", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectQuery(selectJobs + ` ORDER BY "updated_at" DESC`).WillReturnRows(
			sqlmock.NewRows(cols).
				AddRow(testJobID, "nightly", "check-monitor shop.Order", int64(3), now, now).
				AddRow("0b7c2a9e-4a55-4d4e-9a44-2f5c1f0f8e11", "hourly", "", nil, now, now),
		)

		jobs, err := repo.List(context.Background(), JobListOptions{})
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, "nightly", jobs[0].Name)
		assert.Nil(t, jobs[1].MonitorRecords)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("needs attention with limit", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectQuery(selectJobs+` WHERE "monitor_records" > $1 ORDER BY "updated_at" DESC LIMIT $2`).
			WithArgs(int64(0), 10).
			WillReturnRows(sqlmock.NewRows(cols))

		jobs, err := repo.List(context.Background(), JobListOptions{NeedsAttention: true, Limit: 10})
		require.NoError(t, err)
		assert.Empty(t, jobs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error is mapped", func(t *testing.T) {
		repo, mock := newMockJobRepo(t, now)
		mock.ExpectQuery(selectJobs + ` ORDER BY "updated_at" DESC`).WillReturnError(context.DeadlineExceeded)

		_, err := repo.List(context.Background(), JobListOptions{})
		require.Error(t, err)
		assert.True(t, apperrors.IsTimeout(err))
	})

	t.Run("negative limit", func(t *testing.T) {
		repo, _ := newMockJobRepo(t, now)
		_, err := repo.List(context.Background(), JobListOptions{Limit: -1})
		assert.True(t, apperrors.IsValidation(err))
	})
}
