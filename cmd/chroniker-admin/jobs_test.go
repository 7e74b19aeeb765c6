package main

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/chroniker-go/internal/data"
)

var jobCols = []string{"id", "name", "command", "monitor_records", "created_at", "updated_at"}

func newSQLMockJobRepo(t *testing.T, now time.Time) (*data.JobRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return data.NewJobRepo(db, data.RepoConfig{TimeProvider: data.NewFixedTimeProvider(now)}), mock
}

func TestCreateJob_PrintsID(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	repo, mock := newSQLMockJobRepo(t, now)
	mock.ExpectQuery(`INSERT INTO jobs (id, name, command, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, name, command, monitor_records, created_at, updated_at`).
		WithArgs(sqlmock.AnyArg(), "nightly", "check-monitor shop.Order", now).
		WillReturnRows(sqlmock.NewRows(jobCols).AddRow(testJobIDCanonical, "nightly", "check-monitor shop.Order", nil, now, now))

	var out bytes.Buffer
	err := createJob(context.Background(), &out, repo, createJobOptions{Name: "nightly", Command: "check-monitor shop.Order"})
	require.NoError(t, err)
	assert.Equal(t, testJobIDCanonical+"\n", out.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestShowJob(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	const query = `SELECT id, name, command, monitor_records, created_at, updated_at FROM jobs WHERE id = $1`

	t.Run("found", func(t *testing.T) {
		repo, mock := newSQLMockJobRepo(t, now)
		mock.ExpectQuery(query).WithArgs(testJobIDCanonical).
			WillReturnRows(sqlmock.NewRows(jobCols).AddRow(testJobIDCanonical, "nightly", "", int64(4), now, now))

		var out bytes.Buffer
		require.NoError(t, showJob(context.Background(), &out, repo, testJobIDCanonical))
		assert.Contains(t, out.String(), "name:             nightly\n")
		assert.Contains(t, out.String(), "monitor_records:  4\n")
		assert.Contains(t, out.String(), "updated_at:       2026-10-16T08:00:00Z\n")
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newSQLMockJobRepo(t, now)
		mock.ExpectQuery(query).WithArgs(testJobIDCanonical).WillReturnRows(sqlmock.NewRows(jobCols))

		err := showJob(context.Background(), io.Discard, repo, testJobIDCanonical)
		assert.ErrorIs(t, err, data.ErrJobNotFound)
		assert.Equal(t, 1, exitCode(err))
	})
}

func TestListJobs(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	repo, mock := newSQLMockJobRepo(t, now)
	mock.ExpectQuery(`SELECT "id", "name", "command", "monitor_records", "created_at", "updated_at" FROM "jobs" WHERE "monitor_records" > $1 ORDER BY "updated_at" DESC LIMIT $2`).
		WithArgs(int64(0), 5).
		WillReturnRows(sqlmock.NewRows(jobCols).
			AddRow(testJobIDCanonical, "nightly", "", int64(12), now, now))

	var out bytes.Buffer
	require.NoError(t, listJobs(context.Background(), &out, repo, listJobsOptions{NeedsAttention: true, Limit: 5}))
	assert.Equal(t,
		"ID                                    NAME     MONITOR RECORDS  UPDATED\n"+
			testJobIDCanonical+"  nightly  12               2026-10-16T08:00:00Z\n",
		out.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFormatRecords(t *testing.T) {
	n := int64(0)
	assert.Equal(t, "-", formatRecords(nil))
	assert.Equal(t, "0", formatRecords(&n))
}

func TestParseJobFlags(t *testing.T) {
	opts, err := parseCreateJobFlags([]string{"--name", "nightly", "--command", "check-monitor shop.Order"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, createJobOptions{Name: "nightly", Command: "check-monitor shop.Order"}, opts)

	_, err = parseCreateJobFlags(nil, io.Discard)
	assert.ErrorIs(t, err, errUsage)

	list, err := parseListJobsFlags([]string{"--attention", "--limit", "3"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, listJobsOptions{NeedsAttention: true, Limit: 3}, list)

	_, err = parseListJobsFlags([]string{"--limit", "-2"}, io.Discard)
	assert.ErrorIs(t, err, errUsage)
}

func TestRunShowJob_RejectsBadID(t *testing.T) {
	err := runShowJob(unreachableDBContext(io.Discard, io.Discard), []string{"42"})
	assert.ErrorIs(t, err, errUsage)
	assert.Equal(t, 2, exitCode(err))
}
