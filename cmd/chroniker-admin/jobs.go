package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/target/chroniker-go/internal/data"
	"github.com/target/chroniker-go/internal/domain/model"
)

// jobAdmin is the part of data.JobRepo the job commands use.
type jobAdmin interface {
	Create(ctx context.Context, name, command string) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, opts data.JobListOptions) ([]*model.Job, error)
}

type createJobOptions struct {
	Name    string
	Command string
}

type listJobsOptions struct {
	NeedsAttention bool
	Limit          int
}

func runCreateJob(cmdCtx *commandContext, args []string) error {
	opts, err := parseCreateJobFlags(args, cmdCtx.Stderr)
	if err != nil {
		return err
	}
	return withJobRepo(cmdCtx, func(ctx context.Context, repo jobAdmin) error {
		return createJob(ctx, cmdCtx.Stdout, repo, opts)
	})
}

func runShowJob(cmdCtx *commandContext, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show-job takes exactly one job id", errUsage)
	}
	id, err := model.NormalizeJobID(args[0])
	if err != nil {
		return errors.Join(errUsage, err)
	}
	return withJobRepo(cmdCtx, func(ctx context.Context, repo jobAdmin) error {
		return showJob(ctx, cmdCtx.Stdout, repo, id)
	})
}

func runListJobs(cmdCtx *commandContext, args []string) error {
	opts, err := parseListJobsFlags(args, cmdCtx.Stderr)
	if err != nil {
		return err
	}
	return withJobRepo(cmdCtx, func(ctx context.Context, repo jobAdmin) error {
		return listJobs(ctx, cmdCtx.Stdout, repo, opts)
	})
}

// withJobRepo connects to Postgres for the duration of fn.
func withJobRepo(cmdCtx *commandContext, fn func(ctx context.Context, repo jobAdmin) error) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cmdCtx.Config.Monitor.Timeout)
	defer cancel()

	infra, err := connectInfra(ctx, cmdCtx.Logger, &cmdCtx.Config, false)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := infra.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("infra close failed", "error", closeErr)
		}
	}()

	return fn(ctx, data.NewJobRepo(infra.DB, data.RepoConfig{Logger: cmdCtx.Logger}))
}

func createJob(ctx context.Context, w io.Writer, repo jobAdmin, opts createJobOptions) error {
	job, err := repo.Create(ctx, opts.Name, opts.Command)
	if err != nil {
		return err
	}
	return writeln(w, job.ID)
}

func showJob(ctx context.Context, w io.Writer, repo jobAdmin, id string) error {
	job, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"id", job.ID},
		{"name", job.Name},
		{"command", job.Command},
		{"monitor_records", formatRecords(job.MonitorRecords)},
		{"created_at", job.CreatedAt.UTC().Format(time.RFC3339)},
		{"updated_at", job.UpdatedAt.UTC().Format(time.RFC3339)},
	}
	for _, row := range rows {
		if err := writef(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func listJobs(ctx context.Context, w io.Writer, repo jobAdmin, opts listJobsOptions) error {
	jobs, err := repo.List(ctx, data.JobListOptions{NeedsAttention: opts.NeedsAttention, Limit: opts.Limit})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if err := writeln(tw, "ID\tNAME\tMONITOR RECORDS\tUPDATED"); err != nil {
		return err
	}
	for _, job := range jobs {
		if err := writef(tw, "%s\t%s\t%s\t%s\n",
			job.ID, job.Name, formatRecords(job.MonitorRecords), job.UpdatedAt.UTC().Format(time.RFC3339),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func formatRecords(n *int64) string {
	if n == nil {
		return "-"
	}
	return strconv.FormatInt(*n, 10)
}

func parseCreateJobFlags(args []string, output io.Writer) (createJobOptions, error) {
	fs := flag.NewFlagSet("create-job", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts createJobOptions
	fs.StringVar(&opts.Name, "name", "", "Job name (required)")
	fs.StringVar(&opts.Command, "command", "", "Command line the job runs")

	if err := fs.Parse(args); err != nil {
		return createJobOptions{}, usageError(err)
	}
	if fs.NArg() > 0 {
		return createJobOptions{}, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if opts.Name == "" {
		return createJobOptions{}, fmt.Errorf("%w: --name is required", errUsage)
	}
	return opts, nil
}

func parseListJobsFlags(args []string, output io.Writer) (listJobsOptions, error) {
	fs := flag.NewFlagSet("list-jobs", flag.ContinueOnError)
	fs.SetOutput(output)

	var opts listJobsOptions
	fs.BoolVar(&opts.NeedsAttention, "attention", false, "Only jobs whose last monitor count was positive")
	fs.IntVar(&opts.Limit, "limit", 0, "Maximum number of jobs to list (0 lists all)")

	if err := fs.Parse(args); err != nil {
		return listJobsOptions{}, usageError(err)
	}
	if fs.NArg() > 0 {
		return listJobsOptions{}, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if opts.Limit < 0 {
		return listJobsOptions{}, fmt.Errorf("%w: --limit must not be negative", errUsage)
	}
	return opts, nil
}
