package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/target/chroniker-go/internal/bootstrap"
	"github.com/target/chroniker-go/internal/data"
	"github.com/target/chroniker-go/internal/domain/model"
	"github.com/target/chroniker-go/internal/registry"
	"github.com/target/chroniker-go/internal/service"
)

type checkMonitorOptions struct {
	Model   string
	Filter  string
	Verbose bool
	JobID   string
	Timeout time.Duration
}

func runCheckMonitor(cmdCtx *commandContext, args []string) error {
	monitorCfg := cmdCtx.Config.Monitor
	opts, err := parseCheckMonitorFlags(args, checkMonitorOptions{
		JobID:   monitorCfg.JobID,
		Timeout: monitorCfg.Timeout,
	}, cmdCtx.Stderr)
	if err != nil {
		return err
	}

	reg, err := registry.FromConfig(monitorCfg.Models)
	if err != nil {
		return fmt.Errorf("build model registry: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	svcOpts := buildMonitorOptions(cmdCtx, reg)
	plan, err := service.NewMonitorService(svcOpts).Prepare(ctx, service.CheckRequest{
		Model:   opts.Model,
		Filter:  opts.Filter,
		Verbose: opts.Verbose,
		JobID:   opts.JobID,
	})
	if err != nil {
		return err
	}

	infra, err := connectInfra(ctx, cmdCtx.Logger, &cmdCtx.Config, monitorCfg.CacheTTL > 0)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := infra.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("infra close failed", "error", closeErr)
		}
	}()

	attachMonitorStores(&svcOpts, cmdCtx, infra)
	_, err = service.NewMonitorService(svcOpts).Execute(ctx, plan)
	return err
}

// buildMonitorOptions wires everything a check needs before any connection is opened.
func buildMonitorOptions(cmdCtx *commandContext, reg *registry.Registry) service.MonitorServiceOptions {
	opts := service.MonitorServiceOptions{
		Ports: service.MonitorPorts{Resolver: reg},
		Output: service.MonitorOutput{
			Stdout: cmdCtx.Stdout,
			Stderr: cmdCtx.Stderr,
			Logger: cmdCtx.Logger,
		},
	}
	if reporter := bootstrap.NewMonitorMetrics(cmdCtx.Config.Observability.Metrics); reporter != nil {
		opts.Sinks.Metrics = reporter
	}
	return opts
}

// attachMonitorStores adds the Postgres and Redis backed ports once infra is up.
func attachMonitorStores(opts *service.MonitorServiceOptions, cmdCtx *commandContext, infra *monitorInfra) {
	opts.Ports.Counter = data.NewRecordRepo(infra.DB)
	opts.Ports.Jobs = data.NewJobRepo(infra.DB, data.RepoConfig{Logger: cmdCtx.Logger})
	if infra.Redis != nil {
		opts.Sinks.Cache = data.NewMonitorCacheRepo(infra.Redis, cmdCtx.Config.Monitor.CacheTTL)
	}
}

// parseCheckMonitorFlags accepts flags before or after the model argument.
func parseCheckMonitorFlags(args []string, defaults checkMonitorOptions, output io.Writer) (checkMonitorOptions, error) {
	fs := flag.NewFlagSet("check-monitor", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		_ = writeln(fs.Output(), "Usage: chroniker-admin check-monitor <app_label.ModelName> [--filter key=value,...] [--verbose]")
		fs.PrintDefaults()
	}

	opts := defaults
	fs.StringVar(&opts.Filter, "filter", "", "Equality filter, e.g. name=John,active=True")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Show the resolved model and filter before counting")
	fs.StringVar(&opts.JobID, "job-id", defaults.JobID, "Job whose monitor record count is updated (default $CHRONIKER_JOB_ID)")
	fs.DurationVar(&opts.Timeout, "timeout", defaults.Timeout, "Maximum duration for the count and job update")

	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return checkMonitorOptions{}, usageError(err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}

	if len(positional) != 1 {
		fs.Usage()
		return checkMonitorOptions{}, fmt.Errorf("%w: expected exactly one model argument, got %d", errUsage, len(positional))
	}
	opts.Model = positional[0]

	if opts.Timeout <= 0 {
		return checkMonitorOptions{}, fmt.Errorf("%w: --timeout must be greater than zero", errUsage)
	}
	if opts.JobID != "" {
		id, err := model.NormalizeJobID(opts.JobID)
		if err != nil {
			return checkMonitorOptions{}, errors.Join(errUsage, err)
		}
		opts.JobID = id
	}
	return opts, nil
}
