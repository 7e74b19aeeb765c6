package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/target/chroniker-go/internal/bootstrap"
	"github.com/target/chroniker-go/internal/data"
	"github.com/target/chroniker-go/internal/domain/model"
	apperrors "github.com/target/chroniker-go/internal/errors"
	"github.com/target/chroniker-go/internal/registry"
)

// lastResultReader is the read side of the monitor result cache.
type lastResultReader interface {
	Get(ctx context.Context, modelLabel string) (*model.MonitorResult, error)
}

// runShowLast prints the cached result of the last check-monitor run for a model.
func runShowLast(cmdCtx *commandContext, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: show-last takes exactly one model argument", errUsage)
	}
	if !cmdCtx.Config.Redis.Configured() {
		return errors.New("show-last needs the monitor result cache; set REDIS_URI")
	}

	reg, err := registry.FromConfig(cmdCtx.Config.Monitor.Models)
	if err != nil {
		return fmt.Errorf("build model registry: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, cmdCtx.Config.Monitor.Timeout)
	defer cancel()

	client, err := bootstrap.ConnectRedis(ctx, bootstrap.DatabaseConfig{RedisConfig: cmdCtx.Config.Redis, Logger: cmdCtx.Logger})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		if closeErr := client.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("redis close failed", "error", closeErr)
		}
	}()

	cache := data.NewMonitorCacheRepo(client, cmdCtx.Config.Monitor.CacheTTL)
	return showLastResult(ctx, cmdCtx.Stdout, reg, cache, args[0])
}

func showLastResult(ctx context.Context, w io.Writer, reg *registry.Registry, cache lastResultReader, ref string) error {
	m, err := reg.Resolve(ref)
	if err != nil {
		return fmt.Errorf("%w: invalid model %s: %w", errUsage, ref, err)
	}

	result, err := cache.Get(ctx, m.Label())
	if err != nil {
		return err
	}
	if result == nil {
		return apperrors.NotFoundf("no cached monitor result for %s", m.Label())
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"model", result.Model},
		{"table", result.Table},
		{"filter", result.Filter},
		{"count", strconv.FormatInt(result.Count, 10)},
		{"needs_attention", strconv.FormatBool(result.NeedsAttention())},
		{"job_id", result.JobID},
		{"job_updated", strconv.FormatBool(result.JobUpdated)},
		{"checked_at", result.CheckedAt.UTC().Format(time.RFC3339)},
	}
	for _, row := range rows {
		if err := writef(tw, "%s:\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
