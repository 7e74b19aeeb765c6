package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/target/chroniker-go/config"
	"github.com/target/chroniker-go/internal/bootstrap"
	"github.com/target/chroniker-go/internal/registry"
	"github.com/target/chroniker-go/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
	Stdout io.Writer
	Stderr io.Writer
}

const defaultMigrationTimeout = 5 * time.Minute

// errUsage marks argument errors that have already been reported with usage help.
var errUsage = errors.New("usage error")

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(os.Stdout); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stderr); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	runErr := cmd.run(cmdCtx, os.Args[2:])
	code := exitCode(runErr)
	if code == 1 {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
	}
	os.Exit(code) //nolint:forbidigo // CLI must propagate command execution status to callers
}

// exitCode maps a command error to the process status. Invalid monitor input
// has already been reported on stderr and, as with a clean run, exits 0.
func exitCode(err error) int {
	switch {
	case err == nil,
		errors.Is(err, flag.ErrHelp),
		errors.Is(err, service.ErrInvalidInput):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		return 1
	}
}

func commands() map[string]command {
	return map[string]command{
		"check-monitor": {
			name:        "check-monitor",
			description: "Count records of a model matching a filter and report whether any need attention",
			run:         runCheckMonitor,
		},
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrations,
		},
		"list-models": {
			name:        "list-models",
			description: "List the models check-monitor can query",
			run:         runListModels,
		},
		"show-last": {
			name:        "show-last",
			description: "Show the cached result of the last check-monitor run for a model",
			run:         runShowLast,
		},
		"create-job": {
			name:        "create-job",
			description: "Create a job tracking row and print its id",
			run:         runCreateJob,
		},
		"show-job": {
			name:        "show-job",
			description: "Show a job tracking row",
			run:         runShowJob,
		},
		"list-jobs": {
			name:        "list-jobs",
			description: "List job tracking rows, most recently updated first",
			run:         runListJobs,
		},
	}
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: chroniker-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-16s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

type migrateOptions struct {
	Timeout time.Duration
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags(args, cmdCtx.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(ctx, bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", closeErr)
		}
	}()

	cmdCtx.Logger.Info("running database migrations")

	if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
		return fmt.Errorf("run migrations: %w", migrateErr)
	}

	cmdCtx.Logger.Info("migrations completed successfully")
	return nil
}

func parseMigrateFlags(args []string, output io.Writer) (migrateOptions, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(output)

	opts := migrateOptions{Timeout: defaultMigrationTimeout}
	fs.DurationVar(
		&opts.Timeout,
		"timeout",
		defaultMigrationTimeout,
		"Maximum duration to wait for migrations to complete",
	)

	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, usageError(err)
	}
	if fs.NArg() > 0 {
		return migrateOptions{}, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if opts.Timeout <= 0 {
		return migrateOptions{}, fmt.Errorf("%w: --timeout must be greater than zero", errUsage)
	}
	return opts, nil
}

func runListModels(cmdCtx *commandContext, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: list-models takes no arguments", errUsage)
	}

	reg, err := registry.FromConfig(cmdCtx.Config.Monitor.Models)
	if err != nil {
		return fmt.Errorf("build model registry: %w", err)
	}

	tw := tabwriter.NewWriter(cmdCtx.Stdout, 0, 0, 2, ' ', 0)
	if err := writeln(tw, "MODEL\tTABLE"); err != nil {
		return err
	}
	for _, m := range reg.Models() {
		if err := writef(tw, "%s\t%s\n", m.Label(), m.Table); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// usageError keeps flag.ErrHelp recognisable and marks every other parse failure as usage.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", errUsage, err)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
