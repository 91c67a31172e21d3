// Command ordercleaner cleans messy e-commerce order exports.
//
// Usage:
//
//	ordercleaner [clean] [-input path] [-output path] [-report path] [-html path]
//	ordercleaner generate [-rows n] [-seed n] [-output path]
//	ordercleaner serve [-addr host:port]
//
// Defaults come from the environment (see internal/config); a .env file in
// the working directory is loaded first.
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
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/JonMunkholm/OrderClean/internal/config"
	"github.com/JonMunkholm/OrderClean/internal/core"
	"github.com/JonMunkholm/OrderClean/internal/logging"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, os.Args[1:], os.Stdout)
	stop()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("command failed", "error", err)
		if core.IsUserFacing(err) {
			fmt.Fprintln(os.Stderr, core.FormatUserError(err))
		}
		os.Exit(1)
	}
}

// run dispatches to a subcommand. Without one it cleans.
func run(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	cmd := "clean"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "clean":
		return runClean(ctx, cfg, args, stdout)
	case "generate":
		return runGenerate(cfg, args, stdout)
	case "serve":
		return runServe(ctx, cfg, args)
	case "help":
		usage(stdout)
		return nil
	default:
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, `Usage: ordercleaner <command> [flags]

Commands:
  clean     clean a messy CSV and write the cleaned file and reports (default)
  generate  write a synthetic messy dataset
  serve     run the HTTP API

Run "ordercleaner <command> -h" for command flags.`)
}

// newService builds the run service from configuration.
// runStore may be nil when persistence is disabled.
func newService(cfg *config.Config, runStore core.RunStore) *core.Service {
	core.RunTimeout = cfg.Runs.Timeout
	return core.NewService(core.Options{
		MaxConcurrent: cfg.Runs.MaxConcurrent,
		MaxWait:       cfg.Runs.MaxWait,
		MaxRetained:   cfg.Runs.MaxRetained,
		Store:         runStore,
	})
}
