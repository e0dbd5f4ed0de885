// Command lfbench measures the lfkit primitives under contention.
//
// Usage:
//
//	lfbench                                  # defaults: GOMAXPROCS workers, jittered back-off
//	lfbench -config=bench.yaml               # load settings from YAML
//	lfbench -backoff=none -storage=static    # flags override the file
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/momentics/lfkit/control"
	"github.com/momentics/lfkit/internal/bench"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "lfbench: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("lfbench", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to YAML config file")
	workers := fs.Int("workers", 0, "number of worker goroutines")
	iterations := fs.Int("iterations", 0, "increments per worker")
	backoffMode := fs.String("backoff", "", "back-off mode: none, exp, jitter")
	storage := fs.String("storage", "", "thread-local storage: dynamic, static")
	capacity := fs.Int("capacity", 0, "static registry capacity")
	pin := fs.Bool("pin", false, "pin workers to CPUs")
	logLevel := fs.String("log-level", "", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := control.Default()
	if *configPath != "" {
		loaded, err := control.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workers
		case "iterations":
			cfg.Iterations = *iterations
		case "backoff":
			cfg.Backoff = *backoffMode
		case "storage":
			cfg.Storage = *storage
		case "capacity":
			cfg.Capacity = *capacity
		case "pin":
			cfg.PinThreads = *pin
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if cfg.Storage == control.StorageStatic && cfg.Capacity == 0 {
		cfg.Capacity = cfg.Workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	logger, err := control.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		zap.Int("workers", cfg.Workers),
		zap.Int("iterations", cfg.Iterations),
		zap.String("backoff", cfg.Backoff),
		zap.String("storage", cfg.Storage),
		zap.Bool("pin", cfg.PinThreads))

	metrics := control.NewMetricsRegistry()
	runner, err := bench.NewRunner(cfg, logger, metrics)
	if err != nil {
		return err
	}
	if err := runner.Run(ctx); err != nil {
		return err
	}
	for name, state := range metrics.DumpProbes() {
		logger.Debug("probe", zap.String("name", name), zap.Any("state", state))
	}
	return nil
}
