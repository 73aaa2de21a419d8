// Command worker runs the periodic scheduler that enqueues the taxonomy and
// interview refresh tasks. The API process consumes them, since the snapshots
// those tasks refresh live in its memory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/scheduler"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/config"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required for the worker")
	}

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	periodic, err := scheduler.New(cfg, log)
	if err != nil {
		return fmt.Errorf("build scheduler: %w", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- periodic.Run() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	periodic.Shutdown()
	return nil
}
