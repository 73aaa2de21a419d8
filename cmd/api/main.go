// Command api runs the interview portal HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/events"
	apphttp "github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/http"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/http/router"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/interviews"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/reassignment"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/scheduler"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/taxonomy"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/internal/users"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/config"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/db"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/logger"
	"github.com/raunakwork766-cloud/Rupiyamaker-crm-sub005/platform/validator"
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

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := db.RunMigrations(ctx, cfg, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	var cache *redis.Client
	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("parse redis url: %w", err)
		}
		cache = redis.NewClient(redisOpts)
		defer cache.Close()
	}

	bus := events.NewInMemoryBus(log)
	validate := validator.New()

	taxonomyModule := taxonomy.NewModule(pool, bus, log)
	interviewsModule, err := interviews.NewModule(pool, bus, log, taxonomyModule.Store(), cfg, validate)
	if err != nil {
		return fmt.Errorf("wire interviews module: %w", err)
	}
	usersModule := users.NewModule(pool, cache, cfg, log)
	reassignmentModule := reassignment.NewModule(
		pool,
		interviewsModule.Service(),
		interviewsModule.Collection(),
		usersModule.Directory(),
		bus, log, validate,
	)

	interviewsModule.RegisterHandlers(bus)

	// Initial loads: the taxonomy must be up before requests classify
	// anything; the working set may start empty and refresh in background.
	if err := taxonomyModule.Load(ctx); err != nil {
		log.DegradedPath("startup.taxonomy_load", "keyword classification only", err)
	}
	interviewsModule.Load(ctx)

	// The refresh queue is consumed here, not in a separate binary: the
	// snapshots being refreshed live in this process.
	var worker *scheduler.Worker
	if cfg.RedisURL != "" {
		worker, err = scheduler.NewWorker(cfg, taxonomyModule.Service(), interviewsModule.Collection(), log)
		if err != nil {
			return fmt.Errorf("build refresh worker: %w", err)
		}
	}

	engine := router.New(router.Options{
		Env:    cfg.Env,
		HTTP:   cfg,
		JWT:    cfg,
		Logger: log,
		Modules: []apphttp.Module{
			taxonomyModule,
			interviewsModule,
			usersModule,
			reassignmentModule,
		},
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("server started", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	if worker != nil {
		go func() {
			if err := worker.Run(); err != nil {
				errCh <- fmt.Errorf("refresh worker: %w", err)
			}
		}()
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if worker != nil {
		worker.Shutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
