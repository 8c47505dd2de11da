package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/hkdtax/hkdtax/internal/app"
	"github.com/hkdtax/hkdtax/internal/declaration"
	"github.com/hkdtax/hkdtax/internal/ledger"
	"github.com/hkdtax/hkdtax/internal/platform/cache"
	"github.com/hkdtax/hkdtax/internal/platform/events"
	"github.com/hkdtax/hkdtax/internal/tax"
	"github.com/hkdtax/hkdtax/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	// Redis carries mutation events and the job queue. The engine works
	// without it; integrations and change notifications degrade to off.
	var publisher events.Publisher = events.Noop{}
	var worker *jobs.Worker
	var jobsHandler *jobs.Handler

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, events and integrations disabled", slog.Any("error", err))
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		publisher = events.NewRedisPublisher(redisClient, events.DefaultChannel)
	}

	store := ledger.NewStore(publisher)
	registry := declaration.NewRegistry(publisher)

	if cfg.SeedDemoData {
		if err := store.Seed(ctx); err != nil {
			logger.Error("seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
		if _, err := registry.Submit(ctx, "2026-Q1", 2_150_000); err != nil {
			logger.Error("seed declaration records", slog.Any("error", err))
			os.Exit(1)
		}
		if _, err := registry.Start(ctx, "2026-Q2"); err != nil {
			logger.Error("seed declaration records", slog.Any("error", err))
			os.Exit(1)
		}
	}

	if redisClient != nil {
		redisOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
		worker = jobs.NewWorker(jobs.WorkerConfig{
			RedisOpts: redisOpts,
			Logger:    logger,
			Store:     store,
		})
		asynqClient := asynq.NewClient(redisOpts)
		defer func() {
			if err := asynqClient.Close(); err != nil {
				logger.Warn("asynq close", slog.Any("error", err))
			}
		}()
		jobsHandler = jobs.NewHandler(logger, asynqClient)
	}

	router := app.NewRouter(app.RouterParams{
		Logger:             logger,
		Config:             cfg,
		LedgerHandler:      ledger.NewHandler(logger, store),
		DeclarationHandler: declaration.NewHandler(logger, store, registry),
		TaxHandler:         tax.NewHandler(logger),
		JobsHandler:        jobsHandler,
	})

	if err := app.Run(ctx, logger, cfg, router, worker); err != nil && ctx.Err() == nil {
		logger.Error("runtime", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
