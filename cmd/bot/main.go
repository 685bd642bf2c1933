package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tradex-bot/core/config"
	"tradex-bot/core/logger"
	"tradex-bot/core/telegram"
	"tradex-bot/internal/engine"
	"tradex-bot/internal/i18n"
	"tradex-bot/internal/profile"
	"tradex-bot/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config %s: %v", cfgPath, err)
	}
	logger.Init(cfg)

	resolver := i18n.NewResolver()
	if err := resolver.Validate(i18n.RequiredKeys()); err != nil {
		logger.Error(logger.Background(), "app", "i18n.invalid",
			slog.String("err", err.Error()),
		)
		os.Exit(1)
	}

	client := profile.NewClient(
		cfg.ProfileAPI.BaseURL,
		time.Duration(cfg.ProfileAPI.TimeoutSeconds)*time.Second,
	)
	queue := profile.NewQueue(client, profile.QueueOptions{
		QueueSize: cfg.ProfileAPI.QueueSize,
		Workers:   cfg.ProfileAPI.Workers,
		Timeout:   time.Duration(cfg.ProfileAPI.TimeoutSeconds) * time.Second,
	})
	defer queue.Close()

	eng := engine.New(session.NewStore(), resolver, queue)
	handler := telegram.NewHandler(eng, telegram.NewRenderer(cfg.MiniApp.BaseURL))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	startedAt := time.Now()
	logger.Info(ctx, "app", "ready",
		slog.Duration("startup_duration", logger.RoundMS(time.Since(startedAt))),
	)

	err = telegram.Run(ctx, telegram.Options{
		Config:      cfg,
		Middlewares: telegram.DefaultMiddlewares(cfg),
		Routes:      handler.Routes(),
	})
	if err != nil {
		logger.Error(logger.Background(), "app", "run.fail",
			slog.String("err", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info(logger.Background(), "app", "shutdown",
		slog.Uint64("sync_errors", queue.ErrorCount()),
		slog.Uint64("sync_dropped", queue.DroppedCount()),
	)
}
