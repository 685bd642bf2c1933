package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"tradex-bot/core/config"
	"tradex-bot/core/database"
	"tradex-bot/core/logger"
	"tradex-bot/internal/profiled"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		log.Fatalf("load config %s: %v", cfgPath, err)
	}
	logger.Init(cfg)

	if err := database.RunMigrations(cfg.Database); err != nil {
		logger.Error(logger.Background(), "app", "migrate.fail",
			slog.String("err", err.Error()),
		)
		os.Exit(1)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Error(logger.Background(), "app", "db.fail",
			slog.String("err", err.Error()),
		)
		os.Exit(1)
	}
	defer db.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           profiled.NewServer(profiled.NewPostgresStorage(db)).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "app", "listen",
			slog.String("addr", cfg.Server.Listen),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(logger.Background(), "app", "shutdown.fail",
				slog.String("err", err.Error()),
			)
		}
		<-errCh
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(logger.Background(), "app", "serve.fail",
				slog.String("err", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info(logger.Background(), "app", "shutdown")
}
