// Command cleanup-sessions deletes expired admin sessions. It is intended to
// be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/gossip-murmur/internal/adapter/postgres"
	"github.com/heartmarshall/gossip-murmur/internal/app"
	"github.com/heartmarshall/gossip-murmur/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc, err := app.NewAuthService(cfg, pool, logger)
	if err != nil {
		logger.Error("init auth service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deleted, err := svc.CleanupExpiredSessions(ctx)
	if err != nil {
		os.Exit(1)
	}

	logger.Info("session cleanup completed", slog.Int64("deleted", deleted))
}
