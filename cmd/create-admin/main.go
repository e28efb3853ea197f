// Command create-admin creates an admin account, or resets the password of
// an existing one with --reset. Passwords are stored using the configured
// admin.password_scheme.
//
// Usage:
//
//	create-admin --username=admin --password=secret [--reset]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/gossip-murmur/internal/adapter/postgres"
	"github.com/heartmarshall/gossip-murmur/internal/app"
	"github.com/heartmarshall/gossip-murmur/internal/config"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "admin password")
	reset := flag.Bool("reset", false, "reset the password of an existing admin")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: create-admin --username=admin --password=secret [--reset]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	if *reset {
		if err := svc.ResetPassword(ctx, *username, *password); err != nil {
			logger.Error("reset password failed", slog.String("username", *username), slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Password for %q reset.\n", *username)
		return
	}

	created, err := svc.EnsureAdmin(ctx, *username, *password)
	if err != nil {
		logger.Error("create admin failed", slog.String("username", *username), slog.String("error", err.Error()))
		os.Exit(1)
	}
	if !created {
		fmt.Printf("Admin %q already exists; use --reset to change the password.\n", *username)
		os.Exit(1)
	}

	fmt.Printf("Admin %q created.\n", *username)
}
