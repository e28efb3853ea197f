package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/gossip-murmur/internal/adapter/postgres"
	adminrepo "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres/admin"
	"github.com/heartmarshall/gossip-murmur/internal/adapter/postgres/audit"
	entryrepo "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres/entry"
	grouprepo "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres/group"
	sessionrepo "github.com/heartmarshall/gossip-murmur/internal/adapter/postgres/session"
	"github.com/heartmarshall/gossip-murmur/internal/auth"
	"github.com/heartmarshall/gossip-murmur/internal/config"
	authsvc "github.com/heartmarshall/gossip-murmur/internal/service/auth"
	"github.com/heartmarshall/gossip-murmur/internal/service/gallery"
	"github.com/heartmarshall/gossip-murmur/internal/service/game"
	"github.com/heartmarshall/gossip-murmur/internal/service/moderation"
	"github.com/heartmarshall/gossip-murmur/internal/transport/middleware"
	"github.com/heartmarshall/gossip-murmur/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations, wires services and serves HTTP until ctx
// is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, os.Stderr)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	handler, cleanup, err := build(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	lis, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, lis, logger, cfg.Server.ShutdownTimeout)
}

// build wires repositories, services and handlers into the HTTP handler.
// The returned cleanup stops background workers.
func build(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (http.Handler, func(), error) {
	authService, err := NewAuthService(cfg, pool, logger)
	if err != nil {
		return nil, nil, err
	}

	txm := postgres.NewTxManager(pool)
	groups := grouprepo.New(pool)
	entries := entryrepo.New(pool)

	gameSvc := game.NewService(logger, groups, entries, txm, cfg.Game)
	gallerySvc := gallery.NewService(logger, groups, entries, cfg.Game)
	moderationSvc := moderation.NewService(logger, groups, entries, audit.New(pool), txm)
	if err := bootstrapAdmin(ctx, authService, cfg.Admin, logger); err != nil {
		return nil, nil, err
	}

	trusted, err := cfg.RateLimit.TrustedProxyPrefixes()
	if err != nil {
		return nil, nil, fmt.Errorf("rate limit: %w", err)
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, trusted)

	handler := newRouter(routerDeps{
		cfg:      cfg,
		log:      logger,
		sessions: authService,
		limiter:  limiter,
		game:     rest.NewGameHandler(gameSvc, gallerySvc, logger),
		admin:    rest.NewAdminHandler(gallerySvc, moderationSvc, logger),
		auth:     rest.NewAuthHandler(authService, cfg.Session, logger),
		health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	return handler, limiter.Stop, nil
}

// NewAuthService wires the admin session service. Command-line tools share it
// with the HTTP server so both hash and verify passwords the same way.
func NewAuthService(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*authsvc.Service, error) {
	credentials, err := auth.NewCredentials(cfg.Admin.PasswordScheme)
	if err != nil {
		return nil, err
	}

	return authsvc.NewService(
		logger,
		adminrepo.New(pool),
		sessionrepo.New(pool),
		auth.NewSessionSigner(cfg.Session.Secret, cfg.Session.Issuer),
		postgres.NewTxManager(pool),
		credentials,
		cfg.Session,
		cfg.Admin,
	), nil
}

type adminEnsurer interface {
	EnsureAdmin(ctx context.Context, username, password string) (bool, error)
}

func bootstrapAdmin(ctx context.Context, svc adminEnsurer, cfg config.AdminConfig, logger *slog.Logger) error {
	if cfg.BootstrapUsername == "" || cfg.BootstrapPassword == "" {
		return nil
	}

	created, err := svc.EnsureAdmin(ctx, cfg.BootstrapUsername, cfg.BootstrapPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		logger.Info("bootstrap admin created", slog.String("username", cfg.BootstrapUsername))
	}
	return nil
}
