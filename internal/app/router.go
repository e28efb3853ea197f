package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gossip-murmur/internal/config"
	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"github.com/heartmarshall/gossip-murmur/internal/transport/middleware"
	"github.com/heartmarshall/gossip-murmur/internal/transport/rest"
)

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.AdminSession, error)
}

type routerDeps struct {
	cfg      *config.Config
	log      *slog.Logger
	sessions sessionAuthenticator
	limiter  *middleware.RateLimiter

	game   *rest.GameHandler
	admin  *rest.AdminHandler
	auth   *rest.AuthHandler
	health *rest.HealthHandler
}

func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()

	submitLimit := d.limiter.Limit("submit", d.cfg.RateLimit.SubmitPerMinute)
	loginLimit := d.limiter.Limit("login", d.cfg.RateLimit.LoginPerMinute)
	admin := middleware.Middleware(middleware.RequireAdmin)

	mux.HandleFunc("GET /live", d.health.Live)
	mux.HandleFunc("GET /ready", d.health.Ready)
	mux.HandleFunc("GET /health", d.health.Health)

	mux.HandleFunc("GET /api/current-group", d.game.CurrentGroup)
	mux.Handle("POST /api/submit-entry", middleware.Handler(d.game.SubmitEntry, submitLimit))
	mux.HandleFunc("GET /api/completed-groups", d.game.CompletedGroups)

	mux.Handle("POST /admin/login", middleware.Handler(d.auth.Login, loginLimit))
	mux.HandleFunc("GET /admin/check-auth", d.auth.CheckAuth)
	mux.Handle("POST /admin/logout", middleware.Handler(d.auth.Logout, admin))
	mux.Handle("POST /admin/change-password", middleware.Handler(d.auth.ChangePassword, admin))
	mux.Handle("GET /admin/groups", middleware.Handler(d.admin.Groups, admin))
	mux.Handle("PUT /admin/entry/{id}", middleware.Handler(d.admin.EditEntry, admin))
	mux.Handle("DELETE /admin/group/{id}", middleware.Handler(d.admin.DeleteGroup, admin))
	mux.Handle("GET /admin/moderation-log", middleware.Handler(d.admin.ModerationLog, admin))

	if d.cfg.Server.StaticDir != "" {
		mux.Handle("GET /", rest.StaticHandler(d.cfg.Server.StaticDir))
	}

	var cors middleware.Middleware
	if d.cfg.CORS.AllowedOrigins != "" {
		cors = middleware.CORS(d.cfg.CORS)
	}

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP,
		middleware.Recovery(d.log),
		middleware.Session(d.sessions, d.cfg.Session.CookieName, d.log),
		middleware.Logger(d.log),
		cors,
		middleware.BodyLimit(d.cfg.Server.MaxBodyBytes),
	)
	return chain(mux)
}
