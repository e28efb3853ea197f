package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"github.com/heartmarshall/gossip-murmur/pkg/ctxutil"
)

type sessionAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.AdminSession, error)
}

// Session resolves the admin session cookie and stores the admin in the
// request context. Requests without a valid session pass through anonymously.
func Session(auth sessionAuthenticator, cookieName string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			session, err := auth.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.ErrorContext(r.Context(), "session lookup failed", slog.String("error", err.Error()))
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithAdmin(r.Context(), ctxutil.Admin{
				SessionID: session.ID,
				AdminID:   session.AdminID,
				Username:  session.Username,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests that carry no authenticated admin.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.AdminFromCtx(r.Context()); !ok {
			writeEnvelope(w, http.StatusUnauthorized, domain.ErrSessionNotFound.Message)
			return
		}
		next.ServeHTTP(w, r)
	})
}
