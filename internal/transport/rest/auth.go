package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/gossip-murmur/internal/config"
	"github.com/heartmarshall/gossip-murmur/internal/service/auth"
	"github.com/heartmarshall/gossip-murmur/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, input auth.ChangePasswordInput) error
}

// AuthHandler serves admin session endpoints.
type AuthHandler struct {
	svc    authService
	cookie config.SessionConfig
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cookie config.SessionConfig, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	envelope
	Username string `json:"username"`
}

type checkAuthResponse struct {
	envelope
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Login handles POST /admin/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	h.setCookie(w, result.Token, result.ExpiresAt)
	writeJSON(w, http.StatusOK, loginResponse{
		envelope: envelope{Success: true, Message: "Login successful"},
		Username: result.Username,
	})
}

// Logout handles POST /admin/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.cookie.CookieName); err == nil {
		if err := h.svc.Logout(r.Context(), c.Value); err != nil {
			h.log.ErrorContext(r.Context(), "logout failed", slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "Logout failed")
			return
		}
	}

	h.setCookie(w, "", time.Unix(0, 0))
	writeOK(w, "Logout successful")
}

// CheckAuth handles GET /admin/check-auth.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	resp := checkAuthResponse{envelope: envelope{Success: true}}
	if admin, ok := ctxutil.AdminFromCtx(r.Context()); ok {
		resp.Authenticated = true
		resp.Username = admin.Username
	}
	writeJSON(w, http.StatusOK, resp)
}

// ChangePassword handles POST /admin/change-password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.ChangePassword(r.Context(), auth.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeOK(w, "Password changed successfully")
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, value string, expires time.Time) {
	c := &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		c.MaxAge = -1
	}
	http.SetCookie(w, c)
}
