package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

// Admin identifies the authenticated admin of a request.
type Admin struct {
	SessionID uuid.UUID
	AdminID   uuid.UUID
	Username  string
}

// WithAdmin stores the authenticated admin in the context.
func WithAdmin(ctx context.Context, a Admin) context.Context {
	return context.WithValue(ctx, adminKey, a)
}

// AdminFromCtx extracts the authenticated admin from the context.
// Returns false if the value is missing or carries a nil admin ID.
func AdminFromCtx(ctx context.Context) (Admin, bool) {
	a, ok := ctx.Value(adminKey).(Admin)
	if !ok || a.AdminID == uuid.Nil {
		return Admin{}, false
	}
	return a, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP stores the resolved client address in the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx extracts the client address from the context.
// Returns an empty string if absent.
func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
