package domain

import (
	"time"

	"github.com/google/uuid"
)

// Admin is a moderator account. Password holds whatever the configured
// credential scheme stores (plaintext or a bcrypt hash).
type Admin struct {
	ID        uuid.UUID
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminSession is a server-side login session.
type AdminSession struct {
	ID        uuid.UUID
	AdminID   uuid.UUID
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has expired at the given time.
func (s *AdminSession) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
