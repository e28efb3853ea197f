package domain

import (
	"time"

	"github.com/google/uuid"
)

// ModerationAction names an admin mutation recorded in the moderation log.
type ModerationAction string

const (
	ActionEditEntry   ModerationAction = "edit_entry"
	ActionDeleteGroup ModerationAction = "delete_group"
)

// ModerationRecord is one entry of the append-only moderation log.
// AdminID is nil once the acting admin account has been removed.
type ModerationRecord struct {
	ID        uuid.UUID
	AdminID   *uuid.UUID
	Action    ModerationAction
	EntityID  uuid.UUID
	Changes   map[string]any
	CreatedAt time.Time
}
