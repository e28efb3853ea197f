package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// GroupSize is the number of entries that completes a group.
const GroupSize = 5

// Group is a batch of up to GroupSize ordered entries forming one collaborative text.
type Group struct {
	ID          uuid.UUID
	GroupNumber int
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Entries is ordered by Position ascending. It is only populated by
	// reads that load entries.
	Entries []Entry
}

// EntryCount returns the number of loaded entries.
func (g *Group) EntryCount() int {
	return len(g.Entries)
}

// IsOpen reports whether the group can still receive a submission.
func (g *Group) IsOpen(entryCount int) bool {
	return !g.IsCompleted && entryCount < GroupSize
}

// Entry is one participant's contribution. TextContent holds the whole
// accumulated text after this contribution, AddedText only the delta.
type Entry struct {
	ID             uuid.UUID
	GroupID        uuid.UUID
	Position       int
	TextContent    string
	AddedText      string
	Solfege        string
	UserIdentifier string
	IPAddress      string
	UserAgent      string
	CreatedAt      time.Time
}

// Extends reports whether text is a valid continuation of the entry's text.
// With strict set, the continuation must also be longer.
func (e *Entry) Extends(text string, strict bool) bool {
	if !strings.HasPrefix(text, e.TextContent) {
		return false
	}
	if strict && len(text) <= len(e.TextContent) {
		return false
	}
	return true
}
