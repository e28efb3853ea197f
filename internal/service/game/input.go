package game

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

// SubmitEntryInput is one participant's submission. GroupID is kept as the
// raw client value so that a missing field is reported before an unknown group.
type SubmitEntryInput struct {
	GroupID        string
	TextContent    string
	AddedText      string
	Solfege        string
	UserIdentifier string
	IPAddress      string
	UserAgent      string
}

// Validate checks required fields and returns the parsed group id.
func (i SubmitEntryInput) Validate() (uuid.UUID, error) {
	if i.GroupID == "" || i.TextContent == "" || i.AddedText == "" {
		return uuid.Nil, domain.ErrMissingFields
	}

	id, err := uuid.Parse(i.GroupID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, domain.ErrGroupNotFound
	}

	return id, nil
}

// SubmitEntryResult is the outcome of an accepted submission.
type SubmitEntryResult struct {
	Entry     *domain.Entry
	Completed bool
}
