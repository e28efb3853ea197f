package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"github.com/heartmarshall/gossip-murmur/internal/service/gallery"
	"github.com/heartmarshall/gossip-murmur/internal/service/game"
	"github.com/heartmarshall/gossip-murmur/pkg/ctxutil"
)

type gameService interface {
	CurrentGroup(ctx context.Context) (*domain.Group, error)
	SubmitEntry(ctx context.Context, input game.SubmitEntryInput) (*game.SubmitEntryResult, error)
}

type galleryService interface {
	ListPublic(ctx context.Context, input gallery.ListInput) (*domain.GroupPage, error)
	ListAdmin(ctx context.Context, input gallery.ListInput) (*domain.GroupPage, error)
}

// GameHandler serves the public participant endpoints.
type GameHandler struct {
	game    gameService
	gallery galleryService
	log     *slog.Logger
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(game gameService, gallery galleryService, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		game:    game,
		gallery: gallery,
		log:     logger.With("handler", "game"),
	}
}

type currentGroupResponse struct {
	envelope
	Group groupResponse[entryResponse] `json:"group"`
}

type submitEntryRequest struct {
	GroupID        string `json:"groupId"`
	TextContent    string `json:"textContent"`
	AddedText      string `json:"addedText"`
	Solfege        string `json:"solfege"`
	UserIdentifier string `json:"userIdentifier"`
}

type submitEntryResponse struct {
	envelope
	Position  int  `json:"position"`
	Completed bool `json:"completed"`
}

// CurrentGroup handles GET /api/current-group.
func (h *GameHandler) CurrentGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.game.CurrentGroup(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, currentGroupResponse{
		envelope: envelope{Success: true},
		Group:    toGroupResponse(*group, toEntryResponse),
	})
}

// SubmitEntry handles POST /api/submit-entry.
func (h *GameHandler) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	var req submitEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.game.SubmitEntry(r.Context(), game.SubmitEntryInput{
		GroupID:        req.GroupID,
		TextContent:    req.TextContent,
		AddedText:      req.AddedText,
		Solfege:        req.Solfege,
		UserIdentifier: req.UserIdentifier,
		IPAddress:      ctxutil.ClientIPFromCtx(r.Context()),
		UserAgent:      r.UserAgent(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, submitEntryResponse{
		envelope:  envelope{Success: true, Message: "Entry submitted successfully"},
		Position:  result.Entry.Position,
		Completed: result.Completed,
	})
}

// CompletedGroups handles GET /api/completed-groups?page&limit&completed.
// All groups are listed unless completed=true.
func (h *GameHandler) CompletedGroups(w http.ResponseWriter, r *http.Request) {
	completed := r.URL.Query().Get("completed")

	page, err := h.gallery.ListPublic(r.Context(), gallery.ListInput{
		Page:          queryInt(r, "page"),
		Limit:         queryInt(r, "limit"),
		CompletedOnly: completed == "true" || completed == "1",
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupListResponse(page, toEntryResponse))
}
