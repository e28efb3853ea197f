package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
	"github.com/heartmarshall/gossip-murmur/internal/service/gallery"
	"github.com/heartmarshall/gossip-murmur/internal/service/moderation"
)

type moderationService interface {
	EditEntryText(ctx context.Context, input moderation.EditEntryInput) (*domain.Entry, error)
	DeleteGroup(ctx context.Context, groupID uuid.UUID) error
	RecentActions(ctx context.Context, limit int) ([]domain.ModerationRecord, error)
	EntityHistory(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.ModerationRecord, error)
}

// AdminHandler serves the moderation endpoints. Routes are expected to be
// wrapped by middleware.RequireAdmin.
type AdminHandler struct {
	gallery    galleryService
	moderation moderationService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(gallery galleryService, moderation moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		gallery:    gallery,
		moderation: moderation,
		log:        logger.With("handler", "admin"),
	}
}

type editEntryRequest struct {
	TextContent string `json:"textContent"`
}

type moderationRecordResponse struct {
	ID        string         `json:"id"`
	AdminID   *string        `json:"admin_id"`
	Action    string         `json:"action"`
	EntityID  string         `json:"entity_id"`
	Changes   map[string]any `json:"changes"`
	CreatedAt time.Time      `json:"created_at"`
}

type moderationLogResponse struct {
	envelope
	Records []moderationRecordResponse `json:"records"`
}

// Groups handles GET /admin/groups?page&limit.
func (h *AdminHandler) Groups(w http.ResponseWriter, r *http.Request) {
	page, err := h.gallery.ListAdmin(r.Context(), gallery.ListInput{
		Page:  queryInt(r, "page"),
		Limit: queryInt(r, "limit"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toGroupListResponse(page, toAdminEntryResponse))
}

// EditEntry handles PUT /admin/entry/{id}.
func (h *AdminHandler) EditEntry(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, domain.ErrEntryNotFound)
		return
	}

	var req editEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if _, err := h.moderation.EditEntryText(r.Context(), moderation.EditEntryInput{
		EntryID:     id,
		TextContent: req.TextContent,
	}); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeOK(w, "Entry updated successfully")
}

// DeleteGroup handles DELETE /admin/group/{id}.
func (h *AdminHandler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, domain.ErrGroupNotFound)
		return
	}

	if err := h.moderation.DeleteGroup(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeOK(w, "Group deleted successfully")
}

// ModerationLog handles GET /admin/moderation-log?limit&entity_id.
// With entity_id only the records of that entry or group are returned.
func (h *AdminHandler) ModerationLog(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")

	var (
		records []domain.ModerationRecord
		err     error
	)
	if raw := r.URL.Query().Get("entity_id"); raw != "" {
		entityID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			handleError(w, r, h.log, domain.NewValidationError("entity_id", "Invalid entity id"))
			return
		}
		records, err = h.moderation.EntityHistory(r.Context(), entityID, limit)
	} else {
		records, err = h.moderation.RecentActions(r.Context(), limit)
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := moderationLogResponse{
		envelope: envelope{Success: true},
		Records:  make([]moderationRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		item := moderationRecordResponse{
			ID:        rec.ID.String(),
			Action:    string(rec.Action),
			EntityID:  rec.EntityID.String(),
			Changes:   rec.Changes,
			CreatedAt: rec.CreatedAt,
		}
		if rec.AdminID != nil {
			id := rec.AdminID.String()
			item.AdminID = &id
		}
		resp.Records = append(resp.Records, item)
	}

	writeJSON(w, http.StatusOK, resp)
}
