package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/gossip-murmur/internal/domain"
)

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type entryResponse struct {
	ID              string    `json:"id"`
	TextContent     string    `json:"text_content"`
	AddedText       string    `json:"added_text"`
	Solfege         string    `json:"solfege"`
	PositionInGroup int       `json:"position_in_group"`
	CreatedAt       time.Time `json:"created_at"`
}

// adminEntryResponse adds the write-once provenance fields.
type adminEntryResponse struct {
	entryResponse
	UserIdentifier string `json:"user_identifier"`
	IPAddress      string `json:"ip_address"`
	UserAgent      string `json:"user_agent"`
}

type groupResponse[E any] struct {
	ID          string    `json:"id"`
	GroupNumber int       `json:"group_number"`
	IsCompleted bool      `json:"is_completed"`
	EntryCount  int       `json:"entry_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Entries     []E       `json:"entries"`
}

type paginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type groupListResponse[E any] struct {
	envelope
	Groups     []groupResponse[E] `json:"groups"`
	Pagination paginationResponse `json:"pagination"`
}

func toEntryResponse(e domain.Entry) entryResponse {
	return entryResponse{
		ID:              e.ID.String(),
		TextContent:     e.TextContent,
		AddedText:       e.AddedText,
		Solfege:         e.Solfege,
		PositionInGroup: e.Position,
		CreatedAt:       e.CreatedAt,
	}
}

func toAdminEntryResponse(e domain.Entry) adminEntryResponse {
	return adminEntryResponse{
		entryResponse:  toEntryResponse(e),
		UserIdentifier: e.UserIdentifier,
		IPAddress:      e.IPAddress,
		UserAgent:      e.UserAgent,
	}
}

func toGroupResponse[E any](g domain.Group, conv func(domain.Entry) E) groupResponse[E] {
	entries := make([]E, 0, len(g.Entries))
	for _, e := range g.Entries {
		entries = append(entries, conv(e))
	}
	return groupResponse[E]{
		ID:          g.ID.String(),
		GroupNumber: g.GroupNumber,
		IsCompleted: g.IsCompleted,
		EntryCount:  len(g.Entries),
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
		Entries:     entries,
	}
}

func toGroupListResponse[E any](page *domain.GroupPage, conv func(domain.Entry) E) groupListResponse[E] {
	groups := make([]groupResponse[E], 0, len(page.Groups))
	for _, g := range page.Groups {
		groups = append(groups, toGroupResponse(g, conv))
	}
	return groupListResponse[E]{
		envelope: envelope{Success: true},
		Groups:   groups,
		Pagination: paginationResponse{
			Page:       page.Pagination.Page,
			Limit:      page.Pagination.Limit,
			Total:      page.Pagination.Total,
			TotalPages: page.Pagination.TotalPages,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeOK(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{Success: false, Message: message})
}

// decodeJSON reads the request body into v, writing a 4xx response on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// handleError maps a service error to a client response. Unknown errors are
// logged and hidden behind a generic message.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.FirstMessage())
		return
	}

	var rule *domain.RuleError
	if errors.As(err, &rule) {
		writeError(w, statusForKind(rule.Kind), rule.Message)
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, "Invalid request")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, domain.ErrSessionNotFound.Message)
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

func statusForKind(kind error) int {
	switch {
	case errors.Is(kind, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(kind, domain.ErrValidation), errors.Is(kind, domain.ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// queryInt returns the integer query parameter, or 0 when absent or malformed.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}
