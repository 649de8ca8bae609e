// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strconv"

	service "github.com/okian/ludex/internal/app"
	"github.com/okian/ludex/internal/domain/model"
)

// SearchHandler handles ranked search requests.
type SearchHandler struct {
	deps Dependencies
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps Dependencies) *SearchHandler {
	return &SearchHandler{deps: deps}
}

// searchResponse mirrors the wire shape of GET /search.
type searchResponse struct {
	Query   string               `json:"query"`
	Results []model.ScoredRecord `json:"results"`
	Stats   service.SearchStats  `json:"stats"`
}

// HandleSearch handles GET /search?q=...&limit=... requests.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	query := r.URL.Query().Get("q")
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrInvalidLimit)
			return
		}
		limit = parsed
	}

	results, stats, err := h.deps.Search(r.Context(), query, limit)
	if err != nil {
		if errors.Is(err, service.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if results == nil {
		results = []model.ScoredRecord{}
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Query:   query,
		Results: results,
		Stats:   stats,
	})
}
