// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// VisibilityHandler answers fan-content visibility queries for UI
// surfaces rendering fan-authored material.
type VisibilityHandler struct {
	deps Dependencies
}

// NewVisibilityHandler creates a new visibility handler.
func NewVisibilityHandler(deps Dependencies) *VisibilityHandler {
	return &VisibilityHandler{deps: deps}
}

type visibilityResponse struct {
	Developer string `json:"developer"`
	Publisher string `json:"publisher"`
	Hidden    bool   `json:"hidden"`
}

// HandleVisibility handles GET /visibility?developer=...&publisher=...
// requests. At least one of the two parameters must be present.
func (h *VisibilityHandler) HandleVisibility(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	developer := r.URL.Query().Get("developer")
	publisher := r.URL.Query().Get("publisher")
	if developer == "" && publisher == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingCompany)
		return
	}

	hidden := h.deps.ShouldHideFanContent(r.Context(), developer, publisher)
	writeJSON(w, http.StatusOK, visibilityResponse{
		Developer: developer,
		Publisher: publisher,
		Hidden:    hidden,
	})
}
