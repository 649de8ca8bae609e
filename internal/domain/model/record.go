// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// Category classifies a catalog record by its relationship to a main release.
// Values mirror the external provider's category codes.
type Category string

// Known category codes.
const (
	CategoryUnknown             Category = ""
	CategoryMainGame            Category = "main_game"
	CategoryDLC                 Category = "dlc"
	CategoryExpansion           Category = "expansion"
	CategoryStandaloneExpansion Category = "standalone_expansion"
	CategoryBundle              Category = "bundle"
	CategoryMod                 Category = "mod"
	CategoryFork                Category = "fork"
	CategoryRemaster            Category = "remaster"
	CategoryRemake              Category = "remake"
	CategoryPort                Category = "port"
)

// Record represents one candidate game under consideration for ranking.
// At least one of LocalID/ProviderID must be set; Name must be non-empty.
// Identity is stable across repeated fetches of the same title so that
// deduplication and caching line up.
type Record struct {
	LocalID     string    `json:"local_id,omitempty"`     // catalog store id
	ProviderID  string    `json:"provider_id,omitempty"`  // external metadata provider id
	Name        string    `json:"name"`                   // immutable for the lifetime of one ranking operation
	Summary     string    `json:"summary,omitempty"`      // optional description text
	ReleaseAt   time.Time `json:"release_at,omitempty"`   // optional release date (zero = unknown)
	Genres      []string  `json:"genres,omitempty"`       // optional genre labels
	Platforms   []string  `json:"platforms,omitempty"`    // optional platform labels
	Developer   string    `json:"developer,omitempty"`    // optional developer name
	Publisher   string    `json:"publisher,omitempty"`    // optional publisher name
	Category    Category  `json:"category,omitempty"`     // optional category code
	Rating      float64   `json:"rating,omitempty"`       // optional aggregate rating on a 0-100 scale (0 = unrated)
	RatingCount int       `json:"rating_count,omitempty"` // optional number of ratings behind Rating
	Follows     int       `json:"follows,omitempty"`      // optional follow count
	Hype        int       `json:"hype,omitempty"`         // optional hype count
}

// Identity returns the stable deduplication key for the record: the external
// provider id when present, else the local id. Empty means the record is
// malformed and cannot be ranked.
func (r Record) Identity() string {
	if r.ProviderID != "" {
		return "provider:" + r.ProviderID
	}
	if r.LocalID != "" {
		return "local:" + r.LocalID
	}
	return ""
}

// Valid reports whether the record carries enough data to be ranked.
func (r Record) Valid() bool {
	return r.Identity() != "" && strings.TrimSpace(r.Name) != ""
}

// Completeness counts populated optional fields. Deduplication keeps the
// record with the higher count when two records share an identity.
func (r Record) Completeness() int {
	n := 0
	if r.Summary != "" {
		n++
	}
	if !r.ReleaseAt.IsZero() {
		n++
	}
	if len(r.Genres) > 0 {
		n++
	}
	if len(r.Platforms) > 0 {
		n++
	}
	if r.Developer != "" {
		n++
	}
	if r.Publisher != "" {
		n++
	}
	if r.Category != CategoryUnknown {
		n++
	}
	if r.Rating > 0 {
		n++
	}
	if r.RatingCount > 0 {
		n++
	}
	if r.Follows > 0 {
		n++
	}
	if r.Hype > 0 {
		n++
	}
	return n
}

// IsDerivative reports whether the category marks the record as a mod or fork.
func (c Category) IsDerivative() bool {
	return c == CategoryMod || c == CategoryFork
}

// IsAddon reports whether the category marks the record as DLC or an expansion.
func (c Category) IsAddon() bool {
	return c == CategoryDLC || c == CategoryExpansion || c == CategoryStandaloneExpansion
}
