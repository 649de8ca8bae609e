// Package dedupe collapses candidate records arriving from multiple
// sources into a unique-by-identity set.
package dedupe

import (
	"github.com/okian/ludex/internal/domain/model"
)

// Merger deduplicates catalog records by stable identity.
type Merger interface {
	// Dedupe returns records unique by identity key. When two records share
	// a key, the one with more populated optional fields wins; ties keep
	// the first-seen record. Records without any identity pass through
	// untouched (the ranking pipeline drops and counts them). Output order
	// is unspecified; callers re-sort. Idempotent.
	Dedupe(records []model.Record) []model.Record
}

// ByIdentity is the in-memory Merger implementation.
type ByIdentity struct{}

// NewByIdentity creates a Merger keyed on Record.Identity.
func NewByIdentity() *ByIdentity {
	return &ByIdentity{}
}

// Dedupe implements Merger.
func (m *ByIdentity) Dedupe(records []model.Record) []model.Record {
	if len(records) <= 1 {
		return records
	}

	// index of the kept record per identity, in first-seen order.
	kept := make([]model.Record, 0, len(records))
	byKey := make(map[string]int, len(records))

	for _, rec := range records {
		key := rec.Identity()
		if key == "" {
			kept = append(kept, rec)
			continue
		}
		at, seen := byKey[key]
		if !seen {
			byKey[key] = len(kept)
			kept = append(kept, rec)
			continue
		}
		// Higher-fidelity record wins; ties keep the first-seen.
		if rec.Completeness() > kept[at].Completeness() {
			kept[at] = rec
		}
	}
	return kept
}
