// Package cache provides short-TTL memoization of ranked result lists.
//
// The cache is a burst absorber, not durable storage: underlying rating and
// popularity signals drift over time, so entries expire within minutes and
// nothing survives a process restart. A failing backend degrades to
// "always miss" and never blocks ranking.
package cache

import (
	"context"
	"strconv"
	"strings"

	"github.com/okian/ludex/internal/domain/model"
)

// Cache memoizes (query, options) -> ranked result list.
type Cache interface {
	// Get returns the cached results for key, reporting whether a live
	// entry was found. Backend failures report a miss.
	Get(ctx context.Context, key string) ([]model.ScoredRecord, bool)

	// Put stores results under key for the cache's TTL. Failures are
	// silently dropped; the next identical query recomputes.
	Put(ctx context.Context, key string, results []model.ScoredRecord)

	// Len returns the current number of live entries, where the backend
	// can tell.
	Len(ctx context.Context) int
}

// Key derives the cache key from the normalized query plus the serialized
// option set: truncation limit and the identity of the active scoring
// configuration.
func Key(query string, limit int, cfgName string, cfgVersion int) string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(query)),
		strconv.Itoa(limit),
		cfgName,
		strconv.Itoa(cfgVersion),
	}, "|")
}
