// Package classify maps company names to copyright-enforcement levels.
//
// The table is statically curated and immutable once built. Reload swaps in
// a freshly constructed table atomically; nothing mutates in place.
package classify

import (
	"strings"
	"sync/atomic"
)

// Level is a rights-holder's posture toward fan-made derivative content.
type Level string

// Enforcement levels, most permissive first.
const (
	LevelPermissive  Level = "PERMISSIVE"
	LevelModFriendly Level = "MOD_FRIENDLY"
	LevelAggressive  Level = "AGGRESSIVE"
	LevelBlockAll    Level = "BLOCK_ALL"
)

// Restrictive reports whether fan content about the company's properties
// must be suppressed rather than merely demoted.
func (l Level) Restrictive() bool {
	return l == LevelAggressive || l == LevelBlockAll
}

// Classifier resolves company names to enforcement levels.
type Classifier interface {
	// Classify returns the enforcement level for a company name. Matching is
	// case-insensitive, whitespace-trimmed, and alias/substring tolerant.
	// Unknown or empty names resolve to LevelPermissive: absence of data is
	// a normal outcome, not a failure, and unknown companies are not
	// penalized as unauthorized.
	Classify(name string) Level

	// Known reports whether the name matches any table entry at all. The
	// scorer's fan-name heuristic treats the table as authoritative and
	// skips known companies.
	Known(name string) bool
}

// entry is one curated company with its known name variants. Every variant
// maps to the same level.
type entry struct {
	aliases []string // normalized
	level   Level
}

type table struct {
	entries []entry
}

// TableClassifier implements Classifier over an immutable alias table.
// Reload builds a new table and swaps the pointer; concurrent readers
// always see a complete table.
type TableClassifier struct {
	current atomic.Pointer[table]
}

// Option applies a configuration option to the TableClassifier.
type Option func(*builder)

type builder struct {
	companies map[string]Level
}

// WithCompanies merges extra company -> level pairs over the builtin table.
// Keys are normalized on load.
func WithCompanies(companies map[string]Level) Option {
	return func(b *builder) {
		for name, level := range companies {
			b.companies[name] = level
		}
	}
}

// NewTableClassifier builds a classifier from the builtin curated table plus
// any overrides supplied via options.
func NewTableClassifier(opts ...Option) *TableClassifier {
	c := &TableClassifier{}
	c.current.Store(buildTable(opts...))
	return c
}

// Reload constructs a new table from the builtin data plus overrides and
// atomically replaces the current one.
func (c *TableClassifier) Reload(opts ...Option) {
	c.current.Store(buildTable(opts...))
}

// Classify resolves a company name to its enforcement level.
func (c *TableClassifier) Classify(name string) Level {
	if e, ok := c.lookup(name); ok {
		return e.level
	}
	return LevelPermissive
}

// Known reports whether the name matches any curated entry.
func (c *TableClassifier) Known(name string) bool {
	_, ok := c.lookup(name)
	return ok
}

func (c *TableClassifier) lookup(name string) (entry, bool) {
	norm := Normalize(name)
	if norm == "" {
		return entry{}, false
	}
	t := c.current.Load()
	for _, e := range t.entries {
		for _, alias := range e.aliases {
			// "nintendo r&d4" matches the "nintendo" alias; a bare alias
			// query also matches longer curated variants.
			if strings.Contains(norm, alias) || strings.Contains(alias, norm) {
				return e, true
			}
		}
	}
	return entry{}, false
}

func buildTable(opts ...Option) *table {
	b := &builder{companies: make(map[string]Level)}
	for name, level := range builtinCompanies {
		b.companies[name] = level
	}
	for _, opt := range opts {
		opt(b)
	}

	// Group variants that share a level and a root alias into one entry.
	t := &table{entries: make([]entry, 0, len(b.companies))}
	for name, level := range b.companies {
		norm := Normalize(name)
		if norm == "" {
			continue
		}
		t.entries = append(t.entries, entry{aliases: []string{norm}, level: level})
	}
	return t
}

// Normalize lowercases and trims a company or title name for table lookups.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
