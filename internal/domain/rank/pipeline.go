// Package rank orchestrates deduplication, scoring, ordering, and
// truncation of candidate records.
package rank

import (
	"context"
	"sort"
	"strings"

	"github.com/okian/ludex/internal/domain/dedupe"
	"github.com/okian/ludex/internal/domain/model"
	"github.com/okian/ludex/internal/domain/scoring"
	"github.com/okian/ludex/pkg/metrics"
)

// Pipeline ranks candidate records. It is stateless per call and safe for
// concurrent use.
type Pipeline struct {
	merger       dedupe.Merger
	scorer       *scoring.Scorer
	dropNegative bool
}

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithMerger replaces the deduplicator.
func WithMerger(m dedupe.Merger) Option {
	return func(p *Pipeline) {
		if m != nil {
			p.merger = m
		}
	}
}

// WithScorer replaces the scorer.
func WithScorer(s *scoring.Scorer) Option {
	return func(p *Pipeline) {
		if s != nil {
			p.scorer = s
		}
	}
}

// WithDropNegative controls whether negatively scored candidates are
// excluded before truncation. Default is to show them last rather than
// hide them; this is policy, not correctness.
func WithDropNegative(drop bool) Option {
	return func(p *Pipeline) {
		p.dropNegative = drop
	}
}

// New creates a Pipeline with the default merger and scorer unless
// overridden.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		merger: dedupe.NewByIdentity(),
		scorer: scoring.NewScorer(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Rank deduplicates and scores candidates, sorts them (score descending,
// case-insensitive name ascending on ties, identity as the final
// tie-break), and truncates to limit (limit <= 0 means no truncation).
//
// Malformed candidates are dropped and counted, never fatal: partial
// success is preferred over total failure. The returned int is the dropped
// count.
func (p *Pipeline) Rank(ctx context.Context, candidates []model.Record, query string, cfg scoring.Config, limit int) ([]model.ScoredRecord, int) {
	unique := p.merger.Dedupe(candidates)
	metrics.RecordCandidatesDeduped(len(candidates) - len(unique))

	dropped := 0
	scored := make([]model.ScoredRecord, 0, len(unique))
	for _, rec := range unique {
		if ctx.Err() != nil {
			break
		}
		if !rec.Valid() {
			dropped++
			continue
		}
		sc := p.scorer.Score(rec, query, cfg)
		if p.dropNegative && sc.Score < 0 {
			continue
		}
		scored = append(scored, sc)
		metrics.RecordCandidateScored(string(sc.Tier))
	}
	metrics.RecordCandidatesDropped(dropped)

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		ni, nj := strings.ToLower(scored[i].Record.Name), strings.ToLower(scored[j].Record.Name)
		if ni != nj {
			return ni < nj
		}
		return scored[i].Record.Identity() < scored[j].Record.Identity()
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, dropped
}
