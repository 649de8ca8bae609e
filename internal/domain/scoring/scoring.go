// Package scoring converts catalog records into scored, tiered, explained
// ranking candidates.
//
// A record's score is the sum of its explanation deltas: the tier base,
// flat policy adjustments, and weighted signal contributions. Scoring is a
// pure function of its inputs and safe for concurrent use.
package scoring

import (
	"fmt"
	"time"

	"github.com/okian/ludex/internal/domain/classify"
	"github.com/okian/ludex/internal/domain/model"
)

// Flat adjustment constants. Mods and forks from non-authorized sources are
// actively pushed down, not merely deprioritized; their scores may go
// negative while the records stay visible.
const (
	unauthorizedDerivativePenalty = -500.0
	communityDerivativeBump       = 50.0
	fanNamePenalty                = -400.0
	lowRatingPenalty              = -25.0
	withdrawnPlatformPenalty      = -15.0
	veryOldTitlePenalty           = -10.0
	remasterBonus                 = 15.0
	portPenalty                   = -10.0
)

// Scorer assigns a tier and a numeric score to one candidate record.
type Scorer struct {
	classifier classify.Classifier
	now        func() time.Time // reference time for recency scoring
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithClassifier sets the company classifier consulted for derivative
// content policy.
func WithClassifier(c classify.Classifier) Option {
	return func(s *Scorer) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithClock overrides the reference time, pinning recency scoring in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewScorer creates a scorer. Without options it uses the builtin
// classification table and the wall clock.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		classifier: classify.NewTableClassifier(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score produces a scored candidate for rec. query may be empty, in which
// case the name-match signal contributes zero. cfg must have passed
// Validate; weights for unknown signals are ignored and missing weights
// count as zero.
func (s *Scorer) Score(rec model.Record, query string, cfg Config) model.ScoredRecord {
	tier, adjustments := s.assignTier(rec)

	signals := make([]model.Signal, 0, 12)
	signals = append(signals, model.Signal{
		Reason: fmt.Sprintf("tier %s base", tier),
		Delta:  tier.Base(),
	})
	signals = append(signals, adjustments...)
	signals = append(signals, s.flatAdjustments(rec)...)
	signals = append(signals, s.weightedSignals(rec, query, cfg)...)

	score := 0.0
	for _, sig := range signals {
		score += sig.Delta
	}

	// Every tier except LOW is floored at its band minimum; the correction
	// is recorded so deltas still sum to the final score.
	if min, floored := tier.Min(); floored && score < min {
		signals = append(signals, model.Signal{
			Reason: fmt.Sprintf("tier %s floor", tier),
			Delta:  min - score,
		})
		score = min
	}

	return model.ScoredRecord{
		Record:  rec,
		Score:   score,
		Tier:    tier,
		Signals: signals,
	}
}

// assignTier evaluates the ordered tier rules (first match wins for the
// tier itself) and then the independent fan-content name heuristic. Both
// detectors run; either can trigger a penalty.
func (s *Scorer) assignTier(rec model.Record) (model.Tier, []model.Signal) {
	tier, adjustments := s.categoryTier(rec)

	// Fan-content name heuristic, independent of the category code. The
	// classifier table and the major-company set are authoritative: a
	// recognized company is never flagged by its name alone.
	if dev, ok := s.fanAuthored(rec); ok {
		if tier != model.TierCommunity {
			tier = model.TierLow
		}
		adjustments = append(adjustments, model.Signal{
			Reason: fmt.Sprintf("fan-content marker in %q", dev),
			Delta:  fanNamePenalty,
		})
	}

	return tier, adjustments
}

// categoryTier is the ordered, first-match-wins rule list for the base tier.
func (s *Scorer) categoryTier(rec model.Record) (model.Tier, []model.Signal) {
	name := classify.Normalize(rec.Name)

	switch {
	case rec.Category.IsAddon():
		return model.TierAddon, nil

	case rec.Category.IsDerivative():
		if s.classifier.Classify(rec.Developer) == classify.LevelModFriendly {
			return model.TierCommunity, []model.Signal{{
				Reason: "authorized community content",
				Delta:  communityDerivativeBump,
			}}
		}
		return model.TierLow, []model.Signal{{
			Reason: "unauthorized derivative content",
			Delta:  unauthorizedDerivativePenalty,
		}}

	case contains(iconicTitles, name):
		return model.TierFlagship, nil

	case contains(famousTitles, name):
		return model.TierFamous, nil

	case franchiseOf(name) != "":
		return model.TierSequel, nil

	case s.majorCompany(rec.Publisher) || s.majorCompany(rec.Developer):
		return model.TierMain, nil

	default:
		// Baseline, not yet penalized.
		return model.TierLow, nil
	}
}

// fanAuthored reports whether the developer or publisher name carries a
// fan/homebrew/community marker and names the offending company.
func (s *Scorer) fanAuthored(rec model.Record) (string, bool) {
	for _, company := range []string{rec.Developer, rec.Publisher} {
		if company == "" {
			continue
		}
		if s.majorCompany(company) || s.classifier.Known(company) {
			continue
		}
		if hasFanMarker(company) {
			return company, true
		}
	}
	return "", false
}

func contains(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
