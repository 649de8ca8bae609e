package scoring

import (
	"strings"

	"github.com/okian/ludex/internal/domain/classify"
	"github.com/okian/ludex/internal/domain/model"
)

// Sub-score grades. Every weighted signal produces a raw value in [0, 100]
// which is then multiplied by its configured weight / 100.
const (
	subScoreFull   = 100.0
	subScoreHigh   = 75.0
	subScoreMedium = 50.0
	subScoreLow    = 25.0

	nameMatchExact     = 100.0
	nameMatchWord      = 60.0
	nameMatchSubstring = 30.0

	franchiseIconic = 100.0
	franchiseFamous = 80.0
	franchiseSeries = 60.0

	platformHome       = 100.0
	platformCurrentGen = 50.0
	platformLegacy     = 25.0
)

// Rating tier thresholds on the 0-100 aggregate scale.
const (
	ratingExceptional = 90.0
	ratingGreat       = 80.0
	ratingGood        = 70.0
	ratingLowCutoff   = 40.0
)

// Popularity thresholds over combined rating-count, follows, and hype.
const (
	popularityHuge   = 1000
	popularityLarge  = 500
	popularityMedium = 100
	popularitySmall  = 10
)

// Recency horizon in years; very old titles past veryOldYears take a flat
// penalty on top of a zero recency sub-score.
const (
	recencyFreshYears   = 1.0
	recencyRecentYears  = 2.0
	recencyCurrentYears = 3.0
	recencyFadingYears  = 5.0
	veryOldYears        = 15.0

	hoursPerYear = 24 * 365.25
)

// flatAdjustments are the unweighted boosts and penalties applied on top of
// the tier base, independent of the active configuration.
func (s *Scorer) flatAdjustments(rec model.Record) []model.Signal {
	var signals []model.Signal

	if rec.Rating > 0 && rec.Rating < ratingLowCutoff {
		signals = append(signals, model.Signal{Reason: "low aggregate rating", Delta: lowRatingPenalty})
	}
	if onlyWithdrawnPlatforms(rec.Platforms) {
		signals = append(signals, model.Signal{Reason: "only withdrawn or rumored platforms", Delta: withdrawnPlatformPenalty})
	}
	if !rec.ReleaseAt.IsZero() && s.yearsSince(rec) > veryOldYears {
		signals = append(signals, model.Signal{Reason: "released long ago", Delta: veryOldTitlePenalty})
	}
	switch rec.Category {
	case model.CategoryRemaster, model.CategoryRemake:
		signals = append(signals, model.Signal{Reason: "remaster or remake", Delta: remasterBonus})
	case model.CategoryPort:
		signals = append(signals, model.Signal{Reason: "plain port", Delta: portPenalty})
	}
	return signals
}

// weightedSignals computes every raw sub-score, applies the configured
// weight, and reports non-zero contributions.
func (s *Scorer) weightedSignals(rec model.Record, query string, cfg Config) []model.Signal {
	raw := []struct {
		name  string
		score float64
	}{
		{SignalRating, ratingSubScore(rec.Rating)},
		{SignalPopularity, popularitySubScore(rec)},
		{SignalFranchise, s.franchiseSubScore(rec)},
		{SignalRecency, s.recencySubScore(rec)},
		{SignalPlatform, s.platformSubScore(rec)},
		{SignalNameMatch, nameMatchSubScore(rec.Name, query)},
	}

	var signals []model.Signal
	for _, r := range raw {
		delta := r.score * cfg.weight(r.name) / weightSumTarget
		if delta == 0 {
			continue
		}
		signals = append(signals, model.Signal{Reason: r.name + " signal", Delta: delta})
	}
	return signals
}

func ratingSubScore(rating float64) float64 {
	switch {
	case rating >= ratingExceptional:
		return subScoreFull
	case rating >= ratingGreat:
		return subScoreHigh
	case rating >= ratingGood:
		return subScoreMedium
	case rating >= ratingLowCutoff:
		return subScoreLow
	default:
		return 0
	}
}

func popularitySubScore(rec model.Record) float64 {
	pop := rec.RatingCount + rec.Follows + rec.Hype
	switch {
	case pop >= popularityHuge:
		return subScoreFull
	case pop >= popularityLarge:
		return subScoreHigh
	case pop >= popularityMedium:
		return subScoreMedium
	case pop >= popularitySmall:
		return subScoreLow
	default:
		return 0
	}
}

// franchiseSubScore grades franchise importance: iconic and famous titles
// score above plain series membership.
func (s *Scorer) franchiseSubScore(rec model.Record) float64 {
	name := classify.Normalize(rec.Name)
	switch {
	case contains(iconicTitles, name):
		return franchiseIconic
	case contains(famousTitles, name):
		return franchiseFamous
	case franchiseOf(name) != "":
		return franchiseSeries
	default:
		return 0
	}
}

func (s *Scorer) recencySubScore(rec model.Record) float64 {
	if rec.ReleaseAt.IsZero() {
		return 0
	}
	years := s.yearsSince(rec)
	switch {
	case years < 0:
		// Unreleased; treat as fresh.
		return subScoreFull
	case years <= recencyFreshYears:
		return subScoreFull
	case years <= recencyRecentYears:
		return subScoreHigh
	case years <= recencyCurrentYears:
		return subScoreMedium
	case years <= recencyFadingYears:
		return subScoreLow
	default:
		return 0
	}
}

func (s *Scorer) yearsSince(rec model.Record) float64 {
	return s.now().Sub(rec.ReleaseAt).Hours() / hoursPerYear
}

// platformSubScore rewards a title on its home platform (first-party title
// on the matching first-party platform) above general current-generation
// availability. Withdrawn platforms never count toward availability.
func (s *Scorer) platformSubScore(rec model.Record) float64 {
	if len(rec.Platforms) == 0 {
		return 0
	}

	best := 0.0
	for _, platform := range rec.Platforms {
		p := classify.Normalize(platform)
		if matchesAny(p, withdrawnPlatforms) {
			continue
		}
		switch {
		case s.homePlatform(rec, p):
			return platformHome
		case matchesAny(p, currentGenPlatforms) && best < platformCurrentGen:
			best = platformCurrentGen
		case matchesAny(p, legacyPlatforms) && best < platformLegacy:
			best = platformLegacy
		}
	}
	return best
}

func (s *Scorer) homePlatform(rec model.Record, platform string) bool {
	for _, company := range []string{rec.Publisher, rec.Developer} {
		c := classify.Normalize(company)
		if c == "" {
			continue
		}
		for marker, home := range firstPartyPlatforms {
			if strings.Contains(c, marker) && strings.Contains(platform, home) {
				return true
			}
		}
	}
	return false
}

// nameMatchSubScore grades how the query relates to the record name: exact
// match, then prefix or whole-word containment, then plain substring.
func nameMatchSubScore(name, query string) float64 {
	q := classify.Normalize(query)
	if q == "" {
		return 0
	}
	n := classify.Normalize(name)
	switch {
	case n == q:
		return nameMatchExact
	case strings.HasPrefix(n, q), containsWord(n, q):
		return nameMatchWord
	case strings.Contains(n, q):
		return nameMatchSubstring
	default:
		return 0
	}
}

// containsWord reports whether needle appears in haystack on word
// boundaries, with punctuation treated as a boundary.
func containsWord(haystack, needle string) bool {
	clean := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, haystack)
	cleanNeedle := strings.TrimSpace(strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, needle))
	if cleanNeedle == "" {
		return false
	}
	return strings.Contains(" "+strings.Join(strings.Fields(clean), " ")+" ", " "+cleanNeedle+" ")
}

// franchiseOf returns the matched franchise marker, or empty.
func franchiseOf(name string) string {
	for _, f := range franchises {
		if strings.Contains(name, f) {
			return f
		}
	}
	return ""
}

// majorCompany reports whether the company matches the curated major
// publisher/developer set.
func (s *Scorer) majorCompany(company string) bool {
	c := classify.Normalize(company)
	if c == "" {
		return false
	}
	return matchesAny(c, majorCompanies)
}

func hasFanMarker(company string) bool {
	return matchesAny(classify.Normalize(company), fanMarkers)
}

func onlyWithdrawnPlatforms(platforms []string) bool {
	if len(platforms) == 0 {
		return false
	}
	for _, platform := range platforms {
		if !matchesAny(classify.Normalize(platform), withdrawnPlatforms) {
			return false
		}
	}
	return true
}

func matchesAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
