package model

// Tier is the coarse priority band assigned to a candidate before
// fine-grained signal adjustments. Higher tiers sort first.
type Tier string

// Tiers, highest to lowest.
const (
	TierFlagship  Tier = "FLAGSHIP"
	TierFamous    Tier = "FAMOUS"
	TierSequel    Tier = "SEQUEL_OR_SERIES"
	TierMain      Tier = "MAIN"
	TierAddon     Tier = "DLC_OR_EXPANSION"
	TierCommunity Tier = "COMMUNITY"
	TierLow       Tier = "LOW"
)

// Base score and band minimum per tier. LOW is the only tier whose final
// score may fall below its band minimum (and below zero).
var tierBands = map[Tier]struct{ base, min float64 }{
	TierFlagship:  {base: 1000, min: 900},
	TierFamous:    {base: 800, min: 700},
	TierSequel:    {base: 600, min: 500},
	TierMain:      {base: 400, min: 300},
	TierAddon:     {base: 250, min: 200},
	TierCommunity: {base: 150, min: 100},
	TierLow:       {base: 0, min: 0},
}

// Base returns the tier's base score contribution.
func (t Tier) Base() float64 {
	return tierBands[t].base
}

// Min returns the lowest score the tier's band permits. Floored returns
// whether the floor applies; LOW is unfloored.
func (t Tier) Min() (min float64, floored bool) {
	if t == TierLow {
		return 0, false
	}
	return tierBands[t].min, true
}

// Signal is one applied boost or penalty. The deltas of a scored record's
// signal list sum exactly to its final score.
type Signal struct {
	Reason string  `json:"reason"`
	Delta  float64 `json:"delta"`
}

// ScoredRecord is the ephemeral output of scoring one candidate. It is
// created per ranking call and never persisted.
type ScoredRecord struct {
	Record  Record   `json:"record"`
	Score   float64  `json:"score"`
	Tier    Tier     `json:"tier"`
	Signals []Signal `json:"signals"`
}
