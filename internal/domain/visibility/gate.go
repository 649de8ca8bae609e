// Package visibility decides whether fan-authored secondary content about
// a property may be shown at all.
//
// This gate is deliberately separate from ranking: ranking demotes
// unauthorized game records to a lower position, while the gate suppresses
// unauthorized commentary outright. The failure modes differ, so the two
// are never merged into one function.
package visibility

import (
	"github.com/okian/ludex/internal/domain/classify"
	"github.com/okian/ludex/pkg/metrics"
)

// Gate answers fan-content visibility questions from classifier data.
type Gate struct {
	classifier classify.Classifier
}

// Option applies a configuration option to the Gate.
type Option func(*Gate)

// WithClassifier sets the company classifier.
func WithClassifier(c classify.Classifier) Option {
	return func(g *Gate) {
		if c != nil {
			g.classifier = c
		}
	}
}

// NewGate creates a Gate, defaulting to the builtin classification table.
func NewGate(opts ...Option) *Gate {
	g := &Gate{classifier: classify.NewTableClassifier()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ShouldHideFanContent reports whether fan content about a property must be
// hidden: true iff either company resolves to AGGRESSIVE or BLOCK_ALL.
// Unknown companies fail open to visible.
func (g *Gate) ShouldHideFanContent(developer, publisher string) bool {
	hidden := g.classifier.Classify(developer).Restrictive() ||
		g.classifier.Classify(publisher).Restrictive()
	metrics.RecordVisibilityCheck(hidden)
	return hidden
}
