// Package source defines the candidate-supplier boundary: the engine ranks
// whatever records the suppliers hand it and performs no network I/O of
// its own. The local catalog store and the remote metadata provider each
// sit behind a Supplier.
package source

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/ludex/internal/domain/model"
	"github.com/okian/ludex/pkg/logger"
	"github.com/okian/ludex/pkg/metrics"
)

// Supplier returns candidate records for a free-text query, in no
// guaranteed order.
type Supplier interface {
	// Name identifies the supplier in logs and metrics.
	Name() string

	// Search returns candidates for the query. Timeouts and retries are the
	// supplier's concern, never the engine's.
	Search(ctx context.Context, query string) ([]model.Record, error)
}

// Merged fans a query out to every supplier concurrently and concatenates
// the results for ranking. A failing supplier degrades the response to
// partial results; only all suppliers failing is an error.
type Merged struct {
	suppliers []Supplier
	log       logger.Logger
}

// Option applies a configuration option to Merged.
type Option func(*Merged)

// WithLogger sets the merger's logger.
func WithLogger(l logger.Logger) Option {
	return func(m *Merged) {
		if l != nil {
			m.log = l
		}
	}
}

// NewMerged creates a merged supplier over the given sources.
func NewMerged(suppliers []Supplier, opts ...Option) *Merged {
	m := &Merged{
		suppliers: suppliers,
		log:       logger.Named("source"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Search implements Supplier over all configured sources.
func (m *Merged) Search(ctx context.Context, query string) ([]model.Record, error) {
	if len(m.suppliers) == 0 {
		return nil, ErrNoSuppliers
	}

	results := make([][]model.Record, len(m.suppliers))
	errs := make([]error, len(m.suppliers))

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range m.suppliers {
		g.Go(func() error {
			start := time.Now()
			recs, err := s.Search(gctx, query)
			metrics.RecordSupplierLatency(s.Name(), float64(time.Since(start).Milliseconds()))
			if err != nil {
				metrics.RecordSupplierError(s.Name())
				m.log.Warn(gctx, "supplier failed; continuing with partial results",
					logger.String("supplier", s.Name()), logger.Error(err))
				errs[i] = err
				return nil
			}
			results[i] = recs
			return nil
		})
	}
	// Workers never return errors; partial failure is handled below.
	_ = g.Wait()

	merged := make([]model.Record, 0, totalLen(results))
	failures := 0
	for i := range m.suppliers {
		if errs[i] != nil {
			failures++
			continue
		}
		merged = append(merged, results[i]...)
	}
	if failures == len(m.suppliers) {
		return nil, errors.Join(append([]error{ErrAllSuppliersFailed}, errs...)...)
	}
	return merged, nil
}

// Name implements Supplier.
func (m *Merged) Name() string {
	return "merged"
}

func totalLen(results [][]model.Record) int {
	n := 0
	for _, r := range results {
		n += len(r)
	}
	return n
}
