// Package service provides the core business service that implements the
// dependencies required by the HTTP API: cached, ranked search over the
// merged candidate sources, and the fan-content visibility gate.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/ludex/internal/adapters/cache"
	"github.com/okian/ludex/internal/adapters/configstore"
	"github.com/okian/ludex/internal/adapters/source"
	"github.com/okian/ludex/internal/domain/classify"
	"github.com/okian/ludex/internal/domain/model"
	"github.com/okian/ludex/internal/domain/rank"
	"github.com/okian/ludex/internal/domain/scoring"
	"github.com/okian/ludex/internal/domain/visibility"
	"github.com/okian/ludex/pkg/logger"
	"github.com/okian/ludex/pkg/metrics"
)

// Default limits applied when the caller does not configure them.
const (
	defaultResultLimit = 20
	defaultMaxLimit    = 100
)

// SearchStats reports how one search was served.
type SearchStats struct {
	TraceID    string `json:"trace_id"`
	CacheHit   bool   `json:"cache_hit"`
	Candidates int    `json:"candidates"`
	Dropped    int    `json:"dropped"`
}

// Service wires the ranking engine together behind the two public entry
// points: Search and ShouldHideFanContent.
type Service struct {
	classifier *classify.TableClassifier
	pipeline   *rank.Pipeline
	results    cache.Cache
	supplier   source.Supplier
	configs    *configstore.Store
	gate       *visibility.Gate

	defaultLimit       int
	maxLimit           int
	dropNegative       bool
	classificationFile string

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithCache replaces the result cache.
func WithCache(c cache.Cache) Option {
	return func(s *Service) {
		if c != nil {
			s.results = c
		}
	}
}

// WithSupplier replaces the candidate supplier.
func WithSupplier(sup source.Supplier) Option {
	return func(s *Service) {
		if sup != nil {
			s.supplier = sup
		}
	}
}

// WithConfigStore replaces the scoring configuration store.
func WithConfigStore(store *configstore.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.configs = store
		}
	}
}

// WithClassifier replaces the company classifier shared by the scorer and
// the visibility gate.
func WithClassifier(c *classify.TableClassifier) Option {
	return func(s *Service) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithLimits sets the default and maximum result limits.
func WithLimits(defaultLimit, maxLimit int) Option {
	return func(s *Service) {
		if defaultLimit > 0 {
			s.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.maxLimit = maxLimit
		}
	}
}

// WithDropNegative excludes negatively scored candidates from responses.
func WithDropNegative(drop bool) Option {
	return func(s *Service) {
		s.dropNegative = drop
	}
}

// WithClassificationFile sets the YAML override table consulted on reload.
func WithClassificationFile(path string) Option {
	return func(s *Service) {
		s.classificationFile = path
	}
}

// New creates the service. Without options it ranks the builtin sample
// catalog with the builtin classification table and default weights.
func New(opts ...Option) *Service {
	s := &Service{
		defaultLimit: defaultResultLimit,
		maxLimit:     defaultMaxLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log = logger.Named("service")
	}
	if s.classifier == nil {
		s.classifier = classify.NewTableClassifier()
	}
	if s.results == nil {
		s.results = cache.NewMemory()
	}
	if s.configs == nil {
		s.configs = configstore.New()
	}
	if s.supplier == nil {
		s.supplier = source.NewMerged([]source.Supplier{
			source.NewFixture("local-store", source.SampleCatalog()),
		})
	}
	if s.gate == nil {
		s.gate = visibility.NewGate(visibility.WithClassifier(s.classifier))
	}
	s.pipeline = rank.New(
		rank.WithScorer(scoring.NewScorer(scoring.WithClassifier(s.classifier))),
		rank.WithDropNegative(s.dropNegative),
	)
	return s
}

// Search returns the ranked results for a free-text query. A limit <= 0
// falls back to the configured default; limits above the maximum are
// capped.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]model.ScoredRecord, SearchStats, error) {
	stats := SearchStats{TraceID: uuid.NewString()}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, stats, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	cfg := s.configs.Active()
	key := cache.Key(query, limit, cfg.Name, cfg.Version)

	if results, ok := s.results.Get(ctx, key); ok {
		metrics.RecordCacheHit()
		metrics.RecordSearchServed()
		stats.CacheHit = true
		stats.Candidates = len(results)
		return results, stats, nil
	}
	metrics.RecordCacheMiss()

	start := time.Now()
	candidates, err := s.supplier.Search(ctx, query)
	if err != nil {
		return nil, stats, fmt.Errorf("gathering candidates: %w", err)
	}
	stats.Candidates = len(candidates)

	results, dropped := s.pipeline.Rank(ctx, candidates, query, cfg, limit)
	stats.Dropped = dropped
	metrics.RecordRankLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordSearchServed()

	s.results.Put(ctx, key, results)

	s.log.Debug(ctx, "search ranked",
		logger.String("trace_id", stats.TraceID),
		logger.String("query", query),
		logger.Int("candidates", stats.Candidates),
		logger.Int("dropped", dropped),
		logger.Int("results", len(results)),
		logger.String("config", cfg.Name))
	return results, stats, nil
}

// ShouldHideFanContent reports whether fan-authored secondary content
// about the property must be suppressed.
func (s *Service) ShouldHideFanContent(_ context.Context, developer, publisher string) bool {
	return s.gate.ShouldHideFanContent(developer, publisher)
}

// ReloadClassifications rebuilds the company table (builtin plus file
// overrides when configured) and swaps it atomically.
func (s *Service) ReloadClassifications(ctx context.Context) error {
	var opts []classify.Option
	if s.classificationFile != "" {
		overrides, err := classify.LoadFile(s.classificationFile)
		if err != nil {
			return err
		}
		opts = append(opts, classify.WithCompanies(overrides))
	}
	s.classifier.Reload(opts...)
	s.log.Info(ctx, "classification table reloaded",
		logger.String("file", s.classificationFile))
	return nil
}

// GetStats exposes operational counters for the stats endpoint.
func (s *Service) GetStats(ctx context.Context) map[string]any {
	names, active := s.configs.Names()
	return map[string]any{
		"cacheEntries": s.results.Len(ctx),
		"activeConfig": active,
		"configNames":  names,
		"defaultLimit": s.defaultLimit,
		"maxLimit":     s.maxLimit,
		"dropNegative": s.dropNegative,
	}
}
