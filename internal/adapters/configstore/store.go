// Package configstore keeps named scoring configurations and the identity
// of the active one.
//
// The store owns the "active" pointer; the scorer itself stays stateless
// and receives configurations by value. Invalid configurations are
// rejected at load time and never applied partially: the previous
// configuration stays in effect.
package configstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/ludex/internal/domain/scoring"
	"github.com/okian/ludex/pkg/logger"
)

// Store is a concurrency-safe registry of scoring configurations.
type Store struct {
	mu      sync.RWMutex
	configs map[string]scoring.Config
	active  string
	log     logger.Logger
}

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithLogger sets the store's logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Store seeded with the default configuration as active.
func New(opts ...Option) *Store {
	def := scoring.Default()
	s := &Store{
		configs: map[string]scoring.Config{def.Name: def},
		active:  def.Name,
		log:     logger.Named("configstore"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Put validates and stores a configuration. An invalid configuration is
// rejected; any previously stored version under the same name is retained.
func (s *Store) Put(ctx context.Context, cfg scoring.Config) error {
	if err := cfg.Validate(); err != nil {
		s.log.Warn(ctx, "rejecting scoring configuration",
			logger.String("name", cfg.Name), logger.Error(err))
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[cfg.Name] = cfg.Clone()
	return nil
}

// SetActive switches production ranking to a stored configuration.
func (s *Store) SetActive(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.configs[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownConfig, name)
	}
	s.active = name
	s.log.Info(ctx, "active scoring configuration changed", logger.String("name", name))
	return nil
}

// Active returns a copy of the configuration currently governing
// production ranking.
func (s *Store) Active() scoring.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configs[s.active].Clone()
}

// Get returns a stored configuration by name.
func (s *Store) Get(name string) (scoring.Config, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg, ok := s.configs[name]
	if !ok {
		return scoring.Config{}, false
	}
	return cfg.Clone(), true
}

// Names lists stored configuration names; the second value is the active
// one.
func (s *Store) Names() ([]string, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.configs))
	for name := range s.configs {
		names = append(names, name)
	}
	return names, s.active
}

// fileSchema mirrors the YAML layout of a configuration file.
type fileSchema struct {
	Active  string           `koanf:"active"`
	Configs []scoring.Config `koanf:"configs"`
}

// LoadFile merges configurations from a YAML file. Invalid entries are
// skipped with a warning; a missing or invalid requested active
// configuration keeps the last-known-good active one.
func (s *Store) LoadFile(ctx context.Context, path string) error {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfigs, err)
	}
	var schema fileSchema
	if err := k.UnmarshalWithConf("", &schema, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadConfigs, err)
	}

	for _, cfg := range schema.Configs {
		if err := s.Put(ctx, cfg); err != nil {
			// Rejected entries leave the previous version in effect.
			continue
		}
	}
	if schema.Active != "" {
		if err := s.SetActive(ctx, schema.Active); err != nil {
			s.log.Warn(ctx, "requested active configuration unavailable; keeping current",
				logger.String("requested", schema.Active), logger.Error(err))
		}
	}
	return nil
}
