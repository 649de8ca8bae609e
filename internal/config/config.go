// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields simple and koanf-tagged; layering is defaults -> file -> env.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DefaultLimit is applied when a search request carries no limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxLimit caps the per-request result limit.
	MaxLimit int `koanf:"max_limit"`

	// DropNegative excludes negatively scored candidates from responses.
	// Policy parameter: unauthorized derivatives are shown last by default,
	// not hidden.
	DropNegative bool `koanf:"drop_negative"`

	// CacheBackend selects the result cache: "memory" or "redis".
	CacheBackend string `koanf:"cache_backend"`

	// CacheTTLSeconds bounds result cache entry lifetime.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`

	// CacheMaxEntries bounds the in-memory result cache size.
	CacheMaxEntries int `koanf:"cache_max_entries"`

	// RedisAddr points the redis cache backend at its server.
	RedisAddr string `koanf:"redis_addr"`

	// ClassificationFile optionally overrides the builtin company
	// enforcement table (YAML: company -> level).
	ClassificationFile string `koanf:"classification_file"`

	// ScoringConfigFile optionally loads named scoring configurations and
	// the active selection (YAML).
	ScoringConfigFile string `koanf:"scoring_config_file"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		DefaultLimit:    20,
		MaxLimit:        100,
		DropNegative:    false,
		CacheBackend:    "memory",
		CacheTTLSeconds: 300,
		CacheMaxEntries: 4096,
		RedisAddr:       "localhost:6379",
	}
}
