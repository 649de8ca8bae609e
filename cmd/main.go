package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/okian/ludex/internal/adapters/cache"
	"github.com/okian/ludex/internal/adapters/configstore"
	"github.com/okian/ludex/internal/adapters/http/api"
	"github.com/okian/ludex/internal/adapters/source"
	service "github.com/okian/ludex/internal/app"
	"github.com/okian/ludex/internal/config"
	"github.com/okian/ludex/internal/domain/classify"
	"github.com/okian/ludex/pkg/logger"
	"github.com/okian/ludex/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout           = 10 * time.Second
	writeTimeout          = 10 * time.Second
	idleTimeout           = 60 * time.Second
	readHeaderTimeout     = 5 * time.Second
	shutdownTimeout       = 30 * time.Second
	systemMetricsInterval = 10 * time.Second

	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Our custom registry carries domain metrics; drop the default Go and
	// process collectors to avoid duplicates.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := buildService(ctx, cfg, log)
	if err != nil {
		os.Stderr.WriteString("failed to build service: " + err.Error() + "\n")
		return
	}

	go startSystemMetricsUpdater(ctx)

	mux := http.NewServeMux()
	api.NewServer(svc).Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}

// buildService assembles the ranking service from configuration.
func buildService(ctx context.Context, cfg *config.Config, log logger.Logger) (*service.Service, error) {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second

	var results cache.Cache
	if cfg.CacheBackend == "redis" {
		results = cache.NewRedis(cfg.RedisAddr, cache.WithRedisTTL(ttl))
	} else {
		results = cache.NewMemory(cache.WithTTL(ttl), cache.WithMaxEntries(cfg.CacheMaxEntries))
	}

	classifier := classify.NewTableClassifier()
	if cfg.ClassificationFile != "" {
		overrides, err := classify.LoadFile(cfg.ClassificationFile)
		if err != nil {
			return nil, err
		}
		classifier.Reload(classify.WithCompanies(overrides))
	}

	configs := configstore.New()
	if cfg.ScoringConfigFile != "" {
		if err := configs.LoadFile(ctx, cfg.ScoringConfigFile); err != nil {
			// A broken file keeps the last-known-good active configuration.
			log.Warn(ctx, "scoring config file not loaded", logger.Error(err))
		}
	}

	// The local catalog store and remote metadata provider adapters plug in
	// here; the sample catalog keeps the binary useful without them.
	supplier := source.NewMerged([]source.Supplier{
		source.NewFixture("local-store", source.SampleCatalog()),
	})

	return service.New(
		service.WithLogger(log.Named("service")),
		service.WithCache(results),
		service.WithClassifier(classifier),
		service.WithConfigStore(configs),
		service.WithSupplier(supplier),
		service.WithLimits(cfg.DefaultLimit, cfg.MaxLimit),
		service.WithDropNegative(cfg.DropNegative),
		service.WithClassificationFile(cfg.ClassificationFile),
	), nil
}

// startSystemMetricsUpdater refreshes system gauges on a fixed cadence.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)
	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())
	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
