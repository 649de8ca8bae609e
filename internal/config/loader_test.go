package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/ludex/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LUDEX_CONFIG", "")

	Convey("When loading with no file and no env", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then defaults apply", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.DefaultLimit, ShouldEqual, 20)
			So(cfg.MaxLimit, ShouldEqual, 100)
			So(cfg.CacheBackend, ShouldEqual, "memory")
			So(cfg.CacheTTLSeconds, ShouldEqual, 300)
			So(cfg.DropNegative, ShouldBeFalse)
		})
	})
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `addr: ":7070"
default_limit: 10
cache_backend: memory
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LUDEX_CONFIG", path)

	Convey("When a config file is provided", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then file values override defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.DefaultLimit, ShouldEqual, 10)
			So(cfg.MaxLimit, ShouldEqual, 100)
		})
	})
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("LUDEX_CONFIG", path)
	t.Setenv("LUDEX_ADDR", ":6060")
	t.Setenv("LUDEX_LOG_LEVEL", "debug")

	Convey("When env vars are set on top of a file", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then env wins over the file", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":6060")
			So(cfg.LogLevel, ShouldEqual, "debug")
		})
	})
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("LUDEX_CONFIG", "/nonexistent/config.yaml")

	Convey("When the file path does not exist", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then loading fails with the load sentinel", func() {
			So(err, ShouldWrap, config.ErrLoadConfig)
		})
	})
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("LUDEX_CONFIG", "")
	t.Setenv("LUDEX_DEFAULT_LIMIT", "500")

	Convey("When default_limit exceeds max_limit", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then validation rejects it", func() {
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}

func TestLoad_UnknownCacheBackend(t *testing.T) {
	t.Setenv("LUDEX_CONFIG", "")
	t.Setenv("LUDEX_CACHE_BACKEND", "memcached")

	Convey("When an unknown cache backend is requested", t, func() {
		_, err := config.Load(context.Background())

		Convey("Then validation rejects it", func() {
			So(err, ShouldWrap, config.ErrInvalidConfig)
		})
	})
}
