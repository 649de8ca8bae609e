package cache_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/okian/ludex/internal/adapters/cache"
	"github.com/okian/ludex/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func someResults(name string) []model.ScoredRecord {
	return []model.ScoredRecord{{
		Record: model.Record{ProviderID: "1", Name: name},
		Score:  800,
		Tier:   model.TierFamous,
	}}
}

func TestKey(t *testing.T) {
	Convey("Given the cache key derivation", t, func() {
		Convey("Then the query is normalized", func() {
			So(cache.Key("  Mario ", 20, "default", 1), ShouldEqual, cache.Key("mario", 20, "default", 1))
		})

		Convey("Then every option dimension separates keys", func() {
			base := cache.Key("mario", 20, "default", 1)
			So(cache.Key("zelda", 20, "default", 1), ShouldNotEqual, base)
			So(cache.Key("mario", 10, "default", 1), ShouldNotEqual, base)
			So(cache.Key("mario", 20, "tuned", 1), ShouldNotEqual, base)
			So(cache.Key("mario", 20, "default", 2), ShouldNotEqual, base)
		})
	})
}

func TestMemory(t *testing.T) {
	Convey("Given an in-memory cache with a controllable clock", t, func() {
		now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
		var mu sync.Mutex
		clock := func() time.Time {
			mu.Lock()
			defer mu.Unlock()
			return now
		}
		advance := func(d time.Duration) {
			mu.Lock()
			defer mu.Unlock()
			now = now.Add(d)
		}

		c := cache.NewMemory(cache.WithTTL(5*time.Minute), cache.WithClock(clock))
		ctx := context.Background()

		Convey("When a fresh entry is read back", func() {
			c.Put(ctx, "k", someResults("Super Mario Odyssey"))
			got, ok := c.Get(ctx, "k")

			Convey("Then it hits", func() {
				So(ok, ShouldBeTrue)
				So(got, ShouldHaveLength, 1)
				So(got[0].Record.Name, ShouldEqual, "Super Mario Odyssey")
			})
		})

		Convey("When the TTL elapses", func() {
			c.Put(ctx, "k", someResults("Super Mario Odyssey"))
			advance(5*time.Minute + time.Second)
			_, ok := c.Get(ctx, "k")

			Convey("Then the entry has expired", func() {
				So(ok, ShouldBeFalse)
				So(c.Len(ctx), ShouldEqual, 0)
			})
		})

		Convey("When an unknown key is requested", func() {
			_, ok := c.Get(ctx, "nope")

			Convey("Then it misses", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When a key is overwritten", func() {
			c.Put(ctx, "k", someResults("Old"))
			c.Put(ctx, "k", someResults("New"))
			got, ok := c.Get(ctx, "k")

			Convey("Then the latest value wins", func() {
				So(ok, ShouldBeTrue)
				So(got[0].Record.Name, ShouldEqual, "New")
			})
		})
	})

	Convey("Given a cache bounded to two entries", t, func() {
		now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
		clock := func() time.Time { return now }
		c := cache.NewMemory(cache.WithMaxEntries(2), cache.WithTTL(time.Minute), cache.WithClock(clock))
		ctx := context.Background()

		Convey("When a third entry arrives", func() {
			c.Put(ctx, "oldest", someResults("A"))
			now = now.Add(10 * time.Second)
			c.Put(ctx, "newer", someResults("B"))
			now = now.Add(10 * time.Second)
			c.Put(ctx, "newest", someResults("C"))

			Convey("Then the entry closest to expiry is evicted", func() {
				So(c.Len(ctx), ShouldEqual, 2)
				_, ok := c.Get(ctx, "oldest")
				So(ok, ShouldBeFalse)
				_, ok = c.Get(ctx, "newer")
				So(ok, ShouldBeTrue)
				_, ok = c.Get(ctx, "newest")
				So(ok, ShouldBeTrue)
			})
		})
	})

	Convey("Given concurrent readers and writers", t, func() {
		c := cache.NewMemory()
		ctx := context.Background()

		Convey("When they run against the same key set", func() {
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for j := 0; j < 100; j++ {
						c.Put(ctx, "shared", someResults("X"))
						c.Get(ctx, "shared")
					}
				}()
			}
			wg.Wait()

			Convey("Then the cache stays consistent", func() {
				got, ok := c.Get(ctx, "shared")
				So(ok, ShouldBeTrue)
				So(got, ShouldHaveLength, 1)
			})
		})
	})
}
