package rank_test

import (
	"context"
	"testing"
	"time"

	"github.com/okian/ludex/internal/domain/model"
	"github.com/okian/ludex/internal/domain/rank"
	"github.com/okian/ludex/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func newTestPipeline(opts ...rank.Option) *rank.Pipeline {
	scorer := scoring.NewScorer(scoring.WithClock(func() time.Time { return testNow }))
	return rank.New(append([]rank.Option{rank.WithScorer(scorer)}, opts...)...)
}

func TestPipeline_Rank(t *testing.T) {
	Convey("Given a pipeline with the default policy", t, func() {
		p := newTestPipeline()
		cfg := scoring.Default()
		ctx := context.Background()

		Convey("When ranking mario candidates", func() {
			candidates := []model.Record{
				{ProviderID: "1", Name: "Super Mario Fan Mod", Category: model.CategoryMod, Developer: "RandomFanStudio"},
				{ProviderID: "2", Name: "Super Mario Odyssey", Publisher: "Nintendo", Platforms: []string{"Switch"}, Rating: 97, RatingCount: 2800},
				{ProviderID: "3", Name: "Mario Kart 8 Deluxe", Publisher: "Nintendo", Platforms: []string{"Switch"}, Rating: 92},
			}
			results, dropped := p.Rank(ctx, candidates, "mario", cfg, 0)

			Convey("Then results come back score-descending", func() {
				So(results, ShouldHaveLength, 3)
				So(dropped, ShouldEqual, 0)
				So(results[0].Score, ShouldBeGreaterThanOrEqualTo, results[1].Score)
				So(results[1].Score, ShouldBeGreaterThanOrEqualTo, results[2].Score)
			})

			Convey("And the fan mod sinks to the bottom, still visible", func() {
				So(results[2].Record.Name, ShouldEqual, "Super Mario Fan Mod")
				So(results[2].Score, ShouldBeLessThan, 0)
			})
		})

		Convey("When candidates tie on score", func() {
			results, _ := p.Rank(ctx, []model.Record{
				{ProviderID: "1", Name: "beta town"},
				{ProviderID: "2", Name: "Alpha Town"},
			}, "", cfg, 0)

			Convey("Then ties break by case-insensitive name", func() {
				So(results[0].Record.Name, ShouldEqual, "Alpha Town")
				So(results[1].Record.Name, ShouldEqual, "beta town")
			})
		})

		Convey("When candidates tie on score and name", func() {
			results, _ := p.Rank(ctx, []model.Record{
				{ProviderID: "9", Name: "Same Town"},
				{ProviderID: "4", Name: "Same Town"},
			}, "", cfg, 0)

			Convey("Then identity breaks the tie deterministically", func() {
				So(results[0].Record.ProviderID, ShouldEqual, "4")
			})
		})

		Convey("When duplicates arrive from two sources", func() {
			results, dropped := p.Rank(ctx, []model.Record{
				{ProviderID: "1042", Name: "The Witcher 3: Wild Hunt"},
				{ProviderID: "1042", Name: "The Witcher 3: Wild Hunt", Summary: "richer copy", Rating: 95},
			}, "witcher", cfg, 0)

			Convey("Then only the richer copy is ranked", func() {
				So(dropped, ShouldEqual, 0)
				So(results, ShouldHaveLength, 1)
				So(results[0].Record.Summary, ShouldEqual, "richer copy")
			})
		})

		Convey("When malformed candidates are present", func() {
			results, dropped := p.Rank(ctx, []model.Record{
				{Name: "No Identity"},
				{ProviderID: "1", Name: ""},
				{ProviderID: "2", Name: "Fine"},
			}, "", cfg, 0)

			Convey("Then they are dropped and counted, not fatal", func() {
				So(results, ShouldHaveLength, 1)
				So(dropped, ShouldEqual, 2)
			})
		})

		Convey("When a limit is set", func() {
			candidates := []model.Record{
				{ProviderID: "1", Name: "Elden Ring"},
				{ProviderID: "2", Name: "Quiet Valley"},
				{ProviderID: "3", Name: "Another Valley"},
			}

			Convey("Then truncation happens after the full sort", func() {
				results, _ := p.Rank(ctx, candidates, "", cfg, 1)
				So(results, ShouldHaveLength, 1)
				So(results[0].Record.Name, ShouldEqual, "Elden Ring")
			})

			Convey("And limit <= 0 returns everything", func() {
				results, _ := p.Rank(ctx, candidates, "", cfg, 0)
				So(results, ShouldHaveLength, 3)
			})
		})

		Convey("When ranking the same input twice", func() {
			candidates := []model.Record{
				{ProviderID: "1", Name: "Quiet Valley"},
				{ProviderID: "2", Name: "Elden Ring"},
				{ProviderID: "3", Name: "Stardew Valley"},
			}
			first, _ := p.Rank(ctx, candidates, "valley", cfg, 0)
			second, _ := p.Rank(ctx, candidates, "valley", cfg, 0)

			Convey("Then the output is identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given a pipeline that drops negative scores", t, func() {
		p := newTestPipeline(rank.WithDropNegative(true))
		cfg := scoring.Default()

		Convey("When a penalized mod is ranked", func() {
			results, dropped := p.Rank(context.Background(), []model.Record{
				{ProviderID: "1", Name: "Super Mario Fan Mod", Category: model.CategoryMod, Developer: "RandomFanStudio"},
				{ProviderID: "2", Name: "Super Mario Odyssey"},
			}, "mario", cfg, 0)

			Convey("Then it is excluded without counting as malformed", func() {
				So(results, ShouldHaveLength, 1)
				So(results[0].Record.Name, ShouldEqual, "Super Mario Odyssey")
				So(dropped, ShouldEqual, 0)
			})
		})
	})
}
