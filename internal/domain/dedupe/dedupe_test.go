package dedupe_test

import (
	"testing"
	"time"

	"github.com/okian/ludex/internal/domain/dedupe"
	"github.com/okian/ludex/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestByIdentity_Dedupe(t *testing.T) {
	Convey("Given an identity-keyed merger", t, func() {
		merger := dedupe.NewByIdentity()

		Convey("When two records share a provider id", func() {
			sparse := model.Record{ProviderID: "1042", Name: "The Witcher 3: Wild Hunt"}
			rich := model.Record{
				ProviderID: "1042",
				Name:       "The Witcher 3: Wild Hunt",
				Summary:    "Open-world RPG.",
				Developer:  "CD Projekt Red",
				Publisher:  "CD Projekt",
				Rating:     95,
				ReleaseAt:  time.Date(2015, 5, 19, 0, 0, 0, 0, time.UTC),
			}
			out := merger.Dedupe([]model.Record{sparse, rich})

			Convey("Then the more complete record survives", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Summary, ShouldEqual, "Open-world RPG.")
			})
		})

		Convey("When duplicates are equally complete", func() {
			first := model.Record{ProviderID: "7", Name: "First Seen"}
			second := model.Record{ProviderID: "7", Name: "Second Seen"}
			out := merger.Dedupe([]model.Record{first, second})

			Convey("Then the first-seen record is kept", func() {
				So(out, ShouldHaveLength, 1)
				So(out[0].Name, ShouldEqual, "First Seen")
			})
		})

		Convey("When identities differ", func() {
			out := merger.Dedupe([]model.Record{
				{ProviderID: "1", Name: "A"},
				{LocalID: "1", Name: "B"},
				{ProviderID: "2", Name: "C"},
			})

			Convey("Then nothing is merged", func() {
				So(out, ShouldHaveLength, 3)
			})
		})

		Convey("When records carry no identity at all", func() {
			out := merger.Dedupe([]model.Record{
				{Name: "Ghost One"},
				{Name: "Ghost Two"},
			})

			Convey("Then they pass through untouched", func() {
				So(out, ShouldHaveLength, 2)
			})
		})

		Convey("When applied twice", func() {
			in := []model.Record{
				{ProviderID: "1", Name: "A"},
				{ProviderID: "1", Name: "A", Summary: "richer"},
				{ProviderID: "2", Name: "B"},
			}
			once := merger.Dedupe(in)
			twice := merger.Dedupe(once)

			Convey("Then the result is unchanged", func() {
				So(twice, ShouldResemble, once)
			})
		})

		Convey("When the input is empty or a single record", func() {
			So(merger.Dedupe(nil), ShouldBeEmpty)
			So(merger.Dedupe([]model.Record{{ProviderID: "9", Name: "Solo"}}), ShouldHaveLength, 1)
		})
	})
}
