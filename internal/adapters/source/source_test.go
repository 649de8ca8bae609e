package source_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/ludex/internal/adapters/source"
	"github.com/okian/ludex/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// failing is a Supplier that always errors.
type failing struct{ name string }

func (f *failing) Name() string { return f.name }

func (f *failing) Search(context.Context, string) ([]model.Record, error) {
	return nil, errors.New("upstream unavailable")
}

func TestFixture_Search(t *testing.T) {
	Convey("Given a fixture supplier over the sample catalog", t, func() {
		f := source.NewFixture("local", source.SampleCatalog())
		ctx := context.Background()

		Convey("When searching by name substring", func() {
			recs, err := f.Search(ctx, "mario")

			Convey("Then every mario record matches", func() {
				So(err, ShouldBeNil)
				So(len(recs), ShouldEqual, 3)
			})
		})

		Convey("When the query matches a genre", func() {
			recs, err := f.Search(ctx, "racing")

			Convey("Then genre labels are searched too", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 1)
				So(recs[0].Name, ShouldEqual, "Mario Kart 8 Deluxe")
			})
		})

		Convey("When matching is case-insensitive", func() {
			upper, err := f.Search(ctx, "WITCHER")
			So(err, ShouldBeNil)
			lower, err := f.Search(ctx, "witcher")
			So(err, ShouldBeNil)

			Convey("Then both forms return the same records", func() {
				So(upper, ShouldResemble, lower)
				So(len(upper), ShouldEqual, 2)
			})
		})

		Convey("When the query matches nothing", func() {
			recs, err := f.Search(ctx, "tetris")

			Convey("Then the result is empty without error", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldBeEmpty)
			})
		})

		Convey("When the query is blank", func() {
			recs, err := f.Search(ctx, "   ")

			Convey("Then nothing is returned", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldBeEmpty)
			})
		})

		Convey("When the context is already canceled", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := f.Search(canceled, "mario")

			Convey("Then the cancellation propagates", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given records without any identity", t, func() {
		f := source.NewFixture("local", []model.Record{{Name: "Orphan Game"}})

		Convey("When they are served", func() {
			recs, err := f.Search(context.Background(), "orphan")

			Convey("Then a local id was generated for deduplication", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 1)
				So(recs[0].LocalID, ShouldNotBeEmpty)
			})
		})
	})
}

func TestMerged_Search(t *testing.T) {
	Convey("Given two healthy suppliers", t, func() {
		a := source.NewFixture("store", []model.Record{{LocalID: "a1", Name: "Quiet Valley"}})
		b := source.NewFixture("provider", []model.Record{{ProviderID: "b1", Name: "Quiet Valley Remix"}})
		m := source.NewMerged([]source.Supplier{a, b})

		Convey("When a query fans out", func() {
			recs, err := m.Search(context.Background(), "quiet")

			Convey("Then both result sets are concatenated", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 2)
			})
		})
	})

	Convey("Given one healthy and one failing supplier", t, func() {
		healthy := source.NewFixture("store", []model.Record{{LocalID: "a1", Name: "Quiet Valley"}})
		m := source.NewMerged([]source.Supplier{healthy, &failing{name: "provider"}})

		Convey("When a query fans out", func() {
			recs, err := m.Search(context.Background(), "quiet")

			Convey("Then partial results come back without error", func() {
				So(err, ShouldBeNil)
				So(recs, ShouldHaveLength, 1)
			})
		})
	})

	Convey("Given only failing suppliers", t, func() {
		m := source.NewMerged([]source.Supplier{&failing{name: "one"}, &failing{name: "two"}})

		Convey("When a query fans out", func() {
			_, err := m.Search(context.Background(), "quiet")

			Convey("Then the aggregate failure is reported", func() {
				So(err, ShouldWrap, source.ErrAllSuppliersFailed)
			})
		})
	})

	Convey("Given no suppliers at all", t, func() {
		m := source.NewMerged(nil)

		Convey("When a query is attempted", func() {
			_, err := m.Search(context.Background(), "quiet")

			Convey("Then a configuration error is returned", func() {
				So(err, ShouldWrap, source.ErrNoSuppliers)
			})
		})
	})
}
