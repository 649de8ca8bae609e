package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/ludex/internal/adapters/http/api"
	service "github.com/okian/ludex/internal/app"
	"github.com/okian/ludex/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(service.New()).Register(context.Background(), mux)
	return mux
}

func doGet(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearchEndpoint(t *testing.T) {
	Convey("Given the API over a default service", t, func() {
		mux := newTestMux()

		Convey("When searching for mario", func() {
			rec := doGet(mux, "/search?q=mario&limit=10")

			Convey("Then ranked results are returned as JSON", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldContainSubstring, "application/json")

				var resp struct {
					Query   string               `json:"query"`
					Results []model.ScoredRecord `json:"results"`
					Stats   service.SearchStats  `json:"stats"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Query, ShouldEqual, "mario")
				So(len(resp.Results), ShouldEqual, 3)
				So(resp.Results[0].Record.Name, ShouldEqual, "Super Mario Odyssey")
				So(resp.Results[0].Signals, ShouldNotBeEmpty)
				So(resp.Stats.TraceID, ShouldNotBeEmpty)
			})
		})

		Convey("When the query matches nothing", func() {
			rec := doGet(mux, "/search?q=tetrisclone")

			Convey("Then the results array is empty, not null", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"results":[]`)
			})
		})

		Convey("When the query is missing", func() {
			rec := doGet(mux, "/search")

			Convey("Then the request is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "bad_request")
			})
		})

		Convey("When the limit is not a number", func() {
			rec := doGet(mux, "/search?q=mario&limit=abc")

			Convey("Then the request is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the limit is negative", func() {
			rec := doGet(mux, "/search?q=mario&limit=-3")

			Convey("Then the request is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the method is not GET", func() {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/search?q=mario", nil))

			Convey("Then the route does not answer", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestVisibilityEndpoint(t *testing.T) {
	Convey("Given the API over a default service", t, func() {
		mux := newTestMux()

		Convey("When asking about a block-all company", func() {
			rec := doGet(mux, "/visibility?publisher=Nintendo")

			Convey("Then fan content is hidden", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"hidden":true`)
			})
		})

		Convey("When asking about an unknown company", func() {
			rec := doGet(mux, "/visibility?developer=Indie%20Developer")

			Convey("Then fan content stays visible", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"hidden":false`)
			})
		})

		Convey("When both parameters are missing", func() {
			rec := doGet(mux, "/visibility")

			Convey("Then the request is rejected", func() {
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given the API over a default service", t, func() {
		mux := newTestMux()

		Convey("When stats are requested", func() {
			rec := doGet(mux, "/stats")

			Convey("Then operational counters are returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `"activeConfig":"default"`)
			})
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the API over a default service", t, func() {
		mux := newTestMux()

		Convey("When liveness is probed", func() {
			rec := doGet(mux, "/healthz")

			Convey("Then the scrape answers", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}
