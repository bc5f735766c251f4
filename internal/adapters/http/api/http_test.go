package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/shelfwatch/internal/adapters/http/api"
	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/types"
)

type stubDeps struct {
	records []model.InventoryRecord
}

func (s *stubDeps) Inventory(ctx context.Context) []model.InventoryRecord {
	return s.records
}

type stubStats struct{}

func (s *stubStats) Stats() api.Stats {
	return api.Stats{
		ConfidenceThreshold: 0.9,
		LowStockThreshold:   10,
		AuditLogPath:        "ml/audit_log.jsonl",
		InventoryItems:      2,
	}
}

func newTestServer() *httptest.Server {
	deps := &stubDeps{records: []model.InventoryRecord{
		{ID: 1, Name: "Arduino Kit", Quantity: 5, Category: "Hardware", Status: types.StatusAvailable},
		{ID: 2, Name: "USB Cable", Quantity: 3, Category: "Hardware", Status: types.StatusAvailable},
	}}
	mux := http.NewServeMux()
	api.NewServer(deps, &stubStats{}).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func TestInventoryEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When GETting /api/inventory", func() {
			resp, err := http.Get(srv.URL + "/api/inventory")
			So(err, ShouldBeNil)
			defer func() {
				_ = resp.Body.Close()
			}()

			Convey("Then the record set is served as JSON", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "application/json")

				var records []model.InventoryRecord
				So(json.NewDecoder(resp.Body).Decode(&records), ShouldBeNil)
				So(records, ShouldHaveLength, 2)
				So(records[0].Name, ShouldEqual, "Arduino Kit")
			})
		})

		Convey("When POSTing to /api/inventory", func() {
			resp, err := http.Post(srv.URL+"/api/inventory", "application/json", nil)
			So(err, ShouldBeNil)
			defer func() {
				_ = resp.Body.Close()
			}()

			Convey("Then the method is rejected", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestStatsEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When GETting /stats", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			defer func() {
				_ = resp.Body.Close()
			}()

			Convey("Then the provider's snapshot is served", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)

				var stats api.Stats
				So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
				So(stats.ConfidenceThreshold, ShouldEqual, 0.9)
				So(stats.AuditLogPath, ShouldEqual, "ml/audit_log.jsonl")
			})
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer()
		defer srv.Close()

		Convey("When GETting /healthz", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer func() {
				_ = resp.Body.Close()
			}()

			Convey("Then the metrics exposition is served", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})
	})
}
