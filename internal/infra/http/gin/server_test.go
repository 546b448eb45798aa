package ginserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"innsync/internal/app/dto"
	inventoryapp "innsync/internal/app/handlers/inventory"
	syncapp "innsync/internal/app/handlers/sync"
	chartapp "innsync/internal/app/handlers/tapechart"
	"innsync/internal/domain/channels"
	"innsync/internal/domain/rates"
	"innsync/internal/domain/shared/money"
	"innsync/internal/infra/config"
	"innsync/internal/infra/obs"
	"innsync/internal/infra/storage/memory"
)

type stubTransport struct {
	result channels.SyncResult
}

func (t *stubTransport) Deliver(ctx context.Context, p channels.Payload) channels.SyncResult {
	return t.result
}

func testRouter(t *testing.T, transport syncapp.Transport) http.Handler {
	t.Helper()

	source := memory.NewSource()
	memory.SeedDemo(source, "p1", "PLN", "2026-02-09")

	build := &inventoryapp.BuildHandler{
		Source:       source,
		Weekend:      rates.DefaultWeekend,
		DefaultPrice: money.Money{Amount: 10000, Currency: "PLN"},
	}
	server := NewServer(
		config.Config{Env: "test", HTTPAddr: ":0"},
		obs.Middleware{},
		obs.HealthHandlers{},
		Handlers{
			Inventory: InventoryHandler{Build: build},
			Chart:     ChartHandler{Chart: &chartapp.GetChartHandler{Source: source}},
			Sync: SyncHandler{Sync: &syncapp.Handler{
				Inventory: build,
				Export:    channels.ExportOptions{Currency: "PLN"},
				Transport: transport,
			}},
		},
	)
	return server.Handler
}

func TestHealthEndpoints(t *testing.T) {
	router := testRouter(t, &stubTransport{})
	for _, path := range []string{"/livez", "/readyz"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestGetInventory(t *testing.T) {
	router := testRouter(t, &stubTransport{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/p1/inventory?from=2026-02-09&to=2026-02-12", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body dto.Inventory
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body.PropertyID != "p1" || len(body.Lines) == 0 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetInventoryBadInput(t *testing.T) {
	router := testRouter(t, &stubTransport{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/p1/inventory?from=bogus&to=2026-02-12", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/p1/inventory?from=2026-02-12&to=2026-02-09", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/p1/inventory?from=2026-02-09&to=2026-02-12&channel=hrs", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown channel, got %d", rec.Code)
	}
}

func TestGetTapeChart(t *testing.T) {
	router := testRouter(t, &stubTransport{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/p1/tape-chart?from=2026-02-09&to=2026-02-12", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body dto.Chart
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Days) != 4 || len(body.Rows) != 8 {
		t.Fatalf("unexpected chart shape: %d days, %d rows", len(body.Days), len(body.Rows))
	}
	if len(body.Summary) != 4 {
		t.Fatalf("expected a summary entry per day, got %d", len(body.Summary))
	}
}

func TestGetOccupancy(t *testing.T) {
	router := testRouter(t, &stubTransport{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties/p1/occupancy?from=2026-02-09&to=2026-02-10", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body dto.Occupancy
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(body.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(body.Days))
	}
}

func TestTriggerSync(t *testing.T) {
	router := testRouter(t, &stubTransport{result: channels.SyncResult{Success: true, Message: "ok"}})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/properties/p1/sync/booking_com?from=2026-02-09&to=2026-02-12", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var res channels.SyncResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !res.Success || res.Channel != channels.BookingCom || res.Records == 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestTriggerSyncRejection(t *testing.T) {
	router := testRouter(t, &stubTransport{result: channels.SyncResult{Success: false, Message: "rejected"}})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/properties/p1/sync/booking_com?from=2026-02-09&to=2026-02-12", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestTriggerSyncUnknownChannel(t *testing.T) {
	router := testRouter(t, &stubTransport{})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/properties/p1/sync/hrs?from=2026-02-09&to=2026-02-12", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
