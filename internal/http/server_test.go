package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"forecast/internal/core"
	"forecast/internal/forecast"
	"forecast/internal/providers/memory"
)

func amt(t *testing.T, s string) core.Amount {
	t.Helper()
	a, err := core.ParseAmount(s)
	if err != nil {
		t.Fatalf("ParseAmount(%q) error = %v", s, err)
	}
	return a
}

func newTestServer(t *testing.T, store *memory.Store) (*Server, *httptest.Server) {
	t.Helper()
	engine := forecast.NewEngine(store, nil)
	svc := forecast.NewService(store, engine, 2)
	srv := NewServer("127.0.0.1:0", svc, CacheConfig{Size: 8, TTL: time.Minute})
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return srv, ts
}

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.New()
	store.Seed("JOB-1", core.CostCode{ID: "03-100", Code: "03-100", Description: "Concrete"}, memory.Aggregates{
		BudgetPlusApprovedChangeOrders: amt(t, "1000"),
		CommittedPurchaseOrderLines:    amt(t, "400"),
		UnpostedInternalChangeCost:     amt(t, "50"),
	})
	return store
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("unmarshal %q: %v", body, err)
		}
	}
	return resp.StatusCode
}

func TestHandleProjectForecast(t *testing.T) {
	_, ts := newTestServer(t, seededStore(t))

	var got forecastResponse
	status := getJSON(t, ts.URL+"/api/projects/JOB-1/forecast", &got)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if got.ProjectID != "JOB-1" {
		t.Errorf("project_id = %q, want %q", got.ProjectID, "JOB-1")
	}
	if len(got.Headers) != 15 {
		t.Errorf("len(headers) = %d, want 15", len(got.Headers))
	}
	if len(got.Rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(got.Rows))
	}
	row := got.Rows[0]
	if row.CostCode != "03-100 — Concrete" {
		t.Errorf("cost code = %q, want %q", row.CostCode, "03-100 — Concrete")
	}
	if row.A.String() != "1000.00" {
		t.Errorf("A = %s, want 1000.00", row.A)
	}
	if row.D.String() != "50.00" {
		t.Errorf("D = %s, want 50.00 (pending included by default)", row.D)
	}
}

func TestHandleProjectForecast_ExcludePending(t *testing.T) {
	_, ts := newTestServer(t, seededStore(t))

	var got forecastResponse
	status := getJSON(t, ts.URL+"/api/projects/JOB-1/forecast?include_pending=false", &got)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if got.Rows[0].D.String() != "0.00" {
		t.Errorf("D = %s, want 0.00 when pending excluded", got.Rows[0].D)
	}
}

func TestHandleProjectForecast_BadParams(t *testing.T) {
	_, ts := newTestServer(t, seededStore(t))

	tests := []struct {
		name string
		path string
	}{
		{"bad include_pending", "/api/projects/JOB-1/forecast?include_pending=maybe"},
		{"bad alt_forecast", "/api/projects/JOB-1/forecast?alt_forecast=2x"},
		{"bad year", "/api/projects/JOB-1/forecast?year=abc&month=3"},
		{"month without year", "/api/projects/JOB-1/forecast?month=3"},
		{"month out of range", "/api/projects/JOB-1/forecast?year=2026&month=13"},
		{"blank project id", "/api/projects/%20/forecast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := getJSON(t, ts.URL+tt.path, nil)
			if status != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", status)
			}
		})
	}
}

func TestHandleProjectForecast_UnknownProjectEmpty(t *testing.T) {
	_, ts := newTestServer(t, seededStore(t))

	var got forecastResponse
	status := getJSON(t, ts.URL+"/api/projects/NOPE/forecast", &got)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(got.Rows) != 0 {
		t.Errorf("len(rows) = %d, want 0 for unknown project", len(got.Rows))
	}
}

func TestHandleProjectForecast_Caching(t *testing.T) {
	store := seededStore(t)
	_, ts := newTestServer(t, store)

	var first forecastResponse
	if status := getJSON(t, ts.URL+"/api/projects/JOB-1/forecast", &first); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}

	// A new cost code appears, but the cached report still answers.
	store.Seed("JOB-1", core.CostCode{ID: "09-900", Code: "09-900", Description: "Finishes"}, memory.Aggregates{})

	var second forecastResponse
	if status := getJSON(t, ts.URL+"/api/projects/JOB-1/forecast", &second); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(second.Rows) != len(first.Rows) {
		t.Errorf("cached rows = %d, want %d", len(second.Rows), len(first.Rows))
	}

	// Different flags miss the cache and see the new code.
	var fresh forecastResponse
	if status := getJSON(t, ts.URL+"/api/projects/JOB-1/forecast?alt_forecast=true", &fresh); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(fresh.Rows) != 2 {
		t.Errorf("fresh rows = %d, want 2", len(fresh.Rows))
	}
}

func TestHandleHeaders(t *testing.T) {
	_, ts := newTestServer(t, memory.New())

	var got struct {
		Headers []string `json:"headers"`
	}
	status := getJSON(t, ts.URL+"/api/forecast/headers", &got)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(got.Headers) != 15 {
		t.Fatalf("len(headers) = %d, want 15", len(got.Headers))
	}
	if got.Headers[0] != core.Headers[0].Label() {
		t.Errorf("headers[0] = %q, want %q", got.Headers[0], core.Headers[0].Label())
	}
}

func TestHealthEndpoints(t *testing.T) {
	_, ts := newTestServer(t, memory.New())

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("GET %s error = %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s status = %d, want 200", path, resp.StatusCode)
		}
	}
}
