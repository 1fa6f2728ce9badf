package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"prunflow/config"
	"prunflow/internal/analysis"
	"prunflow/logger"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer(config.DashboardConfig{Enabled: true}, logger.Logger())
	if s == nil {
		t.Fatalf("enabled dashboard should not be nil")
	}
	return s
}

func TestDisabledServerIsNil(t *testing.T) {
	s := NewServer(config.DashboardConfig{Enabled: false}, logger.Logger())
	if s != nil {
		t.Fatalf("disabled dashboard should be nil")
	}
	// A nil server must be safe to drive.
	s.Publish(&Snapshot{})
	if err := s.Run(nil); err != nil {
		t.Fatalf("nil Run: %v", err)
	}
}

func TestHealthz(t *testing.T) {
	s := testServer(t)
	w := httptest.NewRecorder()
	s.buildRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", w.Code)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := testServer(t)
	s.Publish(&Snapshot{
		GeneratedAt: time.Now(),
		Planets: map[string]PlanetReport{
			"Katoa": {
				Planet:    "Katoa",
				NaturalID: "UV-351a",
				Resupply:  []analysis.ResupplyItem{{Ticker: "DW", AmountToBuy: 64}},
			},
		},
	})

	router := s.buildRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/planets/Katoa", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("planet status = %d", w.Code)
	}
	report := PlanetReport{}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.NaturalID != "UV-351a" || len(report.Resupply) != 1 {
		t.Errorf("report = %+v", report)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/planets/Nowhere", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown planet status = %d, want 404", w.Code)
	}
}

func TestNormalizeAddress(t *testing.T) {
	cases := map[string]string{
		"":               "127.0.0.1:8788",
		"0.0.0.0":        "0.0.0.0:8788",
		"127.0.0.1:9000": "127.0.0.1:9000",
		":9000":          ":9000",
	}
	for in, want := range cases {
		if got := normalizeAddress(in); got != want {
			t.Errorf("normalizeAddress(%q) = %q, want %q", in, got, want)
		}
	}
}
