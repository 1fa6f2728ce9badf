package fio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"prunflow/config"
)

func testConfig(url, cacheDir string) *config.Config {
	cfg := &config.Config{}
	cfg.FIO.URLRoot = url
	cfg.FIO.CacheDir = cacheDir
	cfg.FIO.CacheTTL = config.Duration(360 * time.Second)
	cfg.FIO.RateLimit.RequestsPerSecond = 1000
	cfg.FIO.RateLimit.BurstSize = 100
	return cfg
}

func TestRetryBackoffSchedule(t *testing.T) {
	delays := []time.Duration{}
	for b := DefaultBackoff(); b.Active(); b = b.Next() {
		delays = append(delays, b.Delay())
	}
	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		1600 * time.Millisecond,
	}
	if len(delays) != len(want) {
		t.Fatalf("got %d delays, want %d: %v", len(delays), len(want), delays)
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("delay %d = %v, want %v", i, delays[i], want[i])
		}
	}
	if Never().Active() {
		t.Errorf("Never should not be active")
	}
}

func TestFetchRetriesOnTooManyRequests(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"PlanetNaturalId":"OT-580b"}`))
	}))
	defer srv.Close()

	c := NewClientWithToken(testConfig(srv.URL, ""), "token")
	p, err := c.Planet(context.Background(), "OT-580b")
	if err != nil {
		t.Fatalf("Planet: %v", err)
	}
	if p == nil || p.NaturalID != "OT-580b" {
		t.Fatalf("unexpected planet %+v", p)
	}
	if got := atomic.LoadInt32(&attempts); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestFetchFailsAfterRetriesExhausted(t *testing.T) {
	var attempts int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClientWithToken(testConfig(srv.URL, ""), "token")
	_, err := c.Planet(context.Background(), "OT-580b")
	if !errors.Is(err, ErrTooManyRetries) {
		t.Fatalf("err = %v, want ErrTooManyRetries", err)
	}
	// Initial attempt plus one per issued delay.
	if got := atomic.LoadInt32(&attempts); got != 6 {
		t.Errorf("attempts = %d, want 6", got)
	}
}

func TestFetchNonSuccessFailsImmediately(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithToken(testConfig(srv.URL, ""), "token")
	_, err := c.Planet(context.Background(), "OT-580b")
	if err == nil || !strings.Contains(err.Error(), "request not successful: 500") {
		t.Fatalf("err = %v, want request not successful", err)
	}
}

func TestEmptyBodyErrorStatusFails(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewClientWithToken(testConfig(srv.URL, ""), "token")
		p, err := c.Planet(context.Background(), "OT-580b")
		srv.Close()
		if err == nil {
			t.Fatalf("status %d: expected error, got planet %+v", status, p)
		}
		if !strings.Contains(err.Error(), "request not successful") {
			t.Errorf("status %d: err = %v, want request not successful", status, err)
		}
	}
}

func TestAbsenceIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClientWithToken(testConfig(srv.URL, ""), "token")
	m, err := c.LocalMarket(context.Background(), "OT-580b")
	if err != nil {
		t.Fatalf("LocalMarket: %v", err)
	}
	if m != nil {
		t.Errorf("expected absent local market, got %+v", m)
	}
}

func TestDiskCacheServesSecondRequest(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"PlanetNaturalId":"UV-351a","PlanetName":"Katoa"}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClientWithToken(testConfig(srv.URL, dir), "token")

	for i := 0; i < 2; i++ {
		p, err := c.Planet(context.Background(), "UV-351a")
		if err != nil {
			t.Fatalf("Planet call %d: %v", i, err)
		}
		if p.Name != "Katoa" {
			t.Fatalf("call %d: unexpected planet %+v", i, p)
		}
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("upstream hits = %d, want 1", got)
	}

	data, err := os.ReadFile(filepath.Join(dir, "planet_UV-351a.json"))
	if err != nil {
		t.Fatalf("cache file: %v", err)
	}
	if !strings.Contains(string(data), "\n") {
		t.Errorf("cache file should be pretty-printed: %q", data)
	}
}

func TestCachePathSlug(t *testing.T) {
	got := cachePath("/tmp/cache", "/storage/user/planet/")
	want := filepath.Join("/tmp/cache", "storage_user_planet.json")
	if got != want {
		t.Errorf("cachePath = %q, want %q", got, want)
	}
}

func TestStaleCacheIgnored(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"PlanetNaturalId":"UV-351a"}`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := NewClientWithToken(testConfig(srv.URL, dir), "token")

	if _, err := c.Planet(context.Background(), "UV-351a"); err != nil {
		t.Fatalf("Planet: %v", err)
	}
	path := filepath.Join(dir, "planet_UV-351a.json")
	old := time.Now().Add(-10 * time.Minute)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	if _, err := c.Planet(context.Background(), "UV-351a"); err != nil {
		t.Fatalf("Planet after expiry: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Errorf("upstream hits = %d, want 2", got)
	}
}

func TestLoginFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(context.Background(), testConfig(srv.URL, ""), "user", "wrong")
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Fatalf("err = %v, want ErrAuthenticationFailed", err)
	}
}

func TestLoginStoresTokenAndExpiry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			w.Write([]byte(`{"AuthToken":"abc123","Expiry":"2026-09-02T12:00:00Z"}`))
			return
		}
		if r.Header.Get("Authorization") != "abc123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), testConfig(srv.URL, ""), "user", "pass")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.Expiry() == nil || c.Expiry().Format(time.RFC3339) != "2026-09-02T12:00:00Z" {
		t.Errorf("unexpected expiry %v", c.Expiry())
	}
	if !c.IsAuth(context.Background()) {
		t.Errorf("IsAuth should succeed with stored token")
	}
}
