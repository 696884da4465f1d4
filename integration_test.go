package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"breakeven/internal/config"
	"breakeven/internal/testutil"
)

// tesouroServer mimics the Tesouro Direto site: a listing page and the bond API
type tesouroServer struct {
	*httptest.Server
	pageHits atomic.Int32
	apiHits  atomic.Int32
}

func newTesouroServer(t *testing.T, pageStatus int, page string) *tesouroServer {
	t.Helper()
	s := &tesouroServer{}
	mux := http.NewServeMux()
	mux.HandleFunc("/titulos/precos-e-taxas.htm", func(w http.ResponseWriter, r *http.Request) {
		s.pageHits.Add(1)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(pageStatus)
		w.Write([]byte(page))
	})
	mux.HandleFunc("/json/treasurybondsinfo.json", func(w http.ResponseWriter, r *http.Request) {
		s.apiHits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(testutil.APIPayload))
	})
	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

func (s *tesouroServer) config() *config.Config {
	return &config.Config{
		PageURL:           s.URL + "/titulos/precos-e-taxas.htm",
		APIURL:            s.URL + "/json/treasurybondsinfo.json",
		UserAgent:         "integration-test",
		RequestTimeout:    5 * time.Second,
		RunTimeout:        30 * time.Second,
		RetryCount:        0,
		RequestsPerSecond: 0,
		LogLevel:          "info",
	}
}

// TestIntegration_EmbeddedJSON tests the full flow when the page carries embedded JSON
func TestIntegration_EmbeddedJSON(t *testing.T) {
	srv := newTesouroServer(t, http.StatusOK, testutil.EmbeddedJSONPage)

	var out bytes.Buffer
	if err := run(context.Background(), srv.config(), &out); err != nil {
		t.Fatalf("run() returned unexpected error: %v", err)
	}

	report := out.String()
	wants := []string{
		"Pair 1: Tesouro Prefixado 2027 vs Tesouro IPCA+ 2029",
		"Pair 2: Tesouro Prefixado 2031 vs Tesouro IPCA+ 2029",
		"13.45",
		"7.38",
	}
	for _, want := range wants {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n%s", want, report)
		}
	}

	if got := srv.pageHits.Load(); got != 1 {
		t.Errorf("page hits = %d, want 1", got)
	}
	if got := srv.apiHits.Load(); got != 0 {
		t.Errorf("api hits = %d, want 0", got)
	}
}

// TestIntegration_APIFallback tests that an unusable page falls through to the API
func TestIntegration_APIFallback(t *testing.T) {
	srv := newTesouroServer(t, http.StatusOK, testutil.EmptyPage)

	var out bytes.Buffer
	if err := run(context.Background(), srv.config(), &out); err != nil {
		t.Fatalf("run() returned unexpected error: %v", err)
	}

	if got := srv.apiHits.Load(); got != 1 {
		t.Errorf("api hits = %d, want 1", got)
	}
	// 13.70 is the redemption rate the API falls back to for Prefixado 2031
	if !strings.Contains(out.String(), "13.70") {
		t.Errorf("report missing API bond rate:\n%s", out.String())
	}
}

// TestIntegration_PageBlocked tests that a failed page fetch never reaches the API
func TestIntegration_PageBlocked(t *testing.T) {
	srv := newTesouroServer(t, http.StatusForbidden, "blocked")

	var out bytes.Buffer
	if err := run(context.Background(), srv.config(), &out); err != nil {
		t.Fatalf("run() returned unexpected error: %v", err)
	}

	if got := srv.apiHits.Load(); got != 0 {
		t.Errorf("api hits = %d, want 0", got)
	}
	if out.Len() != 0 {
		t.Errorf("report = %q, want nothing without sample fallback", out.String())
	}
}

// TestIntegration_PageBlockedWithFallback tests the sample data fallback
func TestIntegration_PageBlockedWithFallback(t *testing.T) {
	srv := newTesouroServer(t, http.StatusForbidden, "blocked")
	cfg := srv.config()
	cfg.FallbackToSample = true

	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run() returned unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "Tesouro Prefixado com Juros Semestrais 2035") {
		t.Errorf("report missing sample bond:\n%s", out.String())
	}
}

// TestIntegration_SampleMode tests that sample mode never touches the network
func TestIntegration_SampleMode(t *testing.T) {
	srv := newTesouroServer(t, http.StatusOK, testutil.EmbeddedJSONPage)
	cfg := srv.config()
	cfg.UseSample = true

	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run() returned unexpected error: %v", err)
	}

	if hits := srv.pageHits.Load() + srv.apiHits.Load(); hits != 0 {
		t.Errorf("server hits = %d, want 0", hits)
	}
	if !strings.Contains(out.String(), "IMPLICIT INFLATION ANALYSIS") {
		t.Errorf("report missing header:\n%s", out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() returned unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "breakeven dev") {
		t.Errorf("version output = %q", out.String())
	}
}
