package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Robiul7575/fnfrobeul1/internal/config"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "  value  ")
	t.Setenv("X_BOOL", "on")
	t.Setenv("X_FLOAT", "0.25")
	t.Setenv("X_EMPTY", "   ")

	if got := envOrDefault("X_STR", "fallback"); got != "value" {
		t.Fatalf("envOrDefault = %q", got)
	}
	if got := envOrDefault("X_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("envOrDefault blank = %q", got)
	}
	if !envBool("X_BOOL", false) {
		t.Fatal("envBool should parse on as true")
	}
	if envBool("X_MISSING", false) {
		t.Fatal("envBool should fall back for missing key")
	}
	if got := envFloat("X_FLOAT", 1); got != 0.25 {
		t.Fatalf("envFloat = %v", got)
	}
	if got := envFloat("X_EMPTY", 1); got != 1 {
		t.Fatalf("envFloat blank = %v", got)
	}
}

func TestAllowedOriginsDefaultsToWildcard(t *testing.T) {
	if got := allowedOrigins(&config.Config{}); len(got) != 1 || got[0] != "*" {
		t.Fatalf("allowedOrigins = %v", got)
	}
	cfg := &config.Config{CORSAllowedOrigins: []string{"https://shop.local"}}
	if got := allowedOrigins(cfg); len(got) != 1 || got[0] != "https://shop.local" {
		t.Fatalf("allowedOrigins = %v", got)
	}
}

func TestProtectPprof(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	open := protectPprof(inner, "", "")
	rec := httptest.NewRecorder()
	open.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("unprotected handler status = %d", rec.Code)
	}

	guarded := protectPprof(inner, "ops", "secret")

	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing credentials status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil)
	req.SetBasicAuth("ops", "secret")
	rec = httptest.NewRecorder()
	guarded.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid credentials status = %d", rec.Code)
	}
}
