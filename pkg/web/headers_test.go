// Copyright 2025 CampaignHQ Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"
)

func TestSecurityHeaders(t *testing.T) {
	baseline := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
	}

	testCases := []struct {
		name        string
		environment string
		expectHSTS  bool
	}{
		{name: "development omits HSTS", environment: "development", expectHSTS: false},
		{name: "staging omits HSTS", environment: "staging", expectHSTS: false},
		{name: "production sends HSTS", environment: "production", expectHSTS: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := SecurityHeaders(tc.environment)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			for header, expected := range baseline {
				if got := rec.Header().Get(header); got != expected {
					t.Errorf("%s: expected %q, got %q", header, expected, got)
				}
			}

			hsts := rec.Header().Get("Strict-Transport-Security")
			if tc.expectHSTS && hsts != hstsValue {
				t.Errorf("expected HSTS %q, got %q", hstsValue, hsts)
			}
			if !tc.expectHSTS && hsts != "" {
				t.Errorf("expected no HSTS header, got %q", hsts)
			}
		})
	}
}

func TestSecurityHeaders_OnNotFound(t *testing.T) {
	router := chi.NewMux()
	router.Use(SecurityHeaders("production"))
	router.Get("/known", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("security headers missing on not-found response")
	}
	if rec.Header().Get("Strict-Transport-Security") != hstsValue {
		t.Error("HSTS missing on not-found response")
	}
}
