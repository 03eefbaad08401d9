package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareDisabled(t *testing.T) {
	h := Middleware(Config{Enabled: false, Token: "secret"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/location", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("disabled auth status = %d, want 200", rec.Code)
	}
}

func TestMiddlewareExemptPaths(t *testing.T) {
	h := Middleware(Config{Enabled: true, Token: "secret"})(okHandler())

	paths := []string{
		"/healthz",
		"/readyz",
		"/metrics",
		"/api/v1/prayer-times",
		"/api/v1/fasting?date=2024-03-11",
		"/api/v1/visibility",
	}
	for _, p := range paths {
		req := httptest.NewRequest(http.MethodGet, p, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200 without token", p, rec.Code)
		}
	}
}

func TestMiddlewareEnforcesToken(t *testing.T) {
	h := Middleware(Config{Enabled: true, Token: "secret"})(okHandler())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic c2VjcmV0", http.StatusUnauthorized},
		{"wrong token", "Bearer wrong", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"valid token", "Bearer secret", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/location", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
