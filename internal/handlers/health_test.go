package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/laredoma/storefront/pkg/logger"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name         string
		sessions     Pinger
		wantStatus   int
		wantHealth   string
		wantSessions string
	}{
		{"memory store", nil, http.StatusOK, "healthy", "memory"},
		{"redis reachable", stubPinger{}, http.StatusOK, "healthy", "redis"},
		{"redis down", stubPinger{err: errors.New("connection refused")}, http.StatusServiceUnavailable, "degraded", "redis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(logger.New("error"), tt.sessions)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Status != tt.wantHealth {
				t.Errorf("expected status %q, got %q", tt.wantHealth, resp.Status)
			}
			if resp.Sessions != tt.wantSessions {
				t.Errorf("expected sessions %q, got %q", tt.wantSessions, resp.Sessions)
			}
			if resp.Version != Version {
				t.Errorf("expected version %s, got %s", Version, resp.Version)
			}
		})
	}
}
