package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Pinger is a dependency the health check can ping
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger   *slog.Logger
	sessions Pinger
}

// NewHealthHandler creates a new health handler; sessions may be nil for the in-memory store
func NewHealthHandler(logger *slog.Logger, sessions Pinger) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		sessions: sessions,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Sessions  string    `json:"sessions"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Sessions:  "memory",
	}
	status := http.StatusOK

	if h.sessions != nil {
		response.Sessions = "redis"
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.sessions.Ping(ctx); err != nil {
			h.logger.Error("session store unreachable", "error", err)
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	WriteJSON(w, status, response, h.logger)
}
