package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.Shipping.RatePerKm != 0.80 || cfg.Shipping.Minimum != 2.00 || cfg.Shipping.FreeShippingThreshold != 10.00 {
		t.Errorf("unexpected shipping defaults: %+v", cfg.Shipping)
	}
	if cfg.Session.Backend != "memory" {
		t.Errorf("session backend = %s, want memory", cfg.Session.Backend)
	}
	if cfg.Routing.Timeout != 5*time.Second {
		t.Errorf("routing timeout = %v, want 5s", cfg.Routing.Timeout)
	}
	if cfg.Server.RequestTimeout != 60*time.Second {
		t.Errorf("request timeout = %v, want 60s", cfg.Server.RequestTimeout)
	}
	if cfg.Session.SweepInterval != 5*time.Minute {
		t.Errorf("sweep interval = %v, want 5m", cfg.Session.SweepInterval)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SHIPPING_RATE_PER_KM", "1.25")
	t.Setenv("ROUTING_TIMEOUT", "750ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://laredoma.shop")
	t.Setenv("SESSION_BACKEND", "REDIS")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REQUEST_TIMEOUT", "20s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Address() != "0.0.0.0:9090" {
		t.Errorf("address = %s", cfg.Address())
	}
	if cfg.Shipping.RatePerKm != 1.25 {
		t.Errorf("rate = %v, want 1.25", cfg.Shipping.RatePerKm)
	}
	if cfg.Routing.Timeout != 750*time.Millisecond {
		t.Errorf("routing timeout = %v", cfg.Routing.Timeout)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "https://laredoma.shop" {
		t.Errorf("origins = %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Session.Backend != "redis" || cfg.Session.TTL != 2*time.Hour {
		t.Errorf("session = %+v", cfg.Session)
	}
	if cfg.Server.RequestTimeout != 20*time.Second {
		t.Errorf("request timeout = %v, want 20s", cfg.Server.RequestTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad session backend", "SESSION_BACKEND", "memcached"},
		{"latitude out of range", "STORE_LAT", "91"},
		{"negative minimum", "SHIPPING_MINIMUM", "-1"},
		{"negative request timeout", "REQUEST_TIMEOUT", "-5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}
