package shipping

import (
	"testing"

	"github.com/laredoma/storefront/internal/geo"
	"github.com/shopspring/decimal"
)

var store = geo.Coordinate{Lat: 7.9959, Lng: -62.3880}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCostForDistance(t *testing.T) {
	e := NewEstimator(store, DefaultRates())

	tests := []struct {
		name     string
		subtotal string
		km       float64
		want     string
	}{
		{"rate above minimum", "8", 5, "4.00"},
		{"minimum applies", "8", 1, "2.00"},
		{"zero distance still charges minimum", "3.50", 0, "2.00"},
		{"rounded to cents", "9.99", 7.333, "5.87"},
		{"at threshold is free", "10", 50, "0"},
		{"over threshold is free", "12", 500, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.CostForDistance(dec(tt.subtotal), tt.km)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("CostForDistance(%s, %v) = %s, want %s", tt.subtotal, tt.km, got, tt.want)
			}
		})
	}
}

func TestCostForDistance_NeverBelowMinimum(t *testing.T) {
	e := NewEstimator(store, DefaultRates())

	for km := 0.0; km < 20; km += 0.37 {
		got := e.CostForDistance(dec("9.99"), km)
		if got.LessThan(dec("2")) {
			t.Fatalf("cost %s below minimum at %v km", got, km)
		}
	}
}

func TestEstimate_FreeRegardlessOfDistance(t *testing.T) {
	e := NewEstimator(store, DefaultRates())

	destinations := []geo.Coordinate{
		store,
		{Lat: 8.1, Lng: -62.5},
		{Lat: -7.9959, Lng: 117.612},
	}

	for _, d := range destinations {
		d := d
		q := e.Estimate(dec("12"), &d)
		if !q.Shipping.IsZero() || !q.FreeShipping {
			t.Errorf("expected free shipping to %v, got %+v", d, q)
		}
		if !q.Total.Equal(dec("12")) {
			t.Errorf("total = %s, want 12", q.Total)
		}
	}
}

func TestEstimate_NoLocation(t *testing.T) {
	e := NewEstimator(store, DefaultRates())

	q := e.Estimate(dec("8"), nil)

	if !q.NeedsLocation {
		t.Error("expected NeedsLocation")
	}
	if !q.Shipping.IsZero() {
		t.Errorf("shipping = %s, want 0", q.Shipping)
	}
	if !q.Total.Equal(dec("8")) {
		t.Errorf("total = %s, want 8", q.Total)
	}
	if q.DistanceKm != nil {
		t.Errorf("distance = %v, want nil", *q.DistanceKm)
	}
}

func TestEstimate_WithLocation(t *testing.T) {
	e := NewEstimator(geo.Coordinate{Lat: 0, Lng: 0}, DefaultRates())

	// ~5.56 km east along the equator
	dest := geo.Coordinate{Lat: 0, Lng: 0.05}
	q := e.Estimate(dec("8"), &dest)

	if q.NeedsLocation || q.FreeShipping {
		t.Fatalf("unexpected flags: %+v", q)
	}
	if q.DistanceKm == nil || *q.DistanceKm < 5.5 || *q.DistanceKm > 5.6 {
		t.Fatalf("distance = %v", q.DistanceKm)
	}
	if !q.Shipping.Equal(dec("4.45")) {
		t.Errorf("shipping = %s, want 4.45", q.Shipping)
	}
	if !q.Total.Equal(dec("12.45")) {
		t.Errorf("total = %s, want 12.45", q.Total)
	}
}
