// Package shipping prices deliveries from the store by distance.
package shipping

import (
	"github.com/laredoma/storefront/internal/geo"
	"github.com/shopspring/decimal"
)

// Rates configures the shipping formula
type Rates struct {
	PerKm                 decimal.Decimal
	Minimum               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

// DefaultRates are $0.80/km with a $2 floor, free from a $10 subtotal
func DefaultRates() Rates {
	return Rates{
		PerKm:                 decimal.RequireFromString("0.80"),
		Minimum:               decimal.RequireFromString("2.00"),
		FreeShippingThreshold: decimal.RequireFromString("10.00"),
	}
}

// Quote is the priced result of a shipping estimate
type Quote struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	Shipping      decimal.Decimal `json:"shipping"`
	Total         decimal.Decimal `json:"total"`
	DistanceKm    *float64        `json:"distanceKm,omitempty"`
	FreeShipping  bool            `json:"freeShipping"`
	NeedsLocation bool            `json:"needsLocation"`
}

// Estimator computes shipping cost from the store to a customer coordinate
type Estimator struct {
	store geo.Coordinate
	rates Rates
}

// NewEstimator creates an estimator anchored at the store location
func NewEstimator(store geo.Coordinate, rates Rates) *Estimator {
	return &Estimator{
		store: store,
		rates: rates,
	}
}

// Store returns the fulfillment point distances are measured from
func (e *Estimator) Store() geo.Coordinate {
	return e.store
}

// IsFree reports whether the subtotal qualifies for free shipping
func (e *Estimator) IsFree(subtotal decimal.Decimal) bool {
	return subtotal.GreaterThanOrEqual(e.rates.FreeShippingThreshold)
}

// CostForDistance returns max(minimum, km × rate) rounded to cents, or zero when shipping is free
func (e *Estimator) CostForDistance(subtotal decimal.Decimal, km float64) decimal.Decimal {
	if e.IsFree(subtotal) {
		return decimal.Zero
	}

	cost := decimal.NewFromFloat(km).Mul(e.rates.PerKm).Round(2)
	if cost.LessThan(e.rates.Minimum) {
		return e.rates.Minimum
	}
	return cost
}

// Estimate prices a delivery to dest; a nil dest yields no charge and NeedsLocation
func (e *Estimator) Estimate(subtotal decimal.Decimal, dest *geo.Coordinate) Quote {
	q := Quote{
		Subtotal: subtotal,
		Shipping: decimal.Zero,
		Total:    subtotal,
	}

	if dest != nil {
		km := geo.Distance(e.store, *dest)
		q.DistanceKm = &km
		q.Shipping = e.CostForDistance(subtotal, km)
		q.Total = subtotal.Add(q.Shipping)
	} else {
		q.NeedsLocation = true
	}

	q.FreeShipping = e.IsFree(subtotal)
	return q
}
