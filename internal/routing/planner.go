// Package routing resolves the delivery route between the store and a customer.
package routing

import (
	"context"
	"log/slog"

	"github.com/laredoma/storefront/internal/geo"
)

// Route is a polyline from the store to the customer
type Route struct {
	Points      []geo.Coordinate `json:"points"`
	DistanceKm  float64          `json:"distanceKm"`
	DurationSec float64          `json:"durationSec,omitempty"`
	// Fallback is set when the routing service failed and Points is a straight line
	Fallback bool `json:"fallback"`
}

// fetcher is the routing service call the planner depends on
type fetcher interface {
	Fetch(ctx context.Context, from, to geo.Coordinate) (*Route, error)
}

// Planner returns a route, degrading to a straight line when the service is unavailable
type Planner struct {
	fetcher fetcher
	log     *slog.Logger
}

// NewPlanner creates a planner over the given routing client
func NewPlanner(f fetcher, log *slog.Logger) *Planner {
	return &Planner{
		fetcher: f,
		log:     log,
	}
}

// Route never fails: any fetch error yields a dashed straight line between the two points
func (p *Planner) Route(ctx context.Context, from, to geo.Coordinate) Route {
	if p.fetcher != nil {
		route, err := p.fetcher.Fetch(ctx, from, to)
		if err == nil {
			return *route
		}
		p.log.Warn("route fetch failed, using straight line",
			"from", from.String(),
			"to", to.String(),
			"error", err,
		)
	}

	return StraightLine(from, to)
}

// StraightLine is the two-point fallback route
func StraightLine(from, to geo.Coordinate) Route {
	return Route{
		Points:     []geo.Coordinate{from, to},
		DistanceKm: geo.Distance(from, to),
		Fallback:   true,
	}
}
