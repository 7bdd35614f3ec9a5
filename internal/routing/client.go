package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/laredoma/storefront/internal/geo"
)

var ErrNoRoute = errors.New("routing service returned no route")

// Client fetches driving routes from an OSRM-compatible HTTP service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a routing client for baseURL with a per-request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// osrmResponse is the subset of the OSRM route response we read
type osrmResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lng, lat]
		} `json:"geometry"`
	} `json:"routes"`
}

// Fetch requests the driving route from -> to
func (c *Client) Fetch(ctx context.Context, from, to geo.Coordinate) (*Route, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%v,%v;%v,%v?overview=full&geometries=geojson",
		c.baseURL, from.Lng, from.Lat, to.Lng, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch route: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode route: %w", err)
	}

	if body.Code != "Ok" {
		return nil, fmt.Errorf("%w: %s %s", ErrNoRoute, body.Code, body.Message)
	}
	if len(body.Routes) == 0 || len(body.Routes[0].Geometry.Coordinates) < 2 {
		return nil, ErrNoRoute
	}

	r := body.Routes[0]
	points := make([]geo.Coordinate, 0, len(r.Geometry.Coordinates))
	for _, pair := range r.Geometry.Coordinates {
		if len(pair) < 2 {
			return nil, fmt.Errorf("%w: malformed coordinate", ErrNoRoute)
		}
		points = append(points, geo.Coordinate{Lat: pair[1], Lng: pair[0]})
	}

	return &Route{
		Points:      points,
		DistanceKm:  r.Distance / 1000,
		DurationSec: r.Duration,
	}, nil
}
