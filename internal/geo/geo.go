// Package geo holds coordinates and great-circle distance math.
package geo

import (
	"fmt"
	"math"
	"net/url"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances
const EarthRadiusKm = 6371.0

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate is a finite point on the globe
func (c Coordinate) Valid() bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lng) {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

// Distance returns the great-circle surface distance between a and b in kilometers
func Distance(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	// floating point error can push h just past 1 for antipodal points
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NavigationLinks are deep links a courier can open to navigate to a destination
type NavigationLinks struct {
	GoogleMaps string `json:"googleMaps"`
	Waze       string `json:"waze"`
}

// LinksTo builds Google Maps and Waze navigation links for dest
func LinksTo(dest Coordinate) NavigationLinks {
	ll := fmt.Sprintf("%v,%v", dest.Lat, dest.Lng)

	google := url.Values{}
	google.Set("api", "1")
	google.Set("destination", ll)

	waze := url.Values{}
	waze.Set("ll", ll)
	waze.Set("navigate", "yes")

	return NavigationLinks{
		GoogleMaps: "https://www.google.com/maps/dir/?" + google.Encode(),
		Waze:       "https://waze.com/ul?" + waze.Encode(),
	}
}
