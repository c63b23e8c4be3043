// Package emissions implements the GHG calculator engine: spherical-zone
// area, per-capita and per-area emissions, density ranking, and
// terrain-classed growth projection. Every function is pure over
// domain values.
package emissions

import (
	"math"

	"github.com/tutu-network/ghgcalc/internal/domain"
)

const (
	// EarthRadiusKm is the Earth's mean radius.
	EarthRadiusKm = 6371.0

	// earthArea is R²·π; a full latitude band spans 2·earthArea·Δsin(lat).
	earthArea = EarthRadiusKm * EarthRadiusKm * math.Pi
)

// Area returns the surface area in km² of the spherical zone between the
// rectangle's latitudes, scaled by its longitude width over 360°.
// Bounds are not validated.
func Area(r domain.GeoRect) float64 {
	zone := 2 * earthArea * (math.Sin(radians(r.HiLat)) - math.Sin(radians(r.LoLat)))
	return zone * r.WidthDegrees() / 360
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
