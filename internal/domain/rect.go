// Package domain defines the value types of the GHG calculator.
// Every type here is an immutable, comparable value — no identity,
// no infrastructure dependency.
package domain

import (
	"fmt"
	"math"
)

// ─── GeoRect ────────────────────────────────────────────────────────────────

// GeoRect is a latitude/longitude rectangle in degrees.
// Width is |EastLong − WestLong|; crossing the antimeridian is unsupported.
type GeoRect struct {
	LoLat    float64 `json:"lo_lat" toml:"lo_lat" yaml:"lo_lat"`
	HiLat    float64 `json:"hi_lat" toml:"hi_lat" yaml:"hi_lat"`
	WestLong float64 `json:"west_long" toml:"west_long" yaml:"west_long"`
	EastLong float64 `json:"east_long" toml:"east_long" yaml:"east_long"`
}

// WidthDegrees returns the absolute longitude span of the rectangle.
func (r GeoRect) WidthDegrees() float64 {
	return math.Abs(r.EastLong - r.WestLong)
}

// Validate reports whether the bounds are usable for area calculations.
// The metric functions never call it; loaders do.
func (r GeoRect) Validate() error {
	for _, v := range []float64{r.LoLat, r.HiLat, r.WestLong, r.EastLong} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite coordinate", ErrInvalidRect)
		}
	}
	if r.LoLat < -90 || r.HiLat > 90 {
		return fmt.Errorf("%w: latitude outside [-90, 90]", ErrInvalidRect)
	}
	if r.LoLat > r.HiLat {
		return fmt.Errorf("%w: lo_lat %g above hi_lat %g", ErrInvalidRect, r.LoLat, r.HiLat)
	}
	if r.WestLong < -180 || r.WestLong > 180 || r.EastLong < -180 || r.EastLong > 180 {
		return fmt.Errorf("%w: longitude outside [-180, 180]", ErrInvalidRect)
	}
	return nil
}

// String renders the bounds as "lat lo..hi, long west..east".
func (r GeoRect) String() string {
	return fmt.Sprintf("lat %g..%g, long %g..%g", r.LoLat, r.HiLat, r.WestLong, r.EastLong)
}
