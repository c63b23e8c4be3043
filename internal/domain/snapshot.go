package domain

import (
	"fmt"
	"math"
)

// ─── Region Snapshot ────────────────────────────────────────────────────────

// RegionSnapshot records a region's population and annual emissions
// (tons CO2-equivalent per year) in a given year.
type RegionSnapshot struct {
	Region     Region  `json:"region"`
	Year       int     `json:"year"`
	Population int64   `json:"population"`
	GHGRate    float64 `json:"ghg_rate"`
}

// WithYear returns a copy of s for a different year.
func (s RegionSnapshot) WithYear(year int) RegionSnapshot {
	s.Year = year
	return s
}

// WithPopulation returns a copy of s with a different population.
func (s RegionSnapshot) WithPopulation(pop int64) RegionSnapshot {
	s.Population = pop
	return s
}

// WithGHGRate returns a copy of s with a different emission rate.
func (s RegionSnapshot) WithGHGRate(rate float64) RegionSnapshot {
	s.GHGRate = rate
	return s
}

// Validate checks the snapshot's region and its non-negative quantities.
func (s RegionSnapshot) Validate() error {
	if err := s.Region.Rect.Validate(); err != nil {
		return fmt.Errorf("region %q: %w", s.Region.Name, err)
	}
	if !s.Region.Terrain.IsValid() {
		return fmt.Errorf("region %q: %w: %q", s.Region.Name, ErrUnknownTerrain, s.Region.Terrain)
	}
	if s.Population < 0 {
		return fmt.Errorf("%w: region %q has negative population %d",
			ErrInvalidSnapshot, s.Region.Name, s.Population)
	}
	if s.GHGRate < 0 || math.IsNaN(s.GHGRate) || math.IsInf(s.GHGRate, 0) {
		return fmt.Errorf("%w: region %q has ghg rate %g",
			ErrInvalidSnapshot, s.Region.Name, s.GHGRate)
	}
	return nil
}
