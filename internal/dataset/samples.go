// Package dataset provides region snapshot tables: the built-in sample
// set and loaders for TOML and YAML dataset files.
package dataset

import (
	"fmt"

	"github.com/tutu-network/ghgcalc/internal/domain"
)

// Samples returns the canonical four-region sample table. Each call
// returns a fresh slice.
func Samples() []domain.RegionSnapshot {
	return []domain.RegionSnapshot{
		{
			Region: domain.Region{
				Rect:    domain.GeoRect{LoLat: 40.45, HiLat: 41.05, WestLong: -74.45, EastLong: -73.55},
				Name:    "New York City",
				Terrain: domain.TerrainOther,
			},
			Year:       2022,
			Population: 19000000,
			GHGRate:    150000000,
		},
		{
			Region: domain.Region{
				Rect:    domain.GeoRect{LoLat: 33.60, HiLat: 34.35, WestLong: -118.90, EastLong: -117.65},
				Name:    "Los Angeles",
				Terrain: domain.TerrainOther,
			},
			Year:       2021,
			Population: 12990000,
			GHGRate:    26900000,
		},
		{
			Region: domain.Region{
				Rect:    domain.GeoRect{LoLat: -10, HiLat: 5, WestLong: 150, EastLong: 160},
				Name:    "Western Pacific Ocean",
				Terrain: domain.TerrainOcean,
			},
			Year:       2020,
			Population: 9700000,
			GHGRate:    12000000,
		},
		{
			Region: domain.Region{
				Rect:    domain.GeoRect{LoLat: 34.8, HiLat: 36, WestLong: -122, EastLong: -119.5},
				Name:    "Cal Poly SLO",
				Terrain: domain.TerrainMountains,
			},
			Year:       2020,
			Population: 282000,
			GHGRate:    1000000,
		},
	}
}

// Find returns the first snapshot whose region name matches name.
func Find(snapshots []domain.RegionSnapshot, name string) (domain.RegionSnapshot, error) {
	for _, s := range snapshots {
		if s.Region.Name == name {
			return s, nil
		}
	}
	return domain.RegionSnapshot{}, fmt.Errorf("%w: %q", domain.ErrRegionNotFound, name)
}
