package emissions

import (
	"sort"

	"github.com/tutu-network/ghgcalc/internal/domain"
)

// Densest returns the name of the region with the strictly greatest
// population density. The running maximum starts at zero, so the first
// of equal densities wins and regions with zero or NaN density never
// do. Returns "" when no region qualifies.
func Densest(snapshots []domain.RegionSnapshot) string {
	best := 0.0
	name := ""
	for _, s := range snapshots {
		if d := Density(s); d > best {
			best = d
			name = s.Region.Name
		}
	}
	return name
}

// DensityEntry pairs a snapshot with its population density.
type DensityEntry struct {
	Snapshot domain.RegionSnapshot `json:"snapshot"`
	Density  float64               `json:"density_per_km2"`
}

// RankByDensity returns every snapshot ordered densest first. Equal
// densities keep their input order.
func RankByDensity(snapshots []domain.RegionSnapshot) []DensityEntry {
	entries := make([]DensityEntry, 0, len(snapshots))
	for _, s := range snapshots {
		entries = append(entries, DensityEntry{Snapshot: s, Density: Density(s)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Density > entries[j].Density
	})
	return entries
}
