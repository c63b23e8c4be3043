package emissions

import (
	"log"

	"github.com/tutu-network/ghgcalc/internal/domain"
	"github.com/tutu-network/ghgcalc/internal/infra/metrics"
)

// EmissionsPerCapita returns GHGRate / Population. ok is false when the
// population is zero and the ratio is undefined.
func EmissionsPerCapita(s domain.RegionSnapshot) (perCapita float64, ok bool) {
	if s.Population == 0 {
		log.Printf("[emissions] per-capita undefined for %q (%d): population is zero", s.Region.Name, s.Year)
		metrics.PerCapitaUndefined.Inc()
		return 0, false
	}
	return s.GHGRate / float64(s.Population), true
}

// EmissionsPerSquareKm returns GHGRate / Area. A zero-area rectangle
// yields ±Inf or NaN.
func EmissionsPerSquareKm(s domain.RegionSnapshot) float64 {
	return s.GHGRate / Area(s.Region.Rect)
}

// Density returns the region's population per km².
func Density(s domain.RegionSnapshot) float64 {
	return float64(s.Population) / Area(s.Region.Rect)
}
