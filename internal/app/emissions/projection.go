package emissions

import (
	"fmt"
	"math"

	"github.com/tutu-network/ghgcalc/internal/domain"
	"github.com/tutu-network/ghgcalc/internal/infra/metrics"
)

// ─── Growth Rates ───────────────────────────────────────────────────────────

// growthRates is the annual population growth rate per terrain class.
var growthRates = map[domain.Terrain]float64{
	domain.TerrainOcean:     0.0001,
	domain.TerrainMountains: 0.0005,
	domain.TerrainForest:    0.00001,
	domain.TerrainOther:     0.00003,
}

// GrowthRate returns the annual population growth rate for t.
func GrowthRate(t domain.Terrain) (float64, error) {
	rate, ok := growthRates[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTerrain, t)
	}
	return rate, nil
}

// MaxPopulation bounds projected populations. Growth past it is reported
// as ErrPopulationOverflow rather than wrapping int64.
const MaxPopulation = 1 << 62

// GrowPopulation compounds pop by rate for the given number of years,
// rounding each year's increment half-to-even before it compounds.
func GrowPopulation(pop int64, rate float64, years int) (int64, error) {
	for i := 0; i < years; i++ {
		inc := math.RoundToEven(float64(pop) * rate)
		if float64(pop)+inc > MaxPopulation {
			return 0, fmt.Errorf("%w: year %d of %d exceeds %d", domain.ErrPopulationOverflow, i+1, years, int64(MaxPopulation))
		}
		pop += int64(inc)
	}
	return pop, nil
}

// ─── Projection ─────────────────────────────────────────────────────────────

// ProjectCondition projects s forward by yearsPassed years. Population
// compounds per year at the terrain's rate; the emission rate is then
// adjusted once by adding the per-capita rate of the projected
// population against the unchanged emission rate. A zero population
// contributes nothing.
func ProjectCondition(s domain.RegionSnapshot, yearsPassed int) (domain.RegionSnapshot, error) {
	if yearsPassed < 0 {
		return domain.RegionSnapshot{}, fmt.Errorf("%w: got %d", domain.ErrNegativeYears, yearsPassed)
	}
	rate, err := GrowthRate(s.Region.Terrain)
	if err != nil {
		return domain.RegionSnapshot{}, fmt.Errorf("project %q: %w", s.Region.Name, err)
	}

	pop, err := GrowPopulation(s.Population, rate, yearsPassed)
	if err != nil {
		return domain.RegionSnapshot{}, fmt.Errorf("project %q: %w", s.Region.Name, err)
	}
	next := s.WithYear(s.Year + yearsPassed).WithPopulation(pop)

	if perCapita, ok := EmissionsPerCapita(next); ok {
		next = next.WithGHGRate(s.GHGRate + perCapita)
	}

	metrics.ProjectionsTotal.WithLabelValues(s.Region.Terrain.String()).Inc()
	metrics.ProjectionYears.Observe(float64(yearsPassed))
	return next, nil
}

// ProjectSeries returns ProjectCondition(s, k) for k = 1..years. Each
// element is projected from s directly, not from its predecessor.
func ProjectSeries(s domain.RegionSnapshot, years int) ([]domain.RegionSnapshot, error) {
	if years < 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrNegativeYears, years)
	}
	series := make([]domain.RegionSnapshot, 0, years)
	for k := 1; k <= years; k++ {
		next, err := ProjectCondition(s, k)
		if err != nil {
			return nil, err
		}
		series = append(series, next)
	}
	return series, nil
}
