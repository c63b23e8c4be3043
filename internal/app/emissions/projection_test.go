package emissions

import (
	"errors"
	"testing"

	"github.com/tutu-network/ghgcalc/internal/domain"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		terrain domain.Terrain
		want    float64
	}{
		{domain.TerrainOcean, 0.0001},
		{domain.TerrainMountains, 0.0005},
		{domain.TerrainForest, 0.00001},
		{domain.TerrainOther, 0.00003},
	}
	for _, tt := range tests {
		t.Run(tt.terrain.String(), func(t *testing.T) {
			got, err := GrowthRate(tt.terrain)
			if err != nil {
				t.Fatalf("GrowthRate() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GrowthRate() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := GrowthRate("Desert"); !errors.Is(err, domain.ErrUnknownTerrain) {
		t.Errorf("GrowthRate(Desert) error = %v, want ErrUnknownTerrain", err)
	}
}

func TestGrowthRate_CoversAllTerrains(t *testing.T) {
	for _, tr := range domain.AllTerrains() {
		if _, err := GrowthRate(tr); err != nil {
			t.Errorf("GrowthRate(%s) error: %v", tr, err)
		}
	}
}

func TestGrowPopulation_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		name  string
		pop   int64
		years int
		want  int64
	}{
		{"half rounds down to even", 1000, 1, 1000}, // 0.5 → 0
		{"one and a half rounds up", 3000, 1, 3002}, // 1.5 → 2
		{"compounds on rounded value", 282000, 10, 283412},
		{"zero years", 5000, 0, 5000},
		{"zero population", 0, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GrowPopulation(tt.pop, 0.0005, tt.years)
			if err != nil {
				t.Fatalf("GrowPopulation() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GrowPopulation(%d, 0.0005, %d) = %d, want %d", tt.pop, tt.years, got, tt.want)
			}
		})
	}
}

func TestGrowPopulation_Overflow(t *testing.T) {
	got, err := GrowPopulation(282000, 0.0005, 100000)
	if !errors.Is(err, domain.ErrPopulationOverflow) {
		t.Fatalf("GrowPopulation(100000 years) = %d, %v; want ErrPopulationOverflow", got, err)
	}

	// Just under the bound still grows.
	if _, err := GrowPopulation(MaxPopulation/2, 0.0005, 1); err != nil {
		t.Errorf("GrowPopulation(near bound) error: %v", err)
	}
}

func TestProjectCondition_Overflow(t *testing.T) {
	_, err := ProjectCondition(sample(t, "Cal Poly SLO"), 100000)
	if !errors.Is(err, domain.ErrPopulationOverflow) {
		t.Errorf("ProjectCondition(100000 years) error = %v, want ErrPopulationOverflow", err)
	}
}

func TestProjectCondition_OtherOneYear(t *testing.T) {
	nyc := sample(t, "New York City")
	got, err := ProjectCondition(nyc, 1)
	if err != nil {
		t.Fatalf("ProjectCondition() error: %v", err)
	}
	if got.Year != 2023 {
		t.Errorf("Year = %d, want 2023", got.Year)
	}
	if got.Population != 19000570 {
		t.Errorf("Population = %d, want 19000570", got.Population)
	}
	assertNear(t, "GHGRate", got.GHGRate, 150000000+150000000.0/19000570, 1e-6)
	assertNear(t, "GHGRate", got.GHGRate, 150000007.894, 1e-3)
	if got.Region != nyc.Region {
		t.Error("projection should keep the region")
	}
}

func TestProjectCondition_OceanTwoYears(t *testing.T) {
	got, err := ProjectCondition(sample(t, "Western Pacific Ocean"), 2)
	if err != nil {
		t.Fatalf("ProjectCondition() error: %v", err)
	}
	if got.Year != 2022 {
		t.Errorf("Year = %d, want 2022", got.Year)
	}
	if got.Population != 9701940 {
		t.Errorf("Population = %d, want 9701940", got.Population)
	}
	assertNear(t, "GHGRate", got.GHGRate, 12000001.237, 1e-3)
}

func TestProjectCondition_ByTerrain(t *testing.T) {
	tests := []struct {
		terrain domain.Terrain
		years   int
		wantPop int64
	}{
		{domain.TerrainMountains, 10, 283412},
		{domain.TerrainForest, 3, 282009},
		{domain.TerrainOcean, 1, 282028},
		{domain.TerrainOther, 1, 282008},
	}
	base := sample(t, "Cal Poly SLO")
	for _, tt := range tests {
		t.Run(tt.terrain.String(), func(t *testing.T) {
			s := base
			s.Region.Terrain = tt.terrain
			got, err := ProjectCondition(s, tt.years)
			if err != nil {
				t.Fatalf("ProjectCondition() error: %v", err)
			}
			if got.Population != tt.wantPop {
				t.Errorf("Population = %d, want %d", got.Population, tt.wantPop)
			}
			assertNear(t, "GHGRate", got.GHGRate, s.GHGRate+s.GHGRate/float64(tt.wantPop), 1e-9)
		})
	}
}

func TestProjectCondition_NotChained(t *testing.T) {
	s := sample(t, "Western Pacific Ocean")

	direct, _ := ProjectCondition(s, 2)
	step, _ := ProjectCondition(s, 1)
	chained, _ := ProjectCondition(step, 1)

	if direct.Population != chained.Population {
		t.Errorf("populations differ: direct %d, chained %d", direct.Population, chained.Population)
	}
	// The emission adjustment applies once per call, so chaining adds it twice.
	if direct.GHGRate == chained.GHGRate {
		t.Error("chained projection should differ in GHGRate from a single call")
	}
}

func TestProjectCondition_ZeroPopulation(t *testing.T) {
	s := sample(t, "Los Angeles").WithPopulation(0)
	got, err := ProjectCondition(s, 25)
	if err != nil {
		t.Fatalf("ProjectCondition() error: %v", err)
	}
	if got.Population != 0 {
		t.Errorf("Population = %d, want 0", got.Population)
	}
	if got.GHGRate != s.GHGRate {
		t.Errorf("GHGRate = %v, want unchanged %v", got.GHGRate, s.GHGRate)
	}
	if got.Year != s.Year+25 {
		t.Errorf("Year = %d, want %d", got.Year, s.Year+25)
	}
}

func TestProjectCondition_ZeroYears(t *testing.T) {
	s := sample(t, "Cal Poly SLO")
	got, err := ProjectCondition(s, 0)
	if err != nil {
		t.Fatalf("ProjectCondition() error: %v", err)
	}
	if got.Year != s.Year || got.Population != s.Population {
		t.Errorf("got year %d pop %d, want unchanged", got.Year, got.Population)
	}
	if got.GHGRate != s.GHGRate+s.GHGRate/float64(s.Population) {
		t.Errorf("GHGRate = %v, want one per-capita increment", got.GHGRate)
	}
}

func TestProjectCondition_Errors(t *testing.T) {
	s := sample(t, "Cal Poly SLO")

	if _, err := ProjectCondition(s, -1); !errors.Is(err, domain.ErrNegativeYears) {
		t.Errorf("negative years error = %v, want ErrNegativeYears", err)
	}

	bad := s
	bad.Region.Terrain = "Swamp"
	if _, err := ProjectCondition(bad, 1); !errors.Is(err, domain.ErrUnknownTerrain) {
		t.Errorf("unknown terrain error = %v, want ErrUnknownTerrain", err)
	}
}

func TestProjectSeries(t *testing.T) {
	s := sample(t, "New York City")
	series, err := ProjectSeries(s, 5)
	if err != nil {
		t.Fatalf("ProjectSeries() error: %v", err)
	}
	if len(series) != 5 {
		t.Fatalf("len(series) = %d, want 5", len(series))
	}
	for i, got := range series {
		want, _ := ProjectCondition(s, i+1)
		if got != want {
			t.Errorf("series[%d] = %+v, want %+v", i, got, want)
		}
	}

	empty, err := ProjectSeries(s, 0)
	if err != nil || len(empty) != 0 {
		t.Errorf("ProjectSeries(0) = %v, %v; want empty, nil", empty, err)
	}
	if _, err := ProjectSeries(s, -2); !errors.Is(err, domain.ErrNegativeYears) {
		t.Errorf("ProjectSeries(-2) error = %v, want ErrNegativeYears", err)
	}
}
