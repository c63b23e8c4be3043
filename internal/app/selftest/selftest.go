// Package selftest runs the calculator's reference fixture checks against
// the built-in sample table, so an installed binary can verify itself.
package selftest

import (
	"fmt"
	"math"

	"github.com/tutu-network/ghgcalc/internal/app/emissions"
	"github.com/tutu-network/ghgcalc/internal/dataset"
	"github.com/tutu-network/ghgcalc/internal/domain"
	"github.com/tutu-network/ghgcalc/internal/infra/metrics"
)

// Result is the outcome of one fixture check.
type Result struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// Report collects every check result.
type Report struct {
	Results []Result `json:"results"`
	Failed  int      `json:"failed"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Failed == 0 }

// Check is a single named fixture assertion. It returns an error
// describing the mismatch, or nil.
type Check struct {
	Name string
	Run  func() error
}

// Run executes checks in order.
func Run(checks []Check) Report {
	var rep Report
	for _, c := range checks {
		res := Result{Name: c.Name, Passed: true}
		if err := c.Run(); err != nil {
			res.Passed = false
			res.Detail = err.Error()
			rep.Failed++
			metrics.SelfTestChecks.WithLabelValues("fail").Inc()
		} else {
			metrics.SelfTestChecks.WithLabelValues("pass").Inc()
		}
		rep.Results = append(rep.Results, res)
	}
	return rep
}

// Fixtures returns the reference checks for the built-in sample table.
func Fixtures() []Check {
	return []Check{
		{"per-capita Cal Poly SLO", func() error {
			return perCapita("Cal Poly SLO", 3.54609929078, 1e-9)
		}},
		{"per-capita Western Pacific Ocean", func() error {
			return perCapita("Western Pacific Ocean", 1.237113402, 1e-9)
		}},
		{"per-capita New York City", func() error {
			return perCapita("New York City", 7.894736842, 1e-9)
		}},
		{"per-capita zero population", func() error {
			s := mustFind("Los Angeles").WithPopulation(0)
			if v, ok := emissions.EmissionsPerCapita(s); ok {
				return fmt.Errorf("got %v, want undefined", v)
			}
			return nil
		}},
		{"area equator band", func() error {
			return near(emissions.Area(domain.GeoRect{LoLat: 0, HiLat: 10, WestLong: 10, EastLong: 100}), 11071470.754972488, 1e-9)
		}},
		{"area quarter hemisphere", func() error {
			return near(emissions.Area(domain.GeoRect{LoLat: 0, HiLat: 90, WestLong: 0, EastLong: 90}), 63758058.98872353, 1e-9)
		}},
		{"per-km² New York City", func() error {
			return near(emissions.EmissionsPerSquareKm(mustFind("New York City")), 29655.800092, 1e-7)
		}},
		{"densest sample region", func() error {
			if got := emissions.Densest(dataset.Samples()); got != "New York City" {
				return fmt.Errorf("got %q, want %q", got, "New York City")
			}
			return nil
		}},
		{"project Other 1 year", func() error {
			return projection("New York City", 1, 2023, 19000570, 150000007.894, 1e-3)
		}},
		{"project Ocean 2 years", func() error {
			return projection("Western Pacific Ocean", 2, 2022, 9701940, 12000001.237, 1e-3)
		}},
	}
}

func mustFind(name string) domain.RegionSnapshot {
	s, err := dataset.Find(dataset.Samples(), name)
	if err != nil {
		panic(err)
	}
	return s
}

func near(got, want, tol float64) error {
	if math.Abs(got-want) > tol {
		return fmt.Errorf("got %.12g, want %.12g (±%g)", got, want, tol)
	}
	return nil
}

func perCapita(name string, want, tol float64) error {
	got, ok := emissions.EmissionsPerCapita(mustFind(name))
	if !ok {
		return fmt.Errorf("per-capita undefined for %q", name)
	}
	return near(got, want, tol)
}

func projection(name string, years, wantYear int, wantPop int64, wantGHG, tol float64) error {
	got, err := emissions.ProjectCondition(mustFind(name), years)
	if err != nil {
		return err
	}
	if got.Year != wantYear {
		return fmt.Errorf("year %d, want %d", got.Year, wantYear)
	}
	if got.Population != wantPop {
		return fmt.Errorf("population %d, want %d", got.Population, wantPop)
	}
	return near(got.GHGRate, wantGHG, tol)
}
