package domain

import (
	"fmt"
	"strings"
)

// ─── Terrain ────────────────────────────────────────────────────────────────

// Terrain classifies a region and selects its population growth model.
type Terrain string

const (
	TerrainOcean     Terrain = "Ocean"
	TerrainMountains Terrain = "Mountains"
	TerrainForest    Terrain = "Forest"
	TerrainOther     Terrain = "Other"
)

// AllTerrains returns every recognized terrain class.
func AllTerrains() []Terrain {
	return []Terrain{TerrainOcean, TerrainMountains, TerrainForest, TerrainOther}
}

// IsValid reports whether t is a recognized terrain.
func (t Terrain) IsValid() bool {
	switch t {
	case TerrainOcean, TerrainMountains, TerrainForest, TerrainOther:
		return true
	}
	return false
}

// String returns the terrain name.
func (t Terrain) String() string { return string(t) }

// ParseTerrain maps free text to a Terrain. Matching is case-insensitive
// and accepts the legacy spelling "Forrest".
func ParseTerrain(s string) (Terrain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ocean":
		return TerrainOcean, nil
	case "mountains":
		return TerrainMountains, nil
	case "forest", "forrest":
		return TerrainForest, nil
	case "other":
		return TerrainOther, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTerrain, s)
}

// ─── Region ─────────────────────────────────────────────────────────────────

// Region is a named, terrain-tagged rectangle. Names are display text
// and need not be unique.
type Region struct {
	Rect    GeoRect `json:"rect"`
	Name    string  `json:"name"`
	Terrain Terrain `json:"terrain"`
}
