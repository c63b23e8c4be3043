package dataset

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tutu-network/ghgcalc/internal/domain"
	"github.com/tutu-network/ghgcalc/internal/infra/metrics"
)

// file is the on-disk shape shared by the TOML and YAML formats.
type file struct {
	Regions []fileRegion `toml:"region" yaml:"region"`
}

type fileRegion struct {
	Name       string         `toml:"name" yaml:"name"`
	Terrain    string         `toml:"terrain" yaml:"terrain"`
	Year       int            `toml:"year" yaml:"year"`
	Population int64          `toml:"population" yaml:"population"`
	GHGRate    float64        `toml:"ghg_rate" yaml:"ghg_rate"`
	Rect       domain.GeoRect `toml:"rect" yaml:"rect"`
}

// Load reads a dataset file, choosing the decoder by extension
// (.toml, .yaml, .yml). Every snapshot is validated.
func Load(path string) ([]domain.RegionSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var f file
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("parse dataset TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse dataset YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}

	snapshots, err := f.snapshots()
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	log.Printf("[dataset] loaded %d regions from %s", len(snapshots), path)
	return snapshots, nil
}

// Resolve returns the dataset at path, or the sample table when path is
// empty, and records its size.
func Resolve(path string) ([]domain.RegionSnapshot, error) {
	snapshots := Samples()
	if path != "" {
		var err error
		if snapshots, err = Load(path); err != nil {
			return nil, err
		}
	}
	metrics.RegionsLoaded.Set(float64(len(snapshots)))
	return snapshots, nil
}

func (f file) snapshots() ([]domain.RegionSnapshot, error) {
	if len(f.Regions) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	out := make([]domain.RegionSnapshot, 0, len(f.Regions))
	for i, r := range f.Regions {
		terrain, err := domain.ParseTerrain(r.Terrain)
		if err != nil {
			return nil, fmt.Errorf("region %d (%q): %w", i, r.Name, err)
		}
		s := domain.RegionSnapshot{
			Region: domain.Region{
				Rect:    r.Rect,
				Name:    r.Name,
				Terrain: terrain,
			},
			Year:       r.Year,
			Population: r.Population,
			GHGRate:    r.GHGRate,
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("region %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Save writes snapshots as a dataset file, choosing the encoder by
// extension so that Load reads it back.
func Save(path string, snapshots []domain.RegionSnapshot) error {
	f := file{Regions: make([]fileRegion, 0, len(snapshots))}
	for _, s := range snapshots {
		f.Regions = append(f.Regions, fileRegion{
			Name:       s.Region.Name,
			Terrain:    s.Region.Terrain.String(),
			Year:       s.Year,
			Population: s.Population,
			GHGRate:    s.GHGRate,
			Rect:       s.Region.Rect,
		})
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".toml", ".yaml", ".yml":
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, ext)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if ext == ".toml" {
		return toml.NewEncoder(out).Encode(f)
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return err
	}
	return enc.Close()
}
