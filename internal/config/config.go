// Package config handles configuration loading and the map's fixed data:
// input sources, filter references, landmarks and reference circles.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Boundary  Source     `yaml:"boundary"`
	Zone      Source     `yaml:"zone"`
	Strict    bool       `yaml:"strict,omitempty"`
	Filters   Filters    `yaml:"filters"`
	Landmarks []Landmark `yaml:"landmarks,omitempty"`
	Circles   []Circle   `yaml:"circles,omitempty"`
}

// Source is one coordinate file. Format is "decimal", "dms" or "auto".
type Source struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"`
}

// Filters applied to the boundary path. A nil entry disables that filter.
type Filters struct {
	ReferenceLine *Line   `yaml:"reference_line,omitempty"`
	Exclude       *Corner `yaml:"exclude,omitempty"`
}

// Line is a reference line through two plane points.
type Line struct {
	From LonLat `yaml:"from"`
	To   LonLat `yaml:"to"`
}

// LonLat is a plane point in decimal degrees.
type LonLat struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

// Corner is the exclusion rectangle: south of LatBelow and east of LonAbove.
type Corner struct {
	LatBelow float64 `yaml:"lat_below"`
	LonAbove float64 `yaml:"lon_above"`
}

// Position is a point given as fixed-width DMS strings.
type Position struct {
	Lat string `yaml:"lat"`
	Lon string `yaml:"lon"`
}

// Landmark is a labelled point of interest.
type Landmark struct {
	Name     string `yaml:"name"`
	Position `yaml:",inline"`
}

// Circle is a labelled reference circle. The radius comes from RadiusKm
// when set, otherwise from the distance to Through.
type Circle struct {
	Name     string    `yaml:"name"`
	Position `yaml:",inline"`
	Through  *Position `yaml:"through,omitempty"`
	RadiusKm float64   `yaml:"radius_km,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Boundary: Source{Path: "data/VIETNAM_COORDINATE.txt", Format: "decimal"},
		Zone:     Source{Path: "data/TEST_ZONE.txt", Format: "dms"},
		Filters: Filters{
			ReferenceLine: &Line{
				From: LonLat{Lon: 107.5038888888889, Lat: 14.464166666666666},
				To:   LonLat{Lon: 112.0, Lat: 14.5},
			},
			Exclude: &Corner{LatBelow: 14.5, LonAbove: 107.5},
		},
		Landmarks: []Landmark{
			{Name: "PHUTA", Position: Position{Lat: "205547N", Lon: "1062738E"}},
			{Name: "VIBAO", Position: Position{Lat: "203918N", Lon: "1062947E"}},
			{Name: "VANUC", Position: Position{Lat: "203259N", Lon: "1064318E"}},
			{Name: "LOCHA", Position: Position{Lat: "203924N", Lon: "1065713E"}},
			{Name: "DOKLA", Position: Position{Lat: "210412N", Lon: "1064328E"}},
			{Name: "GASSO", Position: Position{Lat: "210511N", Lon: "1064506E"}},
		},
		Circles: []Circle{
			{
				Name:     "CBI",
				Position: Position{Lat: "204856N", Lon: "1064328E"},
				Through:  &Position{Lat: "205547N", Lon: "1062738E"},
			},
		},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the parts that can be checked without touching the input files.
func (c *Config) Validate() error {
	for i, lm := range c.Landmarks {
		if lm.Name == "" {
			return fmt.Errorf("landmark %d: missing name", i)
		}
	}
	for i, ci := range c.Circles {
		if ci.Name == "" {
			return fmt.Errorf("circle %d: missing name", i)
		}
		if ci.Through == nil && ci.RadiusKm <= 0 {
			return fmt.Errorf("circle %s: needs radius_km or through", ci.Name)
		}
	}
	return nil
}
