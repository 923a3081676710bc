// Package scene loads and filters everything the map draws.
package scene

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"vnmap/internal/config"
	"vnmap/internal/geom"
)

// Circle is a labelled reference circle with its radius in plane units.
type Circle struct {
	geom.NamedPoint
	RadiusKm float64
	Radius   float64
}

// Stats counts what happened while loading.
type Stats struct {
	BoundaryLines   int
	BoundarySkipped int
	BoundaryDropped int // removed by the filters
	ZoneLines       int
	ZoneSkipped     int
}

// Scene is the read-only bundle handed to the renderer.
type Scene struct {
	Boundary  geom.BoundaryPath
	Zone      geom.BoundaryPath
	Landmarks []geom.NamedPoint
	Circles   []Circle
	Stats     Stats
}

// Build checks that every configured input file exists, then loads them,
// filters the boundary and resolves landmarks and circles.
func Build(cfg *config.Config) (*Scene, error) {
	mode := geom.Tolerant
	if cfg.Strict {
		mode = geom.Strict
	}
	bFormat, err := geom.ParseFormat(cfg.Boundary.Format)
	if err != nil {
		return nil, fmt.Errorf("boundary: %w", err)
	}
	zFormat, err := geom.ParseFormat(cfg.Zone.Format)
	if err != nil {
		return nil, fmt.Errorf("zone: %w", err)
	}
	if cfg.Zone.Format == "" {
		zFormat = geom.FormatDMS
	}

	for _, src := range []config.Source{cfg.Boundary, cfg.Zone} {
		if src.Path == "" {
			continue
		}
		if err := geom.CheckExists(src.Path); err != nil {
			return nil, err
		}
	}

	s := &Scene{}
	if s.Landmarks, err = Landmarks(cfg.Landmarks); err != nil {
		return nil, err
	}
	if s.Circles, err = Circles(cfg.Circles); err != nil {
		return nil, err
	}

	if cfg.Boundary.Path != "" {
		res, err := geom.LoadFile(cfg.Boundary.Path, bFormat, mode)
		if err != nil {
			return nil, fmt.Errorf("boundary: %w", err)
		}
		kept, err := ApplyFilters(res.Points, cfg.Filters)
		if err != nil {
			return nil, err
		}
		s.Boundary = kept
		s.Stats.BoundaryLines = res.Lines
		s.Stats.BoundarySkipped = len(res.Skipped)
		s.Stats.BoundaryDropped = len(res.Points) - len(kept)
		logSkipped("boundary", cfg.Boundary.Path, res)
	}

	if cfg.Zone.Path != "" {
		res, err := geom.LoadFile(cfg.Zone.Path, zFormat, mode)
		if err != nil {
			return nil, fmt.Errorf("zone: %w", err)
		}
		s.Zone = res.Points
		s.Stats.ZoneLines = res.Lines
		s.Stats.ZoneSkipped = len(res.Skipped)
		logSkipped("zone", cfg.Zone.Path, res)
	}

	log.Info().
		Int("boundary_points", len(s.Boundary)).
		Int("boundary_dropped", s.Stats.BoundaryDropped).
		Int("zone_points", len(s.Zone)).
		Int("landmarks", len(s.Landmarks)).
		Int("circles", len(s.Circles)).
		Msg("Scene loaded")

	return s, nil
}

func logSkipped(layer, path string, res geom.LoadResult) {
	if len(res.Skipped) == 0 {
		return
	}
	log.Warn().
		Str("layer", layer).
		Str("path", path).
		Int("skipped", len(res.Skipped)).
		Int("lines", res.Lines).
		Err(res.Skipped[0]).
		Msg("Malformed coordinate lines skipped")
}

// ApplyFilters runs the reference-line filter and then the exclusion corner.
// A vertical reference line is a configuration error.
func ApplyFilters(points []geom.GeoPoint, f config.Filters) ([]geom.GeoPoint, error) {
	out := points
	if l := f.ReferenceLine; l != nil {
		var err error
		out, err = geom.FilterAboveLine(out,
			geom.GeoPoint{Lat: l.From.Lat, Lon: l.From.Lon},
			geom.GeoPoint{Lat: l.To.Lat, Lon: l.To.Lon})
		if err != nil {
			return nil, fmt.Errorf("reference_line: %w", err)
		}
	}
	if c := f.Exclude; c != nil {
		out = geom.ExcludeRegion(out, c.LatBelow, c.LonAbove)
	}
	return out, nil
}

// Landmarks decodes the configured DMS positions.
func Landmarks(list []config.Landmark) ([]geom.NamedPoint, error) {
	out := make([]geom.NamedPoint, 0, len(list))
	for _, lm := range list {
		p, err := geom.ParseDMSPair(lm.Lat, lm.Lon)
		if err != nil {
			return nil, fmt.Errorf("landmark %s: %w", lm.Name, err)
		}
		out = append(out, geom.NamedPoint{Name: lm.Name, GeoPoint: p})
	}
	return out, nil
}

// Circles resolves centers and radii. A through point gives the radius as
// the great-circle distance to the center.
func Circles(list []config.Circle) ([]Circle, error) {
	out := make([]Circle, 0, len(list))
	for _, c := range list {
		center, err := geom.ParseDMSPair(c.Lat, c.Lon)
		if err != nil {
			return nil, fmt.Errorf("circle %s: %w", c.Name, err)
		}
		km := c.RadiusKm
		if km <= 0 {
			if c.Through == nil {
				return nil, fmt.Errorf("circle %s: needs radius_km or through", c.Name)
			}
			edge, err := geom.ParseDMSPair(c.Through.Lat, c.Through.Lon)
			if err != nil {
				return nil, fmt.Errorf("circle %s through: %w", c.Name, err)
			}
			km = geom.DistanceKm(center, edge)
		}
		out = append(out, Circle{
			NamedPoint: geom.NamedPoint{Name: c.Name, GeoPoint: center},
			RadiusKm:   km,
			Radius:     geom.KmToDegrees(km),
		})
	}
	return out, nil
}

// Extent is the plane bounding box of everything in the scene, circles
// included. ok is false for an empty scene.
func (s *Scene) Extent() (bbox geom.BBox, ok bool) {
	var e geom.Extent
	e.AddPath(s.Boundary)
	e.AddPath(s.Zone)
	for _, lm := range s.Landmarks {
		e.Add(lm.Lon, lm.Lat)
	}
	for _, c := range s.Circles {
		e.Add(c.Lon-c.Radius, c.Lat-c.Radius)
		e.Add(c.Lon+c.Radius, c.Lat+c.Radius)
	}
	return e.BBox, !e.Empty()
}
