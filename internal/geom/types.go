package geom

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Lat float64
	Lon float64
}

// Valid reports whether the point lies within [-90,90] x [-180,180].
// NaN coordinates are never valid.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// XY returns the point in plane order (x=lon, y=lat).
func (p GeoPoint) XY() [2]float64 { return [2]float64{p.Lon, p.Lat} }

// NamedPoint is a point of interest with a short display label.
type NamedPoint struct {
	Name string
	GeoPoint
}

// BoundaryPath is an ordered outline; order defines the path, duplicates are kept.
type BoundaryPath []GeoPoint

// BBox is an axis-aligned rectangle in plane units (x=lon, y=lat).
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extent accumulates a bounding box over points fed to Add.
type Extent struct {
	BBox
	n int
}

// Add grows the extent to include x,y.
func (e *Extent) Add(x, y float64) {
	if e.n == 0 {
		e.BBox = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
	} else {
		if x < e.MinX {
			e.MinX = x
		}
		if y < e.MinY {
			e.MinY = y
		}
		if x > e.MaxX {
			e.MaxX = x
		}
		if y > e.MaxY {
			e.MaxY = y
		}
	}
	e.n++
}

// AddPath adds every point of p in plane order.
func (e *Extent) AddPath(p []GeoPoint) {
	for _, pt := range p {
		e.Add(pt.Lon, pt.Lat)
	}
}

// Empty reports whether nothing was added.
func (e *Extent) Empty() bool { return e.n == 0 }
