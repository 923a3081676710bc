package geom

import "fmt"

// FilterAboveLine keeps the points whose latitude is on or above the line
// through p1 and p2, interpolated at the point's longitude. The line must not
// be vertical.
func FilterAboveLine(points []GeoPoint, p1, p2 GeoPoint) ([]GeoPoint, error) {
	if p1.Lon == p2.Lon {
		return nil, &DegenerateInputError{Reason: fmt.Sprintf("reference line is vertical at longitude %g", p1.Lon)}
	}
	slope := (p2.Lat - p1.Lat) / (p2.Lon - p1.Lon)
	out := make([]GeoPoint, 0, len(points))
	for _, p := range points {
		if p.Lat >= p1.Lat+slope*(p.Lon-p1.Lon) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ExcludeRegion drops points south of latBound and east of lonBound at the
// same time. Order is preserved.
func ExcludeRegion(points []GeoPoint, latBound, lonBound float64) []GeoPoint {
	out := make([]GeoPoint, 0, len(points))
	for _, p := range points {
		if p.Lat < latBound && p.Lon > lonBound {
			continue
		}
		out = append(out, p)
	}
	return out
}
