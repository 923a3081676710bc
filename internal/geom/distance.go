package geom

import "math"

const earthRadiusKm = 6371.0

// KmPerDegree is the flat conversion used to turn a ground distance into
// plane units.
const KmPerDegree = 111.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// DistanceKm is the great-circle (haversine) distance between a and b.
func DistanceKm(a, b GeoPoint) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// KmToDegrees converts a distance to plane units at KmPerDegree.
func KmToDegrees(km float64) float64 { return km / KmPerDegree }
