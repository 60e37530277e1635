// Package geo provides the great-circle distance primitive shared by the
// assessment engine.
package geo

import "math"

// earthRadiusKM is the mean Earth radius used by the haversine formula.
const earthRadiusKM = 6371.0

// DistanceKM returns the haversine great-circle distance in kilometers
// between two WGS84 coordinates. The result is symmetric in its arguments,
// zero for coincident points and always finite: the Asin argument is clamped
// to [0, 1] so floating-point overshoot near antipodal points cannot leave
// the trigonometric domain.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(radians(lat1))*math.Cos(radians(lat2))*sinLon*sinLon
	return 2 * earthRadiusKM * math.Asin(math.Sqrt(clamp01(a)))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
