// Package geo implements great-circle distance on a spherical Earth.
package geo

import (
	"math"

	"address-book-api/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

// Radians converts decimal degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Haversine returns the great-circle distance between a and b in kilometers.
// Both coordinates are expected to be within range already.
func Haversine(a, b models.Coordinate) float64 {
	dLat := Radians(b.Latitude - a.Latitude)
	dLon := Radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(Radians(a.Latitude))*math.Cos(Radians(b.Latitude))*sinLon*sinLon

	// rounding can push h just outside [0, 1] near antipodal points
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Within reports whether b lies at most radiusKm from a. The boundary is inclusive.
func Within(a, b models.Coordinate, radiusKm float64) bool {
	return Haversine(a, b) <= radiusKm
}
