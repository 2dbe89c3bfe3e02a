package geo

import (
	"math"
	"testing"

	"address-book-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func coord(lat, lon float64) models.Coordinate {
	return models.Coordinate{Latitude: lat, Longitude: lon}
}

func TestHaversine(t *testing.T) {
	tests := []struct {
		name     string
		a        models.Coordinate
		b        models.Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			a:        coord(35.681236, 139.767125),
			b:        coord(35.681236, 139.767125),
			expected: 0,
			delta:    0,
		},
		{
			name:     "one degree of longitude on the equator",
			a:        coord(0, 0),
			b:        coord(0, 1),
			expected: 111.19,
			delta:    0.01,
		},
		{
			name:     "one degree of latitude",
			a:        coord(0, 0),
			b:        coord(1, 0),
			expected: 111.19,
			delta:    0.01,
		},
		{
			name:     "pole to pole",
			a:        coord(90, 0),
			b:        coord(-90, 0),
			expected: math.Pi * EarthRadiusKm,
			delta:    1e-6,
		},
		{
			name:     "antipodal on the equator",
			a:        coord(0, 0),
			b:        coord(0, 180),
			expected: math.Pi * EarthRadiusKm,
			delta:    1e-6,
		},
		{
			name:     "across the antimeridian",
			a:        coord(0, 179.5),
			b:        coord(0, -179.5),
			expected: 111.19,
			delta:    0.01,
		},
		{
			name:     "London to Paris",
			a:        coord(51.5074, -0.1278),
			b:        coord(48.8566, 2.3522),
			expected: 343.5,
			delta:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.a, tt.b)

			assert.False(t, math.IsNaN(got))
			assert.InDelta(t, tt.expected, got, tt.delta)
		})
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	points := []models.Coordinate{
		coord(0, 0),
		coord(45, 90),
		coord(-33.8688, 151.2093),
		coord(90, 180),
		coord(-90, -180),
		coord(40.7128, -74.0060),
	}

	for _, a := range points {
		for _, b := range points {
			d := Haversine(a, b)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.Equal(t, d, Haversine(b, a), "distance(%v, %v)", a, b)
		}
		assert.Zero(t, Haversine(a, a))
	}
}

func TestHaversine_AdditiveAlongGreatCircle(t *testing.T) {
	// all points share a meridian, so b lies between a and c
	a := coord(-10, 20)
	b := coord(15, 20)
	c := coord(60, 20)

	assert.InDelta(t, Haversine(a, c), Haversine(a, b)+Haversine(b, c), 1e-9)

	// same check along the equator
	a, b, c = coord(0, -50), coord(0, 10), coord(0, 80)
	assert.InDelta(t, Haversine(a, c), Haversine(a, b)+Haversine(b, c), 1e-9)
}

func TestHaversine_MonotonicInSeparation(t *testing.T) {
	origin := coord(0, 0)
	prev := 0.0
	for lon := 1.0; lon <= 180; lon++ {
		d := Haversine(origin, coord(0, lon))
		assert.Greater(t, d, prev)
		prev = d
	}
}

func TestWithin(t *testing.T) {
	origin := coord(0, 0)
	target := coord(0, 1)
	d := Haversine(origin, target)

	assert.True(t, Within(origin, target, 200))
	assert.False(t, Within(origin, target, 50))
	assert.True(t, Within(origin, target, d))
	assert.False(t, Within(origin, target, math.Nextafter(d, 0)))
}
