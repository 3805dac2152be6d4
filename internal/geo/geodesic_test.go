package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestGeodesicMeters(t *testing.T) {
	t.Run("same point", func(t *testing.T) {
		p := orb.Point{-87.6295, 41.8586}
		assert.InDelta(t, 0.0, GeodesicMeters(p, p), 1e-9)
		assert.InDelta(t, 0.0, GeodesicMiles(p, p), 1e-9)
	})

	t.Run("flinders peak to buninyong", func(t *testing.T) {
		// Reference line from Vincenty (1975).
		flinders := orb.Point{144.42486788888889, -37.95103341666667}
		buninyong := orb.Point{143.92649552777777, -37.65282113888889}
		assert.InDelta(t, 54972.271, GeodesicMeters(flinders, buninyong), 0.01)
	})

	t.Run("along the equator", func(t *testing.T) {
		d := GeodesicMeters(orb.Point{0, 0}, orb.Point{1, 0})
		assert.InDelta(t, 111319.491, d, 0.01)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := orb.Point{-87.6295, 41.8586}
		b := orb.Point{-87.6656, 41.8470}
		assert.InDelta(t, GeodesicMeters(a, b), GeodesicMeters(b, a), 1e-6)
	})

	t.Run("antipodal on the equator goes over the pole", func(t *testing.T) {
		// Half a meridian.
		d := GeodesicMeters(orb.Point{0, 0}, orb.Point{180, 0})
		assert.InDelta(t, 20003931.4586, d, 0.01)
	})

	t.Run("nearly antipodal", func(t *testing.T) {
		d := GeodesicMeters(orb.Point{0, 0}, orb.Point{179.7, 0})
		assert.Less(t, d, 20003931.5)
		assert.Greater(t, d, 19_900_000.0)
	})
}

func TestGeodesicMiles(t *testing.T) {
	a := orb.Point{-87.6295, 41.8586}
	b := orb.Point{-87.6656, 41.8470}
	assert.InDelta(t, GeodesicMeters(a, b)/MetersPerMile, GeodesicMiles(a, b), 1e-9)
	// Two Chicago points about two miles apart.
	assert.InDelta(t, 2.0, GeodesicMiles(a, b), 0.15)
}
