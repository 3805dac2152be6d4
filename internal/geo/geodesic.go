package geo

import (
	"github.com/paulmach/orb"
	"github.com/tidwall/geodesic"
)

const MetersPerMile = 1609.344

// GeodesicMeters returns the shortest distance between two points on the
// WGS-84 ellipsoid, including nearly antipodal pairs.
func GeodesicMeters(a, b orb.Point) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Lat(), a.Lon(), b.Lat(), b.Lon(), &meters, nil, nil)
	return meters
}

// GeodesicMiles is GeodesicMeters expressed in statute miles.
func GeodesicMiles(a, b orb.Point) float64 {
	return GeodesicMeters(a, b) / MetersPerMile
}
