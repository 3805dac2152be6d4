package domain

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Return coordinates as an orb.Point ([lon, lat]) for geometry helpers.
func (c Coordinates) Point() orb.Point { return orb.Point{c.Lon, c.Lat} }

// LocationHint renders the local-search locational query "@{lat},{lon},{zoom}z".
func (c Coordinates) LocationHint(zoom int) string {
	return fmt.Sprintf("@%s,%s,%dz", formatDegrees(c.Lat), formatDegrees(c.Lon), zoom)
}

func (c Coordinates) String() string {
	return formatDegrees(c.Lat) + ", " + formatDegrees(c.Lon)
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
