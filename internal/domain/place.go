package domain

// Nested coordinate object of a local search result.
// Either value may be missing in the provider payload.
type GPSCoordinates struct {
	Latitude  *float64
	Longitude *float64
}

// Coordinates reports the point only when both latitude and longitude are present.
func (g *GPSCoordinates) Coordinates() (Coordinates, bool) {
	if g == nil || g.Latitude == nil || g.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *g.Latitude, Lon: *g.Longitude}, true
}

// Represents a single point of interest returned by a local search.
// All fields are optional; absent values are defaulted at display time.
// A Place is read-only once the search adapter has produced it.
type Place struct {
	PlaceID *string
	Title   *string
	Address *string
	Type    *string
	Rating  *float64
	Reviews *int
	GPS     *GPSCoordinates
}

func (p Place) DisplayTitle() string {
	if p.Title == nil {
		return "Unknown"
	}
	return *p.Title
}

func (p Place) DisplayAddress() string {
	if p.Address == nil {
		return "No address"
	}
	return *p.Address
}

// Location returns the place coordinates when both values are present.
func (p Place) Location() (Coordinates, bool) {
	return p.GPS.Coordinates()
}

// A Place paired with its distance from the origin.
// The distance is a transient ranking key and is never stored on the Place.
type RankedPlace struct {
	Place    Place
	Distance Distance
}

// OtherCategory holds places the search returned without a type.
const OtherCategory = "Other"

// Category groups ranked places sharing a type, in ranking order.
type Category struct {
	Type   string
	Places []RankedPlace
}
