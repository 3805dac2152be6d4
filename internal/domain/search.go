package domain

// Parameters of a single location-scoped search.
type LocalSearchRequest struct {
	Query    string
	Origin   Coordinates
	Zoom     int
	Location string
	Locale   string
}

// Represents a stored search input: which address to geocode and what to look for nearby.
// Only inputs are stored; ranked results are never persisted.
type SavedSearch struct {
	ID       int
	Address  string
	Query    string
	Location string
	Zoom     int
	Locale   string
}
