package dto

type OriginResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceMiles is null when the place has no coordinates.
type PlaceResponse struct {
	PlaceID       *string  `json:"place_id,omitempty"`
	Title         string   `json:"title"`
	Address       string   `json:"address"`
	Type          *string  `json:"type,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Reviews       *int     `json:"reviews,omitempty"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	DistanceMiles *float64 `json:"distance_miles"`
}

type CategoryResponse struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Summary is the per-category text, one line per category.
type NearbyResponse struct {
	Origin     OriginResponse     `json:"origin"`
	Places     []PlaceResponse    `json:"places"`
	Categories []CategoryResponse `json:"categories"`
	Summary    string             `json:"summary"`
}

type SavedSearchResponse struct {
	SearchID int    `json:"search_id"`
	Address  string `json:"address"`
	Query    string `json:"query"`
	Location string `json:"location"`
	Zoom     int    `json:"zoom"`
	Locale   string `json:"locale"`
}

type ListSavedSearchesResponse struct {
	SavedSearches []SavedSearchResponse `json:"saved_searches"`
}
