package services

import (
	"nearby-places-service/internal/domain"
	"nearby-places-service/internal/geo"
	"slices"
)

// RankByDistance orders places by geodesic distance from origin.
//
// Places without both latitude and longitude get an unknown distance and are
// placed after every place with a known one. The sort is stable, so equal
// distances (including two unknowns) keep their input order. The input slice
// and its places are not modified.
func RankByDistance(origin domain.Coordinates, places []domain.Place) []domain.RankedPlace {
	ranked := make([]domain.RankedPlace, 0, len(places))
	for _, p := range places {
		ranked = append(ranked, domain.RankedPlace{
			Place:    p,
			Distance: DistanceFrom(origin, p),
		})
	}

	slices.SortStableFunc(ranked, func(a, b domain.RankedPlace) int {
		return a.Distance.Compare(b.Distance)
	})

	return ranked
}

// DistanceFrom returns the distance in miles from origin to p, or unknown.
func DistanceFrom(origin domain.Coordinates, p domain.Place) domain.Distance {
	loc, ok := p.Location()
	if !ok {
		return domain.UnknownDistance()
	}
	return domain.KnownDistance(geo.GeodesicMiles(origin.Point(), loc.Point()))
}
