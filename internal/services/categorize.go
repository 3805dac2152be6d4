package services

import (
	"nearby-places-service/internal/domain"
	"strings"
)

// GroupByType buckets ranked places by their type. Categories appear in the
// order their first place appears, and each keeps the ranking order.
func GroupByType(ranked []domain.RankedPlace) []domain.Category {
	index := make(map[string]int)
	var categories []domain.Category

	for _, rp := range ranked {
		key := domain.OtherCategory
		if rp.Place.Type != nil && strings.TrimSpace(*rp.Place.Type) != "" {
			key = strings.TrimSpace(*rp.Place.Type)
		}

		i, ok := index[key]
		if !ok {
			i = len(categories)
			index[key] = i
			categories = append(categories, domain.Category{Type: key})
		}
		categories[i].Places = append(categories[i].Places, rp)
	}

	return categories
}
