package search

import (
	"context"
	"nearby-places-service/internal/domain"
)

// MockLocalSearcher returns a fixed result set and records every request.
type MockLocalSearcher struct {
	places   []domain.Place
	err      error
	Requests []domain.LocalSearchRequest
}

func NewMockLocalSearcher(places []domain.Place) *MockLocalSearcher {
	return &MockLocalSearcher{places: places}
}

// NewFailingLocalSearcher returns a searcher whose every call fails with err.
func NewFailingLocalSearcher(err error) *MockLocalSearcher {
	return &MockLocalSearcher{err: err}
}

func (s *MockLocalSearcher) Search(ctx context.Context, req domain.LocalSearchRequest) ([]domain.Place, error) {
	s.Requests = append(s.Requests, req)
	if s.err != nil {
		return nil, s.err
	}

	out := make([]domain.Place, len(s.places))
	copy(out, s.places)
	return out, nil
}
