package search

import (
	"context"
	"errors"
	"fmt"
	"nearby-places-service/internal/domain"
	"nearby-places-service/internal/platform/httpx"
	"nearby-places-service/internal/platform/obs"
	"net/http"
	"net/url"
	"strings"
)

// SerpApi reports an empty result page through the error field.
const noResultsMarker = "hasn't returned any results"

// SerpAPISearcher implements ports.LocalSearcher using the SerpApi
// google_local engine. Each call issues exactly one request; results are
// not paginated.
type SerpAPISearcher struct {
	client *httpx.Client
	apiKey string
	engine string
}

func NewSerpAPISearcher(apiKey, baseURL string, session *http.Client) (*SerpAPISearcher, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("SerpApi api key is empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("SerpApi base url is empty")
	}

	client := httpx.NewClient(baseURL, session)
	client.SetSecretParam("api_key")

	return &SerpAPISearcher{
		client: client,
		apiKey: apiKey,
		engine: "google_local",
	}, nil
}

// Search returns the local results for req around req.Origin.
// A missing or empty local_results list yields an empty slice.
func (s *SerpAPISearcher) Search(
	ctx context.Context,
	req domain.LocalSearchRequest,
) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "serpapi.Search")(&err)

	if strings.TrimSpace(req.Query) == "" {
		return nil, errors.New("local search: query must be non-empty")
	}

	q := url.Values{}
	q.Set("engine", s.engine)
	q.Set("q", req.Query)
	q.Set("ll", req.Origin.LocationHint(req.Zoom))
	if req.Location != "" {
		q.Set("location", req.Location)
	}
	if req.Locale != "" {
		q.Set("hl", req.Locale)
	}
	q.Set("api_key", s.apiKey)

	var decoded localSearchResponse
	if err := s.client.GetJSON(ctx, "/search.json", q, &decoded); err != nil {
		return nil, fmt.Errorf("local search %q: %w", req.Query, err)
	}

	if decoded.Error != "" {
		if strings.Contains(decoded.Error, noResultsMarker) {
			return []domain.Place{}, nil
		}
		return nil, fmt.Errorf("local search %q: %s", req.Query, decoded.Error)
	}

	places := make([]domain.Place, 0, len(decoded.LocalResults))
	for _, r := range decoded.LocalResults {
		places = append(places, r.toPlace())
	}

	obs.Logger(ctx).Debug().
		Str("query", req.Query).
		Str("ll", q.Get("ll")).
		Int("results", len(places)).
		Msg("local search complete")

	return places, nil
}
