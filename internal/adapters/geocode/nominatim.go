package geocode

import (
	"context"
	"errors"
	"fmt"
	"nearby-places-service/internal/domain"
	"nearby-places-service/internal/platform/httpx"
	"nearby-places-service/internal/platform/obs"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

var zipcodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// NominatimGeocoder implements ports.Geocoder using the OpenStreetMap
// Nominatim search API. Each call issues exactly one request.
type NominatimGeocoder struct {
	client *httpx.Client
}

func NewNominatimGeocoder(baseURL, userAgent string, session *http.Client) (*NominatimGeocoder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("nominatim base url is empty")
	}
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}

	client := httpx.NewClient(baseURL, session)
	client.SetHeader("User-Agent", userAgent)

	return &NominatimGeocoder{client: client}, nil
}

// Geocode resolves address to the first (best) match.
// found is false when Nominatim returns no match.
func (n *NominatimGeocoder) Geocode(
	ctx context.Context,
	address string,
) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "nominatim.Geocode")(&err)

	q := url.Values{}
	q.Set("q", queryText(address))
	q.Set("format", "jsonv2")
	q.Set("limit", "1")

	var decoded []searchResult
	if err := n.client.GetJSON(ctx, "/search", q, &decoded); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode %q: %w", address, err)
	}

	if len(decoded) == 0 {
		return domain.Coordinates{}, false, nil
	}

	best := decoded[0]
	lat, err := strconv.ParseFloat(best.Lat, 64)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode %q: invalid latitude %q: %w", address, best.Lat, err)
	}
	lon, err := strconv.ParseFloat(best.Lon, 64)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("geocode %q: invalid longitude %q: %w", address, best.Lon, err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}

// queryText collapses whitespace and qualifies bare US ZIP codes with the country.
func queryText(address string) string {
	norm := strings.Join(strings.Fields(address), " ")
	if isZipcode(norm) {
		return norm + ", USA"
	}
	return norm
}

func isZipcode(s string) bool {
	return zipcodePattern.MatchString(s)
}
