package search

import (
	"bytes"
	"encoding/json"
	"math"
	"nearby-places-service/internal/domain"
	"strconv"
	"strings"
)

type localSearchResponse struct {
	Error          string        `json:"error"`
	SearchMetadata *struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"search_metadata"`
	LocalResults []localResult `json:"local_results"`
}

type localResult struct {
	PlaceID        *string         `json:"place_id"`
	Title          *string         `json:"title"`
	Address        *string         `json:"address"`
	Type           *string         `json:"type"`
	Rating         looseNumber     `json:"rating"`
	Reviews        looseNumber     `json:"reviews"`
	GPSCoordinates *gpsCoordinates `json:"gps_coordinates"`
}

type gpsCoordinates struct {
	Latitude  looseNumber `json:"latitude"`
	Longitude looseNumber `json:"longitude"`
}

// looseNumber accepts JSON numbers and numeric strings such as "4.5",
// "1,204" or "1.2K". Anything else decodes as absent instead of failing the
// whole response.
type looseNumber struct {
	value *float64
}

var magnitudes = map[byte]float64{'k': 1e3, 'm': 1e6}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	n.value = nil

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	switch data[0] {
	case '"':
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		raw = string(data)
	default:
		return nil
	}

	raw = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""))
	scale := 1.0
	if len(raw) > 0 {
		if m, ok := magnitudes[raw[len(raw)-1]]; ok {
			scale = m
			raw = raw[:len(raw)-1]
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	v *= scale
	n.value = &v
	return nil
}

func (n looseNumber) asFloat() *float64 {
	return n.value
}

func (n looseNumber) asInt() *int {
	if n.value == nil {
		return nil
	}
	i := int(math.Round(*n.value))
	return &i
}

// toPlace copies the optional fields as-is; defaults are applied at display time.
func (r localResult) toPlace() domain.Place {
	p := domain.Place{
		PlaceID: r.PlaceID,
		Title:   r.Title,
		Address: r.Address,
		Type:    r.Type,
		Rating:  r.Rating.asFloat(),
		Reviews: r.Reviews.asInt(),
	}

	if r.GPSCoordinates != nil {
		p.GPS = &domain.GPSCoordinates{
			Latitude:  r.GPSCoordinates.Latitude.asFloat(),
			Longitude: r.GPSCoordinates.Longitude.asFloat(),
		}
	}

	return p
}
