package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/alpinemaps/venue-map-server/src/models"
)

// CategoryList accepts either a JSON array of strings or a single
// comma-separated string ("bars, clubs") and normalizes to trimmed values.
type CategoryList []string

func (cl *CategoryList) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parts := strings.Split(asString, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		*cl = out
		return nil
	}

	var asSlice []string
	if err := json.Unmarshal(data, &asSlice); err != nil {
		return fmt.Errorf("category must be a string or an array of strings")
	}
	out := make([]string, 0, len(asSlice))
	for _, p := range asSlice {
		out = append(out, strings.TrimSpace(p))
	}
	*cl = out
	return nil
}

// FlexInt accepts a JSON number or a numeric string.
type FlexInt int

func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	var asInt int
	if err := json.Unmarshal(data, &asInt); err == nil {
		*fi = FlexInt(asInt)
		return nil
	}
	var asFloat float64
	if err := json.Unmarshal(data, &asFloat); err == nil {
		*fi = FlexInt(int(asFloat))
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		n, convErr := strconv.Atoi(strings.TrimSpace(asString))
		if convErr != nil {
			return fmt.Errorf("not a valid integer: %q", asString)
		}
		*fi = FlexInt(n)
		return nil
	}
	return fmt.Errorf("not a valid integer")
}

// LocationInput accepts either {lat, lng} or a raw GeoJSON
// {type, coordinates} object and normalizes to a GeoJSON Point.
type LocationInput struct {
	point models.GeoPoint
}

func (li *LocationInput) UnmarshalJSON(data []byte) error {
	var raw struct {
		Lat         *float64  `json:"lat"`
		Lng         *float64  `json:"lng"`
		Type        string    `json:"type"`
		Coordinates []float64 `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.Lat != nil && raw.Lng != nil:
		li.point = models.GeoPoint{Type: "Point", Coordinates: []float64{*raw.Lng, *raw.Lat}}
	case len(raw.Coordinates) == 2:
		li.point = models.GeoPoint{Type: "Point", Coordinates: raw.Coordinates}
	default:
		return fmt.Errorf("location must be {lat, lng} or a GeoJSON Point")
	}
	return nil
}

// Point returns the normalized GeoJSON Point.
func (li *LocationInput) Point() models.GeoPoint {
	return li.point
}

// clampImportance coerces importance into [MinImportance, MaxImportance].
// Out-of-range input is silently clamped, never rejected.
func clampImportance(v int) int {
	if v < models.MinImportance {
		return models.MinImportance
	}
	if v > models.MaxImportance {
		return models.MaxImportance
	}
	return v
}
