// Package validation checks field payloads before they reach the store.
package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/Houeta/field-weather-service/internal/geometry"
	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/paulmach/orb/geojson"
)

// Field limits.
const (
	MaxNameLength        = 20
	MaxDescriptionLength = 200
	MaxAreaAcres         = 100
	minRingPositions     = 4
	positionLength       = 2
)

// Validation messages shared with API clients.
const (
	MsgNameRequired       = "Name is required"
	MsgNameTooLong        = "Name must be 20 characters or less"
	MsgNameNotString      = "Name must be a string"
	MsgDescriptionTooLong = "Description must be 200 characters or less"
	MsgDescriptionString  = "Description must be a string"
	MsgAreaTooLarge       = "Polygon area exceeds 100 acres"
	MsgDegeneratePolygon  = "Polygon must have at least 3 distinct vertices and a non-zero area"
	MsgPositionLength     = "Position must have exactly 2 numbers"
	MsgExpectedObject     = "Expected object"
)

// ValidateField checks a field creation payload. Name, description and GeoJSON shape issues
// are reported together; the outer ring's area is checked only once the payload is otherwise valid.
func ValidateField(body []byte) (*models.NewField, error) {
	var col collector

	payload, ok := decodeObject(body)
	if !ok {
		col.add(MsgExpectedObject)
		return nil, col.err()
	}

	name, _ := checkName(&col, payload, true)
	description, _ := checkDescription(&col, payload)
	polygon := checkGeoJSON(&col, payload["geojson"])

	if err := col.err(); err != nil {
		return nil, err
	}

	feature, err := geojson.UnmarshalFeature(payload["geojson"])
	if err != nil {
		col.add(fmt.Sprintf("Invalid GeoJSON: %v", err), "geojson")
		return nil, col.err()
	}
	feature.Geometry = polygon

	if _, err := geometry.CentroidOfRing(polygon[0]); err != nil {
		col.add(MsgDegeneratePolygon, "geojson", "geometry", "coordinates", 0)
		return nil, col.err()
	}

	if geometry.AreaAcres(polygon) > MaxAreaAcres {
		col.add(MsgAreaTooLarge, "geojson")
		return nil, col.err()
	}

	return &models.NewField{Name: name, Description: description, Feature: feature}, nil
}

// ValidateFieldUpdate checks a partial update payload. Only name and description are read.
// Whether at least one of them is present is left to the caller.
func ValidateFieldUpdate(body []byte) (*models.FieldUpdate, error) {
	var col collector

	payload, ok := decodeObject(body)
	if !ok {
		col.add(MsgExpectedObject)
		return nil, col.err()
	}

	var update models.FieldUpdate
	if name, present := checkName(&col, payload, false); present {
		update.Name = &name
	}
	if description, present := checkDescription(&col, payload); present {
		update.Description = &description
	}

	if err := col.err(); err != nil {
		return nil, err
	}

	return &update, nil
}

func decodeObject(data []byte) (map[string]json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return nil, false
	}

	return obj, true
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func checkName(col *collector, payload map[string]json.RawMessage, required bool) (string, bool) {
	raw := payload["name"]
	if isAbsent(raw) {
		if required {
			col.add(MsgNameRequired, "name")
		}
		return "", false
	}

	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		col.add(MsgNameNotString, "name")
		return "", false
	}

	switch length := utf8.RuneCountInString(name); {
	case length < 1:
		col.add(MsgNameRequired, "name")
	case length > MaxNameLength:
		col.add(MsgNameTooLong, "name")
	}

	return name, true
}

func checkDescription(col *collector, payload map[string]json.RawMessage) (string, bool) {
	raw := payload["description"]
	if isAbsent(raw) {
		return "", false
	}

	var description string
	if err := json.Unmarshal(raw, &description); err != nil {
		col.add(MsgDescriptionString, "description")
		return "", false
	}

	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		col.add(MsgDescriptionTooLong, "description")
	}

	return description, true
}
