package validation

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

type featureShape struct {
	Type       string          `json:"type"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties json.RawMessage `json:"properties"`
	ID         json.RawMessage `json:"id"`
}

type geometryShape struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// checkGeoJSON verifies that raw is a Polygon Feature and returns its polygon.
// The returned polygon is only meaningful when no issue was added.
func checkGeoJSON(col *collector, raw json.RawMessage) orb.Polygon {
	if isAbsent(raw) {
		col.add("GeoJSON is required", "geojson")
		return nil
	}

	var feature featureShape
	if err := json.Unmarshal(raw, &feature); err != nil {
		col.add(MsgExpectedObject, "geojson")
		return nil
	}

	if feature.Type != "Feature" {
		col.add(`Invalid literal value, expected "Feature"`, "geojson", "type")
	}

	if !isAbsent(feature.Properties) {
		var props map[string]any
		if err := json.Unmarshal(feature.Properties, &props); err != nil {
			col.add(MsgExpectedObject, "geojson", "properties")
		}
	}

	if !isAbsent(feature.ID) {
		var id string
		if err := json.Unmarshal(feature.ID, &id); err != nil {
			col.add("Expected string", "geojson", "id")
		}
	}

	if isAbsent(feature.Geometry) {
		col.add("Geometry is required", "geojson", "geometry")
		return nil
	}

	var geom geometryShape
	if err := json.Unmarshal(feature.Geometry, &geom); err != nil {
		col.add(MsgExpectedObject, "geojson", "geometry")
		return nil
	}

	if geom.Type != "Polygon" {
		col.add(`Invalid literal value, expected "Polygon"`, "geojson", "geometry", "type")
	}

	return checkCoordinates(col, geom.Coordinates)
}

func checkCoordinates(col *collector, raw json.RawMessage) orb.Polygon {
	var rings []json.RawMessage
	if isAbsent(raw) || json.Unmarshal(raw, &rings) != nil {
		col.add("Expected an array of rings", "geojson", "geometry", "coordinates")
		return nil
	}

	if len(rings) == 0 {
		col.add("Polygon must have at least one ring", "geojson", "geometry", "coordinates")
		return nil
	}

	polygon := make(orb.Polygon, 0, len(rings))
	for i, rawRing := range rings {
		var positions [][]float64
		if err := json.Unmarshal(rawRing, &positions); err != nil {
			col.add("Expected an array of positions made of numbers", "geojson", "geometry", "coordinates", i)
			continue
		}

		ring := make(orb.Ring, 0, len(positions))
		valid := true
		for j, pos := range positions {
			if len(pos) != positionLength {
				col.add(MsgPositionLength, "geojson", "geometry", "coordinates", i, j)
				valid = false
				continue
			}
			ring = append(ring, orb.Point{pos[0], pos[1]})
		}
		if !valid {
			continue
		}

		if len(ring) < minRingPositions {
			col.add("Polygon ring must have at least 4 positions", "geojson", "geometry", "coordinates", i)
			continue
		}

		if !ring.Closed() {
			col.add("First and last positions of a ring must be equal", "geojson", "geometry", "coordinates", i)
			continue
		}

		polygon = append(polygon, ring)
	}

	return polygon
}
