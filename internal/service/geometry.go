package service

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// outerRing extracts geometry.coordinates[0] from a stored Polygon feature.
func outerRing(raw json.RawMessage) (orb.Ring, error) {
	feature, err := geojson.UnmarshalFeature(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGeometry, err)
	}

	polygon, ok := feature.Geometry.(orb.Polygon)
	if !ok || len(polygon) == 0 {
		return nil, ErrInvalidGeometry
	}

	return polygon[0], nil
}
