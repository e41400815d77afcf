package models

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb/geojson"
)

// Field is a persisted user-drawn area of interest.
type Field struct {
	ID          int64           `json:"id"`          // ID is generated by the store on creation.
	Name        string          `json:"name"`        // Name is 1 to 20 characters long.
	Description string          `json:"description"` // Description is at most 200 characters long.
	GeoJSON     json.RawMessage `json:"geojson"`     // GeoJSON is the stored Polygon Feature.
	CreatedAt   time.Time       `json:"created_at"`
}

// NewField is a validated field ready to be inserted.
type NewField struct {
	Name        string
	Description string
	Feature     *geojson.Feature
}

// FieldUpdate is a partial update of a field. A nil pointer means the value was not provided.
type FieldUpdate struct {
	Name        *string
	Description *string
}

// IsEmpty reports whether the update carries no value at all.
func (u FieldUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil
}
