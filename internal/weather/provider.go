package weather

import (
	"context"
	"encoding/json"

	"github.com/Houeta/field-weather-service/internal/models"
)

// Provider is an interface that defines a method for fetching weather data of a station.
// The returned payload is the upstream JSON body, untouched.
type Provider interface {
	Fetch(ctx context.Context, station models.Station) (json.RawMessage, error)
}
