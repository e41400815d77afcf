package service_test

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/Houeta/field-weather-service/internal/models"
)

// farmFeature is a square of about 5 acres near Fort Collins.
const farmFeature = `{"type":"Feature","id":"c0ffee","properties":{},"geometry":{"type":"Polygon",` +
	`"coordinates":[[[-105,40],[-104.9983,40],[-104.9983,40.0013],[-105,40.0013],[-105,40]]]}}`

const farmBody = `{"name":"Farm A","description":"north","geojson":` + farmFeature + `}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func storedField(id int64, feature string) *models.Field {
	return &models.Field{ID: id, Name: "Farm A", Description: "north", GeoJSON: json.RawMessage(feature)}
}
