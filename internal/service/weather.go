package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Houeta/field-weather-service/internal/geometry"
	"github.com/Houeta/field-weather-service/internal/metrics"
	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/Houeta/field-weather-service/internal/repository"
	"github.com/Houeta/field-weather-service/internal/weather"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/Houeta/field-weather-service/internal/service"

// StationSource provides the candidate weather stations.
type StationSource interface {
	Stations() []models.Station
}

// WeatherService resolves the weather of a field from the station closest to its centroid.
type WeatherService struct {
	log      *slog.Logger         // Logger for logging service activities
	repo     repository.Interface // Interface for data repository access
	stations StationSource        // Candidate stations
	provider weather.Provider     // Weather provider for the station endpoints
	metrics  *metrics.Metrics     // Metrics for tracking upstream performance
	tracer   trace.Tracer
}

// NewWeatherService creates a new instance of WeatherService.
// A nil tracer provider uses the global one.
func NewWeatherService(
	log *slog.Logger,
	repo repository.Interface,
	stations StationSource,
	provider weather.Provider,
	metrics *metrics.Metrics,
	tp trace.TracerProvider,
) *WeatherService {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return &WeatherService{
		log:      log,
		repo:     repo,
		stations: stations,
		provider: provider,
		metrics:  metrics,
		tracer:   tp.Tracer(tracerName),
	}
}

// ResolveWeatherForField loads the field, computes the centroid of its outer ring,
// picks the nearest station and returns that station's weather payload unchanged.
//
// Errors:
// - ErrFieldNotFound if the field does not exist.
// - ErrInvalidGeometry if the stored feature has no polygon ring.
// - ErrDegeneratePolygon if the ring has no area.
// - ErrNoStationAvailable if there are no stations.
// - ErrUpstreamWeatherFailure if the station endpoint fails.
func (s *WeatherService) ResolveWeatherForField(ctx context.Context, fieldID int64) (json.RawMessage, error) {
	ctx, span := s.tracer.Start(ctx, "WeatherService.ResolveWeatherForField",
		trace.WithAttributes(attribute.Int64("field.id", fieldID)))
	defer span.End()

	payload, err := s.resolve(ctx, fieldID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return payload, nil
}

func (s *WeatherService) resolve(ctx context.Context, fieldID int64) (json.RawMessage, error) {
	field, err := s.loadField(ctx, fieldID)
	if err != nil {
		return nil, err
	}

	centroid, err := s.centroid(ctx, field)
	if err != nil {
		return nil, err
	}

	match, err := s.nearestStation(ctx, centroid)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "Resolved weather station",
		"field", fieldID, "url", match.Station.URL, "distance_km", match.DistanceKm)

	return s.fetch(ctx, match.Station)
}

func (s *WeatherService) loadField(ctx context.Context, fieldID int64) (*models.Field, error) {
	ctx, span := s.tracer.Start(ctx, "repository.GetField")
	defer span.End()

	field, err := s.repo.GetField(ctx, fieldID)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, ErrFieldNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load field %d: %w", fieldID, err)
	}

	return field, nil
}

func (s *WeatherService) centroid(ctx context.Context, field *models.Field) (models.Coordinates, error) {
	_, span := s.tracer.Start(ctx, "geometry.CentroidOfRing")
	defer span.End()

	ring, err := outerRing(field.GeoJSON)
	if err != nil {
		span.RecordError(err)
		return models.Coordinates{}, err
	}

	centroid, err := geometry.CentroidOfRing(ring)
	if err != nil {
		span.RecordError(err)
		return models.Coordinates{}, fmt.Errorf("field %d: %w", field.ID, err)
	}

	span.SetAttributes(
		attribute.Float64("centroid.lat", centroid.Latitude),
		attribute.Float64("centroid.lon", centroid.Longitude),
	)

	return centroid, nil
}

func (s *WeatherService) nearestStation(ctx context.Context, centroid models.Coordinates) (geometry.Match, error) {
	_, span := s.tracer.Start(ctx, "geometry.FindClosestStation")
	defer span.End()

	match, ok := geometry.FindClosestStation(centroid, s.stations.Stations())
	if !ok {
		span.RecordError(ErrNoStationAvailable)
		return geometry.Match{}, ErrNoStationAvailable
	}

	span.SetAttributes(
		attribute.String("station.url", match.Station.URL),
		attribute.Float64("station.distance_km", match.DistanceKm),
	)

	return match, nil
}

func (s *WeatherService) fetch(ctx context.Context, station models.Station) (json.RawMessage, error) {
	ctx, span := s.tracer.Start(ctx, "weather.Fetch", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	startTime := time.Now()
	payload, err := s.provider.Fetch(ctx, station)
	duration := time.Since(startTime).Seconds()

	if err != nil {
		s.metrics.UpstreamSeconds.WithLabelValues("failure").Observe(duration)
		s.metrics.UpstreamErrors.Inc()
		s.log.ErrorContext(ctx, "Failed to fetch weather data", "url", station.URL, "error", err)
		span.RecordError(err)

		if errors.Is(err, ErrUpstreamWeatherFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUpstreamWeatherFailure, err)
	}

	s.metrics.UpstreamSeconds.WithLabelValues("success").Observe(duration)

	return payload, nil
}
