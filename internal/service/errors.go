package service

import (
	"errors"

	"github.com/Houeta/field-weather-service/internal/geometry"
	"github.com/Houeta/field-weather-service/internal/repository"
	"github.com/Houeta/field-weather-service/internal/weather"
)

var (
	// ErrFieldNotFound is returned when the requested field does not exist.
	ErrFieldNotFound = repository.ErrFieldNotFound
	// ErrDuplicateGeometry is returned when a field with the same polygon is already stored.
	ErrDuplicateGeometry = repository.ErrDuplicateGeometry
	// ErrEmptyUpdate is returned when an update carries neither name nor description.
	ErrEmptyUpdate = errors.New("at least one of name or description must be provided")
	// ErrInvalidGeometry is returned when a stored field has no usable polygon ring.
	ErrInvalidGeometry = errors.New("field geometry is not a polygon feature")
	// ErrDegeneratePolygon is returned when the outer ring has no area.
	ErrDegeneratePolygon = geometry.ErrDegeneratePolygon
	// ErrNoStationAvailable is returned when the station directory is empty.
	ErrNoStationAvailable = errors.New("no weather station available")
	// ErrUpstreamWeatherFailure is returned when the station endpoint fails.
	ErrUpstreamWeatherFailure = weather.ErrUpstreamFailure
)
