// Package handler exposes the field and weather services over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/Houeta/field-weather-service/internal/service"
	"github.com/Houeta/field-weather-service/internal/validation"
	"github.com/gorilla/mux"
)

// maxBodyBytes bounds request bodies; a polygon payload is far smaller.
const maxBodyBytes = 1 << 20

// FieldService provides field storage methods.
type FieldService interface {
	CreateField(ctx context.Context, body []byte) (*models.Field, error)
	ListFields(ctx context.Context) ([]models.Field, error)
	GetField(ctx context.Context, id int64) (*models.Field, error)
	GetFieldByGeoJSONID(ctx context.Context, geojsonID string) (*models.Field, error)
	UpdateField(ctx context.Context, id int64, body []byte) (*models.Field, error)
	DeleteField(ctx context.Context, id int64) error
	DeleteFieldByGeoJSONID(ctx context.Context, geojsonID string) error
	Ping(ctx context.Context) error
}

// WeatherService provides weather lookup for stored fields.
type WeatherService interface {
	ResolveWeatherForField(ctx context.Context, fieldID int64) (json.RawMessage, error)
}

// Server handles field and weather requests.
type Server struct {
	fields  FieldService
	weather WeatherService
	log     *slog.Logger
}

// NewServer creates new Server.
func NewServer(fields FieldService, weather WeatherService, log *slog.Logger) *Server {
	return &Server{fields: fields, weather: weather, log: log}
}

// PingHandler checks the database connection.
func (s *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.fields.Ping(r.Context()); err != nil {
		s.log.ErrorContext(r.Context(), "Database ping failed", "error", err)
		respondErr(w, http.StatusInternalServerError, "Database connection failed")
		return
	}

	respond(w, http.StatusOK, messageResponse{Message: "Database connection successful"})
}

// ListFieldsHandler returns every field ordered by name.
func (s *Server) ListFieldsHandler(w http.ResponseWriter, r *http.Request) {
	fields, err := s.fields.ListFields(r.Context())
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to list fields", "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to fetch fields")
		return
	}

	respond(w, http.StatusOK, fields)
}

// CreateFieldHandler validates and stores a new field.
func (s *Server) CreateFieldHandler(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	field, err := s.fields.CreateField(r.Context(), body)
	if issues, isValidation := validation.Issues(err); isValidation {
		s.log.DebugContext(r.Context(), "Rejected field payload", "issues", len(issues))
		respondErr(w, http.StatusBadRequest, "Invalid input", issues...)
		return
	}
	if errors.Is(err, service.ErrDuplicateGeometry) {
		respondErr(w, http.StatusConflict, "A field with the same geometry already exists")
		return
	}
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to create field", "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to create field")
		return
	}

	respond(w, http.StatusCreated, fieldResponse{Message: "Field created successfully", Field: field})
}

// GetFieldHandler returns a field by id.
func (s *Server) GetFieldHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := fieldID(w, r)
	if !ok {
		return
	}

	field, err := s.fields.GetField(r.Context(), id)
	s.respondField(w, r, field, err)
}

// GetFieldByGeoJSONIDHandler returns a field by the id of its GeoJSON feature.
func (s *Server) GetFieldByGeoJSONIDHandler(w http.ResponseWriter, r *http.Request) {
	field, err := s.fields.GetFieldByGeoJSONID(r.Context(), mux.Vars(r)["geojsonId"])
	s.respondField(w, r, field, err)
}

func (s *Server) respondField(w http.ResponseWriter, r *http.Request, field *models.Field, err error) {
	if errors.Is(err, service.ErrFieldNotFound) {
		respondErr(w, http.StatusNotFound, "Field not found")
		return
	}
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to get field", "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to fetch field")
		return
	}

	respond(w, http.StatusOK, field)
}

// UpdateFieldHandler changes the name and/or description of a field.
func (s *Server) UpdateFieldHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := fieldID(w, r)
	if !ok {
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	field, err := s.fields.UpdateField(r.Context(), id, body)
	if issues, isValidation := validation.Issues(err); isValidation {
		respondErr(w, http.StatusBadRequest, "Invalid input", issues...)
		return
	}
	switch {
	case errors.Is(err, service.ErrEmptyUpdate):
		respondErr(w, http.StatusBadRequest, "Invalid input", validation.Issue{
			Message: "At least one of name or description must be provided",
			Path:    []any{},
		})
	case errors.Is(err, service.ErrFieldNotFound):
		respondErr(w, http.StatusNotFound, "Field not found", validation.Issue{
			Message: fmt.Sprintf("Field with id %d does not exist", id),
			Path:    []any{"id"},
		})
	case err != nil:
		s.log.ErrorContext(r.Context(), "Failed to update field", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to update field")
	default:
		respond(w, http.StatusOK, fieldResponse{Message: "Field updated successfully", Field: field})
	}
}

// DeleteFieldHandler removes a field by id.
func (s *Server) DeleteFieldHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := fieldID(w, r)
	if !ok {
		return
	}

	s.respondDeleted(w, r, s.fields.DeleteField(r.Context(), id))
}

// DeleteFieldByGeoJSONIDHandler removes the fields carrying the GeoJSON feature id.
func (s *Server) DeleteFieldByGeoJSONIDHandler(w http.ResponseWriter, r *http.Request) {
	s.respondDeleted(w, r, s.fields.DeleteFieldByGeoJSONID(r.Context(), mux.Vars(r)["geojsonId"]))
}

func (s *Server) respondDeleted(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, service.ErrFieldNotFound) {
		respondErr(w, http.StatusNotFound, "Field not found")
		return
	}
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to delete field", "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to delete field")
		return
	}

	respond(w, http.StatusOK, messageResponse{Message: "Field deleted successfully"})
}

// WeatherHandler returns the weather payload of the station nearest to the field.
func (s *Server) WeatherHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := fieldID(w, r)
	if !ok {
		return
	}

	payload, err := s.weather.ResolveWeatherForField(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrFieldNotFound):
		respondErr(w, http.StatusNotFound, "Field not found")
	case errors.Is(err, service.ErrNoStationAvailable):
		respondErr(w, http.StatusNotFound, "No weather station found")
	case errors.Is(err, service.ErrInvalidGeometry), errors.Is(err, service.ErrDegeneratePolygon):
		s.log.WarnContext(r.Context(), "Field geometry cannot be used for weather", "id", id, "error", err)
		respondErr(w, http.StatusUnprocessableEntity, "Field geometry is invalid")
	case err != nil:
		s.log.ErrorContext(r.Context(), "Failed to fetch weather data", "id", id, "error", err)
		respondErr(w, http.StatusInternalServerError, "Failed to fetch weather data")
	default:
		respondRaw(w, http.StatusOK, payload)
	}
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.log.DebugContext(r.Context(), "Failed to read request body", "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondErr(w, http.StatusRequestEntityTooLarge, "Request body too large", validation.Issue{
				Message: fmt.Sprintf("Request body must be %d bytes or less", tooLarge.Limit),
				Path:    []any{},
			})
			return nil, false
		}
		respondErr(w, http.StatusBadRequest, "Invalid input", validation.Issue{
			Message: "Request body could not be read",
			Path:    []any{},
		})
		return nil, false
	}

	return body, true
}

func fieldID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		respondErr(w, http.StatusBadRequest, "Invalid field id")
		return 0, false
	}

	return id, true
}
