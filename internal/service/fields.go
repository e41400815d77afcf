package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Houeta/field-weather-service/internal/geometry"
	"github.com/Houeta/field-weather-service/internal/metrics"
	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/Houeta/field-weather-service/internal/repository"
	"github.com/Houeta/field-weather-service/internal/validation"
	"github.com/paulmach/orb"
)

// DefaultDuplicateTolerance is the per-axis distance in degrees under which two
// positions are treated as the same point.
const DefaultDuplicateTolerance = 1e-9

// FieldService validates field payloads and stores them through the repository.
type FieldService struct {
	log       *slog.Logger         // Logger for logging service activities
	repo      repository.Interface // Interface for data repository access
	metrics   *metrics.Metrics     // Metrics for tracking created and rejected fields
	tolerance float64              // Tolerance of the duplicate geometry check
}

// NewFieldService creates a new instance of FieldService.
// A non-positive tolerance falls back to DefaultDuplicateTolerance.
func NewFieldService(
	log *slog.Logger,
	repo repository.Interface,
	metrics *metrics.Metrics,
	tolerance float64,
) *FieldService {
	if tolerance <= 0 {
		tolerance = DefaultDuplicateTolerance
	}

	return &FieldService{log: log, repo: repo, metrics: metrics, tolerance: tolerance}
}

// CreateField validates body and stores the field. It returns a *validation.Error
// for rejected payloads and ErrDuplicateGeometry when the polygon is already stored.
func (s *FieldService) CreateField(ctx context.Context, body []byte) (*models.Field, error) {
	field, err := validation.ValidateField(body)
	if err != nil {
		s.metrics.ValidationFailures.WithLabelValues("create").Inc()
		return nil, err
	}

	polygon, ok := field.Feature.Geometry.(orb.Polygon)
	if !ok || len(polygon) == 0 {
		return nil, ErrInvalidGeometry
	}

	created, err := s.repo.CreateField(ctx, *field, s.sameGeometry(polygon[0]))
	if err != nil {
		return nil, fmt.Errorf("failed to create field: %w", err)
	}

	s.metrics.FieldsCreated.Inc()
	s.log.InfoContext(ctx, "Field created", "id", created.ID, "name", created.Name)

	return created, nil
}

// sameGeometry builds the duplicate predicate for the outer ring of a new field.
// Stored features that cannot be decoded never match.
func (s *FieldService) sameGeometry(ring orb.Ring) repository.DuplicateFunc {
	return func(stored json.RawMessage) bool {
		other, err := outerRing(stored)
		if err != nil {
			return false
		}
		return geometry.RingsMatch(ring, other, s.tolerance)
	}
}

func (s *FieldService) ListFields(ctx context.Context) ([]models.Field, error) {
	fields, err := s.repo.ListFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fields: %w", err)
	}

	return fields, nil
}

func (s *FieldService) GetField(ctx context.Context, id int64) (*models.Field, error) {
	return s.repo.GetField(ctx, id)
}

func (s *FieldService) GetFieldByGeoJSONID(ctx context.Context, geojsonID string) (*models.Field, error) {
	return s.repo.GetFieldByGeoJSONID(ctx, geojsonID)
}

// UpdateField applies the name and description present in body to the field.
// The geometry of a field is never changed.
func (s *FieldService) UpdateField(ctx context.Context, id int64, body []byte) (*models.Field, error) {
	update, err := validation.ValidateFieldUpdate(body)
	if err != nil {
		s.metrics.ValidationFailures.WithLabelValues("update").Inc()
		return nil, err
	}
	if update.IsEmpty() {
		s.metrics.ValidationFailures.WithLabelValues("update").Inc()
		return nil, ErrEmptyUpdate
	}

	field, err := s.repo.UpdateField(ctx, id, *update)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "Field updated", "id", id)

	return field, nil
}

func (s *FieldService) DeleteField(ctx context.Context, id int64) error {
	if err := s.repo.DeleteField(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "Field deleted", "id", id)
	return nil
}

func (s *FieldService) DeleteFieldByGeoJSONID(ctx context.Context, geojsonID string) error {
	if err := s.repo.DeleteFieldByGeoJSONID(ctx, geojsonID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "Field deleted", "geojson_id", geojsonID)
	return nil
}

// Ping reports whether the store is reachable.
func (s *FieldService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
