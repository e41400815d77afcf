package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/jackc/pgx/v5"
)

// fieldsLockKey identifies the advisory lock serializing field inserts.
const fieldsLockKey int64 = 0x6669656c6473

const fieldColumns = `id, name, description, geojson, created_at`

// CreateField inserts a validated field and returns the stored row.
// The duplicate check and the insert run in one transaction holding a
// transaction-scoped advisory lock, so two concurrent inserts of the same
// polygon cannot both succeed.
//
// Parameters:
// - ctx: The context for the operation, allowing for cancellation and timeout.
// - field: The validated field to insert.
// - isDuplicate: Reports whether a stored feature matches the new one. May be nil.
//
// Returns:
// - The stored field with its generated id.
// - ErrDuplicateGeometry if a matching polygon is already stored, or a wrapped database error.
func (r *Repository) CreateField(
	ctx context.Context,
	field models.NewField,
	isDuplicate DuplicateFunc,
) (*models.Field, error) {
	feature, err := json.Marshal(field.Feature)
	if err != nil {
		return nil, fmt.Errorf("failed to encode geojson: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, fieldsLockKey); err != nil {
		return nil, fmt.Errorf("failed to acquire fields lock: %w", err)
	}

	if isDuplicate != nil {
		if err = r.checkDuplicate(ctx, tx, isDuplicate); err != nil {
			return nil, err
		}
	}

	query := `
		INSERT INTO fields (name, description, geojson)
		VALUES ($1, $2, $3)
		RETURNING ` + fieldColumns + `;
	`

	created, err := scanField(tx.QueryRow(ctx, query, field.Name, field.Description, feature))
	if err != nil {
		return nil, fmt.Errorf("failed to insert field: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit field insert: %w", err)
	}

	r.log.DebugContext(ctx, "Field has been created", "id", created.ID, "name", created.Name)

	return created, nil
}

func (r *Repository) checkDuplicate(ctx context.Context, tx pgx.Tx, isDuplicate DuplicateFunc) error {
	rows, err := tx.Query(ctx, `SELECT id, geojson FROM fields;`)
	if err != nil {
		return fmt.Errorf("failed to query stored geometries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     int64
			stored json.RawMessage
		)
		if errScan := rows.Scan(&id, &stored); errScan != nil {
			return fmt.Errorf("failed to scan stored geometry: %w", errScan)
		}
		if isDuplicate(stored) {
			r.log.DebugContext(ctx, "Field geometry matches a stored field", "id", id)
			return ErrDuplicateGeometry
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("failed to read row: %w", err)
	}

	return nil
}

// ListFields returns every stored field ordered by name.
func (r *Repository) ListFields(ctx context.Context) ([]models.Field, error) {
	query := `SELECT ` + fieldColumns + ` FROM fields ORDER BY name ASC, id ASC;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fields: %w", err)
	}
	defer rows.Close()

	fields := make([]models.Field, 0)
	for rows.Next() {
		field, errScan := scanField(rows)
		if errScan != nil {
			return nil, fmt.Errorf("failed to scan field: %w", errScan)
		}
		fields = append(fields, *field)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return fields, nil
}

// GetField returns the field with the given id or ErrFieldNotFound.
func (r *Repository) GetField(ctx context.Context, id int64) (*models.Field, error) {
	query := `SELECT ` + fieldColumns + ` FROM fields WHERE id = $1;`

	field, err := scanField(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get field %d: %w", id, err)
	}

	return field, nil
}

// GetFieldByGeoJSONID looks a field up by the id carried in its GeoJSON feature,
// either the top-level feature id or properties.id.
func (r *Repository) GetFieldByGeoJSONID(ctx context.Context, geojsonID string) (*models.Field, error) {
	query := `
		SELECT ` + fieldColumns + `
		FROM fields
		WHERE geojson->>'id' = $1 OR geojson->'properties'->>'id' = $1
		ORDER BY id ASC
		LIMIT 1;
	`

	field, err := scanField(r.db.QueryRow(ctx, query, geojsonID))
	if err != nil {
		return nil, fmt.Errorf("failed to get field by geojson id %q: %w", geojsonID, err)
	}

	return field, nil
}

// UpdateField applies a partial update in a single statement. Values absent from
// the update keep their stored value.
func (r *Repository) UpdateField(ctx context.Context, id int64, update models.FieldUpdate) (*models.Field, error) {
	query := `
		UPDATE fields
		SET
			name = CASE WHEN $2::boolean THEN $3::text ELSE name END,
			description = CASE WHEN $4::boolean THEN $5::text ELSE description END
		WHERE id = $1
		RETURNING ` + fieldColumns + `;
	`

	field, err := scanField(r.db.QueryRow(ctx, query,
		id,
		update.Name != nil, valueOf(update.Name),
		update.Description != nil, valueOf(update.Description),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update field %d: %w", id, err)
	}

	r.log.DebugContext(ctx, "Field has been updated", "id", id)

	return field, nil
}

// DeleteField removes the field with the given id.
func (r *Repository) DeleteField(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM fields WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete field %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFieldNotFound
	}

	return nil
}

// DeleteFieldByGeoJSONID removes every field whose feature carries geojsonID.
func (r *Repository) DeleteFieldByGeoJSONID(ctx context.Context, geojsonID string) error {
	query := `DELETE FROM fields WHERE geojson->>'id' = $1 OR geojson->'properties'->>'id' = $1;`

	tag, err := r.db.Exec(ctx, query, geojsonID)
	if err != nil {
		return fmt.Errorf("failed to delete field by geojson id %q: %w", geojsonID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFieldNotFound
	}

	return nil
}

func scanField(row pgx.Row) (*models.Field, error) {
	var field models.Field
	err := row.Scan(&field.ID, &field.Name, &field.Description, &field.GeoJSON, &field.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, err
	}

	return &field, nil
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
