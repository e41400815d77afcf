// Package repository persists fields in PostgreSQL.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/Houeta/field-weather-service/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrFieldNotFound is returned when no row matches the requested field.
	ErrFieldNotFound = errors.New("field not found")
	// ErrDuplicateGeometry is returned when a stored field already has the same polygon.
	ErrDuplicateGeometry = errors.New("field with the same geometry already exists")
)

// Database is the subset of pgxpool.Pool used by the repository.
// pgxmock pools satisfy it as well.
type Database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// DuplicateFunc reports whether a stored GeoJSON feature describes the same geometry
// as the field being inserted.
type DuplicateFunc func(stored json.RawMessage) bool

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	CreateField(ctx context.Context, field models.NewField, isDuplicate DuplicateFunc) (*models.Field, error)
	ListFields(ctx context.Context) ([]models.Field, error)
	GetField(ctx context.Context, id int64) (*models.Field, error)
	GetFieldByGeoJSONID(ctx context.Context, geojsonID string) (*models.Field, error)
	UpdateField(ctx context.Context, id int64, update models.FieldUpdate) (*models.Field, error)
	DeleteField(ctx context.Context, id int64) error
	DeleteFieldByGeoJSONID(ctx context.Context, geojsonID string) error
	Ping(ctx context.Context) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// Ping checks that the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
