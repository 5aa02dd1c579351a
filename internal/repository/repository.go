// Package repository stores task measurements and coverage snapshots in PostgreSQL.
package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database is the subset of *pgxpool.Pool used by Repository. pgxmock pools satisfy it too.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type Repository struct {
	db  Database
	log *slog.Logger
}

type Interface interface {
	FetchTasksForMeasurement(ctx context.Context, limit int) ([]models.Task, error)
	UpdateTaskMeasurement(ctx context.Context, taskID int, m models.Measurement) error
	SaveCoverage(ctx context.Context, coverage models.Coverage) error
	LatestCoverage(ctx context.Context) (*models.Coverage, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
