package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/pkg/spherical"
	"github.com/jackc/pgx/v5"
)

// FetchTasksForMeasurement returns up to limit open tasks that already have
// coordinates but no depot measurement, oldest first.
func (r *Repository) FetchTasksForMeasurement(ctx context.Context, limit int) ([]models.Task, error) {
	query := `
		SELECT task_id, latitude, longitude
		FROM public.tasks
		WHERE
			latitude IS NOT NULL
			AND longitude IS NOT NULL
			AND measured_at IS NULL
			AND is_closed = false
		ORDER BY created_at ASC
		LIMIT $1;
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query geocoded tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var (
			task     models.Task
			lat, lng float64
		)
		if errScan := rows.Scan(&task.ID, &lat, &lng); errScan != nil {
			return nil, fmt.Errorf("failed to scan geocoded task: %w", errScan)
		}
		task.Location = spherical.NewLatLng(lat, lng)
		r.log.DebugContext(ctx, "Received task waiting for measurement", "ID", task.ID, "location", task.Location.String())
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return tasks, nil
}

// UpdateTaskMeasurement stores the distance and heading from the depot and
// marks the task as measured.
func (r *Repository) UpdateTaskMeasurement(ctx context.Context, taskID int, m models.Measurement) error {
	query := `
		UPDATE tasks
		SET
			depot_distance_m = $1,
			depot_heading_deg = $2,
			out_of_range = $3,
			measured_at = NOW()
		WHERE
			task_id = $4;
	`

	_, err := r.db.Exec(ctx, query, m.Distance, m.Heading, m.OutOfRange, taskID)
	if err != nil {
		return fmt.Errorf("failed to update task measurement: %w", err)
	}

	return nil
}

// SaveCoverage appends a snapshot of the covered region.
func (r *Repository) SaveCoverage(ctx context.Context, coverage models.Coverage) error {
	query := `
		INSERT INTO coverage_snapshots
			(south, west, north, east, center_lat, center_lng, area_m2, tasks)
		VALUES
			($1, $2, $3, $4, $5, $6, $7, $8);
	`

	edges := coverage.Bounds.Literal()
	_, err := r.db.Exec(ctx, query,
		edges.South, edges.West, edges.North, edges.East,
		coverage.Center.Lat(), coverage.Center.Lng(),
		coverage.Area, coverage.Tasks,
	)
	if err != nil {
		return fmt.Errorf("failed to insert coverage snapshot: %w", err)
	}

	return nil
}

// LatestCoverage returns the most recent snapshot, or nil when none was saved yet.
func (r *Repository) LatestCoverage(ctx context.Context) (*models.Coverage, error) {
	query := `
		SELECT south, west, north, east, area_m2, tasks, created_at
		FROM coverage_snapshots
		ORDER BY created_at DESC
		LIMIT 1;
	`

	var (
		edges    spherical.BoundsLiteral
		coverage models.Coverage
	)
	err := r.db.QueryRow(ctx, query).Scan(
		&edges.South, &edges.West, &edges.North, &edges.East,
		&coverage.Area, &coverage.Tasks, &coverage.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest coverage snapshot: %w", err)
	}

	coverage.Bounds = spherical.BoundsFromLiteral(edges)
	coverage.Center = coverage.Bounds.GetCenter()

	return &coverage, nil
}
