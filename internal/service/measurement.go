// Package service runs the measurement loop: every tick it measures the
// newly geocoded tasks against the depot and grows the coverage region.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/meridian/internal/geocoding"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/models"
	"github.com/UnknownOlympus/meridian/internal/repository"
	"github.com/UnknownOlympus/meridian/pkg/spherical"
)

// ErrNoDepot is returned by Run when neither depot coordinates nor a depot address are configured.
var ErrNoDepot = errors.New("depot location is not configured")

// Options tune the measurement loop.
type Options struct {
	Workers      int               // Workers is the number of concurrent workers per batch.
	Interval     time.Duration     // Interval between two batches.
	BatchSize    int               // BatchSize caps the number of tasks fetched per batch.
	Radius       float64           // Radius of the sphere in meters; 0 means Earth's equatorial radius.
	MaxRange     float64           // MaxRange marks tasks further away as out of range; 0 disables the check.
	Depot        *spherical.LatLng // Depot coordinates; when nil DepotAddress is geocoded.
	DepotAddress string
}

type MeasurementService struct {
	log          *slog.Logger
	repo         repository.Interface
	provider     geocoding.Provider
	providerName string
	metrics      *metrics.Metrics
	sphere       spherical.Sphere
	opts         Options

	depot spherical.LatLng

	mu       sync.Mutex
	coverage *spherical.Bounds
	tasks    int
}

func NewMeasurementService(
	log *slog.Logger,
	repo repository.Interface,
	provider geocoding.Provider,
	providerName string,
	metrics *metrics.Metrics,
	opts Options,
) *MeasurementService {
	sphere := spherical.Earth
	if opts.Radius > 0 {
		sphere = spherical.NewSphere(opts.Radius)
	}

	return &MeasurementService{
		log:          log,
		repo:         repo,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		sphere:       sphere,
		opts:         opts,
		coverage:     spherical.NewBounds(),
	}
}

// Run resolves the depot, restores the last coverage snapshot and then
// processes a batch on every tick until ctx is cancelled. It only returns
// an error when the depot cannot be resolved.
func (ms *MeasurementService) Run(ctx context.Context) error {
	depot, err := ms.resolveDepot(ctx)
	if err != nil {
		return err
	}
	ms.depot = depot
	ms.log.InfoContext(ctx, "Depot resolved", "depot", depot.String())

	ms.restoreCoverage(ctx)

	ticker := time.NewTicker(ms.opts.Interval)
	defer ticker.Stop()

	ms.log.InfoContext(ctx, "Measurement service started...")

	for {
		select {
		case <-ctx.Done():
			ms.log.InfoContext(ctx, "Measurement service stopped.")
			return nil
		case <-ticker.C:
			ms.log.InfoContext(ctx, "Polling for new tasks to measure...")
			ms.processBatch(ctx)
		}
	}
}

func (ms *MeasurementService) resolveDepot(ctx context.Context) (spherical.LatLng, error) {
	if ms.opts.Depot != nil {
		return *ms.opts.Depot, nil
	}
	if ms.opts.DepotAddress == "" || ms.provider == nil {
		return spherical.LatLng{}, ErrNoDepot
	}

	start := time.Now()
	depot, err := ms.provider.Geocode(ctx, ms.opts.DepotAddress)
	ms.metrics.GeocoderSeconds.WithLabelValues(ms.providerName).Observe(time.Since(start).Seconds())
	if err != nil {
		return spherical.LatLng{}, fmt.Errorf("failed to geocode depot address: %w", err)
	}

	return depot, nil
}

func (ms *MeasurementService) restoreCoverage(ctx context.Context) {
	snapshot, err := ms.repo.LatestCoverage(ctx)
	if err != nil {
		ms.log.WarnContext(ctx, "Could not restore coverage, starting empty", "error", err)
		return
	}
	if snapshot == nil {
		return
	}

	ms.mu.Lock()
	ms.coverage = snapshot.Bounds
	ms.tasks = snapshot.Tasks
	ms.mu.Unlock()

	ms.log.InfoContext(ctx, "Coverage restored", "bounds", snapshot.Bounds.String(), "tasks", snapshot.Tasks)
}

// processBatch fetches one batch, measures it with a pool of workers and
// saves a coverage snapshot once every worker is done.
func (ms *MeasurementService) processBatch(ctx context.Context) {
	start := time.Now()
	defer func() { ms.metrics.BatchSeconds.Observe(time.Since(start).Seconds()) }()

	tasks, err := ms.repo.FetchTasksForMeasurement(ctx, ms.opts.BatchSize)
	if err != nil {
		ms.log.ErrorContext(ctx, "Failed to fetch tasks", "error", err)
		return
	}
	if len(tasks) == 0 {
		ms.log.InfoContext(ctx, "No tasks to process.")
		return
	}

	ms.log.InfoContext(ctx, "Found tasks to process. Starting worker pool.",
		"jobs", len(tasks), "num_workers", ms.opts.Workers)

	jobs := make(chan models.Task, len(tasks))
	var wgr sync.WaitGroup

	for i := 1; i <= max(ms.opts.Workers, 1); i++ {
		wgr.Add(1)
		go ms.worker(ctx, i, &wgr, jobs)
	}

	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)

	wgr.Wait()
	ms.saveCoverage(ctx)
	ms.log.InfoContext(ctx, "Processing batch finished")
}

func (ms *MeasurementService) worker(ctx context.Context, idx int, wg *sync.WaitGroup, jobs <-chan models.Task) {
	defer wg.Done()
	for task := range jobs {
		ms.metrics.ActiveWorkers.Inc()
		ms.log.DebugContext(ctx, "Processing task", "worker", idx, "task", task.ID)

		m := ms.measure(task.Location)
		if err := ms.repo.UpdateTaskMeasurement(ctx, task.ID, m); err != nil {
			ms.log.ErrorContext(ctx, "Failed to update measurement for task",
				"worker", idx, "task", task.ID, "error", err)
			ms.metrics.TasksMeasured.WithLabelValues("failure").Inc()
			ms.metrics.ActiveWorkers.Dec()
			continue
		}

		status := "success"
		if m.OutOfRange {
			status = "out_of_range"
			ms.log.WarnContext(ctx, "Task is out of range", "task", task.ID, "distance", m.Distance)
		}
		ms.metrics.TasksMeasured.WithLabelValues(status).Inc()
		ms.metrics.DepotDistance.Observe(m.Distance)

		ms.fold(task.Location)
		ms.metrics.ActiveWorkers.Dec()
	}
}

func (ms *MeasurementService) measure(location spherical.LatLng) models.Measurement {
	distance := ms.sphere.ComputeDistanceBetween(ms.depot, location)
	return models.Measurement{
		Distance:   distance,
		Heading:    ms.sphere.ComputeHeading(ms.depot, location),
		OutOfRange: ms.opts.MaxRange > 0 && distance > ms.opts.MaxRange,
	}
}

func (ms *MeasurementService) fold(location spherical.LatLng) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.coverage.Extend(location)
	ms.tasks++
}

// Coverage returns a copy of the region covered so far. ok is false while
// nothing was measured or restored.
func (ms *MeasurementService) Coverage() (models.Coverage, bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if ms.tasks == 0 {
		return models.Coverage{}, false
	}
	bounds := *ms.coverage
	return models.Coverage{
		Bounds: &bounds,
		Center: bounds.GetCenter(),
		Area:   ms.sphere.ComputeArea(bounds.ToLoop()),
		Tasks:  ms.tasks,
	}, true
}

func (ms *MeasurementService) saveCoverage(ctx context.Context) {
	coverage, ok := ms.Coverage()
	if !ok {
		return
	}

	span := coverage.Bounds.Span()
	ms.metrics.CoverageArea.Set(coverage.Area)
	ms.metrics.CoverageSpan.WithLabelValues("lat").Set(span.Lat())
	ms.metrics.CoverageSpan.WithLabelValues("lng").Set(span.Lng())

	if err := ms.repo.SaveCoverage(ctx, coverage); err != nil {
		ms.log.ErrorContext(ctx, "Failed to save coverage snapshot", "error", err)
		return
	}
	ms.log.InfoContext(ctx, "Coverage snapshot saved",
		"bounds", coverage.Bounds.String(), "center", coverage.Center.String(), "area", coverage.Area)
}
