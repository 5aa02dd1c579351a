// Package metrics defines the prometheus collectors of the measurement service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	TasksMeasured   *prometheus.CounterVec
	DepotDistance   prometheus.Histogram
	BatchSeconds    prometheus.Histogram
	ActiveWorkers   prometheus.Gauge
	CoverageArea    prometheus.Gauge
	CoverageSpan    *prometheus.GaugeVec
	GeocoderSeconds *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		TasksMeasured: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "meridian_tasks_measured_total",
			Help: "Total number of tasks measured against the depot.",
		}, []string{"status"}),
		DepotDistance: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "meridian_depot_distance_meters",
			Help:    "Great-circle distance from the depot to measured tasks.",
			Buckets: prometheus.ExponentialBuckets(500, 2, 12),
		}),
		BatchSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "meridian_batch_duration_seconds",
			Help:    "Duration of one measurement batch.",
			Buckets: prometheus.DefBuckets,
		}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "meridian_active_workers",
			Help: "Current number of active workers processing tasks.",
		}),
		CoverageArea: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "meridian_coverage_area_square_meters",
			Help: "Area of the rectangle covering every measured task.",
		}),
		CoverageSpan: promauto.With(reg).NewGaugeVec(prometheus.GaugeOpts{
			Name: "meridian_coverage_span_degrees",
			Help: "Latitude and longitude extent of the coverage rectangle.",
		}, []string{"axis"}),
		GeocoderSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "meridian_geocoder_request_duration_seconds",
			Help:    "Duration of depot address lookups.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
	}
}
