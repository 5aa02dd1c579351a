package models

import (
	"time"

	"github.com/UnknownOlympus/meridian/pkg/spherical"
)

// Task represents a geocoded task waiting to be measured against the depot.
type Task struct {
	ID       int              // ID is the unique identifier for the task.
	Location spherical.LatLng // Location holds the geocoded coordinates of the task.
}

// Measurement holds the result of measuring a task from the depot.
type Measurement struct {
	Distance   float64 // Distance from the depot along the great circle, in meters.
	Heading    float64 // Heading from the depot in degrees clockwise from north, within [-180, 180).
	OutOfRange bool    // OutOfRange is set when the distance exceeds the configured service range.
}

// Coverage is a snapshot of the region spanned by every task measured so far.
type Coverage struct {
	Bounds    *spherical.Bounds // Bounds may cross the antimeridian.
	Center    spherical.LatLng  // Center is the midpoint of Bounds.
	Area      float64           // Area of the Bounds rectangle in square meters.
	Tasks     int               // Tasks is the number of tasks folded into Bounds.
	CreatedAt time.Time         // CreatedAt is filled in by the database.
}
