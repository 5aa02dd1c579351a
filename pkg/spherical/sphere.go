package spherical

import (
	"math"

	"github.com/golang/geo/r3"
)

// Sphere carries the radius used by the great-circle computations. Results
// are expressed in the same unit as Radius.
type Sphere struct {
	Radius float64
}

// Earth is a sphere with Earth's equatorial radius in meters.
var Earth = Sphere{Radius: EarthRadius}

// NewSphere returns a sphere of the given radius.
func NewSphere(radius float64) Sphere {
	return Sphere{Radius: radius}
}

// unitVector returns the point on the unit sphere for ll.
func unitVector(ll LatLng) r3.Vector {
	lat, lng := ToRadians(ll.lat), ToRadians(ll.lng)
	cosLat := math.Cos(lat)
	return r3.Vector{
		X: cosLat * math.Cos(lng),
		Y: cosLat * math.Sin(lng),
		Z: math.Sin(lat),
	}
}

// angleBetween returns the central angle between a and b in radians.
func angleBetween(a, b LatLng) float64 {
	return unitVector(a).Angle(unitVector(b)).Radians()
}

// ComputeDistanceBetween returns the distance between two points on Earth in meters.
func ComputeDistanceBetween(from, to LatLng) float64 {
	return Earth.ComputeDistanceBetween(from, to)
}

// ComputeHeading returns the heading from one point to another in degrees
// clockwise from north, within [-180, 180).
func ComputeHeading(from, to LatLng) float64 {
	return Earth.ComputeHeading(from, to)
}

// ComputeOffset returns the point reached by travelling distance meters from
// the origin along the given heading.
func ComputeOffset(from LatLng, distance, heading float64) LatLng {
	return Earth.ComputeOffset(from, distance, heading)
}

// ComputeOffsetOrigin returns the origin from which travelling distance
// meters along heading ends at to. It reports false when no origin exists.
func ComputeOffsetOrigin(to LatLng, distance, heading float64) (LatLng, bool) {
	return Earth.ComputeOffsetOrigin(to, distance, heading)
}

// ComputeSignedArea returns the signed area of a closed path on Earth in
// square meters. Counter-clockwise loops are positive.
func ComputeSignedArea(loop []LatLng) float64 {
	return Earth.ComputeSignedArea(loop)
}

// ComputeArea returns the unsigned area of a closed path on Earth in square meters.
func ComputeArea(loop []LatLng) float64 {
	return Earth.ComputeArea(loop)
}

// ComputeLength returns the length of an open path on Earth in meters.
func ComputeLength(path []LatLng) float64 {
	return Earth.ComputeLength(path)
}

// Interpolate returns the point at the given fraction of the great-circle
// arc between from and to.
func Interpolate(from, to LatLng, fraction float64) LatLng {
	return Earth.Interpolate(from, to, fraction)
}
