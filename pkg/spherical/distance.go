package spherical

import "math"

// ComputeDistanceBetween returns the great-circle distance between from and to.
// The central angle is taken from the cross and dot products of the unit
// vectors, which keeps precision for nearly identical and nearly antipodal points.
func (s Sphere) ComputeDistanceBetween(from, to LatLng) float64 {
	return s.Radius * angleBetween(from, to)
}

// ComputeLength sums the distances between consecutive points of an open path.
func (s Sphere) ComputeLength(path []LatLng) float64 {
	var length float64
	for i := 1; i < len(path); i++ {
		length += s.ComputeDistanceBetween(path[i-1], path[i])
	}
	return length
}

// ComputeHeading returns the initial bearing from from to to, in degrees
// within [-180, 180). Identical points have a heading of 0.
func (s Sphere) ComputeHeading(from, to LatLng) float64 {
	if from == to {
		return 0
	}
	fromLat, toLat := ToRadians(from.lat), ToRadians(to.lat)
	dLng := ToRadians(to.lng - from.lng)
	heading := math.Atan2(
		math.Sin(dLng)*math.Cos(toLat),
		math.Cos(fromLat)*math.Sin(toLat)-math.Sin(fromLat)*math.Cos(toLat)*math.Cos(dLng),
	)
	return wrap(ToDegrees(heading), -180, 180)
}
