package spherical

import "math"

// coincidentAngle is the angular separation, in radians, below which two
// points are treated as the same point for interpolation.
const coincidentAngle = 1e-12

// Interpolate returns the point lying the given fraction of the way along
// the shortest great-circle arc from from to to. A fraction of 0 returns
// from and 1 returns to; fractions outside [0, 1] extrapolate along the
// same great circle.
func (s Sphere) Interpolate(from, to LatLng, fraction float64) LatLng {
	switch fraction {
	case 0:
		return from
	case 1:
		return to
	}

	v1, v2 := unitVector(from), unitVector(to)
	angle := v1.Angle(v2).Radians()
	if angle < coincidentAngle {
		return from
	}

	sinAngle := math.Sin(angle)
	a := math.Sin((1-fraction)*angle) / sinAngle
	b := math.Sin(fraction*angle) / sinAngle
	p := v1.Mul(a).Add(v2.Mul(b))

	lat := math.Atan2(p.Z, math.Hypot(p.X, p.Y))
	lng := math.Atan2(p.Y, p.X)
	return NewLatLng(ToDegrees(lat), ToDegrees(lng))
}
