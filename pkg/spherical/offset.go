package spherical

import "math"

// ComputeOffset solves the direct problem: starting at from and travelling
// distance along heading (degrees clockwise from north), it returns the
// destination. A negative distance travels along heading+180.
func (s Sphere) ComputeOffset(from LatLng, distance, heading float64) LatLng {
	dist := distance / s.Radius
	head := ToRadians(mod(heading, 360))
	fromLat, fromLng := ToRadians(from.lat), ToRadians(from.lng)

	cosDist, sinDist := math.Cos(dist), math.Sin(dist)
	sinFromLat, cosFromLat := math.Sin(fromLat), math.Cos(fromLat)

	sinLat := cosDist*sinFromLat + sinDist*cosFromLat*math.Cos(head)
	dLng := math.Atan2(sinDist*cosFromLat*math.Sin(head), cosDist-sinFromLat*sinLat)

	return NewLatLng(ToDegrees(math.Asin(clamp(sinLat, -1, 1))), ToDegrees(fromLng+dLng))
}

// ComputeOffsetOrigin solves the inverse problem: it returns the origin from
// which ComputeOffset(origin, distance, heading) reaches to. The second
// return value is false when no spherical triangle satisfies the inputs.
//
// With d the angular distance and θ the heading, the origin latitude φ
// satisfies sin(φto) = cos(d)·sin(φ) + sin(d)·cos(θ)·cos(φ). Writing
// a = sin(φ) and b = cos(φ) this is a line intersecting the unit circle;
// the root with b ≥ 0 gives a valid latitude.
func (s Sphere) ComputeOffsetOrigin(to LatLng, distance, heading float64) (LatLng, bool) {
	head := ToRadians(mod(heading, 360))
	dist := distance / s.Radius

	n1 := math.Cos(dist)
	n2 := math.Sin(dist) * math.Cos(head)
	n3 := math.Sin(dist) * math.Sin(head)
	n4 := math.Sin(ToRadians(to.lat))

	n12 := n1 * n1
	discriminant := n2*n2*n12 + n12*n12 - n12*n4*n4
	if discriminant < 0 {
		return LatLng{}, false
	}

	fromLat, ok := originLatitude(n1, n2, n4, math.Sqrt(discriminant))
	if !ok {
		return LatLng{}, false
	}

	fromLng := ToRadians(to.lng) - math.Atan2(n3, n1*math.Cos(fromLat)-n2*math.Sin(fromLat))
	if math.IsNaN(fromLng) {
		return LatLng{}, false
	}

	return NewLatLng(ToDegrees(fromLat), ToDegrees(fromLng)), true
}

// originLatitude picks the root of the latitude quadratic with a
// non-negative cosine, trying the larger root first.
func originLatitude(n1, n2, n4, sqrtDisc float64) (float64, bool) {
	denom := n1*n1 + n2*n2
	for _, root := range []float64{sqrtDisc, -sqrtDisc} {
		b := (n2*n4 + root) / denom
		a := (n4 - n2*b) / n1
		lat := math.Atan2(a, b)
		if math.IsNaN(lat) || lat < -math.Pi/2 || lat > math.Pi/2 {
			continue
		}
		return lat, true
	}
	return 0, false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
