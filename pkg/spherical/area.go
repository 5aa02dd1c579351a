package spherical

import "math"

// ComputeSignedArea returns the signed area of the closed path loop. The
// last point is implicitly joined back to the first. Loops running
// counter-clockwise on a north-up map are positive, clockwise ones
// negative. Fewer than three points enclose no area.
//
// Each directed edge contributes Δλ·(2 + sin φ1 + sin φ2), the spherical
// analogue of the shoelace term. Δλ is wrapped into [-π, π) so edges
// crossing the antimeridian take the short way and loops around a pole
// pick up the full 2π.
func (s Sphere) ComputeSignedArea(loop []LatLng) float64 {
	if len(loop) < 3 {
		return 0
	}

	var total float64
	prev := loop[len(loop)-1]
	prevSinLat := math.Sin(ToRadians(prev.lat))
	for _, point := range loop {
		sinLat := math.Sin(ToRadians(point.lat))
		dLng := ToRadians(wrap(point.lng-prev.lng, -180, 180))
		total += dLng * (2 + prevSinLat + sinLat)
		prev, prevSinLat = point, sinLat
	}

	return -total * s.Radius * s.Radius / 2
}

// ComputeArea returns the absolute area of the closed path loop.
func (s Sphere) ComputeArea(loop []LatLng) float64 {
	return math.Abs(s.ComputeSignedArea(loop))
}
