package spherical

// lngArc is an arc on the circle of longitude running eastward from west to
// east. When west > east the arc crosses the antimeridian and covers
// [west, 180] and [-180, east].
type lngArc struct {
	west float64
	east float64
}

var fullArc = lngArc{west: -180, east: 180}

func (a lngArc) wraps() bool {
	return a.west > a.east
}

func (a lngArc) full() bool {
	return a.east-a.west >= 360
}

// span returns the eastward length of the arc in degrees.
func (a lngArc) span() float64 {
	if a.wraps() {
		return a.east - a.west + 360
	}
	return a.east - a.west
}

func (a lngArc) contains(lng float64) bool {
	if a.wraps() {
		return lng >= a.west || lng <= a.east
	}
	return lng >= a.west && lng <= a.east
}

// offset returns how far east of the arc's west edge lng lies, in [0, 360).
func (a lngArc) offset(lng float64) float64 {
	return mod(lng-a.west, 360)
}

func (a lngArc) containsArc(o lngArc) bool {
	switch {
	case a.full():
		return true
	case o.full():
		return false
	}
	return a.contains(o.west) && a.contains(o.east) && a.offset(o.west) <= a.offset(o.east)
}

func (a lngArc) intersects(o lngArc) bool {
	return a.contains(o.west) || o.contains(a.west)
}

// extend returns the shortest arc covering a and lng. When moving either
// edge gives the same length, the west edge moves.
func (a lngArc) extend(lng float64) lngArc {
	if a.contains(lng) {
		return a
	}
	westward := lngArc{west: lng, east: a.east}
	eastward := lngArc{west: a.west, east: lng}
	if westward.span() <= eastward.span() {
		return westward
	}
	return eastward
}

// union returns the shortest arc covering both a and o. Disjoint arcs are
// joined through the shorter gap; on a tie the result starts at a's west edge.
func (a lngArc) union(o lngArc) lngArc {
	switch {
	case a.containsArc(o):
		return a
	case o.containsArc(a):
		return o
	}

	aHoldsWest, oHoldsWest := a.contains(o.west), o.contains(a.west)
	switch {
	case aHoldsWest && oHoldsWest:
		return fullArc
	case aHoldsWest:
		return lngArc{west: a.west, east: o.east}
	case oHoldsWest:
		return lngArc{west: o.west, east: a.east}
	}

	fromA := lngArc{west: a.west, east: o.east}
	fromO := lngArc{west: o.west, east: a.east}
	if fromA.span() <= fromO.span() {
		return fromA
	}
	return fromO
}

func (a lngArc) center() float64 {
	return wrapLongitude(a.west + a.span()/2)
}
