package spherical

import (
	"encoding/json"
	"fmt"

	"googlemaps.github.io/maps"
)

// Bounds is a rectangle in geographical coordinates. When west > east the
// rectangle crosses the antimeridian.
//
// The zero value is an empty bounds that contains nothing and acts as the
// identity for Extend and Union. A Bounds must not be mutated from several
// goroutines without external locking.
type Bounds struct {
	south float64
	west  float64
	north float64
	east  float64
	set   bool
}

// BoundsLiteral is the plain representation of a Bounds.
type BoundsLiteral struct {
	East  float64 `json:"east"`
	North float64 `json:"north"`
	South float64 `json:"south"`
	West  float64 `json:"west"`
}

// NewBounds returns an empty bounds.
func NewBounds() *Bounds {
	return &Bounds{}
}

// NewBoundsFromCorners builds the bounds spanning from the south-west corner
// eastward to the north-east corner.
func NewBoundsFromCorners(sw, ne LatLng) *Bounds {
	return &Bounds{
		south: min(sw.lat, ne.lat),
		north: max(sw.lat, ne.lat),
		west:  sw.lng,
		east:  ne.lng,
		set:   true,
	}
}

// BoundsFromLiteral converts a literal. A west-east span of 360 degrees or
// more covers every longitude.
func BoundsFromLiteral(lit BoundsLiteral) *Bounds {
	if lit.East-lit.West >= 360 {
		return &Bounds{
			south: max(-90, min(lit.South, lit.North)),
			north: min(90, max(lit.South, lit.North)),
			west:  fullArc.west,
			east:  fullArc.east,
			set:   true,
		}
	}
	return NewBoundsFromCorners(NewLatLng(lit.South, lit.West), NewLatLng(lit.North, lit.East))
}

// BoundsFromGoogle converts a Google Maps bounds.
func BoundsFromGoogle(b maps.LatLngBounds) *Bounds {
	return BoundsFromLiteral(BoundsLiteral{
		East:  b.NorthEast.Lng,
		North: b.NorthEast.Lat,
		South: b.SouthWest.Lat,
		West:  b.SouthWest.Lng,
	})
}

func (b *Bounds) arc() lngArc {
	return lngArc{west: b.west, east: b.east}
}

func (b *Bounds) setArc(a lngArc) {
	b.west, b.east = a.west, a.east
}

// Contains reports whether p lies inside the bounds.
func (b *Bounds) Contains(p LatLng) bool {
	if !b.set {
		return false
	}
	return p.lat >= b.south && p.lat <= b.north && b.arc().contains(p.lng)
}

// Extend grows the bounds to the smallest rectangle holding both the current
// bounds and p. Of the two ways to reach p in longitude the shorter is taken,
// moving the west edge on a tie.
func (b *Bounds) Extend(p LatLng) *Bounds {
	if !b.set {
		*b = Bounds{south: p.lat, west: p.lng, north: p.lat, east: p.lng, set: true}
		return b
	}
	b.south = min(b.south, p.lat)
	b.north = max(b.north, p.lat)
	b.setArc(b.arc().extend(p.lng))
	return b
}

// Union grows the bounds to the smallest rectangle holding both rectangles.
func (b *Bounds) Union(other *Bounds) *Bounds {
	if other == nil || !other.set {
		return b
	}
	if !b.set {
		*b = *other
		return b
	}
	b.south = min(b.south, other.south)
	b.north = max(b.north, other.north)
	b.setArc(b.arc().union(other.arc()))
	return b
}

// Intersects reports whether the two rectangles share at least one point.
func (b *Bounds) Intersects(other *Bounds) bool {
	if other == nil || !b.set || !other.set {
		return false
	}
	return b.south <= other.north && other.south <= b.north && b.arc().intersects(other.arc())
}

// IsEmpty reports whether the bounds is fresh or collapsed to a single point.
func (b *Bounds) IsEmpty() bool {
	return !b.set || (b.south == b.north && b.west == b.east)
}

// GetCenter returns the midpoint of the latitude range and of the longitude arc.
func (b *Bounds) GetCenter() LatLng {
	if !b.set {
		return LatLng{}
	}
	return NewLatLng((b.south+b.north)/2, b.arc().center())
}

// GetNorthEast returns the north-east corner.
func (b *Bounds) GetNorthEast() LatLng {
	return NewLatLngNoWrap(b.north, b.east)
}

// GetSouthWest returns the south-west corner.
func (b *Bounds) GetSouthWest() LatLng {
	return NewLatLngNoWrap(b.south, b.west)
}

// Span returns the latitude and longitude extent in degrees.
func (b *Bounds) Span() LatLng {
	if !b.set {
		return LatLng{}
	}
	return NewLatLngNoWrap(b.north-b.south, b.arc().span())
}

// ToLoop returns the outline of the bounds as a counter-clockwise loop.
// Parallels are split in quarters so that no edge spans 180 degrees or more.
func (b *Bounds) ToLoop() []LatLng {
	if !b.set {
		return nil
	}
	const steps = 4
	span := b.arc().span()
	loop := make([]LatLng, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		loop = append(loop, NewLatLng(b.south, b.west+span*float64(i)/steps))
	}
	for i := 0; i <= steps; i++ {
		loop = append(loop, NewLatLng(b.north, b.west+span*float64(steps-i)/steps))
	}
	return loop
}

// Equals reports whether both bounds have exactly the same edges.
func (b *Bounds) Equals(other *Bounds) bool {
	if other == nil {
		return false
	}
	return *b == *other
}

// Literal returns the plain struct form of the bounds.
func (b *Bounds) Literal() BoundsLiteral {
	return BoundsLiteral{East: b.east, North: b.north, South: b.south, West: b.west}
}

func (b *Bounds) String() string {
	return fmt.Sprintf("(%s, %s)", b.GetSouthWest(), b.GetNorthEast())
}

// URLValue returns "lat_sw,lng_sw,lat_ne,lng_ne" rounded to precision decimals.
func (b *Bounds) URLValue(precision int) string {
	return b.GetSouthWest().URLValue(precision) + "," + b.GetNorthEast().URLValue(precision)
}

func (b *Bounds) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Literal())
}

func (b *Bounds) UnmarshalJSON(data []byte) error {
	var lit BoundsLiteral
	if err := json.Unmarshal(data, &lit); err != nil {
		return err
	}
	*b = *BoundsFromLiteral(lit)
	return nil
}
