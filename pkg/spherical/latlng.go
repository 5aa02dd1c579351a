// Package spherical computes great-circle geometry on a perfect sphere:
// distances, headings, offsets, loop areas and interpolation between
// geographic coordinates, plus a bounding rectangle that understands
// regions crossing the antimeridian.
package spherical

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// DefaultPrecision is the number of decimals used by URLValue when none is given.
const DefaultPrecision = 6

// LatLng is a point in geographical coordinates, in degrees.
// Latitude is in [-90, 90] and longitude in [-180, 180) unless the value
// was built with NewLatLngNoWrap.
type LatLng struct {
	lat float64
	lng float64
}

// LatLngLiteral is the plain representation of a LatLng.
type LatLngLiteral struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewLatLng clamps the latitude into [-90, 90] and wraps the longitude into [-180, 180).
func NewLatLng(lat, lng float64) LatLng {
	return LatLng{
		lat: math.Max(-90, math.Min(90, lat)),
		lng: wrapLongitude(lng),
	}
}

// NewLatLngNoWrap stores the values exactly as given.
func NewLatLngNoWrap(lat, lng float64) LatLng {
	return LatLng{lat: lat, lng: lng}
}

// Lat returns the latitude in degrees.
func (ll LatLng) Lat() float64 {
	return ll.lat
}

// Lng returns the longitude in degrees.
func (ll LatLng) Lng() float64 {
	return ll.lng
}

// Equals reports whether both fields match exactly.
func (ll LatLng) Equals(other LatLng) bool {
	return ll.lat == other.lat && ll.lng == other.lng
}

// Literal returns the plain struct form of the coordinate.
func (ll LatLng) Literal() LatLngLiteral {
	return LatLngLiteral{Lat: ll.lat, Lng: ll.lng}
}

func (ll LatLng) String() string {
	return fmt.Sprintf("(%s, %s)", formatFloat(ll.lat), formatFloat(ll.lng))
}

// URLValue returns "lat,lng" rounded to precision decimals. A negative
// precision selects DefaultPrecision.
func (ll LatLng) URLValue(precision int) string {
	if precision < 0 {
		precision = DefaultPrecision
	}
	return roundTo(ll.lat, precision) + "," + roundTo(ll.lng, precision)
}

func (ll LatLng) MarshalJSON() ([]byte, error) {
	return json.Marshal(ll.Literal())
}

// UnmarshalJSON decodes {"lat":…,"lng":…} and normalizes the result.
func (ll *LatLng) UnmarshalJSON(data []byte) error {
	var lit LatLngLiteral
	if err := json.Unmarshal(data, &lit); err != nil {
		return err
	}
	*ll = ConvertLiteral(lit)
	return nil
}

// wrapLongitude maps any longitude into [-180, 180).
func wrapLongitude(lng float64) float64 {
	return wrap(lng, -180, 180)
}

// wrap maps n into [lo, hi) modulo (hi - lo).
func wrap(n, lo, hi float64) float64 {
	if n >= lo && n < hi {
		return n
	}
	return mod(n-lo, hi-lo) + lo
}

// mod is a modulo whose result has the sign of m.
func mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	// math.Mod of a tiny negative value can round up to m.
	if r >= m {
		r = 0
	}
	return r
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func roundTo(f float64, precision int) string {
	p := math.Pow(10, float64(precision))
	return formatFloat(math.Round(f*p) / p)
}
