package spherical

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/twpayne/go-geom"
	"googlemaps.github.io/maps"
)

var (
	// ErrUnsupportedShape is returned when a value has none of the recognized coordinate shapes.
	ErrUnsupportedShape = errors.New("unsupported coordinate shape")
	// ErrInvalidNumber is returned when a coordinate field cannot be read as a number.
	ErrInvalidNumber = errors.New("invalid coordinate number")
)

// latLngGetter is satisfied by values exposing Lat() and Lng() methods.
type latLngGetter interface {
	Lat() float64
	Lng() float64
}

// mapKeyPairs lists the latitude/longitude key pairs tried on maps, in order.
var mapKeyPairs = [][2]string{
	{"lat", "lng"},
	{"lat", "long"},
	{"lat", "lon"},
	{"latitude", "longitude"},
	{"y", "x"},
}

// Convert turns one of the recognized coordinate shapes into a normalized LatLng.
// Shapes are tried in this order:
//
//  1. LatLng or *LatLng
//  2. any value with Lat() and Lng() methods
//  3. maps.LatLng or *maps.LatLng from the Google Maps client
//  4. LatLngLiteral or *LatLngLiteral
//  5. map[string]any or map[string]float64 keyed lat/lng, lat/long, lat/lon,
//     latitude/longitude or x/y; values may be numbers or numeric strings
//  6. [2]float64 or a []float64 of length 2 holding longitude then latitude
//  7. *geom.Point or geom.Coord, with X the longitude and Y the latitude
func Convert(v any) (LatLng, error) {
	switch val := v.(type) {
	case LatLng:
		return val, nil
	case *LatLng:
		if val != nil {
			return *val, nil
		}
	case latLngGetter:
		return NewLatLng(val.Lat(), val.Lng()), nil
	case maps.LatLng:
		return NewLatLng(val.Lat, val.Lng), nil
	case *maps.LatLng:
		if val != nil {
			return NewLatLng(val.Lat, val.Lng), nil
		}
	case LatLngLiteral:
		return ConvertLiteral(val), nil
	case *LatLngLiteral:
		if val != nil {
			return ConvertLiteral(*val), nil
		}
	case map[string]float64:
		generic := make(map[string]any, len(val))
		for k, f := range val {
			generic[k] = f
		}
		return convertMap(generic)
	case map[string]any:
		return convertMap(val)
	case [2]float64:
		return NewLatLng(val[1], val[0]), nil
	case []float64:
		if len(val) == 2 {
			return NewLatLng(val[1], val[0]), nil
		}
	case *geom.Point:
		if val != nil && !val.Empty() {
			return NewLatLng(val.Y(), val.X()), nil
		}
	case geom.Coord:
		if len(val) >= 2 {
			return NewLatLng(val.Y(), val.X()), nil
		}
	}
	return LatLng{}, fmt.Errorf("%w: %T", ErrUnsupportedShape, v)
}

// ConvertLiteral normalizes a literal into a LatLng.
func ConvertLiteral(lit LatLngLiteral) LatLng {
	return NewLatLng(lit.Lat, lit.Lng)
}

// EqualLatLngs converts both values and compares them exactly. Values that
// cannot be converted are never equal.
func EqualLatLngs(one, two any) bool {
	a, err := Convert(one)
	if err != nil {
		return false
	}
	b, err := Convert(two)
	if err != nil {
		return false
	}
	return a.Equals(b)
}

// ConvertPath converts every element of values, stopping at the first failure.
func ConvertPath[T any](values []T) ([]LatLng, error) {
	path := make([]LatLng, 0, len(values))
	for i, v := range values {
		ll, err := Convert(v)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		path = append(path, ll)
	}
	return path, nil
}

// PathFromGeom extracts the points of a Point, LineString or the outer ring
// of a Polygon. The closing point of a ring is dropped since loops are
// closed implicitly.
func PathFromGeom(g geom.T) ([]LatLng, error) {
	switch t := g.(type) {
	case *geom.Point:
		ll, err := Convert(t)
		if err != nil {
			return nil, err
		}
		return []LatLng{ll}, nil
	case *geom.LineString:
		return coordsToPath(t.Coords()), nil
	case *geom.Polygon:
		if t.NumLinearRings() == 0 {
			return nil, nil
		}
		coords := t.LinearRing(0).Coords()
		if n := len(coords); n > 1 && coords[0].Equal(t.Layout(), coords[n-1]) {
			coords = coords[:n-1]
		}
		return coordsToPath(coords), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, g)
}

func coordsToPath(coords []geom.Coord) []LatLng {
	path := make([]LatLng, 0, len(coords))
	for _, c := range coords {
		path = append(path, NewLatLng(c.Y(), c.X()))
	}
	return path
}

func convertMap(m map[string]any) (LatLng, error) {
	for _, keys := range mapKeyPairs {
		rawLat, okLat := m[keys[0]]
		rawLng, okLng := m[keys[1]]
		if !okLat || !okLng {
			continue
		}
		lat, err := toFloat(rawLat)
		if err != nil {
			return LatLng{}, fmt.Errorf("%s: %w", keys[0], err)
		}
		lng, err := toFloat(rawLng)
		if err != nil {
			return LatLng{}, fmt.Errorf("%s: %w", keys[1], err)
		}
		return NewLatLng(lat, lng), nil
	}
	return LatLng{}, fmt.Errorf("%w: map without coordinate keys", ErrUnsupportedShape)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, n)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %T", ErrInvalidNumber, v)
}
