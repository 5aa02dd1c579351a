package spherical_test

import (
	"testing"

	"github.com/UnknownOlympus/meridian/pkg/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
	"googlemaps.github.io/maps"
)

type getterPoint struct{ lat, lng float64 }

func (p getterPoint) Lat() float64 { return p.lat }
func (p getterPoint) Lng() float64 { return p.lng }

func TestConvert(t *testing.T) {
	t.Parallel()

	ll := spherical.NewLatLng(-34, 151)
	want := spherical.NewLatLng(-34, 151)

	tests := []struct {
		name  string
		input any
	}{
		{name: "LatLng", input: ll},
		{name: "LatLng pointer", input: &ll},
		{name: "getter methods", input: getterPoint{lat: -34, lng: 151}},
		{name: "google maps", input: maps.LatLng{Lat: -34, Lng: 151}},
		{name: "google maps pointer", input: &maps.LatLng{Lat: -34, Lng: 151}},
		{name: "literal", input: spherical.LatLngLiteral{Lat: -34, Lng: 151}},
		{name: "literal pointer", input: &spherical.LatLngLiteral{Lat: -34, Lng: 151}},
		{name: "lat lng keys", input: map[string]any{"lat": -34.0, "lng": 151.0}},
		{name: "lat long keys", input: map[string]any{"lat": -34, "long": "151"}},
		{name: "lat lon keys", input: map[string]float64{"lat": -34, "lon": 151}},
		{name: "latitude longitude keys", input: map[string]any{"latitude": " -34 ", "longitude": 151.0}},
		{name: "x y keys", input: map[string]any{"x": 151, "y": -34}},
		{name: "array", input: [2]float64{151, -34}},
		{name: "slice", input: []float64{151, -34}},
		{name: "geom point", input: geom.NewPointFlat(geom.XY, []float64{151, -34})},
		{name: "geom coord", input: geom.Coord{151, -34}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := spherical.Convert(tt.input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestConvertNormalizes(t *testing.T) {
	got, err := spherical.Convert(map[string]any{"lat": 120.0, "lng": 190.0})

	require.NoError(t, err)
	assert.Equal(t, spherical.NewLatLng(90, -170), got)
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		wantErr error
	}{
		{name: "nil", input: nil, wantErr: spherical.ErrUnsupportedShape},
		{name: "string", input: "-34,151", wantErr: spherical.ErrUnsupportedShape},
		{name: "nil pointer", input: (*spherical.LatLng)(nil), wantErr: spherical.ErrUnsupportedShape},
		{name: "short slice", input: []float64{1}, wantErr: spherical.ErrUnsupportedShape},
		{name: "map without keys", input: map[string]any{"north": 1.0}, wantErr: spherical.ErrUnsupportedShape},
		{name: "bad number", input: map[string]any{"lat": "abc", "lng": 1.0}, wantErr: spherical.ErrInvalidNumber},
		{name: "bad type", input: map[string]any{"lat": 1.0, "lng": true}, wantErr: spherical.ErrInvalidNumber},
		{name: "empty geom point", input: geom.NewPointEmpty(geom.XY), wantErr: spherical.ErrUnsupportedShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := spherical.Convert(tt.input)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEqualLatLngs(t *testing.T) {
	assert.True(t, spherical.EqualLatLngs(
		map[string]any{"lat": 10.0, "lng": 190.0},
		spherical.LatLngLiteral{Lat: 10, Lng: -170},
	))
	assert.False(t, spherical.EqualLatLngs([2]float64{1, 2}, [2]float64{2, 1}))
	assert.False(t, spherical.EqualLatLngs("nope", [2]float64{1, 2}))
	assert.False(t, spherical.EqualLatLngs([2]float64{1, 2}, "nope"))
}

func TestConvertPath(t *testing.T) {
	path, err := spherical.ConvertPath([]any{
		[2]float64{0, 0},
		maps.LatLng{Lat: 1, Lng: 1},
		map[string]any{"lat": 2, "lng": 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []spherical.LatLng{
		spherical.NewLatLng(0, 0), spherical.NewLatLng(1, 1), spherical.NewLatLng(2, 2),
	}, path)

	_, err = spherical.ConvertPath([]any{[2]float64{0, 0}, "bad"})
	require.ErrorIs(t, err, spherical.ErrUnsupportedShape)
	require.ErrorContains(t, err, "point 1")
}

func TestPathFromGeom(t *testing.T) {
	t.Parallel()

	t.Run("polygon drops closing point", func(t *testing.T) {
		t.Parallel()
		poly := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{
			{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
		})
		path, err := spherical.PathFromGeom(poly)
		require.NoError(t, err)
		require.Len(t, path, 4)
		assert.InEpsilon(t, 12391399902.071106, spherical.ComputeSignedArea(path), 1e-9)
	})

	t.Run("line string", func(t *testing.T) {
		t.Parallel()
		line := geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {1, 0}})
		path, err := spherical.PathFromGeom(line)
		require.NoError(t, err)
		assert.InDelta(t, 111319.49079327357, spherical.ComputeLength(path), 1e-6)
	})

	t.Run("point", func(t *testing.T) {
		t.Parallel()
		path, err := spherical.PathFromGeom(geom.NewPointFlat(geom.XY, []float64{10, 20}))
		require.NoError(t, err)
		assert.Equal(t, []spherical.LatLng{spherical.NewLatLng(20, 10)}, path)
	})

	t.Run("unsupported geometry", func(t *testing.T) {
		t.Parallel()
		_, err := spherical.PathFromGeom(geom.NewMultiPoint(geom.XY))
		require.ErrorIs(t, err, spherical.ErrUnsupportedShape)
	})
}
