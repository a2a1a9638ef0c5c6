package geojson

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/geom"
	"github.com/arloliu/geoprint/srs"
)

func TestEncoder_Format(t *testing.T) {
	square := []geom.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}

	tests := []struct {
		name string
		g    geom.Geometry
		want string
	}{
		{"point", geom.NewPoint(1, 2), `{"type":"Point","coordinates":[1,2]}`},
		{"point shortest", geom.NewPoint(0.30000000000000004, -2.25), `{"type":"Point","coordinates":[0.3,-2.25]}`},
		{"point rounded", geom.NewPoint(22.200000000000003, -122.41941550000001), `{"type":"Point","coordinates":[22.2,-122.4194155]}`},
		{"point scientific", geom.NewPoint(1e16, 9.9e-9), `{"type":"Point","coordinates":[1e+16,9.9e-09]}`},
		{"empty point", geom.Empty(format.GeometryPoint), `{"type":"Point","coordinates":[]}`},
		{"line string", geom.NewLineString(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1.5, Y: 1}), `{"type":"LineString","coordinates":[[0,0],[1.5,1]]}`},
		{"polygon", geom.NewPolygon(square), `{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,10],[0,0]]]}`},
		{"multi point", geom.NewMultiPoint(geom.Coord{X: 1, Y: 1}, geom.Coord{X: 2, Y: 2}), `{"type":"MultiPoint","coordinates":[[1,1],[2,2]]}`},
		{
			"multi line string",
			geom.NewMultiLineString([]geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}, []geom.Coord{{X: 2, Y: 2}, {X: 3, Y: 3}}),
			`{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[2,2],[3,3]]]}`,
		},
	}

	enc, err := NewEncoder()
	require.NoError(t, err)
	require.Equal(t, uint(9), enc.Precision())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Format(context.Background(), tt.g)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.True(t, json.Valid([]byte(got)))
		})
	}
}

func TestEncoder_WithPrecision(t *testing.T) {
	enc, err := NewEncoder(WithPrecision(2))
	require.NoError(t, err)

	got, err := enc.Format(context.Background(), geom.NewPoint(-0.0001, 1.005))
	require.NoError(t, err)
	require.Equal(t, `{"type":"Point","coordinates":[0,1]}`, got)
}

func TestEncoder_NonFinite(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		dst := []byte("prefix")
		out, err := enc.Append(context.Background(), dst, geom.NewLineString(geom.Coord{X: 0, Y: 0}, geom.Coord{X: 1, Y: v}))
		require.ErrorIs(t, err, errs.ErrNotFinite)
		require.Equal(t, "prefix", string(out))
	}
}

func TestEncoder_InvalidGeometry(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	_, err = enc.Format(context.Background(), geom.NewPolygon([]geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}))
	require.ErrorIs(t, err, errs.ErrInvalidGeometry)

	_, err = enc.Format(context.Background(), geom.Geometry{Type: 42})
	require.ErrorIs(t, err, errs.ErrUnsupportedGeometryType)
}

func TestEncoder_WithCRS(t *testing.T) {
	cache, err := srs.NewCache(srs.NewStaticLoader())
	require.NoError(t, err)

	enc, err := NewEncoder(WithCRS(cache))
	require.NoError(t, err)

	got, err := enc.Format(context.Background(), geom.NewPoint(1, 2).WithSRID(4326))
	require.NoError(t, err)
	require.Equal(t, `{"type":"Point","crs":{"type":"name","properties":{"name":"EPSG:4326"}},"coordinates":[1,2]}`, got)
	require.Equal(t, 1, cache.Len())

	// no srid, no crs member
	got, err = enc.Format(context.Background(), geom.NewPoint(1, 2))
	require.NoError(t, err)
	require.Equal(t, `{"type":"Point","coordinates":[1,2]}`, got)

	dst := []byte("prefix")
	out, err := enc.Append(context.Background(), dst, geom.NewPoint(1, 2).WithSRID(123456))
	require.ErrorIs(t, err, errs.ErrUnknownSRID)
	require.Equal(t, "prefix", string(out))
}

func TestEncoder_WithoutCRSIgnoresSRID(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	got, err := enc.Format(context.Background(), geom.NewPoint(1, 2).WithSRID(4326))
	require.NoError(t, err)
	require.Equal(t, `{"type":"Point","coordinates":[1,2]}`, got)
}
