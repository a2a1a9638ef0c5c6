// Package geojson renders geometries as GeoJSON geometry objects in the shape
// PostGIS's ST_AsGeoJSON produces.
//
// Numbers are written by coord, not encoding/json, so 0.30000000000000004 at
// precision 15 is written as 0.3 and values past the precision cap are
// rounded instead of printed with 17 significant digits. JSON has no literal
// for NaN or infinities, so those fail with errs.ErrNotFinite.
package geojson

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arloliu/geoprint/coord"
	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/geom"
	"github.com/arloliu/geoprint/internal/options"
	"github.com/arloliu/geoprint/internal/pool"
	"github.com/arloliu/geoprint/srs"
)

// DefaultPrecision is the number of fractional digits ST_AsGeoJSON keeps by default.
var DefaultPrecision = format.GeoJSON.DefaultPrecision()

var typeNames = map[format.GeometryType]string{
	format.GeometryPoint:           "Point",
	format.GeometryLineString:      "LineString",
	format.GeometryPolygon:         "Polygon",
	format.GeometryMultiPoint:      "MultiPoint",
	format.GeometryMultiLineString: "MultiLineString",
}

// Encoder writes GeoJSON geometry objects.
//
// An Encoder is immutable after construction and safe for concurrent use,
// provided the CRS cache is (srs.Cache is).
type Encoder struct {
	precision uint
	crs       *srs.Cache
	num       *coord.Formatter
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithPrecision sets the maximum number of fractional digits per coordinate.
func WithPrecision(precision uint) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.precision = precision
	})
}

// WithCRS makes the encoder add a named "crs" member for geometries with a
// non-zero SRID, resolving the name through cache.
func WithCRS(cache *srs.Cache) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.crs = cache
	})
}

// NewEncoder creates an Encoder. Without options it uses DefaultPrecision and
// writes no "crs" member.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{precision: DefaultPrecision}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	num, err := coord.NewFormatter(
		coord.WithPrecision(e.precision),
		coord.WithNonFinite(coord.NonFiniteError),
	)
	if err != nil {
		return nil, err
	}
	e.num = num

	return e, nil
}

// Precision returns the configured precision.
func (e *Encoder) Precision() uint {
	return e.precision
}

// Append appends the GeoJSON of g to dst.
//
// The ctx bounds the spatial reference lookup when a CRS cache is configured.
//
// Returns dst unchanged and:
//   - an error wrapping errs.ErrInvalidGeometry or errs.ErrUnsupportedGeometryType
//     when g fails validation
//   - an error wrapping errs.ErrNotFinite when a coordinate is NaN or infinite
//   - the cache error (errs.ErrUnknownSRID among others) when the CRS lookup fails
func (e *Encoder) Append(ctx context.Context, dst []byte, g geom.Geometry) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return dst, err
	}

	start := len(dst)
	dst = append(dst, `{"type":"`...)
	dst = append(dst, typeNames[g.Type]...)
	dst = append(dst, '"')

	if e.crs != nil && g.SRID != 0 {
		entry, err := e.crs.Get(ctx, g.SRID)
		if err != nil {
			return dst[:start], fmt.Errorf("geojson crs: %w", err)
		}

		name, err := json.Marshal(entry.Name())
		if err != nil {
			return dst[:start], fmt.Errorf("geojson crs: %w", err)
		}
		dst = append(dst, `,"crs":{"type":"name","properties":{"name":`...)
		dst = append(dst, name...)
		dst = append(dst, "}}"...)
	}

	dst = append(dst, `,"coordinates":`...)
	dst, err := e.appendCoordinates(dst, g)
	if err != nil {
		return dst[:start], err
	}

	return append(dst, '}'), nil
}

// Format returns the GeoJSON of g as a string.
func (e *Encoder) Format(ctx context.Context, g geom.Geometry) (string, error) {
	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	out, err := e.Append(ctx, bb.B, g)
	if err != nil {
		return "", err
	}
	bb.B = out

	return bb.String(), nil
}

func (e *Encoder) appendCoordinates(dst []byte, g geom.Geometry) ([]byte, error) {
	if g.IsEmpty() {
		return append(dst, "[]"...), nil
	}

	var err error
	switch g.Type {
	case format.GeometryPoint:
		return e.appendPosition(dst, g.Parts[0][0])
	case format.GeometryLineString:
		return e.appendPositions(dst, g.Parts[0])
	case format.GeometryMultiPoint:
		dst = append(dst, '[')
		for i, part := range g.Parts {
			if i > 0 {
				dst = append(dst, ',')
			}
			if dst, err = e.appendPosition(dst, part[0]); err != nil {
				return dst, err
			}
		}

		return append(dst, ']'), nil
	default:
		// polygon rings and multi line string members
		dst = append(dst, '[')
		for i, part := range g.Parts {
			if i > 0 {
				dst = append(dst, ',')
			}
			if dst, err = e.appendPositions(dst, part); err != nil {
				return dst, err
			}
		}

		return append(dst, ']'), nil
	}
}

func (e *Encoder) appendPositions(dst []byte, coords []geom.Coord) ([]byte, error) {
	var err error

	dst = append(dst, '[')
	for i, c := range coords {
		if i > 0 {
			dst = append(dst, ',')
		}
		if dst, err = e.appendPosition(dst, c); err != nil {
			return dst, err
		}
	}

	return append(dst, ']'), nil
}

func (e *Encoder) appendPosition(dst []byte, c geom.Coord) ([]byte, error) {
	var err error

	dst = append(dst, '[')
	if dst, err = e.num.Append(dst, c.X); err != nil {
		return dst, err
	}
	dst = append(dst, ',')
	if dst, err = e.num.Append(dst, c.Y); err != nil {
		return dst, err
	}

	return append(dst, ']'), nil
}
