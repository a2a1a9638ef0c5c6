// Package wkt renders geometries as OGC Well-Known Text and PostGIS EWKT.
//
// Coordinates go through coord.Append, so every number is the shortest text
// that round-trips at the requested precision:
//
//	wkt.Format(geom.NewPoint(0.30000000000000004, 1e16), 15) // "POINT(0.3 1e+16)"
package wkt

import (
	"strconv"

	"github.com/arloliu/geoprint/coord"
	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/geom"
	"github.com/arloliu/geoprint/internal/pool"
)

// DefaultPrecision is the precision PostGIS uses for WKT output.
var DefaultPrecision = format.WKT.DefaultPrecision()

var typeNames = map[format.GeometryType]string{
	format.GeometryPoint:           "POINT",
	format.GeometryLineString:      "LINESTRING",
	format.GeometryPolygon:         "POLYGON",
	format.GeometryMultiPoint:      "MULTIPOINT",
	format.GeometryMultiLineString: "MULTILINESTRING",
}

// Append appends the WKT of g to dst.
//
// Returns an error wrapping errs.ErrInvalidGeometry or
// errs.ErrUnsupportedGeometryType when g fails validation; dst is returned
// unchanged in that case.
func Append(dst []byte, g geom.Geometry, precision uint) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return dst, err
	}

	return appendGeometry(dst, g, precision), nil
}

// AppendEWKT appends g prefixed with "SRID=n;" when g has a non-zero SRID.
func AppendEWKT(dst []byte, g geom.Geometry, precision uint) ([]byte, error) {
	if err := g.Validate(); err != nil {
		return dst, err
	}

	if g.SRID != 0 {
		dst = append(dst, "SRID="...)
		dst = strconv.AppendInt(dst, int64(g.SRID), 10)
		dst = append(dst, ';')
	}

	return appendGeometry(dst, g, precision), nil
}

// Format returns the WKT of g.
func Format(g geom.Geometry, precision uint) (string, error) {
	return render(Append, g, precision)
}

// FormatEWKT returns the EWKT of g.
func FormatEWKT(g geom.Geometry, precision uint) (string, error) {
	return render(AppendEWKT, g, precision)
}

func render(fn func([]byte, geom.Geometry, uint) ([]byte, error), g geom.Geometry, precision uint) (string, error) {
	bb := pool.GetTextBuffer()
	defer pool.PutTextBuffer(bb)

	out, err := fn(bb.B, g, precision)
	if err != nil {
		return "", err
	}
	bb.B = out

	return bb.String(), nil
}

func appendGeometry(dst []byte, g geom.Geometry, precision uint) []byte {
	dst = append(dst, typeNames[g.Type]...)
	if g.IsEmpty() {
		return append(dst, " EMPTY"...)
	}

	switch g.Type {
	case format.GeometryPoint, format.GeometryLineString:
		dst = appendSequence(dst, g.Parts[0], precision)
	default:
		// polygon rings, multi point members and lines are each parenthesized
		dst = append(dst, '(')
		for i, part := range g.Parts {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendSequence(dst, part, precision)
		}
		dst = append(dst, ')')
	}

	return dst
}

func appendSequence(dst []byte, coords []geom.Coord, precision uint) []byte {
	dst = append(dst, '(')
	for i, c := range coords {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = coord.Append(dst, c.X, precision)
		dst = append(dst, ' ')
		dst = coord.Append(dst, c.Y, precision)
	}

	return append(dst, ')')
}
