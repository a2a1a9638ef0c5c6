// Package geom defines the small geometry model rendered by the wkt and
// geojson packages and stored by the blob package.
//
// A Geometry is a type tag, an SRID and a list of parts. Each part is a
// coordinate sequence whose meaning depends on the type: the single position
// of a point, the vertices of a line string, a polygon ring, and so on.
package geom

import (
	"fmt"

	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/format"
)

// Coord is a 2D position.
type Coord struct {
	X float64
	Y float64
}

// Geometry is a Point, LineString, Polygon, MultiPoint or MultiLineString.
//
// An empty geometry has no parts.
type Geometry struct {
	Type  format.GeometryType
	SRID  int32
	Parts [][]Coord
}

// NewPoint returns a point at (x, y).
func NewPoint(x, y float64) Geometry {
	return Geometry{Type: format.GeometryPoint, Parts: [][]Coord{{{X: x, Y: y}}}}
}

// NewLineString returns a line string through coords. No coordinates gives an
// empty line string.
func NewLineString(coords ...Coord) Geometry {
	return Geometry{Type: format.GeometryLineString, Parts: nonEmpty(coords)}
}

// NewPolygon returns a polygon; the first ring is the shell, the rest are holes.
func NewPolygon(rings ...[]Coord) Geometry {
	return Geometry{Type: format.GeometryPolygon, Parts: rings}
}

// NewMultiPoint returns a multi point with one part per coordinate.
func NewMultiPoint(coords ...Coord) Geometry {
	parts := make([][]Coord, len(coords))
	for i, c := range coords {
		parts[i] = []Coord{c}
	}

	return Geometry{Type: format.GeometryMultiPoint, Parts: parts}
}

// NewMultiLineString returns a multi line string with one part per line.
func NewMultiLineString(lines ...[]Coord) Geometry {
	return Geometry{Type: format.GeometryMultiLineString, Parts: lines}
}

// Empty returns an empty geometry of type t.
func Empty(t format.GeometryType) Geometry {
	return Geometry{Type: t}
}

// WithSRID returns a copy of g tagged with srid. Parts are shared.
func (g Geometry) WithSRID(srid int32) Geometry {
	g.SRID = srid
	return g
}

// IsEmpty reports whether g has no coordinates.
func (g Geometry) IsEmpty() bool {
	return g.NumPoints() == 0
}

// NumPoints returns the total number of coordinates across all parts.
func (g Geometry) NumPoints() int {
	n := 0
	for _, p := range g.Parts {
		n += len(p)
	}

	return n
}

// Validate checks the part structure required by the geometry type.
//
// Returns:
//   - error: errs.ErrUnsupportedGeometryType for an unknown type, or
//     errs.ErrInvalidGeometry describing the first violation
func (g Geometry) Validate() error {
	switch g.Type {
	case format.GeometryPoint:
		if len(g.Parts) > 1 || (len(g.Parts) == 1 && len(g.Parts[0]) != 1) {
			return fmt.Errorf("%w: point must have exactly one coordinate", errs.ErrInvalidGeometry)
		}
	case format.GeometryLineString:
		if len(g.Parts) > 1 {
			return fmt.Errorf("%w: line string has %d parts", errs.ErrInvalidGeometry, len(g.Parts))
		}
		if len(g.Parts) == 1 && len(g.Parts[0]) < 2 {
			return fmt.Errorf("%w: line string needs at least 2 coordinates", errs.ErrInvalidGeometry)
		}
	case format.GeometryPolygon:
		for i, ring := range g.Parts {
			if err := validateRing(ring); err != nil {
				return fmt.Errorf("%w: ring %d: %s", errs.ErrInvalidGeometry, i, err.Error())
			}
		}
	case format.GeometryMultiPoint:
		for i, p := range g.Parts {
			if len(p) != 1 {
				return fmt.Errorf("%w: multi point part %d has %d coordinates", errs.ErrInvalidGeometry, i, len(p))
			}
		}
	case format.GeometryMultiLineString:
		for i, line := range g.Parts {
			if len(line) < 2 {
				return fmt.Errorf("%w: line %d needs at least 2 coordinates", errs.ErrInvalidGeometry, i)
			}
		}
	default:
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedGeometryType, g.Type)
	}

	return nil
}

func validateRing(ring []Coord) error {
	if len(ring) < 4 {
		return fmt.Errorf("needs at least 4 coordinates, has %d", len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		return fmt.Errorf("not closed")
	}

	return nil
}

func nonEmpty(coords []Coord) [][]Coord {
	if len(coords) == 0 {
		return nil
	}

	return [][]Coord{coords}
}
