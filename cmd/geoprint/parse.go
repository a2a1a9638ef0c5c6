package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/geom"
)

// parseNumbers parses whitespace-separated numbers.
func parseNumbers(line string) ([]float64, error) {
	fields := strings.Fields(line)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		out = append(out, v)
	}

	return out, nil
}

// parseGeometry parses a coordinate list into a geometry of type t.
//
// Coordinates are "x y" pairs separated by ',' and parts are separated by
// ';'. The single word EMPTY gives an empty geometry.
//
//	point:           1 2
//	linestring:      0 0, 1 1, 2 0
//	polygon:         0 0, 4 0, 4 4, 0 0; 1 1, 2 1, 2 2, 1 1
//	multipoint:      1 1, 2 2
//	multilinestring: 0 0, 1 1; 2 2, 3 3
func parseGeometry(line string, t format.GeometryType) (geom.Geometry, error) {
	line = strings.TrimSpace(line)
	if strings.EqualFold(line, "EMPTY") {
		return geom.Empty(t), nil
	}

	var parts [][]geom.Coord
	for _, p := range strings.Split(line, ";") {
		coords, err := parseCoords(p)
		if err != nil {
			return geom.Geometry{}, err
		}
		parts = append(parts, coords)
	}

	var g geom.Geometry
	switch t {
	case format.GeometryPoint:
		if len(parts) != 1 || len(parts[0]) != 1 {
			return geom.Geometry{}, errors.New("point needs exactly one coordinate")
		}
		g = geom.NewPoint(parts[0][0].X, parts[0][0].Y)
	case format.GeometryLineString:
		if len(parts) != 1 {
			return geom.Geometry{}, errors.New("linestring takes a single part")
		}
		g = geom.NewLineString(parts[0]...)
	case format.GeometryPolygon:
		g = geom.NewPolygon(parts...)
	case format.GeometryMultiPoint:
		if len(parts) != 1 {
			return geom.Geometry{}, errors.New("multipoint takes a single part")
		}
		g = geom.NewMultiPoint(parts[0]...)
	case format.GeometryMultiLineString:
		g = geom.NewMultiLineString(parts...)
	default:
		return geom.Geometry{}, fmt.Errorf("unsupported geometry type %s", t)
	}

	if err := g.Validate(); err != nil {
		return geom.Geometry{}, err
	}

	return g, nil
}

func parseCoords(s string) ([]geom.Coord, error) {
	pairs := strings.Split(s, ",")
	coords := make([]geom.Coord, 0, len(pairs))
	for _, pair := range pairs {
		nums, err := parseNumbers(pair)
		if err != nil {
			return nil, err
		}
		if len(nums) != 2 {
			return nil, fmt.Errorf("coordinate %q needs two numbers", strings.TrimSpace(pair))
		}
		coords = append(coords, geom.Coord{X: nums[0], Y: nums[1]})
	}

	return coords, nil
}
