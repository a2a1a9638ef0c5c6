// Package geoprint renders geometry coordinates as the shortest decimal text
// that round-trips, and stores geometries in a compact binary blob whose
// header can be read without decompressing the payload.
//
// # Core Features
//
//   - Shortest round-trip float formatting with a cap on fractional digits
//   - Scientific notation below 1e-8 and above 1e15, fixed notation otherwise
//   - WKT, EWKT and GeoJSON output built on the same formatter
//   - Spatial reference lookups through an explicit, invalidatable cache
//   - Geometry blobs with None, Zstd, S2 or LZ4 payload compression and an
//     xxHash64 checksum
//
// # Basic Usage
//
// Formatting numbers:
//
//	geoprint.Format(0.30000000000000004, 15) // "0.3"
//	geoprint.Format(22.200000000000003, 13)  // "22.2"
//	geoprint.Format(1e-9, 15)                // "1e-09"
//
// Formatting geometries:
//
//	pt := geom.NewPoint(-122.4194155, 37.7749295).WithSRID(4326)
//	s, _ := geoprint.FormatWKT(pt)                             // "POINT(-122.4194155 37.7749295)"
//	j, _ := geoprint.FormatGeoJSON(context.Background(), pt)  // {"type":"Point","coordinates":[...]}
//
// Storing geometries:
//
//	data, _ := geoprint.EncodeGeometry(pt)
//	h, _ := geoprint.ReadGeometryHeader(data) // no decompression
//	g, _ := geoprint.DecodeGeometry(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers with default settings.
// For options and finer control use the coord, wkt, geojson, srs and blob
// packages directly.
package geoprint

import (
	"context"

	"github.com/arloliu/geoprint/blob"
	"github.com/arloliu/geoprint/coord"
	"github.com/arloliu/geoprint/geojson"
	"github.com/arloliu/geoprint/geom"
	"github.com/arloliu/geoprint/wkt"
)

// Format renders v keeping at most precision fractional digits.
// See coord.Format.
func Format(v float64, precision uint) string {
	return coord.Format(v, precision)
}

// Append appends the rendering of v to dst. See coord.Append.
func Append(dst []byte, v float64, precision uint) []byte {
	return coord.Append(dst, v, precision)
}

// FormatWKT returns the WKT of g at wkt.DefaultPrecision.
func FormatWKT(g geom.Geometry) (string, error) {
	return wkt.Format(g, wkt.DefaultPrecision)
}

// FormatGeoJSON returns the GeoJSON of g.
//
// Without options it uses geojson.DefaultPrecision and writes no "crs" member.
func FormatGeoJSON(ctx context.Context, g geom.Geometry, opts ...geojson.EncoderOption) (string, error) {
	enc, err := geojson.NewEncoder(opts...)
	if err != nil {
		return "", err
	}

	return enc.Format(ctx, g)
}

// EncodeGeometry stores g in a blob, zstd-compressed unless opts say otherwise.
func EncodeGeometry(g geom.Geometry, opts ...blob.EncodeOption) ([]byte, error) {
	return blob.Encode(g, opts...)
}

// DecodeGeometry rebuilds the geometry stored in a blob, verifying its checksum.
func DecodeGeometry(data []byte) (geom.Geometry, error) {
	return blob.Decode(data)
}

// ReadGeometryHeader reads the header of a blob without decompressing the payload.
func ReadGeometryHeader(data []byte) (blob.Header, error) {
	return blob.ReadHeader(data)
}
