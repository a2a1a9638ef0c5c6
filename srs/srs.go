// Package srs resolves spatial reference identifiers (SRIDs) to the metadata
// used when rendering geometries, mainly the authority name GeoJSON writes
// into its "crs" member.
//
// Lookups go through a Cache that callers create and pass explicitly to the
// code that renders geometries. There is no package-level cache: each Cache
// owns its entries and is invalidated explicitly with Invalidate or Reset.
package srs

import (
	"context"
	"strconv"
)

// Entry is one row of PostGIS's spatial_ref_sys table.
type Entry struct {
	SRID      int32
	AuthName  string
	AuthSRID  int32
	SRText    string
	Proj4Text string
}

// Name returns the authority-qualified name, e.g. "EPSG:4326".
// An entry without an authority returns an empty string.
func (e Entry) Name() string {
	if e.AuthName == "" {
		return ""
	}

	return e.AuthName + ":" + strconv.FormatInt(int64(e.AuthSRID), 10)
}

// Loader fetches the entry for an SRID from a backing store.
//
// Implementations return an error wrapping errs.ErrUnknownSRID when the SRID
// does not exist.
type Loader interface {
	LoadSRS(ctx context.Context, srid int32) (Entry, error)
}
