package srs

import (
	"context"
	"fmt"

	"github.com/arloliu/geoprint/errs"
)

// Built-in entries for the two reference systems nearly every dataset uses.
var (
	WGS84 = Entry{
		SRID:      4326,
		AuthName:  "EPSG",
		AuthSRID:  4326,
		Proj4Text: "+proj=longlat +datum=WGS84 +no_defs",
	}
	WebMercator = Entry{
		SRID:      3857,
		AuthName:  "EPSG",
		AuthSRID:  3857,
		Proj4Text: "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1 +units=m +nadgrids=@null +wktext +no_defs",
	}
)

// StaticLoader serves entries from an in-memory map.
type StaticLoader struct {
	entries map[int32]Entry
}

var _ Loader = (*StaticLoader)(nil)

// NewStaticLoader returns a loader holding WGS84, WebMercator and extra.
// Entries in extra replace built-ins with the same SRID.
func NewStaticLoader(extra ...Entry) *StaticLoader {
	l := &StaticLoader{entries: make(map[int32]Entry, 2+len(extra))}
	for _, e := range append([]Entry{WGS84, WebMercator}, extra...) {
		l.entries[e.SRID] = e
	}

	return l
}

// LoadSRS returns the entry for srid.
func (l *StaticLoader) LoadSRS(_ context.Context, srid int32) (Entry, error) {
	e, ok := l.entries[srid]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %d", errs.ErrUnknownSRID, srid)
	}

	return e, nil
}
