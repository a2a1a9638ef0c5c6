package srs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arloliu/geoprint/errs"
)

const selectSRS = `
	SELECT auth_name, auth_srid, srtext, proj4text
	FROM spatial_ref_sys
	WHERE srid = $1;
	`

// SQLLoader reads entries from a PostGIS spatial_ref_sys table.
type SQLLoader struct {
	DB *sql.DB
}

var _ Loader = (*SQLLoader)(nil)

// NewSQLLoader returns a loader querying db. Open db with pgdb.Open.
func NewSQLLoader(db *sql.DB) *SQLLoader {
	return &SQLLoader{DB: db}
}

// LoadSRS queries spatial_ref_sys for srid.
func (l *SQLLoader) LoadSRS(ctx context.Context, srid int32) (Entry, error) {
	if l.DB == nil {
		return Entry{}, errors.New("load srs: db is nil")
	}

	var (
		authName, srText, proj4 sql.NullString
		authSRID                sql.NullInt32
	)
	err := l.DB.QueryRowContext(ctx, selectSRS, srid).Scan(&authName, &authSRID, &srText, &proj4)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %d", errs.ErrUnknownSRID, srid)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("load srs %d: query spatial_ref_sys: %w", srid, err)
	}

	return Entry{
		SRID:      srid,
		AuthName:  authName.String,
		AuthSRID:  authSRID.Int32,
		SRText:    srText.String,
		Proj4Text: proj4.String,
	}, nil
}
