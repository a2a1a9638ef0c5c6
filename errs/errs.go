// Package errs defines the sentinel errors returned by geoprint packages.
//
// Callers should match them with errors.Is, since most call sites wrap the
// sentinel with additional context.
package errs

import "errors"

// Formatting errors.
var (
	// ErrNotFinite is returned when a NaN or infinite value reaches an output
	// that has no textual representation for it.
	ErrNotFinite = errors.New("value is not finite")
	// ErrInvalidNumber is returned when decimal text cannot be parsed as a float64.
	ErrInvalidNumber = errors.New("invalid decimal number")
	// ErrInvalidPrecision is returned when a precision setting is out of range.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrInvalidNonFinitePolicy is returned for an unknown non-finite policy.
	ErrInvalidNonFinitePolicy = errors.New("invalid non-finite policy")
)

// Geometry errors.
var (
	ErrInvalidGeometry         = errors.New("invalid geometry")
	ErrUnsupportedGeometryType = errors.New("unsupported geometry type")
)

// Blob format errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	ErrInvalidPayloadSize = errors.New("invalid payload size")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
)

// Spatial reference errors.
var (
	ErrUnknownSRID = errors.New("unknown srid")
	ErrNilLoader   = errors.New("spatial reference loader is nil")
)
