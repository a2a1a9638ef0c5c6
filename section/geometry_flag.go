package section

import (
	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/format"
)

// GeometryFlag represents the packed flag bytes at the start of the geometry header.
type GeometryFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is set when the geometry carries a non-zero SRID.
	// Bit 1 is the endianness flag, only little-endian (0) is written.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number:
	//   - 0xEC10 (0b1110_1100_0001_0000): geometry blob format v1
	Options uint16

	// GeometryType is the OGC geometry type code.
	GeometryType uint8
	// CompressionType is the compression applied to the payload.
	CompressionType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewGeometryFlag creates a flag for a geometry of type t with no compression.
func NewGeometryFlag(t format.GeometryType) GeometryFlag {
	return GeometryFlag{
		Options:         MagicGeometryV1Opt,
		GeometryType:    uint8(t),
		CompressionType: uint8(format.CompressionNone),
	}
}

// HasSRID returns whether the SRID-present bit is set.
func (f GeometryFlag) HasSRID() bool {
	return (f.Options & SRIDMask) != 0
}

// SetHasSRID sets or clears the SRID-present bit.
func (f *GeometryFlag) SetHasSRID(enabled bool) {
	if enabled {
		f.Options |= SRIDMask
	} else {
		f.Options &^= SRIDMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f GeometryFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Geometry returns the geometry type.
func (f GeometryFlag) Geometry() format.GeometryType {
	return format.GeometryType(f.GeometryType)
}

// Compression returns the payload compression.
func (f GeometryFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression.
func (f *GeometryFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f GeometryFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicGeometryV1Opt
}

// IsValidCompression checks if the compression type is valid.
func (f GeometryFlag) IsValidCompression() bool {
	_, ok := validCompressions[f.CompressionType]
	return ok
}

// Validate checks if the flag contains valid values.
func (f GeometryFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if f.Options&(EndiannessMask|ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.Geometry().Valid() {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
