package section

import (
	"encoding/binary"

	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/format"
)

// GeometryHeader represents the fixed-size header at the start of a geometry blob.
//
// Everything needed to describe the geometry without touching the payload
// lives here, so tools can list blobs without decompressing them.
type GeometryHeader struct {
	// Flag is a packed field for options, magic number, geometry type and compression.
	Flag GeometryFlag // byte offset 0-3
	// SRID is the spatial reference identifier, 0 when unknown.
	SRID int32 // byte offset 4-7
	// PointCount is the total number of coordinates across all parts.
	PointCount uint32 // byte offset 8-11
	// PartCount is the number of coordinate sequences.
	PartCount uint32 // byte offset 12-15
	// PayloadSize is the size of the stored (possibly compressed) payload.
	PayloadSize uint32 // byte offset 16-19
	// RawSize is the size of the payload before compression.
	RawSize uint32 // byte offset 20-23
	// Checksum is the xxHash64 of the raw payload.
	Checksum uint64 // byte offset 24-31
}

// NewGeometryHeader creates a header for a geometry of type t.
// Counts, sizes and the checksum are set by the encoder.
func NewGeometryHeader(t format.GeometryType, srid int32) *GeometryHeader {
	h := &GeometryHeader{
		Flag: NewGeometryFlag(t),
		SRID: srid,
	}
	h.Flag.SetHasSRID(srid != 0)

	return h
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *GeometryHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	le := binary.LittleEndian

	h.Flag.Options = le.Uint16(data[0:2])
	h.Flag.GeometryType = data[2]
	h.Flag.CompressionType = data[3]
	h.SRID = int32(le.Uint32(data[4:8])) //nolint: gosec
	h.PointCount = le.Uint32(data[8:12])
	h.PartCount = le.Uint32(data[12:16])
	h.PayloadSize = le.Uint32(data[16:20])
	h.RawSize = le.Uint32(data[20:24])
	h.Checksum = le.Uint64(data[24:32])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.Flag.HasSRID() != (h.SRID != 0) {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *GeometryHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *GeometryHeader) AppendTo(dst []byte) []byte {
	le := binary.LittleEndian

	dst = le.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.GeometryType, h.Flag.CompressionType)
	dst = le.AppendUint32(dst, uint32(h.SRID)) //nolint: gosec
	dst = le.AppendUint32(dst, h.PointCount)
	dst = le.AppendUint32(dst, h.PartCount)
	dst = le.AppendUint32(dst, h.PayloadSize)
	dst = le.AppendUint32(dst, h.RawSize)
	dst = le.AppendUint64(dst, h.Checksum)

	return dst
}

// ExpectedRawSize returns the raw payload size implied by the part and point counts.
func (h *GeometryHeader) ExpectedRawSize() uint64 {
	return uint64(h.PartCount)*PartCountSize + uint64(h.PointCount)*CoordSize
}

// ParseGeometryHeader parses a GeometryHeader from the start of a blob.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - GeometryHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseGeometryHeader(data []byte) (GeometryHeader, error) {
	if len(data) < HeaderSize {
		return GeometryHeader{}, errs.ErrInvalidHeaderSize
	}

	h := GeometryHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return GeometryHeader{}, err
	}

	return h, nil
}
