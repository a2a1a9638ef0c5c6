package blob

import (
	"fmt"

	"github.com/arloliu/geoprint/compress"
	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/section"
)

// Header describes a geometry blob. It is read from the fixed header alone.
type Header struct {
	Type        format.GeometryType
	Compression format.CompressionType
	SRID        int32
	PointCount  int
	PartCount   int
	// PayloadSize is the stored payload size in bytes.
	PayloadSize int
	// RawSize is the payload size before compression.
	RawSize  int
	Checksum uint64
}

// Size returns the total blob size in bytes.
func (h Header) Size() int {
	return section.HeaderSize + h.PayloadSize
}

// Stats returns the compression statistics of the payload.
func (h Header) Stats() compress.Stats {
	return compress.Stats{
		Algorithm:      h.Compression,
		OriginalSize:   h.RawSize,
		CompressedSize: h.PayloadSize,
	}
}

// ReadHeader parses and validates the header of a geometry blob.
//
// It checks the header against the blob length and the counts against the
// raw size, but never reads or decompresses the payload.
//
// Returns:
//   - Header: Parsed header
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber,
//     errs.ErrInvalidHeaderFlags or errs.ErrInvalidPayloadSize
func ReadHeader(data []byte) (Header, error) {
	sh, err := readSectionHeader(data)
	if err != nil {
		return Header{}, err
	}

	return Header{
		Type:        sh.Flag.Geometry(),
		Compression: sh.Flag.Compression(),
		SRID:        sh.SRID,
		PointCount:  int(sh.PointCount),
		PartCount:   int(sh.PartCount),
		PayloadSize: int(sh.PayloadSize),
		RawSize:     int(sh.RawSize),
		Checksum:    sh.Checksum,
	}, nil
}

func readSectionHeader(data []byte) (section.GeometryHeader, error) {
	sh, err := section.ParseGeometryHeader(data)
	if err != nil {
		return section.GeometryHeader{}, fmt.Errorf("read geometry header: %w", err)
	}

	if stored := len(data) - section.HeaderSize; stored != int(sh.PayloadSize) {
		return section.GeometryHeader{}, fmt.Errorf("%w: header says %d payload bytes, blob has %d",
			errs.ErrInvalidPayloadSize, sh.PayloadSize, stored)
	}

	if sh.ExpectedRawSize() != uint64(sh.RawSize) {
		return section.GeometryHeader{}, fmt.Errorf("%w: %d parts and %d points need %d bytes, header says %d",
			errs.ErrInvalidPayloadSize, sh.PartCount, sh.PointCount, sh.ExpectedRawSize(), sh.RawSize)
	}

	if sh.Flag.Compression() == format.CompressionNone && sh.PayloadSize != sh.RawSize {
		return section.GeometryHeader{}, fmt.Errorf("%w: uncompressed payload of %d bytes, raw size %d",
			errs.ErrInvalidPayloadSize, sh.PayloadSize, sh.RawSize)
	}

	return sh, nil
}
