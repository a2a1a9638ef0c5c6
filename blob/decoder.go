package blob

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/arloliu/geoprint/compress"
	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/geom"
	"github.com/arloliu/geoprint/internal/hash"
	"github.com/arloliu/geoprint/section"
)

// Payload is a raw geometry payload that either borrows the blob or owns a
// decompressed buffer.
type Payload struct {
	b     []byte
	owned bool
}

// Bytes returns the raw payload. The slice must not be modified when the
// payload is borrowed.
func (p Payload) Bytes() []byte {
	return p.b
}

// IsOwned reports whether the payload was decompressed into its own buffer.
func (p Payload) IsOwned() bool {
	return p.owned
}

// RawPayload returns the verified raw payload of a blob.
//
// Uncompressed blobs are not copied: the result borrows data. Compressed
// blobs are inflated into a new buffer the result owns. In both cases the
// payload size and checksum are verified against the header.
func RawPayload(data []byte) (Payload, error) {
	sh, err := readSectionHeader(data)
	if err != nil {
		return Payload{}, err
	}

	return rawPayload(data, sh)
}

func rawPayload(data []byte, sh section.GeometryHeader) (Payload, error) {
	stored := data[section.PayloadOffset:]

	p := Payload{b: stored}
	if sh.Flag.Compression() != format.CompressionNone {
		codec, err := compress.GetCodec(sh.Flag.Compression())
		if err != nil {
			return Payload{}, err
		}

		raw, err := codec.Decompress(stored)
		if err != nil {
			return Payload{}, fmt.Errorf("decompress geometry payload: %w", err)
		}
		p = Payload{b: raw, owned: true}
	}

	if len(p.b) != int(sh.RawSize) {
		return Payload{}, fmt.Errorf("%w: decompressed %d bytes, expected %d",
			errs.ErrInvalidPayloadSize, len(p.b), sh.RawSize)
	}

	if sum := hash.Checksum(p.b); sum != sh.Checksum {
		return Payload{}, fmt.Errorf("%w: got %016x, header says %016x", errs.ErrChecksumMismatch, sum, sh.Checksum)
	}

	return p, nil
}

// Decode rebuilds the geometry stored in a blob.
//
// Returns:
//   - geom.Geometry: Decoded geometry with its SRID
//   - error: Header errors, decompression errors, errs.ErrInvalidPayloadSize,
//     errs.ErrChecksumMismatch, or errs.ErrInvalidGeometry when the part counts
//     do not describe a valid geometry
func Decode(data []byte) (geom.Geometry, error) {
	sh, err := readSectionHeader(data)
	if err != nil {
		return geom.Geometry{}, err
	}

	payload, err := rawPayload(data, sh)
	if err != nil {
		return geom.Geometry{}, err
	}

	g := geom.Geometry{Type: sh.Flag.Geometry(), SRID: sh.SRID}
	if sh.PartCount == 0 {
		if sh.PointCount != 0 {
			return geom.Geometry{}, fmt.Errorf("%w: %d points in zero parts", errs.ErrInvalidGeometry, sh.PointCount)
		}

		return g, nil
	}

	raw := payload.Bytes()
	le := binary.LittleEndian
	parts := int(sh.PartCount)

	// the counts must add up before any coordinate slice is allocated
	total := uint64(0)
	for i := range parts {
		total += uint64(le.Uint32(raw[i*section.PartCountSize:]))
	}
	if total != uint64(sh.PointCount) {
		return geom.Geometry{}, fmt.Errorf("%w: part counts sum to %d, header says %d points",
			errs.ErrInvalidGeometry, total, sh.PointCount)
	}

	coords := make([]geom.Coord, sh.PointCount)
	off := parts * section.PartCountSize
	for i := range coords {
		coords[i].X = math.Float64frombits(le.Uint64(raw[off:]))
		coords[i].Y = math.Float64frombits(le.Uint64(raw[off+8:]))
		off += section.CoordSize
	}

	g.Parts = make([][]geom.Coord, parts)
	start := 0
	for i := range parts {
		n := int(le.Uint32(raw[i*section.PartCountSize:]))
		g.Parts[i] = coords[start : start+n : start+n]
		start += n
	}

	if err := g.Validate(); err != nil {
		return geom.Geometry{}, err
	}

	return g, nil
}

// FirstCoord returns the first coordinate of the geometry in a blob.
//
// Only the payload prefix ending at the first coordinate is inflated when the
// codec implements compress.PrefixDecompressor. The checksum covers the whole
// payload, so it is not verified here; use Decode when integrity matters.
//
// Returns:
//   - geom.Coord: First coordinate
//   - bool: false when the geometry is empty
//   - error: Header or decompression errors
func FirstCoord(data []byte) (geom.Coord, bool, error) {
	sh, err := readSectionHeader(data)
	if err != nil {
		return geom.Coord{}, false, err
	}

	if sh.PointCount == 0 {
		return geom.Coord{}, false, nil
	}

	off := int(sh.PartCount) * section.PartCountSize
	need := off + section.CoordSize
	stored := data[section.PayloadOffset:]

	codec, err := compress.GetCodec(sh.Flag.Compression())
	if err != nil {
		return geom.Coord{}, false, err
	}

	var prefix []byte
	if pd, ok := codec.(compress.PrefixDecompressor); ok {
		prefix, err = pd.DecompressPrefix(stored, need)
	} else {
		prefix, err = codec.Decompress(stored)
	}
	if err != nil {
		return geom.Coord{}, false, fmt.Errorf("decompress geometry payload: %w", err)
	}

	if len(prefix) < need {
		return geom.Coord{}, false, fmt.Errorf("%w: payload prefix of %d bytes, need %d",
			errs.ErrInvalidPayloadSize, len(prefix), need)
	}

	le := binary.LittleEndian

	return geom.Coord{
		X: math.Float64frombits(le.Uint64(prefix[off:])),
		Y: math.Float64frombits(le.Uint64(prefix[off+8:])),
	}, true, nil
}
