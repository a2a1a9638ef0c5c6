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
	"github.com/arloliu/geoprint/internal/options"
	"github.com/arloliu/geoprint/internal/pool"
	"github.com/arloliu/geoprint/section"
)

// DefaultCompression is the payload compression used without WithCompression.
const DefaultCompression = format.CompressionZstd

type encodeConfig struct {
	compression format.CompressionType
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression sets the payload compression.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(c *encodeConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid payload compression: %s", compression)
		}
	})
}

// Encode serializes g into a new geometry blob.
//
// Parameters:
//   - g: Geometry to store; it must pass geom.Geometry.Validate
//   - opts: Encoding options (WithCompression)
//
// Returns:
//   - []byte: Header followed by the stored payload
//   - error: Validation, option or compression error, or errs.ErrInvalidPayloadSize
//     when the raw payload does not fit the 32-bit size fields
func Encode(g geom.Geometry, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{compression: DefaultCompression}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	points := g.NumPoints()
	rawSize := uint64(len(g.Parts))*section.PartCountSize + uint64(points)*section.CoordSize
	if rawSize > math.MaxUint32 {
		return nil, fmt.Errorf("%w: raw payload of %d bytes", errs.ErrInvalidPayloadSize, rawSize)
	}

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	bb.Grow(int(rawSize))
	raw := appendRawPayload(bb.B, g)
	bb.B = raw

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	stored, err := codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress geometry payload: %w", err)
	}
	if uint64(len(stored)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: stored payload of %d bytes", errs.ErrInvalidPayloadSize, len(stored))
	}

	header := section.NewGeometryHeader(g.Type, g.SRID)
	header.Flag.SetCompression(cfg.compression)
	header.PointCount = uint32(points)      //nolint: gosec
	header.PartCount = uint32(len(g.Parts)) //nolint: gosec
	header.PayloadSize = uint32(len(stored))
	header.RawSize = uint32(len(raw))
	header.Checksum = hash.Checksum(raw)

	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = header.AppendTo(out)
	out = append(out, stored...)

	return out, nil
}

// appendRawPayload writes the part point counts, then every coordinate.
func appendRawPayload(dst []byte, g geom.Geometry) []byte {
	le := binary.LittleEndian

	for _, part := range g.Parts {
		dst = le.AppendUint32(dst, uint32(len(part))) //nolint: gosec
	}

	for _, part := range g.Parts {
		for _, c := range part {
			dst = le.AppendUint64(dst, math.Float64bits(c.X))
			dst = le.AppendUint64(dst, math.Float64bits(c.Y))
		}
	}

	return dst
}
