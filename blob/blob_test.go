package blob

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geoprint/errs"
	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/geom"
	"github.com/arloliu/geoprint/section"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// track builds a line string of n slowly drifting coordinates.
func track(n int) geom.Geometry {
	coords := make([]geom.Coord, n)
	for i := range coords {
		coords[i] = geom.Coord{X: -122.4194 + float64(i)*1e-5, Y: 37.7749 + float64(i%7)*1e-5}
	}

	return geom.NewLineString(coords...)
}

func testGeometries() map[string]geom.Geometry {
	square := []geom.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0}}
	hole := []geom.Coord{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 2}}

	return map[string]geom.Geometry{
		"point":             geom.NewPoint(0.30000000000000004, math.Copysign(0, -1)).WithSRID(4326),
		"empty point":       geom.Empty(format.GeometryPoint),
		"track":             track(1000).WithSRID(3857),
		"polygon with hole": geom.NewPolygon(square, hole),
		"multi point":       geom.NewMultiPoint(geom.Coord{X: 1, Y: 1}, geom.Coord{X: math.MaxFloat64, Y: math.SmallestNonzeroFloat64}),
		"multi line string": geom.NewMultiLineString([]geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}}, []geom.Coord{{X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}}),
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, ct := range allCompressions {
		for name, g := range testGeometries() {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				data, err := Encode(g, WithCompression(ct))
				require.NoError(t, err)

				decoded, err := Decode(data)
				require.NoError(t, err)
				require.Equal(t, g, decoded)

				// -0 must survive bit for bit
				if name == "point" {
					require.True(t, math.Signbit(decoded.Parts[0][0].Y))
				}
			})
		}
	}
}

func TestEncode_DefaultCompression(t *testing.T) {
	data, err := Encode(track(10))
	require.NoError(t, err)

	h, err := ReadHeader(data)
	require.NoError(t, err)
	require.Equal(t, DefaultCompression, h.Compression)
}

func TestEncode_InvalidOptions(t *testing.T) {
	_, err := Encode(geom.NewPoint(1, 2), WithCompression(format.CompressionType(9)))
	require.Error(t, err)
}

func TestEncode_InvalidGeometry(t *testing.T) {
	_, err := Encode(geom.NewPolygon([]geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}))
	require.ErrorIs(t, err, errs.ErrInvalidGeometry)

	_, err = Encode(geom.Geometry{Type: format.GeometryType(7)})
	require.ErrorIs(t, err, errs.ErrUnsupportedGeometryType)
}

func TestReadHeader(t *testing.T) {
	g := track(1000).WithSRID(3857)

	data, err := Encode(g, WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	h, err := ReadHeader(data)
	require.NoError(t, err)
	require.Equal(t, format.GeometryLineString, h.Type)
	require.Equal(t, format.CompressionZstd, h.Compression)
	require.Equal(t, int32(3857), h.SRID)
	require.Equal(t, 1000, h.PointCount)
	require.Equal(t, 1, h.PartCount)
	require.Equal(t, 4+1000*16, h.RawSize)
	require.Equal(t, len(data)-section.HeaderSize, h.PayloadSize)
	require.Equal(t, len(data), h.Size())

	stats := h.Stats()
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Less(t, stats.Ratio(), 1.0)
	require.Positive(t, stats.SpaceSavings())
}

func TestReadHeader_DoesNotTouchPayload(t *testing.T) {
	data, err := Encode(track(100), WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	// garbage payload of the right size still has a readable header
	for i := section.HeaderSize; i < len(data); i++ {
		data[i] = 0xFF
	}

	h, err := ReadHeader(data)
	require.NoError(t, err)
	require.Equal(t, 100, h.PointCount)

	_, err = Decode(data)
	require.Error(t, err)
}

func TestReadHeader_Errors(t *testing.T) {
	data, err := Encode(track(10), WithCompression(format.CompressionNone))
	require.NoError(t, err)

	t.Run("short", func(t *testing.T) {
		_, err := ReadHeader(data[:section.HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := ReadHeader(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[1] = 0x00
		_, err := ReadHeader(bad)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
	})

	t.Run("counts disagree with raw size", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		binary.LittleEndian.PutUint32(bad[8:12], 11)
		_, err := ReadHeader(bad)
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})
}

func TestDecode_ChecksumMismatch(t *testing.T) {
	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			data, err := Encode(geom.NewPoint(1, 2), WithCompression(ct))
			require.NoError(t, err)

			data[section.HeaderSize-1] ^= 0xFF

			_, err = Decode(data)
			require.ErrorIs(t, err, errs.ErrChecksumMismatch)
		})
	}
}

func TestDecode_CorruptedCoordinate(t *testing.T) {
	data, err := Encode(geom.NewPoint(1, 2), WithCompression(format.CompressionNone))
	require.NoError(t, err)

	data[len(data)-1] ^= 0x01

	_, err = Decode(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestRawPayload(t *testing.T) {
	g := track(50)

	plain, err := Encode(g, WithCompression(format.CompressionNone))
	require.NoError(t, err)

	p, err := RawPayload(plain)
	require.NoError(t, err)
	require.False(t, p.IsOwned())
	require.Same(t, &plain[section.HeaderSize], &p.Bytes()[0])

	packed, err := Encode(g, WithCompression(format.CompressionS2))
	require.NoError(t, err)

	q, err := RawPayload(packed)
	require.NoError(t, err)
	require.True(t, q.IsOwned())
	require.Equal(t, p.Bytes(), q.Bytes())
}

func TestFirstCoord(t *testing.T) {
	for _, ct := range allCompressions {
		for name, g := range testGeometries() {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				data, err := Encode(g, WithCompression(ct))
				require.NoError(t, err)

				c, ok, err := FirstCoord(data)
				require.NoError(t, err)

				if g.IsEmpty() {
					require.False(t, ok)
					return
				}

				require.True(t, ok)
				require.Equal(t, g.Parts[0][0], c)
			})
		}
	}
}

func TestFirstCoord_Errors(t *testing.T) {
	_, _, err := FirstCoord([]byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)

	data, err := Encode(track(100), WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	// marker byte outside the lz4 block format
	data[section.HeaderSize] = 0x07
	_, _, err = FirstCoord(data)
	require.Error(t, err)
}
