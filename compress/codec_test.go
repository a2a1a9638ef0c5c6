package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geoprint/format"
)

// coordinatePayload builds a payload shaped like a blob's raw section: one
// part header followed by a slowly drifting track of X/Y pairs.
func coordinatePayload(points int) []byte {
	buf := binary.LittleEndian.AppendUint32(nil, uint32(points))
	x, y := -122.4194, 37.7749
	for i := range points {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x+float64(i)*1e-5))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(y+float64(i%7)*1e-5))
	}

	return buf
}

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"single point": coordinatePayload(1),
		"track":        coordinatePayload(500),
		"zeros":        make([]byte, 64*1024),
		"tiny":         {0x01, 0x02, 0x03},
	}

	for _, ct := range allCompressions {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				out, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, out)
			})
		}
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range allCompressions {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)

			out, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, out)
		})
	}
}

func TestCodecs_CorruptedInput(t *testing.T) {
	garbage := []byte{0x07, 0xff, 0xfe, 0xfd, 0xfc, 0xfb, 0xfa, 0xf9}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestNoOp_Aliases(t *testing.T) {
	payload := coordinatePayload(3)
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.True(t, &payload[0] == &compressed[0], "noop compress must not copy")

	out, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.True(t, &payload[0] == &out[0], "noop decompress must not copy")
}

func TestPrefixDecompressor(t *testing.T) {
	payload := coordinatePayload(2000)

	for _, codec := range []Codec{NewZstdCompressor(), NewNoOpCompressor()} {
		pd, ok := codec.(PrefixDecompressor)
		require.True(t, ok)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)

		t.Run("prefix", func(t *testing.T) {
			prefix, err := pd.DecompressPrefix(compressed, 20)
			require.NoError(t, err)
			require.Equal(t, payload[:20], prefix)
		})

		t.Run("longer than payload", func(t *testing.T) {
			prefix, err := pd.DecompressPrefix(compressed, len(payload)+100)
			require.NoError(t, err)
			require.Equal(t, payload, prefix)
		})

		t.Run("zero length", func(t *testing.T) {
			prefix, err := pd.DecompressPrefix(compressed, 0)
			require.NoError(t, err)
			require.Empty(t, prefix)
		})
	}

	t.Run("zstd decoder reusable after prefix", func(t *testing.T) {
		codec := NewZstdCompressor()
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)

		_, err = codec.DecompressPrefix(compressed, 8)
		require.NoError(t, err)

		out, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Equal(t, payload, out)
	})
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0x9), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid payload compression")

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestStats(t *testing.T) {
	s := Stats{Algorithm: format.CompressionZstd, OriginalSize: 1000, CompressedSize: 250}
	require.InDelta(t, 0.25, s.Ratio(), 1e-12)
	require.InDelta(t, 75.0, s.SpaceSavings(), 1e-9)

	require.Zero(t, Stats{}.Ratio())
}
