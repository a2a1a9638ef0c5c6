package compress

// ZstdCompressor provides Zstandard compression for geometry payloads.
//
// Zstd gives the best ratio of the built-in codecs and supports streaming
// decompression, so it also implements PrefixDecompressor.
type ZstdCompressor struct{}

var (
	_ Codec              = (*ZstdCompressor)(nil)
	_ PrefixDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a new Zstd codec with default settings.
//
// Example:
//
//	codec := NewZstdCompressor()
//	compressed, err := codec.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
