package compress

// NoOpCompressor stores payloads uncompressed.
//
// Both directions return the input slice itself; nothing is copied. Callers
// that keep the result must not modify the input afterwards.
type NoOpCompressor struct{}

var (
	_ Codec              = (*NoOpCompressor)(nil)
	_ PrefixDecompressor = (*NoOpCompressor)(nil)
)

// NewNoOpCompressor creates a new no-operation codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressPrefix returns the first n bytes of data, aliasing it.
func (c NoOpCompressor) DecompressPrefix(data []byte, n int) ([]byte, error) {
	if n < 0 {
		n = 0
	}
	if n > len(data) {
		n = len(data)
	}

	return data[:n], nil
}
