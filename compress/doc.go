// Package compress provides the codecs applied to geometry blob payloads.
//
// A payload is the raw coordinate section of a blob: part sizes followed by
// float64 X/Y pairs. Compression runs after that layout is built and is
// recorded in the blob header, so a decoder picks the codec without any
// out-of-band configuration.
//
// Supported algorithms:
//   - None: payload stored as-is. Compress and Decompress alias their input.
//   - Zstd: best ratio. Pure Go (klauspost/compress) by default, or cgo
//     (valyala/gozstd) when built with the gozstd tag.
//   - S2: fast with a reasonable ratio.
//   - LZ4: fastest decompression.
//
// # Partial decompression
//
// Codecs that can inflate a stream incrementally also implement
// PrefixDecompressor. The blob package uses it to read the first coordinate
// of a large geometry without inflating the whole payload:
//
//	if pd, ok := codec.(compress.PrefixDecompressor); ok {
//	    prefix, err := pd.DecompressPrefix(payload, 24)
//	}
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders and
// are safe for concurrent use.
package compress
