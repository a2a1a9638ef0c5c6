// Package blob stores geometries in a compact binary blob whose 32-byte header
// describes the geometry without touching the payload.
//
// # Encoding
//
//	data, err := blob.Encode(g, blob.WithCompression(format.CompressionZstd))
//
// The raw payload holds the point count of every part followed by the
// coordinates as little-endian float64 pairs. It is checksummed with xxHash64
// before compression and verified after decompression.
//
// # Reading
//
// Three readers cost progressively more:
//
//   - ReadHeader parses the header only. It never decompresses, so it is the
//     right call for listing or filtering blobs by type, SRID or size.
//   - FirstCoord inflates only the payload prefix that ends at the first
//     coordinate when the codec can stop early (zstd, none). S2 and LZ4
//     blocks are inflated in full.
//   - Decode inflates and verifies the whole payload and rebuilds the geometry.
//
// Uncompressed payloads are never copied by RawPayload: the returned Payload
// borrows the input slice.
package blob
