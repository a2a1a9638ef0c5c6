// Package section defines the low-level binary structures and constants of the
// geometry blob format.
//
// # Blob Structure
//
// A geometry blob is a fixed header followed by one payload:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): options/magic, type, compression     │
//	│  - SRID (4 bytes)                                       │
//	│  - PointCount, PartCount (8 bytes)                      │
//	│  - PayloadSize, RawSize (8 bytes)                       │
//	│  - Checksum (8 bytes): xxHash64 of the raw payload      │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes, compressed or raw)          │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field           | Type   | Description
//	-------|-----------------|--------|----------------------------------
//	0-1    | Options         | uint16 | SRID bit, endianness, magic 0xEC10
//	2      | GeometryType    | uint8  | OGC type code (1-5)
//	3      | CompressionType | uint8  | format.CompressionType
//	4-7    | SRID            | int32  | 0 when unknown
//	8-11   | PointCount      | uint32 | total coordinates
//	12-15  | PartCount       | uint32 | coordinate sequences
//	16-19  | PayloadSize     | uint32 | stored payload bytes
//	20-23  | RawSize         | uint32 | payload bytes before compression
//	24-31  | Checksum        | uint64 | xxHash64 of the raw payload
//
// All fields are little-endian.
//
// # Raw Payload
//
// The raw payload is the point count of every part (uint32 each) followed by
// every coordinate as two float64 values (X then Y). Putting the counts first
// means the first coordinate always sits at byte 4*PartCount, which lets a
// reader inflate only that prefix of a streaming-compressed payload.
package section
