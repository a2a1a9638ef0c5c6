package section

const (
	// Bit masks
	SRIDMask         = 0x0001 // Mask for SRID-present bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1), must be 0 (little-endian)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicGeometryV1Opt is the version 1 magic number of the geometry blob format.
	MagicGeometryV1Opt = 0xEC10
)

// offset and section sizes in the blob
const (
	HeaderSize    = 32         // fixed header size in bytes
	PayloadOffset = HeaderSize // byte offset where the stored payload starts
	PartCountSize = 4          // uint32 point count written per part
	CoordSize     = 16         // two float64 values per coordinate
)
