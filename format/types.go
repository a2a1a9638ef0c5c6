package format

type (
	CompressionType uint8
	GeometryType    uint8
	Notation        uint8
	OutputFormat    uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Geometry type codes follow the OGC WKB numbering.
const (
	GeometryPoint           GeometryType = 1
	GeometryLineString      GeometryType = 2
	GeometryPolygon         GeometryType = 3
	GeometryMultiPoint      GeometryType = 4
	GeometryMultiLineString GeometryType = 5
)

const (
	NotationFixed      Notation = 0x1 // NotationFixed renders [-]int.frac
	NotationScientific Notation = 0x2 // NotationScientific renders [-]d.ddde±NN
)

const (
	WKT     OutputFormat = 0x1
	GeoJSON OutputFormat = 0x2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression maps a case-sensitive lower-case name to a CompressionType.
func ParseCompression(name string) (CompressionType, bool) {
	switch name {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (g GeometryType) String() string {
	switch g {
	case GeometryPoint:
		return "Point"
	case GeometryLineString:
		return "LineString"
	case GeometryPolygon:
		return "Polygon"
	case GeometryMultiPoint:
		return "MultiPoint"
	case GeometryMultiLineString:
		return "MultiLineString"
	default:
		return "Unknown"
	}
}

// ParseGeometryType maps a case-sensitive lower-case name to a GeometryType.
func ParseGeometryType(name string) (GeometryType, bool) {
	switch name {
	case "point":
		return GeometryPoint, true
	case "linestring":
		return GeometryLineString, true
	case "polygon":
		return GeometryPolygon, true
	case "multipoint":
		return GeometryMultiPoint, true
	case "multilinestring":
		return GeometryMultiLineString, true
	default:
		return 0, false
	}
}

// Valid reports whether g is one of the supported geometry types.
func (g GeometryType) Valid() bool {
	return g >= GeometryPoint && g <= GeometryMultiLineString
}

func (n Notation) String() string {
	switch n {
	case NotationFixed:
		return "Fixed"
	case NotationScientific:
		return "Scientific"
	default:
		return "Unknown"
	}
}

func (o OutputFormat) String() string {
	switch o {
	case WKT:
		return "WKT"
	case GeoJSON:
		return "GeoJSON"
	default:
		return "Unknown"
	}
}

// DefaultPrecision returns the number of fractional digits an output format
// keeps when the caller does not ask for a specific precision.
func (o OutputFormat) DefaultPrecision() uint {
	if o == GeoJSON {
		return 9
	}

	return 15
}
