// Package config loads the geoprint command configuration from a YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/srs"
)

// Environment variables read by ApplyEnv.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvLogLevel    = "GEOPRINT_LOG_LEVEL"
)

// Output modes.
const (
	OutputNum     = "num"
	OutputWKT     = "wkt"
	OutputEWKT    = "ewkt"
	OutputGeoJSON = "geojson"
	OutputBlob    = "blob"
	OutputHeader  = "header"
)

var outputs = map[string]struct{}{
	OutputNum: {}, OutputWKT: {}, OutputEWKT: {}, OutputGeoJSON: {}, OutputBlob: {}, OutputHeader: {},
}

// SRSConfig is an extra spatial reference served by the static loader.
type SRSConfig struct {
	SRID      int32  `yaml:"srid"`
	AuthName  string `yaml:"auth_name"`
	AuthSRID  int32  `yaml:"auth_srid"`
	Proj4Text string `yaml:"proj4text"`
}

// Config is the top-level structure of geoprint.yaml.
type Config struct {
	Output string `yaml:"output"`
	Type   string `yaml:"type"`
	// Precision is the coordinate precision; negative selects the output format default.
	Precision   int    `yaml:"precision"`
	SRID        int32  `yaml:"srid"`
	Compression string `yaml:"compression"`
	DatabaseURL string `yaml:"database_url"`
	LogLevel    string `yaml:"log_level"`

	SRS []SRSConfig `yaml:"srs"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:      OutputNum,
		Type:        "point",
		Precision:   -1,
		Compression: "zstd",
		LogLevel:    "info",
	}
}

// Load reads and parses the YAML file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read geoprint config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse geoprint config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields with non-empty environment variables.
// getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvDatabaseURL); v != "" {
		c.DatabaseURL = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []error

	if _, ok := outputs[c.Output]; !ok {
		problems = append(problems, fmt.Errorf("unknown output %q", c.Output))
	}
	if _, ok := format.ParseGeometryType(c.Type); !ok {
		problems = append(problems, fmt.Errorf("unknown geometry type %q", c.Type))
	}
	if _, ok := format.ParseCompression(c.Compression); !ok {
		problems = append(problems, fmt.Errorf("unknown compression %q", c.Compression))
	}
	if _, err := c.Level(); err != nil {
		problems = append(problems, err)
	}
	for _, e := range c.SRS {
		if e.SRID == 0 {
			problems = append(problems, errors.New("srs entry without srid"))
		}
	}

	return errors.Join(problems...)
}

// GeometryType returns the parsed geometry type. Call Validate first.
func (c *Config) GeometryType() format.GeometryType {
	t, _ := format.ParseGeometryType(c.Type)
	return t
}

// CompressionType returns the parsed compression. Call Validate first.
func (c *Config) CompressionType() format.CompressionType {
	ct, _ := format.ParseCompression(c.Compression)
	return ct
}

// PrecisionFor returns the configured precision, or the default of o when
// the configured one is negative.
func (c *Config) PrecisionFor(o format.OutputFormat) uint {
	if c.Precision < 0 {
		return o.DefaultPrecision()
	}

	return uint(c.Precision)
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	return lvl, nil
}

// SRSEntries converts the extra spatial references to srs entries.
func (c *Config) SRSEntries() []srs.Entry {
	entries := make([]srs.Entry, 0, len(c.SRS))
	for _, e := range c.SRS {
		entries = append(entries, srs.Entry{
			SRID:      e.SRID,
			AuthName:  e.AuthName,
			AuthSRID:  e.AuthSRID,
			Proj4Text: e.Proj4Text,
		})
	}

	return entries
}
