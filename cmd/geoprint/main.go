// Command geoprint formats numbers and geometries read from stdin.
//
// Each input line is converted according to --output:
//
//	num      whitespace-separated numbers, each formatted
//	wkt      geometry as WKT
//	ewkt     geometry as EWKT (SRID=n;...)
//	geojson  geometry as GeoJSON, with a named crs when --srid is set
//	blob     geometry as a hex-encoded geometry blob
//	header   hex-encoded geometry blob, header printed without decompression
//
// Geometry lines list "x y" coordinates separated by ',' with parts separated
// by ';'. See --type.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/arloliu/geoprint/internal/config"
	"github.com/arloliu/geoprint/internal/pgdb"
	"github.com/arloliu/geoprint/srs"
)

// version is set at build time via -ldflags; defaults to dev.
var version = "dev"

func main() {
	os.Exit(realMain())
}

func realMain() int {
	var (
		configPath  string
		output      string
		geomType    string
		precision   int
		srid        int32
		compression string
		databaseURL string
		verbose     int
		showVersion bool
	)

	fs := flag.NewFlagSet("geoprint", flag.ContinueOnError)
	fs.StringVarP(&configPath, "config", "c", "", "YAML config file")
	fs.StringVarP(&output, "output", "o", config.OutputNum, "output mode: num, wkt, ewkt, geojson, blob, header")
	fs.StringVarP(&geomType, "type", "t", "point", "geometry type: point, linestring, polygon, multipoint, multilinestring")
	fs.IntVarP(&precision, "precision", "p", -1, "maximum fractional digits; -1 uses the output format default")
	fs.Int32Var(&srid, "srid", 0, "spatial reference id attached to geometries")
	fs.StringVar(&compression, "compression", "zstd", "blob payload compression: none, zstd, s2, lz4")
	fs.StringVar(&databaseURL, "database-url", "", "PostGIS URL for spatial_ref_sys lookups (default $"+config.EnvDatabaseURL+")")
	fs.CountVarP(&verbose, "verbose", "v", "increase verbosity")
	fs.BoolVar(&showVersion, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: geoprint [options] < input\n\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	if showVersion {
		fmt.Println(version)
		return 0
	}

	envErr := godotenv.Load()

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		cfg = loaded
	}
	cfg.ApplyEnv(os.Getenv)

	// flags given on the command line win over the file and the environment
	overrides := map[string]func(){
		"output":       func() { cfg.Output = output },
		"type":         func() { cfg.Type = geomType },
		"precision":    func() { cfg.Precision = precision },
		"srid":         func() { cfg.SRID = srid },
		"compression":  func() { cfg.Compression = compression },
		"database-url": func() { cfg.DatabaseURL = databaseURL },
	}
	for name, apply := range overrides {
		if fs.Changed(name) {
			apply()
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	level, _ := cfg.Level()
	level -= slog.Level(4 * verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	loader, db, err := newLoader(ctx, cfg)
	if err != nil {
		logger.Error("open spatial reference source", "error", err)
		return 1
	}
	if db != nil {
		defer db.Close()
	}

	cache, err := srs.NewCache(loader, srs.WithLogger(logger), srs.WithEntries(cfg.SRSEntries()...))
	if err != nil {
		logger.Error("create spatial reference cache", "error", err)
		return 1
	}

	r, err := newRunner(cfg, cache, logger)
	if err != nil {
		logger.Error("init", "error", err)
		return 1
	}

	if err := r.run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Error("run", "error", err)
		return 1
	}

	return 0
}

// newLoader returns the PostGIS loader when a database URL is configured and
// the static loader otherwise. The returned db is nil for the static loader.
func newLoader(ctx context.Context, cfg *config.Config) (srs.Loader, *sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return srs.NewStaticLoader(cfg.SRSEntries()...), nil, nil
	}

	db, err := pgdb.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	return srs.NewSQLLoader(db), db, nil
}
