package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/arloliu/geoprint/blob"
	"github.com/arloliu/geoprint/coord"
	"github.com/arloliu/geoprint/format"
	"github.com/arloliu/geoprint/geojson"
	"github.com/arloliu/geoprint/geom"
	"github.com/arloliu/geoprint/internal/config"
	"github.com/arloliu/geoprint/srs"
	"github.com/arloliu/geoprint/wkt"
)

// errLinesFailed is returned by run when at least one input line failed.
var errLinesFailed = errors.New("some lines failed")

// runner converts input lines according to one output mode.
type runner struct {
	cfg    *config.Config
	cache  *srs.Cache
	logger *slog.Logger
	enc    *geojson.Encoder
}

func newRunner(cfg *config.Config, cache *srs.Cache, logger *slog.Logger) (*runner, error) {
	r := &runner{cfg: cfg, cache: cache, logger: logger}

	if cfg.Output == config.OutputGeoJSON {
		enc, err := geojson.NewEncoder(
			geojson.WithPrecision(cfg.PrecisionFor(format.GeoJSON)),
			geojson.WithCRS(cache),
		)
		if err != nil {
			return nil, err
		}
		r.enc = enc
	}

	return r, nil
}

// run converts every non-blank line of in and writes one output line each.
// Failing lines are logged and skipped.
func (r *runner) run(ctx context.Context, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	w := bufio.NewWriter(out)

	var (
		buf    []byte
		lineNo int
		failed int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var err error
		buf, err = r.convert(ctx, buf[:0], line)
		if err != nil {
			failed++
			r.logger.Error("convert line", "line", lineNo, "error", err)

			continue
		}

		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	r.logger.Debug("done", "lines", lineNo, "failed", failed, "cached_srs", r.cache.Len())
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errLinesFailed, failed, lineNo)
	}

	return nil
}

func (r *runner) convert(ctx context.Context, dst []byte, line string) ([]byte, error) {
	switch r.cfg.Output {
	case config.OutputNum:
		return r.convertNumbers(dst, line)
	case config.OutputHeader:
		return r.convertHeader(ctx, dst, line)
	}

	g, err := parseGeometry(line, r.cfg.GeometryType())
	if err != nil {
		return dst, err
	}
	g = g.WithSRID(r.cfg.SRID)

	switch r.cfg.Output {
	case config.OutputWKT:
		return wkt.Append(dst, g, r.cfg.PrecisionFor(format.WKT))
	case config.OutputEWKT:
		return wkt.AppendEWKT(dst, g, r.cfg.PrecisionFor(format.WKT))
	case config.OutputGeoJSON:
		return r.enc.Append(ctx, dst, g)
	case config.OutputBlob:
		return r.convertBlob(dst, g)
	default:
		return dst, fmt.Errorf("unknown output %q", r.cfg.Output)
	}
}

func (r *runner) convertNumbers(dst []byte, line string) ([]byte, error) {
	nums, err := parseNumbers(line)
	if err != nil {
		return dst, err
	}

	precision := r.cfg.PrecisionFor(format.WKT)
	for i, v := range nums {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = coord.Append(dst, v, precision)
	}

	return dst, nil
}

func (r *runner) convertBlob(dst []byte, g geom.Geometry) ([]byte, error) {
	data, err := blob.Encode(g, blob.WithCompression(r.cfg.CompressionType()))
	if err != nil {
		return dst, err
	}

	return hex.AppendEncode(dst, data), nil
}

func (r *runner) convertHeader(ctx context.Context, dst []byte, line string) ([]byte, error) {
	data, err := hex.DecodeString(line)
	if err != nil {
		return dst, fmt.Errorf("decode hex blob: %w", err)
	}

	h, err := blob.ReadHeader(data)
	if err != nil {
		return dst, err
	}

	stats := h.Stats()
	dst = fmt.Appendf(dst, "type=%s srid=%d parts=%d points=%d compression=%s stored=%d raw=%d savings=%.1f%% checksum=%016x",
		h.Type, h.SRID, h.PartCount, h.PointCount, h.Compression, h.PayloadSize, h.RawSize, stats.SpaceSavings(), h.Checksum)

	if h.SRID != 0 {
		// unknown SRIDs are shown by number only
		if e, err := r.cache.Get(ctx, h.SRID); err == nil {
			dst = fmt.Appendf(dst, " crs=%s", e.Name())
		}
	}

	return dst, nil
}
