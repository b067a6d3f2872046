package restapi

import (
	"compress/gzip"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"unitconv.dev/internal/appconf"
)

// NewCompressionMiddleware returns gzip middleware for the given settings, or
// a pass-through when compression is disabled.
func NewCompressionMiddleware(cfg appconf.CompressionConfig) (func(http.Handler) http.Handler, error) {
	if !cfg.Enabled || cfg.Level == "none" {
		return func(h http.Handler) http.Handler { return h }, nil
	}

	level := gzip.DefaultCompression
	switch cfg.Level {
	case "fastest":
		level = gzip.BestSpeed
	case "best":
		level = gzip.BestCompression
	}

	minSize := cfg.MinSize
	if minSize <= 0 {
		minSize = gzhttp.DefaultMinSize
	}

	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(minSize),
		gzhttp.CompressionLevel(level),
	)
	if err != nil {
		return nil, err
	}

	return func(h http.Handler) http.Handler {
		return wrapper(h)
	}, nil
}
