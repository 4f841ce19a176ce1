package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressedContentTypes are the response types worth compressing: API
// envelopes carrying chart options, and the dashboard and chart pages.
// /metrics negotiates its own encoding.
var CompressedContentTypes = []string{"application/json", "text/html"}

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the gzip level, 1-9
	Level int
	// ContentTypes limits compression to these media types
	ContentTypes []string
}

// DefaultCompressionConfig returns the defaults used for chart payloads.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:      1024,
		Level:        6,
		ContentTypes: CompressedContentTypes,
	}
}

// NewCompressionMiddleware builds a gzip middleware from config.
func NewCompressionMiddleware(config CompressionConfig) (func(http.Handler) http.Handler, error) {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(config.MinSize),
		gzhttp.CompressionLevel(config.Level),
		gzhttp.ContentTypes(config.ContentTypes),
	)
	if err != nil {
		return nil, err
	}
	return func(next http.Handler) http.Handler {
		return wrapper(next)
	}, nil
}

// CompressionMiddleware applies gzip compression with the default settings.
// It panics if the defaults are rejected.
func CompressionMiddleware(next http.Handler) http.Handler {
	middleware, err := NewCompressionMiddleware(DefaultCompressionConfig())
	if err != nil {
		panic(err)
	}
	return middleware(next)
}
