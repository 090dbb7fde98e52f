package persist

import (
	"log/slog"

	"github.com/hupe1980/hepvec/codec"
	"github.com/hupe1980/hepvec/internal/resource"
)

// Option configures Write and Read.
type Option func(*options)

type options struct {
	compression Compression
	codec       codec.Codec
	logger      *slog.Logger
	noOverwrite bool
	resources   *resource.Controller
}

// WithCompression sets the column compression used by Write.
func WithCompression(c Compression) Option {
	return func(o *options) { o.compression = c }
}

// WithCodec sets the header codec used by Write. Read always uses the
// codec named in the file.
func WithCodec(c codec.Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithNoOverwrite makes Write fail with ErrExists when the name is taken.
// The store must implement blobstore.Conditional.
func WithNoOverwrite() Option {
	return func(o *options) { o.noOverwrite = true }
}

// WithResources bounds the workers, decoded memory and IO bandwidth of
// Write and Read.
func WithResources(rc *resource.Controller) Option {
	return func(o *options) { o.resources = rc }
}

func applyOptions(opts []Option) options {
	o := options{
		compression: CompressionNone,
		codec:       codec.Default,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.codec == nil {
		o.codec = codec.Default
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
