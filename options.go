package filters

import (
	"github.com/hupe1980/filters/codec"
)

// DefaultDelimiter joins a value list into one flattened query parameter.
const DefaultDelimiter = ","

type options struct {
	codec     codec.Codec
	delimiter string
	logger    *Logger
}

func defaultOptions() options {
	return options{
		codec:     codec.Default,
		delimiter: DefaultDelimiter,
		logger:    NoopLogger(),
	}
}

// Option configures collection behavior at construction time.
type Option func(*options)

// WithCodec configures the codec used by Serialize and Deserialize.
//
// If nil is passed, codec.Default is used. Both sides of a round-trip must
// agree on the codec.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithDelimiter configures the separator used when flattening a value list
// into a single query parameter value. Defaults to DefaultDelimiter.
//
// An empty delimiter is replaced by the default; a delimiter that can occur
// inside rendered values makes flattening ambiguous, and choosing one that
// cannot is the caller's responsibility.
func WithDelimiter(delimiter string) Option {
	return func(o *options) {
		if delimiter == "" {
			delimiter = DefaultDelimiter
		}
		o.delimiter = delimiter
	}
}

// WithLogger configures a logger for debug-level mutation and reconciliation
// tracing. Pass nil to keep the collection silent.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
