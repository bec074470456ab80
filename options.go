package maf

import "go.uber.org/zap"

// Option configures a Decoder or a single ParseItem call.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger that receives line traces and errors at debug
// level. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		log: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
