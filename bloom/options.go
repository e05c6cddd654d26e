package bloom

import "github.com/datatrails/go-datatrails-common/logger"

type FilterOptions struct {
	Palette []Strategy
	// SaltedProbes derives a distinct hash for every probe position, including
	// positions that reuse a palette strategy. It changes which buckets a value
	// maps to once k exceeds the palette size.
	SaltedProbes bool
	Log          logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore the option if that fails.
type Option func(any)

// WithPalette replaces DefaultPalette as the strategies cycled across the k
// probe positions.
func WithPalette(palette ...Strategy) Option {
	return func(opts any) {
		if o, ok := opts.(*FilterOptions); ok {
			o.Palette = append([]Strategy(nil), palette...)
		}
	}
}

func WithSaltedProbes() Option {
	return func(opts any) {
		if o, ok := opts.(*FilterOptions); ok {
			o.SaltedProbes = true
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*FilterOptions); ok {
			o.Log = log
		}
	}
}

func newFilterOptions(opts ...Option) FilterOptions {
	o := FilterOptions{Palette: DefaultPalette}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
