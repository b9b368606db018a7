// SPDX-License-Identifier: MIT

package tabular

const (
	// DefaultValueHeader is the title of the value column.
	DefaultValueHeader = "value"

	// DefaultPrecision selects the shortest 'g' representation that round-trips.
	DefaultPrecision = -1
)

const panicPrecisionInvalid = "tabular: WithPrecision: precision must be >= -1"

// Option configures Render.
type Option func(*Options)

// Options holds resolved rendering configuration.
type Options struct {
	valueHeader string
	precision   int
}

func gatherOptions(opts ...Option) Options {
	o := Options{valueHeader: DefaultValueHeader, precision: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithValueHeader sets the title of the value column.
func WithValueHeader(h string) Option {
	return func(o *Options) { o.valueHeader = h }
}

// WithPrecision sets the number of significant digits for values ('g' format).
// -1 means shortest round-trip form. Panics if p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}
