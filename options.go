package gridpaint

import "github.com/rs/zerolog"

// Options holds configuration for the Renderer.
type Options struct {
	formatter Formatter
	defaults  Defaults
	logger    zerolog.Logger
}

func defaultOptions() *Options {
	return &Options{
		defaults: DefaultDefaults(),
		logger:   zerolog.Nop(),
	}
}

// Option configures the Renderer.
type Option func(*Options)

// WithFormatter sets the formatter used to turn values into display text.
// Without one, values are rendered with Stringify.
func WithFormatter(f Formatter) Option {
	return func(o *Options) { o.formatter = f }
}

// WithDefaults replaces the built-in defaults (see LoadDefaults).
func WithDefaults(d Defaults) Option {
	return func(o *Options) { o.defaults = d }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}
