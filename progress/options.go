package progress

import (
	"io"
	"os"
)

// Option is a progress bar configuration option.
type Option interface {
	apply(*barOptions)
}

type barOptions struct {
	label string
	out   io.Writer
	bytes bool
	quiet bool
}

func newDefaultBarOptions() barOptions {
	return barOptions{
		out: os.Stderr,
	}
}

// WithLabel option configures the description shown next to the bar.
func WithLabel(label string) Option {
	return funcOption(func(opts *barOptions) {
		opts.label = label
	})
}

// WithWriter option configures where the bar is rendered.
//
// The default is standard error.
func WithWriter(w io.Writer) Option {
	return funcOption(func(opts *barOptions) {
		opts.out = w
	})
}

// WithBytes option renders the count as a byte size with a transfer
// rate.
func WithBytes() Option {
	return funcOption(func(opts *barOptions) {
		opts.bytes = true
	})
}

// WithQuiet option suppresses rendering. The step counter keeps
// working.
func WithQuiet() Option {
	return funcOption(func(opts *barOptions) {
		opts.quiet = true
	})
}

type funcOption func(*barOptions)

func (o funcOption) apply(opts *barOptions) {
	o(opts)
}
