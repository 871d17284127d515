/*
Package progress provides terminal progress reporting.
*/
package progress

import (
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Bar tracks the progress of an operation.
type Bar struct {
	bar     *progressbar.ProgressBar
	current atomic.Int64
}

// New creates a progress bar expecting total steps.
func New(total int, opts ...Option) *Bar {
	o := newDefaultBarOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	barOpts := []progressbar.Option{
		progressbar.OptionSetDescription(o.label),
		progressbar.OptionSetWriter(o.out),
		progressbar.OptionThrottle(time.Second),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{Saucer: "#", SaucerPadding: " ", BarStart: "|", BarEnd: "|"}),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	}

	if o.bytes {
		barOpts = append(barOpts, progressbar.OptionShowBytes(true))
	} else {
		barOpts = append(barOpts, progressbar.OptionShowIts())
	}
	if o.quiet {
		barOpts = append(barOpts, progressbar.OptionSetVisibility(false))
	}

	return &Bar{bar: progressbar.NewOptions(total, barOpts...)}
}

// Add advances the bar by n steps.
func (b *Bar) Add(n int) {
	b.current.Add(int64(n))
	_ = b.bar.Add(n)
}

// Inc advances the bar by one step.
func (b *Bar) Inc() {
	b.Add(1)
}

// Finish completes the rendering and clears the bar. The step counter
// is left at the number of steps added.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
}

// Current returns the number of steps added.
func (b *Bar) Current() int64 {
	return b.current.Load()
}

// ForEach runs fn over every item behind a labeled bar.
func ForEach[T any](items []T, label string, fn func(T), opts ...Option) {
	bar := New(len(items), append([]Option{WithLabel(label)}, opts...)...)
	defer bar.Finish()

	for _, item := range items {
		fn(item)
		bar.Inc()
	}
}
