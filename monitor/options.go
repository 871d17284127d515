package monitor

import (
	"time"

	"go.uber.org/zap"
)

// Option is a poller configuration option.
type Option interface {
	apply(*pollerOptions)
}

type pollerOptions struct {
	interval   time.Duration
	timeout    time.Duration
	threshold  int
	backoff    time.Duration
	maxBackoff time.Duration
	logger     *zap.Logger
	onChange   func(Event)
}

func newDefaultPollerOptions() pollerOptions {
	return pollerOptions{
		interval:   10 * time.Second,
		timeout:    5 * time.Second,
		threshold:  3,
		backoff:    time.Second,
		maxBackoff: time.Minute,
		logger:     zap.NewNop(),
	}
}

// WithInterval option configures the poller to probe on the specified interval.
//
// The default interval is 10 seconds.
func WithInterval(d time.Duration) Option {
	return funcOption(func(opts *pollerOptions) {
		if d <= 0 {
			panic("monitor: interval must be positive")
		}

		opts.interval = d
	})
}

// WithTimeout option configures the timeout for a single probe.
//
// The default timeout is 5 seconds.
func WithTimeout(d time.Duration) Option {
	return funcOption(func(opts *pollerOptions) {
		if d <= 0 {
			panic("monitor: timeout must be positive")
		}

		opts.timeout = d
	})
}

// WithFailureThreshold option configures the number of consecutive probe
// failures after which the target is considered down.
//
// The default threshold is 3.
func WithFailureThreshold(n int) Option {
	return funcOption(func(opts *pollerOptions) {
		if n <= 0 {
			panic("monitor: failure threshold must be positive")
		}

		opts.threshold = n
	})
}

// WithBackoff option configures the retry delay used while the target is down.
// The delay starts at initial, grows by half after each failed probe and is
// capped at max. It resets when the target recovers.
//
// The default delay starts at 1 second and is capped at 1 minute.
func WithBackoff(initial, max time.Duration) Option {
	return funcOption(func(opts *pollerOptions) {
		if initial <= 0 || max < initial {
			panic("monitor: invalid backoff range")
		}

		opts.backoff = initial
		opts.maxBackoff = max
	})
}

// WithLogger option configures the poller to log with the specified logger.
//
// The zero value configures a nop logger.
func WithLogger(logger *zap.Logger) Option {
	return funcOption(func(opts *pollerOptions) {
		if logger != nil {
			opts.logger = logger
		}
	})
}

// WithOnChange option configures a callback that is invoked after each
// status change. The callback runs on the poller goroutine.
func WithOnChange(f func(Event)) Option {
	return funcOption(func(opts *pollerOptions) {
		opts.onChange = f
	})
}

type funcOption func(*pollerOptions)

func (o funcOption) apply(opts *pollerOptions) {
	o(opts)
}
