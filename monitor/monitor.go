/*
Package monitor implements polling monitors for network targets.
*/
package monitor

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/mgnsk/commons/ringlist"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Status is a monitored target's state.
type Status int32

// Available target states.
const (
	StatusUp Status = iota
	StatusDown
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusUp:
		return "up"
	case StatusDown:
		return "down"
	default:
		return "unknown"
	}
}

// Event is a status change.
type Event struct {
	Status Status
	Err    error
	At     time.Time
}

// Probe checks a single target. A nil error means the target is up.
type Probe func(ctx context.Context) error

// maxEvents is the number of status changes kept in the event history.
const maxEvents = 32

// Poller periodically runs a probe and tracks the target's status.
// A new poller starts out with StatusUp.
type Poller struct {
	probe Probe
	opt   pollerOptions

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu       sync.RWMutex
	status   Status
	lastErr  error
	failures int
	events   ringlist.ElementList[Event]
}

// NewPoller creates a poller that runs probe on an interval.
func NewPoller(probe Probe, opts ...Option) *Poller {
	opt := newDefaultPollerOptions()
	for _, o := range opts {
		o.apply(&opt)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Poller{
		probe:  probe,
		opt:    opt,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// NewSocket creates a poller that checks a TCP address by connecting
// to it and closing the connection.
func NewSocket(addr string, opts ...Option) *Poller {
	var d net.Dialer

	return NewPoller(func(ctx context.Context) error {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err != nil {
			return errors.Wrapf(err, "dialing %v", addr)
		}

		return conn.Close()
	}, opts...)
}

// Start starts the poller loop. The first probe runs immediately.
// It is safe to call Start multiple times.
func (p *Poller) Start() {
	p.startOnce.Do(func() {
		p.wg.Add(1)
		go p.run()
	})
}

// Stop stops the poller and waits for the loop to exit.
// It cancels an in-flight probe. It is safe to call Stop multiple times.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.cancel()
		close(p.done)
	})
	p.wg.Wait()
}

// Status returns the current target status.
func (p *Poller) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.status
}

// LastErr returns the error of the most recent probe, or nil.
func (p *Poller) LastErr() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.lastErr
}

// Events returns the recorded status changes, oldest first.
// The history is bounded to the most recent maxEvents changes.
func (p *Poller) Events() []Event {
	p.mu.RLock()
	defer p.mu.RUnlock()

	events := make([]Event, 0, p.events.Len())
	p.events.Do(func(e *ringlist.Element[Event]) bool {
		events = append(events, e.Value)
		return true
	})

	return events
}

func (p *Poller) run() {
	defer p.wg.Done()

	timer := time.NewTimer(0)
	defer timer.Stop()

	wait := p.opt.interval

	for {
		select {
		case <-p.done:
			return

		case <-timer.C:
			status, changed := p.check()

			// While down, grow the retry delay by half up to the cap.
			switch {
			case status == StatusUp:
				wait = p.opt.interval

			case changed:
				wait = p.opt.backoff

			default:
				wait += wait / 2
				if wait > p.opt.maxBackoff {
					wait = p.opt.maxBackoff
				}
			}

			timer.Reset(wait)
		}
	}
}

func (p *Poller) check() (status Status, changed bool) {
	ctx, cancel := context.WithTimeout(p.ctx, p.opt.timeout)
	err := p.probe(ctx)
	cancel()

	var event Event

	p.mu.Lock()

	p.lastErr = err

	if err == nil {
		p.failures = 0
		if p.status == StatusDown {
			p.status = StatusUp
			changed = true
		}
	} else {
		p.failures++
		if p.status == StatusUp && p.failures >= p.opt.threshold {
			p.status = StatusDown
			changed = true
		}
	}

	status = p.status

	if changed {
		event = Event{Status: status, Err: err, At: time.Now()}

		p.events.PushBack(ringlist.NewElement(event))
		if p.events.Len() > maxEvents {
			p.events.Remove(p.events.Front())
		}
	}

	p.mu.Unlock()

	if err != nil {
		p.opt.logger.Error("probe failed", zap.Error(err))
	}

	if changed {
		p.opt.logger.Info("status changed", zap.Stringer("status", status))
		if p.opt.onChange != nil {
			p.opt.onChange(event)
		}
	}

	return status, changed
}
