package monitor_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mgnsk/commons/monitor"
	. "github.com/onsi/gomega"
)

func TestGroup(t *testing.T) {
	g := NewWithT(t)

	grp := monitor.NewGroup()

	var calls atomic.Int64

	healthy := monitor.NewPoller(func(context.Context) error {
		calls.Add(1)
		return nil
	},
		monitor.WithInterval(time.Millisecond),
	)

	broken := monitor.NewPoller(func(context.Context) error {
		return errors.New("target unreachable")
	},
		monitor.WithInterval(time.Millisecond),
		monitor.WithFailureThreshold(1),
		monitor.WithBackoff(time.Millisecond, 4*time.Millisecond),
	)

	g.Expect(grp.Add("healthy", healthy)).To(BeTrue())
	g.Expect(grp.Add("broken", broken)).To(BeTrue())
	g.Expect(grp.Add("healthy", broken)).To(BeFalse(), "duplicate name")

	p, ok := grp.Get("healthy")
	g.Expect(ok).To(BeTrue())
	g.Expect(p).To(BeIdenticalTo(healthy))

	_, ok = grp.Get("missing")
	g.Expect(ok).To(BeFalse())

	grp.StartAll()
	defer grp.StopAll()

	g.Eventually(func() int64 { return calls.Load() }).Should(BeNumerically(">", 0))
	g.Eventually(broken.Status).Should(Equal(monitor.StatusDown))

	g.Expect(grp.Statuses()).To(Equal(map[string]monitor.Status{
		"healthy": monitor.StatusUp,
		"broken":  monitor.StatusDown,
	}))

	grp.StopAll()

	n := calls.Load()
	time.Sleep(10 * time.Millisecond)
	g.Expect(calls.Load()).To(Equal(n))
}

func TestEmptyGroup(t *testing.T) {
	g := NewWithT(t)

	grp := monitor.NewGroup()

	grp.StartAll()
	grp.StopAll()

	g.Expect(grp.Statuses()).To(BeEmpty())
}
