package monitor

import (
	"github.com/puzpuzpuz/xsync/v2"
)

// Group is a named registry of pollers. It is safe for concurrent use.
type Group struct {
	pollers *xsync.MapOf[string, *Poller]
}

// NewGroup creates an empty poller group.
func NewGroup() *Group {
	return &Group{
		pollers: xsync.NewMapOf[*Poller](),
	}
}

// Add registers a poller under the specified name.
// It returns false if the name is already taken.
func (g *Group) Add(name string, p *Poller) bool {
	_, loaded := g.pollers.LoadOrStore(name, p)
	return !loaded
}

// Get returns the poller registered under the specified name.
func (g *Group) Get(name string) (*Poller, bool) {
	return g.pollers.Load(name)
}

// StartAll starts all registered pollers.
func (g *Group) StartAll() {
	g.pollers.Range(func(_ string, p *Poller) bool {
		p.Start()
		return true
	})
}

// StopAll stops all registered pollers and waits for their loops to exit.
func (g *Group) StopAll() {
	g.pollers.Range(func(_ string, p *Poller) bool {
		p.Stop()
		return true
	})
}

// Statuses returns the status of each registered poller by name.
func (g *Group) Statuses() map[string]Status {
	statuses := make(map[string]Status)
	g.pollers.Range(func(name string, p *Poller) bool {
		statuses[name] = p.Status()
		return true
	})

	return statuses
}
