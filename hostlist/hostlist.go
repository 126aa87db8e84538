// Package hostlist maintains the deduplicated, speed-annotated host table
// that the engine's consumer builds from HostFound and StatTick events.
package hostlist

import (
	"sync"

	"github.com/yousfiSaad/netui/host"
	"github.com/yousfiSaad/netui/stats"
)

// List deduplicates hosts by (IPv4, MAC) and carries the most recent speed
// estimate across re-observations.
type List struct {
	mu    sync.Mutex
	hosts map[host.Key]host.Host
	order []host.Key
}

// New builds an empty host list.
func New() *List {
	return &List{hosts: make(map[host.Key]host.Host)}
}

// Observe records h, updating timestamp and hardware identity on
// re-observation while preserving the previously estimated speed.
func (l *List) Observe(h host.Host) {
	key, ok := host.KeyOf(h)
	if !ok {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, found := l.hosts[key]; found {
		h.Speed = existing.Speed
	} else {
		l.order = append(l.order, key)
	}
	l.hosts[key] = h
}

// ApplySpeeds annotates every currently known host whose IPv4 appears in
// perHost with its latest speed estimate.
func (l *List) ApplySpeeds(perHost map[stats.IPv4]stats.Speed) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, h := range l.hosts {
		speed, ok := perHost[stats.IPv4(key.IPv4)]
		if !ok {
			continue
		}
		s := speed
		h.Speed = &s
		l.hosts[key] = h
	}
}

// Hosts returns a snapshot of all known hosts in discovery order.
func (l *List) Hosts() []host.Host {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]host.Host, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, l.hosts[key])
	}
	return out
}
