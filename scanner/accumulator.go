package scanner

import (
	"sync"

	"github.com/yousfiSaad/netui/stats"
)

// accumulator is the one piece of state shared between the capture and tick
// workers. The lock is held only for O(1) map updates and for the tick
// swap; neither worker ever suspends while holding it.
type accumulator struct {
	mu sync.Mutex
	m  stats.PerSecondMap
}

func newAccumulator() *accumulator {
	return &accumulator{m: stats.PerSecondMap{}}
}

func (a *accumulator) add(key stats.SampleKey, bits stats.Bits) {
	a.mu.Lock()
	a.m.Add(key, bits)
	a.mu.Unlock()
}

// drain atomically swaps in a fresh empty map and returns the one that was
// accumulated since the previous drain.
func (a *accumulator) drain() stats.PerSecondMap {
	a.mu.Lock()
	drained := a.m
	a.m = stats.PerSecondMap{}
	a.mu.Unlock()
	return drained
}
