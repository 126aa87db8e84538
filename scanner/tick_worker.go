package scanner

import "time"

// runTick drains acc once a second and publishes the drained map as a
// StatTick event. The drain is atomic with respect to the capture worker,
// so no sample is ever lost or double-counted across the boundary.
func runTick(acc *accumulator, events *unboundedQueue[Event]) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for range ticker.C {
		events.Send(Event{Kind: EventStatTick, Tick: acc.drain()})
	}
}
