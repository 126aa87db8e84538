// Package scanner is the duplex link-layer worker: it drives active host
// discovery and passively folds observed IPv4 traffic into windowed
// throughput statistics, exposing both via a bounded event protocol.
package scanner

import (
	"github.com/google/uuid"

	"github.com/yousfiSaad/netui/host"
	"github.com/yousfiSaad/netui/stats"
)

// EventKind discriminates the closed set of messages the engine emits.
type EventKind int

const (
	EventInterfaceName EventKind = iota
	EventBeginScan
	EventComplete
	EventHostFound
	EventStatTick
)

// Event is one message flowing from the engine to its consumer. Exactly the
// fields matching Kind are meaningful; the rest are zero values.
type Event struct {
	Kind          EventKind
	InterfaceName string
	Host          host.Host
	Tick          stats.PerSecondMap

	// ScanID correlates a BeginScan with its matching Complete; it is the
	// zero UUID on events that do not belong to a scan lifecycle.
	ScanID uuid.UUID
}

// CommandKind discriminates the closed set of messages flowing into the
// engine.
type CommandKind int

const (
	CommandStartScanning CommandKind = iota
)

// Command is one message a consumer sends to the engine.
type Command struct {
	Kind CommandKind
}
