package scanner

import (
	"net"

	"github.com/pkg/errors"

	"github.com/yousfiSaad/netui/frame"
	"github.com/yousfiSaad/netui/iface"
	"github.com/yousfiSaad/netui/linklayer"
)

// ErrInterfaceMissingMac is fatal: without a hardware address the emitter
// cannot build the sender field of an outbound probe, so no scan can ever
// run.
var ErrInterfaceMissingMac = errors.New("interface has no hardware address")

// Scanner is the packet engine: it owns the capture, emitter and tick
// workers and exposes only a command channel and an event channel to its
// consumer, so the consumer never shares state with the workers beyond
// those two queues.
type Scanner struct {
	desc     iface.Descriptor
	events   *unboundedQueue[Event]
	commands *unboundedQueue[Command]
}

// New starts the engine's three workers against an already-open channel.
// The caller retains ownership of ch and should Close it on shutdown.
func New(desc iface.Descriptor, ch linklayer.Channel) (*Scanner, error) {
	if len(desc.MAC) != 6 {
		return nil, errors.Wrapf(ErrInterfaceMissingMac, "%s", desc.Name)
	}

	ifaceIPs := make([]net.IP, 0, len(desc.Prefixes))
	for _, p := range desc.Prefixes {
		ifaceIPs = append(ifaceIPs, p.IP)
	}
	codec := frame.NewCodec(desc.MAC, ifaceIPs)

	s := &Scanner{
		desc:     desc,
		events:   newUnboundedQueue[Event](),
		commands: newUnboundedQueue[Command](),
	}

	s.events.Send(Event{Kind: EventInterfaceName, InterfaceName: desc.Name})

	acc := newAccumulator()
	go runCapture(ch, codec, acc, s.events)
	go runEmitter(desc, ch, codec, s.commands, s.events)
	go runTick(acc, s.events)

	return s, nil
}

// Events returns the engine's outbound event stream.
func (s *Scanner) Events() <-chan Event {
	return s.events.C()
}

// StartScanning enqueues a scan. It is idempotent from the emitter's
// perspective: a command received mid-scan is processed once the current
// scan completes, never interleaved with it.
func (s *Scanner) StartScanning() {
	s.commands.Send(Command{Kind: CommandStartScanning})
}
