package scanner

import (
	"github.com/yousfiSaad/netui/frame"
	"github.com/yousfiSaad/netui/linklayer"
	"github.com/yousfiSaad/netui/printer"
)

// runCapture reads frames from ch until the process terminates. Host
// records are dispatched as HostFound events; traffic samples are folded
// into acc under its mutex, held only long enough to add one entry.
func runCapture(ch linklayer.Channel, codec *frame.Codec, acc *accumulator, events *unboundedQueue[Event]) {
	for {
		raw, err := ch.ReadFrame()
		if err == linklayer.ErrTimeout {
			continue
		}
		if err != nil {
			printer.Debugf("capture: read error, skipping: %v\n", err)
			continue
		}

		decoded := codec.Decode(raw)
		switch {
		case decoded.Host != nil:
			events.Send(Event{Kind: EventHostFound, Host: *decoded.Host})
		case decoded.Sample != nil:
			acc.add(decoded.Sample.Key, decoded.Sample.Bits)
		}
	}
}
