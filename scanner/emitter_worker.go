package scanner

import (
	"net"
	"time"

	"github.com/google/uuid"

	"github.com/yousfiSaad/netui/frame"
	"github.com/yousfiSaad/netui/iface"
	"github.com/yousfiSaad/netui/linklayer"
	"github.com/yousfiSaad/netui/printer"
)

// probeCadence rate-limits outbound probes to avoid swamping small links
// and the capture worker's own accumulator.
const probeCadence = 37 * time.Millisecond

// runEmitter serializes StartScanning commands: a command received while a
// scan is in flight is processed only after the current one completes,
// because commands are drained one at a time from the same queue.
func runEmitter(desc iface.Descriptor, ch linklayer.Channel, codec *frame.Codec, commands *unboundedQueue[Command], events *unboundedQueue[Event]) {
	for cmd := range commands.C() {
		if cmd.Kind != CommandStartScanning {
			continue
		}
		scanOnce(desc, ch, codec, events)
	}
}

func scanOnce(desc iface.Descriptor, ch linklayer.Channel, codec *frame.Codec, events *unboundedQueue[Event]) {
	scanID := uuid.New()
	events.Send(Event{Kind: EventBeginScan, ScanID: scanID})

	senderIP, ok := desc.FirstIPv4()
	if !ok {
		printer.Warningf("emitter: interface %s has no IPv4 address, nothing to scan\n", desc.Name)
		events.Send(Event{Kind: EventComplete, ScanID: scanID})
		return
	}

	for _, prefix := range desc.Prefixes {
		for _, target := range allAddresses(prefix) {
			time.Sleep(probeCadence)
			emitProbe(ch, codec, senderIP, target)
		}
	}

	events.Send(Event{Kind: EventComplete, ScanID: scanID})
}

func emitProbe(ch linklayer.Channel, codec *frame.Codec, senderIP, targetIP net.IP) {
	probe, err := codec.EncodeProbe(senderIP, targetIP)
	if err != nil {
		printer.Debugf("emitter: failed to encode probe for %s: %v\n", targetIP, err)
		return
	}
	if err := ch.WriteFrame(probe); err != nil {
		printer.Debugf("emitter: failed to send probe for %s: %v\n", targetIP, err)
	}
}
