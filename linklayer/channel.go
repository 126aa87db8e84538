// Package linklayer opens a bidirectional raw link-layer endpoint on a
// network interface.
package linklayer

import (
	"time"

	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
	"github.com/pkg/errors"
)

// readTimeout keeps the capture loop responsive to shutdown: a blocking
// read would otherwise never notice the process is exiting.
const readTimeout = 500 * time.Millisecond

// The same default snapshot length as tcpdump.
const snapLen = 262144

var (
	ErrChannelOpenError       = errors.New("failed to open link-layer channel")
	ErrUnsupportedChannelKind = errors.New("interface did not yield an Ethernet link-layer channel")
)

// ErrTimeout is returned by Channel.ReadFrame when no frame arrived within
// the configured read timeout. It is not a failure; callers should treat it
// as "nothing to do this iteration".
var ErrTimeout = errors.New("link-layer read timed out")

// Channel is a bidirectional raw Ethernet endpoint.
type Channel interface {
	ReadFrame() ([]byte, error)
	WriteFrame([]byte) error
	Close()
}

type pcapChannel struct {
	handle *pcap.Handle
}

// Open opens a read/write Ethernet channel on interfaceName in promiscuous
// mode with the fixed capture read timeout.
func Open(interfaceName string) (Channel, error) {
	handle, err := pcap.OpenLive(interfaceName, snapLen, true, readTimeout)
	if err != nil {
		return nil, errors.Wrapf(ErrChannelOpenError, "%s: %v", interfaceName, err)
	}
	if handle.LinkType() != layers.LinkTypeEthernet {
		handle.Close()
		return nil, errors.Wrapf(ErrUnsupportedChannelKind, "%s: link type %s", interfaceName, handle.LinkType())
	}
	return &pcapChannel{handle: handle}, nil
}

func (c *pcapChannel) ReadFrame() ([]byte, error) {
	data, _, err := c.handle.ReadPacketData()
	if err == pcap.NextErrorTimeoutExpired {
		return nil, ErrTimeout
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *pcapChannel) WriteFrame(frame []byte) error {
	return c.handle.WritePacketData(frame)
}

func (c *pcapChannel) Close() {
	c.handle.Close()
}
