// Package frame encodes outbound address-resolution probes and decodes
// inbound Ethernet frames into host-discovery replies or traffic samples.
package frame

import (
	"encoding/binary"
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/pkg/errors"

	"github.com/yousfiSaad/netui/host"
	"github.com/yousfiSaad/netui/stats"
)

// ErrProbeEncode wraps failures building an outbound probe frame. Per-probe
// errors are logged and skipped by the emitter; they never abort a scan.
var ErrProbeEncode = errors.New("failed to encode probe frame")

var broadcastMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// Codec encodes and decodes frames for one interface.
type Codec struct {
	ifaceMAC net.HardwareAddr
	ifaceIPs map[stats.IPv4]bool
}

// NewCodec builds a Codec bound to the given interface identity.
func NewCodec(ifaceMAC net.HardwareAddr, ifaceIPs []net.IP) *Codec {
	ips := make(map[stats.IPv4]bool, len(ifaceIPs))
	for _, ip := range ifaceIPs {
		if v4, ok := stats.IPv4FromNetIP(ip); ok {
			ips[v4] = true
		}
	}
	return &Codec{ifaceMAC: ifaceMAC, ifaceIPs: ips}
}

// EncodeProbe produces a 42-byte broadcast ARP request asking who owns
// targetIP, claiming senderIP as the interface's own protocol address.
func (c *Codec) EncodeProbe(senderIP, targetIP net.IP) ([]byte, error) {
	sip := senderIP.To4()
	tip := targetIP.To4()
	if sip == nil || tip == nil {
		return nil, errors.Wrap(ErrProbeEncode, "sender and target addresses must be IPv4")
	}

	eth := &layers.Ethernet{
		SrcMAC:       c.ifaceMAC,
		DstMAC:       broadcastMAC,
		EthernetType: layers.EthernetTypeARP,
	}
	arp := &layers.ARP{
		AddrType:          layers.LinkTypeEthernet,
		Protocol:          layers.EthernetTypeIPv4,
		HwAddressSize:     6,
		ProtAddressSize:   4,
		Operation:         layers.ARPRequest,
		SourceHwAddress:   []byte(c.ifaceMAC),
		SourceProtAddress: []byte(sip),
		DstHwAddress:      []byte(broadcastMAC),
		DstProtAddress:    []byte(tip),
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, arp); err != nil {
		return nil, errors.Wrap(ErrProbeEncode, err.Error())
	}
	return buf.Bytes(), nil
}

// Decoded is the result of decoding one inbound frame. At most one of Host
// or Sample is non-nil; both nil means the frame carried nothing of
// interest (a different ethertype, or a header this engine discards).
type Decoded struct {
	Host   *host.Host
	Sample *Sample
}

// Sample is one observed traffic flow and the bits it carried.
type Sample struct {
	Key  stats.SampleKey
	Bits stats.Bits
}

// Decode classifies one inbound frame. Malformed headers are reported by
// returning a zero Decoded and a nil error: decode failures are endemic on
// a shared LAN segment and must never be treated as fatal.
func (c *Codec) Decode(raw []byte) Decoded {
	packet := gopacket.NewPacket(raw, layers.LayerTypeEthernet, gopacket.NoCopy)

	if arpLayer := packet.Layer(layers.LayerTypeARP); arpLayer != nil {
		arp, ok := arpLayer.(*layers.ARP)
		if !ok || len(arp.SourceProtAddress) != 4 || len(arp.SourceHwAddress) != 6 {
			return Decoded{}
		}
		mac := net.HardwareAddr(append([]byte(nil), arp.SourceHwAddress...))
		return Decoded{Host: &host.Host{
			Time:          time.Now(),
			IPv4:          net.IP(append([]byte(nil), arp.SourceProtAddress...)),
			MAC:           mac,
			IsMyDeviceMAC: mac.String() == c.ifaceMAC.String(),
		}}
	}

	if ipLayer := packet.Layer(layers.LayerTypeIPv4); ipLayer != nil {
		ipv4, ok := ipLayer.(*layers.IPv4)
		if !ok {
			return Decoded{}
		}
		switch ipv4.Protocol {
		case layers.IPProtocolTCP, layers.IPProtocolUDP:
			return c.decodeL4Sample(ipv4)
		default:
			return Decoded{}
		}
	}

	return Decoded{}
}

// decodeL4Sample reads the first 4 bytes of the IPv4 payload as source and
// destination ports and attributes the full IPv4 payload length as the
// sample's bit count, regardless of IHL or the actual L4 header size. This
// is a deliberately approximate port and size estimate, not a full TCP or
// UDP header parse.
func (c *Codec) decodeL4Sample(ipv4 *layers.IPv4) Decoded {
	payload := ipv4.Payload
	if len(payload) < 4 {
		return Decoded{}
	}
	src, srcOK := stats.IPv4FromNetIP(ipv4.SrcIP)
	dst, dstOK := stats.IPv4FromNetIP(ipv4.DstIP)
	if !srcOK || !dstOK {
		return Decoded{}
	}

	key := stats.SampleKey{
		SrcIP:     src,
		DstIP:     dst,
		SrcPort:   binary.BigEndian.Uint16(payload[0:2]),
		DstPort:   binary.BigEndian.Uint16(payload[2:4]),
		Direction: c.direction(src, dst),
	}
	return Decoded{Sample: &Sample{
		Key:  key,
		Bits: stats.NewBits(uint64(8 * len(payload))),
	}}
}

func (c *Codec) direction(src, dst stats.IPv4) stats.Direction {
	srcLocal, dstLocal := c.ifaceIPs[src], c.ifaceIPs[dst]
	switch {
	case srcLocal && dstLocal:
		return stats.DirectionLocal
	case srcLocal:
		return stats.DirectionOutgoing
	case dstLocal:
		return stats.DirectionIncoming
	default:
		return stats.DirectionNone
	}
}
