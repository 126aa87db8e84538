package scanner

import (
	"encoding/binary"
	"net"
)

// allAddresses enumerates every IPv4 address in prefix, including the
// network and broadcast addresses: the emitter probes the whole range
// rather than just the usable host range.
func allAddresses(prefix net.IPNet) []net.IP {
	ip4 := prefix.IP.To4()
	if ip4 == nil {
		return nil
	}
	mask := prefix.Mask
	if len(mask) == net.IPv6len {
		mask = mask[12:]
	}

	base := binary.BigEndian.Uint32(ip4) & binary.BigEndian.Uint32(mask)
	hostBits := ^binary.BigEndian.Uint32(mask)
	last := base | hostBits

	addrs := make([]net.IP, 0, last-base+1)
	for v := base; ; v++ {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], v)
		addrs = append(addrs, net.IP(append([]byte(nil), b[:]...)))
		if v == last {
			break
		}
	}
	return addrs
}
