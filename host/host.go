// Package host defines the discovered-host record shared between the
// capture worker and its consumers.
package host

import (
	"net"
	"time"

	"github.com/yousfiSaad/netui/stats"
)

// Host is one discovered device on the LAN. Identity for deduplication is
// the (IPv4, MAC) pair; all other fields are mutable on re-observation.
type Host struct {
	Time          time.Time
	IPv4          net.IP
	MAC           net.HardwareAddr
	Hostname      *string // always nil in this engine; no resolver is wired
	IsMyDeviceMAC bool
	Speed         *stats.Speed
}

// Key identifies a Host for deduplication purposes.
type Key struct {
	IPv4 [4]byte
	MAC  [6]byte
}

// KeyOf builds the dedup key for h. ok is false if h does not carry a full
// IPv4 address and hardware address.
func KeyOf(h Host) (Key, bool) {
	ip4 := h.IPv4.To4()
	if ip4 == nil || len(h.MAC) != 6 {
		return Key{}, false
	}
	var k Key
	copy(k.IPv4[:], ip4)
	copy(k.MAC[:], h.MAC)
	return k, true
}
