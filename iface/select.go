// Package iface resolves a user-supplied interface name fragment to a
// concrete, usable network interface descriptor.
package iface

import (
	"net"
	"strings"

	"github.com/pkg/errors"
)

// ErrInterfaceUnavailable is returned when no interface qualifies, even on
// the unconstrained fallback pass.
var ErrInterfaceUnavailable = errors.New("no usable network interface found")

// Descriptor describes the interface the engine will operate on.
type Descriptor struct {
	Name     string
	MAC      net.HardwareAddr
	Prefixes []net.IPNet
}

// FirstIPv4 returns the first IPv4 address bound to the interface, used as
// the sender protocol address in outbound probes.
func (d Descriptor) FirstIPv4() (net.IP, bool) {
	for _, p := range d.Prefixes {
		if ip4 := p.IP.To4(); ip4 != nil {
			return ip4, true
		}
	}
	return nil, false
}

// rawInterface mirrors the subset of net.Interface this package needs, so
// tests can substitute a fake provider without touching the host's real
// interfaces.
type rawInterface struct {
	name    string
	mac     net.HardwareAddr
	up      bool
	running bool
	loop    bool
	addrs   []net.Addr
}

type provider func() ([]rawInterface, error)

func systemInterfaces() ([]rawInterface, error) {
	ifs, err := net.Interfaces()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate network interfaces")
	}
	out := make([]rawInterface, 0, len(ifs))
	for _, i := range ifs {
		addrs, err := i.Addrs()
		if err != nil {
			// An interface we can't read addresses for is not a candidate;
			// skip it rather than failing the whole enumeration.
			continue
		}
		out = append(out, rawInterface{
			name:    i.Name,
			mac:     i.HardwareAddr,
			up:      i.Flags&net.FlagUp != 0,
			running: i.Flags&net.FlagRunning != 0,
			loop:    i.Flags&net.FlagLoopback != 0,
			addrs:   addrs,
		})
	}
	return out, nil
}

// Select resolves fragment (case-insensitive substring) to one active,
// non-loopback interface. Interfaces are considered in reverse enumeration
// order. If no interface matches the fragment, the search is repeated
// without the fragment constraint.
func Select(fragment string) (Descriptor, error) {
	return selectFrom(systemInterfaces, fragment)
}

func selectFrom(p provider, fragment string) (Descriptor, error) {
	ifs, err := p()
	if err != nil {
		return Descriptor{}, err
	}

	frag := strings.ToLower(fragment)
	if d, ok := findReverse(ifs, func(r rawInterface) bool {
		return qualifies(r) && strings.Contains(strings.ToLower(r.name), frag)
	}); ok {
		return toDescriptor(d), nil
	}

	if d, ok := findReverse(ifs, qualifies); ok {
		return toDescriptor(d), nil
	}

	return Descriptor{}, ErrInterfaceUnavailable
}

func qualifies(r rawInterface) bool {
	return r.up && r.running && !r.loop
}

func findReverse(ifs []rawInterface, pred func(rawInterface) bool) (rawInterface, bool) {
	for i := len(ifs) - 1; i >= 0; i-- {
		if pred(ifs[i]) {
			return ifs[i], true
		}
	}
	return rawInterface{}, false
}

func toDescriptor(r rawInterface) Descriptor {
	d := Descriptor{Name: r.name, MAC: r.mac}
	for _, a := range r.addrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		if ipNet.IP.To4() == nil {
			continue
		}
		d.Prefixes = append(d.Prefixes, *ipNet)
	}
	return d
}
