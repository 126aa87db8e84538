package iface

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAddr(cidr string) net.Addr {
	ip, ipNet, err := net.ParseCIDR(cidr)
	if err != nil {
		panic(err)
	}
	ipNet.IP = ip
	return ipNet
}

func TestSelectFrom_MatchesFragment(t *testing.T) {
	ifs := []rawInterface{
		{name: "lo0", up: true, running: true, loop: true},
		{name: "eth0", up: true, running: true, addrs: []net.Addr{fakeAddr("10.0.0.2/24")}},
		{name: "wlan0", up: true, running: true, addrs: []net.Addr{fakeAddr("192.168.1.5/24")}},
	}
	p := func() ([]rawInterface, error) { return ifs, nil }

	d, err := selectFrom(p, "wlan")
	require.NoError(t, err)
	assert.Equal(t, "wlan0", d.Name)
}

func TestSelectFrom_FallsBackWhenNoFragmentMatch(t *testing.T) {
	ifs := []rawInterface{
		{name: "lo0", up: true, running: true, loop: true},
		{name: "eth0", up: true, running: true, addrs: []net.Addr{fakeAddr("10.0.0.2/24")}},
	}
	p := func() ([]rawInterface, error) { return ifs, nil }

	d, err := selectFrom(p, "nomatch")
	require.NoError(t, err)
	assert.Equal(t, "eth0", d.Name)
}

func TestSelectFrom_ReverseOrderPrefersLast(t *testing.T) {
	ifs := []rawInterface{
		{name: "eth0", up: true, running: true, addrs: []net.Addr{fakeAddr("10.0.0.2/24")}},
		{name: "eth1", up: true, running: true, addrs: []net.Addr{fakeAddr("10.0.0.3/24")}},
	}
	p := func() ([]rawInterface, error) { return ifs, nil }

	d, err := selectFrom(p, "eth")
	require.NoError(t, err)
	assert.Equal(t, "eth1", d.Name)
}

func TestSelectFrom_NoneQualify(t *testing.T) {
	ifs := []rawInterface{
		{name: "lo0", up: true, running: true, loop: true},
		{name: "eth0", up: false, running: false},
	}
	p := func() ([]rawInterface, error) { return ifs, nil }

	_, err := selectFrom(p, "eth")
	assert.ErrorIs(t, err, ErrInterfaceUnavailable)
}

func TestDescriptor_FirstIPv4(t *testing.T) {
	ifs := []rawInterface{
		{name: "eth0", up: true, running: true, addrs: []net.Addr{fakeAddr("10.0.0.2/24")}},
	}
	p := func() ([]rawInterface, error) { return ifs, nil }

	d, err := selectFrom(p, "eth0")
	require.NoError(t, err)
	ip, ok := d.FirstIPv4()
	require.True(t, ok)
	assert.Equal(t, "10.0.0.2", ip.String())
}
