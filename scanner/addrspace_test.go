package scanner

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllAddresses_IncludesNetworkAndBroadcast(t *testing.T) {
	prefix := net.IPNet{IP: net.IPv4(192, 168, 1, 0).To4(), Mask: net.CIDRMask(30, 32)}
	addrs := allAddresses(prefix)
	want := []string{"192.168.1.0", "192.168.1.1", "192.168.1.2", "192.168.1.3"}
	got := make([]string, len(addrs))
	for i, a := range addrs {
		got[i] = a.String()
	}
	assert.Equal(t, want, got)
}

func TestAllAddresses_SlashThirtyTwoIsSingleAddress(t *testing.T) {
	prefix := net.IPNet{IP: net.IPv4(10, 0, 0, 5).To4(), Mask: net.CIDRMask(32, 32)}
	addrs := allAddresses(prefix)
	assert.Len(t, addrs, 1)
	assert.Equal(t, "10.0.0.5", addrs[0].String())
}
