package scanner

import (
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yousfiSaad/netui/frame"
	"github.com/yousfiSaad/netui/iface"
	"github.com/yousfiSaad/netui/linklayer"
)

// fakeChannel is an in-memory stand-in for a link-layer channel: reads are
// served from a buffered queue (defaulting to a timeout), writes are
// recorded for inspection.
type fakeChannel struct {
	mu      sync.Mutex
	toRead  chan []byte
	written [][]byte
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{toRead: make(chan []byte, 16)}
}

func (f *fakeChannel) ReadFrame() ([]byte, error) {
	select {
	case data := <-f.toRead:
		return data, nil
	case <-time.After(10 * time.Millisecond):
		return nil, linklayer.ErrTimeout
	}
}

func (f *fakeChannel) WriteFrame(b []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, append([]byte(nil), b...))
	return nil
}

func (f *fakeChannel) Close() {}

func (f *fakeChannel) writtenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.written)
}

func testDescriptor(prefix string) iface.Descriptor {
	_, ipNet, err := net.ParseCIDR(prefix)
	if err != nil {
		panic(err)
	}
	return iface.Descriptor{
		Name:     "eth-test",
		MAC:      net.HardwareAddr{0x02, 0x42, 0xac, 0x11, 0x00, 0x02},
		Prefixes: []net.IPNet{*ipNet},
	}
}

func TestNew_RejectsInterfaceWithoutMAC(t *testing.T) {
	desc := iface.Descriptor{Name: "eth-test"}
	_, err := New(desc, newFakeChannel())
	assert.ErrorIs(t, err, ErrInterfaceMissingMac)
}

func TestNew_EmitsInterfaceNameFirst(t *testing.T) {
	desc := testDescriptor("10.0.0.2/24")
	s, err := New(desc, newFakeChannel())
	require.NoError(t, err)

	ev := <-s.Events()
	assert.Equal(t, EventInterfaceName, ev.Kind)
	assert.Equal(t, "eth-test", ev.InterfaceName)
}

// Scan lifecycle: a /30 prefix iterates all 4 addresses (network and
// broadcast included), bracketed by BeginScan and Complete.
func TestScanLifecycle_EmitsBeginCompleteAndFourProbes(t *testing.T) {
	// /30 on a distinct base than the interface's own /24 keeps addrspace
	// iteration independent of the interface's own address.
	desc := testDescriptor("10.0.0.2/24")
	desc.Prefixes = []net.IPNet{{IP: net.IPv4(192, 168, 1, 0).To4(), Mask: net.CIDRMask(30, 32)}}
	ch := newFakeChannel()
	s, err := New(desc, ch)
	require.NoError(t, err)

	<-s.Events() // InterfaceName

	s.StartScanning()

	ev := <-s.Events()
	require.Equal(t, EventBeginScan, ev.Kind)
	begin := ev.ScanID

	ev = <-s.Events()
	require.Equal(t, EventComplete, ev.Kind)

	assert.Equal(t, begin, ev.ScanID)
	assert.NotEqual(t, begin.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, 4, ch.writtenCount())
}

func TestScanLifecycle_OverlappingCommandsSerialize(t *testing.T) {
	desc := testDescriptor("10.0.0.2/24")
	desc.Prefixes = []net.IPNet{{IP: net.IPv4(192, 168, 1, 0).To4(), Mask: net.CIDRMask(31, 32)}}
	ch := newFakeChannel()
	s, err := New(desc, ch)
	require.NoError(t, err)
	<-s.Events() // InterfaceName

	s.StartScanning()
	s.StartScanning()

	for i := 0; i < 2; i++ {
		ev := <-s.Events()
		require.Equal(t, EventBeginScan, ev.Kind)
		ev = <-s.Events()
		require.Equal(t, EventComplete, ev.Kind)
	}
	assert.Equal(t, 4, ch.writtenCount())
}

func TestCapture_ARPReplyProducesHostFoundEvent(t *testing.T) {
	desc := testDescriptor("10.0.0.2/24")
	ch := newFakeChannel()
	s, err := New(desc, ch)
	require.NoError(t, err)
	<-s.Events() // InterfaceName

	remoteMAC := net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	remoteCodec := frame.NewCodec(remoteMAC, nil)
	probe, err := remoteCodec.EncodeProbe(net.ParseIP("10.0.0.9"), net.ParseIP("10.0.0.2"))
	require.NoError(t, err)
	ch.toRead <- probe

	ev := waitForKind(t, s, EventHostFound)
	assert.Equal(t, "10.0.0.9", ev.Host.IPv4.String())
	assert.Equal(t, remoteMAC.String(), ev.Host.MAC.String())
}

func waitForKind(t *testing.T, s *Scanner, kind EventKind) Event {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev := <-s.Events():
			if ev.Kind == kind {
				return ev
			}
		case <-deadline:
			t.Fatalf("timed out waiting for event kind %v", kind)
		}
	}
}
