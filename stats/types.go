// Package stats maintains sliding-window traffic statistics derived from
// the per-second samples folded by the capture worker.
package stats

import (
	"bytes"
	"math/big"
	"net"
)

// Direction classifies a sample relative to the set of IPv4 addresses bound
// to the observing interface.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionOutgoing
	DirectionIncoming
	DirectionLocal
)

func (d Direction) String() string {
	switch d {
	case DirectionOutgoing:
		return "outgoing"
	case DirectionIncoming:
		return "incoming"
	case DirectionLocal:
		return "local"
	default:
		return "none"
	}
}

// IPv4 is a hashable, comparable stand-in for net.IP.
type IPv4 [4]byte

func (a IPv4) String() string {
	return net.IP(a[:]).String()
}

// Less orders two IPv4 addresses lexicographically by octet.
func (a IPv4) Less(b IPv4) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

// IPv4FromNetIP converts a net.IP (v4 or v4-in-v6) to an IPv4. ok is false
// if ip does not carry an IPv4 address.
func IPv4FromNetIP(ip net.IP) (IPv4, bool) {
	v4 := ip.To4()
	if v4 == nil {
		return IPv4{}, false
	}
	var out IPv4
	copy(out[:], v4)
	return out, true
}

// SampleKey identifies one traffic flow observed within a single second.
type SampleKey struct {
	SrcIP     IPv4
	DstIP     IPv4
	SrcPort   uint16
	DstPort   uint16
	Direction Direction
}

// Bits is an unsigned accumulator of bits observed for a SampleKey within
// one second. It is backed by math/big so that concurrent folding across a
// busy second never overflows a fixed-width integer.
type Bits struct {
	v big.Int
}

// NewBits builds a Bits accumulator from a plain count.
func NewBits(n uint64) Bits {
	var b Bits
	b.v.SetUint64(n)
	return b
}

// Add returns the sum of b and o without mutating either operand.
func (b Bits) Add(o Bits) Bits {
	var r Bits
	r.v.Add(&b.v, &o.v)
	return r
}

// Float64 returns a best-effort floating point view of the accumulator, used
// for throughput formatting.
func (b Bits) Float64() float64 {
	f := new(big.Float).SetInt(&b.v)
	v, _ := f.Float64()
	return v
}

// PerSecondMap accumulates bits observed per SampleKey within one second.
// It is cleared every tick.
type PerSecondMap map[SampleKey]Bits

// Add folds n bits into m's entry for key, creating it if absent.
func (m PerSecondMap) Add(key SampleKey, n Bits) {
	m[key] = m[key].Add(n)
}

// IPPair is a canonicalized, unordered endpoint pair.
type IPPair struct {
	Src     IPv4
	Dst     IPv4
	IsLocal bool
}

// Speed is a pair of bit rates, additive and divisible by a scalar count of
// windows.
type Speed struct {
	Input  float64
	Output float64
}

func (s Speed) Add(o Speed) Speed {
	return Speed{Input: s.Input + o.Input, Output: s.Output + o.Output}
}

func (s Speed) Div(n uint64) Speed {
	if n == 0 {
		return Speed{}
	}
	d := float64(n)
	return Speed{Input: s.Input / d, Output: s.Output / d}
}

// PairSpeedMap is the canonicalized, per-second view of a PerSecondMap.
type PairSpeedMap map[IPPair]Speed

// HostSpeedMap sums non-local pair speeds by the pair's canonical source
// (the remote) IPv4 address.
type HostSpeedMap map[IPv4]Speed

// DirectionTotals sums raw bits observed per direction within one tick.
type DirectionTotals struct {
	Outgoing Bits
	Incoming Bits
	Local    Bits
	None     Bits
}
