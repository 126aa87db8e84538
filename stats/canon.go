package stats

// Canonicalize maps one (SampleKey, Bits) observation onto the pair it
// contributes to and the Speed bucket (input or output) it adds to.
//
// For Outgoing samples the local endpoint is the key's source, so the pair
// is flipped to put the remote endpoint first; the contribution lands in
// Output. For Incoming samples the source is already the remote endpoint,
// so no flip is needed and the contribution lands in Input. For Local
// samples the pair is ordered src<dst; flipping to achieve that ordering
// routes the contribution to Output, leaving it unflipped routes to Input.
// None samples are discarded (ok=false).
func Canonicalize(key SampleKey, bits Bits) (pair IPPair, speed Speed, ok bool) {
	b := bits.Float64()
	switch key.Direction {
	case DirectionOutgoing:
		return IPPair{Src: key.DstIP, Dst: key.SrcIP}, Speed{Output: b}, true
	case DirectionIncoming:
		return IPPair{Src: key.SrcIP, Dst: key.DstIP}, Speed{Input: b}, true
	case DirectionLocal:
		if key.SrcIP.Less(key.DstIP) {
			return IPPair{Src: key.SrcIP, Dst: key.DstIP, IsLocal: true}, Speed{Input: b}, true
		}
		return IPPair{Src: key.DstIP, Dst: key.SrcIP, IsLocal: true}, Speed{Output: b}, true
	default:
		return IPPair{}, Speed{}, false
	}
}
