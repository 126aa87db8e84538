package stats

// DefaultWindowSize is the default sliding window length W, one entry per
// tick.
const DefaultWindowSize = 10

// Aggregator maintains fixed-size sliding windows over per-second traffic
// maps and derives per-connection and per-host speed estimates. It is
// single-writer: only the goroutine processing StatTick events may call
// Tick, so no internal locking is required.
type Aggregator struct {
	raw       *Window[PerSecondMap]
	direction *Window[DirectionTotals]

	// pair, host and total are recomputed end-to-end from raw on every
	// Tick, so they are always exactly as long as raw and can never drift
	// out of lockstep with it.
	pair  []PairSpeedMap
	host  []HostSpeedMap
	total []Speed
}

// NewAggregator builds an Aggregator with sliding windows of the given size.
func NewAggregator(windowSize int) *Aggregator {
	return &Aggregator{
		raw:       NewWindow[PerSecondMap](windowSize),
		direction: NewWindow[DirectionTotals](windowSize),
	}
}

// Tick folds one drained per-second map into every sliding window.
func (a *Aggregator) Tick(m PerSecondMap) {
	a.raw.Push(m)
	a.direction.Push(directionTotals(m))

	rawItems := a.raw.Items()
	pair := make([]PairSpeedMap, len(rawItems))
	for i, rm := range rawItems {
		pair[i] = toPairMap(rm)
	}
	a.pair = pair

	host := make([]HostSpeedMap, len(pair))
	for i, pm := range pair {
		host[i] = toHostMap(pm)
	}
	a.host = host

	total := make([]Speed, len(host))
	for i, hm := range host {
		total[i] = sumHostMap(hm)
	}
	a.total = total
}

func directionTotals(m PerSecondMap) DirectionTotals {
	var t DirectionTotals
	for k, v := range m {
		switch k.Direction {
		case DirectionOutgoing:
			t.Outgoing = t.Outgoing.Add(v)
		case DirectionIncoming:
			t.Incoming = t.Incoming.Add(v)
		case DirectionLocal:
			t.Local = t.Local.Add(v)
		default:
			t.None = t.None.Add(v)
		}
	}
	return t
}

func toPairMap(m PerSecondMap) PairSpeedMap {
	out := make(PairSpeedMap, len(m))
	for k, v := range m {
		pair, speed, ok := Canonicalize(k, v)
		if !ok {
			// Direction None carries no attributable endpoint; nothing to
			// do with it but drop it.
			continue
		}
		out[pair] = out[pair].Add(speed)
	}
	return out
}

func toHostMap(pm PairSpeedMap) HostSpeedMap {
	out := make(HostSpeedMap, len(pm))
	for pair, speed := range pm {
		if pair.IsLocal {
			continue
		}
		out[pair.Src] = out[pair.Src].Add(speed)
	}
	return out
}

func sumHostMap(hm HostSpeedMap) Speed {
	var total Speed
	for _, s := range hm {
		total = total.Add(s)
	}
	return total
}

// RawLen reports how many raw per-second maps are currently in the window.
func (a *Aggregator) RawLen() int {
	return a.raw.Len()
}

// SpeedPerHost averages each host's Speed across the windows it appears in
// (not by the window size W).
func (a *Aggregator) SpeedPerHost() map[IPv4]Speed {
	sums := make(map[IPv4]Speed)
	counts := make(map[IPv4]uint64)
	for _, hm := range a.host {
		for ip, s := range hm {
			sums[ip] = sums[ip].Add(s)
			counts[ip]++
		}
	}
	out := make(map[IPv4]Speed, len(sums))
	for ip, s := range sums {
		out[ip] = s.Div(counts[ip])
	}
	return out
}

// SpeedStr averages Speed across the total-speed window, divided by its
// occupied length, and formats it. An empty window yields the empty string.
func (a *Aggregator) SpeedStr() string {
	if len(a.total) == 0 {
		return ""
	}
	var sum Speed
	for _, s := range a.total {
		sum = sum.Add(s)
	}
	avg := sum.Div(uint64(len(a.total)))
	return formatSpeed(avg)
}

// ConnectionsStrs averages each pair's Speed by its occurrence count across
// the pair window, sorts pairs by (src, dst, is_local), and formats a line
// per connection.
func (a *Aggregator) ConnectionsStrs() []string {
	sums := make(map[IPPair]Speed)
	counts := make(map[IPPair]uint64)
	for _, pm := range a.pair {
		for p, s := range pm {
			sums[p] = sums[p].Add(s)
			counts[p]++
		}
	}

	pairs := make([]IPPair, 0, len(sums))
	for p := range sums {
		pairs = append(pairs, p)
	}
	sortPairs(pairs)

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		avg := sums[p].Div(counts[p])
		lines = append(lines, formatConnection(p, avg))
	}
	return lines
}

func sortPairs(pairs []IPPair) {
	// Simple insertion sort: the pair window is bounded by W*avg-connections,
	// small enough that O(n^2) never matters in practice.
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairLess(pairs[j], pairs[j-1]); j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
}

func pairLess(a, b IPPair) bool {
	if a.Src != b.Src {
		return a.Src.Less(b.Src)
	}
	if a.Dst != b.Dst {
		return a.Dst.Less(b.Dst)
	}
	return !a.IsLocal && b.IsLocal
}

func formatConnection(p IPPair, s Speed) string {
	sep := directionSep(s)
	return p.Src.String() + " " + sep + " " + p.Dst.String() + "\t(" + formatSpeed(s) + ")"
}

func directionSep(s Speed) string {
	hasIn, hasOut := s.Input > 0, s.Output > 0
	switch {
	case hasIn && hasOut:
		return "<->"
	case hasIn && !hasOut:
		return "<--"
	case !hasIn && hasOut:
		return "-->"
	default:
		return "---"
	}
}

func formatSpeed(s Speed) string {
	return "↓ " + FormatSize(s.Input) + " | ↑ " + FormatSize(s.Output)
}
