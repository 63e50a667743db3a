package beamform

import "fmt"

// EchoCategory classifies where a channel's echo lands in its sample buffer.
type EchoCategory uint8

const (
	EchoInRange EchoCategory = iota // index inside [0, DataLen)
	EchoEarly                       // index below zero (or NaN distance)
	EchoLate                        // index at or past DataLen
)

func (c EchoCategory) String() string {
	switch c {
	case EchoInRange:
		return "in-range"
	case EchoEarly:
		return "early"
	case EchoLate:
		return "late"
	}
	return fmt.Sprintf("EchoCategory(%d)", c)
}

// EchoLog is one channel's contribution to a scan point.
type EchoLog struct {
	Channel   int
	Category  EchoCategory
	Transmit  Real // transmitter to point
	Receive   Real // point to receiver
	Roundtrip Real
	Index     int
	Sample    Real // zero unless Category is EchoInRange
}

// TraceEcho walks every channel for scan point p the same way the beamformer
// does and reports each delay. It does not touch Image or DistTx.
func TraceEcho(ws *Workspace, p int) ([]EchoLog, error) {
	g, s, pr := ws.Geom, ws.Samples, ws.Params
	if p < 0 || p >= g.Points() {
		return nil, fmt.Errorf("trace point %d outside [0,%d)", p, g.Points())
	}
	pt := g.ScanPoint(p)
	dtx := Dist(g.TransmitPosition(), pt)
	out := make([]EchoLog, g.Channels())
	for ch := range out {
		drx := Dist(g.ReceivePosition(ch), pt)
		d := dtx + drx
		idx, ok := pr.SampleIndex(d, s.DataLen())
		l := EchoLog{Channel: ch, Transmit: dtx, Receive: drx, Roundtrip: d, Index: idx}
		switch {
		case ok:
			l.Category = EchoInRange
			l.Sample = s.Channel(ch)[idx]
		case idx < 0:
			l.Category = EchoEarly
		default:
			l.Category = EchoLate
		}
		out[ch] = l
	}
	return out, nil
}

// EchoStats counts logs per category and sums the in-range samples, which is
// the value the beamformer stores for the point.
func EchoStats(logs []EchoLog) (counts map[EchoCategory]int, sum Real) {
	counts = make(map[EchoCategory]int, 3)
	for _, l := range logs {
		counts[l.Category]++
		if l.Category == EchoInRange {
			sum += l.Sample
		}
	}
	return counts, sum
}

func logTrace(d Dims, p int, logs []EchoLog) {
	counts, sum := EchoStats(logs)
	theta, phi, r := d.GridCoords(p)
	DebugLog("Echo trace for point %d (theta=%d phi=%d r=%d):", p, theta, phi, r)
	for _, l := range logs {
		DebugLog("  ch %4d %-8s tx=%.6f rx=%.6f idx=%d sample=%g",
			l.Channel, l.Category, l.Transmit, l.Receive, l.Index, l.Sample)
	}
	logger().Info("echo trace",
		"point", p,
		"theta", theta,
		"phi", phi,
		"r", r,
		"in_range", counts[EchoInRange],
		"early", counts[EchoEarly],
		"late", counts[EchoLate],
		"sum", sum,
	)
}
