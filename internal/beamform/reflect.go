package beamform

import "math"

// SampleIndex converts a round-trip distance into a sample index:
// floor(roundtrip/IdxConst + FilterDelay + 0.5). The quotient and the delay
// are summed in float32 and the half is added before truncation, so ties
// round up. ok is false when the index falls outside [0, dataLen).
func (pr Params) SampleIndex(roundtrip Real, dataLen int) (idx int, ok bool) {
	q := Real(roundtrip/pr.IdxConst) + Real(pr.FilterDelay)
	x := float64(q) + 0.5
	switch {
	case math.IsNaN(x) || x < 0:
		return -1, false
	case x >= float64(dataLen):
		if x >= math.MaxInt32 {
			return math.MaxInt32, false
		}
		return int(x), false
	}
	return int(x), true
}

// reflectJob carries what every phase-2 worker shares.
type reflectJob struct {
	ws       *Workspace
	strategy Strategy
	locks    *shardLocks
	prog     *progress
}

// run executes the phase-2 kernel of the job's strategy on r. r indexes
// points for PartitionByPoint and channels otherwise; partial is the worker's
// private image for PartitionByChannelReduce.
func (j *reflectJob) run(r Range, partial []Real) error {
	switch j.strategy {
	case PartitionByChannelReduce:
		return j.accumulateChannels(r, partial)
	case PartitionByChannelLocked:
		return j.accumulateChannelsLocked(r)
	default:
		return j.accumulatePoints(r)
	}
}

// accumulatePoints sums all channels, in channel order, into each point of r.
// Each Image cell is written by exactly one worker.
func (j *reflectJob) accumulatePoints(r Range) error {
	ws := j.ws
	g, s, pr := ws.Geom, ws.Samples, ws.Params
	nch, dataLen := g.Channels(), s.DataLen()
	for p := r.Start; p < r.End; p++ {
		pt := g.ScanPoint(p)
		dtx := ws.DistTx[p]
		var sum Real
		for ch := 0; ch < nch; ch++ {
			d := dtx + Dist(g.ReceivePosition(ch), pt)
			idx, ok := pr.SampleIndex(d, dataLen)
			if !ok {
				return &IndexFault{Channel: ch, Point: p, Index: idx, DataLen: dataLen, Roundtrip: d}
			}
			sum += s.Channel(ch)[idx]
		}
		ws.Image[p] = sum
		j.prog.add(int64(nch))
	}
	return nil
}

// accumulateChannels scatters the channels of r over the whole grid into dst,
// a zero-initialised image private to the calling worker.
func (j *reflectJob) accumulateChannels(r Range, dst []Real) error {
	ws := j.ws
	g, s, pr := ws.Geom, ws.Samples, ws.Params
	npt, dataLen := g.Points(), s.DataLen()
	for ch := r.Start; ch < r.End; ch++ {
		rx := g.ReceivePosition(ch)
		row := s.Channel(ch)
		for p := 0; p < npt; p++ {
			d := ws.DistTx[p] + Dist(rx, g.ScanPoint(p))
			idx, ok := pr.SampleIndex(d, dataLen)
			if !ok {
				return &IndexFault{Channel: ch, Point: p, Index: idx, DataLen: dataLen, Roundtrip: d}
			}
			dst[p] += row[idx]
		}
		j.prog.add(int64(npt))
	}
	return nil
}

// accumulateChannelsLocked scatters the channels of r straight into the shared
// image, taking the cell's shard lock around every add. It serialises the
// scatter and is kept only for comparison runs.
func (j *reflectJob) accumulateChannelsLocked(r Range) error {
	ws := j.ws
	g, s, pr := ws.Geom, ws.Samples, ws.Params
	npt, dataLen := g.Points(), s.DataLen()
	for ch := r.Start; ch < r.End; ch++ {
		rx := g.ReceivePosition(ch)
		row := s.Channel(ch)
		for p := 0; p < npt; p++ {
			d := ws.DistTx[p] + Dist(rx, g.ScanPoint(p))
			idx, ok := pr.SampleIndex(d, dataLen)
			if !ok {
				return &IndexFault{Channel: ch, Point: p, Index: idx, DataLen: dataLen, Roundtrip: d}
			}
			j.locks.lock(p)
			ws.Image[p] += row[idx]
			j.locks.unlock(p)
		}
		j.prog.add(int64(npt))
	}
	return nil
}
