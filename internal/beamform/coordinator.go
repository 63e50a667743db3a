package beamform

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Beamform runs both phases on ws under plan and leaves the result in
// ws.Image. Phase 2 starts only after every transmit distance is written.
// Any IndexFault aborts the run; ws.Image is then unspecified.
func Beamform(ws *Workspace, plan Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	if ws.Geom.Points() == 0 || ws.Geom.Channels() == 0 {
		return fmt.Errorf("empty workspace: %d points, %d channels", ws.Geom.Points(), ws.Geom.Channels())
	}
	if plan.Strategy == PartitionByChannelLocked {
		logger().Warn("channel-locked strategy serialises every image write; use point or channel-reduce for real runs")
	}
	ws.resetImage()

	job := &reflectJob{ws: ws, strategy: plan.Strategy}
	if plan.Strategy == PartitionByChannelLocked {
		locks, err := newShardLocks(plan.lockShards())
		if err != nil {
			return err
		}
		job.locks = locks
		DebugLogOnce("Image guarded by %d shard locks", len(locks.mu))
	}
	if plan.Progress {
		job.prog = newProgress(int64(ws.Geom.Points()) * int64(ws.Geom.Channels()))
	}

	logger().Debug("beamform start",
		"strategy", plan.Strategy.String(),
		"topology", plan.Topology.String(),
		"phase1Workers", plan.Phase1Workers,
		"phase2Workers", plan.phase2Workers(),
		"points", ws.Geom.Points(),
		"channels", ws.Geom.Channels(),
	)
	if plan.Topology == TopologyForkJoin {
		return runForkJoin(job, plan)
	}
	return runBarrier(job, plan)
}

// phase2Ranges partitions the phase-2 index space of the strategy.
func phase2Ranges(ws *Workspace, s Strategy, workers int) ([]Range, error) {
	if s.byChannel() {
		return partitionUpTo(ws.Geom.Channels(), workers)
	}
	return partitionUpTo(ws.Geom.Points(), workers)
}

// runBarrier starts one pool for both phases. Each worker computes its
// transmit chunk, waits for the rest of the pool, then runs its phase-2 range.
// Workers beyond the number of ranges of a phase idle through it but still
// take part in the barrier.
func runBarrier(job *reflectJob, plan Plan) error {
	ws := job.ws
	workers := plan.Phase1Workers
	p1, err := partitionUpTo(ws.Geom.Points(), workers)
	if err != nil {
		return err
	}
	p2, err := phase2Ranges(ws, plan.Strategy, workers)
	if err != nil {
		return err
	}
	var partials [][]Real
	if plan.Strategy == PartitionByChannelReduce {
		partials = make([][]Real, len(p2))
	}

	bar := NewBarrier(workers)
	var g errgroup.Group
	for tid := 0; tid < workers; tid++ {
		g.Go(func() error {
			if tid < len(p1) {
				computeTransmit(ws, p1[tid])
			}
			bar.Wait()
			if tid >= len(p2) {
				return nil
			}
			var partial []Real
			if partials != nil {
				partial = make([]Real, ws.Geom.Points())
				partials[tid] = partial
			}
			if err := job.run(p2[tid], partial); err != nil {
				return fmt.Errorf("worker %d: %w", tid, err)
			}
			DebugLog("Worker %d done: phase 2 range [%d,%d)", tid, p2[tid].Start, p2[tid].End)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if partials != nil {
		return ReduceImages(ws.Image, partials, workers)
	}
	return nil
}

// runForkJoin runs phase 1 to completion on one pool, then phase 2 on a
// second pool sized by Phase2Workers.
func runForkJoin(job *reflectJob, plan Plan) error {
	ws := job.ws
	p1, err := partitionUpTo(ws.Geom.Points(), plan.Phase1Workers)
	if err != nil {
		return err
	}
	var g1 errgroup.Group
	for _, r := range p1 {
		g1.Go(func() error {
			computeTransmit(ws, r)
			return nil
		})
	}
	if err := g1.Wait(); err != nil {
		return err
	}
	DebugLog("Phase 1 joined: %d ranges", len(p1))

	w2 := plan.phase2Workers()
	p2, err := phase2Ranges(ws, plan.Strategy, w2)
	if err != nil {
		return err
	}
	var partials [][]Real
	if plan.Strategy == PartitionByChannelReduce {
		partials = make([][]Real, len(p2))
	}
	var g2 errgroup.Group
	for tid, r := range p2 {
		g2.Go(func() error {
			var partial []Real
			if partials != nil {
				partial = make([]Real, ws.Geom.Points())
				partials[tid] = partial
			}
			if err := job.run(r, partial); err != nil {
				return fmt.Errorf("worker %d: %w", tid, err)
			}
			return nil
		})
	}
	if err := g2.Wait(); err != nil {
		return err
	}
	DebugLog("Phase 2 joined: %d ranges", len(p2))
	if partials != nil {
		return ReduceImages(ws.Image, partials, w2)
	}
	return nil
}
