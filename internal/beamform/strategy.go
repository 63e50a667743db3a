package beamform

import (
	"fmt"
	"strings"
)

// Strategy selects how phase 2 is partitioned and how Image is protected.
// Sharing one image between channel workers without a lock is a data race
// and deliberately has no Strategy value.
type Strategy uint8

const (
	// PartitionByPoint gives each worker a disjoint point range; each point
	// sums its channels in order. Lock-free and bit-reproducible for any
	// worker count.
	PartitionByPoint Strategy = iota
	// PartitionByChannelReduce gives each worker a channel range and a
	// private partial image; the partials are summed after the join.
	PartitionByChannelReduce
	// PartitionByChannelLocked gives each worker a channel range writing into
	// the shared image under a lock per add. Slow; comparison runs only.
	PartitionByChannelLocked
)

var strategyNames = map[Strategy]string{
	PartitionByPoint:         "point",
	PartitionByChannelReduce: "channel-reduce",
	PartitionByChannelLocked: "channel-locked",
}

func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// ParseStrategy accepts the names printed by String. Empty means PartitionByPoint.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PartitionByPoint, nil
	}
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q (want point, channel-reduce or channel-locked)", name)
}

// byChannel reports whether phase 2 partitions channels rather than points.
func (s Strategy) byChannel() bool { return s != PartitionByPoint }

// Topology selects how workers are scheduled across the two phases.
type Topology uint8

const (
	// TopologyBarrier runs both phases on one fixed pool separated by a barrier.
	TopologyBarrier Topology = iota
	// TopologyForkJoin runs each phase on its own pool, so phase 2 can use a
	// different worker count.
	TopologyForkJoin
)

func (t Topology) String() string {
	switch t {
	case TopologyBarrier:
		return "barrier"
	case TopologyForkJoin:
		return "forkjoin"
	}
	return fmt.Sprintf("Topology(%d)", t)
}

// ParseTopology accepts "barrier" or "forkjoin" (also "fork-join"). Empty means TopologyBarrier.
func ParseTopology(name string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "barrier":
		return TopologyBarrier, nil
	case "forkjoin", "fork-join":
		return TopologyForkJoin, nil
	}
	return 0, fmt.Errorf("unknown topology %q (want barrier or forkjoin)", name)
}

// Plan is a complete execution configuration for Beamform.
type Plan struct {
	Strategy Strategy
	Topology Topology
	// Phase1Workers sizes the barrier pool, or the phase-1 pool for fork-join.
	Phase1Workers int
	// Phase2Workers sizes the phase-2 pool for fork-join; 0 reuses Phase1Workers.
	// Ignored by the barrier topology.
	Phase2Workers int
	// LockShards is the number of image locks for PartitionByChannelLocked.
	LockShards int
	// Progress enables "[PROGRESS]" lines during phase 2.
	Progress bool
}

// Validate checks worker counts and lock shards.
func (p Plan) Validate() error {
	if _, ok := strategyNames[p.Strategy]; !ok {
		return fmt.Errorf("unknown strategy %v", p.Strategy)
	}
	if p.Topology != TopologyBarrier && p.Topology != TopologyForkJoin {
		return fmt.Errorf("unknown topology %v", p.Topology)
	}
	if p.Phase1Workers < 1 {
		return fmt.Errorf("phase 1 needs at least one worker, got %d", p.Phase1Workers)
	}
	if p.Phase2Workers < 0 {
		return fmt.Errorf("phase 2 worker count must not be negative, got %d", p.Phase2Workers)
	}
	if p.Strategy == PartitionByChannelLocked {
		if _, err := newShardLocks(p.lockShards()); err != nil {
			return err
		}
	}
	return nil
}

func (p Plan) phase2Workers() int {
	if p.Topology == TopologyBarrier || p.Phase2Workers == 0 {
		return p.Phase1Workers
	}
	return p.Phase2Workers
}

func (p Plan) lockShards() int {
	if p.LockShards == 0 {
		return DefaultLockShards
	}
	return p.LockShards
}
