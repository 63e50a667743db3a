package beamform

import (
	"fmt"
	"sync"
)

// shardLocks guards image cells with a power-of-two array of mutexes; cell p
// maps to shard p&mask. One shard is a single global image lock.
type shardLocks struct {
	mu   []sync.Mutex
	mask int
}

func newShardLocks(n int) (*shardLocks, error) {
	if n < 1 || n > MaxLockShards || n&(n-1) != 0 {
		return nil, fmt.Errorf("lock shards must be a power of two in [1,%d], got %d", MaxLockShards, n)
	}
	return &shardLocks{mu: make([]sync.Mutex, n), mask: n - 1}, nil
}

func (sl *shardLocks) lock(idx int)   { sl.mu[idx&sl.mask].Lock() }
func (sl *shardLocks) unlock(idx int) { sl.mu[idx&sl.mask].Unlock() }
