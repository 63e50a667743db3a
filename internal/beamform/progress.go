package beamform

import (
	"fmt"
	"sync/atomic"
)

// progress prints "[PROGRESS] x%" roughly every 1% of phase-2 work.
// A nil *progress is valid and silent.
type progress struct {
	total int64
	step  int64
	done  atomic.Int64
}

func newProgress(total int64) *progress {
	step := int64(1)
	if total >= 100 {
		step = total / 100
	}
	return &progress{total: total, step: step}
}

func (p *progress) add(n int64) {
	if p == nil {
		return
	}
	done := p.done.Add(n)
	if (done-n)/p.step != done/p.step {
		fmt.Printf("[PROGRESS] %.2f%%\n", float64(done)*100/float64(p.total))
	}
}
