package beamform

import (
	"fmt"
	"sync"

	"gonum.org/v1/gonum/blas/blas32"
)

// ReduceImages adds every partial image into dst element-wise. Workers own
// disjoint point ranges and add the partials in slice order, so the result
// does not depend on the worker count. It must only be called after every
// producer of partials has finished.
func ReduceImages(dst []Real, partials [][]Real, workers int) error {
	n := len(dst)
	for k, part := range partials {
		if len(part) != n {
			return fmt.Errorf("%w: partial image %d has %d points, want %d", ErrSizeMismatch, k, len(part), n)
		}
	}
	if n == 0 || len(partials) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	ranges, err := partitionUpTo(n, workers)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		go func() {
			defer wg.Done()
			y := blas32.Vector{N: r.Len(), Data: dst[r.Start:r.End], Inc: 1}
			for _, part := range partials {
				x := blas32.Vector{N: r.Len(), Data: part[r.Start:r.End], Inc: 1}
				blas32.Axpy(1, x, y)
			}
		}()
	}
	wg.Wait()
	DebugLog("Reduced %d partial images over %d ranges", len(partials), len(ranges))
	return nil
}
