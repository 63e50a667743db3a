package beamform

import "fmt"

// Range is a half-open index interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, n) into k contiguous ranges of n/k indices each, in
// increasing order. The last range absorbs the remainder and ends at n.
func Partition(n, k int) ([]Range, error) {
	if k < 1 || k > n {
		return nil, fmt.Errorf("cannot split %d indices into %d ranges", n, k)
	}
	chunk := n / k
	out := make([]Range, k)
	for i := range out {
		start := i * chunk
		end := start + chunk
		if i == k-1 {
			end = n
		}
		out[i] = Range{Start: start, End: end}
	}
	return out, nil
}

// partitionUpTo splits [0, n) into at most k ranges, one per worker that has
// work; with more workers than indices each range holds one index.
func partitionUpTo(n, k int) ([]Range, error) {
	if k > n {
		k = n
	}
	return Partition(n, k)
}
