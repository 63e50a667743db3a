package beamform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RMS returns the root-mean-square pointwise difference of two images.
// No threshold is applied; callers decide what is close enough.
func RMS(test, ref []Real) (float64, error) {
	if len(test) != len(ref) {
		return 0, fmt.Errorf("%w: %d vs %d points", ErrSizeMismatch, len(test), len(ref))
	}
	if len(test) == 0 {
		return 0, nil
	}
	d := floats.Distance(widen(test), widen(ref), 2)
	return d / math.Sqrt(float64(len(test))), nil
}

// CompareFiles loads two images of n points and returns their RMS difference.
func CompareFiles(testPath, refPath string, n int) (float64, error) {
	test, err := LoadImage(testPath, n)
	if err != nil {
		return 0, err
	}
	ref, err := LoadImage(refPath, n)
	if err != nil {
		return 0, err
	}
	return RMS(test, ref)
}

// ImageStats summarises an image for run reports.
type ImageStats struct {
	Min, Max     float64
	Mean, StdDev float64
	MaxAbs       float64
}

// Stats computes ImageStats of img.
func Stats(img []Real) ImageStats {
	if len(img) == 0 {
		return ImageStats{}
	}
	x := widen(img)
	mean, std := stat.MeanStdDev(x, nil)
	lo, hi := floats.Min(x), floats.Max(x)
	return ImageStats{
		Min:    lo,
		Max:    hi,
		Mean:   mean,
		StdDev: std,
		MaxAbs: math.Max(math.Abs(lo), math.Abs(hi)),
	}
}

func widen(v []Real) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
