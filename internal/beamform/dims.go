package beamform

import "fmt"

// Dims holds the array and grid sizes of one dataset.
type Dims struct {
	TransX, TransY   int // receive elements per axis
	PtsR, SlsT, SlsP int // radial points, theta scanlines, phi scanlines
	DataLen          int // samples per channel
}

// DefaultDims returns the probe dimensions for a square grid of size x size scanlines.
func DefaultDims(size int) (Dims, error) {
	for _, s := range ValidSizes {
		if s == size {
			return Dims{
				TransX:  TransX,
				TransY:  TransY,
				PtsR:    PtsR,
				SlsT:    size,
				SlsP:    size,
				DataLen: DataLen,
			}, nil
		}
	}
	return Dims{}, fmt.Errorf("%w: %d (want one of %v)", ErrInvalidSize, size, ValidSizes)
}

// Channels is the number of receive channels.
func (d Dims) Channels() int { return d.TransX * d.TransY }

// Points is the number of scan-grid points.
func (d Dims) Points() int { return d.PtsR * d.SlsT * d.SlsP }

// Scanlines is the number of (theta, phi) pairs.
func (d Dims) Scanlines() int { return d.SlsT * d.SlsP }

// Validate checks every dimension is positive.
func (d Dims) Validate() error {
	if d.TransX <= 0 || d.TransY <= 0 || d.PtsR <= 0 || d.SlsT <= 0 || d.SlsP <= 0 || d.DataLen <= 0 {
		return fmt.Errorf("non-positive dimensions: %+v", d)
	}
	return nil
}

// Params are the acquisition constants used to turn distances into sample indices.
type Params struct {
	IdxConst    Real   // round-trip metres per sample
	FilterDelay int    // sample offset for the receive filter latency
	Tx          Point3 // transmit element position
	RxZ         Real   // z of the receive plane
}

// DefaultParams returns the acquisition constants of the probe dataset.
func DefaultParams() Params {
	return Params{
		IdxConst:    IdxConst,
		FilterDelay: FilterDelay,
		Tx:          Point3{TxX, TxY, TxZ},
		RxZ:         RxZ,
	}
}
