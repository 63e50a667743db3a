package beamform

import "fmt"

// Workspace owns everything one beamforming run reads and writes. The
// coordinator passes it to every stage; there is no package-level state.
type Workspace struct {
	Params  Params
	Geom    *Geometry
	Samples *Samples
	DistTx  []Real // phase 1 output, read-only afterwards
	Image   []Real // phase 2 output
}

// NewWorkspace checks that geometry and samples describe the same probe and
// allocates the transmit-distance and image buffers.
func NewWorkspace(geom *Geometry, samples *Samples, params Params) (*Workspace, error) {
	if geom == nil || samples == nil {
		return nil, fmt.Errorf("workspace needs geometry and samples")
	}
	if geom.Channels() != samples.Channels() {
		return nil, fmt.Errorf("%w: geometry has %d channels, samples have %d", ErrSizeMismatch, geom.Channels(), samples.Channels())
	}
	if geom.Dims().DataLen != samples.DataLen() {
		return nil, fmt.Errorf("%w: dims say %d samples per channel, buffer has %d", ErrSizeMismatch, geom.Dims().DataLen, samples.DataLen())
	}
	if params.IdxConst <= 0 {
		return nil, fmt.Errorf("idx_const must be positive, got %g", params.IdxConst)
	}
	n := geom.Points()
	return &Workspace{
		Params:  params,
		Geom:    geom,
		Samples: samples,
		DistTx:  make([]Real, n),
		Image:   make([]Real, n),
	}, nil
}

// Dims returns the dataset dimensions.
func (ws *Workspace) Dims() Dims { return ws.Geom.Dims() }

func (ws *Workspace) resetImage() {
	clear(ws.Image)
}
