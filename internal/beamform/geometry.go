package beamform

import "fmt"

// Geometry holds the transducer positions and the scan grid. It is read-only
// once built; stages only call its accessors.
type Geometry struct {
	dims Dims
	tx   Point3
	rxZ  Real
	rxX  []Real
	rxY  []Real
	ptX  []Real
	ptY  []Real
	ptZ  []Real
}

// NewGeometry wraps the coordinate arrays without copying them.
// rxX/rxY need Channels() entries, ptX/ptY/ptZ need Points() entries.
func NewGeometry(dims Dims, params Params, rxX, rxY, ptX, ptY, ptZ []Real) (*Geometry, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	nch, npt := dims.Channels(), dims.Points()
	if len(rxX) != nch || len(rxY) != nch {
		return nil, fmt.Errorf("%w: receive arrays have %d/%d entries, want %d", ErrSizeMismatch, len(rxX), len(rxY), nch)
	}
	if len(ptX) != npt || len(ptY) != npt || len(ptZ) != npt {
		return nil, fmt.Errorf("%w: point arrays have %d/%d/%d entries, want %d", ErrSizeMismatch, len(ptX), len(ptY), len(ptZ), npt)
	}
	g := &Geometry{
		dims: dims,
		tx:   params.Tx,
		rxZ:  params.RxZ,
		rxX:  rxX,
		rxY:  rxY,
		ptX:  ptX,
		ptY:  ptY,
		ptZ:  ptZ,
	}
	DebugLog("Created geometry: %d channels, %d points, tx=%+v, rxZ=%g", nch, npt, g.tx, g.rxZ)
	return g, nil
}

// Dims returns the dataset dimensions.
func (g *Geometry) Dims() Dims { return g.dims }

// Channels returns the number of receive channels.
func (g *Geometry) Channels() int { return len(g.rxX) }

// Points returns the number of scan-grid points.
func (g *Geometry) Points() int { return len(g.ptX) }

// TransmitPosition returns the single transmit element.
func (g *Geometry) TransmitPosition() Point3 { return g.tx }

// ReceivePosition returns receive element ch on the receive plane.
func (g *Geometry) ReceivePosition(ch int) Point3 {
	return Point3{g.rxX[ch], g.rxY[ch], g.rxZ}
}

// ScanPoint returns the grid point at flat index p.
func (g *Geometry) ScanPoint(p int) Point3 {
	return Point3{g.ptX[p], g.ptY[p], g.ptZ[p]}
}
