package beamform

import (
	"fmt"
	"math"
	"math/rand"
)

// Synthetic acquisition settings.
const (
	synthPitch     = 0.0003      // element pitch (m)
	synthMaxRange  = 0.05        // deepest scan point (m)
	synthSector    = math.Pi / 6 // half-angle of the theta and phi sectors
	synthNoise     = 0.01        // noise standard deviation
	synthPulseFreq = 0.2         // cycles per sample
	synthPulseLen  = 6.0         // Gaussian envelope width (samples)
)

// Synthesize builds a plausible dataset for dims: a planar receive array
// centred under the transmitter, a spherical sector scan grid in FlatIndex
// order, and channel data holding noise plus the echo of one point reflector
// at mid-range. The deepest range is chosen so every derived sample index
// stays inside the channel buffers.
func Synthesize(dims Dims, params Params, seed int64) (*Geometry, *Samples, error) {
	if err := dims.Validate(); err != nil {
		return nil, nil, err
	}
	nch, npt := dims.Channels(), dims.Points()

	rxX := make([]Real, nch)
	rxY := make([]Real, nch)
	for i := 0; i < dims.TransX; i++ {
		for j := 0; j < dims.TransY; j++ {
			ch := i*dims.TransY + j
			rxX[ch] = Real(params.Tx.X) + Real((float64(i)-float64(dims.TransX-1)/2)*synthPitch)
			rxY[ch] = Real(params.Tx.Y) + Real((float64(j)-float64(dims.TransY-1)/2)*synthPitch)
		}
	}

	// Longest round trip the buffers can hold, minus one sample of margin.
	budget := float64(dims.DataLen-params.FilterDelay-2) * float64(params.IdxConst)
	halfAperture := math.Hypot(float64(dims.TransX), float64(dims.TransY)) * synthPitch / 2
	txOffset := math.Abs(float64(params.Tx.Z - params.RxZ))
	rMax := math.Min(synthMaxRange, (budget-2*txOffset-halfAperture)/2)
	if rMax <= 0 {
		return nil, nil, fmt.Errorf("data length %d cannot hold any echo with filter delay %d", dims.DataLen, params.FilterDelay)
	}
	rMin := rMax / 10

	angle := func(i, n int) float64 {
		if n == 1 {
			return 0
		}
		return -synthSector + 2*synthSector*float64(i)/float64(n-1)
	}
	radius := func(i int) float64 {
		if dims.PtsR == 1 {
			return rMin
		}
		return rMin + (rMax-rMin)*float64(i)/float64(dims.PtsR-1)
	}

	ptX := make([]Real, npt)
	ptY := make([]Real, npt)
	ptZ := make([]Real, npt)
	for t := 0; t < dims.SlsT; t++ {
		theta := angle(t, dims.SlsT)
		for p := 0; p < dims.SlsP; p++ {
			phi := angle(p, dims.SlsP)
			for r := 0; r < dims.PtsR; r++ {
				rad := radius(r)
				k := dims.FlatIndex(t, p, r)
				ptX[k] = Real(params.Tx.X) + Real(rad*math.Cos(phi)*math.Sin(theta))
				ptY[k] = Real(params.Tx.Y) + Real(rad*math.Sin(phi))
				ptZ[k] = params.RxZ + Real(rad*math.Cos(phi)*math.Cos(theta))
			}
		}
	}

	geom, err := NewGeometry(dims, params, rxX, rxY, ptX, ptY, ptZ)
	if err != nil {
		return nil, nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	data := make([]Real, nch*dims.DataLen)
	for i := range data {
		data[i] = Real(rng.NormFloat64() * synthNoise)
	}

	// One reflector on the central scanline at mid-range.
	target := geom.ScanPoint(dims.FlatIndex(dims.SlsT/2, dims.SlsP/2, dims.PtsR/2))
	dtx := Dist(geom.TransmitPosition(), target)
	for ch := 0; ch < nch; ch++ {
		centre, ok := params.SampleIndex(dtx+Dist(geom.ReceivePosition(ch), target), dims.DataLen)
		if !ok {
			continue
		}
		row := data[ch*dims.DataLen : (ch+1)*dims.DataLen]
		span := int(3 * synthPulseLen)
		for k := max(0, centre-span); k <= min(dims.DataLen-1, centre+span); k++ {
			off := float64(k - centre)
			env := math.Exp(-(off * off) / (synthPulseLen * synthPulseLen))
			row[k] += Real(env * math.Cos(2*math.Pi*synthPulseFreq*off))
		}
	}

	samples, err := NewSamples(nch, dims.DataLen, data)
	if err != nil {
		return nil, nil, err
	}
	DebugLog("Synthesized dataset: rMin=%.4f rMax=%.4f seed=%d", rMin, rMax, seed)
	return geom, samples, nil
}
