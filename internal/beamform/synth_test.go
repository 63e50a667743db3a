package beamform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeFullApertureStaysInRange(t *testing.T) {
	d := Dims{TransX: TransX, TransY: TransY, PtsR: 12, SlsT: 3, SlsP: 3, DataLen: DataLen}
	ws := testWorkspace(t, d, 1)
	require.NoError(t, Beamform(ws, Plan{Phase1Workers: 4}))

	st := Stats(ws.Image)
	assert.Greater(t, st.MaxAbs, 0.0)
}

func TestSynthesizeGridOrder(t *testing.T) {
	geom, _, err := Synthesize(smallDims, DefaultParams(), 1)
	require.NoError(t, err)
	tx := geom.TransmitPosition()
	for theta := 0; theta < smallDims.SlsT; theta++ {
		for phi := 0; phi < smallDims.SlsP; phi++ {
			prev := Real(0)
			for r := 0; r < smallDims.PtsR; r++ {
				d := Dist(tx, geom.ScanPoint(smallDims.FlatIndex(theta, phi, r)))
				require.Greater(t, d, prev, "range must grow along a scanline")
				prev = d
			}
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	_, a, err := Synthesize(smallDims, DefaultParams(), 42)
	require.NoError(t, err)
	_, b, err := Synthesize(smallDims, DefaultParams(), 42)
	require.NoError(t, err)
	assert.Equal(t, a.data, b.data)
}

func TestSynthesizeRejectsTinyBuffers(t *testing.T) {
	d := smallDims
	d.DataLen = FilterDelay
	_, _, err := Synthesize(d, DefaultParams(), 1)
	assert.Error(t, err)
}

func TestReflectorIsBrightest(t *testing.T) {
	d := Dims{TransX: 8, TransY: 8, PtsR: 200, SlsT: 3, SlsP: 3, DataLen: DataLen}
	ws := testWorkspace(t, d, 3)
	require.NoError(t, Beamform(ws, Plan{Phase1Workers: 4}))

	target := d.FlatIndex(d.SlsT/2, d.SlsP/2, d.PtsR/2)
	peak, peakAt := Real(0), -1
	for p, v := range ws.Image {
		if v > peak {
			peak, peakAt = v, p
		}
	}
	assert.Equal(t, target, peakAt)
}
