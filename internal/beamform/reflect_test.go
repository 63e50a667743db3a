package beamform

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleIndexRoundsHalfUp(t *testing.T) {
	pr := Params{IdxConst: 1, FilterDelay: 0}
	for _, tc := range []struct {
		d    Real
		want int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2.5, 3},
		{3.5, 4},
		{3.499, 3},
		{9.5, 10},
	} {
		got, ok := pr.SampleIndex(tc.d, 100)
		require.True(t, ok, "d=%v", tc.d)
		assert.Equal(t, tc.want, got, "d=%v", tc.d)
	}
}

func TestSampleIndexBounds(t *testing.T) {
	pr := Params{IdxConst: 1, FilterDelay: 0}
	_, ok := pr.SampleIndex(9.49, 10)
	assert.True(t, ok)
	idx, ok := pr.SampleIndex(9.5, 10)
	assert.False(t, ok)
	assert.Equal(t, 10, idx)
	idx, ok = pr.SampleIndex(-2, 10)
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
	_, ok = pr.SampleIndex(Real(math.NaN()), 10)
	assert.False(t, ok)
	idx, ok = pr.SampleIndex(Real(math.Inf(1)), 10)
	assert.False(t, ok)
	assert.Equal(t, math.MaxInt32, idx)
}

func TestSampleIndexProbeConstants(t *testing.T) {
	pr := DefaultParams()
	want := int(math.Floor(0.02/IdxConst + FilterDelay + 0.5))
	got, ok := pr.SampleIndex(0.02, DataLen)
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, 2218, got)
}

// singlePointWorkspace places one receiver on top of the transmitter and one
// scan point 1 cm in front of it. Sample i of the channel holds the value i.
func singlePointWorkspace(t *testing.T) *Workspace {
	t.Helper()
	params := DefaultParams()
	params.RxZ = params.Tx.Z
	dims := Dims{TransX: 1, TransY: 1, PtsR: 1, SlsT: 1, SlsP: 1, DataLen: DataLen}
	geom, err := NewGeometry(dims, params,
		[]Real{params.Tx.X}, []Real{params.Tx.Y},
		[]Real{params.Tx.X}, []Real{params.Tx.Y}, []Real{params.Tx.Z + 0.01})
	require.NoError(t, err)
	data := make([]Real, DataLen)
	for i := range data {
		data[i] = Real(i)
	}
	samples, err := NewSamples(1, DataLen, data)
	require.NoError(t, err)
	ws, err := NewWorkspace(geom, samples, params)
	require.NoError(t, err)
	return ws
}

func allPlans(workers ...int) []Plan {
	var plans []Plan
	for _, s := range []Strategy{PartitionByPoint, PartitionByChannelReduce, PartitionByChannelLocked} {
		for _, top := range []Topology{TopologyBarrier, TopologyForkJoin} {
			for _, w := range workers {
				plans = append(plans, Plan{Strategy: s, Topology: top, Phase1Workers: w, Phase2Workers: w})
			}
		}
	}
	return plans
}

func TestSinglePointScenario(t *testing.T) {
	for _, plan := range allPlans(1, 4) {
		ws := singlePointWorkspace(t)
		require.NoError(t, Beamform(ws, plan), "%+v", plan)
		assert.InDelta(t, 0.01, float64(ws.DistTx[0]), 1e-8)

		idx, ok := ws.Params.SampleIndex(ws.DistTx[0]+ws.DistTx[0], DataLen)
		require.True(t, ok)
		assert.Equal(t, 2218, idx)
		assert.Equal(t, Real(idx), ws.Image[0], "%+v", plan)
	}
}

func TestIndexFaultIsReported(t *testing.T) {
	for _, plan := range allPlans(1, 3) {
		ws := testWorkspace(t, smallDims, 1)
		// Push one scan point well past the deepest sample.
		far := ws.Dims().FlatIndex(1, 2, 5)
		ws.Geom.ptZ[far] = 1.0

		err := Beamform(ws, plan)
		require.Error(t, err, "%+v", plan)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var fault *IndexFault
		require.True(t, errors.As(err, &fault), "%+v: %v", plan, err)
		assert.Equal(t, far, fault.Point)
		assert.Equal(t, DataLen, fault.DataLen)
		assert.GreaterOrEqual(t, fault.Index, DataLen)
	}
}

func TestSamplesAccessor(t *testing.T) {
	s, err := NewSamples(2, 3, []Real{0, 1, 2, 10, 11, 12})
	require.NoError(t, err)
	v, err := s.Sample(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Real(12), v)
	assert.Equal(t, []Real{10, 11, 12}, s.Channel(1))

	_, err = s.Sample(0, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = s.Sample(2, 0)
	assert.Error(t, err)
	_, err = NewSamples(2, 3, make([]Real, 5))
	assert.ErrorIs(t, err, ErrSizeMismatch)
}
