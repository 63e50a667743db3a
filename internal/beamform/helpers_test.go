package beamform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// smallDims keeps the real acquisition constants but shrinks the array and grid.
var smallDims = Dims{TransX: 3, TransY: 2, PtsR: 40, SlsT: 3, SlsP: 4, DataLen: DataLen}

func testWorkspace(t *testing.T, dims Dims, seed int64) *Workspace {
	t.Helper()
	params := DefaultParams()
	geom, samples, err := Synthesize(dims, params, seed)
	require.NoError(t, err)
	ws, err := NewWorkspace(geom, samples, params)
	require.NoError(t, err)
	return ws
}

func beamformImage(t *testing.T, ws *Workspace, plan Plan) []Real {
	t.Helper()
	require.NoError(t, Beamform(ws, plan))
	return append([]Real(nil), ws.Image...)
}
