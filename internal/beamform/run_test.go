package beamform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	params := DefaultParams()
	geom, samples, err := Synthesize(smallDims, params, 7)
	require.NoError(t, err)

	input := filepath.Join(dir, "in", "beamforming_input_small.bin")
	require.NoError(t, SaveInput(input, geom, samples))

	// Reference from an in-memory sequential run.
	ws, err := NewWorkspace(geom, samples, params)
	require.NoError(t, err)
	want := beamformImage(t, ws, Plan{Phase1Workers: 1})
	reference := filepath.Join(dir, "ref.bin")
	require.NoError(t, SaveImage(reference, want))

	cfg := &Config{
		Size:       16,
		Input:      input,
		Output:     filepath.Join(dir, "out", "beamforming_output.bin"),
		Reference:  reference,
		Strategy:   "channel-reduce",
		Topology:   "forkjoin",
		Threads:    3,
		PNGOut:     filepath.Join(dir, "png", "slice.png"),
		GIFOut:     filepath.Join(dir, "anim.gif"),
		PlotOut:    filepath.Join(dir, "scanline.png"),
		Ledger:     filepath.Join(dir, "runs.db"),
		TracePoint: new(int),
	}
	require.NoError(t, cfg.Finalize())
	require.NoError(t, run(cfg, smallDims))

	got, err := LoadImage(cfg.Output, smallDims.Points())
	require.NoError(t, err)
	rms, err := RMS(got, want)
	require.NoError(t, err)
	assert.Less(t, rms, 1e-5)

	for theta := 0; theta < smallDims.SlsT; theta++ {
		assert.FileExists(t, filepath.Join(dir, "png", "slice_"+string(rune('0'+theta))+".png"))
	}
	for _, p := range []string{cfg.GIFOut, cfg.PlotOut} {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}

	l, err := OpenLedger(cfg.Ledger)
	require.NoError(t, err)
	defer l.Close()
	runs, err := l.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	rec := runs[0]
	require.NotNil(t, rec.RMS)
	assert.InDelta(t, rms, *rec.RMS, 1e-12)
	if diff := cmp.Diff(
		[]any{16, "channel-reduce", "forkjoin", 3, 3},
		[]any{rec.Size, rec.Strategy, rec.Topology, rec.Phase1Workers, rec.Phase2Workers},
	); diff != "" {
		t.Errorf("ledger row mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPointStrategyMatchesReferenceExactly(t *testing.T) {
	dir := t.TempDir()
	params := DefaultParams()
	geom, samples, err := Synthesize(smallDims, params, 11)
	require.NoError(t, err)
	input := filepath.Join(dir, "in.bin")
	require.NoError(t, SaveInput(input, geom, samples))

	ws, err := NewWorkspace(geom, samples, params)
	require.NoError(t, err)
	want := beamformImage(t, ws, Plan{Phase1Workers: 1})

	cfg := &Config{Size: 16, Input: input, Output: filepath.Join(dir, "out.bin"), Threads: 5}
	require.NoError(t, cfg.Finalize())
	require.NoError(t, run(cfg, smallDims))

	got, err := LoadImage(cfg.Output, smallDims.Points())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRunRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "short.bin")
	require.NoError(t, os.WriteFile(bad, make([]byte, 16), 0o644))

	cfg := &Config{Size: 16, Input: bad, Output: filepath.Join(dir, "out.bin"), Threads: 2}
	require.NoError(t, cfg.Finalize())
	err := run(cfg, smallDims)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)
	assert.NoFileExists(t, cfg.Output)

	cfg = &Config{Size: 64}
	require.NoError(t, cfg.Finalize())
	cfg.Input = filepath.Join(dir, "missing.bin")
	assert.Error(t, Run(cfg))
}
