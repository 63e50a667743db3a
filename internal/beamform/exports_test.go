package beamform

import (
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(d Dims) []Real {
	img := make([]Real, d.Points())
	for i := range img {
		theta, phi, r := d.GridCoords(i)
		img[i] = Real((theta+1)*(phi+1)) * Real(r%7-3)
	}
	return img
}

func TestSavePNGSequence16(t *testing.T) {
	d := Dims{PtsR: 20, SlsT: 3, SlsP: 4}
	prefix := filepath.Join(t.TempDir(), "pngs", "slice")
	require.NoError(t, SavePNGSequence16(testImage(d), d, prefix, 1))

	for theta := 0; theta < d.SlsT; theta++ {
		f, err := os.Open(fmt.Sprintf("%s_%d.png", prefix, theta))
		require.NoError(t, err)
		im, err := png.Decode(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, d.PtsR, im.Bounds().Dx())
		assert.Equal(t, d.SlsP, im.Bounds().Dy())
	}

	err := SavePNGSequence16(make([]Real, 3), d, prefix, 1)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestSaveAnimatedGIF(t *testing.T) {
	d := Dims{PtsR: 16, SlsT: 5, SlsP: 2}
	path := filepath.Join(t.TempDir(), "gifs", "volume.gif")
	require.NoError(t, SaveAnimatedGIF(testImage(d), d, path, DefaultGIFDelay, DefaultGamma))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, g.Image, d.SlsT)
	assert.Equal(t, d.PtsR, g.Image[0].Bounds().Dx())
}

func TestSaveScanlinePlot(t *testing.T) {
	d := Dims{PtsR: 30, SlsT: 2, SlsP: 2}
	path := filepath.Join(t.TempDir(), "plot", "scanline.png")
	require.NoError(t, SaveScanlinePlot(testImage(d), d, 1, 0, path))
	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(0))

	assert.Error(t, SaveScanlinePlot(testImage(d), d, 2, 0, path))
}

func TestBrightness(t *testing.T) {
	assert.Equal(t, 0.0, brightness(0, 1, 0.5))
	assert.Equal(t, 1.0, brightness(-4, 1, 0.5))
	assert.InDelta(t, 0.25, brightness(0.5, 0.5, 1), 1e-12)
	assert.InDelta(t, 0.0625, brightness(0.25, 1, 0.5), 1e-12)
	assert.InDelta(t, 0.5, brightness(0.25, 1, 2), 1e-12)
}
