package beamform

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"math"
	"os"
	"path/filepath"
)

var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		p[i] = color.Gray{Y: uint8(i)}
	}
	return p
}()

// SaveAnimatedGIF writes a GIF with one frame per theta slice, laid out like
// SavePNGSequence16. delay is in 100ths of a second.
func SaveAnimatedGIF(img []Real, d Dims, path string, delay int, gamma float64) error {
	if len(img) != d.Points() {
		return fmt.Errorf("%w: image has %d points, dims want %d", ErrSizeMismatch, len(img), d.Points())
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, d.SlsT),
		Delay:     make([]int, 0, d.SlsT),
		LoopCount: 0,
	}
	for theta := 0; theta < d.SlsT; theta++ {
		scale := sliceScale(img, d, theta)
		frame := image.NewPaletted(image.Rect(0, 0, d.PtsR, d.SlsP), grayPalette)
		for phi := 0; phi < d.SlsP; phi++ {
			rowOff := phi * frame.Stride
			for r := 0; r < d.PtsR; r++ {
				frame.Pix[rowOff+r] = uint8(math.Round(brightness(img[d.FlatIndex(theta, phi, r)], scale, gamma) * 255))
			}
		}
		out.Image = append(out.Image, frame)
		out.Delay = append(out.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, out); err != nil {
		return err
	}
	return f.Close()
}
