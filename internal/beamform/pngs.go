package beamform

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// sliceScale returns 1/max|v| over the theta slice, or 1 for an all-zero slice.
func sliceScale(img []Real, d Dims, theta int) float64 {
	sliceMax := 0.0
	start := d.FlatIndex(theta, 0, 0)
	for _, v := range img[start : start+d.SlsP*d.PtsR] {
		if a := math.Abs(float64(v)); a > sliceMax {
			sliceMax = a
		}
	}
	if sliceMax == 0 {
		return 1 // avoid div-by-zero; the slice will be black
	}
	return 1 / sliceMax
}

// brightness maps |v|*scale to [0,1] with gamma.
func brightness(v Real, scale, gamma float64) float64 {
	n := math.Abs(float64(v)) * scale
	if n > 1 {
		n = 1
	}
	if gamma > 0 && gamma != 1 {
		n = math.Pow(n, 1/gamma)
	}
	return n
}

// SavePNGSequence16 writes one 16-bit grayscale PNG per theta slice. Each
// frame is PtsR wide (range) and SlsP tall (phi) and shows |value|
// normalised to the slice peak.
func SavePNGSequence16(img []Real, d Dims, prefix string, gamma float64) error {
	if len(img) != d.Points() {
		return fmt.Errorf("%w: image has %d points, dims want %d", ErrSizeMismatch, len(img), d.Points())
	}
	if err := os.MkdirAll(filepath.Dir(prefix), 0o755); err != nil {
		return err
	}

	// Zero-padding width based on number of slices.
	width := 1
	if d.SlsT > 1 {
		width = int(math.Log10(float64(d.SlsT-1))) + 1
	}

	for theta := 0; theta < d.SlsT; theta++ {
		scale := sliceScale(img, d, theta)
		frame := image.NewGray16(image.Rect(0, 0, d.PtsR, d.SlsP))
		for phi := 0; phi < d.SlsP; phi++ {
			rowOff := phi * frame.Stride
			for r := 0; r < d.PtsR; r++ {
				x := uint16(math.Round(brightness(img[d.FlatIndex(theta, phi, r)], scale, gamma) * 65535))
				p := rowOff + r*2
				// Gray16 is big-endian.
				frame.Pix[p+0] = uint8(x >> 8)
				frame.Pix[p+1] = uint8(x)
			}
		}

		full := fmt.Sprintf("%s_%0*d.png", prefix, width, theta)
		f, err := os.Create(full)
		if err != nil {
			return err
		}
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		if err := enc.Encode(f, frame); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	DebugLog("Saved %d PNG slices with prefix %s", d.SlsT, prefix)
	return nil
}
