package beamform

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveScanlinePlot draws the image values along the radial line at
// (theta, phi) against the range index. The format follows the file
// extension (png, svg, pdf, ...).
func SaveScanlinePlot(img []Real, d Dims, theta, phi int, path string) error {
	if len(img) != d.Points() {
		return fmt.Errorf("%w: image has %d points, dims want %d", ErrSizeMismatch, len(img), d.Points())
	}
	if theta < 0 || theta >= d.SlsT || phi < 0 || phi >= d.SlsP {
		return fmt.Errorf("scanline (%d,%d) outside %dx%d grid", theta, phi, d.SlsT, d.SlsP)
	}

	line := d.Scanline(theta, phi)
	pts := make(plotter.XYs, 0, line.Len())
	for i, v := range img[line.Start:line.End] {
		pts = append(pts, plotter.XY{X: float64(i), Y: float64(v)})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Scanline theta=%d phi=%d", theta, phi)
	p.X.Label.Text = "range sample"
	p.Y.Label.Text = "amplitude"
	l, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("scanline line: %w", err)
	}
	l.Width = vg.Points(1)
	p.Add(l, plotter.NewGrid())

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save scanline plot %s: %w", path, err)
	}
	return nil
}
