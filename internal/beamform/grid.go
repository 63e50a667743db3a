package beamform

// FlatIndex maps (theta, phi, r) to the flat point index. The order is
// theta-major, then phi, with r varying fastest; every stage, the input codec
// and the image exports share it.
func (d Dims) FlatIndex(theta, phi, r int) int {
	return (theta*d.SlsP+phi)*d.PtsR + r
}

// GridCoords is the inverse of FlatIndex.
func (d Dims) GridCoords(flat int) (theta, phi, r int) {
	r = flat % d.PtsR
	line := flat / d.PtsR
	return line / d.SlsP, line % d.SlsP, r
}

// Scanline returns the flat range of the radial line at (theta, phi).
func (d Dims) Scanline(theta, phi int) Range {
	start := d.FlatIndex(theta, phi, 0)
	return Range{Start: start, End: start + d.PtsR}
}
