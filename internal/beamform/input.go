package beamform

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// InputBytes is the exact size of an input file for dims.
func InputBytes(d Dims) int64 {
	nch, npt := int64(d.Channels()), int64(d.Points())
	return 4 * (2*nch + 3*npt + nch*int64(d.DataLen))
}

// LoadInput reads a headerless little-endian float32 input file laid out as
// rx_x, rx_y, point_x, point_y, point_z, rx_data. The file size must match
// dims exactly.
func LoadInput(path string, dims Dims, params Params) (*Geometry, *Samples, error) {
	if err := dims.Validate(); err != nil {
		return nil, nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open input file %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat input file %s: %w", path, err)
	}
	if want := InputBytes(dims); st.Size() != want {
		return nil, nil, fmt.Errorf("%w: input file %s has %d bytes, want %d", ErrSizeMismatch, path, st.Size(), want)
	}

	nch, npt := dims.Channels(), dims.Points()
	rxX := make([]Real, nch)
	rxY := make([]Real, nch)
	ptX := make([]Real, npt)
	ptY := make([]Real, npt)
	ptZ := make([]Real, npt)
	data := make([]Real, nch*dims.DataLen)

	r := bufio.NewReaderSize(f, 1<<20)
	for _, part := range []struct {
		name string
		dst  []Real
	}{
		{"rx_x", rxX},
		{"rx_y", rxY},
		{"point_x", ptX},
		{"point_y", ptY},
		{"point_z", ptZ},
		{"rx_data", data},
	} {
		if err := binary.Read(r, binary.LittleEndian, part.dst); err != nil {
			return nil, nil, fmt.Errorf("read %s from %s: %w", part.name, path, err)
		}
	}
	DebugLog("Loaded input %s: %d bytes", path, st.Size())

	geom, err := NewGeometry(dims, params, rxX, rxY, ptX, ptY, ptZ)
	if err != nil {
		return nil, nil, err
	}
	samples, err := NewSamples(nch, dims.DataLen, data)
	if err != nil {
		return nil, nil, err
	}
	return geom, samples, nil
}

// SaveInput writes geom and samples in the LoadInput layout.
func SaveInput(path string, geom *Geometry, samples *Samples) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<20)
	for _, part := range [][]Real{geom.rxX, geom.rxY, geom.ptX, geom.ptY, geom.ptZ, samples.data} {
		if err := binary.Write(w, binary.LittleEndian, part); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
