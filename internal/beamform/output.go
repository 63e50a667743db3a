package beamform

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
)

// SaveImage writes img as headerless little-endian float32 values in flat
// (theta, phi, r) order.
func SaveImage(path string, img []Real) error {
	// Make sure parent directory exists.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if len(img) > 0 {
		if err := binary.Write(w, binary.LittleEndian, img); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_ = f.Sync() // optional

	return f.Close()
}

// LoadImage reads an image written by SaveImage; it must hold exactly n values.
func LoadImage(path string, n int) ([]Real, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open image %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if want := int64(n) * 4; st.Size() != want {
		return nil, fmt.Errorf("%w: image %s has %d bytes, want %d", ErrSizeMismatch, path, st.Size(), want)
	}
	img := make([]Real, n)
	if err := binary.Read(bufio.NewReader(f), binary.LittleEndian, img); err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	return img, nil
}
