package beamform

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize     = errors.New("invalid scan-grid size")
	ErrIndexOutOfRange = errors.New("sample index out of range")
	ErrSizeMismatch    = errors.New("buffer size mismatch")
)

// IndexFault reports a round-trip distance that maps outside a channel's
// sample buffer. It always means the geometry and the acquisition constants
// disagree.
type IndexFault struct {
	Channel   int
	Point     int
	Index     int
	DataLen   int
	Roundtrip Real
}

func (e *IndexFault) Error() string {
	return fmt.Sprintf("channel %d point %d: sample index %d outside [0,%d) (roundtrip %.9g m)",
		e.Channel, e.Point, e.Index, e.DataLen, e.Roundtrip)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match any fault.
func (e *IndexFault) Is(target error) bool { return target == ErrIndexOutOfRange }
