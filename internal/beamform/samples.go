package beamform

import "fmt"

// Samples is the raw receive data: one contiguous buffer of DataLen values
// per channel, channels back to back.
type Samples struct {
	channels int
	dataLen  int
	data     []Real
}

// NewSamples wraps data without copying it.
func NewSamples(channels, dataLen int, data []Real) (*Samples, error) {
	if channels <= 0 || dataLen <= 0 {
		return nil, fmt.Errorf("non-positive sample layout: channels=%d dataLen=%d", channels, dataLen)
	}
	if exp := int64(channels) * int64(dataLen); int64(len(data)) != exp {
		return nil, fmt.Errorf("%w: %d samples, want %d (channels*dataLen)", ErrSizeMismatch, len(data), exp)
	}
	return &Samples{channels: channels, dataLen: dataLen, data: data}, nil
}

// Channels returns the number of channels.
func (s *Samples) Channels() int { return s.channels }

// DataLen returns the samples per channel.
func (s *Samples) DataLen() int { return s.dataLen }

// Channel returns the buffer of channel ch. Callers must not modify it.
func (s *Samples) Channel(ch int) []Real {
	off := ch * s.dataLen
	return s.data[off : off+s.dataLen : off+s.dataLen]
}

// Sample returns one value, bounds-checked against the channel's own buffer.
func (s *Samples) Sample(ch, idx int) (Real, error) {
	if ch < 0 || ch >= s.channels {
		return 0, fmt.Errorf("channel %d outside [0,%d)", ch, s.channels)
	}
	if idx < 0 || idx >= s.dataLen {
		return 0, &IndexFault{Channel: ch, Point: -1, Index: idx, DataLen: s.dataLen}
	}
	return s.data[ch*s.dataLen+idx], nil
}
