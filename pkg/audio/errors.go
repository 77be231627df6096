// ABOUTME: Sentinel and typed errors for the audio buffer
// ABOUTME: RangeError reports an invalid slice request without panicking
package audio

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyBuffer       = errors.New("audio buffer is empty")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrChannelAlignment  = errors.New("sample count is not a multiple of the channel count")
	ErrOutOfRange        = errors.New("trim range out of bounds")
	ErrChannelMismatch   = errors.New("channel planes have different lengths")
)

// RangeError describes a slice request that does not fit the buffer
type RangeError struct {
	Start      float64
	End        float64
	StartIndex int
	EndIndex   int
	Len        int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %gs-%gs maps to samples [%d, %d) of %d",
		ErrOutOfRange, e.Start, e.End, e.StartIndex, e.EndIndex, e.Len)
}

// Unwrap lets errors.Is match ErrOutOfRange
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
