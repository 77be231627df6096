// ABOUTME: Immutable interleaved stereo sample buffer
// ABOUTME: Converts between seconds and channel-aligned sample indices
package audio

import "math"

// Buffer holds decoded PCM audio as interleaved stereo float32 samples.
// It is never modified after construction.
type Buffer struct {
	samples    []float32
	sampleRate float64 // frames per second
}

// NewBuffer creates a buffer from interleaved stereo samples at sampleRate
// frames per second. The buffer takes ownership of samples.
func NewBuffer(samples []float32, sampleRate float64) (*Buffer, error) {
	if math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) || sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(samples) == 0 {
		return nil, ErrEmptyBuffer
	}
	if len(samples)%Channels != 0 {
		return nil, ErrChannelAlignment
	}

	return &Buffer{
		samples:    samples,
		sampleRate: sampleRate,
	}, nil
}

// Len returns the number of interleaved samples
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Frames returns the number of stereo frames
func (b *Buffer) Frames() int {
	return len(b.samples) / Channels
}

// SampleRate returns the frame rate in Hz
func (b *Buffer) SampleRate() float64 {
	return b.sampleRate
}

// Duration returns the buffer length in seconds
func (b *Buffer) Duration() float64 {
	return float64(len(b.samples)) / b.flatRate()
}

// IndexAt converts a time in seconds to an interleaved sample index. The
// product with the flat rate is truncated and then rounded down to the
// nearest left-channel index. Duration() maps exactly to Len().
func (b *Buffer) IndexAt(seconds float64) int {
	if seconds == b.Duration() {
		return len(b.samples)
	}
	index := int(seconds * b.flatRate())
	return index - index%Channels
}

// Slice returns the samples in [IndexAt(start), IndexAt(end)). The result
// shares memory with the buffer and is capacity-capped. A window that does
// not fit the buffer returns a *RangeError.
func (b *Buffer) Slice(start, end float64) ([]float32, error) {
	rangeErr := &RangeError{
		Start:      start,
		End:        end,
		StartIndex: -1,
		EndIndex:   -1,
		Len:        len(b.samples),
	}
	if !b.inIndexRange(start) || !b.inIndexRange(end) {
		return nil, rangeErr
	}

	startIndex := b.IndexAt(start)
	endIndex := b.IndexAt(end)
	rangeErr.StartIndex = startIndex
	rangeErr.EndIndex = endIndex

	if startIndex > endIndex || endIndex > len(b.samples) {
		return nil, rangeErr
	}

	return b.samples[startIndex:endIndex:endIndex], nil
}

// inIndexRange reports whether seconds converts to an index that can be
// compared against the buffer without overflowing
func (b *Buffer) inIndexRange(seconds float64) bool {
	if math.IsNaN(seconds) || seconds < 0 {
		return false
	}
	return seconds*b.flatRate() < float64(len(b.samples)+Channels)
}

func (b *Buffer) flatRate() float64 {
	return b.sampleRate * Channels
}
