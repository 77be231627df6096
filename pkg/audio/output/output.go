// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for playback backends
package output

import "errors"

var (
	ErrClosed       = errors.New("output device closed")
	ErrChannelCount = errors.New("unsupported channel count")
	ErrInvalidRate  = errors.New("sample rate must be positive")
)

// Device represents an audio output device that plays one stream at a time
type Device interface {
	// Play replaces whatever is queued with samples and starts playing
	// them once, from the beginning
	Play(samples []float32, sampleRate, channels int) error

	// Stop halts playback and discards queued samples. Stopping an idle
	// device is a no-op.
	Stop() error

	// Elapsed returns the seconds of audio played since the last Play.
	// After Stop it keeps returning the value it had when stopped.
	Elapsed() float64

	// Close releases output resources
	Close() error
}
