// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for all container encoders
package encode

import "fmt"

// Encoder encodes PCM float32 samples to a complete container file
type Encoder interface {
	// Encode converts interleaved samples to container bytes
	Encode(samples []float32, sampleRate, channels int) ([]byte, error)
}

// validateLayout rejects input no container can represent
func validateLayout(samples []float32, sampleRate, channels int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", sampleRate)
	}
	if channels <= 0 || len(samples)%channels != 0 {
		return fmt.Errorf("invalid channel layout: %d samples, %d channels", len(samples), channels)
	}
	return nil
}
