// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for all container decoders
package decode

import (
	"errors"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
)

var (
	ErrNoAudio     = errors.New("source contains no audio")
	ErrInvalidFile = errors.New("invalid or malformed container")
)

// Decoder decodes a whole compressed file to PCM
type Decoder interface {
	// Decode converts encoded file bytes to interleaved stereo float32
	// samples and returns them with the frame rate in Hz
	Decode(data []byte) ([]float32, int, error)
}

// finish normalizes decoded samples to stereo and rejects empty output
func finish(samples []float32, channels, sampleRate int) ([]float32, int, error) {
	if len(samples) == 0 {
		return nil, 0, ErrNoAudio
	}
	if sampleRate <= 0 {
		return nil, 0, audio.ErrInvalidSampleRate
	}

	stereo, err := audio.ToStereo(samples, channels)
	if err != nil {
		return nil, 0, err
	}
	return stereo, sampleRate, nil
}
