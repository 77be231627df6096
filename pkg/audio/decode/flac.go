// ABOUTME: FLAC audio decoder
// ABOUTME: Decodes FLAC files frame by frame using mewkiz/flac
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
	"github.com/mewkiz/flac"
)

// FLAC decodes native FLAC streams
type FLAC struct{}

// Decode converts FLAC bytes to stereo float32 samples
func (FLAC) Decode(data []byte) ([]float32, int, error) {
	stream, err := flac.New(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open flac stream: %w", err)
	}
	defer stream.Close()

	channels := int(stream.Info.NChannels)
	bitDepth := int(stream.Info.BitsPerSample)

	samples := make([]float32, 0, int(stream.Info.NSamples)*channels)
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("flac decode error: %w", err)
		}
		if len(frame.Subframes) != channels {
			return nil, 0, fmt.Errorf("flac: frame has %d channels, stream has %d", len(frame.Subframes), channels)
		}

		n := len(frame.Subframes[0].Samples)
		for i := 0; i < n; i++ {
			for _, sub := range frame.Subframes {
				samples = append(samples, audio.IntToFloat(sub.Samples[i], bitDepth))
			}
		}
	}

	return finish(samples, channels, int(stream.Info.SampleRate))
}
