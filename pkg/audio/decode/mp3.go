// ABOUTME: MP3 audio decoder
// ABOUTME: Decodes MP3 audio to float32 samples using go-mp3
package decode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
	"github.com/hajimehoshi/go-mp3"
)

// MP3 decodes MPEG-1/2 layer III files. go-mp3 always produces 16-bit
// little-endian stereo.
type MP3 struct{}

// Decode converts MP3 bytes to stereo float32 samples
func (MP3) Decode(data []byte) ([]float32, int, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create mp3 decoder: %w", err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("mp3 decode error: %w", err)
	}

	// 2 bytes per int16 sample
	numSamples := len(pcm) / 2
	samples := make([]float32, numSamples)
	for i := 0; i < numSamples; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		samples[i] = audio.Int16ToFloat(sample16)
	}

	return finish(samples, audio.Channels, dec.SampleRate())
}
