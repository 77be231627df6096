// ABOUTME: WAV audio decoder
// ABOUTME: Decodes integer PCM WAV files using go-audio/wav
package decode

import (
	"bytes"
	"fmt"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
	"github.com/go-audio/wav"
)

const (
	wavFormatPCM = 1

	// 8-bit PCM is unsigned with silence at 128
	wavUnsigned8Bias = 128
)

// WAV decodes RIFF/WAVE files with integer PCM data
type WAV struct{}

// Decode converts WAV bytes to stereo float32 samples
func (WAV) Decode(data []byte) ([]float32, int, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("wav: %w", ErrInvalidFile)
	}
	if dec.WavAudioFormat != wavFormatPCM {
		return nil, 0, fmt.Errorf("wav: unsupported audio format %d (only integer PCM)", dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav decode failed: %w", err)
	}

	bitDepth := int(dec.BitDepth)
	channels := buf.Format.NumChannels
	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		if bitDepth == 8 {
			v -= wavUnsigned8Bias
		}
		samples[i] = audio.IntToFloat(int32(v), bitDepth)
	}

	return finish(samples, channels, buf.Format.SampleRate)
}
