// ABOUTME: WAV audio encoder
// ABOUTME: Encodes float32 samples to 16-bit PCM WAV using go-audio/wav
package encode

import (
	"fmt"
	"io"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/orcaman/writerseeker"
)

const (
	wavBitDepth  = 16
	wavFormatPCM = 1
)

// WAV encodes 16-bit integer PCM WAV files
type WAV struct{}

// Encode converts interleaved float32 samples to WAV bytes
func (WAV) Encode(samples []float32, sampleRate, channels int) ([]byte, error) {
	if err := validateLayout(samples, sampleRate, channels); err != nil {
		return nil, err
	}

	out := &writerseeker.WriterSeeker{}
	enc := wav.NewEncoder(out, sampleRate, wavBitDepth, channels, wavFormatPCM)

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: wavBitDepth,
	}
	for i, s := range samples {
		buf.Data[i] = int(audio.FloatToInt16(s))
	}

	if err := enc.Write(buf); err != nil {
		return nil, fmt.Errorf("wav encode error: %w", err)
	}
	// Close patches the RIFF and data chunk sizes
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("wav finalize error: %w", err)
	}

	return io.ReadAll(out.Reader())
}
