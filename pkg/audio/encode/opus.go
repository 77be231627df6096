// ABOUTME: Ogg Opus audio encoder
// ABOUTME: Encodes float32 samples with libopus and pages them with pion's oggwriter
package encode

import (
	"bytes"
	"fmt"

	"github.com/Resonate-Protocol/trimmer/pkg/audio/resample"
	"github.com/pion/rtp"
	"github.com/pion/webrtc/v4/pkg/media/oggwriter"
	"gopkg.in/hraban/opus.v2"
)

const (
	opusSampleRate = 48000
	opusFrameSize  = opusSampleRate / 50 // 20ms frame
	opusMaxPacket  = 4000

	// pre-skip oggwriter stores in the OpusHead page, in 48kHz frames
	opusPreSkip = 3840
)

// OggOpus encodes Ogg Opus files at 48kHz. Mono and stereo layouts only.
type OggOpus struct{}

// Encode converts interleaved float32 samples to Ogg Opus bytes
func (OggOpus) Encode(samples []float32, sampleRate, channels int) ([]byte, error) {
	if err := validateLayout(samples, sampleRate, channels); err != nil {
		return nil, err
	}
	if channels > 2 {
		return nil, fmt.Errorf("opus: unsupported channel count %d", channels)
	}

	pcm := resample.Convert(samples, sampleRate, opusSampleRate, channels)

	// Pre-skip silence, the clip, then zero padding to whole frames plus one
	// more frame because oggwriter's granule positions trail by a packet
	frame := opusFrameSize * channels
	lead := opusPreSkip * channels
	frames := (lead+len(pcm)+frame-1)/frame + 1
	padded := make([]float32, frames*frame)
	copy(padded[lead:], pcm)

	enc, err := opus.NewEncoder(opusSampleRate, channels, opus.AppAudio)
	if err != nil {
		return nil, fmt.Errorf("failed to create opus encoder: %w", err)
	}

	var out bytes.Buffer
	w, err := oggwriter.NewWith(&out, opusSampleRate, uint16(channels))
	if err != nil {
		return nil, fmt.Errorf("failed to create ogg writer: %w", err)
	}

	data := make([]byte, opusMaxPacket)
	for i := 0; i < len(padded); i += frame {
		n, err := enc.EncodeFloat32(padded[i:i+frame], data)
		if err != nil {
			return nil, fmt.Errorf("opus encode error: %w", err)
		}

		packet := &rtp.Packet{
			Header:  rtp.Header{Timestamp: uint32(i / channels)},
			Payload: append([]byte(nil), data[:n]...),
		}
		if err := w.WriteRTP(packet); err != nil {
			return nil, fmt.Errorf("ogg page write error: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("ogg finalize error: %w", err)
	}
	return out.Bytes(), nil
}
