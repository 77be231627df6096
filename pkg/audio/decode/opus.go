// ABOUTME: Ogg Opus audio decoder
// ABOUTME: Reads Ogg pages with pion's oggreader and decodes them with libopus
package decode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pion/webrtc/v4/pkg/media/oggreader"
	"gopkg.in/hraban/opus.v2"
)

const (
	opusSampleRate = 48000
	opusMaxFrame   = 5760 // 120ms at 48kHz

	opusHeadMagic = "OpusHead"
	opusTagsMagic = "OpusTags"
)

// Opus decodes Ogg Opus files that carry one packet per page, which is how
// oggwriter pages them. Output is always at 48kHz.
type Opus struct{}

// Decode converts Ogg Opus bytes to stereo float32 samples
func (Opus) Decode(data []byte) ([]float32, int, error) {
	reader, header, err := oggreader.NewWith(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("opus: %w: %v", ErrInvalidFile, err)
	}

	channels := int(header.Channels)
	dec, err := opus.NewDecoder(opusSampleRate, channels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create opus decoder: %w", err)
	}

	pcm := make([]float32, opusMaxFrame*channels)
	var samples []float32
	for {
		payload, _, err := reader.ParseNextPage()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("opus page read failed: %w", err)
		}
		if len(payload) == 0 || bytes.HasPrefix(payload, []byte(opusTagsMagic)) {
			continue
		}

		n, err := dec.DecodeFloat32(payload, pcm)
		if err != nil {
			return nil, 0, fmt.Errorf("opus decode failed: %w", err)
		}
		samples = append(samples, pcm[:n*channels]...)
	}

	skip := int(header.PreSkip) * channels
	if skip >= len(samples) {
		return nil, 0, ErrNoAudio
	}
	return finish(samples[skip:], channels, opusSampleRate)
}

// Ogg routes Ogg files to the Opus or Vorbis decoder by their first packet
type Ogg struct{}

// Decode sniffs the identification header and decodes with the matching codec
func (Ogg) Decode(data []byte) ([]float32, int, error) {
	if isOggOpus(data) {
		return Opus{}.Decode(data)
	}
	return Vorbis{}.Decode(data)
}

// isOggOpus reports whether the first Ogg page carries an OpusHead packet
func isOggOpus(data []byte) bool {
	const firstPage = 27 + 255 // page header plus the largest segment table
	if len(data) > firstPage {
		data = data[:firstPage]
	}
	return bytes.Contains(data, []byte(opusHeadMagic))
}
