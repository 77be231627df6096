// ABOUTME: Ogg Vorbis audio decoder
// ABOUTME: Decodes Ogg Vorbis files to float32 samples using oggvorbis
package decode

import (
	"bytes"
	"fmt"

	"github.com/jfreymuth/oggvorbis"
)

// Vorbis decodes Ogg Vorbis files
type Vorbis struct{}

// Decode converts Ogg Vorbis bytes to stereo float32 samples
func (Vorbis) Decode(data []byte) ([]float32, int, error) {
	samples, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("vorbis decode failed: %w", err)
	}

	return finish(samples, format.Channels, format.SampleRate)
}
