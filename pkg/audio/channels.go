// ABOUTME: Channel layout helpers for interleaved sample sequences
// ABOUTME: Splits, joins and normalizes channel planes to stereo
package audio

import "fmt"

// Deinterleave splits interleaved samples into one plane per channel
func Deinterleave(samples []float32, channels int) ([][]float32, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}
	if len(samples)%channels != 0 {
		return nil, ErrChannelAlignment
	}

	frames := len(samples) / channels
	planes := make([][]float32, channels)
	for ch := range planes {
		planes[ch] = make([]float32, frames)
	}
	for i, s := range samples {
		planes[i%channels][i/channels] = s
	}
	return planes, nil
}

// Interleave joins channel planes into a single interleaved sequence
func Interleave(planes [][]float32) ([]float32, error) {
	if len(planes) == 0 {
		return nil, nil
	}

	frames := len(planes[0])
	for _, p := range planes[1:] {
		if len(p) != frames {
			return nil, ErrChannelMismatch
		}
	}

	channels := len(planes)
	out := make([]float32, frames*channels)
	for ch, p := range planes {
		for i, s := range p {
			out[i*channels+ch] = s
		}
	}
	return out, nil
}

// ToStereo converts interleaved samples with the given channel count to
// interleaved stereo. Mono is duplicated to both sides; layouts wider than
// stereo keep their first two channels.
func ToStereo(samples []float32, channels int) ([]float32, error) {
	switch {
	case channels == Channels:
		if len(samples)%Channels != 0 {
			return nil, ErrChannelAlignment
		}
		return samples, nil
	case channels == 1:
		out := make([]float32, len(samples)*Channels)
		for i, s := range samples {
			out[i*2] = s
			out[i*2+1] = s
		}
		return out, nil
	case channels > Channels:
		planes, err := Deinterleave(samples, channels)
		if err != nil {
			return nil, err
		}
		return Interleave(planes[:Channels])
	default:
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}
}
