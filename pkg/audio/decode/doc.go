// ABOUTME: Audio decoder package for multiple container support
// ABOUTME: Provides Decoder interface and implementations for WAV, MP3, Ogg Vorbis, Ogg Opus, FLAC
// Package decode provides whole-file audio decoders.
//
// Supports: WAV (integer PCM), MP3, Ogg Vorbis, Ogg Opus, FLAC
//
// All decoders implement the Decoder interface and output interleaved stereo
// float32 samples in [-1, 1] together with the frame rate. Mono sources are
// duplicated to both channels; wider layouts keep their front pair.
//
// Example:
//
//	samples, rate, err := decode.Vorbis{}.Decode(data)
package decode
