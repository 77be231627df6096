// ABOUTME: Audio encoder package for writing trimmed audio to files
// ABOUTME: Provides Encoder interface with 16-bit PCM WAV and Ogg Opus implementations
// Package encode provides audio encoders that produce whole container files.
//
// Supports: WAV (16-bit PCM), Ogg Opus (48kHz, mono or stereo)
//
// All encoders accept interleaved float32 samples in [-1, 1]; values outside
// that range are clipped.
//
// Example:
//
//	data, err := encode.WAV{}.Encode(samples, 44100, 2)
package encode
