// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts float32 audio between different sample rates
// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation for converting between sample rates.
// Handles both upsampling and downsampling.
//
// Example:
//
//	r := resample.New(44100, 48000, 2)
//	n := r.Resample(inputSamples, outputSamples)
//
//	// or in one call
//	out := resample.Convert(inputSamples, 22050, 44100, 2)
package resample
