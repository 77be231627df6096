// ABOUTME: Audio fundamentals package providing the in-memory sample buffer
// ABOUTME: Defines Buffer, channel layout helpers and sample conversions
// Package audio provides the in-memory audio model used by the trimmer.
//
// This package defines:
//   - Buffer: an immutable, interleaved stereo float32 sample sequence with its
//     frame rate, plus the time/index conversions the trim window relies on
//   - Interleave/Deinterleave/ToStereo: channel layout helpers
//   - Sample conversions between float32 and 16/24/32-bit integers
//
// Sample rates are frames per second. Index math multiplies by the flat rate
// (SampleRate * Channels) and always lands on a left-channel boundary.
//
// Example:
//
//	buf, err := audio.NewBuffer(samples, 44100)
//	clip, err := buf.Slice(1.5, 3.0)
//	if errors.Is(err, audio.ErrOutOfRange) {
//	    // report and keep going
//	}
package audio
