// ABOUTME: Codec registry package
// ABOUTME: Maps file extensions to decoder/encoder pairs
// Package codec maps container file extensions to the decoders and encoders
// that handle them.
//
// Lookups happen once per load or save; the editing core never switches on
// file types itself.
//
// Example:
//
//	reg := codec.Default()
//	c, err := reg.ForPath("song.ogg")
//	samples, rate, err := c.Decoder.Decode(data)
package codec
