// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides Device interface with oto and null implementations
// Package output provides audio playback devices.
//
// Oto plays through the system sound card using a single process-wide oto
// context; sources at other rates are resampled to the device rate. Null
// plays nothing and advances a clock, for headless use and tests.
//
// Example:
//
//	dev := output.NewOto(44100, 1.0)
//	err := dev.Play(samples, 48000, 2)
//	fmt.Println(dev.Elapsed())
//	err = dev.Stop()
package output
