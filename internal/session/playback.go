// ABOUTME: Playback state tracking
// ABOUTME: Projects device elapsed time onto the trimmed buffer
package session

import (
	"fmt"
	"math"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/output"
)

// Playback tracks whether the trimmed clip is playing. Elapsed time is owned
// by the device and only ever polled.
//
// The device is not asked whether a clip finished on its own, so Active
// stays true until Stop even after the last sample has played.
type Playback struct {
	device output.Device
	active bool
}

// NewPlayback creates playback state over device
func NewPlayback(device output.Device) *Playback {
	return &Playback{device: device}
}

// Play sends the trimmed slice of buf to the device, replacing any clip in
// flight. An invalid window returns an error wrapping audio.ErrOutOfRange
// and leaves the device untouched.
func (p *Playback) Play(buf *audio.Buffer, trim TrimWindow) error {
	clip, err := buf.Slice(trim.Start(), trim.End())
	if err != nil {
		return err
	}

	rate := int(math.Round(buf.SampleRate()))
	if err := p.device.Play(clip, rate, audio.Channels); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}

	p.active = true
	return nil
}

// Stop halts the device. Stopping while inactive does nothing.
func (p *Playback) Stop() error {
	if !p.active {
		return nil
	}

	p.active = false
	if err := p.device.Stop(); err != nil {
		return fmt.Errorf("stop failed: %w", err)
	}
	return nil
}

// Active reports whether a play command is in effect
func (p *Playback) Active() bool {
	return p.active
}

// Position returns the play-head in buffer time. While stopped it rests at
// the trim start.
func (p *Playback) Position(trim TrimWindow) float64 {
	if !p.active {
		return trim.Start()
	}
	return p.device.Elapsed() + trim.Start()
}
