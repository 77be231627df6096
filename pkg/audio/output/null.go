// ABOUTME: Silent output device driven by a clock
// ABOUTME: Used for headless sessions and tests
package output

import (
	"sync"
	"time"
)

// Null plays nothing; Elapsed follows the wall clock and stops at the end of
// the clip
type Null struct {
	mu       sync.Mutex
	now      func() time.Time
	started  time.Time
	duration float64
	playing  bool
	frozen   float64
	last     []float32
	plays    int
	closed   bool
}

// NewNull creates a silent device. A nil clock uses time.Now.
func NewNull(clock func() time.Time) *Null {
	if clock == nil {
		clock = time.Now
	}
	return &Null{now: clock}
}

// Play records samples and restarts the clock
func (n *Null) Play(samples []float32, sampleRate, channels int) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrClosed
	}
	if channels <= 0 {
		return ErrChannelCount
	}
	if sampleRate <= 0 {
		return ErrInvalidRate
	}

	n.last = samples
	n.duration = float64(len(samples)) / float64(sampleRate*channels)
	n.started = n.now()
	n.playing = true
	n.frozen = 0
	n.plays++
	return nil
}

// Stop freezes the clock
func (n *Null) Stop() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.playing {
		n.frozen = n.elapsedLocked()
		n.playing = false
	}
	return nil
}

// Elapsed returns seconds since the last Play, capped at the clip length
func (n *Null) Elapsed() float64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	if !n.playing {
		return n.frozen
	}
	return n.elapsedLocked()
}

func (n *Null) elapsedLocked() float64 {
	elapsed := n.now().Sub(n.started).Seconds()
	if elapsed > n.duration {
		elapsed = n.duration
	}
	return elapsed
}

// Close marks the device unusable
func (n *Null) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.playing = false
	n.closed = true
	return nil
}

// LastPlayed returns the samples handed to the most recent Play
func (n *Null) LastPlayed() []float32 {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.last
}

// Plays returns how many times Play succeeded
func (n *Null) Plays() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.plays
}

// Playing reports whether a clip is running
func (n *Null) Playing() bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.playing
}
