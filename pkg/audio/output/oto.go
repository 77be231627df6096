// ABOUTME: Oto-based audio output implementation
// ABOUTME: Plays float32 clips as 16-bit PCM and tracks the played position
package output

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/resample"
	"github.com/ebitengine/oto/v3"
)

const bytesPerSample = 2 // int16

// Oto output implementation using oto library
type Oto struct {
	mu         sync.Mutex
	otoCtx     *oto.Context
	player     *oto.Player
	reader     *countingReader
	sampleRate int
	channels   int
	volume     float64
	frozen     float64
	closed     bool
}

// NewOto creates an Oto output. The sound card is opened lazily on the
// first Play at sampleRate; oto allows only one context per process, so the
// rate cannot change afterwards.
func NewOto(sampleRate int, volume float64) *Oto {
	return &Oto{
		sampleRate: sampleRate,
		channels:   audio.Channels,
		volume:     volume,
	}
}

// open initializes the output device
func (o *Oto) open() error {
	if o.otoCtx != nil {
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   o.sampleRate,
		ChannelCount: o.channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}

	<-readyChan

	o.otoCtx = ctx

	log.Printf("Audio output initialized: %dHz, %d channels", o.sampleRate, o.channels)

	return nil
}

// Play replaces the current stream with samples
func (o *Oto) Play(samples []float32, sampleRate, channels int) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrClosed
	}
	if channels != o.channels {
		return fmt.Errorf("%w: %d (device is %d)", ErrChannelCount, channels, o.channels)
	}
	if sampleRate <= 0 {
		return ErrInvalidRate
	}
	if err := o.open(); err != nil {
		return err
	}

	if err := o.stopLocked(); err != nil {
		log.Printf("Warning: failed to release previous player: %v", err)
	}

	if sampleRate != o.sampleRate {
		log.Printf("Resampling %dHz clip to device rate %dHz", sampleRate, o.sampleRate)
		samples = resample.Convert(samples, sampleRate, o.sampleRate, channels)
	}

	o.reader = &countingReader{r: bytes.NewReader(toPCM16(samples))}
	o.player = o.otoCtx.NewPlayer(o.reader)
	o.player.SetVolume(o.volume)
	o.player.Play()
	o.frozen = 0

	return nil
}

// Stop halts playback and drops the player with its queued data
func (o *Oto) Stop() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.stopLocked()
}

func (o *Oto) stopLocked() error {
	if o.player == nil {
		return nil
	}

	o.frozen = o.elapsedLocked()
	o.player.Pause()
	err := o.player.Close()
	o.player = nil
	o.reader = nil
	return err
}

// Elapsed returns the seconds played since the last Play
func (o *Oto) Elapsed() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.player == nil {
		return o.frozen
	}
	return o.elapsedLocked()
}

// elapsedLocked counts bytes the player pulled minus bytes still sitting in
// its buffer
func (o *Oto) elapsedLocked() float64 {
	played := o.reader.Count() - int64(o.player.BufferedSize())
	if played < 0 {
		played = 0
	}
	return float64(played) / float64(o.sampleRate*o.channels*bytesPerSample)
}

// Close releases output resources
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	err := o.stopLocked()
	if o.otoCtx != nil {
		if suspendErr := o.otoCtx.Suspend(); suspendErr != nil && err == nil {
			err = suspendErr
		}
	}
	o.closed = true
	return err
}

// toPCM16 converts float32 samples to little-endian int16 bytes
func toPCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(audio.FloatToInt16(s)))
	}
	return out
}

// countingReader counts the bytes oto pulls from the stream. oto reads on
// its own goroutine.
type countingReader struct {
	r     io.Reader
	count atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.count.Add(int64(n))
	return n, err
}

// Count returns the total bytes read
func (c *countingReader) Count() int64 {
	return c.count.Load()
}
