// ABOUTME: Editing session: loaded source, trim window and playback
// ABOUTME: Implements the play/stop/trim/save/set_source operations
package session

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/codec"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/output"
)

// DefaultExportExt is used when a save name has no extension
const DefaultExportExt = "wav"

// Config holds session dependencies
type Config struct {
	Registry  *codec.Registry
	Device    output.Device
	ExportExt string
}

// Session is one loaded source with its trim window and playback state
type Session struct {
	registry  *codec.Registry
	exportExt string
	playback  *Playback

	path   string
	buffer *audio.Buffer
	trim   TrimWindow
}

// Open loads path and creates a session over it. Failures return a
// *LoadError.
func Open(path string, cfg Config) (*Session, error) {
	if cfg.Registry == nil {
		cfg.Registry = codec.Default()
	}
	if cfg.Device == nil {
		cfg.Device = output.NewNull(nil)
	}
	if cfg.ExportExt == "" {
		cfg.ExportExt = DefaultExportExt
	}

	s := &Session{
		registry:  cfg.Registry,
		exportExt: strings.TrimPrefix(cfg.ExportExt, "."),
		playback:  NewPlayback(cfg.Device),
	}

	c, buf, err := s.load(path)
	if err != nil {
		return nil, err
	}
	s.replace(path, c, buf)

	return s, nil
}

// load reads and decodes path without touching session state
func (s *Session) load(path string) (*codec.Codec, *audio.Buffer, error) {
	c, err := s.registry.ForPath(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}

	samples, rate, err := c.Decoder.Decode(data)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}

	buf, err := audio.NewBuffer(samples, float64(rate))
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}

	return c, buf, nil
}

// replace installs a new source and resets the trim window
func (s *Session) replace(path string, c *codec.Codec, buf *audio.Buffer) {
	s.path = path
	s.buffer = buf
	s.trim.Reset(buf.Duration())

	log.Printf("Loaded %s: %s, %.0fHz, %d frames, %.2fs",
		path, c.Name, buf.SampleRate(), buf.Frames(), buf.Duration())
}

// SetSource replaces the loaded source. On failure the session keeps its
// current source, trim and playback untouched.
func (s *Session) SetSource(path string) error {
	c, buf, err := s.load(path)
	if err != nil {
		log.Printf("Source not updated: %v", err)
		return err
	}

	if err := s.playback.Stop(); err != nil {
		log.Printf("Warning: %v", err)
	}
	s.replace(path, c, buf)
	return nil
}

// Path returns the loaded source path
func (s *Session) Path() string {
	return s.path
}

// Buffer returns the decoded source
func (s *Session) Buffer() *audio.Buffer {
	return s.buffer
}

// Trim returns a copy of the trim window
func (s *Session) Trim() TrimWindow {
	return s.trim
}

// Playback returns the playback state
func (s *Session) Playback() *Playback {
	return s.playback
}

// SetStart moves the trim start marker
func (s *Session) SetStart(seconds float64) {
	s.trim.SetStart(seconds)
}

// SetEnd moves the trim end marker
func (s *Session) SetEnd(seconds float64) {
	s.trim.SetEnd(seconds)
}

// Play plays the trimmed region from its start
func (s *Session) Play() error {
	if err := s.playback.Play(s.buffer, s.trim); err != nil {
		log.Printf("Play failed: %v", err)
		return err
	}
	log.Printf("Playing %.2fs-%.2fs", s.trim.Start(), s.trim.End())
	return nil
}

// StopAudio stops playback; it is safe to call when nothing plays
func (s *Session) StopAudio() error {
	return s.playback.Stop()
}

// Save encodes the trimmed region and writes it to a new file named name.
// Without an extension the session's export extension is appended. Existing
// files are never overwritten. Returns the path written.
func (s *Session) Save(name string) (string, error) {
	clip, err := s.buffer.Slice(s.trim.Start(), s.trim.End())
	if err != nil {
		return "", err
	}

	path, c, err := s.exportTarget(name)
	if err != nil {
		return "", err
	}

	rate := int(math.Round(s.buffer.SampleRate()))
	data, err := c.Encoder.Encode(clip, rate, audio.Channels)
	if err != nil {
		return "", fmt.Errorf("%s encode failed: %w", c.Name, err)
	}

	if err := writeNew(path, data); err != nil {
		return "", err
	}

	log.Printf("Saved %s (%d frames, %s)", path, len(clip)/audio.Channels, c.Name)
	return path, nil
}

// exportTarget resolves the output path and the codec that writes it
func (s *Session) exportTarget(name string) (string, *codec.Codec, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, ErrEmptyName
	}

	ext := codec.Ext(name)
	if ext == "" {
		ext = s.exportExt
		name = strings.TrimSuffix(name, ".") + "." + ext
	}

	c, err := s.registry.Lookup(ext)
	if err != nil {
		return "", nil, err
	}
	if !c.CanEncode() {
		return "", nil, fmt.Errorf("%w: %s", ErrNoEncoder, c.Name)
	}
	return name, c, nil
}

// writeNew creates path exclusively and writes data to it
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return errors.Join(fmt.Errorf("failed to write output file: %w", err), os.Remove(path))
	}
	return f.Close()
}

// Close stops playback
func (s *Session) Close() error {
	return s.playback.Stop()
}
