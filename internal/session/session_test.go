// ABOUTME: Tests for editing sessions
// ABOUTME: Loads WAV fixtures from temp dirs and drives play/trim/save
package session

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Resonate-Protocol/trimmer/pkg/audio"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/codec"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/decode"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/encode"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/output"
)

// fourFrames is four stereo frames whose left and right samples match
var fourFrames = []float32{0, 0, 0.25, 0.25, 0.5, 0.5, 0.75, 0.75}

// writeFixture encodes samples as a stereo WAV in dir and returns its path
func writeFixture(t *testing.T, dir, name string, samples []float32, rate int) string {
	t.Helper()

	data, err := encode.WAV{}.Encode(samples, rate, audio.Channels)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func openFixture(t *testing.T) (*Session, *output.Null, string) {
	t.Helper()

	dir := t.TempDir()
	path := writeFixture(t, dir, "clip.wav", fourFrames, 1)
	dev := output.NewNull(nil)

	s, err := Open(path, Config{Device: dev})
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	return s, dev, dir
}

func assertSamples(t *testing.T, got, want []float32) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d samples, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestOpenResetsTrim(t *testing.T) {
	s, _, _ := openFixture(t)

	if s.Buffer().Duration() != 4 {
		t.Fatalf("expected duration 4, got %v", s.Buffer().Duration())
	}
	if s.Trim().Start() != 0 || s.Trim().End() != 4 {
		t.Errorf("expected trim [0, 4], got [%v, %v]", s.Trim().Start(), s.Trim().End())
	}
	if s.Playback().Active() {
		t.Error("new session should not be playing")
	}
}

func TestOpenFailures(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "noise.wav")
	if err := os.WriteFile(garbage, []byte("not a riff file"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		path   string
		target error
	}{
		{"missing file", filepath.Join(dir, "missing.wav"), os.ErrNotExist},
		{"unknown extension", filepath.Join(dir, "clip.xyz"), codec.ErrUnsupportedFormat},
		{"no extension", filepath.Join(dir, "clip"), codec.ErrNoExtension},
		{"malformed wav", garbage, decode.ErrInvalidFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path, Config{})
			if err == nil {
				t.Fatal("expected error")
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %T", err)
			}
			if loadErr.Path != tt.path {
				t.Errorf("expected path %s, got %s", tt.path, loadErr.Path)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("expected %v in chain, got %v", tt.target, err)
			}
		})
	}
}

func TestPlayTrimmedRegion(t *testing.T) {
	s, dev, _ := openFixture(t)

	s.SetStart(1)
	s.SetEnd(3)
	if err := s.Play(); err != nil {
		t.Fatalf("play failed: %v", err)
	}

	assertSamples(t, dev.LastPlayed(), []float32{0.25, 0.25, 0.5, 0.5})
	if !s.Playback().Active() {
		t.Error("expected active playback")
	}

	if err := s.StopAudio(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if s.Playback().Active() {
		t.Error("expected playback stopped")
	}
}

func TestInvertedWindowRejected(t *testing.T) {
	s, dev, dir := openFixture(t)

	s.SetStart(10)
	s.SetEnd(5)

	if err := s.Play(); !errors.Is(err, audio.ErrOutOfRange) {
		t.Errorf("play: expected ErrOutOfRange, got %v", err)
	}
	if dev.Plays() != 0 {
		t.Error("device should not receive an invalid window")
	}

	_, err := s.Save(filepath.Join(dir, "out.wav"))
	if !errors.Is(err, audio.ErrOutOfRange) {
		t.Errorf("save: expected ErrOutOfRange, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.wav")); !os.IsNotExist(statErr) {
		t.Error("no file should be written for an invalid window")
	}
}

func TestSaveTrimmedRegion(t *testing.T) {
	s, _, dir := openFixture(t)

	s.SetStart(1)
	s.SetEnd(3)

	path, err := s.Save(filepath.Join(dir, "out.wav"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	samples, rate, err := decode.WAV{}.Decode(raw)
	if err != nil {
		t.Fatalf("decode saved file: %v", err)
	}

	if rate != 1 {
		t.Errorf("expected rate 1, got %d", rate)
	}
	assertSamples(t, samples, []float32{0.25, 0.25, 0.5, 0.5})
}

func TestSaveOggOpusReloads(t *testing.T) {
	s, _, dir := openFixture(t)

	src := writeFixture(t, dir, "second.wav", make([]float32, 2*8000), 8000)
	if err := s.SetSource(src); err != nil {
		t.Fatalf("set_source failed: %v", err)
	}
	s.SetEnd(0.5)

	path, err := s.Save(filepath.Join(dir, "half.ogg"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := s.SetSource(path); err != nil {
		t.Fatalf("reload of %s failed: %v", path, err)
	}

	if s.Buffer().SampleRate() != 48000 {
		t.Errorf("expected 48kHz, got %v", s.Buffer().SampleRate())
	}
	// opus pads to whole 20ms frames
	if d := s.Buffer().Duration(); d < 0.5 || d > 0.55 {
		t.Errorf("expected about 0.5s, got %v", d)
	}
}

func TestSaveAppendsExportExtension(t *testing.T) {
	s, _, dir := openFixture(t)

	path, err := s.Save(filepath.Join(dir, "take1"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	want := filepath.Join(dir, "take1.wav")
	if path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected file at %s: %v", want, err)
	}
}

func TestSaveNeverOverwrites(t *testing.T) {
	s, _, dir := openFixture(t)

	target := filepath.Join(dir, "keep.wav")
	if err := os.WriteFile(target, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Save(target); !errors.Is(err, os.ErrExist) {
		t.Fatalf("expected os.ErrExist, got %v", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "original" {
		t.Error("existing file was modified")
	}
}

func TestSaveRejectsBadNames(t *testing.T) {
	s, _, dir := openFixture(t)

	tests := []struct {
		name   string
		input  string
		target error
	}{
		{"empty", "", ErrEmptyName},
		{"blank", "   ", ErrEmptyName},
		{"decode-only format", filepath.Join(dir, "out.mp3"), ErrNoEncoder},
		{"unknown format", filepath.Join(dir, "out.xyz"), codec.ErrUnsupportedFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Save(tt.input); !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestSetSourceFailureKeepsSession(t *testing.T) {
	s, _, dir := openFixture(t)

	s.SetStart(1)
	s.SetEnd(2)
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}
	before := s.Path()

	err := s.SetSource(filepath.Join(dir, "missing.wav"))
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}

	if s.Path() != before {
		t.Errorf("path changed to %s", s.Path())
	}
	if s.Trim().Start() != 1 || s.Trim().End() != 2 {
		t.Errorf("trim changed to [%v, %v]", s.Trim().Start(), s.Trim().End())
	}
	if !s.Playback().Active() {
		t.Error("failed set_source should not stop playback")
	}
}

func TestSetSourceReplaces(t *testing.T) {
	s, dev, dir := openFixture(t)

	s.SetStart(1)
	if err := s.Play(); err != nil {
		t.Fatal(err)
	}

	next := writeFixture(t, dir, "long.wav", make([]float32, 2*8000), 8000)
	if err := s.SetSource(next); err != nil {
		t.Fatalf("set_source failed: %v", err)
	}

	if s.Path() != next {
		t.Errorf("expected path %s, got %s", next, s.Path())
	}
	if s.Trim().Start() != 0 || s.Trim().End() != 1 {
		t.Errorf("expected trim [0, 1], got [%v, %v]", s.Trim().Start(), s.Trim().End())
	}
	if s.Playback().Active() || dev.Playing() {
		t.Error("set_source should stop playback")
	}
}

func TestSaveLeadingTwoSeconds(t *testing.T) {
	s, _, dir := openFixture(t)

	s.SetStart(0)
	s.SetEnd(2)

	path, err := s.Save(filepath.Join(dir, "head.wav"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	samples, _, err := decode.WAV{}.Decode(raw)
	if err != nil {
		t.Fatal(err)
	}

	planes, err := audio.Deinterleave(samples, audio.Channels)
	if err != nil {
		t.Fatal(err)
	}
	if len(planes[0]) != 2 || len(planes[1]) != 2 {
		t.Fatalf("expected 2 samples per channel, got %d/%d", len(planes[0]), len(planes[1]))
	}
	assertSamples(t, samples, []float32{0, 0, 0.25, 0.25})
}
