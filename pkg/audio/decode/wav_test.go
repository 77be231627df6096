// ABOUTME: Tests for WAV decoder
// ABOUTME: Decodes files written with go-audio/wav at several bit depths
package decode

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeWAV writes integer PCM data with go-audio/wav and returns the file bytes
func writeWAV(t *testing.T, data []int, sampleRate, bitDepth, channels int) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close fixture: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return raw
}

func TestWAVDecode16BitStereo(t *testing.T) {
	raw := writeWAV(t, []int{0, 16384, -16384, 32767}, 22050, 16, 2)

	samples, rate, err := WAV{}.Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if rate != 22050 {
		t.Errorf("expected rate 22050, got %d", rate)
	}

	expected := []float32{0, 0.5, -0.5, 32767.0 / 32768.0}
	if len(samples) != len(expected) {
		t.Fatalf("expected %d samples, got %d", len(expected), len(samples))
	}
	for i := range expected {
		if samples[i] != expected[i] {
			t.Errorf("sample %d: expected %v, got %v", i, expected[i], samples[i])
		}
	}
}

func TestWAVDecodeMonoUpmix(t *testing.T) {
	raw := writeWAV(t, []int{16384, -16384, 0}, 8000, 16, 1)

	samples, rate, err := WAV{}.Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if rate != 8000 {
		t.Errorf("expected rate 8000, got %d", rate)
	}
	if len(samples) != 6 {
		t.Fatalf("expected 6 stereo samples, got %d", len(samples))
	}
	if samples[0] != samples[1] || samples[2] != samples[3] {
		t.Errorf("expected duplicated channels, got %v", samples)
	}
	if samples[0] != 0.5 || samples[2] != -0.5 {
		t.Errorf("unexpected values %v", samples)
	}
}

func TestWAVDecode24Bit(t *testing.T) {
	raw := writeWAV(t, []int{4194304, -8388608}, 48000, 24, 2)

	samples, _, err := WAV{}.Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0] != 0.5 || samples[1] != -1 {
		t.Errorf("expected [0.5 -1], got %v", samples)
	}
}

func TestWAVDecode8BitUnsigned(t *testing.T) {
	raw := writeWAV(t, []int{128, 128, 255, 255, 0, 0}, 11025, 8, 2)

	samples, rate, err := WAV{}.Decode(raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if rate != 11025 {
		t.Errorf("expected rate 11025, got %d", rate)
	}

	expected := []float32{0, 0, 127.0 / 128.0, 127.0 / 128.0, -1, -1}
	if len(samples) != len(expected) {
		t.Fatalf("expected %d samples, got %d", len(expected), len(samples))
	}
	for i := range expected {
		if samples[i] != expected[i] {
			t.Errorf("sample %d: expected %v, got %v", i, expected[i], samples[i])
		}
	}
}

func TestWAVDecode_NoFrames(t *testing.T) {
	raw := writeWAV(t, []int{}, 44100, 16, 2)

	_, _, err := WAV{}.Decode(raw)
	if err == nil {
		t.Fatal("expected error for a WAV without frames")
	}
}
