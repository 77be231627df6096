// ABOUTME: Extension-keyed registry of audio codecs
// ABOUTME: Resolves file paths to decode/encode capability pairs
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Resonate-Protocol/trimmer/pkg/audio/decode"
	"github.com/Resonate-Protocol/trimmer/pkg/audio/encode"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrNoExtension       = errors.New("file name has no extension")
)

// Codec pairs the decoder and encoder for one container kind. Encoder is nil
// for formats that can be read but not written.
type Codec struct {
	Name    string
	Ext     string
	Decoder decode.Decoder
	Encoder encode.Encoder
}

// CanEncode reports whether the codec can write files
func (c *Codec) CanEncode() bool {
	return c.Encoder != nil
}

// Registry holds codecs by lower-case extension without the dot
type Registry struct {
	codecs map[string]*Codec
	mu     sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]*Codec),
	}
}

// Default returns a registry with every built-in container
func Default() *Registry {
	r := NewRegistry()
	r.Register(&Codec{Name: "WAV", Ext: "wav", Decoder: decode.WAV{}, Encoder: encode.WAV{}})
	r.Register(&Codec{Name: "MP3", Ext: "mp3", Decoder: decode.MP3{}})
	r.Register(&Codec{Name: "Ogg", Ext: "ogg", Decoder: decode.Ogg{}, Encoder: encode.OggOpus{}})
	r.Register(&Codec{Name: "Opus", Ext: "opus", Decoder: decode.Opus{}, Encoder: encode.OggOpus{}})
	r.Register(&Codec{Name: "FLAC", Ext: "flac", Decoder: decode.FLAC{}})
	return r
}

// Register adds or replaces the codec for c.Ext
func (r *Registry) Register(c *Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[normalizeExt(c.Ext)] = c
}

// Lookup returns the codec for an extension, with or without the dot
func (r *Registry) Lookup(ext string) (*Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.codecs[normalizeExt(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return c, nil
}

// ForPath returns the codec selected by the extension of path
func (r *Registry) ForPath(path string) (*Codec, error) {
	ext := Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoExtension, path)
	}
	return r.Lookup(ext)
}

// Ext returns the lower-case extension of path without the dot
func Ext(path string) string {
	return normalizeExt(filepath.Ext(path))
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
