// ABOUTME: Trim window over a sample buffer
// ABOUTME: Stores raw start/end markers; validation happens when a slice is taken
package session

// TrimWindow marks the region to play and export, in seconds. Setters store
// values as given; an inverted or oversized window is only rejected when
// Buffer.Slice is called for play or save.
type TrimWindow struct {
	start float64
	end   float64
}

// NewTrimWindow creates a window covering [start, end]
func NewTrimWindow(start, end float64) TrimWindow {
	return TrimWindow{start: start, end: end}
}

// Start returns the start marker
func (t TrimWindow) Start() float64 {
	return t.start
}

// End returns the end marker
func (t TrimWindow) End() float64 {
	return t.end
}

// SetStart moves the start marker
func (t *TrimWindow) SetStart(seconds float64) {
	t.start = seconds
}

// SetEnd moves the end marker
func (t *TrimWindow) SetEnd(seconds float64) {
	t.end = seconds
}

// Reset selects the whole buffer
func (t *TrimWindow) Reset(duration float64) {
	t.start = 0
	t.end = duration
}
