// ABOUTME: Progress bar rendering for the trim window
// ABOUTME: Pure functions mapping trim and play-head onto fixed-width text
package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Resonate-Protocol/trimmer/internal/session"
	"github.com/charmbracelet/lipgloss"
)

const (
	fillGlyph  = "#"
	blankGlyph = " "
)

// HeadStyle highlights the play-head cell
var HeadStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FFA500")).
	Background(lipgloss.Color("#FFA500"))

// RenderProgress draws the bracketed bar and the position line. Cells whose
// index lies within [start, end] scaled to width are filled; while active
// the cell at position is drawn with head. position is in buffer time and
// duration must be positive.
func RenderProgress(width int, duration, start, end, position float64, active bool, head lipgloss.Style) string {
	startCell := start / duration * float64(width)
	endCell := end / duration * float64(width)
	headCell := -1
	if active {
		headCell = int(math.Ceil(position / duration * float64(width)))
	}

	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < width; i++ {
		cell := float64(i)
		switch {
		case cell < startCell || cell > endCell:
			b.WriteString(blankGlyph)
		case i == headCell:
			b.WriteString(head.Render(fillGlyph))
		default:
			b.WriteString(fillGlyph)
		}
	}
	b.WriteString("]\n")

	fmt.Fprintf(&b, "%s/%s", formatSeconds(RoundDown(position, 2)), formatSeconds(RoundDown(duration, 2)))
	return b.String()
}

// RoundDown truncates v toward zero at the given number of decimal places
func RoundDown(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Trunc(v*scale) / scale
}

// Status renders the source line, the progress bar and the position line
// for a session
func Status(width int, s *session.Session) string {
	trim := s.Trim()
	pb := s.Playback()

	bar := RenderProgress(width, s.Buffer().Duration(), trim.Start(), trim.End(), pb.Position(trim), pb.Active(), HeadStyle)
	return fmt.Sprintf("File: %s\nStatus:\n%s", s.Path(), bar)
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
