// ABOUTME: Bubbletea model for the trimmer TUI
// ABOUTME: Reads commands and answers, applies them to the session, redraws on a tick
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Resonate-Protocol/trimmer/internal/session"
	"github.com/Resonate-Protocol/trimmer/internal/version"
	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is how often the progress bar is redrawn
const TickInterval = 100 * time.Millisecond

// mode selects what the input line is asking for
type mode int

const (
	modeCommand mode = iota
	modeStart
	modeEnd
	modeFileName
	modePath
)

// tickMsg drives live progress updates
type tickMsg time.Time

// Model represents the TUI state
type Model struct {
	session *session.Session

	mode    mode
	input   []rune
	message string

	// Dimensions
	barWidth int
	maxWidth int
}

// NewModel creates a TUI model over s with a progress bar barWidth cells wide
func NewModel(s *session.Session, barWidth int) Model {
	if barWidth < 1 {
		barWidth = 1
	}
	return Model{
		session:  s,
		barWidth: barWidth,
	}
}

// Init starts the redraw tick
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.maxWidth = msg.Width - 2
	case tickMsg:
		return m, tick()
	}

	return m, nil
}

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(version.String())
	b.WriteString("\n\n")
	b.WriteString(Status(m.width(), m.session))
	b.WriteString("\n\n")

	if m.message != "" {
		b.WriteString(m.message)
		if !strings.HasSuffix(m.message, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.prompt())
	b.WriteString(string(m.input))
	b.WriteString("\n")

	return b.String()
}

// width returns the bar width, narrowed to fit the terminal
func (m Model) width() int {
	if m.maxWidth >= 1 && m.maxWidth < m.barWidth {
		return m.maxWidth
	}
	return m.barWidth
}

func (m Model) prompt() string {
	switch m.mode {
	case modeStart, modeEnd:
		return session.PromptSeconds
	case modeFileName:
		return session.PromptFileName + " "
	case modePath:
		return session.PromptPath
	default:
		return session.PromptCommand
	}
}

// handleKey edits the input line and submits it on enter
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEnter:
		line := string(m.input)
		m.input = nil
		return m.submit(line)
	case tea.KeyEsc:
		m.mode = modeCommand
		m.input = nil
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
	}

	return m, nil
}

// submit applies one completed input line
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeStart, modeEnd:
		return m.submitSeconds(line), nil
	case modeFileName:
		m.mode = modeCommand
		path, err := m.session.Save(line)
		if err != nil {
			m.message = fmt.Sprintf("Save failed: %v", err)
		} else {
			m.message = fmt.Sprintf("Saved %s", path)
		}
		return m, nil
	case modePath:
		m.mode = modeCommand
		if err := m.session.SetSource(strings.TrimSpace(line)); err != nil {
			m.message = session.MsgSourceFail
		} else {
			m.message = ""
		}
		return m, nil
	}

	cmd, ok := session.ParseCommand(line)
	if !ok {
		m.message = ""
		return m, nil
	}
	return m.runCommand(cmd)
}

func (m Model) submitSeconds(line string) Model {
	seconds, back, ok := session.ParseSeconds(line)
	switch {
	case back:
		m.mode = modeCommand
	case ok:
		if m.mode == modeStart {
			m.session.SetStart(seconds)
		} else {
			m.session.SetEnd(seconds)
		}
		m.mode = modeCommand
	}
	return m
}

func (m Model) runCommand(cmd session.Command) (tea.Model, tea.Cmd) {
	m.message = ""

	switch cmd {
	case session.CmdPlay:
		if err := m.session.Play(); err != nil {
			m.message = fmt.Sprintf("Play failed: %v", err)
		}
	case session.CmdStopAudio:
		if err := m.session.StopAudio(); err != nil {
			m.message = err.Error()
		}
	case session.CmdSave:
		m.mode = modeFileName
	case session.CmdSetStart:
		m.mode = modeStart
	case session.CmdSetEnd:
		m.mode = modeEnd
	case session.CmdSetSource:
		m.mode = modePath
	case session.CmdCommandList:
		m.message = session.CommandList()
	case session.CmdQuit:
		return m.quit()
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	_ = m.session.StopAudio()
	return m, tea.Quit
}

// Run starts the TUI and blocks until the user quits
func Run(s *session.Session, barWidth int) error {
	p := tea.NewProgram(NewModel(s, barWidth), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}
