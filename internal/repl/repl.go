// ABOUTME: Line-oriented command loop
// ABOUTME: Reads one command per line and redraws the status block after each
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Resonate-Protocol/trimmer/internal/session"
	"github.com/Resonate-Protocol/trimmer/internal/ui"
	"github.com/charmbracelet/x/ansi"
)

// ClearScreen erases the terminal and homes the cursor
var ClearScreen = ansi.EraseEntireScreen + ansi.CursorHomePosition

// REPL reads commands from in and writes prompts and status to out
type REPL struct {
	session *session.Session
	scanner *bufio.Scanner
	out     io.Writer
	width   int
}

// New creates a REPL over s with a progress bar width cells wide
func New(s *session.Session, in io.Reader, out io.Writer, width int) *REPL {
	if width < 1 {
		width = 1
	}
	return &REPL{
		session: s,
		scanner: bufio.NewScanner(in),
		out:     out,
		width:   width,
	}
}

// Run loops until quit or end of input. Playback is stopped on return.
func (r *REPL) Run() error {
	defer func() {
		if err := r.session.StopAudio(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}()

	r.redraw()
	for {
		line, ok := r.ask(session.PromptCommand)
		if !ok {
			return r.scanner.Err()
		}

		cmd, known := session.ParseCommand(line)
		if !known {
			r.redraw()
			continue
		}
		if cmd == session.CmdQuit {
			return nil
		}
		if !r.run(cmd) {
			return r.scanner.Err()
		}
	}
}

// run executes one command; false means input ended mid-command
func (r *REPL) run(cmd session.Command) bool {
	switch cmd {
	case session.CmdPlay:
		r.report(r.session.Play(), "Play failed")
	case session.CmdStopAudio:
		r.report(r.session.StopAudio(), "Stop failed")
	case session.CmdSetStart:
		return r.askSeconds(r.session.SetStart)
	case session.CmdSetEnd:
		return r.askSeconds(r.session.SetEnd)
	case session.CmdSave:
		name, ok := r.ask(session.PromptFileName + "\n")
		if !ok {
			return false
		}
		path, err := r.session.Save(name)
		r.report(err, "Save failed")
		if err == nil {
			fmt.Fprintf(r.out, "Saved %s\n", path)
		}
	case session.CmdSetSource:
		path, ok := r.ask(session.PromptPath)
		if !ok {
			return false
		}
		err := r.session.SetSource(strings.TrimSpace(path))
		r.redraw()
		if err != nil {
			fmt.Fprintln(r.out, session.MsgSourceFail)
		}
	case session.CmdCommandList:
		r.redraw()
		fmt.Fprint(r.out, session.CommandList())
	}
	return true
}

// askSeconds re-prompts until a valid value or "back"
func (r *REPL) askSeconds(set func(float64)) bool {
	for {
		line, ok := r.ask(session.PromptSeconds)
		if !ok {
			return false
		}

		seconds, back, valid := session.ParseSeconds(line)
		if back {
			r.redraw()
			return true
		}
		if valid {
			set(seconds)
			r.redraw()
			return true
		}
	}
}

// ask prints prompt and reads one line
func (r *REPL) ask(prompt string) (string, bool) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		return "", false
	}
	return r.scanner.Text(), true
}

// report redraws the status and prints err under it, if any
func (r *REPL) report(err error, what string) {
	r.redraw()
	if err != nil {
		fmt.Fprintf(r.out, "%s: %v\n", what, err)
	}
}

func (r *REPL) redraw() {
	fmt.Fprint(r.out, ClearScreen)
	fmt.Fprintln(r.out, ui.Status(r.width, r.session))
}
