// ABOUTME: Command vocabulary shared by the line prompt and the TUI
// ABOUTME: Parses command tokens and second-line numeric answers
package session

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Command is one token of the command vocabulary
type Command string

const (
	CmdPlay        Command = "play"
	CmdSave        Command = "save"
	CmdSetStart    Command = "set_start"
	CmdSetEnd      Command = "set_end"
	CmdQuit        Command = "quit"
	CmdStopAudio   Command = "stop_audio"
	CmdCommandList Command = "command_list"
	CmdSetSource   Command = "set_source"
)

// Commands lists the vocabulary in display order
var Commands = []Command{
	CmdPlay,
	CmdSave,
	CmdSetStart,
	CmdSetEnd,
	CmdQuit,
	CmdStopAudio,
	CmdCommandList,
	CmdSetSource,
}

// Prompt and message texts
const (
	PromptCommand  = `Enter a command ("command_list"): `
	PromptSeconds  = "Enter a value \nValue must be positive\nType \"back\" to go back\nPosition in seconds: "
	PromptFileName = "Enter a file name:"
	PromptPath     = "Enter a file path: "
	MsgSourceFail  = "SOURCE COULD NOT BE UPDATED"

	backToken = "back"
)

// ParseCommand matches a trimmed input line against the vocabulary.
// Matching is case-sensitive.
func ParseCommand(line string) (Command, bool) {
	token := Command(strings.TrimSpace(line))
	for _, c := range Commands {
		if c == token {
			return c, true
		}
	}
	return "", false
}

// ParseSeconds reads the answer to a set_start/set_end prompt. back is true
// for the literal "back"; ok is true for a finite, non-negative number.
// Anything else should re-prompt.
func ParseSeconds(line string) (seconds float64, back bool, ok bool) {
	line = strings.TrimSpace(line)
	if line == backToken {
		return 0, true, false
	}

	v, err := strconv.ParseFloat(line, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false, false
	}
	return v, false, true
}

// CommandList renders the numbered vocabulary
func CommandList() string {
	var b strings.Builder
	for i, c := range Commands {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}
	return b.String()
}
