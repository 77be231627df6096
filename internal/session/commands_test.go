// ABOUTME: Tests for command parsing
// ABOUTME: Covers tokens, numeric answers and the numbered list
package session

import (
	"strings"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  Command
		ok    bool
	}{
		{"play", CmdPlay, true},
		{"  save\n", CmdSave, true},
		{"set_source", CmdSetSource, true},
		{"Play", "", false},
		{"", "", false},
		{"play now", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCommand(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseCommand(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		input string
		value float64
		back  bool
		ok    bool
	}{
		{"1.5", 1.5, false, true},
		{" 0 ", 0, false, true},
		{"back", 0, true, false},
		{"-1", 0, false, false},
		{"NaN", 0, false, false},
		{"Inf", 0, false, false},
		{"abc", 0, false, false},
		{"", 0, false, false},
	}

	for _, tt := range tests {
		v, back, ok := ParseSeconds(tt.input)
		if v != tt.value || back != tt.back || ok != tt.ok {
			t.Errorf("ParseSeconds(%q) = %v, %v, %v; want %v, %v, %v",
				tt.input, v, back, ok, tt.value, tt.back, tt.ok)
		}
	}
}

func TestCommandList(t *testing.T) {
	list := CommandList()
	lines := strings.Split(strings.TrimSuffix(list, "\n"), "\n")

	if len(lines) != len(Commands) {
		t.Fatalf("expected %d lines, got %d", len(Commands), len(lines))
	}
	if lines[0] != "1. play" || lines[7] != "8. set_source" {
		t.Errorf("unexpected list:\n%s", list)
	}
}
