// ABOUTME: Line prompt package
// ABOUTME: Plain stdin/stdout front-end for terminals without the TUI
// Package repl drives a session from line-oriented input. It prints the
// same prompts and status block as the TUI, redrawing the screen after each
// command instead of on a timer.
package repl
