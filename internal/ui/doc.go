// ABOUTME: Terminal UI package
// ABOUTME: Progress rendering and the bubbletea front-end
// Package ui renders the trim window as a one-line progress bar and drives a
// session from a bubbletea program.
//
// RenderProgress is pure and is shared with the line prompt front-end.
package ui
