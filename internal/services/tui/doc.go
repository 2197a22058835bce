// Package tui runs the landing and echo views in a terminal.
//
// State and rendering live next to the input: each keystroke updates the
// echo view in-process and bubbletea redraws the screen.
package tui
