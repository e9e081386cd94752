package main

import "github.com/charmbracelet/bubbles/textinput"

type point struct {
	X, Y int
}

// Session is one open drawing: the registry that owns the canvas, plus the
// file it was last saved to or loaded from.
type Session struct {
	registry *Registry
	config   *Config
	filename string
	dirty    bool
}

type model struct {
	width          int
	height         int
	session        *Session
	mode           Mode
	input          textinput.Model
	history        []string
	historyIndex   int
	confirmAction  ConfirmAction
	confirmLine    string
	confirmPrompt  string
	output         []string
	errorMessage   string
	successMessage string
	helpScroll     int
	config         *Config
}

// Result is what a command hands back to the UI.
type Result struct {
	Message string
	// Lines is extra output shown under the canvas, e.g. from list.
	Lines []string
	Quit  bool
	Help  bool
	// Confirm is set when the command needs a y/n answer before it runs.
	Confirm       bool
	ConfirmAction ConfirmAction
}
