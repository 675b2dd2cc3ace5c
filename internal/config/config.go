// Package config provides configuration for the chess console.
package config

import (
	"io"
	"os"
)

// Verbosity levels.
const (
	Quiet   = 0 // nothing is logged
	Normal  = 1 // match events: moves, rejected moves, check and checkmate
	Verbose = 2 // match events plus the position after every move
)

// DisplayConfig holds settings related to board rendering.
type DisplayConfig struct {
	// Colour enables ANSI colours and screen clearing. Without it highlighted
	// squares are marked with a trailing asterisk.
	Colour bool

	// ShowCaptured prints the captured pieces of both colours under the board.
	ShowCaptured bool

	// HighlightMoves redraws the board with the possible moves of the
	// selected piece before asking for the target square.
	HighlightMoves bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		Colour:         true,
		ShowCaptured:   true,
		HighlightMoves: true,
	}
}

// InputConfig holds settings for reading moves.
type InputConfig struct {
	// Prompt is printed before reading a square.
	Prompt string `validate:"required,max=32"`

	// HistoryFile keeps readline history between sessions. Empty disables it.
	HistoryFile string

	// FEN sets up the starting position. Empty means the standard position.
	FEN string `validate:"omitempty,fen"`
}

// NewInputConfig creates an InputConfig with default values.
func NewInputConfig() *InputConfig {
	return &InputConfig{
		Prompt: "> ",
	}
}

// Config holds all program configuration.
type Config struct {
	Display DisplayConfig
	Input   InputConfig

	Verbosity int `validate:"min=0,max=2"`

	// Output streams
	OutputFile io.Writer `validate:"required"`
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Display:    *NewDisplayConfig(),
		Input:      *NewInputConfig(),
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    io.Discard,
	}
}

// SetOutput sets the writer the board and messages are printed to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// LogWriter returns the writer match events go to at the configured
// verbosity.
func (c *Config) LogWriter() io.Writer {
	if c.Verbosity == Quiet || c.LogFile == nil {
		return io.Discard
	}
	return c.LogFile
}
