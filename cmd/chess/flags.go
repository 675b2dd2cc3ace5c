// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmatch-go/internal/config"
)

var (
	// Display options
	noColour    = flag.Bool("nocolor", false, "Disable ANSI colours and screen clearing")
	noCaptured  = flag.Bool("nocaptured", false, "Don't list captured pieces")
	noHighlight = flag.Bool("nohighlight", false, "Don't show possible moves before reading the target square")

	// Input options
	historyFile = flag.String("history", "", "Readline history file (interactive terminals only)")
	prompt      = flag.String("prompt", "> ", "Input prompt")
	startFEN    = flag.String("fen", "", "Start from this FEN position instead of the standard setup")

	// Logging
	logFile   = flag.String("log", "", "Write match events to log file")
	verbosity = flag.Int("v", config.Normal, "Log verbosity: 0=quiet, 1=moves, 2=moves and positions")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applyInputFlags(cfg)
	cfg.Verbosity = *verbosity
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.Colour = !*noColour
	cfg.Display.ShowCaptured = !*noCaptured
	cfg.Display.HighlightMoves = !*noHighlight
}

// applyInputFlags configures the prompt, history and starting position.
func applyInputFlags(cfg *config.Config) {
	cfg.Input.Prompt = *prompt
	cfg.Input.HistoryFile = *historyFile
	cfg.Input.FEN = *startFEN
}
