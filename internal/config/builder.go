package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithColour enables or disables ANSI colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Display.Colour = enabled
	return b
}

// WithCapturedPieces controls whether captured pieces are listed.
func (b *ConfigBuilder) WithCapturedPieces(show bool) *ConfigBuilder {
	b.cfg.Display.ShowCaptured = show
	return b
}

// WithHighlightMoves controls whether possible moves are shown before the
// target square is read.
func (b *ConfigBuilder) WithHighlightMoves(enabled bool) *ConfigBuilder {
	b.cfg.Display.HighlightMoves = enabled
	return b
}

// WithPrompt sets the input prompt.
func (b *ConfigBuilder) WithPrompt(prompt string) *ConfigBuilder {
	b.cfg.Input.Prompt = prompt
	return b
}

// WithHistoryFile sets the readline history file.
func (b *ConfigBuilder) WithHistoryFile(path string) *ConfigBuilder {
	b.cfg.Input.HistoryFile = path
	return b
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Input.FEN = fen
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the writer match events are logged to.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
