package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// TestDisplayConfig_Defaults verifies DisplayConfig has sensible defaults
func TestDisplayConfig_Defaults(t *testing.T) {
	cfg := NewDisplayConfig()

	if !cfg.Colour {
		t.Error("Colour should be true by default")
	}
	if !cfg.ShowCaptured {
		t.Error("ShowCaptured should be true by default")
	}
	if !cfg.HighlightMoves {
		t.Error("HighlightMoves should be true by default")
	}
}

// TestInputConfig_Defaults verifies InputConfig has sensible defaults
func TestInputConfig_Defaults(t *testing.T) {
	cfg := NewInputConfig()

	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "> ")
	}
	if cfg.HistoryFile != "" {
		t.Errorf("HistoryFile = %q, want empty", cfg.HistoryFile)
	}
	if cfg.FEN != "" {
		t.Errorf("FEN = %q, want empty", cfg.FEN)
	}
}

// TestConfig_Defaults verifies the top level defaults and that they validate
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != Normal {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Normal)
	}
	if cfg.OutputFile != os.Stdout {
		t.Error("OutputFile should default to stdout")
	}
	if cfg.LogFile != io.Discard {
		t.Error("LogFile should default to io.Discard")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfig_LogWriter verifies verbosity gates the log
func TestConfig_LogWriter(t *testing.T) {
	buf := &bytes.Buffer{}

	tests := []struct {
		name      string
		verbosity int
		logFile   io.Writer
		want      io.Writer
	}{
		{"quiet discards", Quiet, buf, io.Discard},
		{"normal logs", Normal, buf, buf},
		{"verbose logs", Verbose, buf, buf},
		{"nil log file", Normal, nil, io.Discard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfigBuilder().WithVerbosity(tt.verbosity).WithLogFile(tt.logFile).Build()
			if got := cfg.LogWriter(); got != tt.want {
				t.Errorf("LogWriter() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestConfig_Validate verifies struct tag validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantErr   bool
		wantField string
	}{
		{
			name: "valid custom config",
			cfg: NewConfigBuilder().
				WithVerbosity(Verbose).
				WithPrompt("move> ").
				WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
				Build(),
		},
		{
			name:      "verbosity too high",
			cfg:       NewConfigBuilder().WithVerbosity(3).Build(),
			wantErr:   true,
			wantField: "Verbosity must be at most 2",
		},
		{
			name:      "negative verbosity",
			cfg:       NewConfigBuilder().WithVerbosity(-1).Build(),
			wantErr:   true,
			wantField: "Verbosity must be at least 0",
		},
		{
			name:      "empty prompt",
			cfg:       NewConfigBuilder().WithPrompt("").Build(),
			wantErr:   true,
			wantField: "Prompt is required",
		},
		{
			name:      "long prompt",
			cfg:       NewConfigBuilder().WithPrompt(strings.Repeat(">", 33)).Build(),
			wantErr:   true,
			wantField: "Prompt must be at most 32 characters",
		},
		{
			name:      "bad FEN",
			cfg:       NewConfigBuilder().WithFEN("not a position").Build(),
			wantErr:   true,
			wantField: "FEN is not a valid FEN string",
		},
		{
			name:      "missing output",
			cfg:       NewConfigBuilder().WithOutput(nil).Build(),
			wantErr:   true,
			wantField: "OutputFile is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.wantField)
			}
		})
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithColour(false).
		WithCapturedPieces(false).
		WithHighlightMoves(false).
		WithHistoryFile("/tmp/chess_history").
		WithOutput(out).
		Build()

	if cfg.Display.Colour {
		t.Error("Display.Colour should be false")
	}
	if cfg.Display.ShowCaptured {
		t.Error("Display.ShowCaptured should be false")
	}
	if cfg.Display.HighlightMoves {
		t.Error("Display.HighlightMoves should be false")
	}
	if cfg.Input.HistoryFile != "/tmp/chess_history" {
		t.Errorf("HistoryFile = %q, want /tmp/chess_history", cfg.Input.HistoryFile)
	}
	if cfg.OutputFile != out {
		t.Error("WithOutput did not set OutputFile")
	}
}
