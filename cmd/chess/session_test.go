package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

// playScript runs a session over the given input lines with colours off and
// returns the match and everything written to the screen.
func playScript(t *testing.T, cfg *config.Config, lines ...string) (*engine.Match, string) {
	t.Helper()
	var out bytes.Buffer
	cfg.Display.Colour = false
	cfg.SetOutput(&out)

	logger := log.New(cfg.LogWriter(), "", 0)
	match, err := newMatch(cfg, logger)
	testutil.AssertNoError(t, err)

	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	s := newSession(cfg, match, newScannerReader(input, &out), logger)
	testutil.AssertNoError(t, s.run())
	return match, out.String()
}

func TestSession_FoolsMate(t *testing.T) {
	m, out := playScript(t, config.NewConfig(), "f2-f3", "e7-e5", "g2-g4", "d8-h4")

	testutil.AssertTrue(t, m.IsCheckMate())
	testutil.AssertContains(t, out, "CHECKMATE!\nWinner: Black\n")
	if !strings.HasSuffix(out, "Winner: Black\n") {
		t.Errorf("session should end with the final board, got tail %q", out[len(out)-40:])
	}
}

func TestSession_TwoStepMove(t *testing.T) {
	m, out := playScript(t, config.NewConfig(), "e2", "e4")

	testutil.AssertEqual(t, m.Turn(), 2)
	testutil.AssertEqual(t, testutil.Tag(testutil.PieceAt(m, "e4")), "P")
	testutil.AssertContains(t, out, "Source> e2\n")
	testutil.AssertContains(t, out, "Target> e4\n")
	testutil.AssertContains(t, out, "3 - - - - -*- - - \n", "possible moves highlighted")
	testutil.AssertContains(t, out, "Waiting player: Black\n")
}

func TestSession_NoHighlight(t *testing.T) {
	cfg := config.NewConfigBuilder().WithHighlightMoves(false).Build()
	_, out := playScript(t, cfg, "e2", "e4")

	testutil.AssertNotContains(t, out, "*")
}

func TestSession_ReportsErrors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"illegal target", []string{"e2", "e5"}, "Error: turn 1, White, move e2-e5: the chosen piece can't move to target position\n"},
		{"opponent piece", []string{"e7"}, "Error: turn 1, White, square e7: the chosen piece is not yours\n"},
		{"empty square", []string{"e4-e5"}, "Error: turn 1, White, move e4-e5: there is no piece on source position\n"},
		{"blocked piece", []string{"a1"}, "Error: turn 1, White, square a1: there are no possible moves for the chosen piece\n"},
		{"bad square", []string{"z9"}, "Error: z9: invalid position"},
		{"bad target", []string{"e2", "e9"}, "Error: e9: invalid position"},
		{"bad move", []string{"e2-e4-e6"}, "Error: move \"e2-e4-e6\": invalid position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, out := playScript(t, config.NewConfig(), tt.lines...)

			testutil.AssertContains(t, out, tt.want)
			testutil.AssertEqual(t, m.Turn(), 1, "errors must leave the match unchanged")
			testutil.AssertEqual(t, m.CurrentPlayer(), chess.White)
		})
	}
}

func TestSession_Commands(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"fen", []string{"e2e4", "fen"}, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1\n"},
		{"help", []string{"help"}, helpText},
		{"blank lines ignored", []string{"", "  ", "fen"}, engine.InitialFEN + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out := playScript(t, config.NewConfig(), tt.lines...)
			testutil.AssertContains(t, out, tt.want)
		})
	}
}

func TestSession_QuitStopsReading(t *testing.T) {
	m, _ := playScript(t, config.NewConfig(), "quit", "e2-e4")
	testutil.AssertEqual(t, m.Turn(), 1)
}

func TestSession_NoticeForCapture(t *testing.T) {
	_, out := playScript(t, config.NewConfig(), "e2-e4", "d7-d5", "e4-d5")
	testutil.AssertContains(t, out, "Captured Black Pawn\n")
	testutil.AssertContains(t, out, "Black: [p]\n")
}

func TestSession_StartFromFEN(t *testing.T) {
	cfg := config.NewConfigBuilder().WithFEN("1R5k/R7/8/8/8/8/8/4K3 b - - 0 1").Build()
	_, out := playScript(t, cfg)
	testutil.AssertContains(t, out, "CHECKMATE!\nWinner: White\n")
}

func TestSession_VerboseLogsPositions(t *testing.T) {
	var logBuf bytes.Buffer
	cfg := config.NewConfigBuilder().WithVerbosity(config.Verbose).WithLogFile(&logBuf).Build()
	playScript(t, cfg, "e2-e4")

	testutil.AssertContains(t, logBuf.String(), ": turn 1: White Pawn e2-e4\n")
	testutil.AssertContains(t, logBuf.String(), ": position rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1\n")
}

func TestSession_NormalVerbosityOmitsPositions(t *testing.T) {
	var logBuf bytes.Buffer
	cfg := config.NewConfigBuilder().WithLogFile(&logBuf).Build()
	playScript(t, cfg, "e2-e4")

	testutil.AssertContains(t, logBuf.String(), "White Pawn e2-e4")
	testutil.AssertNotContains(t, logBuf.String(), "position")
}

func TestScannerReader(t *testing.T) {
	var out bytes.Buffer
	r := newScannerReader(strings.NewReader("e2\n"), &out)

	line, err := r.ReadLine("Source> ")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, line, "e2")
	testutil.AssertEqual(t, out.String(), "Source> e2\n")

	_, err = r.ReadLine("Source> ")
	testutil.AssertErrorIs(t, err, io.EOF)
	testutil.AssertNoError(t, r.Close())
}
