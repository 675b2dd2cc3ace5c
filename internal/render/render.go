// Package render draws a chess match as text, optionally with ANSI colours.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/config"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// Footer is the column legend printed under the board.
const Footer = "  a b c d e f g h"

const clearScreen = "\033[H\033[2J"

// BoardRenderer writes boards and match summaries to an io.Writer.
type BoardRenderer struct {
	w   io.Writer
	cfg config.DisplayConfig

	white     *color.Color
	black     *color.Color
	highlight *color.Color
	alert     *color.Color
}

// NewBoardRenderer creates a renderer. Colours are forced on or off by
// cfg.Colour regardless of whether w is a terminal.
func NewBoardRenderer(w io.Writer, cfg config.DisplayConfig) *BoardRenderer {
	r := &BoardRenderer{
		w:         w,
		cfg:       cfg,
		white:     color.New(color.FgHiWhite, color.Bold),
		black:     color.New(color.FgYellow, color.Bold),
		highlight: color.New(color.BgBlue),
		alert:     color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{r.white, r.black, r.highlight, r.alert} {
		if cfg.Colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// RenderBoard writes the grid, row 0 first labelled 8, followed by the
// column footer. Cells marked in moves are highlighted; moves may be nil.
func (r *BoardRenderer) RenderBoard(pieces [][]*chess.Piece, moves *chess.MoveMatrix) error {
	var sb strings.Builder
	r.writeBoard(&sb, pieces, moves)
	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *BoardRenderer) writeBoard(sb *strings.Builder, pieces [][]*chess.Piece, moves *chess.MoveMatrix) {
	for row, cells := range pieces {
		fmt.Fprintf(sb, "%d ", len(pieces)-row)
		for col, p := range cells {
			marked := moves != nil && moves.Marked(chess.Position{Row: row, Column: col})
			r.writeCell(sb, p, marked)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(Footer)
	sb.WriteByte('\n')
}

// writeCell writes one cell and its trailing separator. Without colours a
// marked cell ends in '*' instead of a space so the board keeps its width.
func (r *BoardRenderer) writeCell(sb *strings.Builder, p *chess.Piece, marked bool) {
	text := "-"
	if p != nil {
		text = r.tag(p)
	}

	switch {
	case marked && r.cfg.Colour:
		sb.WriteString(r.highlight.Sprint(text))
		sb.WriteByte(' ')
	case marked:
		sb.WriteString(text)
		sb.WriteByte('*')
	default:
		sb.WriteString(text)
		sb.WriteByte(' ')
	}
}

// tag returns the display tag of p. With colours off, black tags are lower case.
func (r *BoardRenderer) tag(p *chess.Piece) string {
	if !r.cfg.Colour {
		if p.Colour() == chess.Black {
			return strings.ToLower(p.String())
		}
		return p.String()
	}
	if p.Colour() == chess.Black {
		return r.black.Sprint(p.String())
	}
	return r.white.Sprint(p.String())
}

// RenderMatch writes the board followed by the captured pieces, the turn and
// either the player to move or the winner.
func (r *BoardRenderer) RenderMatch(m *engine.Match, moves *chess.MoveMatrix) error {
	var sb strings.Builder
	r.writeBoard(&sb, m.Pieces(), moves)
	sb.WriteByte('\n')

	if r.cfg.ShowCaptured {
		r.writeCaptured(&sb, m.CapturedPieces())
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "Turn: %d\n", m.Turn())
	if !m.IsCheckMate() {
		fmt.Fprintf(&sb, "Waiting player: %v\n", m.CurrentPlayer())
		if m.IsCheck() {
			sb.WriteString(r.alert.Sprint("CHECK!"))
			sb.WriteByte('\n')
		}
	} else {
		sb.WriteString(r.alert.Sprint("CHECKMATE!"))
		sb.WriteByte('\n')
		fmt.Fprintf(&sb, "Winner: %v\n", m.CurrentPlayer())
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

func (r *BoardRenderer) writeCaptured(sb *strings.Builder, captured []*chess.Piece) {
	sb.WriteString("Captured pieces:\n")
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		var tags []string
		for _, p := range captured {
			if p.Colour() == colour {
				tags = append(tags, r.tag(p))
			}
		}
		fmt.Fprintf(sb, "%v: [%s]\n", colour, strings.Join(tags, ", "))
	}
}

// ClearScreen moves the cursor home and clears the terminal. It writes
// nothing when colours are off, so piped output stays plain.
func (r *BoardRenderer) ClearScreen() error {
	if !r.cfg.Colour {
		return nil
	}
	_, err := io.WriteString(r.w, clearScreen)
	return err
}
