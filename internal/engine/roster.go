package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// roster tracks every piece placed in a match. A piece is either in play or
// captured; capture moves it across exactly once and only an undo moves it back.
type roster struct {
	arena    []*chess.Piece // indexed by PieceID
	inPlay   []bool         // indexed by PieceID
	captured []chess.PieceID
}

// add creates a new in-play piece with the next free ID.
func (r *roster) add(kind chess.PieceKind, colour chess.Colour) *chess.Piece {
	p := chess.NewPiece(chess.PieceID(len(r.arena)), kind, colour)
	r.arena = append(r.arena, p)
	r.inPlay = append(r.inPlay, true)
	return p
}

// capture transfers p from in play to captured.
func (r *roster) capture(p *chess.Piece) {
	id := p.ID()
	if !r.inPlay[id] {
		panic(&errors.InvariantError{
			Colour: p.Colour().String(),
			Reason: fmt.Sprintf("%v #%d captured twice", p.Kind(), id),
		})
	}
	r.inPlay[id] = false
	r.captured = append(r.captured, id)
}

// release reverses the most recent capture, which must be p.
func (r *roster) release(p *chess.Piece) {
	n := len(r.captured)
	if n == 0 || r.captured[n-1] != p.ID() {
		panic(&errors.InvariantError{
			Colour: p.Colour().String(),
			Reason: fmt.Sprintf("%v #%d is not the last captured piece", p.Kind(), p.ID()),
		})
	}
	r.captured = r.captured[:n-1]
	r.inPlay[p.ID()] = true
}

// isInPlay reports whether p is still on the board.
func (r *roster) isInPlay(p *chess.Piece) bool {
	return r.inPlay[p.ID()]
}

// inPlayPieces returns the in-play pieces of colour in ID order.
func (r *roster) inPlayPieces(colour chess.Colour) []*chess.Piece {
	var out []*chess.Piece
	for id, p := range r.arena {
		if r.inPlay[id] && p.Colour() == colour {
			out = append(out, p)
		}
	}
	return out
}

// capturedPieces returns the captured pieces in capture order.
func (r *roster) capturedPieces() []*chess.Piece {
	out := make([]*chess.Piece, 0, len(r.captured))
	for _, id := range r.captured {
		out = append(out, r.arena[id])
	}
	return out
}
