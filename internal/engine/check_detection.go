package engine

import (
	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// king returns the in-play king of colour and its square.
// A missing king is an invariant violation and panics.
func (m *Match) king(colour chess.Colour) (*chess.Piece, chess.Position) {
	for _, p := range m.roster.inPlayPieces(colour) {
		if p.Kind() != chess.King {
			continue
		}
		pos, ok := m.board.Find(p)
		if !ok {
			panic(&errors.InvariantError{Colour: colour.String(), Reason: "king in play but not on the board"})
		}
		return p, pos
	}
	panic(&errors.InvariantError{Colour: colour.String(), Reason: "no king on the board"})
}

// testCheck returns true if the king of colour is attacked by any in-play
// opposing piece.
func (m *Match) testCheck(colour chess.Colour) bool {
	_, kingPos := m.king(colour)
	ctx := m.moveContext()

	for _, p := range m.roster.inPlayPieces(colour.Opposite()) {
		pos, ok := m.board.Find(p)
		if !ok {
			continue
		}
		mat := PossibleMoves(m.board, pos, ctx)
		if mat.Marked(kingPos) {
			return true
		}
	}
	return false
}
