package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// moveRecord holds everything applyMove changed so revertMove can take it back.
type moveRecord struct {
	piece  *chess.Piece
	source chess.Position
	target chess.Position

	captured   *chess.Piece
	capturedAt chess.Position
	enPassant  bool

	castling bool
	rook     *chess.Piece
	rookFrom chess.Position
	rookTo   chess.Position
}

// applyMove moves the piece on source to target, including the castling rook
// relocation and the en passant capture. It assumes the move is pseudo-legal.
func (m *Match) applyMove(source, target chess.Position) moveRecord {
	p := m.board.RemovePiece(source)
	if p == nil {
		panic(&errors.InvariantError{Reason: fmt.Sprintf("no piece to move on %s", chess.SquareName(source))})
	}
	p.IncreaseMoveCount()
	captured := m.board.RemovePiece(target)
	m.mustPlace(p, target)

	rec := moveRecord{piece: p, source: source, target: target}
	if captured != nil {
		rec.captured = captured
		rec.capturedAt = target
		m.roster.capture(captured)
	}

	// Castling: the king moved two columns.
	if p.Kind() == chess.King && abs(target.Column-source.Column) == castlingKingStep {
		rec.castling = true
		rec.rookFrom, rec.rookTo = castlingRookSquares(source, target)
		rec.rook = m.board.RemovePiece(rec.rookFrom)
		if rec.rook == nil {
			panic(&errors.InvariantError{
				Colour: p.Colour().String(),
				Reason: fmt.Sprintf("no castling rook on %s", chess.SquareName(rec.rookFrom)),
			})
		}
		m.mustPlace(rec.rook, rec.rookTo)
		rec.rook.IncreaseMoveCount()
	}

	// En passant: a pawn moved diagonally onto an empty square.
	if p.Kind() == chess.Pawn && source.Column != target.Column && captured == nil {
		pawnAt := chess.Position{Row: source.Row, Column: target.Column}
		victim := m.board.RemovePiece(pawnAt)
		if victim != nil {
			rec.enPassant = true
			rec.captured = victim
			rec.capturedAt = pawnAt
			m.roster.capture(victim)
		}
	}

	return rec
}

// revertMove undoes a move recorded by applyMove, in reverse order.
func (m *Match) revertMove(rec moveRecord) {
	if rec.castling {
		m.board.RemovePiece(rec.rookTo)
		m.mustPlace(rec.rook, rec.rookFrom)
		rec.rook.DecreaseMoveCount()
	}

	m.board.RemovePiece(rec.target)
	m.mustPlace(rec.piece, rec.source)
	rec.piece.DecreaseMoveCount()

	if rec.captured != nil {
		m.mustPlace(rec.captured, rec.capturedAt)
		m.roster.release(rec.captured)
	}
}

// mustPlace places p on pos. A failure means the board and the roster have
// diverged, which is a bug rather than a user error.
func (m *Match) mustPlace(p *chess.Piece, pos chess.Position) {
	if err := m.board.PlacePiece(p, pos); err != nil {
		panic(&errors.InvariantError{Colour: p.Colour().String(), Reason: err.Error()})
	}
}
