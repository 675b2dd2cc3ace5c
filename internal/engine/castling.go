package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Column distances from the king to the castling rooks.
const (
	kingsideRookDistance  = 3
	queensideRookDistance = 4
	castlingKingStep      = 2
)

// castlingMoves marks the castling destinations of an unmoved king that is
// not in check. Squares the king passes over are not tested for attack;
// only the destination is checked later by the self-check test.
func castlingMoves(board *chess.Board, from chess.Position, king *chess.Piece, ctx MoveContext, mat *chess.MoveMatrix) {
	if king.MoveCount() != 0 || ctx.Check {
		return
	}

	if canCastleWith(board, from.Offset(0, kingsideRookDistance), king.Colour()) &&
		pathClear(board, from, 1, kingsideRookDistance) {
		mat.Mark(from.Offset(0, castlingKingStep))
	}

	if canCastleWith(board, from.Offset(0, -queensideRookDistance), king.Colour()) &&
		pathClear(board, from, -1, queensideRookDistance) {
		mat.Mark(from.Offset(0, -castlingKingStep))
	}
}

// canCastleWith reports whether pos holds an unmoved rook of the given colour.
func canCastleWith(board *chess.Board, pos chess.Position, colour chess.Colour) bool {
	p := board.Piece(pos)
	return p != nil && p.Kind() == chess.Rook && p.Colour() == colour && p.MoveCount() == 0
}

// pathClear reports whether the squares strictly between the king and the
// rook distance columns away in direction dir are empty.
func pathClear(board *chess.Board, from chess.Position, dir, distance int) bool {
	for step := 1; step < distance; step++ {
		if board.HasPiece(from.Offset(0, dir*step)) {
			return false
		}
	}
	return true
}

// castlingRookSquares returns where the rook starts and ends when the king
// castles from source to target.
func castlingRookSquares(source, target chess.Position) (from, to chess.Position) {
	if target.Column > source.Column {
		return source.Offset(0, kingsideRookDistance), source.Offset(0, 1)
	}
	return source.Offset(0, -queensideRookDistance), source.Offset(0, -1)
}
