package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// pawnDirection returns the row delta of a forward pawn step.
// White moves toward row 0 (rank 8), Black toward row 7.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// pawnMoves marks forward steps, the initial double step, diagonal captures
// and the en passant capture.
func pawnMoves(board *chess.Board, from chess.Position, piece *chess.Piece, ctx MoveContext, mat *chess.MoveMatrix) {
	colour := piece.Colour()
	dir := pawnDirection(colour)

	one := from.Offset(dir, 0)
	if board.PositionExists(one) && !board.HasPiece(one) {
		mat.Mark(one)

		two := from.Offset(2*dir, 0)
		if piece.MoveCount() == 0 && board.PositionExists(two) && !board.HasPiece(two) {
			mat.Mark(two)
		}
	}

	for _, dc := range []int{-1, 1} {
		diag := from.Offset(dir, dc)
		if !board.PositionExists(diag) {
			continue
		}
		if isOpponentPiece(board, diag, colour) {
			mat.Mark(diag)
			continue
		}

		// En passant: the vulnerable pawn stands beside us, the square it
		// skipped over is empty.
		beside := from.Offset(0, dc)
		vulnerable := ctx.EnPassantVulnerable
		if vulnerable != nil && vulnerable.Colour() != colour &&
			board.Piece(beside) == vulnerable && !board.HasPiece(diag) {
			mat.Mark(diag)
		}
	}
}
