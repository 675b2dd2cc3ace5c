// Package engine implements the chess rules: move generation, move
// execution with undo, check and checkmate detection, and the Match that
// ties them into a turn-based game.
package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// MoveContext carries the match-level facts move generation depends on.
type MoveContext struct {
	// EnPassantVulnerable is the pawn that advanced two squares on the
	// previous ply, or nil.
	EnPassantVulnerable *chess.Piece

	// Check is true when the side on move is in check. Castling is disabled
	// while it is set.
	Check bool
}

// PossibleMoves returns the pseudo-legal destinations of the piece standing
// on from. Whether a move would expose the mover's own king is not considered.
// An empty square yields an empty matrix.
func PossibleMoves(board *chess.Board, from chess.Position, ctx MoveContext) chess.MoveMatrix {
	var mat chess.MoveMatrix

	piece := board.Piece(from)
	if piece == nil {
		return mat
	}

	switch piece.Kind() {
	case chess.Pawn:
		pawnMoves(board, from, piece, ctx, &mat)
	case chess.Knight:
		stepMoves(board, from, piece, knightOffsets, &mat)
	case chess.Bishop:
		slideMoves(board, from, piece, diagonalDirs, &mat)
	case chess.Rook:
		slideMoves(board, from, piece, straightDirs, &mat)
	case chess.Queen:
		slideMoves(board, from, piece, diagonalDirs, &mat)
		slideMoves(board, from, piece, straightDirs, &mat)
	case chess.King:
		stepMoves(board, from, piece, kingOffsets, &mat)
		castlingMoves(board, from, piece, ctx, &mat)
	}

	return mat
}

// canOccupy reports whether piece may end its move on pos: the square is on
// the board and either empty or held by an opponent.
func canOccupy(board *chess.Board, pos chess.Position, piece *chess.Piece) bool {
	if !board.PositionExists(pos) {
		return false
	}
	other := board.Piece(pos)
	return other == nil || other.Colour() != piece.Colour()
}

// isOpponentPiece reports whether pos holds a piece of the other colour.
func isOpponentPiece(board *chess.Board, pos chess.Position, colour chess.Colour) bool {
	other := board.Piece(pos)
	return other != nil && other.Colour() != colour
}
