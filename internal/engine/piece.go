package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Direction and offset tables as {row delta, column delta}.
var (
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// slideMoves walks each direction one square at a time. Empty squares are
// marked, the first opponent square is marked and ends the ray, an own piece
// or the edge ends it unmarked.
func slideMoves(board *chess.Board, from chess.Position, piece *chess.Piece, dirs [][2]int, mat *chess.MoveMatrix) {
	for _, dir := range dirs {
		pos := from.Offset(dir[0], dir[1])
		for board.PositionExists(pos) {
			other := board.Piece(pos)
			if other != nil {
				if other.Colour() != piece.Colour() {
					mat.Mark(pos)
				}
				break // Blocked
			}
			mat.Mark(pos)
			pos = pos.Offset(dir[0], dir[1])
		}
	}
}

// stepMoves marks each fixed offset the piece can occupy.
func stepMoves(board *chess.Board, from chess.Position, piece *chess.Piece, offsets [][2]int, mat *chess.MoveMatrix) {
	for _, off := range offsets {
		pos := from.Offset(off[0], off[1])
		if canOccupy(board, pos, piece) {
			mat.Mark(pos)
		}
	}
}
