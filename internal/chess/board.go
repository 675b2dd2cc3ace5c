package chess

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Board is a rows x columns grid holding at most one piece per cell.
// It knows nothing about chess legality.
type Board struct {
	rows    int
	columns int
	pieces  [][]*Piece
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(rows, columns int) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("creating %dx%d board: %w", rows, columns, errors.ErrInvalidBoard)
	}
	pieces := make([][]*Piece, rows)
	for r := range pieces {
		pieces[r] = make([]*Piece, columns)
	}
	return &Board{rows: rows, columns: columns, pieces: pieces}, nil
}

// NewStandardBoard creates an empty 8x8 board.
func NewStandardBoard() *Board {
	b, _ := NewBoard(BoardSize, BoardSize)
	return b
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Columns returns the number of columns.
func (b *Board) Columns() int {
	return b.columns
}

// Piece returns the piece at pos, or nil if the cell is empty or off the board.
func (b *Board) Piece(pos Position) *Piece {
	if !b.PositionExists(pos) {
		return nil
	}
	return b.pieces[pos.Row][pos.Column]
}

// PlacePiece puts p on an empty cell.
func (b *Board) PlacePiece(p *Piece, pos Position) error {
	if !b.PositionExists(pos) {
		return fmt.Errorf("placing %v at %v: %w", p, pos, errors.ErrPositionNotOnBoard)
	}
	if b.pieces[pos.Row][pos.Column] != nil {
		return fmt.Errorf("placing %v at %v: %w", p, pos, errors.ErrPositionOccupied)
	}
	b.pieces[pos.Row][pos.Column] = p
	return nil
}

// RemovePiece clears the cell at pos and returns what was there.
func (b *Board) RemovePiece(pos Position) *Piece {
	if !b.PositionExists(pos) {
		return nil
	}
	p := b.pieces[pos.Row][pos.Column]
	b.pieces[pos.Row][pos.Column] = nil
	return p
}

// PositionExists reports whether pos lies inside the grid.
func (b *Board) PositionExists(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Column >= 0 && pos.Column < b.columns
}

// HasPiece reports whether pos is on the board and occupied.
func (b *Board) HasPiece(pos Position) bool {
	return b.Piece(pos) != nil
}

// Find returns the position of p on the board.
func (b *Board) Find(p *Piece) (Position, bool) {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.columns; c++ {
			if b.pieces[r][c] == p {
				return Position{Row: r, Column: c}, true
			}
		}
	}
	return Position{}, false
}

// Snapshot returns a copy of the grid, row-major, row 0 first.
func (b *Board) Snapshot() [][]*Piece {
	grid := make([][]*Piece, b.rows)
	for r := range grid {
		grid[r] = make([]*Piece, b.columns)
		copy(grid[r], b.pieces[r])
	}
	return grid
}

// MoveMatrix marks the cells a piece may move to, indexed [row][column].
type MoveMatrix [BoardSize][BoardSize]bool

// Mark sets pos as reachable. Positions off the 8x8 grid are ignored.
func (m *MoveMatrix) Mark(pos Position) {
	if pos.Row < 0 || pos.Row >= BoardSize || pos.Column < 0 || pos.Column >= BoardSize {
		return
	}
	m[pos.Row][pos.Column] = true
}

// Marked reports whether pos is reachable.
func (m *MoveMatrix) Marked(pos Position) bool {
	if pos.Row < 0 || pos.Row >= BoardSize || pos.Column < 0 || pos.Column >= BoardSize {
		return false
	}
	return m[pos.Row][pos.Column]
}

// Any reports whether at least one cell is marked.
func (m *MoveMatrix) Any() bool {
	for r := range m {
		for c := range m[r] {
			if m[r][c] {
				return true
			}
		}
	}
	return false
}

// Count returns the number of marked cells.
func (m *MoveMatrix) Count() int {
	n := 0
	for r := range m {
		for c := range m[r] {
			if m[r][c] {
				n++
			}
		}
	}
	return n
}

// Positions returns the marked cells in row-major order.
func (m *MoveMatrix) Positions() []Position {
	var out []Position
	for r := range m {
		for c := range m[r] {
			if m[r][c] {
				out = append(out, Position{Row: r, Column: c})
			}
		}
	}
	return out
}
