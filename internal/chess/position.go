package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Position addresses a board cell by zero-based row and column.
// Row 0 is the topmost rank as rendered (rank 8).
type Position struct {
	Row    int
	Column int
}

// String returns the position as "(row, column)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Column)
}

// Offset returns the position moved by the given row and column deltas.
func (p Position) Offset(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Column: p.Column + dCol}
}

// ChessPosition addresses a square the way players do: a column letter
// 'a'..'h' and a row number 1..8.
type ChessPosition struct {
	Column byte
	Row    int
}

// NewChessPosition validates column and row and returns the square.
func NewChessPosition(column byte, row int) (ChessPosition, error) {
	cp := ChessPosition{Column: column, Row: row}
	if err := cp.Validate(); err != nil {
		return ChessPosition{}, err
	}
	return cp, nil
}

// Validate reports ErrInvalidPosition unless the square is on the board.
// The zero value is not a valid square.
func (cp ChessPosition) Validate() error {
	if cp.Column < FirstCol || cp.Column > LastCol || cp.Row < FirstRow || cp.Row > LastRow {
		return fmt.Errorf("%c%d: %w", cp.Column, cp.Row, errors.ErrInvalidPosition)
	}
	return nil
}

// ParseChessPosition parses a two character square such as "e2".
func ParseChessPosition(s string) (ChessPosition, error) {
	s = strings.TrimSpace(s)
	if len(s) != 2 {
		return ChessPosition{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidPosition)
	}
	column := s[0]
	if column >= 'A' && column <= 'H' {
		column += 'a' - 'A'
	}
	if s[1] < '0' || s[1] > '9' {
		return ChessPosition{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidPosition)
	}
	return NewChessPosition(column, int(s[1]-'0'))
}

// MustChessPosition parses s and panics if it is not a valid square.
// It is intended for fixed tables and tests.
func MustChessPosition(s string) ChessPosition {
	cp, err := ParseChessPosition(s)
	if err != nil {
		panic(err)
	}
	return cp
}

// ToPosition converts the square into internal board coordinates.
func (cp ChessPosition) ToPosition() Position {
	return Position{Row: BoardSize - cp.Row, Column: int(cp.Column - ColBase)}
}

// String returns the square in algebraic form, e.g. "e2".
func (cp ChessPosition) String() string {
	return fmt.Sprintf("%c%d", cp.Column, cp.Row)
}

// FromPosition converts internal board coordinates into a square.
func FromPosition(p Position) (ChessPosition, error) {
	if p.Row < 0 || p.Row >= BoardSize || p.Column < 0 || p.Column >= BoardSize {
		return ChessPosition{}, fmt.Errorf("%v: %w", p, errors.ErrInvalidPosition)
	}
	return ChessPosition{Column: byte(ColBase + p.Column), Row: BoardSize - p.Row}, nil
}

// SquareName returns the algebraic name of p, or "??" when p is off the board.
func SquareName(p Position) string {
	cp, err := FromPosition(p)
	if err != nil {
		return "??"
	}
	return cp.String()
}
