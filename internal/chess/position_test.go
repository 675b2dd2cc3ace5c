package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessmatch-go/internal/errors"
)

func TestChessPosition_RoundTrip(t *testing.T) {
	seen := map[Position]bool{}
	for col := byte(FirstCol); col <= LastCol; col++ {
		for row := FirstRow; row <= LastRow; row++ {
			cp, err := NewChessPosition(col, row)
			if err != nil {
				t.Fatalf("NewChessPosition(%c, %d) error = %v", col, row, err)
			}
			pos := cp.ToPosition()
			if pos.Row < 0 || pos.Row >= BoardSize || pos.Column < 0 || pos.Column >= BoardSize {
				t.Fatalf("%v.ToPosition() = %v; off the board", cp, pos)
			}
			if seen[pos] {
				t.Errorf("%v maps to %v twice", cp, pos)
			}
			seen[pos] = true

			back, err := FromPosition(pos)
			if err != nil {
				t.Fatalf("FromPosition(%v) error = %v", pos, err)
			}
			if back != cp {
				t.Errorf("FromPosition(%v) = %v; want %v", pos, back, cp)
			}
		}
	}
	if len(seen) != BoardSize*BoardSize {
		t.Errorf("mapped %d cells; want %d", len(seen), BoardSize*BoardSize)
	}
}

func TestChessPosition_ToPosition(t *testing.T) {
	tests := []struct {
		square string
		want   Position
	}{
		{"a8", Position{Row: 0, Column: 0}},
		{"h8", Position{Row: 0, Column: 7}},
		{"a1", Position{Row: 7, Column: 0}},
		{"h1", Position{Row: 7, Column: 7}},
		{"e2", Position{Row: 6, Column: 4}},
		{"d5", Position{Row: 3, Column: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			cp := MustChessPosition(tt.square)
			if got := cp.ToPosition(); got != tt.want {
				t.Errorf("ToPosition() = %v; want %v", got, tt.want)
			}
			if got := cp.String(); got != tt.square {
				t.Errorf("String() = %q; want %q", got, tt.square)
			}
			if got := SquareName(tt.want); got != tt.square {
				t.Errorf("SquareName(%v) = %q; want %q", tt.want, got, tt.square)
			}
		})
	}
}

func TestParseChessPosition(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"e2", "e2", false},
		{" a1 ", "a1", false},
		{"H8", "h8", false},
		{"i1", "", true},
		{"a0", "", true},
		{"a9", "", true},
		{"e", "", true},
		{"e22", "", true},
		{"", "", true},
		{"2e", "", true},
		{"ex", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cp, err := ParseChessPosition(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidPosition) {
					t.Errorf("ParseChessPosition(%q) error = %v; want ErrInvalidPosition", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChessPosition(%q) error = %v", tt.input, err)
			}
			if cp.String() != tt.want {
				t.Errorf("ParseChessPosition(%q) = %v; want %s", tt.input, cp, tt.want)
			}
		})
	}
}

func TestFromPosition_OffBoard(t *testing.T) {
	for _, pos := range []Position{{-1, 0}, {0, 8}, {8, 8}} {
		if _, err := FromPosition(pos); !errors.Is(err, chesserrors.ErrInvalidPosition) {
			t.Errorf("FromPosition(%v) error = %v; want ErrInvalidPosition", pos, err)
		}
		if got := SquareName(pos); got != "??" {
			t.Errorf("SquareName(%v) = %q; want ??", pos, got)
		}
	}
}

func TestChessPosition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cp      ChessPosition
		wantErr bool
	}{
		{"a1", ChessPosition{'a', 1}, false},
		{"h8", ChessPosition{'h', 8}, false},
		{"column off board", ChessPosition{'z', 9}, true},
		{"row off board", ChessPosition{'e', 9}, true},
		{"row zero", ChessPosition{'e', 0}, true},
		{"upper case column", ChessPosition{'E', 2}, true},
		{"zero value", ChessPosition{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cp.Validate()
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidPosition) {
					t.Errorf("Validate() = %v; want ErrInvalidPosition", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v; want nil", err)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"e2-e4", "e2-e4", false},
		{"e2 e4", "e2-e4", false},
		{"e2e4", "e2-e4", false},
		{"  G1-f3 ", "g1-f3", false},
		{"e2-", "", true},
		{"e2-e4-e5", "", true},
		{"e2e9", "", true},
		{"castle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mv, err := ParseMove(tt.input)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidPosition) {
					t.Errorf("ParseMove(%q) error = %v; want ErrInvalidPosition", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) error = %v", tt.input, err)
			}
			if mv.String() != tt.want {
				t.Errorf("ParseMove(%q) = %v; want %s", tt.input, mv, tt.want)
			}
		})
	}
}
