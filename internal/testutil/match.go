package testutil

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// W returns a placement of a white piece on square.
func W(kind chess.PieceKind, square string) engine.Placement {
	return engine.Placement{Square: square, Kind: kind, Colour: chess.White}
}

// B returns a placement of a black piece on square.
func B(kind chess.PieceKind, square string) engine.Placement {
	return engine.Placement{Square: square, Kind: kind, Colour: chess.Black}
}

// Moved marks a placement as having moved once.
func Moved(pl engine.Placement) engine.Placement {
	pl.Moved = true
	return pl
}

// MustMatch builds a match from placements with White to move.
// It calls t.Fatal if the layout is rejected.
func MustMatch(t *testing.T, placements ...engine.Placement) *engine.Match {
	t.Helper()
	m, err := engine.NewMatchFromPlacements(placements, engine.WithID("test"))
	if err != nil {
		t.Fatalf("NewMatchFromPlacements() error: %v", err)
	}
	return m
}

// MustMatchWith builds a match from placements with the given options.
func MustMatchWith(t *testing.T, opts []engine.Option, placements ...engine.Placement) *engine.Match {
	t.Helper()
	m, err := engine.NewMatchFromPlacements(placements, append([]engine.Option{engine.WithID("test")}, opts...)...)
	if err != nil {
		t.Fatalf("NewMatchFromPlacements() error: %v", err)
	}
	return m
}

// MustMove performs from-to and calls t.Fatal if the move is rejected.
func MustMove(t *testing.T, m *engine.Match, from, to string) *chess.Piece {
	t.Helper()
	captured, err := m.PerformMove(chess.MustChessPosition(from), chess.MustChessPosition(to))
	if err != nil {
		t.Fatalf("PerformMove(%s, %s) error: %v", from, to, err)
	}
	return captured
}

// MustMoves plays a sequence of moves such as "e2-e4".
func MustMoves(t *testing.T, m *engine.Match, moves ...string) {
	t.Helper()
	for _, s := range moves {
		mv, err := chess.ParseMove(s)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", s, err)
		}
		if _, err := m.PerformMove(mv.From, mv.To); err != nil {
			t.Fatalf("PerformMove(%v) error: %v", mv, err)
		}
	}
}

// Squares returns the marked squares of mat as sorted algebraic names.
func Squares(mat chess.MoveMatrix) []string {
	var out []string
	for _, pos := range mat.Positions() {
		out = append(out, chess.SquareName(pos))
	}
	sort.Strings(out)
	return out
}

// PieceAt returns the piece on square in m.
func PieceAt(m *engine.Match, square string) *chess.Piece {
	pos := chess.MustChessPosition(square).ToPosition()
	return m.Pieces()[pos.Row][pos.Column]
}

// State is a comparable digest of everything a move may change.
type State struct {
	Rows          [chess.BoardSize]string
	MoveCounts    map[string]int
	Turn          int
	CurrentPlayer chess.Colour
	Check         bool
	CheckMate     bool
	EnPassant     string
	Captured      []string
	InPlay        int
}

// StateOf captures the digest of m. White pieces are upper case, black lower
// case, empty squares '-'.
func StateOf(m *engine.Match) State {
	s := State{
		MoveCounts:    map[string]int{},
		Turn:          m.Turn(),
		CurrentPlayer: m.CurrentPlayer(),
		Check:         m.IsCheck(),
		CheckMate:     m.IsCheckMate(),
		InPlay:        len(m.PiecesInPlay(chess.White)) + len(m.PiecesInPlay(chess.Black)),
	}

	for r, row := range m.Pieces() {
		var sb strings.Builder
		for c, p := range row {
			if p == nil {
				sb.WriteByte('-')
				continue
			}
			sb.WriteString(Tag(p))
			square := chess.SquareName(chess.Position{Row: r, Column: c})
			s.MoveCounts[square] = p.MoveCount()
			if p == m.EnPassantVulnerable() {
				s.EnPassant = square
			}
		}
		s.Rows[r] = sb.String()
	}

	for _, p := range m.CapturedPieces() {
		s.Captured = append(s.Captured, fmt.Sprintf("%s#%d", Tag(p), p.ID()))
	}
	return s
}

// Tag returns the display tag of p, lower case for Black.
func Tag(p *chess.Piece) string {
	if p.Colour() == chess.Black {
		return strings.ToLower(p.String())
	}
	return p.String()
}
