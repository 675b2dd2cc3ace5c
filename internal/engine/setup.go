package engine

import (
	"fmt"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Placement puts one piece on a square when building a match.
type Placement struct {
	Square string // e.g. "e1"
	Kind   chess.PieceKind
	Colour chess.Colour

	// Moved marks the piece as having moved once, which disables castling
	// with it and the pawn double step.
	Moved bool
}

var backRank = []chess.PieceKind{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// StandardPlacements returns the 32 pieces of the standard starting position.
func StandardPlacements() []Placement {
	placements := make([]Placement, 0, 4*chess.BoardSize)
	for col := 0; col < chess.BoardSize; col++ {
		file := string(rune(chess.ColBase + col))
		placements = append(placements,
			Placement{Square: file + "1", Kind: backRank[col], Colour: chess.White},
			Placement{Square: file + "2", Kind: chess.Pawn, Colour: chess.White},
			Placement{Square: file + "7", Kind: chess.Pawn, Colour: chess.Black},
			Placement{Square: file + "8", Kind: backRank[col], Colour: chess.Black},
		)
	}
	return placements
}

// NewMatch creates a match in the standard starting position with White to move.
func NewMatch(opts ...Option) *Match {
	m, err := NewMatchFromPlacements(StandardPlacements(), opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// NewMatchFromPlacements creates a match from an arbitrary layout. The layout
// must have exactly one king per colour, and the side not on move must not be
// in check.
func NewMatchFromPlacements(placements []Placement, opts ...Option) (*Match, error) {
	return newMatchFromSetup(placements, "", opts)
}

// newMatchFromSetup builds the match and, when enPassant names the square
// behind a pawn that just advanced two squares, marks that pawn vulnerable
// before check and checkmate are evaluated.
func newMatchFromSetup(placements []Placement, enPassant string, opts []Option) (*Match, error) {
	m := newMatch(opts)

	kings := map[chess.Colour]int{}
	for _, pl := range placements {
		if err := m.placeNewPiece(pl); err != nil {
			return nil, err
		}
		if pl.Kind == chess.King {
			kings[pl.Colour]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if kings[colour] != 1 {
			return nil, fmt.Errorf("%v has %d kings: %w", colour, kings[colour], errors.ErrInvalidSetup)
		}
	}

	if enPassant != "" {
		if err := m.markEnPassant(enPassant); err != nil {
			return nil, err
		}
	}

	if m.testCheck(m.currentPlayer.Opposite()) {
		return nil, fmt.Errorf("%v is in check but not on move: %w", m.currentPlayer.Opposite(), errors.ErrInvalidSetup)
	}

	m.check = m.testCheck(m.currentPlayer)
	m.checkMate = m.check && m.testCheckMate(m.currentPlayer)
	if m.checkMate {
		// After checkmate the current player is the winner.
		m.currentPlayer = m.currentPlayer.Opposite()
	}

	m.logger.Printf("match %s: new match with %d pieces, %v to move", m.id, len(placements), m.currentPlayer)
	return m, nil
}

// markEnPassant finds the opposing pawn in front of the target square and
// records it as vulnerable.
func (m *Match) markEnPassant(square string) error {
	target, err := chess.ParseChessPosition(square)
	if err != nil {
		return errors.Wrap(err, "en passant square")
	}
	pawnAt := target.ToPosition().Offset(-pawnDirection(m.currentPlayer), 0)
	p := m.board.Piece(pawnAt)
	if p == nil || p.Kind() != chess.Pawn || p.Colour() == m.currentPlayer {
		return fmt.Errorf("no pawn to capture en passant on %s: %w", square, errors.ErrInvalidSetup)
	}
	m.enPassantVulnerable = p
	return nil
}

// placeNewPiece adds a piece to the roster and puts it on its square.
func (m *Match) placeNewPiece(pl Placement) error {
	square, err := chess.ParseChessPosition(pl.Square)
	if err != nil {
		return errors.Wrapf(err, "placing %v %v", pl.Colour, pl.Kind)
	}
	pos := square.ToPosition()
	if m.board.HasPiece(pos) {
		return fmt.Errorf("placing %v %v on %s: %w", pl.Colour, pl.Kind, square, errors.ErrPositionOccupied)
	}

	p := m.roster.add(pl.Kind, pl.Colour)
	if pl.Moved {
		p.IncreaseMoveCount()
	}
	return m.board.PlacePiece(p, pos)
}
