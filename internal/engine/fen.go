package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FENPosition is the part of a FEN record a Match can be built from.
// Kings and rooks without a castling right, and pawns off their home rank,
// are marked as moved.
type FENPosition struct {
	Placements []Placement
	ToMove     chess.Colour
	EnPassant  string // target square behind the vulnerable pawn, or ""
}

// kindFromFENChar converts a FEN character to a piece kind.
func kindFromFENChar(c rune) (chess.PieceKind, bool) {
	switch unicode.ToUpper(c) {
	case 'K':
		return chess.King, true
	case 'Q':
		return chess.Queen, true
	case 'R':
		return chess.Rook, true
	case 'N':
		return chess.Knight, true
	case 'B':
		return chess.Bishop, true
	case 'P':
		return chess.Pawn, true
	default:
		return 0, false
	}
}

// ParseFEN parses the placement, side to move, castling and en passant
// fields of a FEN string. The clock fields are accepted and ignored.
func ParseFEN(fen string) (FENPosition, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return FENPosition{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	var pos FENPosition
	placements, err := parsePiecePositions(parts[0])
	if err != nil {
		return FENPosition{}, err
	}

	if len(parts) >= 2 {
		switch parts[1] {
		case "w":
			pos.ToMove = chess.White
		case "b":
			pos.ToMove = chess.Black
		default:
			return FENPosition{}, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
		}
	}

	castling := "-"
	if len(parts) >= 3 {
		castling = parts[2]
	}
	if err := applyCastlingRights(placements, castling); err != nil {
		return FENPosition{}, err
	}

	if len(parts) >= 4 && parts[3] != "-" {
		if _, err := chess.ParseChessPosition(parts[3]); err != nil {
			return FENPosition{}, fmt.Errorf("invalid en passant square %s: %w", parts[3], errors.ErrInvalidFEN)
		}
		pos.EnPassant = parts[3]
	}

	pos.Placements = placements
	return pos, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) ([]Placement, error) {
	var placements []Placement
	row := chess.LastRow
	col := byte(chess.FirstCol)

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.LastCol+1 {
				return nil, fmt.Errorf("rank %d has %d squares: %w", row, col-chess.FirstCol, errors.ErrInvalidFEN)
			}
			row--
			col = chess.FirstCol
		case c >= '1' && c <= '8':
			col += byte(c - '0')
		default:
			kind, ok := kindFromFENChar(c)
			if !ok {
				return nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col > chess.LastCol || row < chess.FirstRow {
				return nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			pl := Placement{Square: fmt.Sprintf("%c%d", col, row), Kind: kind, Colour: colour}
			if kind == chess.Pawn && row != pawnHomeRow(colour) {
				pl.Moved = true
			}
			placements = append(placements, pl)
			col++
		}
	}

	if row != chess.FirstRow || col != chess.LastCol+1 {
		return nil, fmt.Errorf("placement %q does not cover the board: %w", positions, errors.ErrInvalidFEN)
	}
	return placements, nil
}

// applyCastlingRights marks every king and rook as moved, then clears the
// mark on the king and rook of each right listed in the castling field.
func applyCastlingRights(placements []Placement, field string) error {
	index := make(map[string]int, len(placements))
	for i := range placements {
		if placements[i].Kind == chess.King || placements[i].Kind == chess.Rook {
			placements[i].Moved = true
		}
		index[placements[i].Square] = i
	}
	if field == "-" {
		return nil
	}

	unmark := func(square string, kind chess.PieceKind, colour chess.Colour) bool {
		i, ok := index[square]
		if !ok || placements[i].Kind != kind || placements[i].Colour != colour {
			return false
		}
		placements[i].Moved = false
		return true
	}

	for _, c := range field {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		rank := homeRank(colour)

		var rookSquare string
		switch unicode.ToUpper(c) {
		case 'K':
			rookSquare = fmt.Sprintf("h%d", rank)
		case 'Q':
			rookSquare = fmt.Sprintf("a%d", rank)
		default:
			return fmt.Errorf("invalid castling right %c: %w", c, errors.ErrInvalidFEN)
		}

		if !unmark(fmt.Sprintf("e%d", rank), chess.King, colour) || !unmark(rookSquare, chess.Rook, colour) {
			return fmt.Errorf("castling right %c without king and rook on their squares: %w", c, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// NewMatchFromFEN creates a match from a FEN string.
func NewMatchFromFEN(fen string, opts ...Option) (*Match, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithCurrentPlayer(pos.ToMove)}, opts...)
	return newMatchFromSetup(pos.Placements, pos.EnPassant, opts)
}

// FEN renders the match as a FEN string. Castling rights are derived from
// unmoved kings and rooks on their home squares. After checkmate the mated
// side is written as the side to move. The halfmove clock is not tracked and
// is always 0.
func (m *Match) FEN() string {
	var sb strings.Builder

	m.writePiecePositions(&sb)
	sb.WriteByte(' ')
	toMove := m.currentPlayer
	if m.checkMate {
		toMove = toMove.Opposite()
	}
	if toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	m.writeCastlingRights(&sb)
	sb.WriteByte(' ')
	m.writeEnPassant(&sb)
	fmt.Fprintf(&sb, " 0 %d", (m.turn+1)/2)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func (m *Match) writePiecePositions(sb *strings.Builder) {
	for r, row := range m.board.Snapshot() {
		emptyCount := 0
		for _, p := range row {
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			letter := p.Kind().Letter()
			if p.Colour() == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if r < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability to the builder.
func (m *Match) writeCastlingRights(sb *strings.Builder) {
	rights := []struct {
		letter byte
		colour chess.Colour
		rook   byte
	}{
		{'K', chess.White, 'h'},
		{'Q', chess.White, 'a'},
		{'k', chess.Black, 'h'},
		{'q', chess.Black, 'a'},
	}

	hasCastling := false
	for _, right := range rights {
		rank := homeRank(right.colour)
		king := m.board.Piece(chess.ChessPosition{Column: 'e', Row: rank}.ToPosition())
		rook := m.board.Piece(chess.ChessPosition{Column: right.rook, Row: rank}.ToPosition())
		if unmovedPiece(king, chess.King, right.colour) && unmovedPiece(rook, chess.Rook, right.colour) {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the square behind the vulnerable pawn to the builder.
func (m *Match) writeEnPassant(sb *strings.Builder) {
	if m.enPassantVulnerable == nil {
		sb.WriteByte('-')
		return
	}
	pos, ok := m.board.Find(m.enPassantVulnerable)
	if !ok {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(chess.SquareName(pos.Offset(-pawnDirection(m.enPassantVulnerable.Colour()), 0)))
}

func unmovedPiece(p *chess.Piece, kind chess.PieceKind, colour chess.Colour) bool {
	return p != nil && p.Kind() == kind && p.Colour() == colour && p.MoveCount() == 0
}

// homeRank returns the back rank of colour.
func homeRank(colour chess.Colour) int {
	if colour == chess.White {
		return chess.FirstRow
	}
	return chess.LastRow
}

// pawnHomeRow returns the rank the pawns of colour start on.
func pawnHomeRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.FirstRow + 1
	}
	return chess.LastRow - 1
}
