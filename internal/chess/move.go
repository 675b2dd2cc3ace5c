package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Move is a source and target square pair as typed by a player.
type Move struct {
	From ChessPosition
	To   ChessPosition
}

// String returns the move as "e2-e4".
func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}

// ParseMove parses "e2-e4", "e2 e4" or "e2e4".
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)

	var from, to string
	switch {
	case strings.ContainsAny(s, "- "):
		f := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == ' ' })
		if len(f) != 2 {
			return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidPosition)
		}
		from, to = f[0], f[1]
	case len(s) == 4:
		from, to = s[:2], s[2:]
	default:
		return Move{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidPosition)
	}

	src, err := ParseChessPosition(from)
	if err != nil {
		return Move{}, err
	}
	dst, err := ParseChessPosition(to)
	if err != nil {
		return Move{}, err
	}
	return Move{From: src, To: dst}, nil
}
