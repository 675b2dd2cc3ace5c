package engine

import (
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/errors"
)

// Match is a game in progress: the board, whose turn it is, the check and
// checkmate flags and the pieces in play and captured.
//
// A Match is not safe for concurrent use.
type Match struct {
	id     string
	board  *chess.Board
	roster roster
	logger *log.Logger

	turn          int
	currentPlayer chess.Colour
	check         bool
	checkMate     bool

	enPassantVulnerable *chess.Piece
}

// Option configures a Match at construction.
type Option func(*Match)

// WithLogger sends match events to logger. The default discards them.
func WithLogger(logger *log.Logger) Option {
	return func(m *Match) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithID sets the match identifier used in log lines. The default is a random UUID.
func WithID(id string) Option {
	return func(m *Match) {
		m.id = id
	}
}

// WithCurrentPlayer sets the colour that moves first.
func WithCurrentPlayer(colour chess.Colour) Option {
	return func(m *Match) {
		m.currentPlayer = colour
	}
}

func newMatch(opts []Option) *Match {
	m := &Match{
		id:            uuid.NewString(),
		board:         chess.NewStandardBoard(),
		logger:        log.New(io.Discard, "", 0),
		turn:          1,
		currentPlayer: chess.White,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the match identifier.
func (m *Match) ID() string {
	return m.id
}

// Turn returns the turn number, starting at 1 and advancing every ply.
func (m *Match) Turn() int {
	return m.turn
}

// CurrentPlayer returns the colour on move, or the winner once the match is
// in checkmate.
func (m *Match) CurrentPlayer() chess.Colour {
	return m.currentPlayer
}

// IsCheck reports whether the last move put the opponent in check.
func (m *Match) IsCheck() bool {
	return m.check
}

// IsCheckMate reports whether the last move ended the game.
func (m *Match) IsCheckMate() bool {
	return m.checkMate
}

// EnPassantVulnerable returns the pawn that may be captured en passant on
// this ply, or nil.
func (m *Match) EnPassantVulnerable() *chess.Piece {
	return m.enPassantVulnerable
}

// Pieces returns a snapshot of the board, row-major, row 0 being rank 8.
func (m *Match) Pieces() [][]*chess.Piece {
	return m.board.Snapshot()
}

// CapturedPieces returns the captured pieces in the order they were taken.
func (m *Match) CapturedPieces() []*chess.Piece {
	return m.roster.capturedPieces()
}

// PiecesInPlay returns the pieces of colour still on the board.
func (m *Match) PiecesInPlay(colour chess.Colour) []*chess.Piece {
	return m.roster.inPlayPieces(colour)
}

// InPlay reports whether p is still on the board.
func (m *Match) InPlay(p *chess.Piece) bool {
	return m.roster.isInPlay(p)
}

// PossibleMoves returns the pseudo-legal destinations of the current
// player's piece on source. Moves that would leave the player's own king in
// check are included; PerformMove rejects them.
func (m *Match) PossibleMoves(source chess.ChessPosition) (chess.MoveMatrix, error) {
	if err := source.Validate(); err != nil {
		return chess.MoveMatrix{}, m.moveError(err, source.String(), "")
	}
	mat, err := m.validateSourcePosition(source.ToPosition())
	if err != nil {
		return chess.MoveMatrix{}, m.moveError(err, source.String(), "")
	}
	return mat, nil
}

// PerformMove moves the current player's piece from source to target and
// returns the captured piece, if any. On error the match is unchanged.
func (m *Match) PerformMove(sourcePosition, targetPosition chess.ChessPosition) (*chess.Piece, error) {
	src, dst := sourcePosition.String(), targetPosition.String()
	for _, cp := range [...]chess.ChessPosition{sourcePosition, targetPosition} {
		if err := cp.Validate(); err != nil {
			return nil, m.moveError(err, src, dst)
		}
	}
	source := sourcePosition.ToPosition()
	target := targetPosition.ToPosition()

	mat, err := m.validateSourcePosition(source)
	if err != nil {
		return nil, m.moveError(err, src, dst)
	}
	if !mat.Marked(target) {
		return nil, m.moveError(errors.ErrIllegalTarget, src, dst)
	}

	rec := m.applyMove(source, target)

	if m.testCheck(m.currentPlayer) {
		m.revertMove(rec)
		m.logger.Printf("match %s: turn %d: %v %s-%s rejected: self check", m.id, m.turn, m.currentPlayer, src, dst)
		return nil, m.moveError(errors.ErrSelfCheck, src, dst)
	}

	moved := rec.piece
	opponent := m.currentPlayer.Opposite()
	m.check = m.testCheck(opponent)
	m.checkMate = m.check && m.testCheckMate(opponent)

	m.logger.Printf("match %s: turn %d: %v %v %s-%s%s", m.id, m.turn, m.currentPlayer, moved.Kind(), src, dst, describeOutcome(rec, m.check, m.checkMate))

	if !m.checkMate {
		m.nextTurn()
	}

	// Mate trials above still see the previous marker.
	if moved.Kind() == chess.Pawn && abs(target.Row-source.Row) == 2 {
		m.enPassantVulnerable = moved
	} else {
		m.enPassantVulnerable = nil
	}

	return rec.captured, nil
}

// validateSourcePosition checks that pos holds a piece of the current player
// that can move, and returns its pseudo-legal moves.
func (m *Match) validateSourcePosition(pos chess.Position) (chess.MoveMatrix, error) {
	p := m.board.Piece(pos)
	if p == nil {
		return chess.MoveMatrix{}, errors.ErrNoPieceAtSource
	}
	if p.Colour() != m.currentPlayer {
		return chess.MoveMatrix{}, errors.ErrNotOwnPiece
	}
	mat := PossibleMoves(m.board, pos, m.moveContext())
	if !mat.Any() {
		return chess.MoveMatrix{}, errors.ErrNoLegalMoves
	}
	return mat, nil
}

// moveContext returns the match facts move generation needs.
func (m *Match) moveContext() MoveContext {
	return MoveContext{
		EnPassantVulnerable: m.enPassantVulnerable,
		Check:               m.check,
	}
}

func (m *Match) nextTurn() {
	m.turn++
	m.currentPlayer = m.currentPlayer.Opposite()
}

func (m *Match) moveError(err error, source, target string) error {
	return &errors.MoveError{
		Err:    err,
		Source: source,
		Target: target,
		Turn:   m.turn,
		Player: m.currentPlayer.String(),
	}
}

// describeOutcome renders the notable effects of a move for the log.
func describeOutcome(rec moveRecord, check, checkMate bool) string {
	var s string
	switch {
	case rec.castling:
		s += " castling"
	case rec.enPassant:
		s += " en passant"
	}
	if rec.captured != nil {
		s += " captures " + rec.captured.Kind().String()
	}
	switch {
	case checkMate:
		s += " checkmate"
	case check:
		s += " check"
	}
	return s
}
