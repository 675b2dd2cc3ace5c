package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// Unexported match internals reached from the engine_test package.

func (m *Match) ApplyMove(source, target chess.ChessPosition) {
	m.applyMove(source.ToPosition(), target.ToPosition())
}

func (m *Match) KingAttacked(colour chess.Colour) bool {
	return m.testCheck(colour)
}

func (m *Match) Capture(p *chess.Piece) {
	m.roster.capture(p)
}

func (m *Match) Release(p *chess.Piece) {
	m.roster.release(p)
}

// Lift removes the piece on square from the board and from play without
// recording a move.
func (m *Match) Lift(square chess.ChessPosition) *chess.Piece {
	pos := square.ToPosition()
	p := m.board.Piece(pos)
	m.board.RemovePiece(pos)
	m.roster.capture(p)
	return p
}
