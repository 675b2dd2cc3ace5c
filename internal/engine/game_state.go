package engine

import "github.com/lgbarn/chessmatch-go/internal/chess"

// testCheckMate returns true if colour is in check and no pseudo-legal move
// of any of its pieces gets it out. Every trial move is reverted.
func (m *Match) testCheckMate(colour chess.Colour) bool {
	if !m.testCheck(colour) {
		return false
	}

	for _, p := range m.roster.inPlayPieces(colour) {
		from, ok := m.board.Find(p)
		if !ok {
			continue
		}
		mat := PossibleMoves(m.board, from, m.moveContext())
		for _, to := range mat.Positions() {
			rec := m.applyMove(from, to)
			stillInCheck := m.testCheck(colour)
			m.revertMove(rec)
			if !stillInCheck {
				return false
			}
		}
	}
	return true
}
