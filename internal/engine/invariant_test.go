package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/errors"
	"github.com/lgbarn/chessmatch-go/internal/testutil"
)

func kingsOnly(t *testing.T) *engine.Match {
	t.Helper()
	return testutil.MustMatch(t,
		testutil.W(chess.King, "e1"),
		testutil.B(chess.King, "e8"),
	)
}

// invariantOf fails unless r is an *InvariantError and returns it.
func invariantOf(t *testing.T, r interface{}) *errors.InvariantError {
	t.Helper()
	var inv *errors.InvariantError
	err, _ := r.(error)
	if !stderrors.As(err, &inv) {
		t.Fatalf("panic value = %v, want *InvariantError", r)
	}
	return inv
}

func TestApplyMove_EmptySourcePanics(t *testing.T) {
	m := kingsOnly(t)
	r := testutil.AssertPanics(t, func() { m.ApplyMove(sq("d4"), sq("d5")) }, "move from empty d4")
	invariantOf(t, r)
}

func TestRoster_Invariants(t *testing.T) {
	tests := []struct {
		name string
		fn   func(m *engine.Match, p, q *chess.Piece)
	}{
		{
			name: "double capture",
			fn: func(m *engine.Match, p, _ *chess.Piece) {
				m.Capture(p)
				m.Capture(p)
			},
		},
		{
			name: "release out of order",
			fn: func(m *engine.Match, p, q *chess.Piece) {
				m.Capture(p)
				m.Capture(q)
				m.Release(p)
			},
		},
		{
			name: "release without capture",
			fn: func(m *engine.Match, p, _ *chess.Piece) {
				m.Release(p)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := engine.NewMatch()
			p, q := testutil.PieceAt(m, "a2"), testutil.PieceAt(m, "a7")
			r := testutil.AssertPanics(t, func() { tt.fn(m, p, q) })
			invariantOf(t, r)
		})
	}
}

func TestKing_MissingPanics(t *testing.T) {
	m := kingsOnly(t)
	m.Lift(sq("e8"))

	r := testutil.AssertPanics(t, func() { m.KingAttacked(chess.Black) }, "check test without a black king")
	testutil.AssertEqual(t, invariantOf(t, r).Colour, "Black")
}
