package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/corechess/board"
	"github.com/halvorsen/corechess/game"
)

func newEvaluator(t *testing.T, fen string) (*Evaluator, *game.Position) {
	t.Helper()
	pos, err := game.FromFEN(fen)
	require.NoError(t, err)
	e := New()
	e.SetBoard(pos)
	return e, pos
}

func TestEvaluateStartPosIsSymmetric(t *testing.T) {
	e, _ := newEvaluator(t, board.FENStartPos)
	assert.Equal(t, int32(0), e.Evaluate())
}

func TestEvaluateMaterialAdvantageFavorsSideToMove(t *testing.T) {
	// White is up a rook; White to move should see a positive score.
	e, _ := newEvaluator(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	assert.Positive(t, e.Evaluate())

	// Same material difference, but Black to move: Black is down a
	// rook, so the side-to-move score should still be negative.
	e2, _ := newEvaluator(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	assert.Negative(t, e2.Evaluate())
}

func TestIsDrawFiftyMoveRule(t *testing.T) {
	e, pos := newEvaluator(t, board.FENStartPos)
	pos.Raw().HalfMoveClock = 100
	assert.True(t, e.IsDraw())
}

func TestIsDrawInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		draw bool
	}{
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and bishop vs king", "4k3/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"king and rook vs king is not a draw", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false},
		{"king and two minors vs king is not insufficient here", "4k3/8/8/8/8/8/8/2BNK3 w - - 0 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEvaluator(t, tt.fen)
			assert.Equal(t, tt.draw, e.IsDraw())
		})
	}
}
