// eval.go implements search.Evaluator atop the board package's tuned
// static evaluation function (§1, §6: the static evaluator is an
// external collaborator the search core only calls through an
// interface).

package eval

import (
	"github.com/halvorsen/corechess/board"
	"github.com/halvorsen/corechess/search"
)

// rawPosition is the seam game.Position exposes so an Evaluator can
// recover the concrete *board.Position bound to the search.Board
// interface it's handed (§6 boundary note in contracts.go).
type rawPosition interface {
	Raw() *board.Position
}

// Evaluator is a search.Evaluator backed by a *board.Position. Not
// safe for concurrent use.
type Evaluator struct {
	pos *board.Position
}

// New returns an unbound Evaluator; call SetBoard before using it.
func New() *Evaluator {
	return &Evaluator{}
}

// SetBoard implements search.Evaluator.
func (e *Evaluator) SetBoard(b search.Board) {
	if rp, ok := b.(rawPosition); ok {
		e.pos = rp.Raw()
	}
}

// Evaluate implements search.Evaluator.
func (e *Evaluator) Evaluate() int32 {
	score := board.Evaluate(e.pos)
	if e.pos.SideToMove == board.Black {
		return -score
	}
	return score
}

// IsDraw implements search.Evaluator: the 50-move rule, three-fold
// repetition, and insufficient mating material.
func (e *Evaluator) IsDraw() bool {
	if e.pos.HalfMoveClock >= 100 {
		return true
	}
	if e.pos.IsThreeFoldRepetition() {
		return true
	}
	return isInsufficientMaterial(e.pos)
}

// isInsufficientMaterial reports king-and-minor-or-bare-king endings
// that can never be forced to mate (§1 ambient draw detection).
func isInsufficientMaterial(pos *board.Position) bool {
	if pos.ByFigure[board.Pawn] != 0 || pos.ByFigure[board.Rook] != 0 || pos.ByFigure[board.Queen] != 0 {
		return false
	}
	whiteMen := (pos.ByColor[board.White] &^ pos.ByFigure[board.King]).Popcnt()
	blackMen := (pos.ByColor[board.Black] &^ pos.ByFigure[board.King]).Popcnt()
	return whiteMen <= 1 && blackMen <= 1
}
