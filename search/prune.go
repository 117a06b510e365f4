// prune.go implements the Pruning/Extension Policy (C4): per-move
// search-extension, late-move-reduction, and forward-pruning decisions
// derived from position and move features (§4.4, §4.5, §4.6).

package search

import "math"

const (
	checkExtension  = OnePly
	tacticExtension = halfPly // capture/promotion, or passed-pawn push
)

// extension computes the additive search extension for move m, played
// from a position where inCheck was true before the move and
// givesCheck is true after it (§4.4). Extensions are summed but capped
// so they only ever compensate for a reduction, never grow the budget
// past the node's nominal depth.
func extension(b Board, m Move, inCheck, givesCheck bool) int32 {
	var ext int32
	if inCheck || givesCheck {
		ext += checkExtension
	}
	if m.IsCapture() || m.IsPromotion() {
		ext += tacticExtension
	}
	if isPassedPawnPush(b, m) {
		ext += tacticExtension
	}
	return min32(ext, OnePly)
}

// evadesThreatenedCapture reports whether m moves a piece away from a
// square the opponent currently attacks — the "evading a threatened
// capture" condition referenced by §4.5 and §4.6, approximated (per
// the Board contract's minimum surface, §6) as "the origin square was
// under attack before the move".
func evadesThreatenedCapture(b Board, side Side, m Move) bool {
	return b.Attacked(m.From(), side.Opposite())
}

// reductionContext bundles the per-node state reduction() and
// forwardPrune() need, avoiding a long, easy-to-misorder parameter list.
type reductionContext struct {
	board         Board
	history       *historyTable
	ply           int32
	depth         int32
	moveNumber    int32 // 1-based
	inCheck       bool
	givesCheck    bool
	mateDistance  int32
	see           int32 // SEE of m, meaningful only for captures
	side          Side
}

// reduction computes the late-move reduction for the rc.moveNumber-th
// move considered at rc.ply (§4.5). Returns 0 for the first move at a
// node, before ply 4, or while in/evading check unless the
// move's SEE is non-negative (which only cancels part of the
// reduction, per "cancels part of the reduction" — modeled here as
// skipping the in-check waiver rather than zeroing the whole term).
func reduction(rc reductionContext, m Move) int32 {
	if rc.moveNumber < 2 || rc.ply <= 3 {
		return 0
	}
	if (rc.inCheck || rc.givesCheck) && rc.see < 0 {
		return 0
	}

	depthPlies := float64(max32(rc.depth/OnePly, 1))
	r := (math.Log2(float64(rc.moveNumber)) + math.Log(depthPlies)) * float64(OnePly)

	if m.IsCapture() && rc.see < 0 {
		r += 2 * float64(OnePly)
	}
	if evadesThreatenedCapture(rc.board, rc.side, m) {
		r -= float64(OnePly)
	}
	if m.IsQuiet() {
		// rc.board is the position after m, so the mover is on m.To().
		piece := rc.board.PieceAt(m.To())
		if piece.Type() != Pawn {
			r += 2 * float64(OnePly)
		}
	}

	hist := rc.history.get(rc.side, m.From(), m.To())
	r -= float64(hist) / 25000 * float64(OnePly)

	if rc.mateDistance < MaxPly {
		r -= float64(MaxPly-int(rc.mateDistance)-int(rc.ply)) * float64(OnePly)
	}

	red := int32(math.Round(r))
	return clamp32(red, 0, rc.depth-OnePly)
}

// forwardPrune reports whether move moveNumber at ply should be
// skipped outright in a null-window search node (§4.6): quiet,
// non-promoting, not in/evading check, not a passed-pawn push, not
// evading a threatened capture, and far enough down the move list that
// it is unlikely to matter at this depth.
func forwardPrune(rc reductionContext, m Move) bool {
	if rc.moveNumber < 2 || rc.ply <= 3 {
		return false
	}
	if m.IsCapture() || m.IsPromotion() {
		return false
	}
	if rc.inCheck || rc.givesCheck {
		return false
	}
	if isPassedPawnPush(rc.board, m) {
		return false
	}
	if evadesThreatenedCapture(rc.board, rc.side, m) {
		return false
	}
	threshold := rc.depth*5/(OnePly*3) + 2
	return rc.moveNumber >= threshold
}
