// order.go implements the Move Orderer (C3): three specialized scoring
// routines — interior, root, and quiescence — sharing the table
// lookups of C1/C2 and the static hints of C10 (§4.3, §9 "prefer a
// closed set of three specialized routines over virtual dispatch").

package search

import "sort"

const (
	hashMoveScore    int32 = 30000
	captureBonus     int32 = 100
	passedBonus      int32 = 100
	killerScore0     int32 = 80
	killerScore1     int32 = 70
	prevKillerScore0 int32 = 60
	prevKillerScore1 int32 = 50
	counterScore     int32 = 40
	neutralSEE       int32 = 0
	minQuiescenceScore int32 = MinScore
)

// orderingContext bundles the per-search tables the orderer needs, so
// the three scoring routines stay free functions instead of methods on
// a bloated Searcher — easier to reason about independently, and the
// same separation a move-stack/generation-stack split gives scoring vs
// generation.
type orderingContext struct {
	board    Board
	eval     Evaluator
	killers  *killerTable
	counters *counterTable
	history  *historyTable
	see      *seeCache
	hashMove Move
}

func (oc *orderingContext) captureScore(m Move) int32 {
	return oc.see.get(m, oc.eval) + captureBonus
}

// scoreInteriorMove implements §4.3 steps 1-4 for a move considered at
// ply within pvSearch/nwSearch.
func scoreInteriorMove(oc *orderingContext, ply, depth int32, m Move) int32 {
	if m == oc.hashMove {
		return hashMoveScore
	}

	side := oc.board.SideToMove()
	piece := oc.board.PieceAt(m.From())

	var score int32
	if m.IsCapture() || m.IsPromotion() {
		score = oc.captureScore(m)
	} else {
		score = scoreQuietMove(oc, ply, depth, m, side)
	}

	score += psqtDelta(side, piece.Type(), m.From(), m.To())
	return score
}

// scoreQuietMove implements §4.3 step 3.
func scoreQuietMove(oc *orderingContext, ply, depth int32, m Move, side Side) int32 {
	score := int32(0)

	switch {
	case m == oc.killers.at(ply, 0):
		score += killerScore0
	case m == oc.killers.at(ply, 1):
		score += killerScore1
	case m == oc.killers.at(ply-2, 0):
		score += prevKillerScore0
	case m == oc.killers.at(ply-2, 1):
		score += prevKillerScore1
	default:
		d := depth / OnePly
		if d < 1 {
			d = 1
		}
		hist := oc.history.get(side, m.From(), m.To())
		score += clamp32(hist/(d*d), -99, 49)
	}

	lastMove := oc.board.LastMove()
	if lastMove.Exists() {
		lastMovePiece := oc.board.PieceAt(lastMove.To())
		if oc.counters.get(lastMove, lastMovePiece) == m {
			score += counterScore
		}
	}

	if isPassedPawnPush(oc.board, m) {
		score += passedBonus
	}

	return score
}

// orderMoves scores and stably sorts moves descending by
// scoreInteriorMove, for use inside pvSearch/nwSearch (§4.3, §4.8).
func orderMoves(oc *orderingContext, ply, depth int32, moves []Move) {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = scoreInteriorMove(oc, ply, depth, m)
	}
	stableSortDescending(moves, scores)
}

// orderRootMoves is like orderMoves, but overrides step 1 of §4.3:
// moves that were the first move of any previous iteration's variation
// receive 30000-rank instead of the flat hash-move score, to preserve
// PV stability across iterations (§4.3 "Root ordering additionally").
func orderRootMoves(oc *orderingContext, depth int32, moves []Move, previous []Variation) {
	rank := make(map[Move]int, len(previous))
	for i, v := range previous {
		if len(v.Moves) > 0 {
			if _, seen := rank[v.Moves[0]]; !seen {
				rank[v.Moves[0]] = i
			}
		}
	}

	scores := make([]int32, len(moves))
	for i, m := range moves {
		if r, ok := rank[m]; ok {
			scores[i] = hashMoveScore - int32(r)
			continue
		}
		scores[i] = scoreInteriorMove(oc, 0, depth, m)
	}
	stableSortDescending(moves, scores)
}

// orderQuiescenceMoves scores quiescence candidates by SEE (captures)
// or MVV-LVA (evasions while in check), dropping anything below the
// relevant threshold, and stably sorts the survivors descending (§4.3
// last paragraph, §4.9 step 4).
func orderQuiescenceMoves(oc *orderingContext, inCheck bool, moves []Move) []Move {
	threshold := neutralSEE
	if inCheck {
		threshold = minQuiescenceScore
	}

	kept := moves[:0]
	scores := make([]int32, 0, len(moves))
	for _, m := range moves {
		var s int32
		if inCheck {
			s = oc.eval.EvaluateMoveMVVLVA(m)
		} else {
			s = oc.see.get(m, oc.eval)
		}
		if s < threshold {
			continue
		}
		kept = append(kept, m)
		scores = append(scores, s)
	}
	stableSortDescending(kept, scores)
	return kept
}

// stableSortDescending sorts moves by scores descending, keeping
// generator order among ties (§4.3 last line).
func stableSortDescending(moves []Move, scores []int32) {
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return scores[idx[i]] > scores[idx[j]]
	})
	orig := append([]Move(nil), moves...)
	for i, j := range idx {
		moves[i] = orig[j]
	}
}
