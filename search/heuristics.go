// heuristics.go implements the Heuristic Tables (C2): killer moves,
// counter moves, relative history, the per-ply PV table, and the
// iteration-scoped SEE cache that Move Ordering (C3) reads and the
// Alpha-Beta Searcher (C6) writes back on cutoffs.
//
// Killer/history/counters live for one search() call only (§3
// Lifecycle); a PV table row is cleared at the start of every
// pvSearch/nwSearch node and rewritten bottom-up as moves raise alpha
// (§4.8).

package search

// killerTable holds up to two quiet refutation moves per ply (§3).
type killerTable [MaxPly][2]Move

func (k *killerTable) add(ply int32, m Move) {
	if ply < 0 || int(ply) >= len(k) {
		return
	}
	slot := &k[ply]
	if slot[0] == m {
		return
	}
	slot[1] = slot[0]
	slot[0] = m
}

func (k *killerTable) at(ply int32, i int) Move {
	if ply < 0 || int(ply) >= len(k) {
		return NullMove
	}
	return k[ply][i]
}

// counterTable maps (piece that moved to the last move's destination,
// that move's origin square) to the reply that refuted it (§3, and
// the Open Question 1 resolution in SPEC_FULL.md §C.2: index by the
// piece now sitting on the destination square, keyed by the origin
// square, applied uniformly rather than mixing the two historical
// schemes).
type counterTable [7][64]Move

func counterKey(lastMove Move, movedPiece Piece) (PieceType, Square) {
	return movedPiece.Type(), lastMove.From()
}

func (c *counterTable) set(lastMove Move, movedPiece Piece, reply Move) {
	pt, sq := counterKey(lastMove, movedPiece)
	c[pt][sq] = reply
}

func (c *counterTable) get(lastMove Move, movedPiece Piece) Move {
	if !lastMove.Exists() {
		return NullMove
	}
	pt, sq := counterKey(lastMove, movedPiece)
	return c[pt][sq]
}

// historyTable is the relative-history heuristic: relativeHistory
// [side][from][to], a signed running score rewarding cutoff-causing
// quiet moves and penalizing explored-but-unproductive ones (§3, §4.8).
// Values are bounded only by the clamp applied in move ordering (§4.3),
// not here, per spec.
type historyTable [2][64][64]int32

func (h *historyTable) reward(side Side, from, to Square, depth int32) {
	plies := depth / OnePly
	h[side][from][to] += plies * plies
}

func (h *historyTable) penalize(side Side, from, to Square, depth int32) {
	h[side][from][to] -= depth / OnePly
}

func (h *historyTable) get(side Side, from, to Square) int32 {
	return h[side][from][to]
}

// pvTable holds, for every ply, the best continuation found rooted at
// that ply (§3). Index 0 is the principal variation for the whole
// search; pvTable[ply] is overwritten only when a child's return value
// raises alpha, in pvSearch or nwSearch (§4.8).
type pvTable [MaxPly][]Move

func (pv *pvTable) clear(ply int32) {
	if ply < 0 || int(ply) >= len(pv) {
		return
	}
	pv[ply] = pv[ply][:0]
}

// set rewrites pvTable[ply] as move followed by pvTable[ply+1].
func (pv *pvTable) set(ply int32, move Move) {
	if ply < 0 || int(ply) >= len(pv)-1 {
		return
	}
	line := pv[ply][:0]
	line = append(line, move)
	line = append(line, pv[ply+1]...)
	pv[ply] = line
}

func (pv *pvTable) line(ply int32) []Move {
	if ply < 0 || int(ply) >= len(pv) {
		return nil
	}
	out := make([]Move, len(pv[ply]))
	copy(out, pv[ply])
	return out
}

// seeCache memoizes Evaluator.EvaluateMoveSEE results for one
// iteration (§3: "scoped to the current iteration"). The Iterative
// Driver resets it at the start of every depth.
type seeCache struct {
	scores map[Move]int32
}

func newSEECache() seeCache {
	return seeCache{scores: make(map[Move]int32, 64)}
}

func (c *seeCache) reset() {
	for k := range c.scores {
		delete(c.scores, k)
	}
}

func (c *seeCache) get(m Move, eval Evaluator) int32 {
	if v, ok := c.scores[m]; ok {
		return v
	}
	v := eval.EvaluateMoveSEE(m)
	c.scores[m] = v
	return v
}
