// root.go implements the Root Searcher (C7): multi-PV bookkeeping atop
// the Alpha-Beta Searcher, §4.10. Each of the opts.NumVariations slots
// is searched with its own window, excluding moves already claimed by
// a better-ranked slot, and the result is always kept sorted best
// first so GetBestMove/Variations never need to re-sort.

package search

// Variation is one principal line found at the root: the move sequence
// and the score of its first move, from the side to move's point of
// view at the root (§4.10).
type Variation struct {
	Moves []Move
	Score int16
}

// searchRoot runs one multi-PV sweep at the given depth (OnePly units),
// seeding each slot's aspiration window from prev (the previous
// iteration's result, possibly nil on the first iteration). It returns
// the new variations, best first.
func (s *Searcher) searchRoot(depth int32, prev []Variation) []Variation {
	// A new root iteration: no mate known yet (§3's per-iteration reset).
	s.mateDistance = MaxPly

	rootMoves := s.board.GenerateLegalMoves()
	if len(rootMoves) == 0 {
		return nil
	}

	n := s.opts.NumVariations
	if n > len(rootMoves) {
		n = len(rootMoves)
	}

	oc := &orderingContext{
		board:    s.board,
		eval:     s.eval,
		killers:  s.killers,
		counters: s.counters,
		history:  s.history,
		see:      &s.see,
		hashMove: s.hashMoveAtRoot(),
	}
	orderRootMoves(oc, depth, rootMoves, prev)

	excluded := make(map[Move]bool, n)
	out := make([]Variation, 0, n)

	for slot := 0; slot < n; slot++ {
		candidates := make([]Move, 0, len(rootMoves))
		for _, m := range rootMoves {
			if !excluded[m] {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) == 0 {
			break
		}

		pv, pvOK := prevVariation(prev, slot)
		v := s.searchRootSlot(depth, candidates, pv, pvOK, prev, out)
		if len(v.Moves) == 0 {
			break
		}
		excluded[v.Moves[0]] = true
		out = append(out, v)
	}

	return out
}

// prepareMateDistance implements the root mate-distance bookkeeping of
// §4.10: a candidate that was the first move of a prior-iteration mate
// variation is allowed to search as deep as needed (mateDistance =
// MaxPly, i.e. "no cap"); otherwise mateDistance is capped to the
// longest mate already found among this iteration's out variations, so
// later root moves cannot waste effort chasing a worse mate than one
// already in hand.
func (s *Searcher) prepareMateDistance(candidate Move, prev Variation, prevOK bool, out []Variation) {
	if prevOK && len(prev.Moves) > 0 && prev.Moves[0] == candidate && IsMateScore(int32(prev.Score)) {
		s.mateDistance = MaxPly
		return
	}
	worst := int32(0)
	found := false
	for _, v := range out {
		score := int32(v.Score)
		if IsMateScore(score) {
			found = true
			if d := MateDistance(score); d > worst {
				worst = d
			}
		}
	}
	if !found {
		worst = MaxPly
	}
	s.mateDistance = worst
}

func prevVariation(prev []Variation, slot int) (Variation, bool) {
	if slot < len(prev) {
		return prev[slot], true
	}
	return Variation{}, false
}

// searchRootSlot runs the aspiration-window search (§4.11) for one
// multi-PV slot restricted to candidates, and returns the resulting
// variation. prevAll is the full previous-iteration result list, used
// to anchor the window's lower end on multi-PV (§4.10, §4.11).
func (s *Searcher) searchRootSlot(depth int32, candidates []Move, prev Variation, prevOK bool, prevAll []Variation, out []Variation) Variation {
	alpha, beta := s.aspirationWindow(prev, prevOK, prevAll)
	loReduction, hiReduction := aspirationDelta, aspirationDelta
	loWidenings, hiWidenings := 0, 0

	for {
		if !s.sup.isRunning() {
			break
		}
		score, bestMove, line := s.searchRootWindow(depth, candidates, alpha, beta, prev, prevOK, out)
		if !s.sup.isRunning() {
			if bestMove.Exists() {
				return Variation{Moves: append([]Move{bestMove}, line...), Score: int16(score)}
			}
			break
		}

		if score <= alpha {
			loWidenings++
			if loWidenings > aspirationMaxWidenings {
				alpha = MinScore
			} else {
				loReduction *= 4
				alpha = max32(alpha-loReduction, MinScore)
			}
			continue
		}
		if score >= beta {
			hiWidenings++
			if hiWidenings > aspirationMaxWidenings {
				beta = MaxScore
			} else {
				hiReduction *= 4
				beta = min32(beta+hiReduction, MaxScore)
			}
			continue
		}

		return Variation{Moves: append([]Move{bestMove}, line...), Score: int16(score)}
	}

	return Variation{}
}

// searchRootWindow searches every candidate once with window
// [alpha, beta], PVS-style (first move full window, rest null-window
// with re-search on fail-high), and returns the best score, its move,
// and the continuation below it.
func (s *Searcher) searchRootWindow(depth int32, candidates []Move, alpha, beta int32, prev Variation, prevOK bool, out []Variation) (int32, Move, []Move) {
	bestScore := MinScore
	var bestMove Move
	var bestLine []Move

	a := alpha
	for i, m := range candidates {
		s.prepareMateDistance(m, prev, prevOK, out)
		s.board.MakeMove(m)
		var score int32
		if i == 0 {
			score = -s.pvSearch(1, depth-OnePly, -beta, -a, rootNullMoveCooldown)
		} else {
			score = -s.nwSearch(1, depth-OnePly, -a, rootNullMoveCooldown)
			if score > a && score < beta {
				score = -s.pvSearch(1, depth-OnePly, -beta, -a, rootNullMoveCooldown)
			}
		}
		line := s.pv.line(1)
		s.board.UndoMove()

		if !s.sup.isRunning() && bestMove.Exists() {
			break
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			bestLine = line
			if score > a {
				a = score
			}
		}
		if a >= beta {
			break
		}
	}

	return bestScore, bestMove, bestLine
}

func (s *Searcher) hashMoveAtRoot() Move {
	if entry, ok := s.tt.Probe(s.board.HashValue()); ok {
		return entry.HashMove
	}
	return NullMove
}

// rootNullMoveCooldown seeds nullMoveCooldown for every root move's
// subtree: no null move has been made yet on this path, so a fresh one
// is immediately eligible once depth/§4.7's other conditions allow it.
const rootNullMoveCooldown int32 = nullMoveCooldownPlies

const (
	// aspirationDelta is ASP from §4.11: the initial half-width of the
	// window seeded around the previous iteration's score.
	aspirationDelta int32 = 15

	// aspirationMaxWidenings is the number of times a failed bound is
	// widened (by multiplying its reduction by 4) before giving up and
	// opening that side all the way to MIN_SCORE/MAX_SCORE (§4.11).
	aspirationMaxWidenings = 3
)

// aspirationWindow computes the starting window for one multi-PV slot
// (§4.11): [prevScore-ASP, prevScore+ASP], except the lower end is
// lowered to the score of the previous iteration's last (worst)
// variation when that is lower, so a weaker slot's window never
// excludes last iteration's worst line.
func (s *Searcher) aspirationWindow(prev Variation, prevOK bool, prevAll []Variation) (int32, int32) {
	if !prevOK {
		return MinScore, MaxScore
	}
	score := int32(prev.Score)
	if IsMateScore(score) {
		return MinScore, MaxScore
	}

	lo := score - aspirationDelta
	if len(prevAll) > 0 {
		if worst := int32(prevAll[len(prevAll)-1].Score); worst < lo {
			lo = worst
		}
	}
	return lo, score + aspirationDelta
}
