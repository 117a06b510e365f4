// quiescence.go implements Quiescence Search (C5, §4.9): the
// captures-only (or, in check, full-legal) recursive tail called once
// the Alpha-Beta Searcher (C6) runs out of nominal depth.

package search

// qsearch is the quiescence entry point, called from pvSearch/nwSearch
// once depth <= 0 (§4.8 "Horizon"). ply is the distance from the root,
// used for mate-score adjustment and MaxPly clamping.
func (s *Searcher) qsearch(ply, alpha, beta int32) int32 {
	s.stats.Nodes++
	if shouldCheckup(s.stats.Nodes) {
		s.sup.checkup()
	}
	if !s.sup.isRunning() {
		return alpha
	}

	if ply >= MaxPly {
		return s.eval.Evaluate()
	}

	inCheck := s.board.IsCheck()

	best := MinScore
	if !inCheck {
		standPat := s.eval.Evaluate()
		if standPat >= beta {
			return standPat
		}
		if standPat > alpha {
			alpha = standPat
		}
		best = standPat
	}

	var moves []Move
	if inCheck {
		moves = s.board.GenerateLegalMoves()
		if len(moves) == 0 {
			s.recordMate(ply)
			return mateIn(ply)
		}
		if s.eval.IsDraw() {
			return 0
		}
	} else {
		moves = s.board.GenerateLegalCaptures()
	}

	oc := &orderingContext{
		board:    s.board,
		eval:     s.eval,
		killers:  s.killers,
		counters: s.counters,
		history:  s.history,
		see:      &s.see,
		hashMove: NullMove,
	}
	ordered := orderQuiescenceMoves(oc, inCheck, moves)

	for _, m := range ordered {
		s.board.MakeMove(m)
		score := -s.qsearch(ply+1, -beta, -alpha)
		s.board.UndoMove()

		if !s.sup.isRunning() {
			return best
		}

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				if score >= beta {
					return best
				}
			}
		}
	}

	return best
}
