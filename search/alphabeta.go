// alphabeta.go implements the Alpha-Beta Searcher (C6): the mutually
// recursive scout/PVS pair, pvSearch (full window) and nwSearch (null
// window), §4.8. Both tail-call quiescence (C5) at the horizon and
// read/write the transposition table (C1), heuristic tables (C2), and
// move orderer (C3) built elsewhere in this package.

package search

const (
	nullMoveMinDepth   = 3 * OnePly
	nullMoveReduction  = 3 * OnePly
	nullMoveBigReduced = 4 * OnePly
	nullMoveBigDepth   = 8 * OnePly

	// nullMoveCooldownPlies is the minimum number of plies that must
	// have elapsed since the last null move on this path before another
	// one may be made (§4.7's "cooldown expired").
	nullMoveCooldownPlies = 2
)

// recordMate lowers s.mateDistance to ply if a mate was just confirmed
// there, tracking the shortest mate seen so far in the current root
// iteration (§3). It never raises the value back up.
func (s *Searcher) recordMate(ply int32) {
	if ply < s.mateDistance {
		s.mateDistance = ply
	}
}

// matingBound/matedBound implement mate-distance pruning (§4.1): no
// node can return a score better than "mate delivered next move" or
// worse than "mated right now", so the window can always be clipped to
// that range before any move is examined.
func matingBound(ply int32) int32 { return MateScore - ply }
func matedBound(ply int32) int32  { return -MateScore + ply }

// pvSearch is the full-window (PV) search: the first move at every
// node is searched with the inherited [alpha, beta] window; every
// later move is tried null-window first via nwSearch and only
// re-searched full-window if it beats alpha (§4.8 step headed
// "pvSearch"). nullMoveCooldown counts plies since the last null move
// made anywhere on this path (§4.7, §4.8's shared contract shape).
func (s *Searcher) pvSearch(ply, depth, alpha, beta, nullMoveCooldown int32) int32 {
	s.pv.clear(ply)
	s.stats.Nodes++
	if shouldCheckup(s.stats.Nodes) {
		s.sup.checkup()
	}
	if !s.sup.isRunning() {
		return alpha
	}
	if ply > int32(s.stats.SelDepth) {
		s.stats.SelDepth = ply
	}

	if ply > 0 {
		if s.eval.IsDraw() {
			return 0
		}
		if s.mateDistance < ply {
			return MinScore + 1
		}
		if mb := matingBound(ply); beta > mb {
			beta = mb
			if alpha >= mb {
				return mb
			}
		}
		if mb := matedBound(ply); alpha < mb {
			alpha = mb
			if beta <= mb {
				return mb
			}
		}
	}

	if depth <= 0 || ply >= MaxPly {
		return s.qsearch(ply, alpha, beta)
	}

	hash := s.board.HashValue()
	var hashMove Move
	if entry, ok := s.tt.Probe(hash); ok {
		hashMove = entry.HashMove
		s.stats.TTHit++
	} else {
		s.stats.TTMiss++
	}

	inCheck := s.board.IsCheck()
	moves := s.board.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			s.recordMate(ply)
			return matedBound(ply)
		}
		return 0
	}

	oc := &orderingContext{
		board: s.board, eval: s.eval,
		killers: s.killers, counters: s.counters, history: s.history,
		see: &s.see, hashMove: hashMove,
	}
	orderMoves(oc, ply, depth, moves)

	side := s.board.SideToMove()
	prevMove := s.board.LastMove()
	var prevMovePiece Piece
	if prevMove.Exists() {
		prevMovePiece = s.board.PieceAt(prevMove.To())
	}

	bestScore := MinScore
	var bestMove Move
	bound := boundUpper

	for i, m := range moves {
		var see int32
		if m.IsCapture() {
			see = s.see.get(m, s.eval)
		}

		s.board.MakeMove(m)
		givesCheck := s.board.IsCheck()

		rc := reductionContext{
			board: s.board, history: s.history,
			ply: ply, depth: depth, moveNumber: int32(i + 1),
			inCheck: inCheck, givesCheck: givesCheck,
			mateDistance: s.mateDistance, see: see, side: side,
		}

		ext := extension(s.board, m, inCheck, givesCheck)
		newDepth := depth - OnePly + ext

		var score int32
		if i == 0 {
			score = -s.pvSearch(ply+1, newDepth, -beta, -alpha, nullMoveCooldown+1)
		} else {
			red := reduction(rc, m)
			score = -s.nwSearch(ply+1, newDepth-red, -alpha, nullMoveCooldown+1)
			if score > alpha && red > 0 {
				score = -s.nwSearch(ply+1, newDepth, -alpha, nullMoveCooldown+1)
			}
			if score > alpha && score < beta {
				score = -s.pvSearch(ply+1, newDepth, -beta, -alpha, nullMoveCooldown+1)
			}
		}
		s.board.UndoMove()

		if !s.sup.isRunning() {
			if bestMove.Exists() {
				break
			}
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				bound = boundExact
				s.pv.set(ply, m)
				if score >= beta {
					bound = boundLower
					if m.IsQuiet() {
						s.killers.add(ply, m)
						s.history.reward(side, m.From(), m.To(), depth)
						if prevMove.Exists() {
							s.counters.set(prevMove, prevMovePiece, m)
						}
					}
					break
				}
			}
		} else if m.IsQuiet() {
			s.history.penalize(side, m.From(), m.To(), depth)
		}
	}

	s.tt.Put(hash, TTEntry{
		HashMove: bestMove,
		Score:    int16(adjustMateScoreToStore(bestScore, ply)),
		Age:      s.currentAge,
		Depth:    depthToTT(depth),
		bound:    packType(bound, nodeClassPV),
	})

	return bestScore
}

// nwSearch is the null-window (scout) search used for every non-first
// move and for the whole subtree once a null-window probe has been
// committed to: the caller only cares whether the true score is
// >= beta or < beta, never its exact value (§4.8 step headed
// "nwSearch"). It additionally carries null-move pruning (§4.7) and
// forward pruning (§4.6), neither of which is sound at a PV node.
// nullMoveCooldown counts plies since the last null move made anywhere
// on this path; a fresh null move may only be made once it reaches 2.
func (s *Searcher) nwSearch(ply, depth, beta, nullMoveCooldown int32) int32 {
	alpha := beta - 1
	s.pv.clear(ply)
	s.stats.Nodes++
	if shouldCheckup(s.stats.Nodes) {
		s.sup.checkup()
	}
	if !s.sup.isRunning() {
		return alpha
	}
	if ply > int32(s.stats.SelDepth) {
		s.stats.SelDepth = ply
	}

	if s.eval.IsDraw() {
		return 0
	}
	if s.mateDistance < ply {
		return MinScore + 1
	}
	if mb := matingBound(ply); beta > mb {
		if alpha >= mb {
			return mb
		}
	}
	if mb := matedBound(ply); alpha < mb {
		if beta <= mb {
			return mb
		}
	}

	if depth <= 0 || ply >= MaxPly {
		return s.qsearch(ply, alpha, beta)
	}

	hash := s.board.HashValue()
	var hashMove Move
	if entry, ok := s.tt.Probe(hash); ok {
		s.stats.TTHit++
		hashMove = entry.HashMove
		if entry.Depth >= depthToTT(depth) {
			score := adjustMateScoreToRoot(int32(entry.Score), ply)
			switch entry.boundKind() {
			case boundExact:
				return score
			case boundLower:
				if score >= beta {
					return score
				}
			case boundUpper:
				if score < beta {
					return score
				}
			}
		}
	} else {
		s.stats.TTMiss++
	}

	inCheck := s.board.IsCheck()
	side := s.board.SideToMove()

	if !inCheck && depth >= nullMoveMinDepth && nullMoveCooldown >= nullMoveCooldownPlies &&
		s.mateDistance >= MaxPly && hasNonPawnMaterial(s.board, side) {
		r := nullMoveReduction
		if depth >= nullMoveBigDepth {
			r = nullMoveBigReduced
		}
		s.board.MakeMove(NullMove)
		score := -s.nwSearch(ply+1, depth-OnePly-r, -alpha, 0)
		s.board.UndoMove()
		if s.sup.isRunning() && score >= beta {
			return score
		}
	}

	moves := s.board.GenerateLegalMoves()
	if len(moves) == 0 {
		if inCheck {
			s.recordMate(ply)
			return matedBound(ply)
		}
		return 0
	}

	oc := &orderingContext{
		board: s.board, eval: s.eval,
		killers: s.killers, counters: s.counters, history: s.history,
		see: &s.see, hashMove: hashMove,
	}
	orderMoves(oc, ply, depth, moves)

	prevMove := s.board.LastMove()
	var prevMovePiece Piece
	if prevMove.Exists() {
		prevMovePiece = s.board.PieceAt(prevMove.To())
	}

	bestScore := MinScore
	var bestMove Move
	bound := boundUpper

	for i, m := range moves {
		var see int32
		if m.IsCapture() {
			see = s.see.get(m, s.eval)
		}

		s.board.MakeMove(m)
		givesCheck := s.board.IsCheck()

		rc := reductionContext{
			board: s.board, history: s.history,
			ply: ply, depth: depth, moveNumber: int32(i + 1),
			inCheck: inCheck, givesCheck: givesCheck,
			mateDistance: s.mateDistance, see: see, side: side,
		}

		if i > 0 && forwardPrune(rc, m) {
			s.board.UndoMove()
			continue
		}

		ext := extension(s.board, m, inCheck, givesCheck)
		newDepth := depth - OnePly + ext
		red := reduction(rc, m)

		score := -s.nwSearch(ply+1, newDepth-red, -alpha, nullMoveCooldown+1)
		if score > alpha && red > 0 {
			score = -s.nwSearch(ply+1, newDepth, -alpha, nullMoveCooldown+1)
		}
		s.board.UndoMove()

		if !s.sup.isRunning() {
			if bestMove.Exists() {
				break
			}
			return alpha
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				bound = boundExact
				s.pv.set(ply, m)
			}
			if score >= beta {
				bound = boundLower
				if m.IsQuiet() {
					s.killers.add(ply, m)
					s.history.reward(side, m.From(), m.To(), depth)
					if prevMove.Exists() {
						s.counters.set(prevMove, prevMovePiece, m)
					}
				}
				break
			}
		} else if m.IsQuiet() {
			s.history.penalize(side, m.From(), m.To(), depth)
		}
	}

	s.tt.Put(hash, TTEntry{
		HashMove: bestMove,
		Score:    int16(adjustMateScoreToStore(bestScore, ply)),
		Age:      s.currentAge,
		Depth:    depthToTT(depth),
		bound:    packType(bound, nodeClassNW),
	})

	return bestScore
}

// hasNonPawnMaterial reports whether side has any piece besides pawns
// and the king, the standard null-move zugzwang guard (§4.7).
func hasNonPawnMaterial(b Board, side Side) bool {
	occ := b.OccupiedBitboard(side)
	pawns := b.PieceBitboard(side, Pawn)
	king := b.PieceBitboard(side, King)
	return (occ &^ pawns &^ king).Any()
}

// depthToTT clamps a search depth (OnePly units) to the uint8 the
// transposition table stores it in (§4.2).
func depthToTT(depth int32) uint8 {
	if depth < 0 {
		return 0
	}
	if depth > 255 {
		return 255
	}
	return uint8(depth)
}
