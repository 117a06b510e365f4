// see.go implements Static Exchange Evaluation and MVV-LVA move
// scoring, grounded on the swap-algorithm SEE used by the board
// package's own teacher lineage: walk the capture sequence on one
// square in increasing attacker value, then minimax the per-ply gains
// back up (https://www.chessprogramming.org/SEE_-_The_Swap_Algorithm).

package eval

import "github.com/halvorsen/corechess/board"
import "github.com/halvorsen/corechess/search"

// figureValue is used only for move ordering (SEE/MVV-LVA), distinct
// from the tuned Weights the static evaluator uses.
var figureValue = [7]int32{0, 100, 320, 330, 500, 900, 20000}

// EvaluateMoveSEE implements search.Evaluator.
func (e *Evaluator) EvaluateMoveSEE(m search.Move) int32 {
	from := board.Square(m.From())
	to := board.Square(m.To())

	target := e.pos.Get(to)
	if m.Flag() == search.FlagEnPassant {
		capSq := board.RankFile(from.Rank(), to.File())
		target = e.pos.Get(capSq)
	}

	attacker := e.pos.Get(from)
	us := attacker.Color()

	gainedFromPromotion := int32(0)
	if m.IsPromotion() {
		// search.PieceType and board.Figure number Pawn..King alike (1..6).
		gainedFromPromotion = figureValue[board.Figure(m.PromotionType())] - figureValue[board.Pawn]
	}

	return see(e.pos, us, from, to, attacker, target) + gainedFromPromotion
}

// EvaluateMoveMVVLVA implements search.Evaluator: a cheap ranking used
// only to order evasions while in check (§4.9), not a true exchange
// evaluation.
func (e *Evaluator) EvaluateMoveMVVLVA(m search.Move) int32 {
	to := board.Square(m.To())
	victim := e.pos.Get(to)
	attacker := e.pos.Get(board.Square(m.From()))
	return figureValue[victim.Figure()]*16 - figureValue[attacker.Figure()]
}

// see runs the swap algorithm for a capture of target by attacker
// moving from-to, returning the net material gain for the side that
// moves first, from that side's point of view.
func see(pos *board.Position, us board.Color, from, to board.Square, attacker, target board.Piece) int32 {
	var occ [3]board.Bitboard
	occ[board.White] = pos.ByColor[board.White]
	occ[board.Black] = pos.ByColor[board.Black]
	occ[us] &^= from.Bitboard()

	gain := make([]int32, 0, 16)
	gain = append(gain, figureValue[target.Figure()])

	sq := to
	side := us.Opposite()
	lastValue := figureValue[attacker.Figure()]

	for {
		all := occ[board.White] | occ[board.Black]
		fig, fromSq, ok := leastValuableAttacker(pos, occ[side], sq, all)
		if !ok {
			break
		}
		gain = append(gain, lastValue-gain[len(gain)-1])
		occ[side] &^= fromSq.Bitboard()
		lastValue = figureValue[fig]
		side = side.Opposite()
	}

	for i := len(gain) - 2; i >= 0; i-- {
		if -gain[i+1] < gain[i] {
			gain[i] = -gain[i+1]
		}
	}
	if len(gain) == 0 {
		return 0
	}
	return gain[0]
}

// leastValuableAttacker finds the cheapest piece of ours (restricted
// to the ours bitboard) that attacks sq given the board is occupied as
// all, in pawn/knight/bishop/rook/queen/king order.
func leastValuableAttacker(pos *board.Position, ours board.Bitboard, sq board.Square, all board.Bitboard) (board.Figure, board.Square, bool) {
	if att := ours & pos.ByFigure[board.Pawn] & pawnAttackers(pos, sq); att != 0 {
		return board.Pawn, att.LSB().AsSquare(), true
	}
	if att := ours & pos.ByFigure[board.Knight] & pos.KnightMobility(sq); att != 0 {
		return board.Knight, att.LSB().AsSquare(), true
	}
	if att := ours & pos.ByFigure[board.Bishop] & pos.BishopMobility(sq, all); att != 0 {
		return board.Bishop, att.LSB().AsSquare(), true
	}
	if att := ours & pos.ByFigure[board.Rook] & pos.RookMobility(sq, all); att != 0 {
		return board.Rook, att.LSB().AsSquare(), true
	}
	if att := ours & pos.ByFigure[board.Queen] & pos.QueenMobility(sq, all); att != 0 {
		return board.Queen, att.LSB().AsSquare(), true
	}
	if att := ours & pos.ByFigure[board.King] & pos.KingMobility(sq); att != 0 {
		return board.King, att.LSB().AsSquare(), true
	}
	return board.NoFigure, 0, false
}

// pawnAttackers returns the squares from which a pawn attacks sq,
// matched to colour: White's squares one rank below sq, Black's one
// rank above.
func pawnAttackers(pos *board.Position, sq board.Square) board.Bitboard {
	bb := sq.Bitboard()
	return board.Backward(board.White, board.West(bb)|board.East(bb))&pos.ByColor[board.White] |
		board.Backward(board.Black, board.West(bb)|board.East(bb))&pos.ByColor[board.Black]
}
