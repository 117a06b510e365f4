// position.go implements search.Board atop a *board.Position: legal
// move generation (pseudo-legal generation plus a check filter, §6),
// make/unmake bookkeeping, and the small per-square/per-piece queries
// the search core's pruning and ordering heuristics need.

package game

import "github.com/halvorsen/corechess/board"
import "github.com/halvorsen/corechess/search"

// Position adapts a *board.Position to the search.Board interface.
// Not safe for concurrent use; exactly one Searcher binds to it at a
// time (§5).
type Position struct {
	pos        *board.Position
	moveStack  []board.Move
	legalCache map[search.Move]board.Move
}

// NewPosition wraps pos for use by the search core.
func NewPosition(pos *board.Position) *Position {
	return &Position{pos: pos, legalCache: make(map[search.Move]board.Move, 64)}
}

// FromFEN parses fen and wraps the resulting position.
func FromFEN(fen string) (*Position, error) {
	pos, err := board.PositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewPosition(pos), nil
}

// Raw exposes the underlying *board.Position, the seam the Evaluator
// (package eval) uses to bind itself to the same position (§6).
func (p *Position) Raw() *board.Position {
	return p.pos
}

func (p *Position) legalMoves(kind int) []search.Move {
	var pseudo []board.Move
	p.pos.GenerateMoves(kind, &pseudo)

	us := p.pos.SideToMove
	p.legalCache = make(map[search.Move]board.Move, len(pseudo))
	out := make([]search.Move, 0, len(pseudo))

	for _, bm := range pseudo {
		p.pos.DoMove(bm)
		legal := !p.pos.IsChecked(us)
		p.pos.UndoMove(bm)
		if !legal {
			continue
		}
		sm := toSearchMove(bm)
		p.legalCache[sm] = bm
		out = append(out, sm)
	}
	return out
}

// GenerateLegalMoves implements search.Board.
func (p *Position) GenerateLegalMoves() []search.Move {
	return p.legalMoves(board.All)
}

// GenerateLegalCaptures implements search.Board.
func (p *Position) GenerateLegalCaptures() []search.Move {
	return p.legalMoves(board.Violent)
}

// MakeMove implements search.Board. m must have come from the most
// recent GenerateLegalMoves/GenerateLegalCaptures call, or be
// search.NullMove.
func (p *Position) MakeMove(m search.Move) {
	if m == search.NullMove {
		p.pos.DoMove(board.Move{})
		p.moveStack = append(p.moveStack, board.Move{})
		return
	}
	bm, ok := p.legalCache[m]
	if !ok {
		// A hash move or killer from a different node than the one that
		// last generated moves here; regenerate before looking it up.
		p.legalMoves(board.All)
		bm, ok = p.legalCache[m]
		if !ok {
			return
		}
	}
	p.pos.DoMove(bm)
	p.moveStack = append(p.moveStack, bm)
}

// UndoMove implements search.Board.
func (p *Position) UndoMove() {
	n := len(p.moveStack) - 1
	bm := p.moveStack[n]
	p.moveStack = p.moveStack[:n]
	p.pos.UndoMove(bm)
}

// IsCheck implements search.Board.
func (p *Position) IsCheck() bool {
	return p.pos.IsChecked(p.pos.SideToMove)
}

// HashValue implements search.Board.
func (p *Position) HashValue() uint64 {
	return p.pos.Zobrist()
}

// SideToMove implements search.Board.
func (p *Position) SideToMove() search.Side {
	return toSide(p.pos.SideToMove)
}

// LastMove implements search.Board.
func (p *Position) LastMove() search.Move {
	if len(p.moveStack) == 0 {
		return search.NullMove
	}
	bm := p.moveStack[len(p.moveStack)-1]
	if bm == (board.Move{}) {
		return search.NullMove
	}
	return toSearchMove(bm)
}

// PieceAt implements search.Board.
func (p *Position) PieceAt(sq search.Square) search.Piece {
	return toPiece(p.pos.Get(board.Square(sq)))
}

// Ply implements search.Board.
func (p *Position) Ply() int {
	return p.pos.Ply
}

// PieceBitboard implements search.Board.
func (p *Position) PieceBitboard(side search.Side, pt search.PieceType) search.Bitboard {
	return search.Bitboard(p.pos.ByPiece(toBoardColor(side), toFigure(pt)))
}

// OccupiedBitboard implements search.Board.
func (p *Position) OccupiedBitboard(side search.Side) search.Bitboard {
	return search.Bitboard(p.pos.ByColor[toBoardColor(side)])
}

// Attacked implements search.Board.
func (p *Position) Attacked(sq search.Square, by search.Side) bool {
	return p.pos.GetAttacker(board.Square(sq), toBoardColor(by)) != board.NoFigure
}
