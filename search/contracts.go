// contracts.go fixes the boundary to the external collaborators:
// board representation, move generation, and static evaluation. The
// search core only ever talks to these through the interfaces below,
// so this module never needs to know which board/evaluator
// implementation it is driving.

package search

// Bitboard is an opaque 64-bit set of squares, one bit per square.
// The search core only ever intersects and tests these (sentry masks,
// non-pawn-material checks); it never builds or shifts them itself.
type Bitboard uint64

// Test reports whether sq is a member of the set.
func (b Bitboard) Test(sq Square) bool {
	return b&(1<<uint(sq)) != 0
}

// Any reports whether the set is non-empty.
func (b Bitboard) Any() bool {
	return b != 0
}

// Board is the external position/move-generation collaborator (§3, §6).
// Implementations own legality, zobrist hashing, and draw bookkeeping
// (50-move, repetition, insufficient material — surfaced through
// Evaluator.IsDraw, not here). A Board is bound to one search() call
// for its lifetime; the engine never mutates it concurrently with the
// caller.
type Board interface {
	// GenerateLegalMoves returns every legal move in the current position.
	GenerateLegalMoves() []Move
	// GenerateLegalCaptures returns legal captures and promotions only,
	// used by quiescence search (§4.9).
	GenerateLegalCaptures() []Move
	// MakeMove applies m. Every MakeMove must be matched by exactly one
	// UndoMove on every exit path of the frame that called it (§3 invariant).
	MakeMove(m Move)
	// UndoMove reverts the most recent MakeMove. Must be called in strict
	// LIFO order relative to MakeMove.
	UndoMove()
	// IsCheck reports whether the side to move is in check.
	IsCheck() bool
	// HashValue returns the position's Zobrist hash, used as the TT key.
	HashValue() uint64
	// SideToMove returns the side on move.
	SideToMove() Side
	// LastMove returns the move that produced the current position, or
	// NullMove at the root.
	LastMove() Move
	// PieceAt returns the piece occupying sq, or NoPiece.
	PieceAt(sq Square) Piece
	// Ply returns the position's ply counter (used for TT aging and as
	// the basis for SearchState.currentAge, §3).
	Ply() int
	// PieceBitboard returns the squares occupied by side's pieces of
	// type pt, used by the scoring utilities (C10) for passed-pawn
	// sentry masks and by null-move eligibility.
	PieceBitboard(side Side, pt PieceType) Bitboard
	// OccupiedBitboard returns every square occupied by side.
	OccupiedBitboard(side Side) Bitboard
	// Attacked reports whether sq is attacked by side in the current
	// position. Used by the Pruning/Extension Policy (C4) to detect
	// check-giving moves worth extending and quiet moves that evade a
	// threatened capture (§4.4, §4.5).
	Attacked(sq Square, by Side) bool
}

// Evaluator is the external static-evaluation collaborator (§1, §6).
// Position score, Static Exchange Evaluation, and MVV-LVA move scoring
// all live here — the search core only ever calls through this
// interface and never recomputes any of it itself.
type Evaluator interface {
	// Evaluate returns the static score of the bound position from the
	// side-to-move's point of view.
	Evaluate() int32
	// EvaluateMoveSEE returns the Static Exchange Evaluation of m.
	EvaluateMoveSEE(m Move) int32
	// EvaluateMoveMVVLVA returns the Most-Valuable-Victim/
	// Least-Valuable-Attacker ordering score of m.
	EvaluateMoveMVVLVA(m Move) int32
	// IsDraw reports whether the bound position is a draw by the
	// referee's rules (50-move, repetition, insufficient material).
	IsDraw() bool
	// SetBoard rebinds the evaluator to b. Called once per search() and
	// again whenever the bound board's position changes out from under
	// static calls that don't take a board parameter directly.
	SetBoard(b Board)
}

// Reporter receives search progress. It is the Interrupt Supervisor's
// only outbound channel (§4.12, §7: "no logging is part of the core
// contract"). The zero value (noopReporter) does nothing, a silent
// null-object default.
type Reporter interface {
	BeginSearch()
	EndSearch()
	// Progress is called once per completed iteration with a snapshot
	// of the statistics and the best line found so far.
	Progress(stats Stats, score int32, pv []Move)
}

type noopReporter struct{}

func (noopReporter) BeginSearch()                  {}
func (noopReporter) EndSearch()                    {}
func (noopReporter) Progress(Stats, int32, []Move) {}

// Options configures a Searcher (§6). There is no file format or
// environment variable owned by the core (§6): callers build Options
// programmatically.
type Options struct {
	// NumVariations is the multi-PV count N (§4.10). Must be >= 1;
	// NewSearcher clamps values below 1 up to 1.
	NumVariations int
	// HashSizeMB sizes the transposition table (§4.2).
	HashSizeMB int
	// AnalyseMode is carried for the caller; the Searcher does not read
	// it. Reporter.Progress is called after every completed iteration
	// whatever its value.
	AnalyseMode bool
}

// Stats accumulates per-search counters (part of SearchState, §3).
type Stats struct {
	Nodes       uint64 // nodesSearched
	Depth       int32  // currentMaxDepth, in plies (not sixths)
	SelDepth    int32  // deepest ply reached by pvSearch/nwSearch
	TTHit       uint64
	TTMiss      uint64
}

// TTHitRatio returns the fraction of TT probes that hit.
func (s *Stats) TTHitRatio() float64 {
	total := s.TTHit + s.TTMiss
	if total == 0 {
		return 0
	}
	return float64(s.TTHit) / float64(total)
}
