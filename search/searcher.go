// searcher.go is the public entry point (§6): Searcher binds the
// external Board/Evaluator collaborators to the components built in
// the rest of this package (C1-C5, C7-C10) and exposes the handful of
// operations a caller needs — configure once, bind a position, search,
// and read back the result.

package search

import (
	"errors"
	"time"
)

// Searcher is the top-level object a caller owns. It is not safe for
// concurrent use: Search blocks the calling goroutine for its whole
// duration; Stop is the only method meant to be called from another
// goroutine while Search is running (§5).
type Searcher struct {
	board Board
	eval  Evaluator

	tt       *TranspositionTable
	killers  *killerTable
	counters *counterTable
	history  *historyTable
	pv       *pvTable
	see      seeCache

	sup   *supervisor
	stats Stats
	opts  Options

	currentAge      uint16
	currentMaxDepth int32 // in OnePly units

	// mateDistance tracks the shortest mate seen so far in the current
	// root iteration (§3): nodes at ply > mateDistance are pruned as
	// provably irrelevant (§4.8). Reset to MaxPly ("no mate known yet")
	// at the start of every root iteration and only ever lowered.
	mateDistance int32

	variations []Variation // multi-PV slots, best first
}

// ErrNoBoard is returned by Search when no position has been bound yet.
var ErrNoBoard = errors.New("search: no board bound")

// NewSearcher allocates a Searcher per opts (§4.2, §6). NumVariations
// below 1 is clamped to 1.
func NewSearcher(opts Options, reporter Reporter) (*Searcher, error) {
	if opts.NumVariations < 1 {
		opts.NumVariations = 1
	}
	tt, err := NewTranspositionTable(opts.HashSizeMB)
	if err != nil {
		return nil, err
	}
	return &Searcher{
		tt:       tt,
		killers:  &killerTable{},
		counters: &counterTable{},
		history:  &historyTable{},
		pv:       &pvTable{},
		see:      newSEECache(),
		sup:      newSupervisor(reporter),
		opts:     opts,
	}, nil
}

// SetBoard binds b and e as the position to search from this point on,
// and rebinds e to b (§6 "setBoard"). It does not clear the
// transposition table: entries from earlier positions simply age out
// via the replacement predicate (§4.2).
func (s *Searcher) SetBoard(b Board, e Evaluator) {
	s.board = b
	s.eval = e
	s.eval.SetBoard(b)
}

// Stop cooperatively cancels a running Search (§4.12, §6).
func (s *Searcher) Stop() {
	s.sup.Stop()
}

// Search runs iterative deepening until maxDepth plies, or until
// deadline elapses, whichever comes first. deadline.IsZero() means no
// time limit (maxDepth alone bounds the search); maxDepth <= 0 means
// no depth limit (the deadline alone bounds it). Neither is checked:
// with no deadline and maxDepth <= 0 the search runs until Stop is
// called.
func (s *Searcher) Search(maxDepth int32, deadline time.Time) error {
	if s.board == nil || s.eval == nil {
		return ErrNoBoard
	}
	s.currentAge = uint16(s.board.Ply())
	s.sup.start(deadline)
	s.sup.reporter.BeginSearch()
	defer s.sup.reporter.EndSearch()

	s.runIterativeDeepening(maxDepth)
	return nil
}

// GetSearchDetails returns a snapshot of the running statistics (§6).
func (s *Searcher) GetSearchDetails() Stats {
	return s.stats
}

// GetBestMove returns the best move found by the most recent Search
// call, or NullMove if none has completed an iteration yet.
func (s *Searcher) GetBestMove() Move {
	if len(s.variations) == 0 || len(s.variations[0].Moves) == 0 {
		return NullMove
	}
	return s.variations[0].Moves[0]
}

// GetBestMoveScore returns the score of the best move, from the side
// to move's point of view at the time Search was called.
func (s *Searcher) GetBestMoveScore() int32 {
	if len(s.variations) == 0 {
		return 0
	}
	return int32(s.variations[0].Score)
}

// Variations returns every principal variation found, best first
// (§4.10, multi-PV).
func (s *Searcher) Variations() []Variation {
	out := make([]Variation, len(s.variations))
	copy(out, s.variations)
	return out
}
