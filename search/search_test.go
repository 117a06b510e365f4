package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halvorsen/corechess/board"
	"github.com/halvorsen/corechess/eval"
	"github.com/halvorsen/corechess/game"
	"github.com/halvorsen/corechess/search"
)

type collectingReporter struct {
	iterations int
}

func (r *collectingReporter) BeginSearch() {}
func (r *collectingReporter) EndSearch()   {}
func (r *collectingReporter) Progress(search.Stats, int32, []search.Move) {
	r.iterations++
}

func newSearcher(t *testing.T, reporter search.Reporter) *search.Searcher {
	t.Helper()
	s, err := search.NewSearcher(search.Options{HashSizeMB: 4}, reporter)
	require.NoError(t, err)
	return s
}

func TestSearchFindsMateInOne(t *testing.T) {
	// Classic scholar's-mate setup (1.e4 e5 2.Qh5 Nc6 3.Bc4 Nf6?? and
	// now White to move): Qxf7 is mate, and the searcher must find it.
	pos, err := game.FromFEN("r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4")
	require.NoError(t, err)

	reporter := &collectingReporter{}
	s := newSearcher(t, reporter)
	s.SetBoard(pos, eval.New())

	require.NoError(t, s.Search(3, time.Time{}))

	best := s.GetBestMove()
	assert.True(t, best.Exists())
	assert.Equal(t, "h5f7", best.String())
	assert.True(t, search.IsMateScore(s.GetBestMoveScore()))
	assert.Positive(t, reporter.iterations)
}

func TestSearchFromStartPosReturnsLegalMove(t *testing.T) {
	pos, err := game.FromFEN(board.FENStartPos)
	require.NoError(t, err)

	s := newSearcher(t, nil)
	s.SetBoard(pos, eval.New())
	require.NoError(t, s.Search(2, time.Time{}))

	best := s.GetBestMove()
	assert.True(t, best.Exists())

	legal := pos.GenerateLegalMoves()
	assert.Contains(t, legal, best)
}

func TestSearchWithoutBoundBoardReturnsError(t *testing.T) {
	s := newSearcher(t, nil)
	err := s.Search(1, time.Time{})
	assert.ErrorIs(t, err, search.ErrNoBoard)
}

// TestSearchMoveStackIntegrity exercises §8's "move-stack integrity"
// invariant: the caller's position must come out bitwise identical to
// how it went in.
func TestSearchMoveStackIntegrity(t *testing.T) {
	pos, err := game.FromFEN(board.FENStartPos)
	require.NoError(t, err)
	before := pos.HashValue()
	side := pos.SideToMove()

	s := newSearcher(t, nil)
	s.SetBoard(pos, eval.New())
	require.NoError(t, s.Search(3, time.Time{}))

	assert.Equal(t, before, pos.HashValue())
	assert.Equal(t, side, pos.SideToMove())
}

// TestSearchTTIdempotence exercises §8's "TT idempotence": two
// consecutive searches of the same position without an intervening
// SetBoard must agree on the best move and must not need more nodes
// the second time around (the TT now has entries to reuse).
func TestSearchTTIdempotence(t *testing.T) {
	pos, err := game.FromFEN(board.FENStartPos)
	require.NoError(t, err)

	s := newSearcher(t, nil)
	s.SetBoard(pos, eval.New())

	require.NoError(t, s.Search(4, time.Time{}))
	firstMove := s.GetBestMove()
	firstScore := s.GetBestMoveScore()
	firstNodes := s.GetSearchDetails().Nodes

	require.NoError(t, s.Search(4, time.Time{}))
	secondMove := s.GetBestMove()
	secondScore := s.GetBestMoveScore()
	secondNodes := s.GetSearchDetails().Nodes

	assert.Equal(t, firstMove, secondMove)
	assert.InDelta(t, firstScore, secondScore, 1)
	assert.LessOrEqual(t, secondNodes, firstNodes)
}

// TestSearchNegamaxSymmetry exercises §8's "negamax symmetry": mirroring
// a position (swap colours, flip ranks) and searching it must return
// the negated score, within ±1.
func TestSearchNegamaxSymmetry(t *testing.T) {
	pos, err := game.FromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	mirrored, err := game.FromFEN("r3k3/8/8/8/8/8/8/4K3 b - - 0 1")
	require.NoError(t, err)

	s1 := newSearcher(t, nil)
	s1.SetBoard(pos, eval.New())
	require.NoError(t, s1.Search(3, time.Time{}))

	s2 := newSearcher(t, nil)
	s2.SetBoard(mirrored, eval.New())
	require.NoError(t, s2.Search(3, time.Time{}))

	assert.InDelta(t, s1.GetBestMoveScore(), -s2.GetBestMoveScore(), 1)
}

// TestSearchStalemateReturnsZeroWithNoMove exercises §8 scenario 4: a
// stalemated side has no legal moves, so search must not crash and
// must report no best move.
func TestSearchStalemateReturnsZeroWithNoMove(t *testing.T) {
	pos, err := game.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Empty(t, pos.GenerateLegalMoves())

	s := newSearcher(t, nil)
	s.SetBoard(pos, eval.New())
	require.NoError(t, s.Search(4, time.Time{}))

	assert.False(t, s.GetBestMove().Exists())
	assert.Zero(t, s.GetBestMoveScore())
}

// TestSearchCancellationSafety exercises §8's "cancellation safety":
// after Stop(), an unbounded Search returns without error instead of
// hanging indefinitely, and the caller's position is left unchanged.
func TestSearchCancellationSafety(t *testing.T) {
	pos, err := game.FromFEN(board.FENStartPos)
	require.NoError(t, err)
	before := pos.HashValue()

	s := newSearcher(t, nil)
	s.SetBoard(pos, eval.New())

	done := make(chan struct{})
	go func() {
		time.Sleep(20 * time.Millisecond)
		s.Stop()
		close(done)
	}()

	require.NoError(t, s.Search(0, time.Time{}))
	<-done

	assert.Equal(t, before, pos.HashValue())
}

// findMove returns the legal move matching uci (e.g. "e1e2") among pos's
// currently legal moves, failing the test if it isn't there.
func findMove(t *testing.T, pos *game.Position, uci string) search.Move {
	t.Helper()
	for _, m := range pos.GenerateLegalMoves() {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s not legal in current position", uci)
	return search.NullMove
}

// TestThreefoldRepetitionIsDraw exercises §8 scenario 5: replaying a
// king shuffle back to the same position for the third time must flip
// the evaluator's draw detection on, which is what lets the searcher
// score a forced-repetition line as 0 rather than chasing it as a win
// or a loss.
func TestThreefoldRepetitionIsDraw(t *testing.T) {
	pos, err := game.FromFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	require.NoError(t, err)
	ev := eval.New()
	ev.SetBoard(pos)

	assert.False(t, ev.IsDraw())

	shuffle := []string{"e1e2", "e8e7", "e2e1", "e7e8"}
	for round := 0; round < 2; round++ {
		for _, uci := range shuffle {
			pos.MakeMove(findMove(t, pos, uci))
		}
	}
	assert.True(t, ev.IsDraw())
}

// TestSearchMultiPVReturnsDistinctVariations exercises multi-PV
// bookkeeping (§4.10): requesting N variations returns up to N
// distinct first moves, best score first.
func TestSearchMultiPVReturnsDistinctVariations(t *testing.T) {
	pos, err := game.FromFEN(board.FENStartPos)
	require.NoError(t, err)

	s, err := search.NewSearcher(search.Options{HashSizeMB: 4, NumVariations: 3}, nil)
	require.NoError(t, err)
	s.SetBoard(pos, eval.New())
	require.NoError(t, s.Search(2, time.Time{}))

	variations := s.Variations()
	require.Len(t, variations, 3)

	seen := make(map[search.Move]bool, len(variations))
	for i, v := range variations {
		require.NotEmpty(t, v.Moves)
		assert.False(t, seen[v.Moves[0]], "duplicate first move at slot %d", i)
		seen[v.Moves[0]] = true
		if i > 0 {
			assert.LessOrEqual(t, variations[i].Score, variations[i-1].Score)
		}
	}
}
