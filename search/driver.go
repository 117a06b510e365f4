// driver.go implements the Iterative Driver (C8, §4.11): the outer
// depth loop, soft/hard time budgeting from a clock-style time
// control, and the continuation oracle that lets an iteration run past
// its soft budget when the position still looks unsettled.

package search

import (
	"math"
	"time"
)

// TimeControl describes the clock a Search should budget against,
// mirroring the information a GUI hands a UCI engine (§4.11, §6).
// TimeLeftMs == 0 with IncrementMs == 0 means "no time control": the
// driver runs to maxDepth (or until Stop) with no deadline at all.
type TimeControl struct {
	TimeLeftMs  int64
	IncrementMs int64
	MovesToGo   int // unused by the §4.11 budgeting formula; reserved for the caller
}

// safetyBufferMs is subtracted from maxT so the hard deadline always
// lands a hair before the clock-mandated one (§4.11).
const safetyBufferMs = 10

// computeBudget derives minT (the soft deadline: the driver always
// keeps searching until at least this point) and maxT (the hard
// deadline the Interrupt Supervisor enforces unconditionally) from tc
// and the number of legal moves L at the root, per §4.11's exponential
// ramp:
//
//	minT ≈ T·0.0333·(1 − e^(−0.05·L))
//	maxT ≈ T·0.25·(1 − e^(−0.05·L))
//
// both scaled by timeFactor[min(L,40)−1], with a 10ms safety buffer
// subtracted from maxT.
func computeBudget(tc TimeControl, legalMoves int) (minT, maxT time.Duration) {
	if tc.TimeLeftMs <= 0 {
		return 0, 0
	}
	l := legalMoves
	if l < 1 {
		l = 1
	}

	t := float64(tc.TimeLeftMs) + float64(tc.IncrementMs)*0.8
	decay := 1 - math.Exp(-0.05*float64(l))
	factor := timeFactorFor(legalMoves)

	minMs := t * 0.0333 * decay * factor
	maxMs := t*0.25*decay*factor - safetyBufferMs
	if maxMs < minMs {
		maxMs = minMs
	}
	if maxMs < 0 {
		maxMs = 0
	}

	return time.Duration(minMs) * time.Millisecond, time.Duration(maxMs) * time.Millisecond
}

// SearchTimed runs iterative deepening under a clock-style time
// control instead of a fixed deadline (§4.11, §6). maxDepth <= 0 means
// no depth cap; the clock alone then bounds the search (and when
// tc.TimeLeftMs <= 0 there is no clock either, so the search runs
// until Stop is called).
func (s *Searcher) SearchTimed(maxDepth int32, tc TimeControl) error {
	if s.board == nil || s.eval == nil {
		return ErrNoBoard
	}

	legalMoves := len(s.board.GenerateLegalMoves())
	minTime, maxTime := computeBudget(tc, legalMoves)

	s.currentAge = uint16(s.board.Ply())
	startTime := time.Now()

	var hardDeadline time.Time
	if maxTime > 0 {
		hardDeadline = startTime.Add(maxTime)
	}
	s.sup.start(hardDeadline)
	s.sup.reporter.BeginSearch()
	defer s.sup.reporter.EndSearch()

	s.runIterativeDeepeningTimed(maxDepth, startTime, minTime, maxTime)
	return nil
}

// runIterativeDeepening runs with no time control at all: every
// started iteration runs to completion or cancellation (used by
// Search, the fixed-deadline/fixed-depth entry point).
func (s *Searcher) runIterativeDeepening(maxDepth int32) {
	s.runIterativeDeepeningTimed(maxDepth, time.Time{}, 0, 0)
}

// iterationRecord is one completed iteration's result, the unit the
// continuation oracle (shouldExtend) reasons over.
type iterationRecord struct {
	score    int32
	bestMove Move
}

// runIterativeDeepeningTimed is the actual loop shared by Search and
// SearchTimed. maxTime == 0 disables the continuation check entirely:
// the loop then stops exactly at maxDepth or on cancellation, whichever
// comes first.
func (s *Searcher) runIterativeDeepeningTimed(maxDepth int32, startTime time.Time, minTime, maxTime time.Duration) {
	var history []iterationRecord

	s.stats = Stats{}
	s.variations = nil
	*s.killers = killerTable{}
	*s.counters = counterTable{}
	*s.history = historyTable{}

	for depth := OnePly; maxDepth <= 0 || depth <= maxDepth*OnePly; depth += OnePly {
		if !s.sup.isRunning() {
			break
		}

		s.see.reset()
		variations := s.searchRoot(depth, s.variations)
		if len(variations) == 0 {
			break
		}

		if !s.sup.isRunning() {
			break
		}
		s.variations = variations
		s.stats.Depth = depth / OnePly
		s.sup.reporter.Progress(s.stats, int32(variations[0].Score), variations[0].Moves)
		s.sup.completedIteration()

		history = append(history, iterationRecord{
			score:    int32(variations[0].Score),
			bestMove: variations[0].Moves[0],
		})
		if len(history) > 5 {
			history = history[len(history)-5:]
		}

		if maxTime <= 0 {
			continue
		}
		elapsed := time.Since(startTime)
		switch {
		case elapsed >= maxTime:
			return
		case len(history) < 5:
			continue
		case elapsed < minTime:
			continue
		default:
			if !shouldExtend(history, minTime, maxTime, elapsed) {
				return
			}
		}
	}
}

// shouldExtend is the continuation oracle (§4.11): once both minTime
// has elapsed and at least 5 iterations have completed, a finished
// iteration is allowed one more pass only if the position still looks
// unsettled, judged from how often the root's best move has changed
// recently (changes) weighed against how much its score has swung
// (σ, standard deviation of the last 5 scores around the latest) and
// how far into the [minTime, maxTime] budget the search already is (f).
func shouldExtend(history []iterationRecord, minTime, maxTime, elapsed time.Duration) bool {
	last5 := history
	if len(last5) > 5 {
		last5 = last5[len(last5)-5:]
	}

	latestMove := last5[len(last5)-1].bestMove
	changes := 0
	for _, h := range last5[:len(last5)-1] {
		if h.bestMove != latestMove {
			changes++
		}
	}

	sigma := stdDevAroundLatest(last5)
	f := timeFraction(minTime, maxTime, elapsed)

	switch {
	case changes >= 4:
		return true
	case changes >= 3 && sigma > 40*f:
		return true
	case changes >= 2 && sigma > 60*f:
		return true
	case changes >= 1 && sigma > 75*f:
		return true
	default:
		return false
	}
}

// stdDevAroundLatest computes the standard deviation of records'
// scores around the latest one, per §4.11's σ.
func stdDevAroundLatest(records []iterationRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	latest := float64(records[len(records)-1].score)
	var sumSq float64
	for _, r := range records {
		d := float64(r.score) - latest
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(records)))
}

// timeFraction computes §4.11's f = clamp((elapsed-minTime)/(maxTime-minTime), 0, 1).
func timeFraction(minTime, maxTime, elapsed time.Duration) float64 {
	span := maxTime - minTime
	if span <= 0 {
		return 1
	}
	f := float64(elapsed-minTime) / float64(span)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
