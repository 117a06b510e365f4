// supervisor.go implements the Interrupt Supervisor (C9): a periodic
// checkup invoked every 1024 nodes from every recursive level,
// deadline enforcement, and cooperative cancellation (§4.12, §5).
//
// The supervisor itself never runs on another goroutine in this
// engine — the search is strictly single-threaded (§5) — but `running`
// is an atomic so an external caller's goroutine can flip it via Stop
// at any time without synchronizing with the searcher.

package search

import (
	"sync/atomic"
	"time"
)

const checkupInterval = 1024

// supervisor owns the single source of cancellation truth (`running`,
// §3) and the wall-clock deadline. Reads/writes of running are
// sequentially consistent, which is all §5 requires.
type supervisor struct {
	running    atomic.Bool
	startTime  time.Time
	endTime    time.Time
	reporter   Reporter
	iterations int32 // completed iterations; checkup gates the timeout on this
}

func newSupervisor(reporter Reporter) *supervisor {
	if reporter == nil {
		reporter = noopReporter{}
	}
	s := &supervisor{reporter: reporter}
	s.running.Store(true)
	return s
}

// start arms the deadline. deadline.IsZero() means "no deadline, run
// until Stop()" (§5: searchTime == 0 sets endTime = +inf).
func (s *supervisor) start(deadline time.Time) {
	s.startTime = time.Now()
	s.endTime = deadline
	s.running.Store(true)
	s.iterations = 0
}

// Stop cooperatively cancels the search (§5, §6). It returns
// immediately; the search observes it through isRunning (every
// recursive frame already does, via checkup) until the search unwinds.
func (s *supervisor) Stop() {
	s.running.Store(false)
}

func (s *supervisor) isRunning() bool {
	return s.running.Load()
}

func (s *supervisor) completedIteration() {
	s.iterations++
}

// checkup is invoked every checkupInterval nodes from every recursive
// level (§4.12). It compares wall-clock to the deadline and flips
// running false once at least one full ply has completed, matching
// §4.12's "if exceeded and at least one full ply has completed".
func (s *supervisor) checkup() {
	if !s.running.Load() {
		return
	}
	if s.endTime.IsZero() {
		return
	}
	if s.iterations < 1 {
		return
	}
	if time.Now().After(s.endTime) {
		s.running.Store(false)
	}
}

// shouldCheckup reports whether nodesSearched has crossed a checkup
// boundary.
func shouldCheckup(nodesSearched uint64) bool {
	return nodesSearched%checkupInterval == 0
}
