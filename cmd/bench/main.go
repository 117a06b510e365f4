// Command bench replays a handful of historic games through the
// search core at a fixed depth and reports nodes searched and nodes
// per second: the node count for a given depth should stay constant
// across non-functional changes, so a drift here flags an accidental
// behaviour change.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/halvorsen/corechess/board"
	"github.com/halvorsen/corechess/eval"
	"github.com/halvorsen/corechess/game"
	"github.com/halvorsen/corechess/search"
)

var depth = flag.Int("depth", 5, "depth to search to, in plies")

type gameInfo struct {
	description string
	moves       []string
}

var games = []gameInfo{
	{
		"Garry Kasparov - Veselin Topalov, Wijk aan Zee 1999",
		strings.Fields("e2e4 d7d6 d2d4 g8f6 b1c3 g7g6 c1e3 f8g7 d1d2 c7c6 f2f3 b7b5 g1e2 b8d7 e3h6 g7h6 d2h6 c8b7 a2a3 e7e5 e1c1 d8e7"),
	},
	{
		"Vladimir Kramnik - Alexey Shirov, Linares 1994",
		strings.Fields("g1f3 d7d5 d2d4 c8f5 c2c4 e7e6 b1c3 c7c6 d1b3 d8b6 c4c5 b6c7 c1f4 c7c8 e2e3 g8f6 b3a4 b8d7 b2b4 a7a6"),
	},
	{
		"Mikhail Tal - Boris Spassky, Leningrad 1954",
		strings.Fields("c2c4 g8f6 b1c3 e7e6 d2d4 c7c5 d4d5 e6d5 c4d5 g7g6 g1f3 f8g7 c1f4 d7d6 h2h3 e8g8 e2e3 f6e8 f1e2 b8d7"),
	},
}

type silentReporter struct{}

func (silentReporter) BeginSearch()                          {}
func (silentReporter) EndSearch()                            {}
func (silentReporter) Progress(search.Stats, int32, []search.Move) {}

// play replays g one ply at a time, searching to depth before every
// move, and returns the total node count across the whole game.
func play(g *gameInfo, depth int32) (uint64, error) {
	pos, err := game.FromFEN(board.FENStartPos)
	if err != nil {
		return 0, err
	}

	searcher, err := search.NewSearcher(search.Options{HashSizeMB: 16}, silentReporter{})
	if err != nil {
		return 0, err
	}

	var nodes uint64
	for _, mstr := range g.moves {
		searcher.SetBoard(pos, eval.New())
		if err := searcher.Search(depth, time.Time{}); err != nil {
			return 0, err
		}
		nodes += searcher.GetSearchDetails().Nodes

		bm := pos.Raw().UCIToMove(mstr)
		pos.Raw().DoMove(bm)
	}
	return nodes, nil
}

func evalAll(depth int) (uint64, float64) {
	start := time.Now()
	var total uint64
	for i := range games {
		n, err := play(&games[i], int32(depth))
		if err != nil {
			log.Fatalf("game #%d: %v", i, err)
		}
		total += n
		log.Printf("#%d %d %s\n", i, n, games[i].description)
	}
	elapsed := time.Since(start)
	return total, float64(total) / elapsed.Seconds()
}

func main() {
	flag.Parse()
	nodes, nps := evalAll(*depth)
	fmt.Printf("nodes %d\n", nodes)
	fmt.Printf("  nps %.0f\n", nps)
}
