package searcher

import (
	"errors"

	"othello/experiments/metrics"
	"othello/game"
)

var ErrEmptyMoveSet = errors.New("no legal moves to search")

// MoveStat holds the root statistics of one candidate move. Score is the
// visit count after the policy's rescaling and only drives the final pick.
type MoveStat struct {
	Move   game.Move
	Visits int
	Wins   float64
	Score  float64
}

type Result struct {
	Move     game.Move
	Stats    []MoveStat
	Shortcut bool // Move was chosen by the policy without searching
	Metric   metrics.SearchMetric
}

// robustChild returns the index of the stat with the highest score, keeping
// the earliest one on ties.
func robustChild(stats []MoveStat) int {
	if len(stats) == 0 {
		panic("no candidate moves")
	}

	best := 0
	for i := 1; i < len(stats); i++ {
		if stats[i].Score > stats[best].Score {
			best = i
		}
	}
	return best
}
