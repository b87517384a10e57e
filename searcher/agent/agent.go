package agent

import (
	"othello/experiments/metrics"
	"othello/game"
)

type Agent interface {
	// FindMove returns the move to play from state and the metrics of the search
	// behind it (zero when the agent does not search or collects none).
	// state is never mutated.
	FindMove(state *game.Board) (game.Move, metrics.SearchMetric, error)
}
