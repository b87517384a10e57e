package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing a uniformly random legal move.
func NewRandomAgent(rng *rand.Rand) Agent {
	return randomAgent{rng: rng}
}

func (a randomAgent) FindMove(state *game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("%w: %v to move", searcher.ErrEmptyMoveSet, state.ToMove())
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
