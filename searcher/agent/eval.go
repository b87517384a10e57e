package agent

import (
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type evaluationAgent struct {
	uct        *searcher.UCT
	iterations int
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(uct *searcher.UCT, iterations int) Agent {
	return evaluationAgent{uct: uct, iterations: iterations}
}

func (a evaluationAgent) FindMove(state *game.Board) (game.Move, metrics.SearchMetric, error) {
	result, err := a.uct.Simulate(state, a.iterations)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return result.Move, result.Metric, nil
}
