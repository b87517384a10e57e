package agent

import (
	"math"

	"github.com/samber/lo"
	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

type trainingAgent struct {
	uct         *searcher.UCT
	iterations  int
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. It
// samples among the root moves in proportion to visits^(1/temperature); a
// non-positive temperature plays the searcher's own pick.
func NewTrainingAgent(uct *searcher.UCT, iterations int, temperature float64, rng *rand.Rand) Agent {
	return trainingAgent{uct: uct, iterations: iterations, temperature: temperature, rng: rng}
}

func (a trainingAgent) FindMove(state *game.Board) (game.Move, metrics.SearchMetric, error) {
	result, err := a.uct.Simulate(state, a.iterations)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	if result.Shortcut || a.temperature <= 0 {
		return result.Move, result.Metric, nil
	}

	policy := adjustTemperature(result.Stats, a.temperature)
	if policy == nil {
		return result.Move, result.Metric, nil
	}
	return sample(result.Stats, policy, a.rng.Float64()), result.Metric, nil
}

// adjustTemperature returns the move probabilities aligned with stats, or nil
// when no move was visited.
func adjustTemperature(stats []searcher.MoveStat, temperature float64) []float64 {
	exponent := 1.0 / temperature
	adjusted := lo.Map(stats, func(s searcher.MoveStat, _ int) float64 {
		if s.Visits == 0 {
			return 0
		}
		return math.Pow(float64(s.Visits), exponent)
	})
	sum := lo.Sum(adjusted)
	if sum == 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return nil
	}
	for i := range adjusted {
		adjusted[i] /= sum
	}
	return adjusted
}

func sample(stats []searcher.MoveStat, policy []float64, sampled float64) game.Move {
	cumulative := 0.0
	last := 0
	for i, prob := range policy {
		if prob == 0 {
			continue
		}
		last = i
		cumulative += prob
		if sampled < cumulative {
			return stats[i].Move
		}
	}
	return stats[last].Move // Fallback in case of rounding errors
}
