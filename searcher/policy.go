package searcher

import "math"

// Hyperparameters for UCT

const CSquared = 2.0 // Exploration constant

const Win = 1.0
const Draw = 0.5
const Loss = 0.0

type ucb1 struct {
	numerator float64
}

func newUCB1(cSquared float64, N float64) ucb1 {
	if N == 0 {
		panic("N cannot be 0")
	}
	return ucb1{numerator: cSquared * math.Log(N)}
}

func (u ucb1) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCB1 = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}
