package experiments

import (
	"othello/experiments/metrics"
	"othello/meta"
)

// ThroughputConfig pairs each root-parallel configuration with itself, for
// the same playing strength and similar game length, so the move records
// show how episodes per second scale with goroutines.
func ThroughputConfig(iterations int) Config {
	goroutines := []int{1, 2, 4, 8}
	cfg := Config{
		Name:      "parallelization_to_throughput",
		Games:     2,
		BoardSize: meta.BoardSize,
		Seed:      meta.Seed,
		OutputDir: meta.OutputDir,
	}
	for i, g := range goroutines {
		cfg.Agents = append(cfg.Agents, metrics.AgentConfig{ID: i + 1, Kind: KindUCT, Iterations: iterations, Goroutines: g})
		cfg.MatchUps = append(cfg.MatchUps, []int{i + 1, i + 1})
	}
	return cfg
}

// HeuristicsConfig pits the positional policy against plain UCT with the
// same budget, and both against a random baseline.
func HeuristicsConfig(iterations int) Config {
	return Config{
		Name:      "heuristics_to_strength",
		Games:     meta.Games,
		BoardSize: meta.BoardSize,
		Seed:      meta.Seed,
		OutputDir: meta.OutputDir,
		Agents: []metrics.AgentConfig{
			{ID: 0, Kind: KindRandom},
			{ID: 1, Kind: KindUCT, Iterations: iterations, Goroutines: 1, Pure: true},
			{ID: 2, Kind: KindUCT, Iterations: iterations, Goroutines: 1},
		},
		MatchUps: [][]int{{1, 2}, {0, 1}, {0, 2}},
	}
}
