package experiments

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

// Report summarises a finished experiment.
type Report struct {
	Dir         string // Where the records were written
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Wins        map[int]int // Agent ID to games won
	Draws       int
}

// Run plays every match-up cfg.Games times, swapping colours after each game,
// and writes the agent configs, game records and move records as CSV.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	report := &Report{Wins: make(map[int]int)}
	count := 0

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.MatchUps {
		config1 := cfg.agent(matchup[0])
		config2 := cfg.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		for i := 0; i < cfg.Games; i++ {
			configA, configB := config1, config2
			if i%2 == 1 {
				configA, configB = config2, config1
			}

			winner, gameMetric, moveMetrics, err := runGame(cfg.BoardSize, configA, configB, rng)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			report.GameRecords = append(report.GameRecords, metrics.GameRecord{
				ID:         count,
				AgentA:     configA.ID,
				AgentB:     configB.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				report.MoveRecords = append(report.MoveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case game.PlayerA:
				report.Wins[configA.ID]++
			case game.PlayerB:
				report.Wins[configB.ID]++
			default:
				report.Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %v (%d-%d)",
				mi+1, len(cfg.MatchUps), i+1, cfg.Games, winner, gameMetric.StonesA, gameMetric.StonesB)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(cfg.MatchUps))
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	dir, err := store(cfg, report)
	if err != nil {
		return nil, err
	}
	report.Dir = dir
	return report, nil
}

func store(cfg Config, report *Report) (string, error) {
	writer, err := metrics.NewWriter(filepath.Join(cfg.OutputDir, cfg.Name))
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.GameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.MoveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game with configA playing PlayerA.
func runGame(size int, configA, configB metrics.AgentConfig, rng *rand.Rand) (game.Cell, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := [2]agent.Agent{
		createAgent(configA, rng.Uint64()),
		createAgent(configB, rng.Uint64()),
	}
	e, err := engine.LocalEngine(size, agents)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Kind == KindRandom {
		return agent.NewRandomAgent(rand.New(rand.NewSource(seed)))
	}

	options := []searcher.Option{
		searcher.WithSeed(seed),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithMetrics(),
	}
	if config.Pure {
		options = append(options, searcher.WithPolicy(searcher.Pure{}))
	}
	uct := searcher.NewUCT(options...)

	if config.Kind == KindTraining {
		return agent.NewTrainingAgent(uct, config.Iterations, config.Temperature, rand.New(rand.NewSource(seed^0x9e3779b97f4a7c15)))
	}
	return agent.NewEvaluationAgent(uct, config.Iterations)
}
