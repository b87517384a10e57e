package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/engine"
	"othello/experiments"
	"othello/meta"
	"othello/searcher"
	"othello/searcher/agent"
)

func main() {
	configPath := flag.String("config", "", "Experiment config file (YAML, JSON or TOML)")
	preset := flag.String("preset", "", "Built-in experiment to run without a config: throughput or heuristics")
	iterations := flag.Int("iterations", meta.Iterations, "Iterations per move for presets and demo games")
	seed := flag.Uint64("seed", meta.Seed, "Seed for demo games")
	debug := flag.Bool("debug", false, "Log at debug level")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var cfg experiments.Config
	switch {
	case *configPath != "":
		loaded, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		cfg = *loaded
	case *preset == "throughput":
		cfg = experiments.ThroughputConfig(*iterations)
	case *preset == "heuristics":
		cfg = experiments.HeuristicsConfig(*iterations)
	case *preset != "":
		log.Fatal().Str("preset", *preset).Msg("unknown preset")
	default:
		playDemo(*iterations, *seed)
		return
	}

	report, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().
		Str("dir", report.Dir).
		Int("games", len(report.GameRecords)).
		Interface("wins", report.Wins).
		Int("draws", report.Draws).
		Msg("experiment stored")
}

// playDemo plays one game of the positional searcher against random moves
// and prints the final board.
func playDemo(iterations int, seed uint64) {
	agents := [2]agent.Agent{
		agent.NewEvaluationAgent(searcher.NewUCT(searcher.WithSeed(seed), searcher.WithMetrics()), iterations),
		agent.NewRandomAgent(rand.New(rand.NewSource(seed + 1))),
	}
	e, err := engine.LocalEngine(meta.BoardSize, agents)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	if err := e.State.Render(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("failed to render board")
	}
	log.Info().
		Stringer("winner", winner).
		Int("stones_a", gameMetric.StonesA).
		Int("stones_b", gameMetric.StonesB).
		Dur("duration", gameMetric.Duration).
		Msg("game over")
}
