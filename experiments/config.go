package experiments

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"

	"othello/experiments/metrics"
	"othello/meta"
)

const (
	KindUCT      = "uct"
	KindTraining = "training"
	KindRandom   = "random"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

type Config struct {
	Name      string                `mapstructure:"name"`
	Games     int                   `mapstructure:"games"` // Per match-up
	BoardSize int                   `mapstructure:"board_size"`
	Seed      uint64                `mapstructure:"seed"`
	OutputDir string                `mapstructure:"output_dir"`
	Agents    []metrics.AgentConfig `mapstructure:"agents"`
	MatchUps  [][]int               `mapstructure:"matchups"` // Pairs of agent IDs
}

// LoadConfig reads an experiment from a YAML, JSON or TOML file. Scalar keys
// may be overridden by OTHELLO_* environment variables, e.g. OTHELLO_GAMES.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("othello")
	v.AutomaticEnv()

	v.SetDefault("name", "experiment")
	v.SetDefault("games", meta.Games)
	v.SetDefault("board_size", meta.BoardSize)
	v.SetDefault("seed", meta.Seed)
	v.SetDefault("output_dir", meta.OutputDir)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Agents {
		a := &c.Agents[i]
		if a.Kind == "" {
			a.Kind = KindUCT
		}
		a.Kind = strings.ToLower(a.Kind)
		if a.Kind != KindRandom {
			if a.Iterations <= 0 {
				a.Iterations = meta.Iterations
			}
			if a.Goroutines <= 0 {
				a.Goroutines = meta.Goroutines
			}
		}
		if a.Kind == KindTraining && a.Temperature == 0 {
			a.Temperature = 1.0
		}
	}
}

// Validate checks the config is playable.
func (c *Config) Validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, c.Games)
	}
	if c.BoardSize <= 0 || c.BoardSize%2 != 0 {
		return fmt.Errorf("%w: board_size must be even and positive, got %d", ErrInvalidConfig, c.BoardSize)
	}
	if len(c.MatchUps) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}

	ids := lo.Map(c.Agents, func(a metrics.AgentConfig, _ int) int { return a.ID })
	if dup := lo.FindDuplicates(ids); len(dup) > 0 {
		return fmt.Errorf("%w: duplicate agent ids %v", ErrInvalidConfig, dup)
	}
	for _, a := range c.Agents {
		if !lo.Contains([]string{KindUCT, KindTraining, KindRandom}, a.Kind) {
			return fmt.Errorf("%w: agent %d has unknown kind %q", ErrInvalidConfig, a.ID, a.Kind)
		}
	}
	for i, m := range c.MatchUps {
		if len(m) != 2 {
			return fmt.Errorf("%w: matchup %d needs two agents, got %d", ErrInvalidConfig, i, len(m))
		}
		for _, id := range m {
			if !lo.Contains(ids, id) {
				return fmt.Errorf("%w: matchup %d references unknown agent %d", ErrInvalidConfig, i, id)
			}
		}
	}
	return nil
}

func (c *Config) agent(id int) metrics.AgentConfig {
	a, _ := lo.Find(c.Agents, func(a metrics.AgentConfig) bool { return a.ID == id })
	return a
}
