package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/samber/lo"
)

type AgentConfig struct {
	ID          int     `mapstructure:"id"`
	Kind        string  `mapstructure:"kind"` // uct, training or random
	Iterations  int     `mapstructure:"iterations"`
	Goroutines  int     `mapstructure:"goroutines"`
	Pure        bool    `mapstructure:"pure"` // disables the positional heuristics
	Temperature float64 `mapstructure:"temperature"`
}

type GameRecord struct {
	ID     int
	AgentA int // AgentConfig.ID playing PlayerA
	AgentB int // AgentConfig.ID playing PlayerB
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "iterations", "goroutines", "pure", "temperature"}
	rows := lo.Map(configs, func(config AgentConfig, _ int) []string {
		return []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Iterations),
			strconv.Itoa(config.Goroutines),
			strconv.FormatBool(config.Pure),
			strconv.FormatFloat(config.Temperature, 'g', -1, 64),
		}
	})
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent_a", "agent_b", "winner", "stones_a", "stones_b", "moves", "passes", "start_time", "end_time", "duration"}
	rows := lo.Map(records, func(record GameRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.AgentA),
			strconv.Itoa(record.AgentB),
			record.Winner.String(),
			strconv.Itoa(record.StonesA),
			strconv.Itoa(record.StonesB),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.Passes),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	})
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "goroutines", "duration", "episodes", "nodes", "shortcut"}
	rows := lo.Map(records, func(record MoveRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Move.String(),
			strconv.Itoa(record.Goroutines),
			record.Duration.String(),
			strconv.Itoa(record.Episodes),
			strconv.Itoa(record.Nodes),
			strconv.FormatBool(record.Shortcut),
		}
	})
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
