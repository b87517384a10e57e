package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"othello/game"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.Equal(t, dir, filepath.Dir(w.Dir()))

	t.Run("writing agent configs", func(t *testing.T) {
		configs := []AgentConfig{
			{ID: 1, Kind: "uct", Iterations: 500, Goroutines: 4},
			{ID: 2, Kind: "training", Iterations: 100, Goroutines: 1, Pure: true, Temperature: 0.5},
		}

		require.NoError(t, w.WriteAgentConfigs(configs))

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "iterations", "goroutines", "pure", "temperature"},
			{"1", "uct", "500", "4", "false", "0"},
			{"2", "training", "100", "1", "true", "0.5"},
		}, rows)
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{
			ID:     1,
			AgentA: 2,
			AgentB: 1,
			GameMetric: GameMetric{
				Winner:     game.PlayerB,
				StonesA:    20,
				StonesB:    44,
				StartTime:  start,
				EndTime:    start.Add(3 * time.Second),
				Duration:   3 * time.Second,
				TotalMoves: 60,
				Passes:     1,
			},
		}}

		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"id", "agent_a", "agent_b", "winner", "stones_a", "stones_b", "moves", "passes", "start_time", "end_time", "duration"}, rows[0])
		require.Equal(t, []string{"1", "2", "1", "O", "20", "44", "60", "1", "2024-01-02T03:04:05Z", "2024-01-02T03:04:08Z", "3s"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		records := []MoveRecord{
			{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: game.PlayerA, Move: game.Move{X: 2, Y: 4}, SearchMetric: SearchMetric{Goroutines: 1, Duration: time.Millisecond, Episodes: 100, Nodes: 101}}},
			{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: game.PlayerB, Move: game.Pass}},
		}

		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, [][]string{
			{"game", "step", "player", "move", "goroutines", "duration", "episodes", "nodes", "shortcut"},
			{"1", "1", "X", "(2,4)", "1", "1ms", "100", "101", "false"},
			{"1", "2", "O", "pass", "0", "0s", "0", "0", "false"},
		}, rows)
	})
}

func TestCollector(t *testing.T) {
	t.Run("counting episodes and nodes", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		for i := 0; i < 5; i++ {
			c.AddEpisode()
		}
		c.AddNodes(7)
		c.AddNodes(3)

		m := c.Complete()
		require.Equal(t, 2, m.Goroutines)
		require.Equal(t, 5, m.Episodes)
		require.Equal(t, 10, m.Nodes)
	})

	t.Run("resetting on start", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddEpisode()
		c.Start(1)

		require.Zero(t, c.Complete().Episodes)
	})

	t.Run("collecting nothing with the dummy", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(4)
		c.AddEpisode()

		require.Zero(t, c.Complete())
	})
}
