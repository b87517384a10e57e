package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"
)

// illegalAgent always plays an occupied cell.
type illegalAgent struct{}

func (illegalAgent) FindMove(state *game.Board) (game.Move, metrics.SearchMetric, error) {
	h := state.Size() / 2
	return game.Move{X: h, Y: h}, metrics.SearchMetric{}, nil
}

// mutatingAgent plays its move on the board it is given before returning it.
type mutatingAgent struct {
	inner agent.Agent
}

func (a mutatingAgent) FindMove(state *game.Board) (game.Move, metrics.SearchMetric, error) {
	move, metric, err := a.inner.FindMove(state)
	if err == nil {
		_ = state.ApplyMove(move)
	}
	return move, metric, err
}

func randomAgents(seed uint64) [2]agent.Agent {
	return [2]agent.Agent{
		agent.NewRandomAgent(rand.New(rand.NewSource(seed))),
		agent.NewRandomAgent(rand.New(rand.NewSource(seed + 1))),
	}
}

func TestLocalEngine(t *testing.T) {
	t.Run("rejecting invalid sizes", func(t *testing.T) {
		_, err := LocalEngine(5, randomAgents(1))
		require.ErrorIs(t, err, game.ErrInvalidBoardSize)
	})

	t.Run("rejecting missing agents", func(t *testing.T) {
		_, err := LocalEngine(8, [2]agent.Agent{agent.NewRandomAgent(rand.New(rand.NewSource(1)))})
		require.ErrorIs(t, err, ErrMissingAgent)
	})
}

func TestRun(t *testing.T) {
	t.Run("playing random games to the end", func(t *testing.T) {
		for seed := uint64(1); seed <= 20; seed++ {
			e, err := LocalEngine(6, randomAgents(seed))
			require.NoError(t, err)

			winner, gameMetric, moveMetrics, err := e.Run()
			require.NoError(t, err)
			require.True(t, e.State.IsTerminal())
			require.Equal(t, e.State.Winner(), winner)
			require.Equal(t, winner, gameMetric.Winner)
			require.Equal(t, e.State.Count(game.PlayerA), gameMetric.StonesA)
			require.Equal(t, e.State.Count(game.PlayerB), gameMetric.StonesB)
			require.Len(t, moveMetrics, gameMetric.TotalMoves+gameMetric.Passes)
			require.Equal(t, gameMetric.StonesA+gameMetric.StonesB, 4+gameMetric.TotalMoves)
			require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))

			require.Equal(t, game.PlayerA, moveMetrics[0].Player, "PlayerA should move first")
			for i, m := range moveMetrics {
				require.Equal(t, i+1, m.Step)
				if i > 0 && !moveMetrics[i-1].Move.IsPass() && !m.Move.IsPass() {
					require.NotEqual(t, moveMetrics[i-1].Player, m.Player, "players should alternate")
				}
			}
		}
	})

	t.Run("recording passes", func(t *testing.T) {
		passes := 0
		for seed := uint64(1); seed <= 50; seed++ {
			e, err := LocalEngine(4, randomAgents(seed))
			require.NoError(t, err)

			_, gameMetric, moveMetrics, err := e.Run()
			require.NoError(t, err)
			for _, m := range moveMetrics {
				if m.Move.IsPass() {
					passes++
				}
			}
			require.LessOrEqual(t, gameMetric.Passes, len(moveMetrics))
		}
		require.Positive(t, passes, "small boards should force at least one pass")
	})

	t.Run("playing searching agents", func(t *testing.T) {
		agents := [2]agent.Agent{
			agent.NewEvaluationAgent(searcher.NewUCT(searcher.WithSeed(1), searcher.WithMetrics()), 20),
			agent.NewRandomAgent(rand.New(rand.NewSource(2))),
		}
		e, err := LocalEngine(6, agents)
		require.NoError(t, err)

		_, _, moveMetrics, err := e.Run()
		require.NoError(t, err)
		require.True(t, e.State.IsTerminal())
		for _, m := range moveMetrics {
			if m.Player == game.PlayerA && !m.Move.IsPass() && !m.Shortcut {
				require.Equal(t, 20, m.Episodes)
			}
		}
	})

	t.Run("handing agents a copy of the board", func(t *testing.T) {
		agents := randomAgents(3)
		agents[0] = mutatingAgent{inner: agents[0]}
		e, err := LocalEngine(6, agents)
		require.NoError(t, err)

		_, _, _, err = e.Run()
		require.NoError(t, err)
		require.True(t, e.State.IsTerminal())
	})

	t.Run("returning illegal moves as errors", func(t *testing.T) {
		e, err := LocalEngine(8, [2]agent.Agent{illegalAgent{}, illegalAgent{}})
		require.NoError(t, err)

		_, _, _, err = e.Run()
		require.ErrorIs(t, err, game.ErrIllegalMove)
	})
}
