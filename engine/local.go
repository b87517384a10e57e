package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher/agent"
)

// Engine owns the authoritative board of one game. PlayerA is played by
// Agents[0] and PlayerB by Agents[1].
type Engine struct {
	State  *game.Board
	Agents [2]agent.Agent
}

var _ Runner = (*Engine)(nil)

var ErrMissingAgent = errors.New("need an agent for each player")

func LocalEngine(size int, agents [2]agent.Agent) (*Engine, error) {
	if agents[0] == nil || agents[1] == nil {
		return nil, ErrMissingAgent
	}
	state, err := game.NewBoard(size)
	if err != nil {
		return nil, err
	}
	return &Engine{State: state, Agents: agents}, nil
}

// Run executes the entire game loop until neither side can move. Blocked
// players pass without consulting their agent.
func (e *Engine) Run() (game.Cell, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %v is starting", e.State.ToMove())

	for turn := 1; turn <= meta.MaxTurns; turn++ {
		if e.State.IsTerminal() {
			break
		}
		player := e.State.ToMove()

		if len(e.State.LegalMoves()) == 0 {
			if err := e.State.ApplyMove(game.Pass); err != nil {
				return game.Empty, gameMetric, moveMetrics, err
			}
			log.Debug().Int("turn", turn).Stringer("player", player).Msg("no legal move, passing")
			gameMetric.Passes++
			moveMetrics = append(moveMetrics, metrics.MoveMetric{Step: turn, Player: player, Move: game.Pass})
			continue
		}

		move, searchMetric, err := e.agentFor(player).FindMove(e.State.Clone())
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("player %v on turn %d: %w", player, turn, err)
		}
		if err := e.State.ApplyMove(move); err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("player %v on turn %d: %w", player, turn, err)
		}
		log.Trace().Int("turn", turn).Stringer("player", player).Stringer("move", move).Msg("move played")

		gameMetric.TotalMoves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player,
			Move:         move,
			SearchMetric: searchMetric,
		})
	}

	if !e.State.IsTerminal() {
		log.Warn().Msgf("stopped after %d turns (game not over)", meta.MaxTurns)
	}

	winner := e.State.Winner()
	gameMetric.Winner = winner
	gameMetric.StonesA = e.State.Count(game.PlayerA)
	gameMetric.StonesB = e.State.Count(game.PlayerB)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	log.Debug().
		Stringer("winner", winner).
		Int("stones_a", gameMetric.StonesA).
		Int("stones_b", gameMetric.StonesB).
		Msg("game over")

	return winner, gameMetric, moveMetrics, nil
}

func (e *Engine) agentFor(player game.Cell) agent.Agent {
	if player == game.PlayerA {
		return e.Agents[0]
	}
	return e.Agents[1]
}
