package searcher

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"othello/experiments/metrics"
	"othello/game"
)

type Option func(u *UCT)

// UCT searches a fresh tree on every call. It never mutates the board it is
// given.
type UCT struct {
	rng        *rand.Rand
	policy     Policy
	goroutines int
	verbose    bool
	metrics    metrics.Collector
}

func WithRand(rng *rand.Rand) Option {
	return func(u *UCT) {
		if rng != nil {
			u.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(u *UCT) {
		u.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPolicy replaces the default Positional policy. Use Pure{} for plain UCT.
func WithPolicy(policy Policy) Option {
	return func(u *UCT) {
		if policy != nil {
			u.policy = policy
		}
	}
}

func WithGoroutines(goroutines int) Option {
	return func(u *UCT) {
		if goroutines > 0 {
			u.goroutines = goroutines
		}
	}
}

func WithMetrics() Option {
	return func(u *UCT) {
		u.metrics = metrics.NewCollector()
	}
}

// WithVerbose logs the whole tree at debug level after each search instead of
// only the root's children at trace level.
func WithVerbose() Option {
	return func(u *UCT) {
		u.verbose = true
	}
}

func NewUCT(options ...Option) *UCT {
	u := &UCT{ // Default values
		policy:     Positional{},
		goroutines: 1,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(u)
	}
	if u.rng == nil {
		u.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return u
}

// Search returns the move to play from state after the given number of
// iterations.
func (u *UCT) Search(state *game.Board, iterations int) (game.Move, error) {
	result, err := u.Simulate(state, iterations)
	if err != nil {
		return game.Move{}, err
	}
	return result.Move, nil
}

// Simulate is Search with the root statistics and metrics of the run.
func (u *UCT) Simulate(state *game.Board, iterations int) (Result, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return Result{}, fmt.Errorf("%w: %v to move", ErrEmptyMoveSet, state.ToMove())
	}

	if move, ok := u.policy.Shortcut(state, moves); ok {
		log.Debug().Stringer("move", move).Msg("taking corner without search")
		return Result{
			Move:     move,
			Shortcut: true,
			Metric:   metrics.SearchMetric{Goroutines: u.goroutines, Shortcut: true},
		}, nil
	}

	u.metrics.Start(u.goroutines)
	stats, err := u.search(state, max(iterations, 0))
	if err != nil {
		return Result{}, err
	}
	metric := u.metrics.Complete()

	for i := range stats {
		stats[i].Score = u.policy.Rescale(state, stats[i].Move, float64(stats[i].Visits))
	}
	best := stats[robustChild(stats)]

	log.Debug().
		Stringer("move", best.Move).
		Int("visits", best.Visits).
		Float64("score", best.Score).
		Int("episodes", metric.Episodes).
		Msg("search completed")

	return Result{Move: best.Move, Stats: stats, Metric: metric}, nil
}

func (u *UCT) search(state *game.Board, iterations int) ([]MoveStat, error) {
	if u.goroutines > 1 {
		return u.searchParallel(state, iterations)
	}

	t, err := u.buildTree(state, iterations, u.rng)
	if err != nil {
		return nil, err
	}
	if u.verbose {
		log.Debug().Msg(t.String())
	} else if e := log.Trace(); e.Enabled() {
		e.Msg("\n" + t.childrenString())
	}
	return t.rootStats(), nil
}
