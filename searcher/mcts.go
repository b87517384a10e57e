package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"othello/game"
)

// simulate runs one selection, expansion, rollout and backup pass on t.
// state is consumed: it ends up as the terminal board of the rollout.
func (t *tree) simulate(state *game.Board, rng *rand.Rand) error {
	i, err := t.selectThenExpand(state, rng)
	if err != nil {
		return err
	}
	if err := rollout(state, rng); err != nil {
		return err
	}
	t.backup(i, state)
	return nil
}

func (t *tree) selectThenExpand(state *game.Board, rng *rand.Rand) (int, error) {
	i := rootIndex
	for t.fullyExpanded(i) {
		i = t.selectChild(i)
		if err := state.ApplyMove(t.nodes[i].move); err != nil {
			return i, fmt.Errorf("replaying selected move: %w", err)
		}
	}

	// Terminal nodes have nothing to expand
	untried := t.nodes[i].untried
	if len(untried) == 0 {
		return i, nil
	}

	move := untried[rng.Intn(len(untried))]
	if err := state.ApplyMove(move); err != nil {
		return i, fmt.Errorf("expanding move: %w", err)
	}
	return t.expand(i, move, state), nil
}

// rollout plays uniformly random moves, passing when forced, until neither
// side can move.
func rollout(state *game.Board, rng *rand.Rand) error {
	for moves := state.Successors(); len(moves) > 0; moves = state.Successors() {
		if err := state.ApplyMove(moves[rng.Intn(len(moves))]); err != nil {
			return fmt.Errorf("rollout: %w", err)
		}
	}
	return nil
}

func (u *UCT) buildTree(state *game.Board, iterations int, rng *rand.Rand) (*tree, error) {
	t := newTree(state)
	for i := 0; i < iterations; i++ {
		if err := t.simulate(state.Clone(), rng); err != nil {
			return t, err
		}
		u.metrics.AddEpisode()
	}
	u.metrics.AddNodes(t.size())
	return t, nil
}

// searchParallel splits the budget over independent trees, one per goroutine,
// and sums their root statistics. Each worker draws its own seed from u.rng up
// front so a seeded engine stays reproducible.
func (u *UCT) searchParallel(state *game.Board, iterations int) ([]MoveStat, error) {
	trees := make([]*tree, u.goroutines)
	rngs := make([]*rand.Rand, u.goroutines)
	for w := range rngs {
		rngs[w] = rand.New(rand.NewSource(u.rng.Uint64()))
	}

	var g errgroup.Group
	for w := 0; w < u.goroutines; w++ {
		w := w
		share := iterations / u.goroutines
		if w < iterations%u.goroutines {
			share++
		}
		g.Go(func() error {
			t, err := u.buildTree(state.Clone(), share, rngs[w])
			trees[w] = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeRootStats(trees), nil
}

func mergeRootStats(trees []*tree) []MoveStat {
	var merged []MoveStat
	index := make(map[game.Move]int)
	for _, t := range trees {
		for _, s := range t.rootStats() {
			i, ok := index[s.Move]
			if !ok {
				index[s.Move] = len(merged)
				merged = append(merged, s)
				continue
			}
			merged[i].Visits += s.Visits
			merged[i].Wins += s.Wins
		}
	}
	return merged
}
