package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"othello/game"
)

func TestRollout(t *testing.T) {
	t.Run("playing to a terminal board", func(t *testing.T) {
		state := openingBoard(t)

		require.NoError(t, rollout(state, rand.New(rand.NewSource(1))))
		require.True(t, state.IsTerminal())
	})

	t.Run("leaving a terminal board untouched", func(t *testing.T) {
		state := mustParse(t, `
			XX
			XO`, game.PlayerB)
		before := state.Clone()

		require.NoError(t, rollout(state, rand.New(rand.NewSource(1))))
		require.True(t, before.Equal(state))
	})
}

func TestTreeSimulate(t *testing.T) {
	t.Run("expanding one child per iteration until the root is full", func(t *testing.T) {
		state := openingBoard(t)
		tr := newTree(state)
		rng := rand.New(rand.NewSource(5))

		for i := 1; i <= 4; i++ {
			require.NoError(t, tr.simulate(state.Clone(), rng))
			require.Len(t, tr.nodes[rootIndex].children, i)
			require.Equal(t, i, tr.nodes[rootIndex].visits)
		}
		require.True(t, tr.fullyExpanded(rootIndex))

		require.NoError(t, tr.simulate(state.Clone(), rng))
		require.Len(t, tr.nodes[rootIndex].children, 4, "Full root should select instead of expanding")
		require.Equal(t, 6, tr.size())
	})

	t.Run("backing up terminal leaves without expanding", func(t *testing.T) {
		// (0,0) is the only move and ends the game
		state := mustParse(t, `
			XXXX
			XXXX
			XXXX
			.OXX`, game.PlayerA)
		tr := newTree(state)
		rng := rand.New(rand.NewSource(5))

		for i := 0; i < 3; i++ {
			require.NoError(t, tr.simulate(state.Clone(), rng))
		}

		require.Equal(t, 2, tr.size(), "Terminal child should never expand")
		require.Equal(t, 3, tr.nodes[rootIndex].visits)
		require.Equal(t, 3, tr.nodes[1].visits)
		require.Equal(t, 3*Win, tr.nodes[1].wins, "PlayerA wins every rollout")
	})

	t.Run("leaves the root board untouched", func(t *testing.T) {
		state := openingBoard(t)
		before := state.Clone()
		tr := newTree(state)
		rng := rand.New(rand.NewSource(9))

		for i := 0; i < 20; i++ {
			require.NoError(t, tr.simulate(state.Clone(), rng))
		}
		require.True(t, before.Equal(state))
	})
}

func TestSearchParallel(t *testing.T) {
	t.Run("splitting the budget across trees", func(t *testing.T) {
		state := openingBoard(t)
		u := NewUCT(WithSeed(21), WithGoroutines(3), WithMetrics())

		stats, err := u.searchParallel(state, 100)
		require.NoError(t, err)

		total := 0
		for _, s := range stats {
			total += s.Visits
		}
		require.Equal(t, 100, total, "Every iteration should reach one root child")
		require.Len(t, stats, 4)
	})

	t.Run("reproducing results for a fixed seed", func(t *testing.T) {
		state := openingBoard(t)

		first, err := NewUCT(WithSeed(8), WithGoroutines(4)).searchParallel(state, 200)
		require.NoError(t, err)
		second, err := NewUCT(WithSeed(8), WithGoroutines(4)).searchParallel(state, 200)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})
}

func TestMergeRootStats(t *testing.T) {
	t.Run("summing statistics per move in first-seen order", func(t *testing.T) {
		a, b := game.Move{X: 2, Y: 4}, game.Move{X: 5, Y: 3}
		t1 := &tree{nodes: []node{
			{parent: noParent, children: []int{1}, untried: []game.Move{b}},
			{parent: 0, move: a, visits: 3, wins: 1},
		}}
		t2 := &tree{nodes: []node{
			{parent: noParent, children: []int{1, 2}},
			{parent: 0, move: b, visits: 2, wins: 2},
			{parent: 0, move: a, visits: 1, wins: 1},
		}}

		require.Equal(t, []MoveStat{
			{Move: a, Visits: 4, Wins: 2},
			{Move: b, Visits: 2, Wins: 2},
		}, mergeRootStats([]*tree{t1, t2}))
	})
}
