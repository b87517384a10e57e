package searcher

import (
	"math"

	"github.com/samber/lo"

	"othello/game"
)

const (
	rootIndex = 0
	noParent  = -1
)

// node is one entry of the search arena. Wins are counted from the point of
// view of justMoved, the player whose move led to this node.
type node struct {
	move      game.Move
	parent    int
	children  []int
	untried   []game.Move
	justMoved game.Cell
	wins      float64
	visits    int
}

func newNode(move game.Move, parent int, state *game.Board) node {
	return node{
		move:      move,
		parent:    parent,
		untried:   state.Successors(),
		justMoved: state.JustMoved(),
	}
}

// tree owns every node of one search. Parents are referenced by index only,
// so dropping the tree drops the whole search.
type tree struct {
	nodes []node
}

func newTree(state *game.Board) *tree {
	t := &tree{nodes: make([]node, 0, 256)}
	t.nodes = append(t.nodes, newNode(game.Move{}, noParent, state))
	return t
}

func (t *tree) size() int {
	return len(t.nodes)
}

func (t *tree) isRoot(i int) bool {
	return t.nodes[i].parent == noParent
}

// fullyExpanded reports whether i has children and no untried moves left.
func (t *tree) fullyExpanded(i int) bool {
	n := &t.nodes[i]
	return len(n.untried) == 0 && len(n.children) > 0
}

// selectChild picks the child of a fully expanded node with the highest
// UCB1 value. Ties keep the child created first.
func (t *tree) selectChild(i int) int {
	n := &t.nodes[i]
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCB1(CSquared, float64(n.visits))
	best := -1
	bestScore := math.Inf(-1)
	for _, c := range n.children {
		child := &t.nodes[c]
		if score := policy.evaluate(child.wins, float64(child.visits)); score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// expand removes move from i's untried moves and appends the child reached by
// it. state must already have move applied.
func (t *tree) expand(i int, move game.Move, state *game.Board) int {
	n := &t.nodes[i]
	idx := lo.IndexOf(n.untried, move)
	if idx < 0 {
		panic("expanding a move that is not untried: " + move.String())
	}
	n.untried = append(n.untried[:idx], n.untried[idx+1:]...)

	child := len(t.nodes)
	t.nodes = append(t.nodes, newNode(move, i, state))
	t.nodes[i].children = append(t.nodes[i].children, child)
	return child
}

func (t *tree) update(i int, outcome float64) {
	t.nodes[i].visits++
	t.nodes[i].wins += outcome
}

// backup walks from i to the root, scoring the terminal state from each
// node's own player.
func (t *tree) backup(i int, terminal *game.Board) {
	for ; i != noParent; i = t.nodes[i].parent {
		t.update(i, terminal.Result(t.nodes[i].justMoved))
	}
}

// rootStats lists the root's children in creation order, followed by the
// moves that were never expanded.
func (t *tree) rootStats() []MoveStat {
	root := &t.nodes[rootIndex]
	stats := lo.Map(root.children, func(c int, _ int) MoveStat {
		child := &t.nodes[c]
		return MoveStat{Move: child.move, Visits: child.visits, Wins: child.wins}
	})
	for _, m := range root.untried {
		stats = append(stats, MoveStat{Move: m})
	}
	return stats
}
