package searcher

import (
	"github.com/samber/lo"

	"othello/game"
)

// Policy is the positional layer laid over plain UCT: it may answer before
// any search runs, and it rescales root visit counts before the final pick.
// Rescaled values never feed back into the tree.
type Policy interface {
	Shortcut(state *game.Board, moves []game.Move) (game.Move, bool)
	Rescale(state *game.Board, move game.Move, visits float64) float64
}

// Pure leaves the search untouched.
type Pure struct{}

func (Pure) Shortcut(*game.Board, []game.Move) (game.Move, bool) {
	return game.Move{}, false
}

func (Pure) Rescale(_ *game.Board, _ game.Move, visits float64) float64 {
	return visits
}

type Category int

const (
	Other Category = iota
	Corner
	XSquare   // edge cell next to a corner
	PreCorner // diagonally inward from a corner
	Edge
)

func (c Category) String() string {
	switch c {
	case Corner:
		return "corner"
	case XSquare:
		return "x-square"
	case PreCorner:
		return "pre-corner"
	case Edge:
		return "edge"
	}
	return "other"
}

const (
	XSquareScale   = 0.1
	PreCornerScale = 0.4
	EdgeScale      = 1.5
)

// Positional takes any legal corner immediately and, after the search,
// discourages moves next to an open corner while favouring edges.
type Positional struct{}

func (Positional) Shortcut(state *game.Board, moves []game.Move) (game.Move, bool) {
	for _, corner := range corners(state.Size()) {
		if lo.Contains(moves, corner) {
			return corner, true
		}
	}
	return game.Move{}, false
}

func (Positional) Rescale(state *game.Board, move game.Move, visits float64) float64 {
	switch Classify(state, move) {
	case XSquare:
		if !nearestCornerHeldByOpponent(state, move) {
			return visits * XSquareScale
		}
	case PreCorner:
		if !nearestCornerHeldByOpponent(state, move) {
			return visits * PreCornerScale
		}
	case Edge:
		return visits * EdgeScale
	}
	return visits
}

// Classify places move into a positional category for a board of state's size.
func Classify(state *game.Board, move game.Move) Category {
	last := state.Size() - 1
	x, y := move.X, move.Y
	edgeX := x == 0 || x == last
	edgeY := y == 0 || y == last
	nextX := x == 1 || x == last-1
	nextY := y == 1 || y == last-1

	switch {
	case edgeX && edgeY:
		return Corner
	case edgeX && nextY, edgeY && nextX:
		return XSquare
	case nextX && nextY:
		return PreCorner
	case edgeX || edgeY:
		return Edge
	}
	return Other
}

func corners(size int) [4]game.Move {
	last := size - 1
	return [4]game.Move{{X: 0, Y: 0}, {X: last, Y: 0}, {X: 0, Y: last}, {X: last, Y: last}}
}

func nearestCorner(size int, move game.Move) game.Move {
	corner := game.Move{}
	if move.X >= size/2 {
		corner.X = size - 1
	}
	if move.Y >= size/2 {
		corner.Y = size - 1
	}
	return corner
}

func nearestCornerHeldByOpponent(state *game.Board, move game.Move) bool {
	corner := nearestCorner(state.Size(), move)
	return state.At(corner.X, corner.Y) == state.ToMove().Opponent()
}
