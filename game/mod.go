package game

import "errors"

// Cell is the content of a single square.
type Cell int8

const (
	Empty Cell = iota
	PlayerA
	PlayerB
)

const DefaultSize = 8

var (
	ErrInvalidBoardSize = errors.New("board size must be even and positive")
	ErrIllegalMove      = errors.New("illegal move")
)

// Opponent returns the other player. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case PlayerA:
		return "X"
	case PlayerB:
		return "O"
	}
	return "."
}
