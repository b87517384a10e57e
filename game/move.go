package game

import "fmt"

type Move struct {
	X int
	Y int
}

// Pass hands the turn over without placing a stone. Only valid when the side
// to move is blocked and the game is not over.
var Pass = Move{X: -1, Y: -1}

func (m Move) IsPass() bool {
	return m == Pass
}

func (m Move) String() string {
	if m.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("(%d,%d)", m.X, m.Y)
}
