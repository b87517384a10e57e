package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var directions = [8][2]int{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

// Board represents an Othello position. Cells are indexed [x][y]; the side to
// move is always the opponent of the player who just moved.
type Board struct {
	size      int
	cells     [][]Cell
	justMoved Cell
}

// NewBoard initializes a size x size board with the four starting stones in
// the centre. PlayerA has the first move.
func NewBoard(size int) (*Board, error) {
	if size <= 0 || size%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBoardSize, size)
	}
	b := newEmptyBoard(size, PlayerB)
	h := size / 2
	b.cells[h][h] = PlayerA
	b.cells[h-1][h-1] = PlayerA
	b.cells[h][h-1] = PlayerB
	b.cells[h-1][h] = PlayerB
	return b, nil
}

func newEmptyBoard(size int, justMoved Cell) *Board {
	cells := make([][]Cell, size)
	for x := range cells {
		cells[x] = make([]Cell, size)
	}
	return &Board{size: size, cells: cells, justMoved: justMoved}
}

// Parse reads a board in the format produced by String: one line per row,
// top row first (highest y), using '.', 'X' (PlayerA) and 'O' (PlayerB).
// Surrounding whitespace is ignored.
func Parse(s string, toMove Cell) (*Board, error) {
	if toMove != PlayerA && toMove != PlayerB {
		return nil, fmt.Errorf("invalid side to move: %v", toMove)
	}
	rows := strings.Fields(s)
	size := len(rows)
	if size == 0 || size%2 != 0 {
		return nil, fmt.Errorf("%w: got %d rows", ErrInvalidBoardSize, size)
	}

	b := newEmptyBoard(size, toMove.Opponent())
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoardSize, i, len(row), size)
		}
		y := size - 1 - i
		for x, ch := range row {
			switch ch {
			case '.':
			case 'X':
				b.cells[x][y] = PlayerA
			case 'O':
				b.cells[x][y] = PlayerB
			default:
				return nil, fmt.Errorf("invalid cell %q at row %d", ch, i)
			}
		}
	}
	return b, nil
}

// Clone returns a deep copy that shares no cells with b.
func (b *Board) Clone() *Board {
	cells := make([][]Cell, b.size)
	for x := range b.cells {
		cells[x] = make([]Cell, b.size)
		copy(cells[x], b.cells[x])
	}
	return &Board{size: b.size, cells: cells, justMoved: b.justMoved}
}

func (b *Board) Size() int {
	return b.size
}

// JustMoved is the player who made the last move (PlayerB on a fresh board).
func (b *Board) JustMoved() Cell {
	return b.justMoved
}

func (b *Board) ToMove() Cell {
	return b.justMoved.Opponent()
}

func (b *Board) OnBoard(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

// At returns the content of (x, y), or Empty when off the board.
func (b *Board) At(x, y int) Cell {
	if !b.OnBoard(x, y) {
		return Empty
	}
	return b.cells[x][y]
}

// LegalMoves lists the empty cells where the side to move would flip at least
// one opponent counter, in x-major order.
func (b *Board) LegalMoves() []Move {
	return b.movesFor(b.ToMove())
}

// Successors is LegalMoves, or a single Pass when the side to move is blocked
// but its opponent is not. Returns nil once the game is over.
func (b *Board) Successors() []Move {
	if moves := b.LegalMoves(); len(moves) > 0 {
		return moves
	}
	if b.hasMoveFor(b.justMoved) {
		return []Move{Pass}
	}
	return nil
}

// IsTerminal reports whether neither side has a legal move.
func (b *Board) IsTerminal() bool {
	return !b.hasMoveFor(b.ToMove()) && !b.hasMoveFor(b.justMoved)
}

func (b *Board) movesFor(mover Cell) []Move {
	var moves []Move
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			if b.isLegalFor(x, y, mover) {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}

func (b *Board) hasMoveFor(mover Cell) bool {
	for x := 0; x < b.size; x++ {
		for y := 0; y < b.size; y++ {
			if b.isLegalFor(x, y, mover) {
				return true
			}
		}
	}
	return false
}

func (b *Board) isLegalFor(x, y int, mover Cell) bool {
	if !b.OnBoard(x, y) || b.cells[x][y] != Empty {
		return false
	}
	for _, d := range directions {
		if b.sandwiched(x, y, d[0], d[1], mover) > 0 {
			return true
		}
	}
	return false
}

// sandwiched counts the opponent counters between (x, y) and the mover's own
// counter in direction (dx, dy). Runs that end in an empty cell or at the edge
// count as zero.
func (b *Board) sandwiched(x, y, dx, dy int, mover Cell) int {
	opponent := mover.Opponent()
	n := 0
	cx, cy := x+dx, y+dy
	for b.OnBoard(cx, cy) && b.cells[cx][cy] == opponent {
		n++
		cx += dx
		cy += dy
	}
	if n > 0 && b.OnBoard(cx, cy) && b.cells[cx][cy] == mover {
		return n
	}
	return 0
}

// ApplyMove places the mover's stone, flips every sandwiched run and hands
// the turn to the opponent. Pass is accepted only when the mover is blocked
// and the game is not over.
func (b *Board) ApplyMove(move Move) error {
	mover := b.ToMove()

	if move.IsPass() {
		if b.hasMoveFor(mover) {
			return fmt.Errorf("%w: %v cannot pass with legal moves available", ErrIllegalMove, mover)
		}
		if !b.hasMoveFor(mover.Opponent()) {
			return fmt.Errorf("%w: cannot pass, game is over", ErrIllegalMove)
		}
		b.justMoved = mover
		return nil
	}

	if !b.OnBoard(move.X, move.Y) {
		return fmt.Errorf("%w: %v is off the board", ErrIllegalMove, move)
	}
	if b.cells[move.X][move.Y] != Empty {
		return fmt.Errorf("%w: %v is occupied", ErrIllegalMove, move)
	}
	if !b.isLegalFor(move.X, move.Y, mover) {
		return fmt.Errorf("%w: %v flips nothing for %v", ErrIllegalMove, move, mover)
	}

	for _, d := range directions {
		n := b.sandwiched(move.X, move.Y, d[0], d[1], mover)
		for i := 1; i <= n; i++ {
			b.cells[move.X+i*d[0]][move.Y+i*d[1]] = mover
		}
	}
	b.cells[move.X][move.Y] = mover
	b.justMoved = mover
	return nil
}

// Count returns the number of cells holding c.
func (b *Board) Count(c Cell) int {
	return lo.SumBy(b.cells, func(column []Cell) int {
		return lo.Count(column, c)
	})
}

// Result scores the board for player: 1 for more stones, 0 for fewer and
// 0.5 on equal counts. Only meaningful once IsTerminal.
func (b *Board) Result(player Cell) float64 {
	mine, theirs := b.Count(player), b.Count(player.Opponent())
	switch {
	case mine > theirs:
		return 1.0
	case mine < theirs:
		return 0.0
	}
	return 0.5
}

// Winner returns the player with more stones, or Empty on a draw.
func (b *Board) Winner() Cell {
	switch b.Result(PlayerA) {
	case 1.0:
		return PlayerA
	case 0.0:
		return PlayerB
	}
	return Empty
}

func (b *Board) Equal(other *Board) bool {
	if b.size != other.size || b.justMoved != other.justMoved {
		return false
	}
	for x := range b.cells {
		for y := range b.cells[x] {
			if b.cells[x][y] != other.cells[x][y] {
				return false
			}
		}
	}
	return true
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := b.size - 1; y >= 0; y-- {
		for x := 0; x < b.size; x++ {
			sb.WriteString(b.cells[x][y].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
