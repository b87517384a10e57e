package game

import (
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// Render writes the board to w in the String layout, colouring the stones
// when the terminal supports it.
func (b *Board) Render(w io.Writer, opts ...termenv.OutputOption) error {
	out := termenv.NewOutput(w, opts...)

	var sb strings.Builder
	for y := b.size - 1; y >= 0; y-- {
		for x := 0; x < b.size; x++ {
			sb.WriteString(styleCell(out, b.cells[x][y]))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func styleCell(out *termenv.Output, c Cell) string {
	switch c {
	case PlayerA:
		return out.String(c.String()).Foreground(out.Color("1")).Bold().String()
	case PlayerB:
		return out.String(c.String()).Foreground(out.Color("4")).Bold().String()
	}
	return out.String(c.String()).Faint().String()
}
