package searcher

import (
	"fmt"
	"strings"
)

func (t *tree) nodeString(i int) string {
	n := &t.nodes[i]
	move := "root"
	if !t.isRoot(i) {
		move = n.move.String()
	}
	mean := 0.0
	if n.visits > 0 {
		mean = n.wins / float64(n.visits)
	}
	return fmt.Sprintf("[M:%s Q=W/V:%g/%d=%.3f U:%v]", move, n.wins, n.visits, mean, n.untried)
}

// String renders the tree one node per line, indented by depth.
func (t *tree) String() string {
	var sb strings.Builder
	t.writeTree(&sb, rootIndex, 0)
	return sb.String()
}

func (t *tree) writeTree(sb *strings.Builder, i int, indent int) {
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("| ", indent))
	sb.WriteString(t.nodeString(i))
	for _, c := range t.nodes[i].children {
		t.writeTree(sb, c, indent+1)
	}
}

func (t *tree) childrenString() string {
	var sb strings.Builder
	for _, c := range t.nodes[rootIndex].children {
		sb.WriteString(t.nodeString(c))
		sb.WriteByte('\n')
	}
	return sb.String()
}
