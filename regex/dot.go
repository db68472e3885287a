package regex

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDOT writes the automaton as a Graphviz digraph to w.
// Accepting states are drawn as double circles.
func (n *NFA) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph NFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i, s := range n.states {
		shape := "circle"
		if n.IsAccepting(i) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", i, shape)
		for _, t := range s.Transitions {
			fmt.Fprintf(bw, "    q%d -> q%d [label=%s];\n", i, t.To, strconv.Quote(t.Label.String()))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", n.initial)
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
