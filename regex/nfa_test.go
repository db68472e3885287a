package regex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var labelComparer = cmp.Comparer(func(a, b Label) bool { return a == b })

func transitionTable(n *NFA) [][]Transition {
	table := make([][]Transition, n.Len())
	for i := range table {
		table[i] = n.Transitions(i)
	}
	return table
}

func TestCompile(t *testing.T) {
	tests := map[string]struct {
		givenExpr     Expr
		wantTable     [][]Transition
		wantAccepting []int
	}{
		"symbol": {
			givenExpr: sym('a'),
			wantTable: [][]Transition{
				{{Label: Char('a'), To: 1}},
				nil,
			},
			wantAccepting: []int{1},
		},
		"wildcard consumes any character": {
			givenExpr: Wildcard{},
			wantTable: [][]Transition{
				{{Label: Any, To: 1}},
				nil,
			},
			wantAccepting: []int{1},
		},
		"empty is a single accepting state": {
			givenExpr:     Empty{},
			wantTable:     [][]Transition{nil},
			wantAccepting: []int{0},
		},
		"concat": {
			givenExpr: Concat{Left: sym('a'), Right: sym('b')},
			wantTable: [][]Transition{
				{{Label: Epsilon, To: 1}},
				{{Label: Char('a'), To: 2}},
				{{Label: Epsilon, To: 3}},
				{{Label: Char('b'), To: 4}},
				nil,
			},
			wantAccepting: []int{4},
		},
		"union": {
			givenExpr: Union{Left: sym('a'), Right: sym('b')},
			wantTable: [][]Transition{
				{{Label: Epsilon, To: 1}, {Label: Epsilon, To: 3}},
				{{Label: Char('a'), To: 2}},
				{{Label: Epsilon, To: 5}},
				{{Label: Char('b'), To: 4}},
				{{Label: Epsilon, To: 5}},
				nil,
			},
			wantAccepting: []int{5},
		},
		"star": {
			givenExpr: Star{Inner: sym('a')},
			wantTable: [][]Transition{
				{{Label: Epsilon, To: 1}, {Label: Epsilon, To: 3}},
				{{Label: Char('a'), To: 2}},
				{{Label: Epsilon, To: 0}, {Label: Epsilon, To: 3}},
				nil,
			},
			wantAccepting: []int{3},
		},
		"plus has no skip edge": {
			givenExpr: Plus{Inner: sym('a')},
			wantTable: [][]Transition{
				{{Label: Epsilon, To: 1}},
				{{Label: Char('a'), To: 2}},
				{{Label: Epsilon, To: 0}, {Label: Epsilon, To: 3}},
				nil,
			},
			wantAccepting: []int{3},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// when
			got := Compile(tt.givenExpr)

			// then
			if d := cmp.Diff(tt.wantTable, transitionTable(got), labelComparer); d != "" {
				t.Errorf("transitions diff (-want +got):\n%s", d)
			}
			if d := cmp.Diff(tt.wantAccepting, got.Accepting()); d != "" {
				t.Errorf("accepting diff (-want +got):\n%s", d)
			}
			if got.Initial() != 0 {
				t.Errorf("initial state %d, want 0", got.Initial())
			}
		})
	}
}

func TestCompileInvariants(t *testing.T) {
	patterns := []string{
		"", "a", ".", "abc", "(a|b)", "a*", "a+", "(a|b)*c", "x(ab|c)+d",
		"a**", "(a*)*", "((a|)*)+", "#", "(ab", "a)b", "(.|a)+.",
	}

	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			// when
			n := Compile(Parse(p))

			// then
			if n.Initial() != 0 {
				t.Errorf("initial state %d, want 0", n.Initial())
			}
			if len(n.Accepting()) != 1 {
				t.Errorf("accepting states %v, want exactly one", n.Accepting())
			}
			for _, a := range n.Accepting() {
				if a < 0 || a >= n.Len() {
					t.Errorf("accepting state %d out of range", a)
				}
			}
			for i := 0; i < n.Len(); i++ {
				for _, tr := range n.Transitions(i) {
					if tr.To < 0 || tr.To >= n.Len() {
						t.Errorf("state %d has dangling edge to %d", i, tr.To)
					}
				}
			}
		})
	}
}

func TestCompileAllocatesFreshStates(t *testing.T) {
	// given
	a := sym('a')

	// when
	n := Compile(Concat{Left: a, Right: a})

	// then
	// junction + two separate copies of the symbol fragment
	if d := cmp.Diff(5, n.Len()); d != "" {
		t.Errorf("state count diff (-want +got):\n%s", d)
	}
}

func TestNFAIsNotMutatedThroughAccessors(t *testing.T) {
	n := Compile(Union{Left: sym('a'), Right: sym('b')})

	trs := n.Transitions(0)
	trs[0].To = 4
	acc := n.Accepting()
	acc[0] = 0

	if n.Transitions(0)[0].To != 1 {
		t.Errorf("transitions were modified through the returned slice")
	}
	if !n.IsAccepting(5) || n.IsAccepting(0) {
		t.Errorf("accepting set was modified through the returned slice")
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]struct {
		givenLabel  Label
		givenChar   rune
		wantAccepts bool
		wantString  string
	}{
		"char accepts itself": {
			givenLabel:  Char('a'),
			givenChar:   'a',
			wantAccepts: true,
			wantString:  "'a'",
		},
		"char rejects others": {
			givenLabel: Char('a'),
			givenChar:  'b',
			wantString: "'a'",
		},
		"any accepts everything": {
			givenLabel:  Any,
			givenChar:   'é',
			wantAccepts: true,
			wantString:  "any",
		},
		"epsilon consumes nothing": {
			givenLabel: Epsilon,
			givenChar:  'a',
			wantString: "ε",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if d := cmp.Diff(tt.wantAccepts, tt.givenLabel.Accepts(tt.givenChar)); d != "" {
				t.Errorf("accepts diff (-want +got):\n%s", d)
			}
			if d := cmp.Diff(tt.wantString, tt.givenLabel.String()); d != "" {
				t.Errorf("string diff (-want +got):\n%s", d)
			}
		})
	}
}
