package regex

import (
	"fmt"
	"slices"
	"strconv"
)

type labelKind uint8

const (
	epsilonLabel labelKind = iota
	charLabel
	anyLabel
)

// Label is what a transition consumes: nothing (Epsilon), one specific
// character (Char) or any single character (Any).
type Label struct {
	kind labelKind
	char rune
}

// Epsilon is the label of transitions that consume no input.
var Epsilon = Label{kind: epsilonLabel}

// Any is the label of wildcard transitions.
var Any = Label{kind: anyLabel}

// Char returns the label consuming exactly c.
func Char(c rune) Label {
	return Label{kind: charLabel, char: c}
}

func (l Label) IsEpsilon() bool { return l.kind == epsilonLabel }

// Accepts reports whether a transition with this label consumes c.
func (l Label) Accepts(c rune) bool {
	switch l.kind {
	case charLabel:
		return l.char == c
	case anyLabel:
		return true
	}
	return false
}

func (l Label) String() string {
	switch l.kind {
	case charLabel:
		return strconv.QuoteRune(l.char)
	case anyLabel:
		return "any"
	}
	return "ε"
}

type Transition struct {
	Label Label
	To    int
}

type State struct {
	Transitions []Transition
}

// NFA is a Thompson automaton. States are identified by their index in the
// state table. An NFA returned by Compile is never modified again.
type NFA struct {
	states    []State
	initial   int
	accepting []int
}

// Len returns the number of states.
func (n *NFA) Len() int { return len(n.states) }

func (n *NFA) Initial() int { return n.initial }

func (n *NFA) Accepting() []int { return slices.Clone(n.accepting) }

func (n *NFA) IsAccepting(state int) bool {
	return slices.Contains(n.accepting, state)
}

// Transitions returns the outgoing transitions of state in insertion order.
func (n *NFA) Transitions(state int) []Transition {
	if state < 0 || state >= len(n.states) {
		panic(fmt.Sprintf("regex: state %d out of range [0,%d)", state, len(n.states)))
	}
	return slices.Clone(n.states[state].Transitions)
}

// Compile builds the automaton for e with Thompson's construction. Every
// position of the tree gets fresh states, nothing is shared between siblings.
// The initial state is always 0 and there is exactly one accepting state.
func Compile(e Expr) *NFA {
	var c compiler
	entry, exit := c.build(e)
	return &NFA{
		states:    c.states,
		initial:   entry,
		accepting: []int{exit},
	}
}

type compiler struct {
	states []State
}

func (c *compiler) newState() int {
	c.states = append(c.states, State{})
	return len(c.states) - 1
}

func (c *compiler) addTransition(from, to int, label Label) {
	c.states[from].Transitions = append(c.states[from].Transitions, Transition{Label: label, To: to})
}

// build returns the entry and exit state of the fragment for e. The first
// state allocated for a fragment is always its entry.
func (c *compiler) build(e Expr) (entry, exit int) {
	switch e := e.(type) {
	case Symbol:
		entry = c.newState()
		exit = c.newState()
		c.addTransition(entry, exit, Char(e.Char))
	case Wildcard:
		entry = c.newState()
		exit = c.newState()
		c.addTransition(entry, exit, Any)
	case Empty:
		entry = c.newState()
		exit = entry
	case Concat:
		entry = c.newState()
		lEntry, lExit := c.build(e.Left)
		rEntry, rExit := c.build(e.Right)
		c.addTransition(entry, lEntry, Epsilon)
		c.addTransition(lExit, rEntry, Epsilon)
		exit = rExit
	case Union:
		entry = c.newState()
		lEntry, lExit := c.build(e.Left)
		rEntry, rExit := c.build(e.Right)
		exit = c.newState()
		c.addTransition(entry, lEntry, Epsilon)
		c.addTransition(entry, rEntry, Epsilon)
		c.addTransition(lExit, exit, Epsilon)
		c.addTransition(rExit, exit, Epsilon)
	case Star:
		entry, exit = c.buildLoop(e.Inner)
		// skip
		c.addTransition(entry, exit, Epsilon)
	case Plus:
		entry, exit = c.buildLoop(e.Inner)
	default:
		panic(fmt.Sprintf("regex: unexpected expression type %T", e))
	}
	return entry, exit
}

// buildLoop wires the states shared by Star and Plus: enter, repeat and leave
// after at least one iteration.
func (c *compiler) buildLoop(inner Expr) (entry, exit int) {
	entry = c.newState()
	iEntry, iExit := c.build(inner)
	exit = c.newState()
	c.addTransition(entry, iEntry, Epsilon)
	c.addTransition(iExit, entry, Epsilon)
	c.addTransition(iExit, exit, Epsilon)
	return entry, exit
}
