package regex

import (
	"fmt"
	"strconv"
)

// Expr is a node of the pattern syntax tree. The concrete types are Symbol,
// Wildcard, Empty, Concat, Union, Star and Plus. Trees are immutable values,
// every composite owns its children.
type Expr interface {
	fmt.Stringer
	expr()
}

// Symbol matches exactly one occurrence of Char.
type Symbol struct {
	Char rune
}

// Wildcard matches exactly one arbitrary character.
type Wildcard struct{}

// Empty matches the empty string only.
type Empty struct{}

// Concat matches Left immediately followed by Right.
type Concat struct {
	Left  Expr
	Right Expr
}

// Union matches Left or Right.
type Union struct {
	Left  Expr
	Right Expr
}

// Star matches zero or more repetitions of Inner.
type Star struct {
	Inner Expr
}

// Plus matches one or more repetitions of Inner.
// It accepts the same language as Concat{Inner, Star{Inner}}.
type Plus struct {
	Inner Expr
}

func (Symbol) expr()   {}
func (Wildcard) expr() {}
func (Empty) expr()    {}
func (Concat) expr()   {}
func (Union) expr()    {}
func (Star) expr()     {}
func (Plus) expr()     {}

func (s Symbol) String() string { return "Symbol(" + strconv.QuoteRune(s.Char) + ")" }
func (Wildcard) String() string { return "Wildcard" }
func (Empty) String() string    { return "Empty" }

func (c Concat) String() string {
	return fmt.Sprintf("Concat(%s, %s)", c.Left, c.Right)
}

func (u Union) String() string {
	return fmt.Sprintf("Union(%s, %s)", u.Left, u.Right)
}

func (s Star) String() string { return fmt.Sprintf("Star(%s)", s.Inner) }
func (p Plus) String() string { return fmt.Sprintf("Plus(%s)", p.Inner) }

func isEmpty(e Expr) bool {
	_, ok := e.(Empty)
	return ok
}
