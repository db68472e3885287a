package regex

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Symbol", Pattern: `[A-Za-z0-9 ]`},
	{Name: "Operator", Pattern: `[.|*+()]`},
})

type strictExpr struct {
	Head *strictTerm   `parser:"@@"`
	Tail []*strictTail `parser:"@@*"`
}

type strictTail struct {
	Union   *strictTerm    `parser:"  '|' @@"`
	Postfix *strictPostfix `parser:"| @@"`
	Term    *strictTerm    `parser:"| @@"`
}

type strictPostfix struct {
	Op   string      `parser:"@('*' | '+')"`
	Next *strictTerm `parser:"@@?"`
}

type strictTerm struct {
	Symbol   *string     `parser:"  @Symbol"`
	Wildcard bool        `parser:"| @'.'"`
	Group    *strictExpr `parser:"| '(' @@ ')'"`
}

var strictParser = participle.MustBuild[strictExpr](participle.Lexer(patternLexer))

// ParseStrict parses like Parse but rejects malformed patterns with a
// *SyntaxError: characters outside the alphabet, an operator without a left
// operand, '|' without a right operand, unbalanced parentheses and empty
// groups. Whenever it succeeds the result equals Parse(re).
func ParseStrict(re string) (Expr, error) {
	if len(re) == 0 {
		return Empty{}, nil
	}

	tree, err := strictParser.ParseString("", re)
	if err != nil {
		return nil, toSyntaxError(err)
	}
	return tree.fold(), nil
}

func toSyntaxError(err error) *SyntaxError {
	var perr participle.Error
	if errors.As(err, &perr) {
		return newSyntaxError(perr.Position().Offset, perr.Message(), err)
	}
	return newSyntaxError(-1, err.Error(), err)
}

// fold applies the same left-to-right folding as Parse.
func (s *strictExpr) fold() Expr {
	left := s.Head.toExpr()
	for _, t := range s.Tail {
		switch {
		case t.Union != nil:
			left = Union{Left: left, Right: t.Union.toExpr()}
		case t.Postfix != nil:
			var next Expr = Empty{}
			if t.Postfix.Next != nil {
				next = t.Postfix.Next.toExpr()
			}
			if t.Postfix.Op == "*" {
				left = Concat{Left: Star{Inner: left}, Right: next}
			} else {
				left = Concat{Left: Plus{Inner: left}, Right: next}
			}
		case t.Term != nil:
			left = Concat{Left: left, Right: t.Term.toExpr()}
		}
	}
	return left
}

func (t *strictTerm) toExpr() Expr {
	switch {
	case t.Symbol != nil:
		return Symbol{Char: rune((*t.Symbol)[0])}
	case t.Wildcard:
		return Wildcard{}
	default:
		return t.Group.fold()
	}
}
