package regex

// Parse turns a pattern into its syntax tree. It never fails: a character that
// cannot start a term, an unbalanced parenthesis or an operator without a left
// operand degrades to Empty for that position. Use ParseStrict to reject such
// patterns instead.
//
// Operators fold onto everything parsed so far, left to right: "ab*" is
// Star(ab), and "a|bc" is (a|b)c.
func Parse(re string) Expr {
	if len(re) == 0 {
		return Empty{}
	}

	left, i := parseTerm(re, 0)
	for i < len(re) {
		var right Expr
		var cons int

		switch re[i] {
		case '|':
			right, cons = parseTerm(re, i+1)
			left = Union{Left: left, Right: right}
		case '*':
			right, cons = parseOptionalTerm(re, i+1)
			left = Concat{Left: Star{Inner: left}, Right: right}
		case '+':
			right, cons = parseOptionalTerm(re, i+1)
			left = Concat{Left: Plus{Inner: left}, Right: right}
		default:
			right, cons = parseTerm(re, i)
			if !isEmpty(right) {
				left = Concat{Left: left, Right: right}
			}
			// parseTerm always consumes the character at i
			i += cons
			continue
		}
		i += 1 + cons
	}
	return left
}

// parseTerm parses the term starting at i and returns it together with the
// number of bytes consumed. It consumes at least one byte unless i is past the
// end of re.
func parseTerm(re string, i int) (Expr, int) {
	if i >= len(re) {
		return Empty{}, 0
	}

	switch c := re[i]; {
	case c == '(':
		return parseGroup(re, i)
	case c == '.':
		return Wildcard{}, 1
	case isSymbol(c):
		return Symbol{Char: rune(c)}, 1
	}
	return Empty{}, 1
}

// [term] after '*' and '+'
func parseOptionalTerm(re string, i int) (Expr, int) {
	if i >= len(re) || !startsTerm(re[i]) {
		return Empty{}, 0
	}
	return parseTerm(re, i)
}

// (...)
func parseGroup(re string, i int) (Expr, int) {
	// pop off '('
	j := i + 1

	end := closingParen(re, j)
	if end == -1 {
		// unbalanced, the group runs to the end of the pattern
		return Parse(re[j:]), len(re) - i
	}

	// consume up to and including ')'
	return Parse(re[j:end]), end + 1 - i
}

// closingParen returns the index of the ')' balancing an already consumed
// '(' when scanning re from i, or -1.
func closingParen(re string, i int) int {
	depth := 1
	for j := i; j < len(re); j++ {
		switch re[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

func startsTerm(c byte) bool {
	return c == '(' || c == '.' || isSymbol(c)
}

// ASCII letters, digits and space
func isSymbol(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == ' '
}
