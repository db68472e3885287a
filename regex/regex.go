package regex

import (
	"fmt"
	"strings"
)

// Run reports whether input is accepted by pattern, parsed leniently.
func Run(pattern, input string) bool {
	return Matches(Compile(Parse(pattern)), input)
}

// Regex is a compiled pattern. It is safe for concurrent use.
type Regex struct {
	pattern string
	expr    Expr
	nfa     *NFA
}

// CompilePattern parses pattern strictly and compiles it.
func CompilePattern(pattern string) (*Regex, error) {
	expr, err := ParseStrict(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to construct regex from %q: %w", pattern, err)
	}
	return newRegex(pattern, expr), nil
}

// MustCompilePattern is like CompilePattern but panics on malformed patterns.
func MustCompilePattern(pattern string) *Regex {
	re, err := CompilePattern(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileLenient compiles pattern with Parse, malformed parts match less
// instead of failing.
func CompileLenient(pattern string) *Regex {
	return newRegex(pattern, Parse(pattern))
}

func newRegex(pattern string, expr Expr) *Regex {
	return &Regex{
		pattern: pattern,
		expr:    expr,
		nfa:     Compile(expr),
	}
}

// Match reports whether the whole of s is accepted.
func (re *Regex) Match(s string) bool {
	return Matches(re.nfa, s)
}

// MatchLines returns the 1-based numbers of the lines of text that are
// accepted as a whole. A trailing newline does not start another line.
func (re *Regex) MatchLines(text string) []int {
	text = strings.TrimSuffix(text, "\n")

	var lines []int
	for i, line := range strings.Split(text, "\n") {
		if re.Match(strings.TrimSuffix(line, "\r")) {
			lines = append(lines, i+1)
		}
	}
	return lines
}

func (re *Regex) Expr() Expr { return re.expr }

func (re *Regex) NFA() *NFA { return re.nfa }

func (re *Regex) String() string { return re.pattern }
