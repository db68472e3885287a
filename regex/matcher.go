package regex

// Matches reports whether n accepts the whole of input. It simulates the
// automaton on the set of all live states, so it runs in
// O(n.Len() * len(input)) time and never backtracks.
func Matches(n *NFA, input string) bool {
	m := newMatcher(n)
	return m.run(input)
}

type matcher struct {
	nfa     *NFA
	current *stateSet
	next    *stateSet
	stack   []int
}

func newMatcher(n *NFA) *matcher {
	return &matcher{
		nfa:     n,
		current: newStateSet(n.Len()),
		next:    newStateSet(n.Len()),
	}
}

func (m *matcher) run(input string) bool {
	m.addClosure(m.current, m.nfa.initial)

	for _, c := range input {
		m.next.clear()
		for _, s := range m.current.dense {
			for _, t := range m.nfa.states[s].Transitions {
				if t.Label.Accepts(c) {
					m.addClosure(m.next, t.To)
				}
			}
		}
		m.current, m.next = m.next, m.current

		// nothing left alive, no suffix can be accepted
		if m.current.len() == 0 {
			return false
		}
	}

	for _, s := range m.nfa.accepting {
		if m.current.contains(s) {
			return true
		}
	}
	return false
}

// addClosure adds state and everything reachable from it over epsilon
// transitions to set. States already in set are not expanded again, which
// keeps epsilon cycles from looping.
func (m *matcher) addClosure(set *stateSet, state int) {
	if set.contains(state) {
		return
	}
	set.insert(state)

	m.stack = append(m.stack[:0], state)
	for len(m.stack) > 0 {
		s := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]

		for _, t := range m.nfa.states[s].Transitions {
			if t.Label.IsEpsilon() && !set.contains(t.To) {
				set.insert(t.To)
				m.stack = append(m.stack, t.To)
			}
		}
	}
}

// stateSet is a sparse set of state indices with O(1) insert, lookup and
// clear, iterated in insertion order.
type stateSet struct {
	dense  []int
	sparse []int
}

func newStateSet(capacity int) *stateSet {
	return &stateSet{
		dense:  make([]int, 0, capacity),
		sparse: make([]int, capacity),
	}
}

func (s *stateSet) contains(state int) bool {
	i := s.sparse[state]
	return i < len(s.dense) && s.dense[i] == state
}

func (s *stateSet) insert(state int) {
	s.sparse[state] = len(s.dense)
	s.dense = append(s.dense, state)
}

func (s *stateSet) len() int { return len(s.dense) }

func (s *stateSet) clear() { s.dense = s.dense[:0] }
