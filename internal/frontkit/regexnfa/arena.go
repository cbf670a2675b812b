// Package regexnfa implements the regex-AST-to-NFA pass of spec.md §4.6:
// Thompson construction over an arena of owned, index-addressed states, with
// explicit deletion (swap-removal compaction) and a reachability sweep, per
// the "Global NFA arena" design note in spec.md §9. dekarrin-tunaq's own
// lex/regex.go (RegexToNFA) is stubbed out in that repo -- it builds
// an empty automaton.NFA and several of its per-operator helpers
// (createKleeneStarFA and friends) dereference nil fragments -- so this
// package is grounded on that file's *shape* only (the fragment-composition
// idea, one constructor per regex operator) and is a working
// reimplementation against an index-based arena rather than an adaptation
// of working code (see DESIGN.md).
package regexnfa

import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

// StateID addresses a State within an Arena. IDs are reassigned on
// compaction, so callers must not retain a StateID past a Delete or Sweep
// call on the states surrounding it.
type StateID int

// Edge is a labeled transition out of a State. Any, when true, matches any
// byte ("." in the source language) and Label is ignored.
type Edge struct {
	Any   bool
	Label CharClass
	To    StateID
}

// State is a single NFA state: spec.md §3's
// `{ epsilon_out: list of state refs, labeled_out: list of (char-class, state ref) }`.
// States never hold pointers to one another -- every reference is a
// StateID resolved back through the owning Arena, so that Delete/Sweep can
// rewrite them during compaction.
type State struct {
	id         StateID
	EpsilonOut []StateID
	LabeledOut []Edge
}

// ID returns s's current index in its Arena.
func (s *State) ID() StateID { return s.id }

// Arena is a single-owner NFA state manager: callers obtain a handle to an
// arena, submit nodes, and invoke a compacting sweep when done. There is no
// process-wide instance; each Compile call allocates a fresh Arena and
// returns it. An Arena is not safe for concurrent use (spec.md §5).
type Arena struct {
	states []*State
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Len reports the number of live states.
func (a *Arena) Len() int { return len(a.states) }

// New allocates a fresh state and returns its id.
func (a *Arena) New() StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, &State{id: id})
	return id
}

// State dereferences id. It panics on a stale or out-of-range id, since
// every call site in this package holds ids only across a single Compile
// call with no intervening compaction.
func (a *Arena) State(id StateID) *State {
	return a.states[id]
}

// AddEpsilon records an ε-transition from -> to.
func (a *Arena) AddEpsilon(from, to StateID) {
	s := a.states[from]
	s.EpsilonOut = append(s.EpsilonOut, to)
}

// AddEdge records a labeled transition from -> to.
func (a *Arena) AddEdge(from StateID, label CharClass, to StateID) {
	s := a.states[from]
	s.LabeledOut = append(s.LabeledOut, Edge{Label: label, To: to})
}

// AddAnyEdge records a "." transition from -> to.
func (a *Arena) AddAnyEdge(from, to StateID) {
	s := a.states[from]
	s.LabeledOut = append(s.LabeledOut, Edge{Any: true, To: to})
}

// Delete removes id by swap-removal: the last state in the arena takes id's
// slot, and every outstanding reference to that moved state's old id is
// rewritten to its new one (spec.md §9: "the compaction routine must update
// indices during swap-removal").
func (a *Arena) Delete(id StateID) {
	lastIdx := len(a.states) - 1
	moved := a.states[lastIdx]
	oldID := moved.id

	a.states[id] = moved
	moved.id = id
	a.states = a.states[:lastIdx]

	if oldID == id {
		return
	}
	for _, s := range a.states {
		for i, to := range s.EpsilonOut {
			if to == oldID {
				s.EpsilonOut[i] = id
			}
		}
		for i := range s.LabeledOut {
			if s.LabeledOut[i].To == oldID {
				s.LabeledOut[i].To = id
			}
		}
	}
}

// Sweep drops every state unreachable from roots -- spec.md §9's "a sweep
// that drops any state with no outside references". Reachability is
// computed once up front by pointer identity (stable across the id
// reassignments Delete performs), so repeated Delete calls during the sweep
// cannot invalidate the set still being processed.
func (a *Arena) Sweep(roots ...StateID) {
	keep := a.reachable(roots)

	for {
		victim := -1
		for i, s := range a.states {
			if !keep[s] {
				victim = i
				break
			}
		}
		if victim == -1 {
			return
		}
		a.Delete(StateID(victim))
	}
}

func (a *Arena) reachable(roots []StateID) map[*State]bool {
	seen := map[*State]bool{}
	var stack []*State
	for _, r := range roots {
		if int(r) < len(a.states) {
			stack = append(stack, a.states[r])
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[s] {
			continue
		}
		seen[s] = true
		for _, to := range s.EpsilonOut {
			stack = append(stack, a.states[to])
		}
		for _, e := range s.LabeledOut {
			stack = append(stack, a.states[e.To])
		}
	}
	return seen
}

// regex-AST node kinds, shared by this package's Thompson construction and
// the regex grammar registry's AST transform rule table. These are labels
// synthesized by AST rules rather than grammar terminals or nonterminals, so
// they live in their own block starting well clear of any grammar's own
// symbol.Kind space.
const (
	KindChar symbol.Kind = symbol.FirstUserKind + 10_000 + iota
	KindDot
	KindEmpty
	KindConcat
	KindOr
	KindStar
	KindPlus
	KindQuestion
	KindClass
	KindMinus
)
