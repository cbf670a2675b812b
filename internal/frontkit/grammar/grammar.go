// Package grammar implements the grammar model of spec.md §4.3: a
// production list, FIRST/FOLLOW set computation, and LL(1) parse-table
// construction with conflict detection. The fixed-point iteration shape of
// First/Follow and the "second write to a cell is a conflict" rule for
// table construction follow spec.md §4.3 directly; no grammar.go survived
// retrieval from dekarrin-tunaq/internal/ictiobus/grammar (only item.go and
// its test file did), so the supporting structure here is grounded on how
// dekarrin-tunaq/internal/ictiobus/parse/ll1.go *consumes* a grammar
// (Grammar.Term, Grammar.TermFor, Grammar.StartSymbol, LL1Table.Get) rather
// than on a surviving grammar.go to adapt verbatim.
package grammar

import (
	"fmt"
	"sort"

	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// Production is a single grammar rule `LHS -> RHS`. RHS may be exactly
// []symbol.Kind{symbol.Eps} to denote the empty production; symbol.Eps may
// not appear anywhere else in a RHS.
type Production struct {
	LHS symbol.Kind
	RHS []symbol.Kind
}

func (p Production) isEps() bool {
	return len(p.RHS) == 1 && p.RHS[0] == symbol.Eps
}

// Grammar is a validated, numbered production list together with its
// precomputed FIRST and FOLLOW sets. Construct with New; a Grammar has no
// mutator methods once built and may be freely shared.
type Grammar struct {
	start symbol.Kind
	prods []Production

	nonterminals []symbol.Kind
	byLHS        map[symbol.Kind][]int

	first  map[symbol.Kind]map[symbol.Kind]bool
	follow map[symbol.Kind]map[symbol.Kind]bool
}

// ConflictError reports an LL(1) table conflict: two productions both want
// a cell in the parse table.
type ConflictError struct {
	NonTerminal symbol.Kind
	Terminal    symbol.Kind
	First, Second int // production indices
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("grammar: LL(1) conflict in cell (%s, %s) between productions %d and %d",
		e.NonTerminal, e.Terminal, e.First, e.Second)
}

// IsNonTerminal reports whether k appears as the LHS of at least one
// production in g.
func (g *Grammar) IsNonTerminal(k symbol.Kind) bool {
	_, ok := g.byLHS[k]
	return ok
}

func (g *Grammar) isNonTerminal(k symbol.Kind) bool {
	return g.IsNonTerminal(k)
}

// StartSymbol returns the grammar's start nonterminal.
func (g *Grammar) StartSymbol() symbol.Kind {
	return g.start
}

// Productions returns the numbered production list; index i is production
// number i, as referenced by Table.Get and ConflictError.
func (g *Grammar) Productions() []Production {
	return g.prods
}

// Production returns production number i.
func (g *Grammar) Production(i int) Production {
	return g.prods[i]
}

// New builds a Grammar from a numbered production list. Productions are
// numbered by their position in prods. start must be the LHS of at least
// one production.
func New(start symbol.Kind, prods []Production) (*Grammar, error) {
	g := &Grammar{
		start: start,
		prods: append([]Production(nil), prods...),
		byLHS: map[symbol.Kind][]int{},
	}

	for i, p := range g.prods {
		if _, ok := g.byLHS[p.LHS]; !ok {
			g.nonterminals = append(g.nonterminals, p.LHS)
		}
		g.byLHS[p.LHS] = append(g.byLHS[p.LHS], i)
	}

	if _, ok := g.byLHS[start]; !ok {
		return nil, fmt.Errorf("grammar: start symbol %s has no productions", start)
	}

	sort.Slice(g.nonterminals, func(i, j int) bool { return g.nonterminals[i] < g.nonterminals[j] })

	g.computeFirst()
	g.computeFollow()

	return g, nil
}

// First returns FIRST(X) for a single symbol X (terminal or nonterminal).
func (g *Grammar) First(x symbol.Kind) map[symbol.Kind]bool {
	if !g.isNonTerminal(x) {
		return map[symbol.Kind]bool{x: true}
	}
	return g.first[x]
}

// FirstOfSequence returns FIRST(alpha) for a symbol sequence alpha, per
// spec.md §4.3's definition (union of FIRST(Y1) minus eps, FIRST(Y2) if Y1
// is nullable, and so on, with eps itself included only if every symbol in
// alpha is nullable).
func (g *Grammar) FirstOfSequence(alpha []symbol.Kind) map[symbol.Kind]bool {
	out := map[symbol.Kind]bool{}
	allNullable := true

	for _, sym := range alpha {
		if sym == symbol.Eps {
			continue
		}
		firstOfSym := g.First(sym)
		for t := range firstOfSym {
			if t != symbol.Eps {
				out[t] = true
			}
		}
		if !firstOfSym[symbol.Eps] {
			allNullable = false
			break
		}
	}

	if allNullable {
		out[symbol.Eps] = true
	}

	return out
}

// Follow returns FOLLOW(A) for a nonterminal A.
func (g *Grammar) Follow(a symbol.Kind) map[symbol.Kind]bool {
	return g.follow[a]
}

func (g *Grammar) computeFirst() {
	g.first = map[symbol.Kind]map[symbol.Kind]bool{}
	for _, nt := range g.nonterminals {
		g.first[nt] = map[symbol.Kind]bool{}
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.prods {
			before := len(g.first[p.LHS])

			if p.isEps() {
				g.first[p.LHS][symbol.Eps] = true
			} else {
				allNullable := true
				for _, sym := range p.RHS {
					firstOfSym := g.First(sym)
					for t := range firstOfSym {
						if t != symbol.Eps {
							g.first[p.LHS][t] = true
						}
					}
					if !firstOfSym[symbol.Eps] {
						allNullable = false
						break
					}
				}
				if allNullable {
					g.first[p.LHS][symbol.Eps] = true
				}
			}

			if len(g.first[p.LHS]) != before {
				changed = true
			}
		}
	}
}

func (g *Grammar) computeFollow() {
	g.follow = map[symbol.Kind]map[symbol.Kind]bool{}
	for _, nt := range g.nonterminals {
		g.follow[nt] = map[symbol.Kind]bool{}
	}
	g.follow[g.start][symbol.EOF] = true

	changed := true
	for changed {
		changed = false
		for _, p := range g.prods {
			if p.isEps() {
				continue
			}
			for i, b := range p.RHS {
				if !g.isNonTerminal(b) {
					continue
				}
				before := len(g.follow[b])

				beta := p.RHS[i+1:]
				firstOfBeta := g.FirstOfSequence(beta)
				for t := range firstOfBeta {
					if t != symbol.Eps {
						g.follow[b][t] = true
					}
				}
				if len(beta) == 0 || firstOfBeta[symbol.Eps] {
					for t := range g.follow[p.LHS] {
						g.follow[b][t] = true
					}
				}

				if len(g.follow[b]) != before {
					changed = true
				}
			}
		}
	}
}
