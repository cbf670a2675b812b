package grammar

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/dekarrin/rosed"
)

// Table is the LL(1) parse table: a mapping from (nonterminal, terminal) to
// a production index. A missing cell means "no entry" (spec.md §3 /§4.3).
type Table struct {
	cells map[[2]symbol.Kind]int
}

// Get returns the production index for (nt, term) and whether an entry
// exists.
func (t *Table) Get(nt, term symbol.Kind) (int, bool) {
	i, ok := t.cells[[2]symbol.Kind{nt, term}]
	return i, ok
}

// String renders the LL(1) parse table as one row per (nonterminal,
// terminal) cell, the same grouped-column-table approach
// automaton.DFA.String uses, built with rosed.Edit("").InsertTableOpts, the
// same call dekarrin-tunaq/internal/ictiobus/parse/{slr,lalr,clr1}.go use to
// dump their own tables. Both the nonterminal/terminal names and the
// production column fall back to generic placeholders; use StringWithNamer
// for human-legible output.
func (t *Table) String() string {
	return t.render(symbol.Kind.String, nil)
}

// StringWithNamer renders the table exactly like String, but names every
// Kind via namer.Name and, when g is non-nil, spells out each cell's
// production as "LHS -> RHS..." instead of a bare production index.
func (t *Table) StringWithNamer(namer symbol.Namer, g *Grammar) string {
	return t.render(namer.Name, g)
}

type tableCell struct {
	nt, term symbol.Kind
	prodIdx  int
}

func (t *Table) render(name func(symbol.Kind) string, g *Grammar) string {
	cells := make([]tableCell, 0, len(t.cells))
	for k, idx := range t.cells {
		cells = append(cells, tableCell{nt: k[0], term: k[1], prodIdx: idx})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].nt != cells[j].nt {
			return name(cells[i].nt) < name(cells[j].nt)
		}
		if cells[i].term != cells[j].term {
			return name(cells[i].term) < name(cells[j].term)
		}
		return cells[i].prodIdx < cells[j].prodIdx
	})

	header := []string{"nonterminal", "terminal", "production"}
	data := [][]string{header}

	for _, c := range cells {
		data = append(data, []string{
			name(c.nt),
			name(c.term),
			productionStr(g, c.prodIdx, name),
		})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// productionStr renders production prodIdx as "LHS -> RHS..."; if g is nil
// (no grammar available to look the production up in) it falls back to the
// bare index.
func productionStr(g *Grammar, prodIdx int, name func(symbol.Kind) string) string {
	if g == nil {
		return strconv.Itoa(prodIdx)
	}
	p := g.Production(prodIdx)
	rhs := make([]string, len(p.RHS))
	for i, sym := range p.RHS {
		rhs[i] = name(sym)
	}
	return fmt.Sprintf("%s -> %s", name(p.LHS), strings.Join(rhs, " "))
}

// TableSnapshot is a serializable view of an LL(1) parse table, for the
// same cross-run caching purpose as automaton.Snapshot.
type TableSnapshot struct {
	Cells map[[2]symbol.Kind]int
}

// Snapshot captures t's cells by reference; callers that mutate the result
// must copy it first.
func (t *Table) Snapshot() TableSnapshot {
	return TableSnapshot{Cells: t.cells}
}

// TableFromSnapshot rebuilds a Table from a previously captured
// TableSnapshot without repeating LLTable's conflict-detection pass.
func TableFromSnapshot(s TableSnapshot) *Table {
	return &Table{cells: s.Cells}
}

// LLTable constructs the LL(1) parse table for g following spec.md §4.3:
// for every production A -> alpha and every terminal t in FIRST(alpha)
// (excluding eps), set table[A][t] = that production; if eps is in
// FIRST(alpha), also set table[A][t] for every t in FOLLOW(A). A second
// write to any cell is a *ConflictError naming both productions, and the
// grammar is rejected outright -- grammar/DFA construction errors are
// always fatal at build time (spec.md §7).
func (g *Grammar) LLTable() (*Table, error) {
	table := &Table{cells: map[[2]symbol.Kind]int{}}

	set := func(nt, term symbol.Kind, prodIdx int) error {
		key := [2]symbol.Kind{nt, term}
		if existing, ok := table.cells[key]; ok && existing != prodIdx {
			return &ConflictError{NonTerminal: nt, Terminal: term, First: existing, Second: prodIdx}
		}
		table.cells[key] = prodIdx
		return nil
	}

	for i, p := range g.prods {
		firstOfAlpha := g.FirstOfSequence(p.RHS)

		for t := range firstOfAlpha {
			if t == symbol.Eps {
				continue
			}
			if err := set(p.LHS, t, i); err != nil {
				return nil, err
			}
		}

		if firstOfAlpha[symbol.Eps] {
			for t := range g.follow[p.LHS] {
				if err := set(p.LHS, t, i); err != nil {
					return nil, err
				}
			}
		}
	}

	return table, nil
}
