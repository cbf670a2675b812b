package frontcfg

import (
	"fmt"
	"os"

	"github.com/arlenholt/frontkit/internal/frontkit/automaton"
	"github.com/arlenholt/frontkit/internal/frontkit/grammar"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/dekarrin/rezi"
)

// tableEntry is one LL(1) table cell, flattened out of the
// map[[2]symbol.Kind]int that grammar.TableSnapshot carries so the
// compiled bundle is a plain slice of structs end to end -- friendlier to
// a reflection-based binary codec than an array-keyed map.
type tableEntry struct {
	NonTerminal     symbol.Kind
	Terminal        symbol.Kind
	ProductionIndex int
}

// CompiledBundle is the rezi-encodable snapshot of one grammar registry's
// build products: its DFA, its LL(1) table, and the start symbol and
// production list needed to reconstruct a grammar.Grammar (Restore runs
// grammar.New again, FIRST/FOLLOW included). Saved with Save, restored with
// LoadBundle, used by cmd/frontkit's -compile-cache/-use-cache flags.
type CompiledBundle struct {
	Grammar string
	Start   symbol.Kind
	Prods   []grammar.Production
	DFA     automaton.Snapshot
	Table   []tableEntry
}

// NewCompiledBundle captures a built grammar, table, and DFA into a
// CompiledBundle ready for Save.
func NewCompiledBundle(name string, g *grammar.Grammar, table *grammar.Table, dfa *automaton.DFA) CompiledBundle {
	snap := table.Snapshot()
	entries := make([]tableEntry, 0, len(snap.Cells))
	for key, prodIdx := range snap.Cells {
		entries = append(entries, tableEntry{NonTerminal: key[0], Terminal: key[1], ProductionIndex: prodIdx})
	}
	return CompiledBundle{
		Grammar: name,
		Start:   g.StartSymbol(),
		Prods:   g.Productions(),
		DFA:     dfa.Snapshot(),
		Table:   entries,
	}
}

// Restore rebuilds the grammar.Grammar, grammar.Table, and automaton.DFA
// described by b. The grammar is reconstructed via grammar.New from the
// cached start symbol and productions; only the DFA and the LL(1) table
// itself skip their respective construction and validation passes.
func (b CompiledBundle) Restore() (*grammar.Grammar, *grammar.Table, *automaton.DFA, error) {
	g, err := grammar.New(b.Start, b.Prods)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("frontcfg: rebuild grammar from cached bundle: %w", err)
	}

	cells := make(map[[2]symbol.Kind]int, len(b.Table))
	for _, e := range b.Table {
		cells[[2]symbol.Kind{e.NonTerminal, e.Terminal}] = e.ProductionIndex
	}
	table := grammar.TableFromSnapshot(grammar.TableSnapshot{Cells: cells})

	dfa := automaton.FromSnapshot(b.DFA)

	return g, table, dfa, nil
}

// Save rezi-encodes b and writes it to path.
func Save(path string, b CompiledBundle) error {
	data := rezi.EncBinary(b)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("frontcfg: write compiled bundle %s: %w", path, err)
	}
	return nil
}

// LoadBundle reads and rezi-decodes a CompiledBundle previously written by
// Save.
func LoadBundle(path string) (CompiledBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CompiledBundle{}, fmt.Errorf("frontcfg: read compiled bundle %s: %w", path, err)
	}
	var b CompiledBundle
	n, err := rezi.DecBinary(data, &b)
	if err != nil {
		return CompiledBundle{}, fmt.Errorf("frontcfg: decode compiled bundle %s: %w", path, err)
	}
	if n != len(data) {
		return CompiledBundle{}, fmt.Errorf("frontcfg: compiled bundle %s: decoded %d/%d bytes", path, n, len(data))
	}
	return b, nil
}
