package automaton

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/dekarrin/rosed"
)

// escapeByte renders c the way original_source/compiler/dfa.h's operator<<
// does for the three whitespace control bytes it singles out, and as a
// literal character otherwise.
func escapeByte(c byte) string {
	switch c {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	default:
		return string(rune(c))
	}
}

// String renders the DFA as a table: one row per state (including states
// whose every transition is dead), grouped by destination state the way dfa.h's
// operator<< groups columns by `to` rather than printing one column per
// byte. Built with rosed.Edit("").InsertTableOpts, the same call used by
// dekarrin-tunaq/internal/ictiobus/parse/{slr,lalr,clr1}.go to dump their
// own tables. The "final" column falls back to Kind's own generic
// String(), which renders every grammar-specific terminal as the same
// placeholder; use StringWithNamer for human-legible output.
func (d *DFA) String() string {
	return d.render(symbol.Kind.String)
}

// StringWithNamer renders the DFA table exactly like String, but names
// the "final" column's Kind via namer.Name instead of Kind's generic
// String(), so a grammar's own terminal names (e.g. "PLUS", "NUM") show
// up instead of the placeholder "<user-kind>".
func (d *DFA) StringWithNamer(namer symbol.Namer) string {
	return d.render(namer.Name)
}

func (d *DFA) render(name func(symbol.Kind) string) string {
	header := []string{"state", "dead", "transitions", "final"}
	data := [][]string{header}

	for state := 0; state < len(d.transitions); state++ {
		byDest := map[int16][]byte{}
		dead := 0
		for c := 0; c < numColumns; c++ {
			to := d.transitions[state][c]
			if to == noTransition {
				dead++
				continue
			}
			byDest[to] = append(byDest[to], byte(c))
		}

		dests := make([]int16, 0, len(byDest))
		for to := range byDest {
			dests = append(dests, to)
		}
		sort.Slice(dests, func(i, j int) bool { return dests[i] < dests[j] })

		var transStr string
		for _, to := range dests {
			bytes := byDest[to]
			transStr += fmt.Sprintf("%d:", to)
			for _, b := range bytes {
				transStr += escapeByte(b)
			}
			transStr += "  "
		}

		finalStr := ""
		if k := d.Final(state); k != symbol.KindNone {
			finalStr = name(k)
		}

		data = append(data, []string{
			strconv.Itoa(state),
			strconv.Itoa(dead),
			transStr,
			finalStr,
		})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
