package automaton

import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

// Run performs one longest-match scan of input starting at pos, following
// spec.md §4.1's "Run algorithm (longest match)" and
// original_source/compiler/dfa.h's pass_string + get_next_token exactly,
// including the ERR_PATTERN length detail noted in SPEC_FULL.md §4
// ("Supplemented from original_source"): the consumed span plus one,
// matching `len = cur_code_position - start + 1` in dfa.h rather than the
// more obvious `cur_code_position - start`.
//
// Run does not itself apply keyword reclassification or length-limit
// enforcement; package lex does that once it has the resulting lexeme.
func (d *DFA) Run(input string, pos int) (kind symbol.Kind, lexemeEnd int) {
	if pos >= len(input) {
		return symbol.EOF, pos
	}

	cur := 0
	lastFinalState := -1
	lastFinalPos := -1
	curPos := pos

	for curPos < len(input) {
		next := d.Next(cur, input[curPos])
		if next == noTransition {
			break
		}
		if d.Final(int(next)) != symbol.KindNone {
			lastFinalState = int(next)
			lastFinalPos = curPos
		}
		cur = int(next)
		curPos++
	}

	if curPos == pos {
		// No transition existed at all from the start state.
		return symbol.ErrSymbol, pos + 1
	}

	if lastFinalState == -1 {
		// Consumed characters but never passed through a final state. The
		// reported span includes one extra byte past what was consumed,
		// per dfa.h's `len = cur_code_position - start + 1`.
		end := curPos + 1
		if end > len(input) {
			end = len(input)
		}
		return symbol.ErrPattern, end
	}

	return d.Final(lastFinalState), lastFinalPos + 1
}
