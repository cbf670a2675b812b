package regexgram

import "github.com/arlenholt/frontkit/internal/frontkit/automaton"

// metaByte maps a single meta-character byte to the state it sends the DFA
// to from the start state.
var metaByte = map[byte]int{
	'|': 1,
	'*': 2,
	'+': 3,
	'?': 4,
	'(': 5,
	')': 6,
	'[': 7,
	']': 8,
	'-': 9,
	'.': 10,
}

const charState = 11

// BuildDFA builds the lexer automaton for regex source text. Every token in
// this language is exactly one byte: the ten meta-characters each get their
// own state reached by an explicit pattern transition out of state 0, and
// every other printable byte falls through state 0's default transition
// into the shared CHAR state (automaton.Build's step 5/6 ordering -- default
// first, explicit overrides second -- is exactly what lets the meta-bytes
// override the blanket default here).
func BuildDFA() (*automaton.DFA, error) {
	transitions := []automaton.Transition{
		{From: 0, DefaultTo: charState, To: charState},
	}
	for b, to := range metaByte {
		transitions = append(transitions, automaton.Transition{From: 0, To: to, Pattern: string(b), DefaultTo: -1})
	}

	finals := []automaton.FinalState{
		{State: 1, Term: TermPipe},
		{State: 2, Term: TermStar},
		{State: 3, Term: TermPlus},
		{State: 4, Term: TermQuestion},
		{State: 5, Term: TermLParen},
		{State: 6, Term: TermRParen},
		{State: 7, Term: TermLBracket},
		{State: 8, Term: TermRBracket},
		{State: 9, Term: TermDash},
		{State: 10, Term: TermDot},
		{State: charState, Term: TermChar},
	}

	return automaton.Build(transitions, finals, nil)
}
