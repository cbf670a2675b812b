package arithgram

import "github.com/arlenholt/frontkit/internal/frontkit/automaton"

const (
	stNum    = 1
	stWS     = 2
	stPlus   = 3
	stMinus  = 4
	stStar   = 5
	stSlash  = 6
	stLParen = 7
	stRParen = 8
)

const digits = "0123456789"
const whitespace = " \t\n\r"

// BuildDFA builds the lexer automaton for arithmetic source text: a
// multi-digit NUM run, a multi-byte WS run, and seven single-byte
// operator/punctuation tokens.
func BuildDFA() (*automaton.DFA, error) {
	transitions := []automaton.Transition{
		{From: 0, To: stNum, Pattern: digits, DefaultTo: -1},
		{From: stNum, To: stNum, Pattern: digits, DefaultTo: -1},
		{From: 0, To: stWS, Pattern: whitespace, DefaultTo: -1},
		{From: stWS, To: stWS, Pattern: whitespace, DefaultTo: -1},
		{From: 0, To: stPlus, Pattern: "+", DefaultTo: -1},
		{From: 0, To: stMinus, Pattern: "-", DefaultTo: -1},
		{From: 0, To: stStar, Pattern: "*", DefaultTo: -1},
		{From: 0, To: stSlash, Pattern: "/", DefaultTo: -1},
		{From: 0, To: stLParen, Pattern: "(", DefaultTo: -1},
		{From: 0, To: stRParen, Pattern: ")", DefaultTo: -1},
	}

	finals := []automaton.FinalState{
		{State: stNum, Term: TermNum},
		{State: stWS, Term: TermWS},
		{State: stPlus, Term: TermPlus},
		{State: stMinus, Term: TermMinus},
		{State: stStar, Term: TermStar},
		{State: stSlash, Term: TermSlash},
		{State: stLParen, Term: TermLParen},
		{State: stRParen, Term: TermRParen},
	}

	return automaton.Build(transitions, finals, nil)
}
