package jsongram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/automaton"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

const (
	stLBrace    = 1
	stRBrace    = 2
	stLBracket  = 3
	stRBracket  = 4
	stColon     = 5
	stComma     = 6
	stWS        = 7
	stStrOpen   = 8
	stStrClose  = 9
	stNumSign   = 10
	stNumInt    = 11
	stNumDotted = 12
	stNumFrac   = 13
	stIdent     = 14
)

const digits = "0123456789"
const lower = "abcdefghijklmnopqrstuvwxyz"

// BuildDFA builds the lexer automaton for JSON source text.
func BuildDFA() (*automaton.DFA, error) {
	transitions := []automaton.Transition{
		{From: 0, To: stLBrace, Pattern: "{", DefaultTo: -1},
		{From: 0, To: stRBrace, Pattern: "}", DefaultTo: -1},
		{From: 0, To: stLBracket, Pattern: "[", DefaultTo: -1},
		{From: 0, To: stRBracket, Pattern: "]", DefaultTo: -1},
		{From: 0, To: stColon, Pattern: ":", DefaultTo: -1},
		{From: 0, To: stComma, Pattern: ",", DefaultTo: -1},
		{From: 0, To: stWS, Pattern: " \t\n\r", DefaultTo: -1},
		{From: stWS, To: stWS, Pattern: " \t\n\r", DefaultTo: -1},

		// Strings: anything goes until the closing quote.
		{From: 0, To: stStrOpen, Pattern: "\"", DefaultTo: -1},
		{From: stStrOpen, DefaultTo: stStrOpen},
		{From: stStrOpen, To: stStrClose, Pattern: "\"", DefaultTo: -1},

		// Numbers: optional leading '-', digit run, optional '.' digit run.
		{From: 0, To: stNumSign, Pattern: "-", DefaultTo: -1},
		{From: 0, To: stNumInt, Pattern: digits, DefaultTo: -1},
		{From: stNumSign, To: stNumInt, Pattern: digits, DefaultTo: -1},
		{From: stNumInt, To: stNumInt, Pattern: digits, DefaultTo: -1},
		{From: stNumInt, To: stNumDotted, Pattern: ".", DefaultTo: -1},
		{From: stNumDotted, To: stNumFrac, Pattern: digits, DefaultTo: -1},
		{From: stNumFrac, To: stNumFrac, Pattern: digits, DefaultTo: -1},

		// Keyword-eligible identifier run.
		{From: 0, To: stIdent, Pattern: lower, DefaultTo: -1},
		{From: stIdent, To: stIdent, Pattern: lower, DefaultTo: -1},
	}

	finals := []automaton.FinalState{
		{State: stLBrace, Term: TermLBrace},
		{State: stRBrace, Term: TermRBrace},
		{State: stLBracket, Term: TermLBracket},
		{State: stRBracket, Term: TermRBracket},
		{State: stColon, Term: TermColon},
		{State: stComma, Term: TermComma},
		{State: stWS, Term: TermWS},
		{State: stStrClose, Term: TermString},
		{State: stNumInt, Term: TermNumber},
		{State: stNumFrac, Term: TermNumber},
		{State: stIdent, Term: termIdent},
	}

	return automaton.Build(transitions, finals, map[string]symbol.Kind{
		"true":  TermTrue,
		"false": TermFalse,
		"null":  TermNull,
	})
}
