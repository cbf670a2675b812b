package lex

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/automaton"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

const (
	kindIdent symbol.Kind = symbol.FirstUserKind + iota
	kindIf
	kindSpace
)

func buildTestDFA(t *testing.T) *automaton.DFA {
	t.Helper()
	letters := "abcdefghijklmnopqrstuvwxyz"
	d, err := automaton.Build(
		[]automaton.Transition{
			{From: 0, To: 1, Pattern: letters, DefaultTo: -1},
			{From: 1, To: 1, Pattern: letters, DefaultTo: -1},
			{From: 0, To: 2, Pattern: " \t\n", DefaultTo: -1},
			{From: 2, To: 2, Pattern: " \t\n", DefaultTo: -1},
		},
		[]automaton.FinalState{
			{State: 1, Term: kindIdent},
			{State: 2, Term: kindSpace},
		},
		map[string]symbol.Kind{"if": kindIf},
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return d
}

func Test_Stream_keywordReclassification(t *testing.T) {
	assert := assert.New(t)
	d := buildTestDFA(t)
	cfg := Config{IdentClasses: map[symbol.Kind]bool{kindIdent: true}}

	ts := New(d, cfg, "if foo")

	tok := ts.Next()
	assert.Equal(kindIf, tok.Kind)
	assert.Equal("if", tok.Lexeme)

	tok = ts.Next()
	assert.Equal(kindSpace, tok.Kind)

	tok = ts.Next()
	assert.Equal(kindIdent, tok.Kind)
	assert.Equal("foo", tok.Lexeme)

	tok = ts.Next()
	assert.Equal(symbol.EOF, tok.Kind)
}

func Test_Stream_lengthLimit(t *testing.T) {
	assert := assert.New(t)
	d := buildTestDFA(t)
	cfg := Config{IdentClasses: map[symbol.Kind]bool{kindIdent: true}, MaxLength: 3}

	ts := New(d, cfg, "foobar")
	tok := ts.Next()
	assert.Equal(symbol.ErrLength, tok.Kind)
}

func Test_Filter_skipsDiscardable(t *testing.T) {
	assert := assert.New(t)
	d := buildTestDFA(t)
	cfg := Config{IdentClasses: map[symbol.Kind]bool{kindIdent: true}}

	ts := Filter(New(d, cfg, "if  foo"), func(k symbol.Kind) bool { return k == kindSpace })

	tok := ts.Next()
	assert.Equal(kindIf, tok.Kind)
	tok = ts.Next()
	assert.Equal(kindIdent, tok.Kind)
	tok = ts.Next()
	assert.Equal(symbol.EOF, tok.Kind)
}

func Test_Stream_lineTracking(t *testing.T) {
	assert := assert.New(t)
	d := buildTestDFA(t)
	cfg := Config{}

	ts := New(d, cfg, "foo\n\nbar")
	tok := ts.Next()
	assert.Equal(1, tok.Line)
	tok = ts.Next() // the two newlines, bundled into the space-class match
	assert.Equal(1, tok.Line)
	tok = ts.Next()
	assert.Equal(3, tok.Line)
}
