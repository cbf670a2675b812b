package parse

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/grammar"
	"github.com/arlenholt/frontkit/internal/frontkit/lex"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

const (
	ntS symbol.Kind = symbol.FirstUserKind + iota
	ntX
	ntT
	ntY

	tPlus
	tStar
	tLParen
	tRParen
	tInt
)

func aikenGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, err := grammar.New(ntS, []grammar.Production{
		{LHS: ntS, RHS: []symbol.Kind{ntT, ntX}},
		{LHS: ntX, RHS: []symbol.Kind{tPlus, ntS}},
		{LHS: ntX, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntT, RHS: []symbol.Kind{tLParen, ntS, tRParen}},
		{LHS: ntT, RHS: []symbol.Kind{tInt, ntY}},
		{LHS: ntY, RHS: []symbol.Kind{tStar, ntT}},
		{LHS: ntY, RHS: []symbol.Kind{symbol.Eps}},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return g
}

// mockStream is a TokenStream over a pre-built slice, for parser tests that
// don't want to also stand up a DFA.
type mockStream struct {
	toks []symbol.Token
	pos  int
}

func mockTokens(kinds ...symbol.Kind) lex.TokenStream {
	toks := make([]symbol.Token, len(kinds))
	for i, k := range kinds {
		toks[i] = symbol.Token{Kind: k, Line: 1}
	}
	return &mockStream{toks: toks}
}

func (m *mockStream) Peek() symbol.Token {
	if m.pos >= len(m.toks) {
		return symbol.Token{Kind: symbol.EOF, Line: 1}
	}
	return m.toks[m.pos]
}

func (m *mockStream) Next() symbol.Token {
	tok := m.Peek()
	if m.pos < len(m.toks) {
		m.pos++
	}
	return tok
}

func (m *mockStream) HasNext() bool {
	return m.Peek().Kind != symbol.EOF
}

func Test_Parser_predictiveParse(t *testing.T) {
	assert := assert.New(t)
	g := aikenGrammar(t)
	p, err := New(g)
	if !assert.NoError(err) {
		return
	}

	stream := mockTokens(tInt, tStar, tInt)
	tree, err := p.Parse(stream)
	if !assert.NoError(err) {
		return
	}

	leaves := tree.Leaves()
	gotKinds := make([]symbol.Kind, len(leaves))
	for i, l := range leaves {
		gotKinds[i] = l.Kind
	}
	assert.Equal([]symbol.Kind{tInt, tStar, tInt}, gotKinds)
}

func Test_Parser_reportsFirstFailure(t *testing.T) {
	assert := assert.New(t)
	g := aikenGrammar(t)
	p, err := New(g)
	if !assert.NoError(err) {
		return
	}

	stream := mockTokens(tRParen)
	_, err = p.Parse(stream)
	assert.Error(err)

	var synErr *SyntaxError
	assert.ErrorAs(err, &synErr)
}
