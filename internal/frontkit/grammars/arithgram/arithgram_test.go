package arithgram

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/parse"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

// Test_Arithmetic_plusChain covers spec.md §8's concrete arithmetic
// scenario: "1 + 2 + 4" -> tokens NUM("1") PLUS NUM("2") PLUS NUM("4") EOF
// with whitespace discarded, and an AST with a single PLUS node with three
// leaf children 1, 2, 4.
func Test_Arithmetic_plusChain(t *testing.T) {
	assert := assert.New(t)

	stream, err := Lex("1 + 2 + 4")
	if !assert.NoError(err) {
		return
	}

	var kinds []symbol.Kind
	for stream.HasNext() {
		kinds = append(kinds, stream.Next().Kind)
	}
	kinds = append(kinds, stream.Next().Kind) // trailing EOF
	assert.Equal([]symbol.Kind{TermNum, TermPlus, TermNum, TermPlus, TermNum, symbol.EOF}, kinds)

	g, err := BuildGrammar()
	if !assert.NoError(err) {
		return
	}
	p, err := parse.New(g)
	if !assert.NoError(err) {
		return
	}

	stream2, err := Lex("1 + 2 + 4")
	if !assert.NoError(err) {
		return
	}
	tree, err := p.Parse(stream2)
	if !assert.NoError(err) {
		return
	}

	got := BuildVisitor().Convert(tree)
	assert.Equal(TermPlus, got.Symbol)
	if !assert.Len(got.Children, 3) {
		return
	}
	for i, want := range []string{"1", "2", "4"} {
		assert.True(got.Children[i].Terminal)
		assert.Equal(want, got.Children[i].Source.Lexeme)
	}
}

func Test_Arithmetic_parenthesesAndPrecedence(t *testing.T) {
	assert := assert.New(t)

	g, err := BuildGrammar()
	if !assert.NoError(err) {
		return
	}
	p, err := parse.New(g)
	if !assert.NoError(err) {
		return
	}

	stream, err := Lex("(1 + 2) * 3")
	if !assert.NoError(err) {
		return
	}
	tree, err := p.Parse(stream)
	if !assert.NoError(err) {
		return
	}

	got := BuildVisitor().Convert(tree)
	assert.Equal(TermStar, got.Symbol)
	if !assert.Len(got.Children, 2) {
		return
	}
	assert.Equal(TermPlus, got.Children[0].Symbol)
	assert.True(got.Children[1].Terminal)
	assert.Equal("3", got.Children[1].Source.Lexeme)
}
