package jsongram

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/parse"
	"github.com/stretchr/testify/assert"
)

// Test_JSON_objectWithArray covers spec.md §8's JSON scenario:
// `{"k":[1,2,3]}` parses with no errors; the AST root describes an object
// with one member whose value is an array of three number leaves.
func Test_JSON_objectWithArray(t *testing.T) {
	assert := assert.New(t)

	src := `{"k":[1,2,3]}`
	stream, err := Lex(src)
	if !assert.NoError(err) {
		return
	}
	g, err := BuildGrammar()
	if !assert.NoError(err) {
		return
	}
	p, err := parse.New(g)
	if !assert.NoError(err) {
		return
	}
	tree, err := p.Parse(stream)
	if !assert.NoError(err) {
		return
	}

	got := BuildVisitor().Convert(tree)
	assert.Equal(ntObject, got.Symbol)
	if !assert.Len(got.Children, 1) {
		return
	}

	member := got.Children[0]
	assert.Equal(ntMember, member.Symbol)
	if !assert.Len(member.Children, 2) {
		return
	}
	assert.Equal(`"k"`, member.Children[0].Source.Lexeme)

	arr := member.Children[1]
	assert.Equal(ntArray, arr.Symbol)
	if !assert.Len(arr.Children, 3) {
		return
	}
	for i, want := range []string{"1", "2", "3"} {
		assert.True(arr.Children[i].Terminal)
		assert.Equal(want, arr.Children[i].Source.Lexeme)
	}
}

func Test_JSON_emptyObjectAndArray(t *testing.T) {
	assert := assert.New(t)

	stream, err := Lex(`{}`)
	if !assert.NoError(err) {
		return
	}
	g, err := BuildGrammar()
	if !assert.NoError(err) {
		return
	}
	p, err := parse.New(g)
	if !assert.NoError(err) {
		return
	}
	tree, err := p.Parse(stream)
	if !assert.NoError(err) {
		return
	}

	got := BuildVisitor().Convert(tree)
	assert.Equal(ntObject, got.Symbol)
	assert.Empty(got.Children)
}

func Test_JSON_keywordLiterals(t *testing.T) {
	assert := assert.New(t)

	stream, err := Lex(`[true,false,null]`)
	if !assert.NoError(err) {
		return
	}
	g, err := BuildGrammar()
	if !assert.NoError(err) {
		return
	}
	p, err := parse.New(g)
	if !assert.NoError(err) {
		return
	}
	tree, err := p.Parse(stream)
	if !assert.NoError(err) {
		return
	}

	got := BuildVisitor().Convert(tree)
	assert.Equal(ntArray, got.Symbol)
	if !assert.Len(got.Children, 3) {
		return
	}
	assert.Equal(TermTrue, got.Children[0].Symbol)
	assert.Equal(TermFalse, got.Children[1].Symbol)
	assert.Equal(TermNull, got.Children[2].Symbol)
}
