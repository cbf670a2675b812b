package regexgram

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/parse"
	"github.com/arlenholt/frontkit/internal/frontkit/regexnfa"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

func compile(t *testing.T, src string) *symbol.ASTNode {
	t.Helper()
	assert := assert.New(t)

	stream, err := Lex(src)
	if !assert.NoError(err) {
		return nil
	}

	g, err := BuildGrammar()
	if !assert.NoError(err) {
		return nil
	}

	p, err := parse.New(g)
	if !assert.NoError(err) {
		return nil
	}

	tree, err := p.Parse(stream)
	if !assert.NoError(err) {
		return nil
	}

	return BuildVisitor().Convert(tree)
}

// Test_Regex_simpleConcat covers spec.md §8's "Regex simple" scenario:
// "abc" -> CONCAT(CHAR a, CHAR b, CHAR c).
func Test_Regex_simpleConcat(t *testing.T) {
	assert := assert.New(t)
	got := compile(t, "abc")
	if got == nil {
		return
	}

	assert.False(got.Terminal)
	assert.Equal(regexnfa.KindConcat, got.Symbol)
	if !assert.Len(got.Children, 3) {
		return
	}
	for i, want := range []string{"a", "b", "c"} {
		assert.True(got.Children[i].Terminal)
		assert.Equal(want, got.Children[i].Source.Lexeme)
	}
}

// Test_Regex_alternationClassStar covers spec.md §8's "Regex alternation +
// class + star" scenario: "abc|[d-f]*" ->
// OR(CONCAT(CHAR a, CHAR b, CHAR c), STAR(_class(MINUS(d,f)))).
func Test_Regex_alternationClassStar(t *testing.T) {
	assert := assert.New(t)
	got := compile(t, "abc|[d-f]*")
	if got == nil {
		return
	}

	assert.Equal(regexnfa.KindOr, got.Symbol)
	if !assert.Len(got.Children, 2) {
		return
	}

	left := got.Children[0]
	assert.Equal(regexnfa.KindConcat, left.Symbol)
	assert.Len(left.Children, 3)

	right := got.Children[1]
	assert.Equal(regexnfa.KindStar, right.Symbol)
	if !assert.Len(right.Children, 1) {
		return
	}
	class := right.Children[0]
	assert.Equal(regexnfa.KindClass, class.Symbol)
	if !assert.Len(class.Children, 1) {
		return
	}
	rangeNode := class.Children[0]
	assert.Equal(regexnfa.KindMinus, rangeNode.Symbol)
	assert.Equal("d", rangeNode.Children[0].Source.Lexeme)
	assert.Equal("f", rangeNode.Children[1].Source.Lexeme)

	// Feeding the AST straight into Thompson construction should succeed
	// with no range errors and a finite state count.
	arena, frag, errs := regexnfa.Compile(got)
	assert.Empty(errs)
	assert.Greater(arena.Len(), 0)
	assert.Len(arena.State(frag.Entry).EpsilonOut, 2)
}

// Test_Regex_invalidRange covers spec.md §8's "Regex invalid range"
// scenario: "[z-a]" builds an AST, and the NFA pass reports
// "Invalid range: z-a".
func Test_Regex_invalidRange(t *testing.T) {
	assert := assert.New(t)
	got := compile(t, "[z-a]")
	if got == nil {
		return
	}
	assert.Equal(regexnfa.KindClass, got.Symbol)

	_, _, errs := regexnfa.Compile(got)
	if !assert.Len(errs, 1) {
		return
	}
	assert.Equal("Invalid range: z-a", errs[0].Error())
}

func Test_Regex_dotIsWildcardNotLiteral(t *testing.T) {
	assert := assert.New(t)
	got := compile(t, ".")
	if got == nil {
		return
	}
	assert.False(got.Terminal)
	assert.Equal(regexnfa.KindDot, got.Symbol)
}
