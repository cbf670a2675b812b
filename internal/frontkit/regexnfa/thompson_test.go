package regexnfa

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

func charLeaf(c byte) *symbol.ASTNode {
	return symbol.NewASTLeaf(symbol.Token{Kind: KindChar, Lexeme: string(c)})
}

// Test_Compile_concat covers the "Regex simple" scenario: "abc" ->
// CONCAT(CHAR a, CHAR b, CHAR c).
func Test_Compile_concat(t *testing.T) {
	assert := assert.New(t)

	ast := symbol.NewASTNode(KindConcat, charLeaf('a'), charLeaf('b'), charLeaf('c'))
	arena, frag, errs := Compile(ast)

	assert.Empty(errs)
	assert.NotEqual(frag.Entry, frag.Exit)

	// Walking the single labeled-edge chain from entry should visit 'a',
	// then (via epsilon) 'b', then 'c', and land on exit.
	var labels []byte
	cur := frag.Entry
	for i := 0; i < 3; i++ {
		s := arena.State(cur)
		if !assert.Len(s.LabeledOut, 1) {
			return
		}
		edge := s.LabeledOut[0]
		for b := byte(0); b < 128; b++ {
			if edge.Label.Contains(b) {
				labels = append(labels, b)
			}
		}
		charExit := edge.To
		if i < 2 {
			exitState := arena.State(charExit)
			if !assert.Len(exitState.EpsilonOut, 1) {
				return
			}
			cur = exitState.EpsilonOut[0]
		} else {
			cur = charExit
		}
	}
	assert.Equal([]byte("abc"), labels)
	assert.Equal(frag.Exit, cur)
}

// Test_Compile_orClassStar covers the "Regex alternation + class + star"
// scenario: "abc|[d-f]*" -> OR(CONCAT(a,b,c), STAR(_class(MINUS(d,f)))).
func Test_Compile_orClassStar(t *testing.T) {
	assert := assert.New(t)

	abc := symbol.NewASTNode(KindConcat, charLeaf('a'), charLeaf('b'), charLeaf('c'))
	rangeNode := symbol.NewASTNode(KindMinus, charLeaf('d'), charLeaf('f'))
	class := symbol.NewASTNode(KindClass, rangeNode)
	star := symbol.NewASTNode(KindStar, class)
	or := symbol.NewASTNode(KindOr, abc, star)

	arena, frag, errs := Compile(or)
	assert.Empty(errs)

	entryState := arena.State(frag.Entry)
	assert.Len(entryState.EpsilonOut, 2, "OR entry must fan out to both branches")

	// finite, and every referenced id is in range.
	assert.Greater(arena.Len(), 0)
	for i := 0; i < arena.Len(); i++ {
		s := arena.State(StateID(i))
		for _, to := range s.EpsilonOut {
			assert.True(int(to) < arena.Len())
		}
		for _, e := range s.LabeledOut {
			assert.True(int(e.To) < arena.Len())
		}
	}
}

// Test_Compile_invalidRange covers the "Regex invalid range" scenario:
// "[z-a]" -> NFA pass reports "Invalid range: z-a".
func Test_Compile_invalidRange(t *testing.T) {
	assert := assert.New(t)

	rangeNode := symbol.NewASTNode(KindMinus, charLeaf('z'), charLeaf('a'))
	class := symbol.NewASTNode(KindClass, rangeNode)

	_, frag, errs := Compile(class)

	if !assert.Len(errs, 1) {
		return
	}
	assert.Equal("Invalid range: z-a", errs[0].Error())
	// construction still produces a (empty-labeled) fragment rather than
	// aborting.
	assert.NotEqual(frag.Entry, frag.Exit)
}

func Test_Compile_plusOmitsBypass(t *testing.T) {
	assert := assert.New(t)

	plus := symbol.NewASTNode(KindPlus, charLeaf('a'))
	arena, frag, errs := Compile(plus)
	assert.Empty(errs)

	entryState := arena.State(frag.Entry)
	assert.Len(entryState.EpsilonOut, 1, "PLUS must not have an entry->exit bypass edge")
}

func Test_Compile_starHasBypass(t *testing.T) {
	assert := assert.New(t)

	star := symbol.NewASTNode(KindStar, charLeaf('a'))
	arena, frag, errs := Compile(star)
	assert.Empty(errs)

	entryState := arena.State(frag.Entry)
	assert.Len(entryState.EpsilonOut, 2, "STAR must have entry->inner and entry->exit")
}
