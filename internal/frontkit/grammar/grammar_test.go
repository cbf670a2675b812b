package grammar

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

// Classic aiken expression grammar (purple-dragon-book style):
//
//	S -> T X
//	X -> + S | eps
//	T -> ( S ) | int Y
//	Y -> * T | eps
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

func aikenGrammar(t *testing.T) *Grammar {
	t.Helper()
	g, err := New(ntS, []Production{
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

func Test_First(t *testing.T) {
	assert := assert.New(t)
	g := aikenGrammar(t)

	assert.Equal(map[symbol.Kind]bool{tLParen: true, tInt: true}, g.First(ntS))
	assert.Equal(map[symbol.Kind]bool{tPlus: true, symbol.Eps: true}, g.First(ntX))
	assert.Equal(map[symbol.Kind]bool{tStar: true, symbol.Eps: true}, g.First(ntY))
}

func Test_Follow(t *testing.T) {
	assert := assert.New(t)
	g := aikenGrammar(t)

	assert.Equal(map[symbol.Kind]bool{symbol.EOF: true, tRParen: true}, g.Follow(ntS))
	assert.Equal(map[symbol.Kind]bool{symbol.EOF: true, tRParen: true}, g.Follow(ntX))
	assert.Equal(map[symbol.Kind]bool{tPlus: true, symbol.EOF: true, tRParen: true}, g.Follow(ntT))
	assert.Equal(map[symbol.Kind]bool{tPlus: true, symbol.EOF: true, tRParen: true}, g.Follow(ntY))
}

func Test_LLTable_noConflicts(t *testing.T) {
	assert := assert.New(t)
	g := aikenGrammar(t)

	table, err := g.LLTable()
	if !assert.NoError(err) {
		return
	}

	idx, ok := table.Get(ntS, tInt)
	assert.True(ok)
	assert.Equal(0, idx)

	idx, ok = table.Get(ntX, tRParen)
	assert.True(ok)
	assert.Equal(2, idx) // X -> eps via FOLLOW(X)

	_, ok = table.Get(ntX, tStar)
	assert.False(ok)
}

func Test_LLTable_reportsConflict(t *testing.T) {
	assert := assert.New(t)

	// S -> a | a b : both alternatives start with 'a', FIRST sets overlap.
	const (
		s symbol.Kind = symbol.FirstUserKind + 100 + iota
		a
		b
	)

	g, err := New(s, []Production{
		{LHS: s, RHS: []symbol.Kind{a}},
		{LHS: s, RHS: []symbol.Kind{a, b}},
	})
	if !assert.NoError(err) {
		return
	}

	_, err = g.LLTable()
	assert.Error(err)

	var conflict *ConflictError
	assert.ErrorAs(err, &conflict)
}
