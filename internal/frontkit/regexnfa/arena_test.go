package regexnfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Arena_DeleteSwapRemovesAndRewrites(t *testing.T) {
	assert := assert.New(t)
	a := NewArena()

	s0 := a.New()
	s1 := a.New()
	s2 := a.New()
	a.AddEpsilon(s0, s2) // will need rewriting when s2 is swapped into s1's slot

	a.Delete(s1)

	assert.Equal(2, a.Len())
	// s2's state object now lives at index s1 (the only open slot), and the
	// dangling epsilon from s0 must have been rewritten to point there.
	assert.Equal([]StateID{s1}, a.State(s0).EpsilonOut)
}

func Test_Arena_SweepDropsUnreachable(t *testing.T) {
	assert := assert.New(t)
	a := NewArena()

	root := a.New()
	reachable := a.New()
	orphan := a.New()
	_ = orphan
	a.AddEpsilon(root, reachable)

	a.Sweep(root)

	assert.Equal(2, a.Len())
}

func Test_Arena_SweepKeepsCycles(t *testing.T) {
	assert := assert.New(t)
	a := NewArena()

	root := a.New()
	loop := a.New()
	a.AddEpsilon(root, loop)
	a.AddEpsilon(loop, loop)

	a.Sweep(root)

	assert.Equal(2, a.Len())
}
