package automaton

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

// a tiny two-state DFA: state 0 --[a-z]--> state 1 (final, IDENT), anything
// else from state 0 is dead.
func identDFA(t *testing.T) *DFA {
	t.Helper()
	d, err := Build(
		[]Transition{
			{From: 0, To: 1, Pattern: "abcdefghijklmnopqrstuvwxyz", DefaultTo: -1},
			{From: 1, To: 1, Pattern: "abcdefghijklmnopqrstuvwxyz", DefaultTo: -1},
		},
		[]FinalState{{State: 1, Term: symbol.FirstUserKind}},
		nil,
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	return d
}

func Test_Build_rejectsUnreachableState(t *testing.T) {
	assert := assert.New(t)

	_, err := Build(
		[]Transition{
			{From: 0, To: 1, Pattern: "a", DefaultTo: -1},
		},
		[]FinalState{{State: 2, Term: symbol.FirstUserKind}},
		nil,
	)

	assert.Error(err)
}

func Test_Build_rejectsDuplicateFinal(t *testing.T) {
	assert := assert.New(t)

	_, err := Build(
		[]Transition{
			{From: 0, To: 1, Pattern: "a", DefaultTo: -1},
		},
		[]FinalState{
			{State: 1, Term: symbol.FirstUserKind},
			{State: 1, Term: symbol.FirstUserKind + 1},
		},
		nil,
	)

	assert.Error(err)
}

func Test_Build_rejectsConflictingDefault(t *testing.T) {
	assert := assert.New(t)

	_, err := Build(
		[]Transition{
			{From: 0, To: 1, Pattern: "a", DefaultTo: 1},
			{From: 0, To: 2, Pattern: "b", DefaultTo: 2},
		},
		[]FinalState{{State: 1, Term: symbol.FirstUserKind}},
		nil,
	)

	assert.Error(err)
}

func Test_Run_longestMatch(t *testing.T) {
	assert := assert.New(t)
	d := identDFA(t)

	kind, end := d.Run("hello world", 0)
	assert.Equal(symbol.FirstUserKind, kind)
	assert.Equal(5, end)
}

func Test_Run_errSymbol(t *testing.T) {
	assert := assert.New(t)
	d := identDFA(t)

	kind, end := d.Run("123", 0)
	assert.Equal(symbol.ErrSymbol, kind)
	assert.Equal(1, end)
}

func Test_Run_eof(t *testing.T) {
	assert := assert.New(t)
	d := identDFA(t)

	kind, end := d.Run("abc", 3)
	assert.Equal(symbol.EOF, kind)
	assert.Equal(3, end)
}

func Test_Run_errPattern(t *testing.T) {
	assert := assert.New(t)

	// state 0 --a--> state 1 (not final) --b--> state 2 (final); "ac" makes
	// progress into state 1 without ever reaching a final state.
	d, err := Build(
		[]Transition{
			{From: 0, To: 1, Pattern: "a", DefaultTo: -1},
			{From: 1, To: 2, Pattern: "b", DefaultTo: -1},
		},
		[]FinalState{{State: 2, Term: symbol.FirstUserKind}},
		nil,
	)
	if !assert.NoError(err) {
		return
	}

	kind, end := d.Run("ac", 0)
	assert.Equal(symbol.ErrPattern, kind)
	assert.Equal(2, end)
}

func Test_Build_controlBytesAreDead(t *testing.T) {
	assert := assert.New(t)
	d := identDFA(t)

	assert.EqualValues(noTransition, d.Next(0, 0))
	assert.EqualValues(noTransition, d.Next(0, 127))
}

func Test_DFA_String_doesNotPanic(t *testing.T) {
	assert := assert.New(t)
	d := identDFA(t)
	assert.NotEmpty(d.String())
}
