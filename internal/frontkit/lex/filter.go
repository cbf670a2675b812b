package lex

import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

// Filter wraps an underlying TokenStream, skipping every token whose Kind
// discard reports true for, so the parser only ever sees the
// "non-discardable" stream from spec.md §8 property 6 while package lex
// itself keeps emitting whitespace/comment tokens in-band (spec.md §4.2).
func Filter(ts TokenStream, discard func(symbol.Kind) bool) TokenStream {
	return &filtered{ts: ts, discard: discard}
}

type filtered struct {
	ts      TokenStream
	discard func(symbol.Kind) bool
}

func (f *filtered) skip() {
	for f.ts.Peek().Kind != symbol.EOF && f.discard(f.ts.Peek().Kind) {
		f.ts.Next()
	}
}

func (f *filtered) Next() symbol.Token {
	f.skip()
	return f.ts.Next()
}

func (f *filtered) Peek() symbol.Token {
	f.skip()
	return f.ts.Peek()
}

func (f *filtered) HasNext() bool {
	f.skip()
	return f.ts.HasNext()
}
