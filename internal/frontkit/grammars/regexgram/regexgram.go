package regexgram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/lex"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// LexConfig returns this grammar's lex.Config. There is no identifier
// class and therefore no keyword reclassification or length limit.
func LexConfig() lex.Config {
	return lex.Config{}
}

// Lex builds a TokenStream over src using this grammar's DFA. Every token
// is exactly one byte long; there is no identifier class and therefore no
// keyword reclassification or length limit.
func Lex(src string) (lex.TokenStream, error) {
	dfa, err := BuildDFA()
	if err != nil {
		return nil, err
	}
	return lex.New(dfa, LexConfig(), src), nil
}

var _ symbol.Namer = Namer
