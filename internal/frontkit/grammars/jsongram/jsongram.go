package jsongram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/lex"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// LexConfig returns this grammar's lex.Config: the identifier class
// (lower-case keyword runs) is reclassified into TRUE/FALSE/NULL via the
// DFA's keyword map.
func LexConfig() lex.Config {
	return lex.Config{IdentClasses: map[symbol.Kind]bool{termIdent: true}}
}

// Lex builds a TokenStream over src using this grammar's DFA, with
// whitespace filtered before the parser ever sees it.
func Lex(src string) (lex.TokenStream, error) {
	dfa, err := BuildDFA()
	if err != nil {
		return nil, err
	}
	raw := lex.New(dfa, LexConfig(), src)
	return lex.Filter(raw, Namer.Discardable), nil
}
