package jackgram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/lex"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// LexConfig returns this grammar's lex.Config: identifier runs are
// reclassified into the twenty-one reserved keywords via the DFA's
// keyword map.
func LexConfig() lex.Config {
	return lex.Config{IdentClasses: map[symbol.Kind]bool{TermIdent: true}}
}

// Lex builds a TokenStream over src using this grammar's DFA, with
// whitespace and comments filtered before the parser ever sees them.
func Lex(src string) (lex.TokenStream, error) {
	dfa, err := BuildDFA()
	if err != nil {
		return nil, err
	}
	raw := lex.New(dfa, LexConfig(), src)
	return lex.Filter(raw, Namer.Discardable), nil
}
