package arithgram

import "github.com/arlenholt/frontkit/internal/frontkit/lex"

// LexConfig returns this grammar's lex.Config. Arithmetic has no
// identifier class, so there is nothing to reclassify or length-limit.
func LexConfig() lex.Config {
	return lex.Config{}
}

// Lex builds a TokenStream over src using this grammar's DFA, with
// whitespace filtered out before it ever reaches the parser.
func Lex(src string) (lex.TokenStream, error) {
	dfa, err := BuildDFA()
	if err != nil {
		return nil, err
	}
	raw := lex.New(dfa, LexConfig(), src)
	return lex.Filter(raw, Namer.Discardable), nil
}
