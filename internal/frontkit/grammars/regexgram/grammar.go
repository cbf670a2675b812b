package regexgram

import "github.com/arlenholt/frontkit/internal/frontkit/grammar"
import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

// BuildGrammar returns the LL(1) grammar:
//
//	Regex          -> Term RegexTail
//	RegexTail      -> PIPE Term RegexTail | eps
//	Term           -> Factor TermTail
//	TermTail       -> Factor TermTail | eps
//	Factor         -> Atom Suffix
//	Suffix         -> STAR | PLUS | QUESTION | eps
//	Atom           -> CHAR | DOT | LPAREN Regex RPAREN | LBRACKET ClassBody RBRACKET
//	ClassBody      -> ClassItem ClassBodyTail
//	ClassBodyTail  -> ClassItem ClassBodyTail | eps
//	ClassItem      -> CHAR ClassItemTail
//	ClassItemTail  -> DASH CHAR | eps
func BuildGrammar() (*grammar.Grammar, error) {
	return grammar.New(ntRegex, []grammar.Production{
		{LHS: ntRegex, RHS: []symbol.Kind{ntTerm, ntRegexTail}},
		{LHS: ntRegexTail, RHS: []symbol.Kind{TermPipe, ntTerm, ntRegexTail}},
		{LHS: ntRegexTail, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntTerm, RHS: []symbol.Kind{ntFactor, ntTermTail}},
		{LHS: ntTermTail, RHS: []symbol.Kind{ntFactor, ntTermTail}},
		{LHS: ntTermTail, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntFactor, RHS: []symbol.Kind{ntAtom, ntSuffix}},
		{LHS: ntSuffix, RHS: []symbol.Kind{TermStar}},
		{LHS: ntSuffix, RHS: []symbol.Kind{TermPlus}},
		{LHS: ntSuffix, RHS: []symbol.Kind{TermQuestion}},
		{LHS: ntSuffix, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntAtom, RHS: []symbol.Kind{TermChar}},
		{LHS: ntAtom, RHS: []symbol.Kind{TermDot}},
		{LHS: ntAtom, RHS: []symbol.Kind{TermLParen, ntRegex, TermRParen}},
		{LHS: ntAtom, RHS: []symbol.Kind{TermLBracket, ntClassBody, TermRBracket}},
		{LHS: ntClassBody, RHS: []symbol.Kind{ntClassItem, ntClassBodyTail}},
		{LHS: ntClassBodyTail, RHS: []symbol.Kind{ntClassItem, ntClassBodyTail}},
		{LHS: ntClassBodyTail, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntClassItem, RHS: []symbol.Kind{TermChar, ntClassItemTail}},
		{LHS: ntClassItemTail, RHS: []symbol.Kind{TermDash, TermChar}},
		{LHS: ntClassItemTail, RHS: []symbol.Kind{symbol.Eps}},
	})
}
