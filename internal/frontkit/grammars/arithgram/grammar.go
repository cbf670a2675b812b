package arithgram

import "github.com/arlenholt/frontkit/internal/frontkit/grammar"
import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

// BuildGrammar returns the LL(1) grammar:
//
//	Expr     -> Term ExprTail
//	ExprTail -> PLUS Term ExprTail | MINUS Term ExprTail | eps
//	Term     -> Factor TermTail
//	TermTail -> STAR Factor TermTail | SLASH Factor TermTail | eps
//	Factor   -> NUM | LPAREN Expr RPAREN
func BuildGrammar() (*grammar.Grammar, error) {
	return grammar.New(ntExpr, []grammar.Production{
		{LHS: ntExpr, RHS: []symbol.Kind{ntTerm, ntExprTail}},
		{LHS: ntExprTail, RHS: []symbol.Kind{TermPlus, ntTerm, ntExprTail}},
		{LHS: ntExprTail, RHS: []symbol.Kind{TermMinus, ntTerm, ntExprTail}},
		{LHS: ntExprTail, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntTerm, RHS: []symbol.Kind{ntFactor, ntTermTail}},
		{LHS: ntTermTail, RHS: []symbol.Kind{TermStar, ntFactor, ntTermTail}},
		{LHS: ntTermTail, RHS: []symbol.Kind{TermSlash, ntFactor, ntTermTail}},
		{LHS: ntTermTail, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntFactor, RHS: []symbol.Kind{TermNum}},
		{LHS: ntFactor, RHS: []symbol.Kind{TermLParen, ntExpr, TermRParen}},
	})
}
