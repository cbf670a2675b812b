// Package arithgram instantiates the toolkit for a small arithmetic
// expression language: integer literals, the four binary operators, and
// parenthesised grouping, with the classic Expr/Term/Factor precedence
// split. The grammar is the same right-recursive aiken-style shape used in
// internal/frontkit/grammar's own tests, specialised to real lexemes and an
// AST that folds same-operator runs into one n-ary node (spec.md §8's
// "1 + 2 + 4" scenario).
package arithgram

import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

const (
	ntExpr symbol.Kind = symbol.FirstUserKind + iota
	ntExprTail
	ntTerm
	ntTermTail
	ntFactor

	TermNum
	TermPlus
	TermMinus
	TermStar
	TermSlash
	TermLParen
	TermRParen
	TermWS
)

type namer struct{}

// Namer is this grammar's symbol.Namer. Whitespace is the only discardable
// terminal.
var Namer symbol.Namer = namer{}

func (namer) Name(k symbol.Kind) string {
	switch k {
	case ntExpr:
		return "expr"
	case ntExprTail:
		return "expr-tail"
	case ntTerm:
		return "term"
	case ntTermTail:
		return "term-tail"
	case ntFactor:
		return "factor"
	case TermNum:
		return "NUM"
	case TermPlus:
		return "PLUS"
	case TermMinus:
		return "MINUS"
	case TermStar:
		return "STAR"
	case TermSlash:
		return "SLASH"
	case TermLParen:
		return "LPAREN"
	case TermRParen:
		return "RPAREN"
	case TermWS:
		return "WS"
	default:
		return k.String()
	}
}

func (namer) Discardable(k symbol.Kind) bool {
	return k == TermWS
}
