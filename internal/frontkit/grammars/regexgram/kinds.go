// Package regexgram instantiates the toolkit for the regular-expression
// mini-language spec.md §1 names as the frontend that is "driven further
// into an NFA-construction pass": literal characters, `.`, alternation
// `|`, concatenation by juxtaposition, the postfix quantifiers `*`, `+`,
// `?`, grouping with `( )`, and character classes `[ ... ]` with `a-b`
// ranges. The grammar shape mirrors a textbook regex recursive-descent
// grammar (Regex -> Term (`|` Term)*, Term -> Factor+, Factor -> Atom
// Suffix?) left-factored into the right-recursive LL(1) form spec.md §4.3
// expects; original_source/EfficientCompiler/RegexParser_ast.cpp supplies
// the AST shape this grammar's transform rules build toward but not a
// parser grammar to adapt verbatim (the retrieved excerpt is AST
// conversion code only -- see DESIGN.md).
package regexgram

import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

const (
	ntRegex symbol.Kind = symbol.FirstUserKind + iota
	ntRegexTail
	ntTerm
	ntTermTail
	ntFactor
	ntSuffix
	ntAtom
	ntClassBody
	ntClassBodyTail
	ntClassItem
	ntClassItemTail

	TermChar
	TermDot
	TermPipe
	TermStar
	TermPlus
	TermQuestion
	TermLParen
	TermRParen
	TermLBracket
	TermRBracket
	TermDash
)

// namer implements symbol.Namer for this grammar's Kind space. No token in
// this language is discardable: every byte of a regex pattern is
// significant, including what would be whitespace in other grammars.
type namer struct{}

// Namer is this grammar's symbol.Namer.
var Namer symbol.Namer = namer{}

func (namer) Name(k symbol.Kind) string {
	switch k {
	case ntRegex:
		return "regex"
	case ntRegexTail:
		return "regex-tail"
	case ntTerm:
		return "term"
	case ntTermTail:
		return "term-tail"
	case ntFactor:
		return "factor"
	case ntSuffix:
		return "suffix"
	case ntAtom:
		return "atom"
	case ntClassBody:
		return "class-body"
	case ntClassBodyTail:
		return "class-body-tail"
	case ntClassItem:
		return "class-item"
	case ntClassItemTail:
		return "class-item-tail"
	case TermChar:
		return "CHAR"
	case TermDot:
		return "DOT"
	case TermPipe:
		return "PIPE"
	case TermStar:
		return "STAR"
	case TermPlus:
		return "PLUS"
	case TermQuestion:
		return "QUESTION"
	case TermLParen:
		return "LPAREN"
	case TermRParen:
		return "RPAREN"
	case TermLBracket:
		return "LBRACKET"
	case TermRBracket:
		return "RBRACKET"
	case TermDash:
		return "DASH"
	default:
		return k.String()
	}
}

func (namer) Discardable(symbol.Kind) bool {
	return false
}
