// Package jsongram instantiates the toolkit for a JSON-like grammar:
// objects, arrays, strings, numbers, and the three literal keywords, with
// whitespace discarded between tokens. Keyword reclassification (package
// lex's IdentClasses/Keyword mechanism) is what turns a lower-case
// identifier run into TRUE/FALSE/NULL, the same mechanism
// dekarrin-tunaq/internal/ictiobus/lex uses to turn a generic identifier
// into a language keyword.
package jsongram

import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

const (
	ntValue symbol.Kind = symbol.FirstUserKind + iota
	ntObject
	ntObjectBody
	ntObjectBodyTail
	ntMember
	ntArray
	ntArrayBody
	ntArrayBodyTail

	TermLBrace
	TermRBrace
	TermLBracket
	TermRBracket
	TermColon
	TermComma
	TermString
	TermNumber
	TermTrue
	TermFalse
	TermNull
	TermWS

	// termIdent is an internal lexer-only class: a run of lower-case
	// letters that keyword reclassification turns into TRUE/FALSE/NULL.
	// It never appears in a grammar production and has no parse-tree
	// meaning of its own.
	termIdent
)

type namer struct{}

// Namer is this grammar's symbol.Namer.
var Namer symbol.Namer = namer{}

func (namer) Name(k symbol.Kind) string {
	switch k {
	case ntValue:
		return "value"
	case ntObject:
		return "object"
	case ntObjectBody:
		return "object-body"
	case ntObjectBodyTail:
		return "object-body-tail"
	case ntMember:
		return "member"
	case ntArray:
		return "array"
	case ntArrayBody:
		return "array-body"
	case ntArrayBodyTail:
		return "array-body-tail"
	case TermLBrace:
		return "LBRACE"
	case TermRBrace:
		return "RBRACE"
	case TermLBracket:
		return "LBRACKET"
	case TermRBracket:
		return "RBRACKET"
	case TermColon:
		return "COLON"
	case TermComma:
		return "COMMA"
	case TermString:
		return "STRING"
	case TermNumber:
		return "NUMBER"
	case TermTrue:
		return "TRUE"
	case TermFalse:
		return "FALSE"
	case TermNull:
		return "NULL"
	case TermWS:
		return "WS"
	case termIdent:
		return "IDENT"
	default:
		return k.String()
	}
}

func (namer) Discardable(k symbol.Kind) bool {
	return k == TermWS
}
