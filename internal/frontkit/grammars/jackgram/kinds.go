// Package jackgram instantiates the toolkit for a Jack-like
// object-oriented teaching language (as used by the nand2tetris course): a
// single class per compilation unit, static/field variable declarations,
// constructor/function/method subroutines, the five Jack statement forms,
// and an operator-precedence-free expression grammar (`term (op term)*`,
// matching the real Jack language specification, which has no precedence
// levels). This is the grammar spec.md §8's Jack scenario exercises.
package jackgram

import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

const (
	ntClass symbol.Kind = symbol.FirstUserKind + iota
	ntClassVarDecList
	ntClassVarDec
	ntVarNameTail
	ntSubroutineDecList
	ntSubroutineDec
	ntParamList
	ntParamListTail
	ntParam
	ntType
	ntReturnType
	ntSubroutineBody
	ntVarDecList
	ntVarDec
	ntStatementList
	ntStatement
	ntLetStatement
	ntLetIndex
	ntIfStatement
	ntElseClause
	ntWhileStatement
	ntDoStatement
	ntDoCallTail
	ntReturnStatement
	ntReturnValue
	ntExpression
	ntExpressionTail
	ntTerm
	ntTermIdentTail
	ntExpressionList
	ntExpressionListTail

	TermClass
	TermStatic
	TermField
	TermConstructor
	TermFunction
	TermMethod
	TermVoid
	TermInt
	TermChar
	TermBoolean
	TermVar
	TermLet
	TermIf
	TermElse
	TermWhile
	TermDo
	TermReturn
	TermTrue
	TermFalse
	TermNull
	TermThis

	TermIdent
	TermIntConst
	TermStringConst

	TermLBrace
	TermRBrace
	TermLParen
	TermRParen
	TermLBracket
	TermRBracket
	TermComma
	TermSemi
	TermDot
	TermEq

	TermPlus
	TermMinus
	TermStar
	TermSlash
	TermAmp
	TermPipe
	TermLt
	TermGt
	TermTilde

	TermWS
	TermComment
)

var keywordNames = map[symbol.Kind]string{
	TermClass: "class", TermStatic: "static", TermField: "field",
	TermConstructor: "constructor", TermFunction: "function", TermMethod: "method",
	TermVoid: "void", TermInt: "int", TermChar: "char", TermBoolean: "boolean",
	TermVar: "var", TermLet: "let", TermIf: "if", TermElse: "else",
	TermWhile: "while", TermDo: "do", TermReturn: "return",
	TermTrue: "true", TermFalse: "false", TermNull: "null", TermThis: "this",
}

type namer struct{}

// Namer is this grammar's symbol.Namer. Whitespace and comments are
// discardable.
var Namer symbol.Namer = namer{}

func (namer) Name(k symbol.Kind) string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	switch k {
	case TermIdent:
		return "IDENT"
	case TermIntConst:
		return "INT_CONST"
	case TermStringConst:
		return "STRING_CONST"
	case TermLBrace:
		return "{"
	case TermRBrace:
		return "}"
	case TermLParen:
		return "("
	case TermRParen:
		return ")"
	case TermLBracket:
		return "["
	case TermRBracket:
		return "]"
	case TermComma:
		return ","
	case TermSemi:
		return ";"
	case TermDot:
		return "."
	case TermEq:
		return "="
	case TermPlus:
		return "+"
	case TermMinus:
		return "-"
	case TermStar:
		return "*"
	case TermSlash:
		return "/"
	case TermAmp:
		return "&"
	case TermPipe:
		return "|"
	case TermLt:
		return "<"
	case TermGt:
		return ">"
	case TermTilde:
		return "~"
	case TermWS:
		return "WS"
	case TermComment:
		return "COMMENT"
	default:
		return k.String()
	}
}

func (namer) Discardable(k symbol.Kind) bool {
	return k == TermWS || k == TermComment
}
