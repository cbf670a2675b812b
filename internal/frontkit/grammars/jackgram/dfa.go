package jackgram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/automaton"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

const (
	stLBrace = 1
	stRBrace = 2
	stLParen = 3
	stRParen = 4
	stLBrack = 5
	stRBrack = 6
	stComma  = 7
	stSemi   = 8
	stDot    = 9
	stPlus   = 10
	stMinus  = 11
	stStar   = 12
	stSlash  = 13
	stAmp    = 14
	stPipe   = 15
	stLt     = 16
	stGt     = 17
	stEq     = 18
	stTilde  = 19
	stWS     = 20
	stIdent  = 21
	stInt    = 22
	stStr    = 23
	stStrEnd = 24

	// Comment handling: '/' alone is stSlash (divide); from there '//'
	// starts a line comment, '/*' starts a block comment. See BuildDFA's
	// doc comment for why stSlash must stay final even though it also has
	// outgoing edges.
	stLineComment  = 25
	stBlockBody    = 26
	stBlockStar    = 27
	stBlockCommEnd = 28
)

const (
	letters       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits        = "0123456789"
	identContinue = letters + digits + "_"
	whitespace    = " \t\r\n"
)

// BuildDFA builds the lexer automaton for Jack-like source text.
//
// The divide/comment split is the one subtle corner: state stSlash is
// reached on a lone '/' and is itself final (TermSlash), but also carries
// explicit edges for a second '/' or '*'. Longest-match run semantics mean
// "/x" (anything but another slash or star) stops at stSlash and yields a
// plain divide token, while "//" or "/*" keeps extending into a comment.
func BuildDFA() (*automaton.DFA, error) {
	transitions := []automaton.Transition{
		{From: 0, To: stLBrace, Pattern: "{", DefaultTo: -1},
		{From: 0, To: stRBrace, Pattern: "}", DefaultTo: -1},
		{From: 0, To: stLParen, Pattern: "(", DefaultTo: -1},
		{From: 0, To: stRParen, Pattern: ")", DefaultTo: -1},
		{From: 0, To: stLBrack, Pattern: "[", DefaultTo: -1},
		{From: 0, To: stRBrack, Pattern: "]", DefaultTo: -1},
		{From: 0, To: stComma, Pattern: ",", DefaultTo: -1},
		{From: 0, To: stSemi, Pattern: ";", DefaultTo: -1},
		{From: 0, To: stDot, Pattern: ".", DefaultTo: -1},
		{From: 0, To: stPlus, Pattern: "+", DefaultTo: -1},
		{From: 0, To: stMinus, Pattern: "-", DefaultTo: -1},
		{From: 0, To: stStar, Pattern: "*", DefaultTo: -1},
		{From: 0, To: stSlash, Pattern: "/", DefaultTo: -1},
		{From: 0, To: stAmp, Pattern: "&", DefaultTo: -1},
		{From: 0, To: stPipe, Pattern: "|", DefaultTo: -1},
		{From: 0, To: stLt, Pattern: "<", DefaultTo: -1},
		{From: 0, To: stGt, Pattern: ">", DefaultTo: -1},
		{From: 0, To: stEq, Pattern: "=", DefaultTo: -1},
		{From: 0, To: stTilde, Pattern: "~", DefaultTo: -1},

		{From: 0, To: stWS, Pattern: whitespace, DefaultTo: -1},
		{From: stWS, To: stWS, Pattern: whitespace, DefaultTo: -1},

		{From: 0, To: stIdent, Pattern: letters + "_", DefaultTo: -1},
		{From: stIdent, To: stIdent, Pattern: identContinue, DefaultTo: -1},

		{From: 0, To: stInt, Pattern: digits, DefaultTo: -1},
		{From: stInt, To: stInt, Pattern: digits, DefaultTo: -1},

		// Strings: anything goes until the closing quote.
		{From: 0, To: stStr, Pattern: "\"", DefaultTo: -1},
		{From: stStr, DefaultTo: stStr},
		{From: stStr, To: stStrEnd, Pattern: "\"", DefaultTo: -1},

		// '//' line comments run to (not including) the newline.
		{From: stSlash, To: stLineComment, Pattern: "/", DefaultTo: -1},
		{From: stLineComment, DefaultTo: stLineComment},
		{From: stLineComment, To: -1, Pattern: "\n", DefaultTo: -1},

		// '/* ... */' block comments, closed by the first unmatched '*/'.
		{From: stSlash, To: stBlockBody, Pattern: "*", DefaultTo: -1},
		{From: stBlockBody, DefaultTo: stBlockBody},
		{From: stBlockBody, To: stBlockStar, Pattern: "*", DefaultTo: -1},
		{From: stBlockStar, DefaultTo: stBlockBody},
		{From: stBlockStar, To: stBlockStar, Pattern: "*", DefaultTo: -1},
		{From: stBlockStar, To: stBlockCommEnd, Pattern: "/", DefaultTo: -1},
	}

	finals := []automaton.FinalState{
		{State: stLBrace, Term: TermLBrace},
		{State: stRBrace, Term: TermRBrace},
		{State: stLParen, Term: TermLParen},
		{State: stRParen, Term: TermRParen},
		{State: stLBrack, Term: TermLBracket},
		{State: stRBrack, Term: TermRBracket},
		{State: stComma, Term: TermComma},
		{State: stSemi, Term: TermSemi},
		{State: stDot, Term: TermDot},
		{State: stPlus, Term: TermPlus},
		{State: stMinus, Term: TermMinus},
		{State: stStar, Term: TermStar},
		{State: stSlash, Term: TermSlash},
		{State: stAmp, Term: TermAmp},
		{State: stPipe, Term: TermPipe},
		{State: stLt, Term: TermLt},
		{State: stGt, Term: TermGt},
		{State: stEq, Term: TermEq},
		{State: stTilde, Term: TermTilde},
		{State: stWS, Term: TermWS},
		{State: stIdent, Term: TermIdent},
		{State: stInt, Term: TermIntConst},
		{State: stStrEnd, Term: TermStringConst},
		{State: stLineComment, Term: TermComment},
		{State: stBlockCommEnd, Term: TermComment},
	}

	keywords := map[string]symbol.Kind{
		"class": TermClass, "static": TermStatic, "field": TermField,
		"constructor": TermConstructor, "function": TermFunction, "method": TermMethod,
		"void": TermVoid, "int": TermInt, "char": TermChar, "boolean": TermBoolean,
		"var": TermVar, "let": TermLet, "if": TermIf, "else": TermElse,
		"while": TermWhile, "do": TermDo, "return": TermReturn,
		"true": TermTrue, "false": TermFalse, "null": TermNull, "this": TermThis,
	}

	return automaton.Build(transitions, finals, keywords)
}
