// Package symbol defines the vocabulary shared by every stage of the
// toolkit: the terminal/nonterminal symbol space, the lexed Token record,
// and the two tree shapes (parse tree, AST) that flow between the lexer,
// the parser, and the AST visitor.
package symbol

// Kind identifies a terminal or nonterminal symbol within a single
// grammar's enumeration. Each grammar registry (regexgram, arithgram,
// jsongram, jackgram) defines its own closed set of Kind values starting
// from FirstUserKind; the seven kinds below it are reserved across every
// grammar so that the lexer, parser, and diagnostics code can be written
// once and reused by all of them.
type Kind int

const (
	// KindNone marks a DFA state as non-final, or an AST node as not yet
	// assigned a symbol. It is never the Kind of an emitted Token.
	KindNone Kind = iota

	// Eps is the empty-production marker. It may only appear as the sole
	// symbol of a production's right-hand side.
	Eps

	// EOF is emitted exactly once, as the last token of every lex pass.
	EOF

	// Uninitialised marks a lexer_error of the same name: a Token value
	// that was never assigned a Kind by the DFA run. Seeing one escape
	// automaton.Run indicates a bug in the DFA, not a bad source file.
	Uninitialised

	// ErrSymbol is emitted when the DFA has no transition at all out of
	// the start state for the current input byte.
	ErrSymbol

	// ErrPattern is emitted when the DFA consumed one or more bytes but
	// never passed through a final state.
	ErrPattern

	// ErrLength is emitted when a lexeme that would otherwise classify as
	// an identifier-class terminal exceeds the lexer's configured length
	// limit.
	ErrLength

	// FirstUserKind is the first Kind value a grammar registry should use
	// for its own terminals and nonterminals.
	FirstUserKind
)

// IsError reports whether k is one of the four lexer_error kinds.
func (k Kind) IsError() bool {
	switch k {
	case Uninitialised, ErrSymbol, ErrPattern, ErrLength:
		return true
	default:
		return false
	}
}

// String gives a default rendering for the kinds reserved by this package.
// Grammar registries are expected to supply their own human-readable names
// for user kinds via a Namer (see Token.StringWithNamer).
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "<none>"
	case Eps:
		return "eps"
	case EOF:
		return "$"
	case Uninitialised:
		return "UNINITIALISED"
	case ErrSymbol:
		return "ERR_SYMBOL"
	case ErrPattern:
		return "ERR_PATTERN"
	case ErrLength:
		return "ERR_LENGTH"
	default:
		return "<user-kind>"
	}
}
