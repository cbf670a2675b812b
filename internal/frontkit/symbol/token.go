package symbol

import "fmt"

// Namer supplies human-readable names for the Kind values of a single
// grammar, so that diagnostics and pretty-printers never have to hardcode
// a particular registry's vocabulary. Each grammars/* package provides one.
type Namer interface {
	// Name returns the human-readable name of k, e.g. "NUM" or "left brace".
	Name(k Kind) string

	// Discardable reports whether tokens of this Kind should be dropped
	// before they ever reach the parser (whitespace, comments, ...). See
	// spec.md §4.2 / §9's "discardable-token policy" open question.
	Discardable(k Kind) bool
}

// Token is a lexeme read from source text together with the Kind it was
// classified as and the information needed to report an error against it.
// A Token's Lexeme is a slice of the source buffer it was lexed from and
// remains valid for as long as that buffer does; the lexer never copies
// source bytes.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// String renders the token for logs and error messages. It does not
// attempt to translate Kind into a grammar-specific name; use
// Namer.Name(tok.Kind) for that, or StringWithNamer.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Lexeme, t.Line)
}

// StringWithNamer is String, but names Kind via namer.Name instead of
// Kind's generic String().
func (t Token) StringWithNamer(namer Namer) string {
	return fmt.Sprintf("%s(%q)@%d", namer.Name(t.Kind), t.Lexeme, t.Line)
}
