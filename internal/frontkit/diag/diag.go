// Package diag implements a log/error buffer. The toolkit's library
// packages do not write into it (they return Go error values, and the lexer
// emits in-band error tokens); cmd/frontkit records a failed parse into a
// diag.Buffer and prints its Report. The buffer mirrors the
// {root, logs, errors} result shape used throughout
// dekarrin-tunaq/internal/ictiobus (e.g. ictiobus.go's ParserCreationResult,
// parse.ll1Parser.Parse's (types.ParseTree, error) return convention).
package diag

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/google/uuid"
)

// Buffer accumulates advisory log lines and fatal errors for a single
// build/lex/parse/convert pass. The logs are advisory only (spec.md §9's
// open question on log stability); Err is the signal callers should act on.
type Buffer struct {
	// ID correlates the log lines of one pass (one lex, one parse, one AST
	// conversion) across concurrently-interleaved CLI/REPL output.
	ID uuid.UUID

	logs []string
	errs []string
}

// New returns an empty Buffer with a fresh correlation ID.
func New() *Buffer {
	return &Buffer{ID: uuid.New()}
}

// Logf appends a formatted advisory log line.
func (b *Buffer) Logf(format string, args ...any) {
	b.logs = append(b.logs, fmt.Sprintf(format, args...))
}

// Errorf appends a formatted fatal error message. Recording an error does
// not stop the caller's own control flow; callers are expected to check
// Failed() and bail out themselves, matching the "errors is empty iff the
// parse succeeded" contract of spec.md §6.
func (b *Buffer) Errorf(format string, args ...any) {
	b.errs = append(b.errs, fmt.Sprintf(format, args...))
}

// Failed reports whether any error has been recorded.
func (b *Buffer) Failed() bool {
	return len(b.errs) > 0
}

// Logs returns the advisory log as a single newline-joined string.
func (b *Buffer) Logs() string {
	return strings.Join(b.logs, "\n")
}

// Errors returns the accumulated error messages as a single newline-joined
// string, empty iff Failed() is false.
func (b *Buffer) Errors() string {
	return strings.Join(b.errs, "\n")
}

// Err adapts the buffer into a single error value, or nil if Failed() is
// false, for use at API boundaries that prefer idiomatic Go error returns
// over inspecting a string.
func (b *Buffer) Err() error {
	if !b.Failed() {
		return nil
	}
	return fmt.Errorf("%s", b.Errors())
}

// Report renders logs and errors as a width-wrapped report suitable for
// terminal output, grounded on the rosed.Edit(text).Wrap(width).String()
// usage seen throughout dekarrin-tunaq (engine.go, tunascript/syntax/ast.go)
// and the rosed.Edit("").InsertTableOpts(...) usage in
// dekarrin-tunaq/internal/ictiobus/parse/{slr,lalr,clr1}.go.
func (b *Buffer) Report(width int) string {
	text := fmt.Sprintf("run %s", b.ID)
	if len(b.logs) > 0 {
		text += "\nlogs:\n" + b.Logs()
	}
	if len(b.errs) > 0 {
		text += "\nerrors:\n" + b.Errors()
	}
	return rosed.Edit(text).Wrap(width).String()
}

// SyntaxError describes a lexical or syntactic failure pinned to a source
// line, mirroring the call-site shape of icterrors.NewSyntaxErrorFromToken
// seen throughout dekarrin-tunaq/internal/ictiobus's parse and lex
// packages (no standalone icterrors package survived retrieval, so its
// call-site contract — a message plus the offending token's line/lexeme —
// is rebuilt here).
type SyntaxError struct {
	Message string
	Line    int
	Lexeme  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s (near %q)", e.Line, e.Message, e.Lexeme)
}

// FullMessage is a longer, human-facing rendering, kept distinct from
// Error() so CLI output can be more verbose than log lines.
func (e *SyntaxError) FullMessage() string {
	return fmt.Sprintf("syntax error on line %d: %s\n  near: %q", e.Line, e.Message, e.Lexeme)
}
