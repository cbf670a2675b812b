// Package lex implements the lazy, forward-only token stream described in
// spec.md §4.2, driving an *automaton.DFA over a source buffer and
// applying keyword reclassification and length-limit enforcement to each
// emitted token. The iteration shape (Next/Peek/HasNext over a
// TokenStream) is grounded on the Lexer/TokenStream contract in
// dekarrin-tunaq/internal/ictiobus/lex/lex.go and types/stream.go, adapted
// from a regexp-driven lexer to the table-driven DFA one spec.md requires.
package lex

import (
	"strings"

	"github.com/arlenholt/frontkit/internal/frontkit/automaton"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// TokenStream is a lazy, forward-only sequence of Tokens terminated by
// exactly one EOF token, after which HasNext reports false and Next keeps
// returning that same EOF. It is not restartable; build a fresh one per
// pass via New.
type TokenStream interface {
	// Next returns the current token and advances the stream.
	Next() symbol.Token

	// Peek returns the current token without advancing the stream.
	Peek() symbol.Token

	// HasNext reports whether a call to Next would return a token other
	// than the terminating EOF.
	HasNext() bool
}

// Config describes the per-grammar lexer behavior layered on top of a raw
// DFA run: which terminal Kinds are identifier-class (eligible for keyword
// reclassification and length-limit enforcement), and the identifier
// length limit itself (spec.md §4.1: "If a length limit is configured and
// the lexeme exceeds it, reclassify to ERR_LENGTH").
type Config struct {
	// IdentClasses is the set of terminal Kinds that may be reclassified
	// into a keyword Kind via the DFA's keyword map, and that are subject
	// to MaxLength.
	IdentClasses map[symbol.Kind]bool

	// MaxLength is the maximum lexeme length for an identifier-class
	// token; 0 means unlimited.
	MaxLength int
}

func (c Config) isIdentClass(k symbol.Kind) bool {
	return c.IdentClasses != nil && c.IdentClasses[k]
}

type stream struct {
	dfa    *automaton.DFA
	cfg    Config
	src    string
	pos    int
	line   int
	peeked *symbol.Token
	done   bool
}

// New builds a TokenStream over src using dfa, with the reclassification
// and length-limit behavior described by cfg.
func New(dfa *automaton.DFA, cfg Config, src string) TokenStream {
	return &stream{dfa: dfa, cfg: cfg, src: src, line: 1}
}

func (s *stream) HasNext() bool {
	if s.peeked == nil {
		s.fill()
	}
	return !s.done || s.peeked.Kind != symbol.EOF
}

func (s *stream) Peek() symbol.Token {
	if s.peeked == nil {
		s.fill()
	}
	return *s.peeked
}

func (s *stream) Next() symbol.Token {
	if s.peeked == nil {
		s.fill()
	}
	tok := *s.peeked
	if tok.Kind != symbol.EOF {
		s.peeked = nil
	}
	return tok
}

func (s *stream) fill() {
	if s.done {
		tok := symbol.Token{Kind: symbol.EOF, Line: s.line}
		s.peeked = &tok
		return
	}

	kind, end := s.dfa.Run(s.src, s.pos)

	if kind == symbol.EOF {
		s.done = true
		tok := symbol.Token{Kind: symbol.EOF, Line: s.line}
		s.peeked = &tok
		return
	}

	lexeme := s.src[s.pos:end]
	startLine := s.line

	if !kind.IsError() && s.cfg.isIdentClass(kind) {
		if s.cfg.MaxLength > 0 && len(lexeme) > s.cfg.MaxLength {
			kind = symbol.ErrLength
		} else if kw, ok := s.dfa.Keyword(lexeme); ok {
			kind = kw
		}
	}

	tok := symbol.Token{Kind: kind, Lexeme: lexeme, Line: startLine}
	s.peeked = &tok

	s.pos = end
	s.line += strings.Count(lexeme, "\n")
}
