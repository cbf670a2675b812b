package regexnfa

import (
	"fmt"

	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// Fragment is an NFA sub-graph with exactly one entry and one exit state,
// per spec.md §4.6's per-operator transforms.
type Fragment struct {
	Entry StateID
	Exit  StateID
}

// RangeError reports a character-class range whose bounds are reversed
// (spec.md §7: "invalid range a-b" when a > b). The offending range is
// skipped; construction continues with whatever else the class contains.
type RangeError struct {
	Lo, Hi byte
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Invalid range: %c-%c", e.Lo, e.Hi)
}

// Compile runs Thompson construction over root (a regex AST produced by
// package ast / the regex grammar registry) into a fresh arena. It returns
// the arena, the whole-regex fragment, and any range errors encountered
// along the way -- construction does not abort on a bad range, matching
// spec.md §7's "accumulated into an error buffer" policy for semantic
// errors.
func Compile(root *symbol.ASTNode) (*Arena, Fragment, []error) {
	a := NewArena()
	b := &builder{arena: a}
	frag := b.build(root)
	return a, frag, b.errs
}

type builder struct {
	arena *Arena
	errs  []error
}

func (b *builder) build(node *symbol.ASTNode) Fragment {
	if node.Terminal {
		return b.char(node)
	}

	switch node.Symbol {
	case KindChar:
		return b.char(node)
	case KindDot:
		return b.dot()
	case KindEmpty:
		return b.empty()
	case KindConcat:
		return b.concat(node)
	case KindOr:
		return b.or(node)
	case KindStar:
		return b.star(node)
	case KindPlus:
		return b.plus(node)
	case KindQuestion:
		return b.question(node)
	case KindClass:
		return b.class(node)
	default:
		panic(fmt.Sprintf("regexnfa: unhandled AST node kind %s", node.Symbol))
	}
}

func (b *builder) char(node *symbol.ASTNode) Fragment {
	entry := b.arena.New()
	exit := b.arena.New()
	b.arena.AddEdge(entry, single(node.Source.Lexeme[0]), exit)
	return Fragment{Entry: entry, Exit: exit}
}

func (b *builder) dot() Fragment {
	entry := b.arena.New()
	exit := b.arena.New()
	b.arena.AddAnyEdge(entry, exit)
	return Fragment{Entry: entry, Exit: exit}
}

func (b *builder) empty() Fragment {
	entry := b.arena.New()
	exit := b.arena.New()
	b.arena.AddEpsilon(entry, exit)
	return Fragment{Entry: entry, Exit: exit}
}

func (b *builder) concat(node *symbol.ASTNode) Fragment {
	if len(node.Children) == 0 {
		return b.empty()
	}
	first := b.build(node.Children[0])
	entry, prevExit := first.Entry, first.Exit
	for _, child := range node.Children[1:] {
		frag := b.build(child)
		b.arena.AddEpsilon(prevExit, frag.Entry)
		prevExit = frag.Exit
	}
	return Fragment{Entry: entry, Exit: prevExit}
}

func (b *builder) or(node *symbol.ASTNode) Fragment {
	entry := b.arena.New()
	exit := b.arena.New()
	for _, child := range node.Children {
		frag := b.build(child)
		b.arena.AddEpsilon(entry, frag.Entry)
		b.arena.AddEpsilon(frag.Exit, exit)
	}
	return Fragment{Entry: entry, Exit: exit}
}

func (b *builder) star(node *symbol.ASTNode) Fragment {
	inner := b.build(singleChild(node))
	entry := b.arena.New()
	exit := b.arena.New()
	b.arena.AddEpsilon(entry, inner.Entry)
	b.arena.AddEpsilon(inner.Exit, exit)
	b.arena.AddEpsilon(entry, exit)
	b.arena.AddEpsilon(inner.Exit, inner.Entry)
	return Fragment{Entry: entry, Exit: exit}
}

func (b *builder) plus(node *symbol.ASTNode) Fragment {
	inner := b.build(singleChild(node))
	entry := b.arena.New()
	exit := b.arena.New()
	b.arena.AddEpsilon(entry, inner.Entry)
	b.arena.AddEpsilon(inner.Exit, exit)
	b.arena.AddEpsilon(inner.Exit, inner.Entry)
	return Fragment{Entry: entry, Exit: exit}
}

func (b *builder) question(node *symbol.ASTNode) Fragment {
	inner := b.build(singleChild(node))
	entry := b.arena.New()
	exit := b.arena.New()
	b.arena.AddEpsilon(entry, inner.Entry)
	b.arena.AddEpsilon(inner.Exit, exit)
	b.arena.AddEpsilon(entry, exit)
	return Fragment{Entry: entry, Exit: exit}
}

// class builds the single labeled edge for a `_class` node: the union of
// every CHAR child and every MINUS(a, b) range child (spec.md §4.6). A
// reversed range (a > b) is reported via b.errs and skipped; the rest of the
// class is still built.
func (b *builder) class(node *symbol.ASTNode) Fragment {
	var set CharClass
	for _, child := range node.Children {
		switch {
		case child.Terminal:
			set.Add(child.Source.Lexeme[0])
		case child.Symbol == KindMinus:
			lo := child.Children[0].Source.Lexeme[0]
			hi := child.Children[1].Source.Lexeme[0]
			if lo > hi {
				b.errs = append(b.errs, &RangeError{Lo: lo, Hi: hi})
				continue
			}
			set.AddRange(lo, hi)
		default:
			panic(fmt.Sprintf("regexnfa: unexpected _class child kind %s", child.Symbol))
		}
	}

	entry := b.arena.New()
	exit := b.arena.New()
	b.arena.AddEdge(entry, set, exit)
	return Fragment{Entry: entry, Exit: exit}
}

// singleChild returns a unary operator node's one operand, the shape STAR,
// PLUS and QUESTION all share.
func singleChild(node *symbol.ASTNode) *symbol.ASTNode {
	return node.Children[0]
}
