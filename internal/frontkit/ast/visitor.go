// Package ast implements the parse-tree-to-AST visitor of spec.md §4.5: a
// table from nonterminal to a transform rule, dispatched by a recursive
// Converter that threads an inherited attribute down a production's
// right-recursive tail so that right-recursive grammars fold into
// left-associative AST shapes. This is a direct Go rendering of the
// converter/to_ast contract in
// original_source/EfficientCompiler/RegexParser_ast.cpp (the
// `(converter, node, inherited) -> astnode` signature and the
// build_visitor(...).visit(...) entry point), which is closer to spec.md's
// description than the much heavier attribute-grammar machinery in
// dekarrin-tunaq/internal/ictiobus/translation (that package implements a
// general SDD binding system this spec does not call for; see DESIGN.md).
package ast

import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

// Converter recursively converts a parse-tree node into an AST node,
// threading inherited down the right-recursive tail of whatever production
// built node. A nil node (an already-extracted child slot) converts to
// inherited, unchanged.
type Converter func(node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode

// Rule is a single nonterminal's transform: given a way to recursively
// convert further nodes, the parse-tree node for one application of this
// nonterminal's production, and the inherited attribute passed down from
// the caller, produce the AST subtree for this application.
type Rule func(conv Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode

// Visitor is a grammar's complete set of transform rules, one per
// nonterminal.
type Visitor struct {
	rules map[symbol.Kind]Rule
}

// NewVisitor builds a Visitor from a nonterminal-to-rule table. Every
// nonterminal the grammar's parse trees can contain must have an entry;
// Convert panics on a missing rule; since the rule table is a build-time
// artifact of the grammar registry (not runtime input), this mirrors the
// "grammar construction errors are fatal" policy of spec.md §7 rather than
// needing a runtime error path.
func NewVisitor(rules map[symbol.Kind]Rule) *Visitor {
	return &Visitor{rules: rules}
}

// Convert runs the visitor over root. It is single-threaded, depth-first,
// and linear in the size of root (spec.md §4.5).
func (v *Visitor) Convert(root *symbol.ParseTree) *symbol.ASTNode {
	var conv Converter
	conv = func(node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
		if node == nil {
			return inherited
		}
		if node.Terminal {
			return symbol.NewASTLeaf(node.Source)
		}
		rule, ok := v.rules[node.Symbol]
		if !ok {
			panic("ast: no transform rule registered for nonterminal " + node.Symbol.String())
		}
		return rule(conv, node, inherited)
	}
	return conv(root, nil)
}

// PassThrough builds the "pass-through" rule shape from spec.md §4.5:
// delegate entirely to child childIdx, forwarding inherited unchanged.
func PassThrough(childIdx int) Rule {
	return func(conv Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
		return conv(node.ExtractChild(childIdx), inherited)
	}
}

// SameLabel reports whether node is a non-terminal AST node labeled sym --
// the test the "right-tail fold" rule shape uses to decide whether to
// flatten into an existing n-ary node instead of nesting (spec.md §4.5).
func SameLabel(node *symbol.ASTNode, sym symbol.Kind) bool {
	return node != nil && !node.Terminal && node.Symbol == sym
}
