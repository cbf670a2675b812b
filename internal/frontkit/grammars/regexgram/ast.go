package regexgram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/ast"
	"github.com/arlenholt/frontkit/internal/frontkit/regexnfa"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// BuildVisitor returns the AST transform-rule table for this grammar,
// producing trees in regexnfa's vocabulary (KindConcat, KindOr, KindStar,
// ...) so that regexnfa.Compile can consume its output directly.
func BuildVisitor() *ast.Visitor {
	return ast.NewVisitor(map[symbol.Kind]ast.Rule{
		ntRegex:         ruleRegex,
		ntRegexTail:     ruleRegexTail,
		ntTerm:          ruleTerm,
		ntTermTail:      ruleTermTail,
		ntFactor:        ruleFactor,
		ntSuffix:        ruleSuffix,
		ntAtom:          ruleAtom,
		ntClassBody:     ruleClassBody,
		ntClassBodyTail: ruleClassBodyTail,
		ntClassItem:     ruleClassItem,
		ntClassItemTail: ruleClassItemTail,
	})
}

// Regex -> Term RegexTail: Term seeds the alternation fold.
func ruleRegex(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	term := conv(node.ExtractChild(0), nil)
	return conv(node.ExtractChild(1), term)
}

// RegexTail -> PIPE Term RegexTail | eps: right-tail fold into an n-ary
// KindOr node (spec.md §4.5, §8 property 7: "a|b|c" must yield one OR node
// with three children, not nested binary ORs).
func ruleRegexTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	node.ExtractChild(0) // PIPE
	term := conv(node.ExtractChild(1), nil)

	or := inherited
	if !ast.SameLabel(or, regexnfa.KindOr) {
		or = symbol.NewASTNode(regexnfa.KindOr, inherited)
	}
	or.Append(term)
	return conv(node.ExtractChild(2), or)
}

// Term -> Factor TermTail: Factor seeds the concatenation fold.
func ruleTerm(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	factor := conv(node.ExtractChild(0), nil)
	return conv(node.ExtractChild(1), factor)
}

// TermTail -> Factor TermTail | eps: right-tail fold into an n-ary
// KindConcat node.
func ruleTermTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	factor := conv(node.ExtractChild(0), nil)

	concat := inherited
	if !ast.SameLabel(concat, regexnfa.KindConcat) {
		concat = symbol.NewASTNode(regexnfa.KindConcat, inherited)
	}
	concat.Append(factor)
	return conv(node.ExtractChild(1), concat)
}

// Factor -> Atom Suffix: the Suffix rule receives the built Atom as its
// inherited attribute and decides whether to wrap it.
func ruleFactor(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	atom := conv(node.ExtractChild(0), nil)
	return conv(node.ExtractChild(1), atom)
}

// Suffix -> STAR | PLUS | QUESTION | eps: wraps inherited (the Atom's AST)
// in the matching quantifier node, or passes it through unchanged.
func ruleSuffix(_ ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	switch node.ExtractLeaf(0).Kind {
	case TermStar:
		return symbol.NewASTNode(regexnfa.KindStar, inherited)
	case TermPlus:
		return symbol.NewASTNode(regexnfa.KindPlus, inherited)
	case TermQuestion:
		return symbol.NewASTNode(regexnfa.KindQuestion, inherited)
	default:
		panic("regexgram: unreachable suffix terminal")
	}
}

// Atom -> CHAR | DOT | LPAREN Regex RPAREN | LBRACKET ClassBody RBRACKET.
// CHAR leaf-promotes automatically (package ast promotes every terminal
// node before consulting the rule table); DOT needs an explicit KindDot
// node instead of a leaf-promoted "." character, since regexnfa.Compile
// treats a terminal leaf as a literal CHAR fragment.
func ruleAtom(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	switch len(node.Children) {
	case 1:
		if node.Children[0].Symbol == TermDot {
			node.ExtractChild(0)
			return symbol.NewASTNode(regexnfa.KindDot)
		}
		return conv(node.ExtractChild(0), nil)
	case 3:
		node.ExtractChild(0) // LPAREN or LBRACKET
		node.ExtractChild(2) // RPAREN or RBRACKET
		return conv(node.ExtractChild(1), nil)
	default:
		panic("regexgram: unreachable atom shape")
	}
}

// ClassBody -> ClassItem ClassBodyTail: creates the accumulating KindClass
// node and folds every ClassItem into it.
func ruleClassBody(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	class := symbol.NewASTNode(regexnfa.KindClass)
	class = conv(node.ExtractChild(0), class)
	return conv(node.ExtractChild(1), class)
}

// ClassBodyTail -> ClassItem ClassBodyTail | eps.
func ruleClassBodyTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	class := conv(node.ExtractChild(0), inherited)
	return conv(node.ExtractChild(1), class)
}

// ClassItem -> CHAR ClassItemTail: appends the char to the inherited class
// node, then lets ClassItemTail turn it into a range if a DASH follows.
func ruleClassItem(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	class := inherited
	char := conv(node.ExtractChild(0), nil)
	class.Append(char)
	return conv(node.ExtractChild(1), class)
}

// ClassItemTail -> DASH CHAR | eps: the class-body-construction rule shape
// from spec.md §4.5 -- on DASH CHAR, pop the character ClassItem just
// appended and replace it with a MINUS(lo, hi) range node.
func ruleClassItemTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	class := inherited
	if len(node.Children) == 0 {
		return class
	}
	node.ExtractChild(0) // DASH
	hi := conv(node.ExtractChild(1), nil)
	lo := class.PopLast()
	class.Append(symbol.NewASTNode(regexnfa.KindMinus, lo, hi))
	return class
}
