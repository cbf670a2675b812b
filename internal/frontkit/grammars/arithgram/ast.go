package arithgram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/ast"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// BuildVisitor returns the AST transform-rule table for this grammar. Each
// node in the output AST is labeled with either TermNum (a leaf) or one of
// the four operator kinds (an n-ary operator node); same-operator runs fold
// into a single node (spec.md §8 property 7 generalised from OR/CONCAT to
// PLUS/MINUS/STAR/SLASH).
func BuildVisitor() *ast.Visitor {
	return ast.NewVisitor(map[symbol.Kind]ast.Rule{
		ntExpr:     ruleBinary,
		ntExprTail: ruleBinaryTail,
		ntTerm:     ruleBinary,
		ntTermTail: ruleBinaryTail,
		ntFactor:   ruleFactor,
	})
}

// Expr -> Term ExprTail and Term -> Factor TermTail share the same shape:
// build the left operand, then fold the tail onto it.
func ruleBinary(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	left := conv(node.ExtractChild(0), nil)
	return conv(node.ExtractChild(1), left)
}

// ExprTail -> PLUS Term ExprTail | MINUS Term ExprTail | eps, and the
// TermTail equivalent for STAR/SLASH: right-tail fold labeled by whichever
// operator token was consumed at this step.
func ruleBinaryTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	op := node.ExtractLeaf(0).Kind
	rhs := conv(node.ExtractChild(1), nil)

	out := inherited
	if !ast.SameLabel(out, op) {
		out = symbol.NewASTNode(op, inherited)
	}
	out.Append(rhs)
	return conv(node.ExtractChild(2), out)
}

// Factor -> NUM | LPAREN Expr RPAREN.
func ruleFactor(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 1 {
		return conv(node.ExtractChild(0), nil)
	}
	node.ExtractChild(0) // LPAREN
	node.ExtractChild(2) // RPAREN
	return conv(node.ExtractChild(1), nil)
}
