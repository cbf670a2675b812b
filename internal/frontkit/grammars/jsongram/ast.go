package jsongram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/ast"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// BuildVisitor returns the AST transform-rule table for this grammar. An
// object becomes an ntObject node whose children are ntMember nodes
// (key leaf, value subtree); an array becomes an ntArray node whose
// children are value subtrees directly.
func BuildVisitor() *ast.Visitor {
	return ast.NewVisitor(map[symbol.Kind]ast.Rule{
		ntValue:          rulePassSingleChild,
		ntObject:         ruleObject,
		ntObjectBody:     ruleObjectBody,
		ntObjectBodyTail: ruleObjectBodyTail,
		ntMember:         ruleMember,
		ntArray:          ruleArray,
		ntArrayBody:      ruleArrayBody,
		ntArrayBodyTail:  ruleArrayBodyTail,
	})
}

func rulePassSingleChild(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	return conv(node.ExtractChild(0), nil)
}

func ruleObject(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // LBRACE
	node.ExtractChild(2) // RBRACE
	return conv(node.ExtractChild(1), nil)
}

func ruleObjectBody(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return symbol.NewASTNode(ntObject)
	}
	member := conv(node.ExtractChild(0), nil)
	obj := symbol.NewASTNode(ntObject, member)
	return conv(node.ExtractChild(1), obj)
}

func ruleObjectBodyTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	node.ExtractChild(0) // COMMA
	member := conv(node.ExtractChild(1), nil)
	inherited.Append(member)
	return conv(node.ExtractChild(2), inherited)
}

func ruleMember(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	key := conv(node.ExtractChild(0), nil)
	node.ExtractChild(1) // COLON
	val := conv(node.ExtractChild(2), nil)
	return symbol.NewASTNode(ntMember, key, val)
}

func ruleArray(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // LBRACKET
	node.ExtractChild(2) // RBRACKET
	return conv(node.ExtractChild(1), nil)
}

func ruleArrayBody(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return symbol.NewASTNode(ntArray)
	}
	v := conv(node.ExtractChild(0), nil)
	arr := symbol.NewASTNode(ntArray, v)
	return conv(node.ExtractChild(1), arr)
}

func ruleArrayBodyTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	node.ExtractChild(0) // COMMA
	v := conv(node.ExtractChild(1), nil)
	inherited.Append(v)
	return conv(node.ExtractChild(2), inherited)
}
