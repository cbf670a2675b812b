package jackgram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/ast"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// BuildVisitor returns the AST transform-rule table for this grammar.
//
// The *-repetition lists that have no separator (ClassVarDecList,
// SubroutineDecList, VarDecList, StatementList) fold with the generic
// ruleList helper. The comma-separated lists (ParamList, ExpressionList,
// and the extra names in a VarNameTail) need the classic first/tail split
// because the separator changes the FIRST set of every element after the
// first one.
func BuildVisitor() *ast.Visitor {
	return ast.NewVisitor(map[symbol.Kind]ast.Rule{
		ntClass:             ruleClass,
		ntClassVarDecList:   ruleList(ntClassVarDecList),
		ntClassVarDec:       ruleClassVarDec,
		ntVarNameTail:       ruleVarNameTail,
		ntSubroutineDecList: ruleList(ntSubroutineDecList),
		ntSubroutineDec:     ruleSubroutineDec,
		ntParamList:         ruleParamList,
		ntParamListTail:     ruleParamListTail,
		ntParam:             ruleParam,
		ntType:              ast.PassThrough(0),
		ntReturnType:        ast.PassThrough(0),
		ntSubroutineBody:    ruleSubroutineBody,
		ntVarDecList:        ruleList(ntVarDecList),
		ntVarDec:            ruleVarDec,
		ntStatementList:     ruleList(ntStatementList),
		ntStatement:         ast.PassThrough(0),
		ntLetStatement:      ruleLetStatement,
		ntLetIndex:          ruleLetIndex,
		ntIfStatement:       ruleIfStatement,
		ntElseClause:        ruleElseClause,
		ntWhileStatement:    ruleWhileStatement,
		ntDoStatement:       ruleDoStatement,
		ntDoCallTail:        ruleDoCallTail,
		ntReturnStatement:   ruleReturnStatement,
		ntReturnValue:       ruleReturnValue,
		ntExpression:        ruleExpression,
		ntExpressionTail:    ruleExpressionTail,
		ntTerm:              ruleTerm,
		ntTermIdentTail:     ruleTermIdentTail,
		ntExpressionList:    ruleExpressionList,
		ntExpressionListTail: ruleExpressionListTail,
	})
}

// ruleList folds a separator-free *-repetition (X -> Item X | eps) into a
// single node labeled by label whose children are the items in order.
func ruleList(label symbol.Kind) ast.Rule {
	return func(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
		list := inherited
		if list == nil {
			list = symbol.NewASTNode(label)
		}
		if len(node.Children) == 0 {
			return list
		}
		item := conv(node.ExtractChild(0), nil)
		list.Append(item)
		return conv(node.ExtractChild(1), list)
	}
}

func ruleClass(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // CLASS
	name := conv(node.ExtractChild(1), nil)
	node.ExtractChild(2) // LBRACE
	vars := conv(node.ExtractChild(3), nil)
	subs := conv(node.ExtractChild(4), nil)
	node.ExtractChild(5) // RBRACE
	return symbol.NewASTNode(ntClass, name, vars, subs)
}

func ruleClassVarDec(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	kindTok := conv(node.ExtractChild(0), nil) // STATIC or FIELD
	typeNode := conv(node.ExtractChild(1), nil)
	firstName := conv(node.ExtractChild(2), nil)
	names := symbol.NewASTNode(ntVarNameTail, firstName)
	names = conv(node.ExtractChild(3), names)
	node.ExtractChild(4) // SEMI
	return symbol.NewASTNode(ntClassVarDec, kindTok, typeNode, names)
}

func ruleVarNameTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	node.ExtractChild(0) // COMMA
	name := conv(node.ExtractChild(1), nil)
	inherited.Append(name)
	return conv(node.ExtractChild(2), inherited)
}

func ruleSubroutineDec(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	kindTok := conv(node.ExtractChild(0), nil) // CONSTRUCTOR, FUNCTION, or METHOD
	retType := conv(node.ExtractChild(1), nil)
	name := conv(node.ExtractChild(2), nil)
	node.ExtractChild(3) // LPAREN
	params := conv(node.ExtractChild(4), nil)
	node.ExtractChild(5) // RPAREN
	body := conv(node.ExtractChild(6), nil)
	return symbol.NewASTNode(ntSubroutineDec, kindTok, retType, name, params, body)
}

func ruleParamList(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return symbol.NewASTNode(ntParamList)
	}
	p := conv(node.ExtractChild(0), nil)
	list := symbol.NewASTNode(ntParamList, p)
	return conv(node.ExtractChild(1), list)
}

func ruleParamListTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	node.ExtractChild(0) // COMMA
	p := conv(node.ExtractChild(1), nil)
	inherited.Append(p)
	return conv(node.ExtractChild(2), inherited)
}

func ruleParam(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	typeNode := conv(node.ExtractChild(0), nil)
	name := conv(node.ExtractChild(1), nil)
	return symbol.NewASTNode(ntParam, typeNode, name)
}

func ruleSubroutineBody(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // LBRACE
	vars := conv(node.ExtractChild(1), nil)
	stmts := conv(node.ExtractChild(2), nil)
	node.ExtractChild(3) // RBRACE
	return symbol.NewASTNode(ntSubroutineBody, vars, stmts)
}

func ruleVarDec(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // VAR
	typeNode := conv(node.ExtractChild(1), nil)
	firstName := conv(node.ExtractChild(2), nil)
	names := symbol.NewASTNode(ntVarNameTail, firstName)
	names = conv(node.ExtractChild(3), names)
	node.ExtractChild(4) // SEMI
	return symbol.NewASTNode(ntVarDec, typeNode, names)
}

func ruleLetStatement(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // LET
	name := conv(node.ExtractChild(1), nil)
	idx := conv(node.ExtractChild(2), nil) // nil if no index
	node.ExtractChild(3)                   // EQ
	val := conv(node.ExtractChild(4), nil)
	node.ExtractChild(5) // SEMI
	children := []*symbol.ASTNode{name}
	if idx != nil {
		children = append(children, idx)
	}
	children = append(children, val)
	return symbol.NewASTNode(ntLetStatement, children...)
}

func ruleLetIndex(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return nil
	}
	node.ExtractChild(0) // LBRACKET
	expr := conv(node.ExtractChild(1), nil)
	node.ExtractChild(2) // RBRACKET
	return expr
}

func ruleIfStatement(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // IF
	node.ExtractChild(1) // LPAREN
	cond := conv(node.ExtractChild(2), nil)
	node.ExtractChild(3) // RPAREN
	node.ExtractChild(4) // LBRACE
	thenStmts := conv(node.ExtractChild(5), nil)
	node.ExtractChild(6) // RBRACE
	elseStmts := conv(node.ExtractChild(7), nil)

	children := []*symbol.ASTNode{cond, thenStmts}
	if elseStmts != nil {
		children = append(children, elseStmts)
	}
	return symbol.NewASTNode(ntIfStatement, children...)
}

func ruleElseClause(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return nil
	}
	node.ExtractChild(0) // ELSE
	node.ExtractChild(1) // LBRACE
	stmts := conv(node.ExtractChild(2), nil)
	node.ExtractChild(3) // RBRACE
	return stmts
}

func ruleWhileStatement(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // WHILE
	node.ExtractChild(1) // LPAREN
	cond := conv(node.ExtractChild(2), nil)
	node.ExtractChild(3) // RPAREN
	node.ExtractChild(4) // LBRACE
	stmts := conv(node.ExtractChild(5), nil)
	node.ExtractChild(6) // RBRACE
	return symbol.NewASTNode(ntWhileStatement, cond, stmts)
}

func ruleDoStatement(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // DO
	name := conv(node.ExtractChild(1), nil)
	callTail := conv(node.ExtractChild(2), nil)
	node.ExtractChild(3) // SEMI
	return symbol.NewASTNode(ntDoStatement, name, callTail)
}

// ruleDoCallTail tells its two productions apart by child count: a bare
// call (LPAREN ExpressionList RPAREN) has 3 children, a qualified one
// (DOT IDENT LPAREN ExpressionList RPAREN) has 5.
func ruleDoCallTail(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 3 {
		node.ExtractChild(0) // LPAREN
		args := conv(node.ExtractChild(1), nil)
		node.ExtractChild(2) // RPAREN
		return symbol.NewASTNode(ntDoCallTail, args)
	}
	node.ExtractChild(0) // DOT
	qualifier := conv(node.ExtractChild(1), nil)
	node.ExtractChild(2) // LPAREN
	args := conv(node.ExtractChild(3), nil)
	node.ExtractChild(4) // RPAREN
	return symbol.NewASTNode(ntDoCallTail, qualifier, args)
}

func ruleReturnStatement(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	node.ExtractChild(0) // RETURN
	val := conv(node.ExtractChild(1), nil) // nil if no expression
	node.ExtractChild(2)                   // SEMI
	if val == nil {
		return symbol.NewASTNode(ntReturnStatement)
	}
	return symbol.NewASTNode(ntReturnStatement, val)
}

func ruleReturnValue(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return nil
	}
	return conv(node.ExtractChild(0), nil)
}

func ruleExpression(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	left := conv(node.ExtractChild(0), nil)
	return conv(node.ExtractChild(1), left)
}

// ruleExpressionTail right-tail-folds same as arithgram's binary operator
// chains: each step labels a 2-operand node by whichever operator token
// was consumed, folding into the growing inherited node when it already
// carries the same label so "a + b + c" becomes one flat PLUS node rather
// than a nested chain.
func ruleExpressionTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	opTok := node.ExtractChild(0)
	right := conv(node.ExtractChild(1), nil)

	var opNode *symbol.ASTNode
	if ast.SameLabel(inherited, opTok.Symbol) {
		opNode = inherited.Append(right)
	} else {
		opNode = symbol.NewASTNode(opTok.Symbol, inherited, right)
	}
	return conv(node.ExtractChild(2), opNode)
}

func ruleTerm(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	switch len(node.Children) {
	case 1:
		// INT_CONST | STRING_CONST | TRUE | FALSE | NULL | THIS
		return conv(node.ExtractChild(0), nil)
	case 2:
		first := node.Children[0]
		if first.Terminal && first.Symbol == TermIdent {
			name := conv(node.ExtractChild(0), nil)
			tail := conv(node.ExtractChild(1), nil)
			if tail == nil {
				return name
			}
			return symbol.NewASTNode(ntTermIdentTail, append([]*symbol.ASTNode{name}, tail.Children...)...)
		}
		// unary MINUS or TILDE
		opTok := node.ExtractChild(0)
		operand := conv(node.ExtractChild(1), nil)
		return symbol.NewASTNode(opTok.Symbol, operand)
	default:
		// LPAREN Expression RPAREN
		node.ExtractChild(0)
		expr := conv(node.ExtractChild(1), nil)
		node.ExtractChild(2)
		return expr
	}
}

// ruleTermIdentTail distinguishes its four productions by child count:
// eps has 0, LBRACKET Expression RBRACKET and LPAREN ExpressionList RPAREN
// both have 3 (disambiguated by the first child's terminal Kind), and the
// qualified call DOT IDENT LPAREN ExpressionList RPAREN has 5.
func ruleTermIdentTail(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	switch len(node.Children) {
	case 0:
		return nil
	case 3:
		if node.Children[0].Symbol == TermLBracket {
			node.ExtractChild(0)
			idx := conv(node.ExtractChild(1), nil)
			node.ExtractChild(2)
			return symbol.NewASTNode(ntTermIdentTail, idx)
		}
		node.ExtractChild(0) // LPAREN
		args := conv(node.ExtractChild(1), nil)
		node.ExtractChild(2) // RPAREN
		return symbol.NewASTNode(ntTermIdentTail, args)
	default:
		node.ExtractChild(0) // DOT
		qualifier := conv(node.ExtractChild(1), nil)
		node.ExtractChild(2) // LPAREN
		args := conv(node.ExtractChild(3), nil)
		node.ExtractChild(4) // RPAREN
		return symbol.NewASTNode(ntTermIdentTail, qualifier, args)
	}
}

func ruleExpressionList(conv ast.Converter, node *symbol.ParseTree, _ *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return symbol.NewASTNode(ntExpressionList)
	}
	e := conv(node.ExtractChild(0), nil)
	list := symbol.NewASTNode(ntExpressionList, e)
	return conv(node.ExtractChild(1), list)
}

func ruleExpressionListTail(conv ast.Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
	if len(node.Children) == 0 {
		return inherited
	}
	node.ExtractChild(0) // COMMA
	e := conv(node.ExtractChild(1), nil)
	inherited.Append(e)
	return conv(node.ExtractChild(2), inherited)
}
