package jackgram

import (
	"github.com/arlenholt/frontkit/internal/frontkit/grammar"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// BuildGrammar returns the LL(1) grammar for a Jack-like class body:
//
//	Class             -> CLASS IDENT LBRACE ClassVarDecList SubroutineDecList RBRACE
//	ClassVarDecList    -> ClassVarDec ClassVarDecList | eps
//	ClassVarDec       -> (STATIC | FIELD) Type IDENT VarNameTail SEMI
//	VarNameTail       -> COMMA IDENT VarNameTail | eps
//	SubroutineDecList -> SubroutineDec SubroutineDecList | eps
//	SubroutineDec     -> (CONSTRUCTOR | FUNCTION | METHOD) ReturnType IDENT
//	                     LPAREN ParamList RPAREN SubroutineBody
//	ParamList         -> Param ParamListTail | eps
//	ParamListTail     -> COMMA Param ParamListTail | eps
//	Param             -> Type IDENT
//	Type              -> INT | CHAR | BOOLEAN | IDENT
//	ReturnType        -> VOID | Type
//	SubroutineBody    -> LBRACE VarDecList StatementList RBRACE
//	VarDecList        -> VarDec VarDecList | eps
//	VarDec            -> VAR Type IDENT VarNameTail SEMI
//	StatementList     -> Statement StatementList | eps
//	Statement         -> LetStatement | IfStatement | WhileStatement
//	                     | DoStatement | ReturnStatement
//	LetStatement      -> LET IDENT LetIndex EQ Expression SEMI
//	LetIndex          -> LBRACKET Expression RBRACKET | eps
//	IfStatement       -> IF LPAREN Expression RPAREN LBRACE StatementList RBRACE ElseClause
//	ElseClause        -> ELSE LBRACE StatementList RBRACE | eps
//	WhileStatement    -> WHILE LPAREN Expression RPAREN LBRACE StatementList RBRACE
//	DoStatement       -> DO IDENT DoCallTail SEMI
//	DoCallTail        -> LPAREN ExpressionList RPAREN | DOT IDENT LPAREN ExpressionList RPAREN
//	ReturnStatement   -> RETURN ReturnValue SEMI
//	ReturnValue       -> Expression | eps
//	Expression        -> Term ExpressionTail
//	ExpressionTail    -> (PLUS|MINUS|STAR|SLASH|AMP|PIPE|LT|GT|EQ) Term ExpressionTail | eps
//	Term              -> INT_CONST | STRING_CONST | TRUE | FALSE | NULL | THIS
//	                     | IDENT TermIdentTail | LPAREN Expression RPAREN
//	                     | (MINUS|TILDE) Term
//	TermIdentTail     -> LBRACKET Expression RBRACKET
//	                     | LPAREN ExpressionList RPAREN
//	                     | DOT IDENT LPAREN ExpressionList RPAREN
//	                     | eps
//	ExpressionList    -> Expression ExpressionListTail | eps
//	ExpressionListTail -> COMMA Expression ExpressionListTail | eps
//
// Jack has no operator precedence: every binary operator binds at the same
// level and expressions evaluate left to right, matching the real
// language's definition rather than inventing a precedence climb.
func BuildGrammar() (*grammar.Grammar, error) {
	binOps := []symbol.Kind{TermPlus, TermMinus, TermStar, TermSlash, TermAmp, TermPipe, TermLt, TermGt, TermEq}

	productions := []grammar.Production{
		{LHS: ntClass, RHS: []symbol.Kind{TermClass, TermIdent, TermLBrace, ntClassVarDecList, ntSubroutineDecList, TermRBrace}},

		{LHS: ntClassVarDecList, RHS: []symbol.Kind{ntClassVarDec, ntClassVarDecList}},
		{LHS: ntClassVarDecList, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntClassVarDec, RHS: []symbol.Kind{TermStatic, ntType, TermIdent, ntVarNameTail, TermSemi}},
		{LHS: ntClassVarDec, RHS: []symbol.Kind{TermField, ntType, TermIdent, ntVarNameTail, TermSemi}},
		{LHS: ntVarNameTail, RHS: []symbol.Kind{TermComma, TermIdent, ntVarNameTail}},
		{LHS: ntVarNameTail, RHS: []symbol.Kind{symbol.Eps}},

		{LHS: ntSubroutineDecList, RHS: []symbol.Kind{ntSubroutineDec, ntSubroutineDecList}},
		{LHS: ntSubroutineDecList, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntSubroutineDec, RHS: []symbol.Kind{TermConstructor, ntReturnType, TermIdent, TermLParen, ntParamList, TermRParen, ntSubroutineBody}},
		{LHS: ntSubroutineDec, RHS: []symbol.Kind{TermFunction, ntReturnType, TermIdent, TermLParen, ntParamList, TermRParen, ntSubroutineBody}},
		{LHS: ntSubroutineDec, RHS: []symbol.Kind{TermMethod, ntReturnType, TermIdent, TermLParen, ntParamList, TermRParen, ntSubroutineBody}},

		{LHS: ntReturnType, RHS: []symbol.Kind{TermVoid}},
		{LHS: ntReturnType, RHS: []symbol.Kind{ntType}},
		{LHS: ntType, RHS: []symbol.Kind{TermInt}},
		{LHS: ntType, RHS: []symbol.Kind{TermChar}},
		{LHS: ntType, RHS: []symbol.Kind{TermBoolean}},
		{LHS: ntType, RHS: []symbol.Kind{TermIdent}},

		{LHS: ntParamList, RHS: []symbol.Kind{ntParam, ntParamListTail}},
		{LHS: ntParamList, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntParamListTail, RHS: []symbol.Kind{TermComma, ntParam, ntParamListTail}},
		{LHS: ntParamListTail, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntParam, RHS: []symbol.Kind{ntType, TermIdent}},

		{LHS: ntSubroutineBody, RHS: []symbol.Kind{TermLBrace, ntVarDecList, ntStatementList, TermRBrace}},
		{LHS: ntVarDecList, RHS: []symbol.Kind{ntVarDec, ntVarDecList}},
		{LHS: ntVarDecList, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntVarDec, RHS: []symbol.Kind{TermVar, ntType, TermIdent, ntVarNameTail, TermSemi}},

		{LHS: ntStatementList, RHS: []symbol.Kind{ntStatement, ntStatementList}},
		{LHS: ntStatementList, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntStatement, RHS: []symbol.Kind{ntLetStatement}},
		{LHS: ntStatement, RHS: []symbol.Kind{ntIfStatement}},
		{LHS: ntStatement, RHS: []symbol.Kind{ntWhileStatement}},
		{LHS: ntStatement, RHS: []symbol.Kind{ntDoStatement}},
		{LHS: ntStatement, RHS: []symbol.Kind{ntReturnStatement}},

		{LHS: ntLetStatement, RHS: []symbol.Kind{TermLet, TermIdent, ntLetIndex, TermEq, ntExpression, TermSemi}},
		{LHS: ntLetIndex, RHS: []symbol.Kind{TermLBracket, ntExpression, TermRBracket}},
		{LHS: ntLetIndex, RHS: []symbol.Kind{symbol.Eps}},

		{LHS: ntIfStatement, RHS: []symbol.Kind{TermIf, TermLParen, ntExpression, TermRParen, TermLBrace, ntStatementList, TermRBrace, ntElseClause}},
		{LHS: ntElseClause, RHS: []symbol.Kind{TermElse, TermLBrace, ntStatementList, TermRBrace}},
		{LHS: ntElseClause, RHS: []symbol.Kind{symbol.Eps}},

		{LHS: ntWhileStatement, RHS: []symbol.Kind{TermWhile, TermLParen, ntExpression, TermRParen, TermLBrace, ntStatementList, TermRBrace}},

		{LHS: ntDoStatement, RHS: []symbol.Kind{TermDo, TermIdent, ntDoCallTail, TermSemi}},
		{LHS: ntDoCallTail, RHS: []symbol.Kind{TermLParen, ntExpressionList, TermRParen}},
		{LHS: ntDoCallTail, RHS: []symbol.Kind{TermDot, TermIdent, TermLParen, ntExpressionList, TermRParen}},

		{LHS: ntReturnStatement, RHS: []symbol.Kind{TermReturn, ntReturnValue, TermSemi}},
		{LHS: ntReturnValue, RHS: []symbol.Kind{ntExpression}},
		{LHS: ntReturnValue, RHS: []symbol.Kind{symbol.Eps}},

		{LHS: ntExpression, RHS: []symbol.Kind{ntTerm, ntExpressionTail}},

		{LHS: ntTerm, RHS: []symbol.Kind{TermIntConst}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermStringConst}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermTrue}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermFalse}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermNull}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermThis}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermIdent, ntTermIdentTail}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermLParen, ntExpression, TermRParen}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermMinus, ntTerm}},
		{LHS: ntTerm, RHS: []symbol.Kind{TermTilde, ntTerm}},

		{LHS: ntTermIdentTail, RHS: []symbol.Kind{TermLBracket, ntExpression, TermRBracket}},
		{LHS: ntTermIdentTail, RHS: []symbol.Kind{TermLParen, ntExpressionList, TermRParen}},
		{LHS: ntTermIdentTail, RHS: []symbol.Kind{TermDot, TermIdent, TermLParen, ntExpressionList, TermRParen}},
		{LHS: ntTermIdentTail, RHS: []symbol.Kind{symbol.Eps}},

		{LHS: ntExpressionList, RHS: []symbol.Kind{ntExpression, ntExpressionListTail}},
		{LHS: ntExpressionList, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntExpressionListTail, RHS: []symbol.Kind{TermComma, ntExpression, ntExpressionListTail}},
		{LHS: ntExpressionListTail, RHS: []symbol.Kind{symbol.Eps}},
	}

	for _, op := range binOps {
		productions = append(productions, grammar.Production{
			LHS: ntExpressionTail,
			RHS: []symbol.Kind{op, ntTerm, ntExpressionTail},
		})
	}
	productions = append(productions, grammar.Production{LHS: ntExpressionTail, RHS: []symbol.Kind{symbol.Eps}})

	return grammar.New(ntClass, productions)
}
