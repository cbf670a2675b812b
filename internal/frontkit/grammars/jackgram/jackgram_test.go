package jackgram

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/parse"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

func compile(t *testing.T, src string) *symbol.ASTNode {
	t.Helper()
	stream, err := Lex(src)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	g, err := BuildGrammar()
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	p, err := parse.New(g)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	tree, err := p.Parse(stream)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return BuildVisitor().Convert(tree)
}

// Test_Jack_classWithFunctionAndReturn covers spec.md §8's Jack scenario:
// `class Foo { function void main() { return; } }` parses with no errors;
// the AST has a class node with one function declaration and a single
// return statement.
func Test_Jack_classWithFunctionAndReturn(t *testing.T) {
	assert := assert.New(t)

	got := compile(t, `class Foo { function void main() { return; } }`)

	assert.Equal(ntClass, got.Symbol)
	if !assert.Len(got.Children, 3) {
		return
	}
	assert.Equal("Foo", got.Children[0].Source.Lexeme)

	varDecs := got.Children[1]
	assert.Equal(ntClassVarDecList, varDecs.Symbol)
	assert.Empty(varDecs.Children)

	subs := got.Children[2]
	assert.Equal(ntSubroutineDecList, subs.Symbol)
	if !assert.Len(subs.Children, 1) {
		return
	}

	fn := subs.Children[0]
	assert.Equal(ntSubroutineDec, fn.Symbol)
	if !assert.Len(fn.Children, 5) {
		return
	}
	assert.Equal(TermFunction, fn.Children[0].Symbol)
	assert.Equal(TermVoid, fn.Children[1].Symbol)
	assert.Equal("main", fn.Children[2].Source.Lexeme)
	assert.Empty(fn.Children[3].Children) // empty ParamList

	body := fn.Children[4]
	assert.Equal(ntSubroutineBody, body.Symbol)
	if !assert.Len(body.Children, 2) {
		return
	}
	assert.Empty(body.Children[0].Children) // empty VarDecList

	stmts := body.Children[1]
	assert.Equal(ntStatementList, stmts.Symbol)
	if !assert.Len(stmts.Children, 1) {
		return
	}
	ret := stmts.Children[0]
	assert.Equal(ntReturnStatement, ret.Symbol)
	assert.Empty(ret.Children) // bare "return;"
}

// Test_Jack_expressionOperatorChainFolds exercises the same right-tail
// fold used by arithgram: "a + b + 1" collapses into one PLUS node with
// three operand children rather than a nested chain.
func Test_Jack_expressionOperatorChainFolds(t *testing.T) {
	assert := assert.New(t)

	src := `class Math {
		function int compute(int a, int b) {
			var int sum;
			let sum = a + b + 1;
			return sum;
		}
	}`
	got := compile(t, src)

	fn := got.Children[2].Children[0]
	body := fn.Children[4]
	stmts := body.Children[1]
	if !assert.Len(stmts.Children, 2) {
		return
	}

	letStmt := stmts.Children[0]
	assert.Equal(ntLetStatement, letStmt.Symbol)
	if !assert.Len(letStmt.Children, 2) {
		return
	}
	assert.Equal("sum", letStmt.Children[0].Source.Lexeme)

	sum := letStmt.Children[1]
	assert.Equal(TermPlus, sum.Symbol)
	if !assert.Len(sum.Children, 3) {
		return
	}
	assert.Equal("a", sum.Children[0].Source.Lexeme)
	assert.Equal("b", sum.Children[1].Source.Lexeme)
	assert.Equal("1", sum.Children[2].Source.Lexeme)
}

// Test_Jack_ifElseWhileDoQualifiedCall exercises if/else, while, and a
// qualified do-call, plus that block and line comments are fully
// discarded before the parser sees any tokens.
func Test_Jack_ifElseWhileDoQualifiedCall(t *testing.T) {
	assert := assert.New(t)

	src := `class Math {
		// entry point
		function void run() {
			if (true) {
				do Output.printInt(1);
			} else {
				do Output.printInt(0);
			}
			/* loop until
			   told otherwise */
			while (false) {
				do Output.printInt(2);
			}
			return;
		}
	}`
	got := compile(t, src)

	fn := got.Children[2].Children[0]
	stmts := fn.Children[4].Children[1]
	if !assert.Len(stmts.Children, 3) {
		return
	}

	ifStmt := stmts.Children[0]
	assert.Equal(ntIfStatement, ifStmt.Symbol)
	if !assert.Len(ifStmt.Children, 3) {
		return
	}
	assert.Equal(TermTrue, ifStmt.Children[0].Symbol)

	doStmt := ifStmt.Children[1].Children[0]
	assert.Equal(ntDoStatement, doStmt.Symbol)
	assert.Equal("Output", doStmt.Children[0].Source.Lexeme)
	callTail := doStmt.Children[1]
	assert.Equal(ntDoCallTail, callTail.Symbol)
	assert.Equal("printInt", callTail.Children[0].Source.Lexeme)

	whileStmt := stmts.Children[1]
	assert.Equal(ntWhileStatement, whileStmt.Symbol)
	assert.Equal(TermFalse, whileStmt.Children[0].Symbol)

	assert.Equal(ntReturnStatement, stmts.Children[2].Symbol)
}

func Test_Jack_divideVsComment(t *testing.T) {
	assert := assert.New(t)

	stream, err := Lex(`a / b // trailing`)
	if !assert.NoError(err) {
		return
	}
	var kinds []symbol.Kind
	for stream.HasNext() {
		kinds = append(kinds, stream.Next().Kind)
	}
	assert.Equal([]symbol.Kind{TermIdent, TermSlash, TermIdent}, kinds)
}
