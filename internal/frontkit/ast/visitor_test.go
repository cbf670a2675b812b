package ast

import (
	"testing"

	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
	"github.com/stretchr/testify/assert"
)

const (
	ntSum symbol.Kind = symbol.FirstUserKind + iota
	ntSumTail
	tPlus
	tNum
)

// buildSumTree constructs the right-recursive parse tree for "1 + 2 + 3"
// under the grammar Sum -> NUM SumTail ; SumTail -> PLUS NUM SumTail | eps,
// the same right-recursion-to-left-associativity shape spec.md §4.5 singles
// out for the right-tail-fold rule.
func buildSumTree() *symbol.ParseTree {
	leaf := func(k symbol.Kind, lexeme string) *symbol.ParseTree {
		return symbol.NewLeaf(symbol.Token{Kind: k, Lexeme: lexeme, Line: 1})
	}

	// SumTail for the eps branch (no children at all, matching what
	// parse.Parser leaves behind for an eps production).
	epsTail := symbol.NewNode(ntSumTail)

	// SumTail for "+ 3"
	tail2 := symbol.NewNode(ntSumTail, leaf(tPlus, "+"), leaf(tNum, "3"), epsTail)
	// SumTail for "+ 2 + 3"
	tail1 := symbol.NewNode(ntSumTail, leaf(tPlus, "+"), leaf(tNum, "2"), tail2)
	// Sum for "1 + 2 + 3"
	return symbol.NewNode(ntSum, leaf(tNum, "1"), tail1)
}

func sumRules() map[symbol.Kind]Rule {
	// Sum -> NUM SumTail: the leading NUM becomes the inherited seed that
	// SumTail folds onto.
	sumRule := func(conv Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
		num := conv(node.ExtractChild(0), nil)
		return conv(node.ExtractChild(1), num)
	}

	// SumTail -> PLUS NUM SumTail | eps: right-tail-fold. On the eps branch
	// (no children), hand inherited straight back. Otherwise flatten into a
	// single n-ary "sum" node instead of nesting one per application.
	tailRule := func(conv Converter, node *symbol.ParseTree, inherited *symbol.ASTNode) *symbol.ASTNode {
		if len(node.Children) == 0 {
			// eps production: just pass the accumulated sum back up
			// unchanged.
			return inherited
		}
		node.ExtractChild(0) // PLUS, discarded: the fold itself encodes addition
		num := conv(node.ExtractChild(1), nil)

		var sum *symbol.ASTNode
		if SameLabel(inherited, ntSum) {
			sum = inherited
		} else {
			sum = symbol.NewASTNode(ntSum, inherited)
		}
		sum.Append(num)
		return conv(node.ExtractChild(2), sum)
	}

	return map[symbol.Kind]Rule{
		ntSum:     sumRule,
		ntSumTail: tailRule,
	}
}

func Test_Visitor_Convert_rightTailFold(t *testing.T) {
	assert := assert.New(t)
	v := NewVisitor(sumRules())

	got := v.Convert(buildSumTree())

	want := symbol.NewASTNode(ntSum,
		symbol.NewASTLeaf(symbol.Token{Kind: tNum, Lexeme: "1"}),
		symbol.NewASTLeaf(symbol.Token{Kind: tNum, Lexeme: "2"}),
		symbol.NewASTLeaf(symbol.Token{Kind: tNum, Lexeme: "3"}),
	)

	assert.True(want.Equal(got), "got:\n%s\nwant:\n%s", got, want)
}

func Test_PassThrough(t *testing.T) {
	assert := assert.New(t)

	const ntWrap symbol.Kind = tNum + 100
	rules := map[symbol.Kind]Rule{
		ntWrap: PassThrough(0),
	}
	v := NewVisitor(rules)

	inner := symbol.NewLeaf(symbol.Token{Kind: tNum, Lexeme: "42"})
	tree := symbol.NewNode(ntWrap, inner)

	got := v.Convert(tree)
	assert.True(got.Terminal)
	assert.Equal("42", got.Source.Lexeme)
}

func Test_Visitor_Convert_panicsOnMissingRule(t *testing.T) {
	v := NewVisitor(map[symbol.Kind]Rule{})
	tree := symbol.NewNode(ntSum)
	assert.Panics(t, func() { v.Convert(tree) })
}
