package symbol

import (
	"fmt"
	"strings"
)

// treeLevelPrefix mirrors the indentation scheme of
// dekarrin-tunaq/internal/ictiobus's ParseTree.String (prefix markers for
// "still more siblings" versus "last sibling"), adapted to a two-space,
// ASCII-only box style.
const (
	treeLevelEmpty      = "      "
	treeLevelOngoing    = "  |   "
	treeLevelPrefix     = "  |-- "
	treeLevelPrefixLast = "  `-- "
)

// ParseTree is a concrete syntax tree node as produced by the predictive
// parser (package parse). A ParseTree node exclusively owns its Children;
// ExtractChild transfers a child out to the caller, leaving a nil slot in
// its place so that addressing children by fixed index remains valid for
// AST transform rules that have already extracted some siblings.
type ParseTree struct {
	// Terminal is whether this node stands for a terminal symbol (a leaf)
	// as opposed to a nonterminal (an interior node, possibly with zero
	// children for an eps production).
	Terminal bool

	// Symbol is the terminal or nonterminal this node was produced for.
	Symbol Kind

	// Source is populated only when Terminal is true.
	Source Token

	// Children holds this node's ordered children. After ExtractChild(i)
	// is called, Children[i] is nil; the length is never altered so sibling
	// indices stay stable.
	Children []*ParseTree
}

// NewLeaf builds a terminal parse-tree node for tok.
func NewLeaf(tok Token) *ParseTree {
	return &ParseTree{Terminal: true, Symbol: tok.Kind, Source: tok}
}

// NewNode builds a nonterminal parse-tree node with the given children
// already attached (ownership transfers to the new node).
func NewNode(sym Kind, children ...*ParseTree) *ParseTree {
	return &ParseTree{Symbol: sym, Children: children}
}

// ExtractChild transfers ownership of the i'th child to the caller and
// leaves a tombstone (nil) in its place. Extracting the same index twice,
// or an out-of-range index, returns nil: callers that rely on the
// take-once contract (every AST transform rule in this toolkit) never do
// either, but returning nil rather than panicking keeps malformed rule
// tables from crashing the whole conversion mid-tree.
func (pt *ParseTree) ExtractChild(i int) *ParseTree {
	if pt == nil || i < 0 || i >= len(pt.Children) {
		return nil
	}
	child := pt.Children[i]
	pt.Children[i] = nil
	return child
}

// ExtractLeaf is ExtractChild followed by pulling the leaf's Token; it
// panics if the extracted child is missing or is not a terminal, since
// every call site in a grammar's AST rule table knows statically which
// children are leaves.
func (pt *ParseTree) ExtractLeaf(i int) Token {
	child := pt.ExtractChild(i)
	if child == nil || !child.Terminal {
		panic(fmt.Sprintf("symbol: ExtractLeaf(%d) on non-leaf or already-extracted child", i))
	}
	return child.Source
}

// String returns a box-drawn rendering of the tree, suitable for
// line-by-line comparison in tests. Every Kind renders via Kind's own
// generic String(), which collapses every grammar-specific symbol to the
// same placeholder; use StringWithNamer for human-legible CLI output.
func (pt *ParseTree) String() string {
	return pt.stringNamed(Kind.String)
}

// StringWithNamer is String, but names each Symbol via namer.Name instead
// of Kind's generic String(), so a grammar's own terminal and nonterminal
// names show up instead of the placeholder "<user-kind>".
func (pt *ParseTree) StringWithNamer(namer Namer) string {
	return pt.stringNamed(namer.Name)
}

func (pt *ParseTree) stringNamed(name func(Kind) string) string {
	if pt == nil {
		return "<nil>"
	}
	return pt.leveledStr("", "", name)
}

func (pt *ParseTree) leveledStr(firstPrefix, contPrefix string, name func(Kind) string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if pt == nil {
		sb.WriteString("<extracted>")
		return sb.String()
	}
	if pt.Terminal {
		sb.WriteString(fmt.Sprintf("(TERM %s %q)", name(pt.Symbol), pt.Source.Lexeme))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", name(pt.Symbol)))
	}

	for i, child := range pt.Children {
		sb.WriteRune('\n')
		var nextFirst, nextCont string
		if i+1 < len(pt.Children) {
			nextFirst = contPrefix + treeLevelPrefix
			nextCont = contPrefix + treeLevelOngoing
		} else {
			nextFirst = contPrefix + treeLevelPrefixLast
			nextCont = contPrefix + treeLevelEmpty
		}
		sb.WriteString(child.leveledStr(nextFirst, nextCont, name))
	}

	return sb.String()
}

// Leaves returns, in order, the Tokens of every terminal leaf in the tree,
// skipping eps nodes (terminal nodes with Symbol == Eps and no Source
// lexeme). This is the sequence spec.md §8 property 6 checks against the
// non-discardable token stream.
func (pt *ParseTree) Leaves() []Token {
	if pt == nil {
		return nil
	}
	var out []Token
	var walk func(n *ParseTree)
	walk = func(n *ParseTree) {
		if n == nil {
			return
		}
		if n.Terminal {
			if n.Symbol != Eps {
				out = append(out, n.Source)
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(pt)
	return out
}
