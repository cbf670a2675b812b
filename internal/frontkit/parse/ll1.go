// Package parse implements the predictive LL(1) parser driver of spec.md
// §4.4: an explicit stack of pending parse-tree nodes, predicted forward
// using the grammar's LL(1) table, with no error recovery beyond reporting
// the first failure. The stack-walking shape (push the reversed RHS into
// reserved child slots, pop on terminal match) is a direct generalization
// of dekarrin-tunaq/internal/ictiobus/parse/ll1.go's ll1Parser.Parse from a
// string-keyed grammar to this module's symbol.Kind-keyed one.
package parse

import (
	"fmt"

	"github.com/arlenholt/frontkit/internal/frontkit/grammar"
	"github.com/arlenholt/frontkit/internal/frontkit/lex"
	"github.com/arlenholt/frontkit/internal/frontkit/symbol"
)

// Parser runs a predictive LL(1) parse against a precomputed grammar.Table.
type Parser struct {
	g     *grammar.Grammar
	table *grammar.Table
}

// New builds a Parser for g, computing its LL(1) table. It returns the
// same error LLTable would: grammar construction failures are fatal before
// any lexing happens (spec.md §7).
func New(g *grammar.Grammar) (*Parser, error) {
	table, err := g.LLTable()
	if err != nil {
		return nil, err
	}
	return &Parser{g: g, table: table}, nil
}

// NewWithTable builds a Parser from an already-validated grammar and
// table, skipping the LL(1) conflict-detection pass New performs. Used by
// callers restoring a cached compiled grammar bundle (see frontcfg).
func NewWithTable(g *grammar.Grammar, table *grammar.Table) *Parser {
	return &Parser{g: g, table: table}
}

// SyntaxError is returned by Parse on the first parse failure. Per spec.md
// §4.4, the partially-built tree is still returned alongside it for
// diagnostic inspection.
type SyntaxError struct {
	Message string
	Token   symbol.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s (got %q)", e.Token.Line, e.Message, e.Token.Lexeme)
}

// Parse runs the predictive parse over stream and returns the concrete
// parse tree built from it. On failure the root built so far is still
// returned together with a non-nil *SyntaxError.
func (p *Parser) Parse(stream lex.TokenStream) (*symbol.ParseTree, error) {
	root := &symbol.ParseTree{Symbol: p.g.StartSymbol()}

	type frame struct {
		sym  symbol.Kind
		node *symbol.ParseTree
	}

	stack := []frame{{sym: p.g.StartSymbol(), node: root}}
	lookahead := stream.Peek()

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !p.g.IsNonTerminal(top.sym) {
			if top.sym != lookahead.Kind {
				return root, &SyntaxError{
					Message: fmt.Sprintf("expected %s, got %s", top.sym, lookahead.Kind),
					Token:   lookahead,
				}
			}
			top.node.Terminal = true
			top.node.Source = lookahead
			stream.Next()
			lookahead = stream.Peek()
			continue
		}

		prodIdx, ok := p.table.Get(top.sym, lookahead.Kind)
		if !ok {
			return root, &SyntaxError{
				Message: fmt.Sprintf("unexpected token for %s", top.sym),
				Token:   lookahead,
			}
		}

		prod := p.g.Production(prodIdx)
		if len(prod.RHS) == 1 && prod.RHS[0] == symbol.Eps {
			// eps productions produce an internal node with no children;
			// the nonterminal identity is preserved so AST transform
			// rules can detect "eps-taken" branches by child count
			// (spec.md §4.4).
			continue
		}

		children := make([]*symbol.ParseTree, len(prod.RHS))
		for i, sym := range prod.RHS {
			children[i] = &symbol.ParseTree{Symbol: sym}
		}
		top.node.Children = children

		for i := len(prod.RHS) - 1; i >= 0; i-- {
			stack = append(stack, frame{sym: prod.RHS[i], node: children[i]})
		}
	}

	return root, nil
}
