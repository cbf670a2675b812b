package jsongram

import "github.com/arlenholt/frontkit/internal/frontkit/grammar"
import "github.com/arlenholt/frontkit/internal/frontkit/symbol"

// BuildGrammar returns the LL(1) grammar:
//
//	Value          -> STRING | NUMBER | TRUE | FALSE | NULL | Object | Array
//	Object         -> LBRACE ObjectBody RBRACE
//	ObjectBody     -> Member ObjectBodyTail | eps
//	ObjectBodyTail -> COMMA Member ObjectBodyTail | eps
//	Member         -> STRING COLON Value
//	Array          -> LBRACKET ArrayBody RBRACKET
//	ArrayBody      -> Value ArrayBodyTail | eps
//	ArrayBodyTail  -> COMMA Value ArrayBodyTail | eps
func BuildGrammar() (*grammar.Grammar, error) {
	return grammar.New(ntValue, []grammar.Production{
		{LHS: ntValue, RHS: []symbol.Kind{TermString}},
		{LHS: ntValue, RHS: []symbol.Kind{TermNumber}},
		{LHS: ntValue, RHS: []symbol.Kind{TermTrue}},
		{LHS: ntValue, RHS: []symbol.Kind{TermFalse}},
		{LHS: ntValue, RHS: []symbol.Kind{TermNull}},
		{LHS: ntValue, RHS: []symbol.Kind{ntObject}},
		{LHS: ntValue, RHS: []symbol.Kind{ntArray}},
		{LHS: ntObject, RHS: []symbol.Kind{TermLBrace, ntObjectBody, TermRBrace}},
		{LHS: ntObjectBody, RHS: []symbol.Kind{ntMember, ntObjectBodyTail}},
		{LHS: ntObjectBody, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntObjectBodyTail, RHS: []symbol.Kind{TermComma, ntMember, ntObjectBodyTail}},
		{LHS: ntObjectBodyTail, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntMember, RHS: []symbol.Kind{TermString, TermColon, ntValue}},
		{LHS: ntArray, RHS: []symbol.Kind{TermLBracket, ntArrayBody, TermRBracket}},
		{LHS: ntArrayBody, RHS: []symbol.Kind{ntValue, ntArrayBodyTail}},
		{LHS: ntArrayBody, RHS: []symbol.Kind{symbol.Eps}},
		{LHS: ntArrayBodyTail, RHS: []symbol.Kind{TermComma, ntValue, ntArrayBodyTail}},
		{LHS: ntArrayBodyTail, RHS: []symbol.Kind{symbol.Eps}},
	})
}
