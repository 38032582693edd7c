// Package parser implements a table-driven predictive parse: a
// recursive descent over a bnf.Grammar's nonterminals, consulting an
// ll1.ParseTable for O(1) production selection and splicing transparent
// helper nonterminals out of the finalized tree as it goes.
package parser

import (
	"github.com/shadowCow/zephyr-lang-go/internal/ast"
	"github.com/shadowCow/zephyr-lang-go/internal/bnf"
	"github.com/shadowCow/zephyr-lang-go/internal/ll1"
	"github.com/shadowCow/zephyr-lang-go/internal/token"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// Parser drives one parse of a token stream against a grammar and its
// precomputed parse table.
type Parser struct {
	grammar *bnf.Grammar
	table   *ll1.ParseTable
	feeder  *feeder
	tracer  *ll1.ParseTracer
}

// New builds a Parser over tokens, ready to parse from the grammar's start
// symbol. tracer may be nil to disable trace output.
func New(tokens []token.Token, grammar *bnf.Grammar, table *ll1.ParseTable, tracer *ll1.ParseTracer) *Parser {
	return &Parser{grammar: grammar, table: table, feeder: newFeeder(tokens), tracer: tracer}
}

// Parse runs a full parse from the grammar's start symbol and returns the
// finalized, pruned AST root.
func Parse(tokens []token.Token, grammar *bnf.Grammar, table *ll1.ParseTable) (*ast.Node, error) {
	return New(tokens, grammar, table, nil).Parse()
}

// Parse runs the parse and returns the finalized AST root.
func (p *Parser) Parse() (*ast.Node, error) {
	root, err := p.parseNonterm(p.grammar.StartSymbol)
	if err != nil {
		la := p.feeder.peek()
		return nil, zerrors.NewParseError(la.Value, "encountered syntax error: was not expecting %q", la.Value)
	}
	if !root.IsPermanent() {
		// The start symbol must be declared permanent in any grammar meant
		// to be parsed to completion; a transparent start symbol has no
		// finalized form to return.
		return nil, zerrors.NewGrammarError("start symbol %q must be declared permanent", p.grammar.StartSymbol)
	}
	return root.Finish(), nil
}

// parseNonterm builds a permanent or
// transparent builder depending on the nonterminal's declared permanence,
// select a production via the table, and recurse/match across its RHS.
func (p *Parser) parseNonterm(name string) (*ast.Builder, error) {
	permanent := p.grammar.NonterminalPermanent(name)
	b := ast.NewBuilder(name, permanent)

	la := p.feeder.peek()
	idx, ok := p.table.Select(name, string(la.Kind), la.Value)
	if !ok {
		return nil, zerrors.NewParseError(la.Value, "no production of %s accepts %q", name, la.Value)
	}
	p.tracer.Step("%s -> production %d on lookahead %q", name, idx, la.Value)

	prod := p.table.Production(idx)
	for _, sym := range prod.RHS {
		switch sym.Kind() {
		case "Nonterminal":
			if sym.Name() == "Expression" || sym.Name() == "NameThing" {
				node, err := p.parseSpecialNonterm(sym.Name())
				if err != nil {
					return nil, err
				}
				b.AddChild(node)
				continue
			}
			child, err := p.parseNonterm(sym.Name())
			if err != nil {
				return nil, err
			}
			b.AddChildFrom(child)

		case "Terminal":
			tok, err := p.feeder.matchKind(token.Kind(sym.Name()))
			if err != nil {
				return nil, err
			}
			if sym.IsPermanent() {
				b.AddLeaf(astToken(tok))
			}

		case "Literal":
			tok, err := p.feeder.matchValue(sym.Name())
			if err != nil {
				return nil, err
			}
			if sym.IsPermanent() {
				b.AddLeaf(astToken(tok))
			}
		}
	}
	return b, nil
}

// parseSpecialNonterm dispatches to the hand-written precedence-climbing
// descent for the two nonterminal names the generic table-driven machinery
// never walks at runtime (see expression.go).
func (p *Parser) parseSpecialNonterm(name string) (*ast.Node, error) {
	switch name {
	case "Expression":
		return p.parseExpression()
	case "NameThing":
		return p.parseNameThingNode()
	}
	return nil, zerrors.NewGrammarError("parseSpecialNonterm called with unexpected name %q", name)
}

func astToken(tok token.Token) ast.Token {
	return ast.Token{Kind: string(tok.Kind), Value: tok.Value, Line: tok.Line, Col: tok.Col}
}
