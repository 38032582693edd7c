package ll1

import (
	"fmt"

	"github.com/shadowCow/zephyr-lang-go/internal/bnf"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// tableKey addresses one cell of the predictive parse table.
type tableKey struct {
	nonterm string
	token   string // a SelectKeyOf-shaped key: "<Kind" or "\"text"
}

// ParseTable maps (nonterminal, lookahead) to the production index chosen
// for that cell.
type ParseTable struct {
	grammar *bnf.Grammar
	cells   map[tableKey]int
}

// Select returns the production index selected for nonterm given a token
// of the given kind and text, and whether any production matched.
func (t *ParseTable) Select(nonterm, tokenKind, tokenText string) (int, bool) {
	if idx, ok := t.cells[tableKey{nonterm, "<" + tokenKind}]; ok {
		return idx, true
	}
	if idx, ok := t.cells[tableKey{nonterm, "\"" + tokenText}]; ok {
		return idx, true
	}
	return 0, false
}

// Production returns the production at index idx.
func (t *ParseTable) Production(idx int) bnf.Production { return t.grammar.Productions[idx] }

// SelectSet computes SELECT(p) for production index idx: FIRST(α)
// if ε is not in FIRST(α), else (FIRST(α)\{ε}) ∪ FOLLOW(LHS).
func SelectSet(g *bnf.Grammar, first *FirstSets, follow *FollowSets, idx int) []string {
	p := g.Productions[idx]
	set := make(map[string]bool)
	nullable := true
	for _, sym := range p.RHS {
		addFirstOfSymbol(first, sym, set)
		if !symbolNullable(first, sym) {
			nullable = false
			break
		}
	}
	if len(p.RHS) == 0 {
		nullable = true
	}
	if nullable {
		for t := range follow.of(p.LHS) {
			set[t] = true
		}
	}
	return keys(set)
}

// BuildParseTable builds the LL(1) predictive parse table, walking
// productions in declaration order and reporting the first ambiguity found
// as a *zerrors.GrammarError — a duplicate (nonterminal, lookahead) cell,
// meaning the grammar is not LL(1).
func BuildParseTable(g *bnf.Grammar, first *FirstSets, follow *FollowSets) (*ParseTable, error) {
	t := &ParseTable{grammar: g, cells: make(map[tableKey]int)}

	for idx, p := range g.Productions {
		for _, tok := range SelectSet(g, first, follow, idx) {
			k := tableKey{nonterm: p.LHS, token: tok}
			if existing, ok := t.cells[k]; ok {
				return nil, zerrors.NewGrammarError(
					"ambiguous/non-LL(1) at (%s, %s): productions %d and %d",
					p.LHS, describeToken(tok), existing, idx,
				)
			}
			t.cells[k] = idx
		}
	}
	return t, nil
}

func describeToken(key string) string {
	if len(key) == 0 {
		return key
	}
	switch key[0] {
	case '<':
		return fmt.Sprintf("<%s>", key[1:])
	case '"':
		return fmt.Sprintf("%q", key[1:])
	default:
		return key
	}
}
