package bnf

// Production is one alternative for a nonterminal: LHS -> RHS. A nil-length
// RHS denotes an epsilon production.
type Production struct {
	LHS string
	RHS []Symbol
}

// Grammar is an ordered collection of productions plus a start nonterminal,
// along with each nonterminal's declared permanence (permanence is a
// property of the LHS declaration, via a leading "@" on "@Name ::= ...",
// not of each individual RHS reference to that nonterminal).
type Grammar struct {
	StartSymbol string
	Productions []Production
	// ByLHS maps each nonterminal to the indexes of its alternatives in
	// Productions, in declaration order, so declarations need not be
	// contiguous. BuildGrammar checks references against it; FIRST/FOLLOW
	// and parse-table construction (internal/ll1) walk the flat Productions
	// slice instead.
	ByLHS map[string][]int
	// permanent records, per nonterminal name, whether its LHS declaration
	// carried a leading "@".
	permanent map[string]bool
}

// NonterminalPermanent reports whether name's single LHS declaration was
// marked permanent. Nonterminals declared without "@" (the common case for
// precedence-layering helper productions) yield transparent nodes that are
// spliced into their parent during parsing.
func (g *Grammar) NonterminalPermanent(name string) bool {
	return g.permanent[name]
}

// Nonterminals returns every nonterminal with at least one production, in
// first-appearance order.
func (g *Grammar) Nonterminals() []string {
	seen := make(map[string]bool, len(g.ByLHS))
	var order []string
	for _, p := range g.Productions {
		if !seen[p.LHS] {
			seen[p.LHS] = true
			order = append(order, p.LHS)
		}
	}
	return order
}
