package ll1

import "github.com/shadowCow/zephyr-lang-go/internal/bnf"

// FollowSets holds FOLLOW(A) for every nonterminal A in a grammar.
type FollowSets struct {
	sets map[string]map[string]bool
}

func newFollowSets() *FollowSets {
	return &FollowSets{sets: make(map[string]map[string]bool)}
}

func (fo *FollowSets) of(name string) map[string]bool {
	s, ok := fo.sets[name]
	if !ok {
		s = make(map[string]bool)
		fo.sets[name] = s
	}
	return s
}

// Of returns FOLLOW(name) as a fresh slice.
func (fo *FollowSets) Of(name string) []string { return keys(fo.sets[name]) }

// ComputeFollowSets computes FOLLOW(A) for every nonterminal by iterating
// to a fixpoint: the start symbol's FOLLOW set contains
// end-of-input; for a production A -> α N β, FIRST(β)\{ε} is added to
// FOLLOW(N), and FOLLOW(A) is added to FOLLOW(N) whenever β is nullable or
// empty.
func ComputeFollowSets(g *bnf.Grammar, first *FirstSets) *FollowSets {
	fo := newFollowSets()
	fo.of(g.StartSymbol)[EndOfInput] = true

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			for i, sym := range p.RHS {
				if sym.Kind() != "Nonterminal" {
					continue
				}
				n := sym.Name()
				dest := fo.of(n)
				before := len(dest)

				beta := p.RHS[i+1:]
				betaNullable := true
				for _, bSym := range beta {
					addFirstOfSymbol(first, bSym, dest)
					if !symbolNullable(first, bSym) {
						betaNullable = false
						break
					}
				}
				if betaNullable {
					for t := range fo.of(p.LHS) {
						dest[t] = true
					}
				}

				if len(dest) != before {
					changed = true
				}
			}
		}
	}
	return fo
}
