// Package ll1 computes FIRST, FOLLOW, and SELECT sets over a bnf.Grammar,
// builds the resulting LL(1) predictive parse table, and reports ambiguity
// as a build-time GrammarError.
package ll1

import "github.com/shadowCow/zephyr-lang-go/internal/bnf"

// EndOfInput is the FOLLOW-set terminal representing end-of-stream: the
// Terminal select key ("<" + kind) of the tokenizer's EOF token kind, so
// ParseTable.Select finds it for the EOF token.
const EndOfInput = "<EOF"

// FirstSets holds FIRST(N) for every nonterminal in a grammar, plus whether
// each nonterminal is nullable (its FIRST set contains epsilon). FIRST of a
// terminal or literal is not stored; it is the symbol's own select key.
type FirstSets struct {
	sets     map[string]map[string]bool
	nullable map[string]bool
}

func newFirstSets() *FirstSets {
	return &FirstSets{sets: make(map[string]map[string]bool), nullable: make(map[string]bool)}
}

func (f *FirstSets) of(name string) map[string]bool {
	s, ok := f.sets[name]
	if !ok {
		s = make(map[string]bool)
		f.sets[name] = s
	}
	return s
}

// Of returns FIRST(name) for a nonterminal name, as a fresh slice.
func (f *FirstSets) Of(name string) []string {
	return keys(f.sets[name])
}

// Nullable reports whether the nonterminal can derive the empty string.
func (f *FirstSets) Nullable(name string) bool { return f.nullable[name] }

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// ComputeFirstSets computes FIRST(N) for every nonterminal N in g by
// iterating to a fixpoint. Left-recursive-through-epsilon cycles terminate
// naturally: a nonterminal's set only grows monotonically across passes,
// and the loop stops once no pass adds anything.
func ComputeFirstSets(g *bnf.Grammar) *FirstSets {
	f := newFirstSets()
	for _, nt := range g.Nonterminals() {
		f.of(nt) // ensure every nonterminal has an entry, even if never grown
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			before := len(f.of(p.LHS))
			beforeNullable := f.nullable[p.LHS]

			addFirstOfSequence(f, p.RHS, p.LHS)

			if len(f.of(p.LHS)) != before || f.nullable[p.LHS] != beforeNullable {
				changed = true
			}
		}
	}
	return f
}

// addFirstOfSequence adds FIRST(RHS) to FIRST(intoNonterm), handling the
// empty-RHS (epsilon) case and symbol-by-symbol nullability chaining.
func addFirstOfSequence(f *FirstSets, rhs []bnf.Symbol, intoNonterm string) {
	dest := f.of(intoNonterm)
	if len(rhs) == 0 {
		f.nullable[intoNonterm] = true
		return
	}
	allNullable := true
	for _, sym := range rhs {
		addFirstOfSymbol(f, sym, dest)
		if !symbolNullable(f, sym) {
			allNullable = false
			break
		}
	}
	if allNullable {
		f.nullable[intoNonterm] = true
	}
}

func symbolNullable(f *FirstSets, sym bnf.Symbol) bool {
	if sym.Kind() != "Nonterminal" {
		return false
	}
	return f.nullable[sym.Name()]
}

func addFirstOfSymbol(f *FirstSets, sym bnf.Symbol, dest map[string]bool) {
	switch sym.Kind() {
	case "Nonterminal":
		for t := range f.of(sym.Name()) {
			dest[t] = true
		}
	default: // Terminal or Literal: FIRST(x) = {x-as-a-select-key}
		dest[SelectKeyOf(sym)] = true
	}
}

// SelectKeyOf is the string used to key a Terminal/Literal symbol in a
// FIRST/FOLLOW/SELECT set. Terminals are keyed by "<kind", literals by
// "\"text" — the leading sigil keeps a terminal named the same as a
// literal's text from colliding.
func SelectKeyOf(sym bnf.Symbol) string {
	switch sym.Kind() {
	case "Terminal":
		return "<" + sym.Name()
	case "Literal":
		return "\"" + sym.Name()
	default:
		return sym.Name()
	}
}
