package ll1

import (
	"fmt"
	"io"
	"sort"

	"github.com/shadowCow/zephyr-lang-go/internal/bnf"
)

// PrintFirstSets writes FIRST(N) for every nonterminal, in a stable sorted
// order, for -debug diagnostics.
func PrintFirstSets(w io.Writer, g *bnf.Grammar, f *FirstSets) {
	fmt.Fprintln(w, "FIRST sets:")
	for _, nt := range sortedNonterminals(g) {
		items := f.Of(nt)
		sort.Strings(items)
		fmt.Fprintf(w, "  FIRST(%s) = %v (nullable=%v)\n", nt, items, f.Nullable(nt))
	}
}

// PrintFollowSets writes FOLLOW(N) for every nonterminal.
func PrintFollowSets(w io.Writer, g *bnf.Grammar, fo *FollowSets) {
	fmt.Fprintln(w, "FOLLOW sets:")
	for _, nt := range sortedNonterminals(g) {
		items := fo.Of(nt)
		sort.Strings(items)
		fmt.Fprintf(w, "  FOLLOW(%s) = %v\n", nt, items)
	}
}

// PrintParseTable writes every populated (nonterminal, lookahead) cell and
// the production index it selects.
func PrintParseTable(w io.Writer, t *ParseTable) {
	fmt.Fprintln(w, "parse table:")
	keysList := make([]tableKey, 0, len(t.cells))
	for k := range t.cells {
		keysList = append(keysList, k)
	}
	sort.Slice(keysList, func(i, j int) bool {
		if keysList[i].nonterm != keysList[j].nonterm {
			return keysList[i].nonterm < keysList[j].nonterm
		}
		return keysList[i].token < keysList[j].token
	})
	for _, k := range keysList {
		fmt.Fprintf(w, "  (%s, %s) -> production %d\n", k.nonterm, describeToken(k.token), t.cells[k])
	}
}

// PrintGrammar writes every production in declaration order.
func PrintGrammar(w io.Writer, g *bnf.Grammar) {
	fmt.Fprintln(w, "grammar:")
	for i, p := range g.Productions {
		fmt.Fprintf(w, "  [%d] %s ::=", i, p.LHS)
		if len(p.RHS) == 0 {
			fmt.Fprint(w, ` ""`)
		}
		for _, sym := range p.RHS {
			fmt.Fprintf(w, " %s", symbolSpec(sym))
		}
		fmt.Fprintln(w)
	}
}

func symbolSpec(sym bnf.Symbol) string {
	prefix := ""
	if sym.IsPermanent() {
		prefix = "@"
	}
	switch sym.Kind() {
	case "Terminal":
		return fmt.Sprintf("%s<%s>", prefix, sym.Name())
	case "Literal":
		return fmt.Sprintf("%s%q", prefix, sym.Name())
	default:
		return prefix + sym.Name()
	}
}

func sortedNonterminals(g *bnf.Grammar) []string {
	nts := g.Nonterminals()
	sort.Strings(nts)
	return nts
}

// ParseTracer logs each parser step when enabled, for trace-on-demand
// parser diagnostics.
type ParseTracer struct {
	W       io.Writer
	Enabled bool
}

func (t *ParseTracer) Step(format string, args ...interface{}) {
	if t == nil || !t.Enabled || t.W == nil {
		return
	}
	fmt.Fprintf(t.W, format+"\n", args...)
}
