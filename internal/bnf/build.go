package bnf

import (
	"strings"

	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// BuildGrammar parses BNF source text into a validated Grammar. Lines
// without "::=" are ignored (comments and blank lines). A blank
// left-hand side continues the previous nonterminal's alternatives. The
// first left-hand side encountered is the start symbol.
func BuildGrammar(bnfText string) (*Grammar, error) {
	g := &Grammar{
		ByLHS:     make(map[string][]int),
		permanent: make(map[string]bool),
	}

	var currentLHS string
	haveLHS := false

	for lineNo, line := range strings.Split(bnfText, "\n") {
		idx := strings.Index(line, "::=")
		if idx < 0 {
			continue
		}
		lhsText := strings.TrimSpace(line[:idx])
		rhsText := strings.TrimSpace(line[idx+len("::="):])

		if lhsText != "" {
			name, permanent, err := parseLHS(lhsText)
			if err != nil {
				return nil, zerrors.WrapGrammarError(err, "line %d", lineNo+1)
			}
			currentLHS = name
			haveLHS = true
			if g.StartSymbol == "" {
				g.StartSymbol = name
			}
			if existing, ok := g.permanent[name]; ok && existing != permanent {
				return nil, zerrors.NewGrammarError("line %d: %q redeclared with a different permanence", lineNo+1, name)
			}
			g.permanent[name] = permanent
		}
		if !haveLHS {
			return nil, zerrors.NewGrammarError("line %d: production body with no left-hand side yet", lineNo+1)
		}

		rhsSymbols, err := parseRHS(rhsText)
		if err != nil {
			return nil, zerrors.WrapGrammarError(err, "line %d", lineNo+1)
		}

		prodIdx := len(g.Productions)
		g.Productions = append(g.Productions, Production{LHS: currentLHS, RHS: rhsSymbols})
		g.ByLHS[currentLHS] = append(g.ByLHS[currentLHS], prodIdx)
	}

	if g.StartSymbol == "" {
		return nil, zerrors.NewGrammarError("grammar has no productions")
	}

	if err := validateReferences(g); err != nil {
		return nil, err
	}

	return g, nil
}

func validateReferences(g *Grammar) error {
	for _, p := range g.Productions {
		for _, sym := range p.RHS {
			if nt, ok := sym.(Nonterminal); ok {
				if _, declared := g.ByLHS[nt.NameValue]; !declared {
					return zerrors.NewGrammarError("nonterminal %q is referenced but never declared", nt.NameValue)
				}
			}
		}
	}
	return nil
}

func parseLHS(text string) (name string, permanent bool, err error) {
	if strings.HasPrefix(text, "@") {
		return text[1:], true, nil
	}
	return text, false, nil
}

// parseRHS splits a whitespace-separated list of BNF symbol specs,
// respecting double-quoted literals (which may contain spaces), and
// converts each to a Symbol. A lone "" spec denotes an epsilon production
// (empty RHS).
func parseRHS(text string) ([]Symbol, error) {
	specs, err := splitSymbolSpecs(text)
	if err != nil {
		return nil, err
	}
	var symbols []Symbol
	for _, spec := range specs {
		sym, isEpsilon, err := parseSymbolSpec(spec)
		if err != nil {
			return nil, err
		}
		if isEpsilon {
			continue
		}
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

func splitSymbolSpecs(text string) ([]string, error) {
	var specs []string
	var cur strings.Builder
	inQuotes := false
	flush := func() {
		if cur.Len() > 0 {
			specs = append(specs, cur.String())
			cur.Reset()
		}
	}
	for _, r := range text {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			cur.WriteRune(r)
		case r == ' ' || r == '\t':
			if inQuotes {
				cur.WriteRune(r)
			} else {
				flush()
			}
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	if inQuotes {
		return nil, zerrors.NewGrammarError("unterminated literal in %q", text)
	}
	return specs, nil
}

func parseSymbolSpec(spec string) (sym Symbol, isEpsilon bool, err error) {
	permanent := false
	if strings.HasPrefix(spec, "@") {
		permanent = true
		spec = spec[1:]
	}
	switch {
	case spec == `""`:
		return nil, true, nil
	case strings.HasPrefix(spec, `"`) && strings.HasSuffix(spec, `"`) && len(spec) >= 2:
		return Literal{NameValue: spec[1 : len(spec)-1], Permanent: permanent}, false, nil
	case strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) >= 2:
		return Terminal{NameValue: spec[1 : len(spec)-1], Permanent: permanent}, false, nil
	case spec != "":
		return Nonterminal{NameValue: spec, Permanent: permanent}, false, nil
	default:
		return nil, false, zerrors.NewGrammarError("empty symbol spec")
	}
}
