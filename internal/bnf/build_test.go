package bnf

import "testing"

func TestBuildGrammarBasics(t *testing.T) {
	text := `
# a toy grammar
@Start ::= <Name> Rest

Rest ::= "+" <Name> Rest
  ::= ""
`
	g, err := BuildGrammar(text)
	if err != nil {
		t.Fatalf("BuildGrammar returned error: %v", err)
	}
	if g.StartSymbol != "Start" {
		t.Errorf("StartSymbol = %q; want %q", g.StartSymbol, "Start")
	}
	if !g.NonterminalPermanent("Start") {
		t.Error("Start should be permanent")
	}
	if g.NonterminalPermanent("Rest") {
		t.Error("Rest should be transparent")
	}
	if len(g.ByLHS["Rest"]) != 2 {
		t.Errorf("len(ByLHS[Rest]) = %d; want 2 alternatives", len(g.ByLHS["Rest"]))
	}
}

func TestBuildGrammarBlankLHSContinuesPreviousNonterminal(t *testing.T) {
	text := `
@A ::= "x"
   ::= "y"
`
	g, err := BuildGrammar(text)
	if err != nil {
		t.Fatalf("BuildGrammar returned error: %v", err)
	}
	if len(g.ByLHS["A"]) != 2 {
		t.Fatalf("len(ByLHS[A]) = %d; want 2", len(g.ByLHS["A"]))
	}
}

func TestBuildGrammarRejectsUndeclaredNonterminal(t *testing.T) {
	_, err := BuildGrammar(`@A ::= B`)
	if err == nil {
		t.Fatal("expected an error for a reference to an undeclared nonterminal, got nil")
	}
}

func TestBuildGrammarRejectsInconsistentPermanence(t *testing.T) {
	text := "@A ::= \"x\"\nA ::= \"y\"\n"
	_, err := BuildGrammar(text)
	if err == nil {
		t.Fatal("expected an error for redeclaring a nonterminal with a different permanence, got nil")
	}
}

func TestBuildGrammarRejectsUnterminatedLiteral(t *testing.T) {
	_, err := BuildGrammar(`@A ::= "x`)
	if err == nil {
		t.Fatal("expected an error for an unterminated literal, got nil")
	}
}

func TestParseSymbolSpec(t *testing.T) {
	cases := []struct {
		name          string
		spec          string
		wantKind      string
		wantSymName   string
		wantPermanent bool
		wantEpsilon   bool
	}{
		{"literal", `"print"`, "Literal", "print", false, false},
		{"permanent literal", `@"..."`, "Literal", "...", true, false},
		{"terminal", "<Name>", "Terminal", "Name", false, false},
		{"permanent terminal", "@<Name>", "Terminal", "Name", true, false},
		{"nonterminal", "Block", "Nonterminal", "Block", false, false},
		{"epsilon", `""`, "", "", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sym, isEpsilon, err := parseSymbolSpec(tc.spec)
			if err != nil {
				t.Fatalf("parseSymbolSpec(%q) returned error: %v", tc.spec, err)
			}
			if isEpsilon != tc.wantEpsilon {
				t.Fatalf("parseSymbolSpec(%q) isEpsilon = %v; want %v", tc.spec, isEpsilon, tc.wantEpsilon)
			}
			if tc.wantEpsilon {
				return
			}
			if sym.Kind() != tc.wantKind || sym.Name() != tc.wantSymName || sym.IsPermanent() != tc.wantPermanent {
				t.Errorf("parseSymbolSpec(%q) = {%s %q permanent=%v}; want {%s %q permanent=%v}",
					tc.spec, sym.Kind(), sym.Name(), sym.IsPermanent(), tc.wantKind, tc.wantSymName, tc.wantPermanent)
			}
		})
	}
}

func TestSplitSymbolSpecsRespectsQuotedSpaces(t *testing.T) {
	specs, err := splitSymbolSpecs(`"a b" <Name> Nonterm`)
	if err != nil {
		t.Fatalf("splitSymbolSpecs returned error: %v", err)
	}
	want := []string{`"a b"`, "<Name>", "Nonterm"}
	if len(specs) != len(want) {
		t.Fatalf("len(specs) = %d; want %d", len(specs), len(want))
	}
	for i := range want {
		if specs[i] != want[i] {
			t.Errorf("specs[%d] = %q; want %q", i, specs[i], want[i])
		}
	}
}

func TestSameSymbolIgnoresPermanent(t *testing.T) {
	a := Literal{NameValue: "if", Permanent: false}
	b := Literal{NameValue: "if", Permanent: true}
	if !SameSymbol(a, b) {
		t.Error("SameSymbol should ignore the Permanent flag")
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		name      string
		sym       Symbol
		tokenKind string
		tokenText string
		want      bool
	}{
		{"terminal matches by kind", Terminal{NameValue: "Name"}, "Name", "foo", true},
		{"terminal ignores text", Terminal{NameValue: "Name"}, "Name", "bar", true},
		{"literal matches by text", Literal{NameValue: "if"}, "Keyword", "if", true},
		{"literal rejects other text", Literal{NameValue: "if"}, "Keyword", "else", false},
		{"nonterminal never matches a token", Nonterminal{NameValue: "Block"}, "Name", "Block", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Matches(tc.sym, tc.tokenKind, tc.tokenText); got != tc.want {
				t.Errorf("Matches(%v, %q, %q) = %v; want %v", tc.sym, tc.tokenKind, tc.tokenText, got, tc.want)
			}
		})
	}
}
