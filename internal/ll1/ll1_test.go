package ll1

import (
	"testing"

	"github.com/shadowCow/zephyr-lang-go/internal/bnf"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// toyGrammar is a small, genuinely LL(1) grammar:
//
//	@Start ::= <Name> Tail
//	Tail   ::= "+" <Name> Tail
//	       ::= ""
func toyGrammar(t *testing.T) *bnf.Grammar {
	t.Helper()
	g, err := bnf.BuildGrammar(`
@Start ::= <Name> Tail
Tail ::= "+" <Name> Tail
  ::= ""
`)
	if err != nil {
		t.Fatalf("bnf.BuildGrammar returned error: %v", err)
	}
	return g
}

func TestComputeFirstSets(t *testing.T) {
	g := toyGrammar(t)
	first := ComputeFirstSets(g)

	if !setEquals(first.Of("Start"), []string{"<Name"}) {
		t.Errorf("FIRST(Start) = %v; want [<Name]", first.Of("Start"))
	}
	if !setEquals(first.Of("Tail"), []string{"\"+"}) {
		t.Errorf("FIRST(Tail) = %v; want [\"+]", first.Of("Tail"))
	}
	if !first.Nullable("Tail") {
		t.Error("Tail should be nullable")
	}
	if first.Nullable("Start") {
		t.Error("Start should not be nullable")
	}
}

func TestComputeFollowSets(t *testing.T) {
	g := toyGrammar(t)
	first := ComputeFirstSets(g)
	follow := ComputeFollowSets(g, first)

	want := []string{EndOfInput}
	if !setEquals(follow.Of("Tail"), want) {
		t.Errorf("FOLLOW(Tail) = %v; want %v", follow.Of("Tail"), want)
	}
	if !setEquals(follow.Of("Start"), []string{EndOfInput}) {
		t.Errorf("FOLLOW(Start) = %v; want [%s]", follow.Of("Start"), EndOfInput)
	}
}

func TestBuildParseTableAcceptsLL1Grammar(t *testing.T) {
	g := toyGrammar(t)
	first := ComputeFirstSets(g)
	follow := ComputeFollowSets(g, first)

	table, err := BuildParseTable(g, first, follow)
	if err != nil {
		t.Fatalf("BuildParseTable returned error: %v", err)
	}

	if _, ok := table.Select("Start", "Name", "x"); !ok {
		t.Error("Select(Start, Name, x) should find a production")
	}
	if _, ok := table.Select("Tail", "EOF", ""); !ok {
		t.Error("Select(Tail, EOF, \"\") should find the epsilon production via FOLLOW")
	}
	if _, ok := table.Select("Tail", "Operator", "-"); ok {
		t.Error("Select(Tail, Operator, -) should find no production")
	}
}

func TestBuildParseTableRejectsAmbiguousGrammar(t *testing.T) {
	g, err := bnf.BuildGrammar(`
@S ::= A
  ::= B
A ::= "a" "x"
B ::= "a" "y"
`)
	if err != nil {
		t.Fatalf("bnf.BuildGrammar returned error: %v", err)
	}
	first := ComputeFirstSets(g)
	follow := ComputeFollowSets(g, first)

	_, err = BuildParseTable(g, first, follow)
	if err == nil {
		t.Fatal("expected an ambiguity error for a non-LL(1) grammar, got nil")
	}
	if _, ok := err.(*zerrors.GrammarError); !ok {
		t.Errorf("error type = %T; want *zerrors.GrammarError", err)
	}
}

func TestSelectKeyOf(t *testing.T) {
	cases := []struct {
		name string
		sym  bnf.Symbol
		want string
	}{
		{"terminal", bnf.Terminal{NameValue: "Name"}, "<Name"},
		{"literal", bnf.Literal{NameValue: "if"}, "\"if"},
	}
	for _, tc := range cases {
		if got := SelectKeyOf(tc.sym); got != tc.want {
			t.Errorf("SelectKeyOf(%v) = %q; want %q", tc.sym, got, tc.want)
		}
	}
}

func setEquals(got []string, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	gotSet := make(map[string]bool, len(got))
	for _, g := range got {
		gotSet[g] = true
	}
	for _, w := range want {
		if !gotSet[w] {
			return false
		}
	}
	return true
}
