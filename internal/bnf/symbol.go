// Package bnf parses the textual BNF grammar surface into a Grammar: an
// ordered list of productions over Nonterminal, Terminal, and Literal
// symbols, each carrying the "permanent" flag that controls AST pruning.
package bnf

// Symbol is implemented by Nonterminal, Terminal, and Literal. Equality
// between symbols ignores the Permanent flag: two literals or terminals
// with the same name match regardless of which side declared it permanent.
type Symbol interface {
	// Name is the nonterminal name, the terminal's token kind, or the
	// literal's exact text.
	Name() string
	// IsPermanent reports whether this symbol occurrence retains its
	// matched subtree/token in the AST.
	IsPermanent() bool
	// Kind distinguishes the three symbol variants for equality and
	// dispatch: "Nonterminal", "Terminal", or "Literal".
	Kind() string
}

// Nonterminal references another production by name.
type Nonterminal struct {
	NameValue string
	Permanent bool
}

func (n Nonterminal) Name() string     { return n.NameValue }
func (n Nonterminal) IsPermanent() bool { return n.Permanent }
func (n Nonterminal) Kind() string     { return "Nonterminal" }

// Terminal matches a token by its kind (e.g. <Name>, <Integer>).
type Terminal struct {
	NameValue string
	Permanent bool
}

func (t Terminal) Name() string     { return t.NameValue }
func (t Terminal) IsPermanent() bool { return t.Permanent }
func (t Terminal) Kind() string     { return "Terminal" }

// Literal matches a token by its exact text (e.g. "if", "+").
type Literal struct {
	NameValue string
	Permanent bool
}

func (l Literal) Name() string     { return l.NameValue }
func (l Literal) IsPermanent() bool { return l.Permanent }
func (l Literal) Kind() string     { return "Literal" }

// SameSymbol compares two symbols by kind and name only, ignoring Permanent.
func SameSymbol(a, b Symbol) bool {
	return a.Kind() == b.Kind() && a.Name() == b.Name()
}

// Matches reports whether tok (identified by its kind and exact text)
// satisfies this symbol: a Terminal matches by token kind, a Literal
// matches by token text.
func Matches(sym Symbol, tokenKind, tokenText string) bool {
	switch sym.Kind() {
	case "Terminal":
		return sym.Name() == tokenKind
	case "Literal":
		return sym.Name() == tokenText
	default:
		return false
	}
}
