// Package langdef embeds the language's canonical grammar and regex table
// and exposes them through the same built/loaded forms the rest of the
// pipeline consumes, so internal/runner never reads the grammar or regex
// table from disk at run time.
package langdef

import (
	_ "embed"

	"github.com/shadowCow/zephyr-lang-go/internal/bnf"
	"github.com/shadowCow/zephyr-lang-go/internal/token"
)

//go:embed grammar.bnf
var grammarText string

//go:embed regextable.txt
var regexTableText string

// GetGrammar parses the embedded BNF text into a validated Grammar.
func GetGrammar() (*bnf.Grammar, error) {
	return bnf.BuildGrammar(grammarText)
}

// GetRegexTable parses the embedded regex table text into a compiled Table.
func GetRegexTable() (token.Table, error) {
	return token.LoadRegexTable(regexTableText)
}
