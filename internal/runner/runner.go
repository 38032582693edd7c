// Package runner wires every pipeline stage into the single entry point a
// CLI front end needs: read source, build the LL(1) parse table
// from the embedded grammar, tokenize, parse, and evaluate.
package runner

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/shadowCow/zephyr-lang-go/internal/eval"
	"github.com/shadowCow/zephyr-lang-go/internal/host"
	"github.com/shadowCow/zephyr-lang-go/internal/langdef"
	"github.com/shadowCow/zephyr-lang-go/internal/ll1"
	"github.com/shadowCow/zephyr-lang-go/internal/parser"
	"github.com/shadowCow/zephyr-lang-go/internal/token"
)

// Run executes one source file against io, optionally writing grammar,
// FIRST/FOLLOW, parse-table, and parse-trace diagnostics to debugOut.
func Run(filePath string, programIO host.IO, seed int64, debug bool, debugOut io.Writer) error {
	source, err := os.ReadFile(filePath)
	if err != nil {
		return errors.Wrapf(err, "reading %q", filePath)
	}

	grammar, err := langdef.GetGrammar()
	if err != nil {
		return errors.Wrap(err, "building grammar")
	}
	if debug {
		ll1.PrintGrammar(debugOut, grammar)
	}

	first := ll1.ComputeFirstSets(grammar)
	if debug {
		ll1.PrintFirstSets(debugOut, grammar, first)
	}

	follow := ll1.ComputeFollowSets(grammar, first)
	if debug {
		ll1.PrintFollowSets(debugOut, grammar, follow)
	}

	table, err := ll1.BuildParseTable(grammar, first, follow)
	if err != nil {
		return errors.Wrap(err, "building LL(1) parse table")
	}
	if debug {
		ll1.PrintParseTable(debugOut, table)
	}

	regexTable, err := langdef.GetRegexTable()
	if err != nil {
		return errors.Wrap(err, "loading regex table")
	}

	tokens, err := token.Tokenize(string(source), regexTable)
	if err != nil {
		return errors.Wrapf(err, "tokenizing %q", filePath)
	}

	var tracer *ll1.ParseTracer
	if debug {
		tracer = &ll1.ParseTracer{W: debugOut, Enabled: true}
	}
	p := parser.New(tokens, grammar, table, tracer)
	root, err := p.Parse()
	if err != nil {
		return errors.Wrapf(err, "parsing %q", filePath)
	}

	if err := eval.Run(root, programIO, seed); err != nil {
		return errors.Wrapf(err, "running %q", filePath)
	}
	return nil
}
