// Package eval implements the tree-walking evaluator: it walks a pruned
// AST, binding statement nodes to program-state mutations and host I/O
// and expression nodes to values, dispatching every operator through the
// value package's named-hook tables.
package eval

import (
	"math/rand"

	"github.com/shadowCow/zephyr-lang-go/internal/ast"
	"github.com/shadowCow/zephyr-lang-go/internal/host"
	"github.com/shadowCow/zephyr-lang-go/internal/state"
)

// Evaluator owns one evaluation: the program state it mutates, the host IO
// it reads/writes through, and the PRNG backing the "random" keyword. It
// is single-threaded and owned exclusively by the active run.
type Evaluator struct {
	state *state.State
	io    host.IO
	rng   *rand.Rand
}

// New builds an Evaluator over an existing program state. seed drives the
// "random" keyword's PRNG; callers that want reproducible runs fix it,
// callers that want fresh randomness seed from the current time.
func New(st *state.State, io host.IO, seed int64) *Evaluator {
	return &Evaluator{state: st, io: io, rng: rand.New(rand.NewSource(seed))}
}

// Run drives a full evaluation of root (expected to be a "Program" node)
// against a fresh program state.
func Run(root *ast.Node, io host.IO, seed int64) error {
	return New(state.New(), io, seed).Execute(root)
}

// Execute runs root against this evaluator's state, for callers (such as
// -debug tooling) that want to inspect state after the run.
func (e *Evaluator) Execute(root *ast.Node) error {
	return e.execute(root)
}

// State exposes the underlying program state, chiefly so callers can Dump
// it for debugging after a run completes or fails.
func (e *Evaluator) State() *state.State {
	return e.state
}
