// Package state implements the two-level addressing memory model: a
// symbol table mapping source names to variable ids, variable cells
// mapping ids to (address, declared type), and an append-only value-memory
// store with a reserved region that interns small integers and the two
// Booleans.
package state

import (
	"fmt"
	"io"

	"github.com/shadowCow/zephyr-lang-go/internal/value"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// ReservedSize is the size of the sparse interning region [0, ReservedSize).
const ReservedSize = 514

// smallIntBound is the exclusive bound of the interned integer range
// [-smallIntBound, smallIntBound).
const smallIntBound = 256

// Uninitialized is the sentinel address recorded by a variable cell that
// has never been assigned.
const Uninitialized = -1

// varCell is one entry of the variable-cell table: indexed by variable id,
// it holds the address currently bound to that variable and the type the
// variable was declared to accept. declaredType == "" means "accepts any
// value" — named variables and array element cells are both created this
// way; nothing in this language narrows a variable's declared type to a
// single built-in variant, so the check is permissive in practice but kept
// for structural symmetry with the variable-cell shape.
type varCell struct {
	address      int
	declaredType string
}

// State is the program's entire mutable memory: the symbol table, the
// variable cells, and the value-memory slots. It is owned exclusively by
// one evaluation.
type State struct {
	symbols   map[string]int
	variables []varCell
	memory    []value.Value
}

// New returns a fresh, empty program state.
func New() *State {
	return &State{symbols: make(map[string]int)}
}

// GetVarID returns the variable id bound to name, creating a fresh
// uninitialized variable cell on first reference.
func (s *State) GetVarID(name string) int {
	if id, ok := s.symbols[name]; ok {
		return id
	}
	id := s.newVariable("")
	s.symbols[name] = id
	return id
}

// AllocateVariableBlock creates n contiguous, uninitialized variable
// cells and returns the first cell's id — used by the Array constructor to
// back each element with its own independently rebindable variable cell,
// so assignment can rebind a variable to share storage without copying.
func (s *State) AllocateVariableBlock(n int) int {
	if n == 0 {
		return len(s.variables)
	}
	first := -1
	for i := 0; i < n; i++ {
		id := s.newVariable("")
		if first < 0 {
			first = id
		}
	}
	return first
}

func (s *State) newVariable(declaredType string) int {
	id := len(s.variables)
	s.variables = append(s.variables, varCell{address: Uninitialized, declaredType: declaredType})
	return id
}

// GetVarAddress returns the address currently bound to a variable id.
func (s *State) GetVarAddress(varID int) (int, error) {
	if varID < 0 || varID >= len(s.variables) {
		return 0, zerrors.NewRuntimeError("unknown variable id %d", varID)
	}
	return s.variables[varID].address, nil
}

// SetVarAddress rebinds a variable id to point at address, after checking
// the address holds a value compatible with the variable's declared type.
func (s *State) SetVarAddress(varID, address int) error {
	if varID < 0 || varID >= len(s.variables) {
		return zerrors.NewRuntimeError("unknown variable id %d", varID)
	}
	cell := &s.variables[varID]
	if cell.declaredType != "" {
		v, err := s.Recall(address)
		if err != nil {
			return err
		}
		if v.TypeName() != cell.declaredType {
			return zerrors.NewRuntimeError("cannot assign %s to a variable declared %s", v.TypeName(), cell.declaredType)
		}
	}
	cell.address = address
	return nil
}

// Memorize stores v in value memory and returns its address. Booleans and
// integers in [-smallIntBound, smallIntBound) are interned to a stable
// reserved address instead of growing the value-memory store: address 0/1
// for false/true; 2n+2 for n >= 0; -2n+1 for n < 0.
func (s *State) Memorize(v value.Value) int {
	if addr, ok := reservedAddressOf(v); ok {
		return addr
	}
	s.memory = append(s.memory, v)
	return ReservedSize + len(s.memory) - 1
}

func reservedAddressOf(v value.Value) (int, bool) {
	switch val := v.(type) {
	case *value.Boolean:
		if val.Bool() {
			return 1, true
		}
		return 0, true
	case *value.Integer:
		n, ok := val.Int64()
		if !ok || n < -smallIntBound || n >= smallIntBound {
			return 0, false
		}
		if n >= 0 {
			return int(n)*2 + 2, true
		}
		return int(-n)*2 + 1, true
	}
	return 0, false
}

func decodeReserved(address int) (value.Value, bool) {
	switch address {
	case 0:
		return value.NewBoolean(false), true
	case 1:
		return value.NewBoolean(true), true
	}
	if address >= 2 && address%2 == 0 {
		n := (address - 2) / 2
		return value.NewIntegerFromInt64(int64(n)), true
	}
	if address >= 3 && address%2 == 1 {
		n := -((address - 1) / 2)
		return value.NewIntegerFromInt64(int64(n)), true
	}
	return nil, false
}

// Recall returns the value stored at address, or a RuntimeError if address
// is Uninitialized, out of range, or an unmapped reserved address.
func (s *State) Recall(address int) (value.Value, error) {
	if address == Uninitialized {
		return nil, zerrors.NewRuntimeError("trying to get the value of an uninitialized variable")
	}
	if address < ReservedSize {
		if v, ok := decodeReserved(address); ok {
			return v, nil
		}
		return nil, zerrors.NewRuntimeError("reserved address %d has no interned value", address)
	}
	idx := address - ReservedSize
	if idx < 0 || idx >= len(s.memory) {
		return nil, zerrors.NewRuntimeError("address %d is out of range", address)
	}
	return s.memory[idx], nil
}

// GetValue resolves a variable id to its current value, translating the
// uninitialized-read case into the conventional diagnostic.
func (s *State) GetValue(varID int) (value.Value, error) {
	addr, err := s.GetVarAddress(varID)
	if err != nil {
		return nil, err
	}
	return s.Recall(addr)
}

// Dump writes a diagnostic listing of the symbol table, variable cells,
// and value memory, for -debug runs.
func (s *State) Dump(w io.Writer) {
	fmt.Fprintln(w, "symbols:")
	for name, id := range s.symbols {
		fmt.Fprintf(w, "  %s -> v%d\n", name, id)
	}
	fmt.Fprintln(w, "variables:")
	for id, cell := range s.variables {
		fmt.Fprintf(w, "  v%d: address=%d declaredType=%q\n", id, cell.address, cell.declaredType)
	}
	fmt.Fprintln(w, "memory:")
	for i, v := range s.memory {
		fmt.Fprintf(w, "  [%d]: %s\n", ReservedSize+i, v.String())
	}
}
