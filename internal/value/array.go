package value

import "strconv"

// Array is a fixed-size, contiguously allocated sequence. Its constructor
// is special: Array(n) does not itself hold values — it requests n
// contiguous *variable cells* from program state (not value-memory slots
// directly) and records only the size and the base variable id those
// cells start at. Backing each element by its own variable cell, rather
// than a raw memory address, is what lets `set a[i] to x` rebind an
// element's storage the same way assigning to a named variable does,
// without requiring value memory itself to support in-place mutation.
// Indexing then yields variable ids (lvalues), not values.
type Array struct {
	size   int
	baseID int // -1 until AssignAddress is called
}

// NewArrayPending is the Array(...) constructor invoked from source. It
// accepts a single Integer size and returns an Array with no backing
// variable cells assigned yet; the evaluator is responsible for allocating
// size contiguous variable cells in program state and calling
// AssignAddress with the first one's id.
func NewArrayPending(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, constructorArityError("Array", len(args))
	}
	n, ok := args[0].(*Integer)
	if !ok {
		return nil, constructorTypeError("Array", "an Integer size", args[0].TypeName())
	}
	size, ok := n.Int64()
	if !ok || size < 0 {
		return nil, constructorTypeError("Array", "a non-negative Integer size", n.String())
	}
	return &Array{size: int(size), baseID: -1}, nil
}

func (a *Array) TypeName() string { return "Array" }
func (a *Array) String() string {
	return "Array(" + strconv.Itoa(a.size) + ")"
}

// DebugString matches the source interpreter's debug repr form,
// Array(size,vBaseID).
func (a *Array) DebugString() string {
	return "Array(" + strconv.Itoa(a.size) + ",v" + strconv.Itoa(a.baseID) + ")"
}

func (a *Array) Size() int    { return a.size }
func (a *Array) Address() int { return a.baseID }

// NeedsAllocation reports whether this Array has not yet been backed by
// variable cells.
func (a *Array) NeedsAllocation() bool { return a.baseID < 0 }

// AssignAddress stamps the base variable id of this Array's backing
// cells, once program state has allocated them.
func (a *Array) AssignAddress(baseID int) { a.baseID = baseID }

// Index implements 1-based subscripting: Array[i] yields the *variable id*
// of the i-th element (an lvalue), not its current value.
func (a *Array) Index(i int) (int, error) {
	if i < 1 || i > a.size {
		return 0, errIndexOutOfRange("Array", i, a.size)
	}
	return a.baseID + i - 1, nil
}
