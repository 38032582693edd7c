// Package value implements the interpreter's runtime value system: Integer,
// Fraction, Boolean, Character, String, Array, and Type, together with the
// named-operator-hook dispatch (with reverse-operator fallback) that the
// evaluator drives.
package value

// Value is satisfied by every runtime value variant. TypeName identifies the
// variant for error messages and for Type-based dispatch ("Integer",
// "Fraction", "Boolean", "Character", "String", "Array"); String renders the
// value's bare textual form (no debug quoting).
type Value interface {
	TypeName() string
	String() string
}

// Outputter lets a variant override how PrintStatement renders it, mirroring
// the source interpreter's optional z_output hook. No built-in variant
// defines one today; the seam exists for future variants.
type Outputter interface {
	Output() string
}

// BinOp names a binary operator key. Operator keys are the vocabulary the
// evaluator uses to address a hook; they are independent of the concrete
// source-text spelling (e.g. both "\=" and "mod" map onto keys here).
type BinOp string

const (
	OpPlus             BinOp = "plus"
	OpMinus            BinOp = "minus"
	OpTimes            BinOp = "times"
	OpDivide           BinOp = "divide"
	OpMod              BinOp = "mod"
	OpEqual            BinOp = "equal"
	OpNotEqual         BinOp = "notEqual"
	OpLessThan         BinOp = "lessThan"
	OpGreaterThan      BinOp = "greaterThan"
	OpLessThanEqual    BinOp = "lessThanEqual"
	OpGreaterThanEqual BinOp = "greaterThanEqual"
	OpConcat           BinOp = "concat"
	OpSpaceConcat      BinOp = "spaceConcat"
	OpAnd              BinOp = "and"
	OpOr               BinOp = "or"
)

// UnOp names a unary operator key.
type UnOp string

const (
	OpNegation UnOp = "negation"
	OpInverse  UnOp = "inverse"
	OpNot      UnOp = "not"
)

// reverseOf holds the explicit symmetric-operator reverse mapping.
// Asymmetric operators (plus, minus, times, divide, concat,
// spaceConcat, and, or) are not listed here; ApplyBinary passes those
// unchanged to the right operand's own ReverseBinary method instead of a
// table lookup, since the generic "r-variant" convention is expressed as Go
// methods rather than string-munged names.
var reverseOf = map[BinOp]BinOp{
	OpEqual:            OpEqual,
	OpNotEqual:         OpNotEqual,
	OpLessThan:         OpGreaterThan,
	OpGreaterThan:      OpLessThan,
	OpLessThanEqual:    OpGreaterThanEqual,
	OpGreaterThanEqual: OpLessThanEqual,
}

// Reverser is implemented by any value that accepts a binary operator when
// it appears on the right-hand side of an expression whose left-hand side
// did not handle the operator forward: the reverse-operator fallback.
type Reverser interface {
	ReverseBinary(op BinOp, lhs Value) (Value, bool, error)
}

// Binarier is implemented by any value that can appear as the left operand
// of a binary operator.
type Binarier interface {
	Binary(op BinOp, rhs Value) (Value, bool, error)
}

// Unarier is implemented by any value that can appear as the operand of a
// unary operator.
type Unarier interface {
	Unary(op UnOp) (Value, bool, error)
}

// ValueIndexer is implemented by containers whose subscript yields a fresh
// value rather than a storage address — String's one-based indexing.
type ValueIndexer interface {
	Index(i int) (Value, error)
}

// AddressIndexer is implemented by containers whose subscript yields an
// lvalue (a program-state variable id) rather than a value — Array's one-based
// indexing, which is what makes `set a[i] to x` possible.
type AddressIndexer interface {
	Index(i int) (int, error)
}

// Sectioner is implemented by containers that support the two-argument
// SquareBraces accessor (an inclusive, clamped, one-based range section).
type Sectioner interface {
	Section(start, stop int) (Value, error)
}
