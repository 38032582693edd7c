package value

import (
	"math/big"
	"strings"

	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// Integer is an exact, arbitrary-precision signed integer value.
type Integer struct {
	v *big.Int
}

// NewIntegerFromInt64 builds an Integer from a host int64, the common case
// for interpreter-internal constants (e.g. the interning range, loop step).
func NewIntegerFromInt64(n int64) *Integer {
	return &Integer{v: big.NewInt(n)}
}

// NewIntegerFromBigInt takes ownership of v; callers must not mutate v
// afterward.
func NewIntegerFromBigInt(v *big.Int) *Integer {
	return &Integer{v: v}
}

// NewInteger is the Integer(...) constructor invoked from source via a
// Parentheses accessor on the built-in Integer type. It accepts a single
// argument: a String (parsed as decimal text), an Integer (copied), or a
// Fraction (truncated toward zero).
func NewInteger(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, zerrors.NewConstructorError("Integer", "exactly one argument", argCountDesc(len(args)))
	}
	switch a := args[0].(type) {
	case *Integer:
		return NewIntegerFromBigInt(new(big.Int).Set(a.v)), nil
	case *Fraction:
		return a.truncate(), nil
	case *String:
		text := strings.TrimSpace(a.Text())
		n, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, zerrors.NewConstructorError("Integer", "a decimal string", a.TypeName())
		}
		return NewIntegerFromBigInt(n), nil
	default:
		return nil, zerrors.NewConstructorError("Integer", "Integer, Fraction, or String", args[0].TypeName())
	}
}

func (i *Integer) TypeName() string { return "Integer" }
func (i *Integer) String() string   { return i.v.String() }

// BigInt exposes the underlying arbitrary-precision integer; callers must
// not mutate it. Callers that need a host int use Int64.
func (i *Integer) BigInt() *big.Int { return i.v }

// Int64 reports the value truncated to a host int64, with ok=false if it
// does not fit — used for array sizes and subscripts, which are bounded by
// available memory in practice.
func (i *Integer) Int64() (int64, bool) {
	if !i.v.IsInt64() {
		return 0, false
	}
	return i.v.Int64(), true
}

func (i *Integer) Sgn() int { return i.v.Sign() }

func (i *Integer) Binary(op BinOp, rhs Value) (Value, bool, error) { return numberBinary(i, op, rhs) }
func (i *Integer) ReverseBinary(op BinOp, lhs Value) (Value, bool, error) {
	return numberReverse(i, op, lhs)
}
func (i *Integer) Unary(op UnOp) (Value, bool, error) { return numberUnary(i, op) }

func (i *Integer) plusForward(rhs Value) (Value, bool) {
	other, ok := rhs.(*Integer)
	if !ok {
		return nil, false
	}
	return NewIntegerFromBigInt(new(big.Int).Add(i.v, other.v)), true
}

func (i *Integer) timesForward(rhs Value) (Value, bool) {
	other, ok := rhs.(*Integer)
	if !ok {
		return nil, false
	}
	return NewIntegerFromBigInt(new(big.Int).Mul(i.v, other.v)), true
}

func (i *Integer) lessThanForward(rhs Value) (bool, bool) {
	switch other := rhs.(type) {
	case *Integer:
		return i.v.Cmp(other.v) < 0, true
	case *Fraction:
		return ratFromInt(i.v).Cmp(other.r) < 0, true
	}
	return false, false
}

func (i *Integer) equalForward(rhs Value) (bool, bool) {
	switch other := rhs.(type) {
	case *Integer:
		return i.v.Cmp(other.v) == 0, true
	case *Fraction:
		return false, true // Fraction values are never integral by invariant
	}
	return false, false
}

func (i *Integer) negation() Value {
	return NewIntegerFromBigInt(new(big.Int).Neg(i.v))
}

func (i *Integer) inverse() (Value, error) {
	return newFraction(big.NewInt(1), i.v)
}

func (i *Integer) modForward(rhs Value) (Value, bool, error) {
	other, ok := rhs.(*Integer)
	if !ok {
		return nil, false, nil
	}
	if other.v.Sign() == 0 {
		return nil, true, ErrZeroDivisor
	}
	m := new(big.Int).Mod(i.v, other.v) // Go's Mod already yields a non-negative result in [0, |m|)
	if other.v.Sign() < 0 && m.Sign() != 0 {
		m.Add(m, other.v)
	}
	return NewIntegerFromBigInt(m), true, nil
}

func ratFromInt(v *big.Int) *big.Rat {
	return new(big.Rat).SetInt(v)
}

func argCountDesc(n int) string {
	if n == 0 {
		return "no arguments"
	}
	return "more than one argument"
}
