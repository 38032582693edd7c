package value

import (
	"math/big"

	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// Fraction is an exact rational value. By invariant its denominator is
// always > 1 in lowest terms with a positive sign; any Fraction whose
// reduced denominator is 1 is represented as an Integer instead (see
// newFraction).
type Fraction struct {
	r *big.Rat
}

// newFraction builds a normalized Fraction from a numerator/denominator
// pair, or the equivalent Integer if the reduced denominator is 1. It is
// the single choke point every arithmetic result and constructor funnels
// through, so the "denominator collapses to Integer" invariant cannot be
// bypassed.
func newFraction(num, den *big.Int) (Value, error) {
	if den.Sign() == 0 {
		return nil, ErrZeroDivisor
	}
	r := new(big.Rat).SetFrac(num, den)
	if r.IsInt() {
		return NewIntegerFromBigInt(new(big.Int).Set(r.Num())), nil
	}
	return &Fraction{r: r}, nil
}

// NewFraction is the Fraction(...) constructor invoked from source. It
// accepts two Integer arguments (numerator, denominator) or a single
// String of the form "a/b".
func NewFraction(args []Value) (Value, error) {
	switch len(args) {
	case 1:
		s, ok := args[0].(*String)
		if !ok {
			return nil, zerrors.NewConstructorError("Fraction", "a String of the form \"a/b\", or two Integers", args[0].TypeName())
		}
		num, den, err := parseFractionText(s.Text())
		if err != nil {
			return nil, err
		}
		return newFraction(num, den)
	case 2:
		numI, ok1 := args[0].(*Integer)
		denI, ok2 := args[1].(*Integer)
		if !ok1 || !ok2 {
			return nil, zerrors.NewConstructorError("Fraction", "two Integers", "non-Integer argument")
		}
		return newFraction(numI.v, denI.v)
	default:
		return nil, zerrors.NewConstructorError("Fraction", "one or two arguments", argCountDesc(len(args)))
	}
}

func parseFractionText(text string) (num, den *big.Int, err error) {
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, nil, zerrors.NewConstructorError("Fraction", "a string of the form \"a/b\"", text)
	}
	return r.Num(), r.Denom(), nil
}

// RandomDenominator is the fixed denominator of the "random" keyword's
// result: a highly composite number chosen to yield "nice" sub-denominators
// after reduction.
const RandomDenominator = 12252240

// NewRandomFraction builds the "random" keyword's result from a numerator
// uniformly drawn from [0, RandomDenominator) by the caller.
func NewRandomFraction(numerator int64) (Value, error) {
	return newFraction(big.NewInt(numerator), big.NewInt(RandomDenominator))
}

func (f *Fraction) TypeName() string { return "Fraction" }
func (f *Fraction) String() string   { return f.r.Num().String() + "/" + f.r.Denom().String() }

func (f *Fraction) Sgn() int { return f.r.Sign() }

func (f *Fraction) truncate() Value {
	q := new(big.Int).Quo(f.r.Num(), f.r.Denom()) // Quo truncates toward zero
	return NewIntegerFromBigInt(q)
}

func (f *Fraction) Binary(op BinOp, rhs Value) (Value, bool, error) { return numberBinary(f, op, rhs) }
func (f *Fraction) ReverseBinary(op BinOp, lhs Value) (Value, bool, error) {
	return numberReverse(f, op, lhs)
}
func (f *Fraction) Unary(op UnOp) (Value, bool, error) { return numberUnary(f, op) }

func (f *Fraction) asRat(rhs Value) (*big.Rat, bool) {
	switch other := rhs.(type) {
	case *Fraction:
		return other.r, true
	case *Integer:
		return ratFromInt(other.v), true
	}
	return nil, false
}

func (f *Fraction) plusForward(rhs Value) (Value, bool) {
	other, ok := f.asRat(rhs)
	if !ok {
		return nil, false
	}
	sum := new(big.Rat).Add(f.r, other)
	v, _ := newFraction(sum.Num(), sum.Denom())
	return v, true
}

func (f *Fraction) timesForward(rhs Value) (Value, bool) {
	other, ok := f.asRat(rhs)
	if !ok {
		return nil, false
	}
	prod := new(big.Rat).Mul(f.r, other)
	v, _ := newFraction(prod.Num(), prod.Denom())
	return v, true
}

func (f *Fraction) lessThanForward(rhs Value) (bool, bool) {
	other, ok := f.asRat(rhs)
	if !ok {
		return false, false
	}
	return f.r.Cmp(other) < 0, true
}

func (f *Fraction) equalForward(rhs Value) (bool, bool) {
	switch rhs.(type) {
	case *Fraction, *Integer:
		other, _ := f.asRat(rhs)
		return f.r.Cmp(other) == 0, true
	}
	return false, false
}

func (f *Fraction) negation() Value {
	neg := new(big.Rat).Neg(f.r)
	v, _ := newFraction(neg.Num(), neg.Denom())
	return v
}

func (f *Fraction) inverse() (Value, error) {
	return newFraction(f.r.Denom(), f.r.Num())
}

func (f *Fraction) modForward(rhs Value) (Value, bool, error) {
	other, ok := f.asRat(rhs)
	if !ok {
		return nil, false, nil
	}
	if other.Sign() == 0 {
		return nil, true, ErrZeroDivisor
	}
	// a mod b = a - b*floor(a/b). Unlike Integer.modForward (which uses
	// big.Int.Mod, always non-negative, and needs an explicit tweak to take
	// b's sign), floorQ here already rounds toward -Inf for either sign of
	// b, so the remainder already carries b's sign with no further
	// correction.
	q := new(big.Rat).Quo(f.r, other)
	floorQ := new(big.Int).Div(q.Num(), q.Denom())
	rem := new(big.Rat).Sub(f.r, new(big.Rat).Mul(other, ratFromInt(floorQ)))
	v, _ := newFraction(rem.Num(), rem.Denom())
	return v, true, nil
}
