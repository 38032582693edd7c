package value

import "github.com/pkg/errors"

// ErrZeroDivisor is returned by a Number's Divide/Inverse/Mod implementation
// when the right-hand operand (or the value itself, for Inverse) is zero.
// ApplyBinary/ApplyUnary translate it into the conventional "Attempting to
// take X op 0" diagnostic; callers outside this package should not need to
// compare against it directly.
var ErrZeroDivisor = errors.New("zero divisor")

// ApplyBinary implements a two-phase dispatch: try the operator
// forward on lhs, then the reverse operator on rhs, then fail. Equality and
// inequality are special: comparing across variants that neither side
// handles is not an error — it always yields a language Boolean (false for
// equal, true for notEqual).
func ApplyBinary(op BinOp, lhs, rhs Value) (Value, error) {
	if b, ok := lhs.(Binarier); ok {
		if result, handled, err := b.Binary(op, rhs); handled {
			if err != nil {
				return nil, wrapZeroDivisor(err, op, lhs, rhs)
			}
			return result, nil
		}
	}

	revOp := op
	if mapped, ok := reverseOf[op]; ok {
		revOp = mapped
	}
	if r, ok := rhs.(Reverser); ok {
		if result, handled, err := r.ReverseBinary(revOp, lhs); handled {
			if err != nil {
				return nil, wrapZeroDivisor(err, op, lhs, rhs)
			}
			return result, nil
		}
	}

	switch op {
	case OpEqual:
		return NewBoolean(false), nil
	case OpNotEqual:
		return NewBoolean(true), nil
	case OpConcat, OpSpaceConcat:
		// Every value supports concat/spaceConcat by falling back to its
		// own textual form joined by a single space, mirroring the base
		// object behavior every built-in variant inherits unless it
		// overrides Binary for these keys itself.
		return NewString(lhs.String() + " " + rhs.String()), nil
	}

	return nil, errors.Errorf("wrong operand types for %s: %s and %s", op, lhs.TypeName(), rhs.TypeName())
}

// ApplyUnary implements unary operator dispatch: negation, inverse, not.
func ApplyUnary(op UnOp, operand Value) (Value, error) {
	if u, ok := operand.(Unarier); ok {
		if result, handled, err := u.Unary(op); handled {
			if err != nil {
				return nil, errors.Errorf("attempting to apply unary %s to 0", op)
			}
			return result, nil
		}
	}
	return nil, errors.Errorf("wrong operand type for unary %s: %s", op, operand.TypeName())
}

func wrapZeroDivisor(err error, op BinOp, lhs, rhs Value) error {
	if errors.Is(err, ErrZeroDivisor) {
		return errors.Errorf("attempting to take %s %s 0", lhs.TypeName(), op)
	}
	return err
}
