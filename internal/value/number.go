package value

// Number is the shared contract behind Integer and Fraction. It exposes the
// small set of operations each numeric variant must define directly
// (plus, times, less-than, negation, inverse, mod, equal); every
// other arithmetic operator (minus, divide, greater-than, the two
// not-strictly-less comparisons, and both reverse variants of the
// asymmetric operators) is derived generically from these by numberBinary
// and numberReverse below, mirroring the source's ZNumber base class.
type Number interface {
	Value
	plusForward(rhs Value) (Value, bool)
	timesForward(rhs Value) (Value, bool)
	lessThanForward(rhs Value) (result bool, accepted bool)
	equalForward(rhs Value) (equal bool, accepted bool)
	negation() Value
	inverse() (Value, error)
	modForward(rhs Value) (Value, bool, error)
}

// numberBinary derives the full binary operator surface for a Number from
// its seven abstract hooks. It is shared by Integer.Binary and
// Fraction.Binary.
func numberBinary(n Number, op BinOp, rhs Value) (Value, bool, error) {
	switch op {
	case OpPlus:
		v, ok := n.plusForward(rhs)
		return v, ok, nil

	case OpTimes:
		v, ok := n.timesForward(rhs)
		return v, ok, nil

	case OpMinus:
		rn, ok := rhs.(Number)
		if !ok {
			return nil, false, nil
		}
		negNum, ok := rn.negation().(Number)
		if !ok {
			return nil, false, nil
		}
		v, ok := n.plusForward(negNum)
		return v, ok, nil

	case OpDivide:
		rn, ok := rhs.(Number)
		if !ok {
			return nil, false, nil
		}
		inv, err := rn.inverse()
		if err != nil {
			return nil, true, err
		}
		v, ok := n.timesForward(inv)
		return v, ok, nil

	case OpMod:
		return n.modForward(rhs)

	case OpLessThan:
		res, ok := n.lessThanForward(rhs)
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(res), true, nil

	case OpGreaterThan:
		lt, ok := n.lessThanForward(rhs)
		if !ok {
			return nil, false, nil
		}
		eq, _ := n.equalForward(rhs)
		return NewBoolean(!(lt || eq)), true, nil

	case OpLessThanEqual:
		lt, ok := n.lessThanForward(rhs)
		if !ok {
			return nil, false, nil
		}
		eq, _ := n.equalForward(rhs)
		return NewBoolean(lt || eq), true, nil

	case OpGreaterThanEqual:
		lt, ok := n.lessThanForward(rhs)
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(!lt), true, nil

	case OpEqual:
		eq, ok := n.equalForward(rhs)
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(eq), true, nil

	case OpNotEqual:
		eq, ok := n.equalForward(rhs)
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(!eq), true, nil
	}
	return nil, false, nil
}

// numberReverse derives the reverse-operator surface: it is invoked when a
// Number appears on the right-hand side of an operator its left-hand
// operand did not handle. Commutative and comparison operators simply
// re-dispatch forward with operands swapped; minus and divide use the
// source's "rminus"/"rdivide" identities (rhs.negation()+lhs,
// rhs.inverse()*lhs).
func numberReverse(n Number, op BinOp, lhs Value) (Value, bool, error) {
	switch op {
	case OpPlus, OpTimes, OpEqual, OpNotEqual, OpLessThan, OpGreaterThan, OpLessThanEqual, OpGreaterThanEqual:
		return numberBinary(n, op, lhs)

	case OpMinus:
		negNum, ok := n.negation().(Number)
		if !ok {
			return nil, false, nil
		}
		return numberBinary(negNum, OpPlus, lhs)

	case OpDivide:
		inv, err := n.inverse()
		if err != nil {
			return nil, true, err
		}
		invNum, ok := inv.(Number)
		if !ok {
			return nil, false, nil
		}
		return numberBinary(invNum, OpTimes, lhs)
	}
	return nil, false, nil
}

func numberUnary(n Number, op UnOp) (Value, bool, error) {
	switch op {
	case OpNegation:
		return n.negation(), true, nil
	case OpInverse:
		v, err := n.inverse()
		return v, true, err
	}
	return nil, false, nil
}
