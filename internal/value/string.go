package value

// String is a sequence of Unicode code points.
type String struct {
	runes []rune
}

// NewString wraps Go text as a language String.
func NewString(text string) *String { return &String{runes: []rune(text)} }

// NewStringConstructor is the String(...) constructor invoked from source.
// It accepts any single value and renders it via String().
func NewStringConstructor(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, constructorArityError("String", len(args))
	}
	return NewString(args[0].String()), nil
}

func (s *String) TypeName() string { return "String" }
func (s *String) String() string   { return string(s.runes) }
func (s *String) Text() string     { return string(s.runes) }
func (s *String) Len() int         { return len(s.runes) }

func (s *String) Binary(op BinOp, rhs Value) (Value, bool, error) {
	switch op {
	case OpPlus:
		// Concatenation without a separating space; the right-hand side is
		// rendered via its own String() form, so "a" + 1 works too.
		return NewString(s.Text() + rhs.String()), true, nil
	case OpLessThan, OpGreaterThan, OpLessThanEqual, OpGreaterThanEqual, OpEqual, OpNotEqual:
		other, ok := rhs.(*String)
		if !ok {
			return nil, false, nil
		}
		return compareStrings(op, s.Text(), other.Text()), true, nil
	}
	return nil, false, nil
}

// ReverseBinary realizes the source's String.z_rplus: when the left-hand
// operand did not handle "+" but the right-hand operand is a String, the
// left value is stringified and prepended.
func (s *String) ReverseBinary(op BinOp, lhs Value) (Value, bool, error) {
	if op == OpPlus {
		return NewString(lhs.String() + s.Text()), true, nil
	}
	return nil, false, nil
}

func compareStrings(op BinOp, a, b string) Value {
	switch op {
	case OpLessThan:
		return NewBoolean(a < b)
	case OpGreaterThan:
		return NewBoolean(a > b)
	case OpLessThanEqual:
		return NewBoolean(a <= b)
	case OpGreaterThanEqual:
		return NewBoolean(a >= b)
	case OpEqual:
		return NewBoolean(a == b)
	case OpNotEqual:
		return NewBoolean(a != b)
	}
	return NewBoolean(false)
}

// Index implements 1-based subscripting: String[i] yields the i-th
// Character by value (never an lvalue — strings are immutable).
func (s *String) Index(i int) (Value, error) {
	if i < 1 || i > len(s.runes) {
		return nil, errIndexOutOfRange("String", i, len(s.runes))
	}
	return NewCharacter(s.runes[i-1]), nil
}

// Section implements 1-based, inclusive, clamped slicing.
func (s *String) Section(start, stop int) (Value, error) {
	if start < 1 {
		start = 1
	}
	if stop > len(s.runes) {
		stop = len(s.runes)
	}
	if start > stop {
		return NewString(""), nil
	}
	return NewString(string(s.runes[start-1 : stop])), nil
}
