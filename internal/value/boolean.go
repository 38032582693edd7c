package value

// Boolean is the language's true/false value. The two Boolean instances
// are always reference-distinct wrappers but compare by value; program
// state additionally interns them at reserved addresses 0 and 1, which is
// handled in internal/state, not here.
type Boolean struct {
	v bool
}

var (
	boolTrue  = &Boolean{v: true}
	boolFalse = &Boolean{v: false}
)

// NewBoolean returns the canonical Boolean wrapper for v.
func NewBoolean(v bool) *Boolean {
	if v {
		return boolTrue
	}
	return boolFalse
}

// NewBooleanConstructor is the Boolean(...) constructor invoked from
// source. It accepts a Boolean (copy) or a String whose leading character
// is 't' or 'y' (case-insensitive) for true, anything else for false.
func NewBooleanConstructor(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, constructorArityError("Boolean", len(args))
	}
	switch a := args[0].(type) {
	case *Boolean:
		return NewBoolean(a.v), nil
	case *String:
		text := a.Text()
		if len(text) == 0 {
			return NewBoolean(false), nil
		}
		c := text[0] | 0x20 // lowercase ASCII
		return NewBoolean(c == 't' || c == 'y'), nil
	default:
		return nil, constructorTypeError("Boolean", "Boolean or String", args[0].TypeName())
	}
}

func (b *Boolean) TypeName() string { return "Boolean" }
func (b *Boolean) String() string {
	if b.v {
		return "true"
	}
	return "false"
}

func (b *Boolean) Bool() bool { return b.v }

func (b *Boolean) Binary(op BinOp, rhs Value) (Value, bool, error) {
	other, ok := rhs.(*Boolean)
	switch op {
	case OpAnd:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(b.v && other.v), true, nil
	case OpOr:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(b.v || other.v), true, nil
	case OpEqual:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(b.v == other.v), true, nil
	case OpNotEqual:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(b.v != other.v), true, nil
	}
	return nil, false, nil
}

func (b *Boolean) Unary(op UnOp) (Value, bool, error) {
	if op == OpNot {
		return NewBoolean(!b.v), true, nil
	}
	return nil, false, nil
}
