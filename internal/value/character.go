package value

// Character is a single Unicode code point.
type Character struct {
	r rune
}

// NewCharacter wraps a single code point.
func NewCharacter(r rune) *Character { return &Character{r: r} }

// NewCharacterConstructor is the Character(...) constructor invoked from
// source. It accepts a Character (copy), a String (its first code point),
// or an Integer (the code point it denotes).
func NewCharacterConstructor(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, constructorArityError("Character", len(args))
	}
	switch a := args[0].(type) {
	case *Character:
		return NewCharacter(a.r), nil
	case *String:
		runes := []rune(a.Text())
		if len(runes) == 0 {
			return nil, constructorTypeError("Character", "a non-empty String", "empty String")
		}
		return NewCharacter(runes[0]), nil
	case *Integer:
		n, ok := a.Int64()
		if !ok {
			return nil, constructorTypeError("Character", "an Integer in the Unicode code point range", a.String())
		}
		return NewCharacter(rune(n)), nil
	default:
		return nil, constructorTypeError("Character", "Character, String, or Integer", args[0].TypeName())
	}
}

func (c *Character) TypeName() string { return "Character" }
func (c *Character) String() string   { return string(c.r) }
func (c *Character) Rune() rune       { return c.r }

func (c *Character) Binary(op BinOp, rhs Value) (Value, bool, error) {
	other, ok := rhs.(*Character)
	switch op {
	case OpLessThan:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(c.r < other.r), true, nil
	case OpGreaterThan:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(c.r > other.r), true, nil
	case OpLessThanEqual:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(c.r <= other.r), true, nil
	case OpGreaterThanEqual:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(c.r >= other.r), true, nil
	case OpEqual:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(c.r == other.r), true, nil
	case OpNotEqual:
		if !ok {
			return nil, false, nil
		}
		return NewBoolean(c.r != other.r), true, nil
	}
	return nil, false, nil
}
