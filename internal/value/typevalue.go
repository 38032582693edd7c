package value

import "github.com/pkg/errors"

// Type is a reference to one of the built-in value variants, used as a
// constructor when a NameThing's base name resolves to a type rather than
// a variable (e.g. the "Integer" in `Integer("42")` or `Array(3)`).
type Type struct {
	name        string
	constructor func(args []Value) (Value, error)
}

var builtinTypes = map[string]*Type{
	"Integer":   {name: "Integer", constructor: NewInteger},
	"Fraction":  {name: "Fraction", constructor: NewFraction},
	"Boolean":   {name: "Boolean", constructor: NewBooleanConstructor},
	"Character": {name: "Character", constructor: NewCharacterConstructor},
	"String":    {name: "String", constructor: NewStringConstructor},
	"Array":     {name: "Array", constructor: NewArrayPending},
}

// LookupType reports the built-in Type named by a NameThing base name, if
// any. Evaluators use this to decide whether a bare name is a constructor
// reference or a variable lookup.
func LookupType(name string) (*Type, bool) {
	t, ok := builtinTypes[name]
	return t, ok
}

func (t *Type) TypeName() string { return "Type" }
func (t *Type) String() string   { return t.name }

// Construct builds a new value of this type from evaluated constructor
// arguments.
func (t *Type) Construct(args []Value) (Value, error) {
	v, err := t.constructor(args)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return v, nil
}
