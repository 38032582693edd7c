package eval

import (
	"github.com/shadowCow/zephyr-lang-go/internal/ast"
	"github.com/shadowCow/zephyr-lang-go/internal/value"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// entity is what walking a NameThing (or any expression) produces before
// the caller decides what it needs: a concrete value, an lvalue (a variable
// id a SetStatement/IncStatement/InputStatement/ForStatement can rebind),
// or a bare built-in type reference (meaningful only as a Parentheses
// accessor's base, or an InputStatement's optional type expression). Most
// of the grammar's expression forms always resolve to entityValue; only a
// bare NameThing with no Parentheses accessor can still be entityLValue or
// entityType by the time the evaluator is done with it.
type entity struct {
	kind   entityKind
	val    value.Value
	lvalue int
	typ    *value.Type
}

type entityKind int

const (
	entityValue entityKind = iota
	entityLValue
	entityType
)

// asValue resolves an entity to a concrete value, recalling through program
// state if it is currently an lvalue.
func (e *Evaluator) asValue(ent entity) (value.Value, error) {
	switch ent.kind {
	case entityValue:
		return ent.val, nil
	case entityLValue:
		return e.state.GetValue(ent.lvalue)
	default:
		return nil, zerrors.NewRuntimeError("a type reference cannot be used as a value")
	}
}

// evalValue evaluates node and forces the result to a concrete value.
func (e *Evaluator) evalValue(node *ast.Node) (value.Value, error) {
	ent, err := e.evalEntity(node)
	if err != nil {
		return nil, err
	}
	return e.asValue(ent)
}

// evalLValue evaluates node and requires the result to be an lvalue,
// reporting the "assignment through a non-lvalue" RuntimeError otherwise.
func (e *Evaluator) evalLValue(node *ast.Node) (int, error) {
	ent, err := e.evalEntity(node)
	if err != nil {
		return 0, err
	}
	if ent.kind != entityLValue {
		return 0, zerrors.NewRuntimeError("assignment through a non-lvalue")
	}
	return ent.lvalue, nil
}
