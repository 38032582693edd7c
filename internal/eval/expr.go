package eval

import (
	"strings"

	"github.com/shadowCow/zephyr-lang-go/internal/ast"
	"github.com/shadowCow/zephyr-lang-go/internal/value"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// evalEntity is the general expression walk: every expression form
// bottoms out here, returning an entity rather than a bare value so that a
// NameThing with no Parentheses accessor can still be consumed as an
// lvalue by its caller.
func (e *Evaluator) evalEntity(node *ast.Node) (entity, error) {
	if node.IsLeaf {
		return e.evalLeaf(node)
	}
	switch node.Name {
	case "Expression":
		return e.evalExpression(node)
	case "NameThing":
		return e.evalNameThing(node)
	}
	return entity{}, zerrors.NewRuntimeError("unrecognized AST node %q", node.Name)
}

func (e *Evaluator) evalLeaf(node *ast.Node) (entity, error) {
	switch node.Token.Kind {
	case "Integer":
		v, err := value.NewInteger([]value.Value{value.NewString(node.Token.Value)})
		return wrapValue(v, err)
	case "Boolean":
		v, err := value.NewBooleanConstructor([]value.Value{value.NewString(node.Token.Value)})
		return wrapValue(v, err)
	case "Character":
		return wrapValue(value.NewCharacter(firstRune(stripQuotes(node.Token.Value))), nil)
	case "String":
		return wrapValue(value.NewString(stripQuotes(node.Token.Value)), nil)
	case "Keyword":
		if node.Token.Value == "random" {
			v, err := value.NewRandomFraction(e.rng.Int63n(value.RandomDenominator))
			return wrapValue(v, err)
		}
		return entity{}, zerrors.NewRuntimeError("unrecognized keyword %q", node.Token.Value)
	}
	return entity{}, zerrors.NewRuntimeError("unrecognized leaf token kind %s", node.Token.Kind)
}

func wrapValue(v value.Value, err error) (entity, error) {
	if err != nil {
		return entity{}, err
	}
	return entity{kind: entityValue, val: v}, nil
}

func stripQuotes(text string) string {
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return text
}

func firstRune(text string) rune {
	for _, r := range text {
		return r
	}
	return 0
}

// evalExpression dispatches on arity: 1 child is a passthrough
// (preserving lvalue-ness, so a bare variable reference wrapped in an
// Expression node still works as an assignment target), 2 children is a
// prefix unary application, 3 is an infix binary application.
func (e *Evaluator) evalExpression(node *ast.Node) (entity, error) {
	switch len(node.Children) {
	case 1:
		return e.evalEntity(node.Children[0])
	case 2:
		return e.evalUnary(node.Children[0], node.Children[1])
	case 3:
		return e.evalBinary(node.Children[0], node.Children[1], node.Children[2])
	}
	return entity{}, zerrors.NewRuntimeError("Expression node has unexpected arity %d", len(node.Children))
}

func (e *Evaluator) evalUnary(opNode, operandNode *ast.Node) (entity, error) {
	op, ok := unOpFromText(opNode.Token.Value)
	if !ok {
		return entity{}, zerrors.NewRuntimeError("unrecognized unary operator %q", opNode.Token.Value)
	}
	operand, err := e.evalValue(operandNode)
	if err != nil {
		return entity{}, err
	}
	result, err := value.ApplyUnary(op, operand)
	return wrapValue(result, err)
}

func (e *Evaluator) evalBinary(lhsNode, opNode, rhsNode *ast.Node) (entity, error) {
	op, ok := binOpFromText(opNode.Token.Value)
	if !ok {
		return entity{}, zerrors.NewRuntimeError("unrecognized binary operator %q", opNode.Token.Value)
	}
	// Binary operators are strict: both operands are evaluated before
	// dispatch, regardless of which side ends up handling op.
	lhs, err := e.evalValue(lhsNode)
	if err != nil {
		return entity{}, err
	}
	rhs, err := e.evalValue(rhsNode)
	if err != nil {
		return entity{}, err
	}
	result, err := value.ApplyBinary(op, lhs, rhs)
	return wrapValue(result, err)
}

// binOpTable maps source-text operator spellings onto the operator keys
// the value package dispatches by. "|" is concat (with a space, per its
// built-in default — see value.ApplyBinary). value.OpSpaceConcat has no
// surface spelling here: the regex table defines no "||" operator
// token, so it is never produced by any parse. It is kept as a distinct
// key only so a future second pipe-style spelling could be added without
// widening the value package's dispatch surface.
var binOpTable = map[string]value.BinOp{
	"+":   value.OpPlus,
	"-":   value.OpMinus,
	"*":   value.OpTimes,
	"/":   value.OpDivide,
	"mod": value.OpMod,
	"=":   value.OpEqual,
	"\\=": value.OpNotEqual,
	"<":   value.OpLessThan,
	">":   value.OpGreaterThan,
	"<=":  value.OpLessThanEqual,
	">=":  value.OpGreaterThanEqual,
	"|":   value.OpConcat,
	"and": value.OpAnd,
	"or":  value.OpOr,
}

var unOpTable = map[string]value.UnOp{
	"-":   value.OpNegation,
	"/":   value.OpInverse,
	"not": value.OpNot,
}

func binOpFromText(text string) (value.BinOp, bool) {
	op, ok := binOpTable[text]
	return op, ok
}

func unOpFromText(text string) (value.UnOp, bool) {
	op, ok := unOpTable[text]
	return op, ok
}

// evalNameThing implements the base-name-plus-accessors resolution: the
// base name resolves to either a built-in Type or an lvalue, and each
// subsequent Parentheses/SquareBraces accessor transforms it in turn.
func (e *Evaluator) evalNameThing(node *ast.Node) (entity, error) {
	if len(node.Children) == 0 {
		return entity{}, zerrors.NewRuntimeError("NameThing has no base name")
	}
	base := node.Children[0]
	name := base.Token.Value

	var ent entity
	if typ, ok := value.LookupType(name); ok {
		ent = entity{kind: entityType, typ: typ}
	} else {
		ent = entity{kind: entityLValue, lvalue: e.state.GetVarID(name)}
	}

	for _, accessor := range node.Children[1:] {
		var err error
		ent, err = e.applyAccessor(ent, accessor)
		if err != nil {
			return entity{}, err
		}
	}
	return ent, nil
}

func (e *Evaluator) applyAccessor(ent entity, accessor *ast.Node) (entity, error) {
	switch accessor.Name {
	case "Parentheses":
		return e.applyParentheses(ent, accessor)
	case "SquareBraces":
		return e.applySquareBraces(ent, accessor)
	}
	return entity{}, zerrors.NewRuntimeError("unrecognized accessor %q", accessor.Name)
}

func (e *Evaluator) applyParentheses(ent entity, accessor *ast.Node) (entity, error) {
	if ent.kind != entityType {
		return entity{}, zerrors.NewRuntimeError("cannot call %s as a constructor", entityDesc(ent))
	}
	args := make([]value.Value, 0, len(accessor.Children))
	for _, child := range accessor.Children {
		v, err := e.evalValue(child)
		if err != nil {
			return entity{}, err
		}
		args = append(args, v)
	}
	result, err := ent.typ.Construct(args)
	if err != nil {
		return entity{}, err
	}
	// Array's constructor only requests an allocation; it is the
	// evaluator's job (not value.NewArrayPending's) to actually reserve
	// backing variable cells in program state and stamp their base id.
	if arr, ok := result.(*value.Array); ok && arr.NeedsAllocation() {
		base := e.state.AllocateVariableBlock(arr.Size())
		arr.AssignAddress(base)
	}
	return entity{kind: entityValue, val: result}, nil
}

func (e *Evaluator) applySquareBraces(ent entity, accessor *ast.Node) (entity, error) {
	container, err := e.asValue(ent)
	if err != nil {
		return entity{}, err
	}
	switch len(accessor.Children) {
	case 1:
		idx, err := e.evalIndex(accessor.Children[0])
		if err != nil {
			return entity{}, err
		}
		if addrIndexer, ok := container.(value.AddressIndexer); ok {
			addr, err := addrIndexer.Index(idx)
			if err != nil {
				return entity{}, err
			}
			return entity{kind: entityLValue, lvalue: addr}, nil
		}
		if valIndexer, ok := container.(value.ValueIndexer); ok {
			v, err := valIndexer.Index(idx)
			if err != nil {
				return entity{}, err
			}
			return entity{kind: entityValue, val: v}, nil
		}
		return entity{}, zerrors.NewRuntimeError("%s does not support subscripting", container.TypeName())
	case 2:
		start, err := e.evalIndex(accessor.Children[0])
		if err != nil {
			return entity{}, err
		}
		stop, err := e.evalIndex(accessor.Children[1])
		if err != nil {
			return entity{}, err
		}
		sectioner, ok := container.(value.Sectioner)
		if !ok {
			return entity{}, zerrors.NewRuntimeError("%s does not support sectioning", container.TypeName())
		}
		v, err := sectioner.Section(start, stop)
		if err != nil {
			return entity{}, err
		}
		return entity{kind: entityValue, val: v}, nil
	}
	return entity{}, zerrors.NewRuntimeError("SquareBraces accessor takes one or two arguments")
}

func (e *Evaluator) evalIndex(node *ast.Node) (int, error) {
	v, err := e.evalValue(node)
	if err != nil {
		return 0, err
	}
	i, ok := v.(*value.Integer)
	if !ok {
		return 0, zerrors.NewRuntimeError("subscript must be an Integer, got %s", v.TypeName())
	}
	n, ok := i.Int64()
	if !ok {
		return 0, zerrors.NewRuntimeError("subscript %s is out of range", i.String())
	}
	return int(n), nil
}

func entityDesc(ent entity) string {
	switch ent.kind {
	case entityValue:
		return ent.val.TypeName() + " value"
	case entityLValue:
		return "a variable"
	default:
		return "a type"
	}
}

// renderOutput renders a value for PrintStatement: the Outputter hook, if
// the variant defines one, else the value's own bare textual form.
func renderOutput(v value.Value) string {
	if o, ok := v.(value.Outputter); ok {
		return o.Output()
	}
	return v.String()
}

func joinPrinted(parts []string) string {
	return strings.Join(parts, " ")
}
