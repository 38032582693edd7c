package eval

import (
	"github.com/shadowCow/zephyr-lang-go/internal/ast"
	"github.com/shadowCow/zephyr-lang-go/internal/value"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// execute dispatches on the node's name to the matching statement handler.
func (e *Evaluator) execute(node *ast.Node) error {
	switch node.Name {
	case "Program":
		return e.execProgram(node)
	case "Block":
		return e.execBlock(node)
	case "PrintStatement":
		return e.execPrint(node)
	case "SetStatement":
		return e.execSet(node)
	case "IncStatement":
		return e.execInc(node)
	case "InputStatement":
		return e.execInput(node)
	case "WhileStatement":
		return e.execWhile(node)
	case "ForStatement":
		return e.execFor(node)
	case "IfStatement":
		return e.execIf(node)
	}
	return zerrors.NewRuntimeError("unrecognized AST node %q", node.Name)
}

func (e *Evaluator) execProgram(node *ast.Node) error {
	if len(node.Children) != 1 {
		return zerrors.NewRuntimeError("Program node must have exactly one Block child")
	}
	return e.execute(node.Children[0])
}

func (e *Evaluator) execBlock(node *ast.Node) error {
	for _, stmt := range node.Children {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execPrint evaluates each expression child, joins the rendered results
// with a single space, and terminates with a newline — unless the last
// child is the literal "..." symbol, in which case the trailing space is
// kept and the newline is withheld.
func (e *Evaluator) execPrint(node *ast.Node) error {
	children := node.Children
	suppressNewline := false
	if n := len(children); n > 0 && children[n-1].IsLeaf && children[n-1].Token.Value == "..." {
		suppressNewline = true
		children = children[:n-1]
	}

	parts := make([]string, 0, len(children))
	for _, child := range children {
		v, err := e.evalValue(child)
		if err != nil {
			return err
		}
		parts = append(parts, renderOutput(v))
	}

	text := joinPrinted(parts)
	if suppressNewline {
		text += " "
	} else {
		text += "\n"
	}
	return e.io.Write(text)
}

// execSet implements assign-by-reference vs assign-by-value: if the
// right-hand side is itself an lvalue, the target is rebound to share its
// address; otherwise the evaluated value is memorized into a fresh slot and
// the target is bound to that.
func (e *Evaluator) execSet(node *ast.Node) error {
	if len(node.Children) != 2 {
		return zerrors.NewRuntimeError("SetStatement must have exactly two children")
	}
	target, err := e.evalLValue(node.Children[0])
	if err != nil {
		return err
	}
	rhs, err := e.evalEntity(node.Children[1])
	if err != nil {
		return err
	}
	var addr int
	switch rhs.kind {
	case entityLValue:
		addr, err = e.state.GetVarAddress(rhs.lvalue)
		if err != nil {
			return err
		}
	case entityValue:
		addr = e.state.Memorize(rhs.val)
	default:
		return zerrors.NewRuntimeError("cannot assign a type reference to a variable")
	}
	return e.state.SetVarAddress(target, addr)
}

// execInc replaces the target's value with value + 1, dispatched through
// the ordinary "plus" operator hook — so incrementing anything that does
// not accept an Integer operand (a Character, say) fails with the same
// RuntimeError an explicit `x + 1` would.
func (e *Evaluator) execInc(node *ast.Node) error {
	if len(node.Children) != 1 {
		return zerrors.NewRuntimeError("IncStatement must have exactly one child")
	}
	target, err := e.evalLValue(node.Children[0])
	if err != nil {
		return err
	}
	current, err := e.state.GetValue(target)
	if err != nil {
		return err
	}
	next, err := value.ApplyBinary(value.OpPlus, current, value.NewIntegerFromInt64(1))
	if err != nil {
		return err
	}
	return e.state.SetVarAddress(target, e.state.Memorize(next))
}

// execInput reads one line from host input and constructs a value of the
// requested type (String if none given), then assigns it to the target.
func (e *Evaluator) execInput(node *ast.Node) error {
	if len(node.Children) < 1 || len(node.Children) > 2 {
		return zerrors.NewRuntimeError("InputStatement must have one or two children")
	}
	target, err := e.evalLValue(node.Children[0])
	if err != nil {
		return err
	}

	typ, ok := value.LookupType("String")
	if !ok {
		return zerrors.NewRuntimeError("no built-in String type registered")
	}
	if len(node.Children) == 2 {
		ent, err := e.evalEntity(node.Children[1])
		if err != nil {
			return err
		}
		if ent.kind != entityType {
			return zerrors.NewRuntimeError("InputStatement's type expression must name a built-in type")
		}
		typ = ent.typ
	}

	line, err := e.io.ReadLine()
	if err != nil {
		return zerrors.WrapRuntimeError(err, "reading input")
	}
	v, err := typ.Construct([]value.Value{value.NewString(line)})
	if err != nil {
		return err
	}
	return e.state.SetVarAddress(target, e.state.Memorize(v))
}

func (e *Evaluator) execWhile(node *ast.Node) error {
	if len(node.Children) != 2 {
		return zerrors.NewRuntimeError("WhileStatement must have exactly two children")
	}
	cond, block := node.Children[0], node.Children[1]
	for {
		v, err := e.evalValue(cond)
		if err != nil {
			return err
		}
		b, ok := v.(*value.Boolean)
		if !ok {
			return zerrors.NewRuntimeError("while condition must be Boolean, got %s", v.TypeName())
		}
		if !b.Bool() {
			return nil
		}
		if err := e.execute(block); err != nil {
			return err
		}
	}
}

// execFor desugars `for lvalue from start to finish do block end` into
// `lvalue := start; while lvalue <= finish { block; lvalue := lvalue + 1 }`,
// a fixed `<=`/+1 step (no descending ranges or custom step sizes).
func (e *Evaluator) execFor(node *ast.Node) error {
	if len(node.Children) != 4 {
		return zerrors.NewRuntimeError("ForStatement must have exactly four children")
	}
	target, err := e.evalLValue(node.Children[0])
	if err != nil {
		return err
	}
	start, err := e.evalValue(node.Children[1])
	if err != nil {
		return err
	}
	finish, err := e.evalValue(node.Children[2])
	if err != nil {
		return err
	}
	block := node.Children[3]

	if err := e.state.SetVarAddress(target, e.state.Memorize(start)); err != nil {
		return err
	}
	one := value.NewIntegerFromInt64(1)
	for {
		cur, err := e.state.GetValue(target)
		if err != nil {
			return err
		}
		cmp, err := value.ApplyBinary(value.OpLessThanEqual, cur, finish)
		if err != nil {
			return err
		}
		b, ok := cmp.(*value.Boolean)
		if !ok {
			return zerrors.NewRuntimeError("for-loop bound comparison did not yield a Boolean")
		}
		if !b.Bool() {
			return nil
		}
		if err := e.execute(block); err != nil {
			return err
		}
		cur, err = e.state.GetValue(target)
		if err != nil {
			return err
		}
		next, err := value.ApplyBinary(value.OpPlus, cur, one)
		if err != nil {
			return err
		}
		if err := e.state.SetVarAddress(target, e.state.Memorize(next)); err != nil {
			return err
		}
	}
}

// execIf walks (condition, block) pairs in order, executing the first
// branch whose condition is true; a trailing unpaired Block, if present, is
// the else branch.
func (e *Evaluator) execIf(node *ast.Node) error {
	children := node.Children
	i := 0
	for i+1 < len(children) {
		cond, block := children[i], children[i+1]
		v, err := e.evalValue(cond)
		if err != nil {
			return err
		}
		b, ok := v.(*value.Boolean)
		if !ok {
			return zerrors.NewRuntimeError("if condition must be Boolean, got %s", v.TypeName())
		}
		if b.Bool() {
			return e.execute(block)
		}
		i += 2
	}
	if i < len(children) {
		return e.execute(children[i])
	}
	return nil
}
