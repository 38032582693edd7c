package parser

import (
	"github.com/shadowCow/zephyr-lang-go/internal/ast"
	"github.com/shadowCow/zephyr-lang-go/internal/token"
	"github.com/shadowCow/zephyr-lang-go/internal/zerrors"
)

// Expression and NameThing are the two nonterminal names the grammar
// declares only as stubs (see internal/langdef/grammar.bnf): the table-driven
// engine in parser.go never walks their productions. Instead parseNonterm
// recognizes these two names and delegates here, to a hand-written
// precedence-climbing descent that builds finalized *ast.Node values
// directly. This sidesteps the awkward fit between the grammar's uniform,
// arity-driven "Expression" node and the transparent right-recursive tiers a
// pure BNF encoding of operator precedence would otherwise need — every
// tier would flatten into a variable-arity sibling list instead of the
// binary/unary pairs the evaluator expects, and every tier would need its
// own nonterminal name, conflicting with the single shared "Expression" name
// the AST requires.

// precedenceLevel is one tier of binary operators, weakest-binds-first.
type precedenceLevel struct {
	ops []string
}

// precedenceLevels lists binary-operator tiers from loosest to tightest
// binding. All levels are left-associative.
var precedenceLevels = []precedenceLevel{
	{ops: []string{"or"}},
	{ops: []string{"and"}},
	{ops: []string{"=", "\\=", "<", ">", "<=", ">="}},
	{ops: []string{"|"}},
	{ops: []string{"+", "-"}},
	{ops: []string{"*", "/", "mod"}},
}

var unaryOps = map[string]bool{"-": true, "/": true, "not": true}

// isOperatorToken reports whether tok's kind could spell a binary or unary
// operator: an Operator-kind token (the symbolic spellings) or any
// Keyword-kind token (the word-spelled operators "mod", "and", "or", "not"
// are keywords). Callers check the text against the operator tables.
func isOperatorToken(tok token.Token) bool {
	return tok.Kind == token.Operator || tok.Kind == token.Keyword
}

func containsOp(ops []string, text string) bool {
	for _, op := range ops {
		if op == text {
			return true
		}
	}
	return false
}

// parseExpression parses a full expression at the loosest precedence tier
// and returns a finalized "Expression" node of arity 1 (passthrough, which
// preserves lvalue-ness for a bare NameThing), 2 (unary), or 3 (binary).
func (p *Parser) parseExpression() (*ast.Node, error) {
	return p.parseLevel(0)
}

func (p *Parser) parseLevel(level int) (*ast.Node, error) {
	if level >= len(precedenceLevels) {
		return p.parseUnary()
	}
	lhs, err := p.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		la := p.feeder.peek()
		if !isOperatorToken(la) || !containsOp(precedenceLevels[level].ops, la.Value) {
			return lhs, nil
		}
		opTok, err := p.matchOperator(la.Value)
		if err != nil {
			return nil, err
		}
		rhs, err := p.parseLevel(level + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.Node{Name: "Expression", Children: []*ast.Node{lhs, opTok, rhs}}
	}
}

func (p *Parser) parseUnary() (*ast.Node, error) {
	la := p.feeder.peek()
	if isOperatorToken(la) && unaryOps[la.Value] {
		opTok, err := p.matchOperator(la.Value)
		if err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Node{Name: "Expression", Children: []*ast.Node{opTok, operand}}, nil
	}
	return p.parsePrimary()
}

// matchOperator consumes the current token (known already to be an operator
// spelling) and wraps it as a Leaf, matching either by its Operator kind or,
// for word-spelled operators, by its literal text.
func (p *Parser) matchOperator(text string) (*ast.Node, error) {
	la := p.feeder.peek()
	var tok token.Token
	var err error
	if la.Kind == token.Operator {
		tok, err = p.feeder.matchKind(token.Operator)
	} else {
		tok, err = p.feeder.matchValue(text)
	}
	if err != nil {
		return nil, err
	}
	return ast.Leaf(astToken(tok)), nil
}

// parsePrimary parses one unit of the innermost precedence tier: a
// parenthesized sub-expression, the "random" keyword, a literal, or a
// NameThing. A primary always produces an arity-1 "Expression" node wrapping
// its single child, so parseLevel's recursion always has an "Expression"
// node to combine, and so that a bare NameThing's lvalue-ness survives the
// passthrough.
func (p *Parser) parsePrimary() (*ast.Node, error) {
	la := p.feeder.peek()

	if la.Kind == token.Symbol && la.Value == "(" {
		if _, err := p.feeder.matchValue("("); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.feeder.matchValue(")"); err != nil {
			return nil, err
		}
		return &ast.Node{Name: "Expression", Children: []*ast.Node{inner}}, nil
	}

	switch la.Kind {
	case token.Integer, token.Boolean, token.Character, token.String:
		tok, err := p.feeder.matchKind(la.Kind)
		if err != nil {
			return nil, err
		}
		return &ast.Node{Name: "Expression", Children: []*ast.Node{ast.Leaf(astToken(tok))}}, nil
	case token.Keyword:
		if la.Value != "random" {
			return nil, zerrors.NewParseError(la.Value, "keyword %q cannot start an expression", la.Value)
		}
		tok, err := p.feeder.matchValue("random")
		if err != nil {
			return nil, err
		}
		return &ast.Node{Name: "Expression", Children: []*ast.Node{ast.Leaf(astToken(tok))}}, nil
	case token.Name:
		nameThing, err := p.parseNameThingNode()
		if err != nil {
			return nil, err
		}
		return &ast.Node{Name: "Expression", Children: []*ast.Node{nameThing}}, nil
	}

	return nil, zerrors.NewParseError(la.Value, "unexpected token %q in expression", la.Value)
}

// parseNameThingNode parses a base <Name> followed by zero or more
// Parentheses/SquareBraces accessors. It is also called directly (not
// via parseExpression) everywhere the grammar names a bare NameThing — the
// left-hand side of SetStatement/IncStatement/InputStatement/ForStatement,
// and InputStatement's optional type expression.
func (p *Parser) parseNameThingNode() (*ast.Node, error) {
	base, err := p.feeder.matchKind(token.Name)
	if err != nil {
		return nil, err
	}
	node := &ast.Node{Name: "NameThing", Children: []*ast.Node{ast.Leaf(astToken(base))}}

	for {
		la := p.feeder.peek()
		if la.Kind != token.Symbol {
			return node, nil
		}
		switch la.Value {
		case "(":
			accessor, err := p.parseParenthesesAccessor()
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, accessor)
		case "[":
			accessor, err := p.parseSquareBracesAccessor()
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, accessor)
		default:
			return node, nil
		}
	}
}

// parseParenthesesAccessor parses a "(" expr ("," expr)* ")" constructor
// argument list.
func (p *Parser) parseParenthesesAccessor() (*ast.Node, error) {
	if _, err := p.feeder.matchValue("("); err != nil {
		return nil, err
	}
	node := &ast.Node{Name: "Parentheses"}
	if p.feeder.peek().Value != ")" {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			node.Children = append(node.Children, arg)
			if p.feeder.peek().Value != "," {
				break
			}
			if _, err := p.feeder.matchValue(","); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.feeder.matchValue(")"); err != nil {
		return nil, err
	}
	return node, nil
}

// parseSquareBracesAccessor parses a "[" expr (":" expr)? "]" subscript or
// section accessor.
func (p *Parser) parseSquareBracesAccessor() (*ast.Node, error) {
	if _, err := p.feeder.matchValue("["); err != nil {
		return nil, err
	}
	node := &ast.Node{Name: "SquareBraces"}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	node.Children = append(node.Children, first)
	if p.feeder.peek().Value == ":" {
		if _, err := p.feeder.matchValue(":"); err != nil {
			return nil, err
		}
		second, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, second)
	}
	if _, err := p.feeder.matchValue("]"); err != nil {
		return nil, err
	}
	return node, nil
}
