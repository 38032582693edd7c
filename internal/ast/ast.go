// Package ast defines the two finalized AST node shapes — Internal and
// Leaf — and a Builder that realizes a third, construction-time-only
// shape: a transparent node whose children splice into its parent
// instead of the node itself ever appearing in the tree.
package ast

// Node is a finalized AST node: either Internal (Name is a nonterminal's
// name or a synthetic name like "Program"/"Expression"/"NameThing", and
// Children holds its subtrees) or Leaf (IsLeaf is true, Token holds the
// captured token).
type Node struct {
	Name     string
	Children []*Node
	IsLeaf   bool
	Token    Token
}

// Token is the captured leaf payload: a token's kind and matched text.
type Token struct {
	Kind  string
	Value string
	Line  int
	Col   int
}

// Leaf builds a finalized Leaf node from a captured token.
func Leaf(tok Token) *Node {
	return &Node{IsLeaf: true, Token: tok}
}

// Builder accumulates a node's children while it is still under
// construction. A permanent Builder turns into a real Internal Node when
// Finish is called. A transparent (non-permanent) Builder never turns into
// a Node at all — its accumulated children are meant to be spliced
// directly into whatever Builder receives it via AddChildFrom, the AST
// pruning policy that keeps helper grammar productions out of the final
// tree.
type Builder struct {
	name      string
	permanent bool
	children  []*Node
}

// NewBuilder starts a node under construction. permanent should be the
// referenced nonterminal's declared permanence (bnf.Grammar.NonterminalPermanent).
// The parser builds Expression and NameThing nodes directly as Nodes,
// without a Builder.
func NewBuilder(name string, permanent bool) *Builder {
	return &Builder{name: name, permanent: permanent}
}

// IsPermanent reports whether this builder will finalize into a real node.
func (b *Builder) IsPermanent() bool { return b.permanent }

// AddLeaf appends a captured token as a child.
func (b *Builder) AddLeaf(tok Token) {
	b.children = append(b.children, Leaf(tok))
}

// AddChildFrom adds a completed child builder's contribution to b: if
// child is permanent, its finished Node is appended; if child is
// transparent, child's own children are spliced into b directly, and the
// transparent node itself never exists as a Node. This is the only place
// transparent-node splicing happens, which is what guarantees "no
// finalized AST contains a transparent node."
func (b *Builder) AddChildFrom(child *Builder) {
	if child == nil {
		return
	}
	if child.permanent {
		b.children = append(b.children, child.Finish())
	} else {
		b.children = append(b.children, child.children...)
	}
}

// AddChild appends an already-finalized Node as a child. Used by the
// hand-written Expression/NameThing parsing (internal/parser/expression.go),
// which builds complete Nodes directly rather than going through a Builder.
func (b *Builder) AddChild(node *Node) {
	b.children = append(b.children, node)
}

// Finish finalizes a permanent builder into an Internal Node. Calling
// Finish on a transparent builder is a programming error — transparent
// builders are only ever consumed via AddChildFrom.
func (b *Builder) Finish() *Node {
	if !b.permanent {
		panic("ast: Finish called on a transparent builder")
	}
	return &Node{Name: b.name, Children: b.children}
}

// ChildCount reports how many children n has (for an Expression node, 1
// child is a passthrough, 2 a unary application, 3 a binary application).
func (n *Node) ChildCount() int { return len(n.Children) }

// DotExporter renders an AST as a Graphviz ".dot" document. It is named
// here only as the out-of-scope collaborator interface the core evaluator
// never depends on — no implementation ships, since AST visualization is
// explicitly out of scope for this interpreter.
type DotExporter interface {
	Export(root *Node) (dot string, err error)
}
