// Package ast defines the syntax tree produced by the AST factory.
//
// Every node carries the concrete lexical tokens that bound it (keywords,
// delimiters, operators) next to its child nodes, so the first and last token
// of any node can be derived without a stored source range. Children are held
// either in single slots or in owner-linked NodeLists; both keep the child's
// parent reference pointing at the enclosing node.
//
// A node has at most one parent. Constructors and NodeList insertions reject a
// child that is already attached elsewhere; RemoveAt, Set, SetChild and Detach
// clear the parent of the node they displace.
package ast

import (
	"reflect"

	asterrors "github.com/orizon-lang/astkit/internal/errors"
	"github.com/orizon-lang/astkit/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	// BeginToken returns the first token spanned by the node, or nil if the
	// node spans no tokens.
	BeginToken() *token.Token
	// EndToken returns the last token spanned by the node, or nil.
	EndToken() *token.Token
	// Parent returns the enclosing node, or nil for an unattached node.
	Parent() Node
	// ChildEntities returns the tokens, child nodes and node lists of the node
	// in source order. Absent optional parts are omitted.
	ChildEntities() []interface{}
	// Accept dispatches to the visitor method for the concrete node type.
	Accept(visitor Visitor) interface{}

	setParent(parent Node)
}

// Expression is implemented by every expression node.
type Expression interface {
	Node
	expressionNode()
}

// Statement is implemented by every statement node.
type Statement interface {
	Node
	statementNode()
}

// Literal is implemented by literal expressions.
type Literal interface {
	Expression
	literalNode()
}

// StringLiteral is implemented by the string literal forms.
type StringLiteral interface {
	Literal
	stringLiteralNode()
}

// Identifier is implemented by simple and prefixed identifiers.
type Identifier interface {
	Expression
	// Name returns the full dotted name of the identifier.
	Name() string
}

// InterpolationElement is a part of an interpolated string.
type InterpolationElement interface {
	Node
	interpolationElementNode()
}

// Declaration is implemented by nodes that declare a name.
type Declaration interface {
	Node
	declarationNode()
}

// CompilationUnitMember is a top-level declaration.
type CompilationUnitMember interface {
	Declaration
	compilationUnitMemberNode()
}

// ClassMember is a member of a class body.
type ClassMember interface {
	Declaration
	classMemberNode()
}

// Directive is implemented by library, import, export, part and part-of
// directives.
type Directive interface {
	Node
	directiveNode()
}

// Combinator is a show or hide clause on an import or export.
type Combinator interface {
	Node
	combinatorNode()
}

// FunctionBody is implemented by the function body forms.
type FunctionBody interface {
	Node
	functionBodyNode()
}

// FormalParameter is implemented by every parameter form.
type FormalParameter interface {
	Node
	formalParameterNode()
	// ParameterName returns the parameter name.
	ParameterName() *SimpleIdentifier
	// Kind returns whether the parameter is required, positional or named.
	Kind() ParameterKind
}

// NormalFormalParameter is a parameter without a default value clause.
type NormalFormalParameter interface {
	FormalParameter
	normalFormalParameterNode()
}

// SwitchMember is a case or default clause of a switch statement.
type SwitchMember interface {
	Node
	switchMemberNode()
}

// ConstructorInitializer is an entry in a constructor's initializer list.
type ConstructorInitializer interface {
	Node
	constructorInitializerNode()
}

// ParameterKind classifies formal parameters.
type ParameterKind int

const (
	ParameterRequired ParameterKind = iota
	ParameterPositional
	ParameterNamed
)

func (k ParameterKind) String() string {
	switch k {
	case ParameterRequired:
		return "required"
	case ParameterPositional:
		return "positional"
	case ParameterNamed:
		return "named"
	default:
		return "unknown"
	}
}

// baseNode holds the parent back-reference shared by every node.
type baseNode struct {
	parent Node
}

func (b *baseNode) Parent() Node          { return b.parent }
func (b *baseNode) setParent(parent Node) { b.parent = parent }

// nodeSequence is the type-erased view of a NodeList used when scanning
// child entities.
type nodeSequence interface {
	BeginToken() *token.Token
	EndToken() *token.Token
	Len() int
	node(index int) Node
}

// IsNil reports whether n is nil or holds a nil pointer.
func IsNil(n Node) bool { return isNil(n) }

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// NodeName returns the variant name of a node, e.g. "IfStatement".
func NodeName(n Node) string {
	if isNil(n) {
		return "<nil>"
	}
	t := reflect.TypeOf(n)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// checkAdoptable returns an error if child is attached to a parent other than
// parent.
func checkAdoptable(parent, child Node) error {
	if current := child.Parent(); current != nil && current != parent {
		return asterrors.NodeAlreadyAttached(NodeName(child), NodeName(current), NodeName(parent))
	}
	return nil
}

// becomeParentOf makes parent the parent of child and returns child. A nil
// child (including a typed nil pointer) is normalised to the zero value so
// optional slots stay comparable with nil. Adopting a node owned elsewhere is
// a programming error and panics.
func becomeParentOf[T Node](parent Node, child T) T {
	var zero T
	if isNil(child) {
		return zero
	}
	if err := checkAdoptable(parent, child); err != nil {
		panic(err)
	}
	child.setParent(parent)
	return child
}

// Detach clears the parent reference of n so it can be inserted elsewhere.
// It does not remove n from its former parent's slot or list.
func Detach(n Node) {
	if !isNil(n) {
		n.setParent(nil)
	}
}

// SetChild replaces a single child slot of parent. The previous occupant is
// detached; the new child must be unattached or already owned by parent.
//
//	ast.SetChild(stmt, &stmt.Condition, cond)
func SetChild[T Node](parent Node, slot *T, child T) error {
	if !isNil(child) {
		if err := checkAdoptable(parent, child); err != nil {
			return err
		}
	}
	if old := *slot; !isNil(old) && old.Parent() == parent {
		old.setParent(nil)
	}
	*slot = becomeParentOf(parent, child)
	return nil
}

// entities builds a ChildEntities slice, dropping nil tokens, nil nodes and
// empty lists.
func entities(parts ...interface{}) []interface{} {
	out := make([]interface{}, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case nil:
		case *token.Token:
			if v != nil {
				out = append(out, v)
			}
		case []*token.Token:
			for _, t := range v {
				if t != nil {
					out = append(out, t)
				}
			}
		case nodeSequence:
			if !isNilSequence(v) && v.Len() > 0 {
				out = append(out, v)
			}
		case Node:
			if !isNil(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

func isNilSequence(s nodeSequence) bool {
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// firstToken returns the first token of an entity list.
func firstToken(ents []interface{}) *token.Token {
	for _, e := range ents {
		if t := entityBegin(e); t != nil {
			return t
		}
	}
	return nil
}

// lastToken returns the last token of an entity list.
func lastToken(ents []interface{}) *token.Token {
	for i := len(ents) - 1; i >= 0; i-- {
		if t := entityEnd(ents[i]); t != nil {
			return t
		}
	}
	return nil
}

func entityBegin(e interface{}) *token.Token {
	switch v := e.(type) {
	case *token.Token:
		return v
	case nodeSequence:
		return v.BeginToken()
	case Node:
		return v.BeginToken()
	}
	return nil
}

func entityEnd(e interface{}) *token.Token {
	switch v := e.(type) {
	case *token.Token:
		return v
	case nodeSequence:
		return v.EndToken()
	case Node:
		return v.EndToken()
	}
	return nil
}

// beginOf and endOf derive the bounding tokens of n from its entities.
func beginOf(n Node) *token.Token { return firstToken(n.ChildEntities()) }
func endOf(n Node) *token.Token   { return lastToken(n.ChildEntities()) }

// Children returns the direct child nodes of n in source order, flattening
// node lists.
func Children(n Node) []Node {
	if isNil(n) {
		return nil
	}
	var out []Node
	for _, e := range n.ChildEntities() {
		switch v := e.(type) {
		case nodeSequence:
			for i := 0; i < v.Len(); i++ {
				out = append(out, v.node(i))
			}
		case Node:
			out = append(out, v)
		}
	}
	return out
}

// Tokens returns every token spanned by n in source order.
func Tokens(n Node) []*token.Token {
	var out []*token.Token
	var collect func(e interface{})
	collect = func(e interface{}) {
		switch v := e.(type) {
		case *token.Token:
			out = append(out, v)
		case nodeSequence:
			for i := 0; i < v.Len(); i++ {
				collect(v.node(i))
			}
		case Node:
			for _, c := range v.ChildEntities() {
				collect(c)
			}
		}
	}
	if !isNil(n) {
		collect(n)
	}
	return out
}

// VisitChildren calls Accept on each direct child of n in source order.
func VisitChildren(n Node, visitor Visitor) {
	for _, c := range Children(n) {
		c.Accept(visitor)
	}
}

// Root returns the top-most ancestor of n.
func Root(n Node) Node {
	for !isNil(n) && n.Parent() != nil {
		n = n.Parent()
	}
	return n
}

// Ancestor returns the nearest ancestor of n (excluding n) for which match
// returns true.
func Ancestor(n Node, match func(Node) bool) Node {
	if isNil(n) {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if match(p) {
			return p
		}
	}
	return nil
}

// SourceRange returns the offset of n's begin token and the distance to the
// end of its end token. It returns (-1, 0) when n spans no tokens.
func SourceRange(n Node) (offset, length int) {
	if isNil(n) {
		return -1, 0
	}
	begin, end := n.BeginToken(), n.EndToken()
	if begin == nil || end == nil {
		return -1, 0
	}
	return begin.Offset(), end.End() - begin.Offset()
}
