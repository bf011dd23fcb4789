package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orizon-lang/astkit/internal/token"
)

// identifierCollector records the names of identifiers in visit order.
type identifierCollector struct {
	BaseVisitor
	names []string
}

func (c *identifierCollector) VisitSimpleIdentifier(node *SimpleIdentifier) interface{} {
	c.names = append(c.names, node.Name())
	return nil
}

func TestAcceptDispatchesToVariant(t *testing.T) {
	c := &identifierCollector{}
	ident("solo").Accept(c)
	assert.Equal(t, []string{"solo"}, c.names)

	// BaseVisitor does not descend on its own.
	c.names = nil
	exprStmt(ident("hidden")).Accept(c)
	assert.Empty(t, c.names)
}

func TestWalkingVisitorVisitsInSourceOrder(t *testing.T) {
	tree := block(
		exprStmt(binary(ident("a"), token.Plus, ident("b"))),
		ifStmt(ident("c"), returnStmt(ident("d")), nil),
	)

	c := &identifierCollector{}
	NewWalkingVisitor(c).Walk(tree)
	assert.Equal(t, []string{"a", "b", "c", "d"}, c.names)
}

func TestVisitChildrenIsShallow(t *testing.T) {
	c := &identifierCollector{}
	VisitChildren(binary(ident("x"), token.Star, binary(ident("y"), token.Plus, ident("z"))), c)
	assert.Equal(t, []string{"x"}, c.names)
}

func TestInspectCanPrune(t *testing.T) {
	tree := block(
		exprStmt(ident("kept")),
		ifStmt(ident("skipped"), block(), nil),
	)

	var seen []string
	Inspect(tree, func(n Node) bool {
		if _, ok := n.(*IfStatement); ok {
			return false
		}
		if id, ok := n.(*SimpleIdentifier); ok {
			seen = append(seen, id.Name())
		}
		return true
	})
	assert.Equal(t, []string{"kept"}, seen)
}

func TestNodeCounter(t *testing.T) {
	tree := block(exprStmt(binary(ident("a"), token.Plus, intLit(1))), returnStmt(nil))

	counter := NewNodeCounter()
	added := counter.Count(tree)

	assert.Equal(t, 6, added)
	assert.Equal(t, 6, counter.Total())
	assert.Equal(t, map[string]int{
		"Block":               1,
		"ExpressionStatement": 1,
		"BinaryExpression":    1,
		"SimpleIdentifier":    1,
		"IntegerLiteral":      1,
		"ReturnStatement":     1,
	}, counter.Counts())
}
