package ast

import (
	"iter"

	asterrors "github.com/orizon-lang/astkit/internal/errors"
	"github.com/orizon-lang/astkit/internal/token"
)

// NodeList is an ordered sequence of child nodes owned by a single parent.
// Every node inserted into the list has its parent set to the owner. The
// owner is fixed when the list is created.
//
// Indexed operations never clamp: Get, Set and RemoveAt require
// 0 <= index < Len(), Insert requires 0 <= index <= Len(), and any other
// index yields an error wrapping errors.ErrIndexOutOfBounds.
type NodeList[T element] struct {
	owner    Node
	elements []T
}

// element is the part of Node a list needs from its elements. NodeList is
// not constrained by Node itself: Node reaches Visitor, and Visitor names
// node types whose fields are lists, which would make the types recursive.
type element interface {
	BeginToken() *token.Token
	EndToken() *token.Token
	Parent() Node
	setParent(parent Node)
}

// asNode converts a list element to a Node; a nil element yields nil.
func asNode[T element](e T) Node {
	n, _ := any(e).(Node)
	if isNil(n) {
		return nil
	}
	return n
}

// NewNodeList creates an empty list owned by owner.
func NewNodeList[T Node](owner Node) *NodeList[T] {
	return &NodeList[T]{owner: owner}
}

// CreateNodeList is equivalent to NewNodeList.
func CreateNodeList[T Node](owner Node) *NodeList[T] {
	return NewNodeList[T](owner)
}

// newNodeListOf creates a list owned by owner holding elements. It is used by
// node constructors and panics if an element is attached elsewhere.
func newNodeListOf[T element](owner Node, elements []T) *NodeList[T] {
	list := &NodeList[T]{owner: owner}
	for _, e := range elements {
		n := asNode(e)
		if n == nil {
			continue
		}
		if err := checkAdoptable(owner, n); err != nil {
			panic(err)
		}
		e.setParent(owner)
		list.elements = append(list.elements, e)
	}
	return list
}

// Owner returns the node that owns the list.
func (l *NodeList[T]) Owner() Node { return l.owner }

// Len returns the number of elements.
func (l *NodeList[T]) Len() int { return len(l.elements) }

// IsEmpty reports whether the list has no elements.
func (l *NodeList[T]) IsEmpty() bool { return len(l.elements) == 0 }

// Get returns the element at index.
func (l *NodeList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.elements) {
		var zero T
		return zero, asterrors.IndexOutOfBounds(index, len(l.elements))
	}
	return l.elements[index], nil
}

// At returns the element at index and panics if it is out of range. It is
// meant for loops bounded by Len.
func (l *NodeList[T]) At(index int) T {
	e, err := l.Get(index)
	if err != nil {
		panic(err)
	}
	return e
}

// Insert inserts node at index, shifting later elements right, and makes
// the owner its parent.
func (l *NodeList[T]) Insert(index int, node T) error {
	if index < 0 || index > len(l.elements) {
		return asterrors.IndexOutOfBounds(index, len(l.elements))
	}
	if err := l.adopt(node); err != nil {
		return err
	}
	var zero T
	l.elements = append(l.elements, zero)
	copy(l.elements[index+1:], l.elements[index:])
	l.elements[index] = node
	return nil
}

// Add appends node; it is Insert(Len(), node).
func (l *NodeList[T]) Add(node T) error {
	return l.Insert(len(l.elements), node)
}

// AddAll appends each node in order. A nil or empty slice is a no-op. On
// failure the nodes before the offending one stay appended.
func (l *NodeList[T]) AddAll(nodes []T) error {
	for _, n := range nodes {
		if err := l.Add(n); err != nil {
			return err
		}
	}
	return nil
}

// Set replaces the element at index and returns the previous occupant,
// which is detached from the owner unless it also occurs elsewhere in the
// list.
func (l *NodeList[T]) Set(index int, node T) (T, error) {
	var zero T
	if index < 0 || index >= len(l.elements) {
		return zero, asterrors.IndexOutOfBounds(index, len(l.elements))
	}
	if err := l.adopt(node); err != nil {
		return zero, err
	}
	old := l.elements[index]
	l.elements[index] = node
	l.release(old)
	return old, nil
}

// RemoveAt removes and returns the element at index. The removed node is
// detached unless another reference to it remains in the list.
func (l *NodeList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= len(l.elements) {
		var zero T
		return zero, asterrors.IndexOutOfBounds(index, len(l.elements))
	}
	old := l.elements[index]
	l.elements = append(l.elements[:index], l.elements[index+1:]...)
	l.release(old)
	return old, nil
}

// IndexOf returns the position of the first element that is the same node
// as n, or -1.
func (l *NodeList[T]) IndexOf(n Node) int {
	if isNil(n) {
		return -1
	}
	for i, e := range l.elements {
		if asNode(e) == n {
			return i
		}
	}
	return -1
}

// Slice returns a copy of the elements.
func (l *NodeList[T]) Slice() []T {
	out := make([]T, len(l.elements))
	copy(out, l.elements)
	return out
}

// All iterates over index/element pairs.
func (l *NodeList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, e := range l.elements {
			if !yield(i, e) {
				return
			}
		}
	}
}

// BeginToken returns the first element's begin token, or nil when empty.
func (l *NodeList[T]) BeginToken() *token.Token {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[0].BeginToken()
}

// EndToken returns the last element's end token, or nil when empty.
func (l *NodeList[T]) EndToken() *token.Token {
	if len(l.elements) == 0 {
		return nil
	}
	return l.elements[len(l.elements)-1].EndToken()
}

func (l *NodeList[T]) node(index int) Node { return asNode(l.elements[index]) }

// adopt validates and performs the parent assignment for an inserted node.
// Nil elements are rejected as children.
func (l *NodeList[T]) adopt(node T) error {
	n := asNode(node)
	if n == nil {
		return asterrors.NewStandardError(asterrors.CategoryValidation, "NIL_ELEMENT",
			"a NodeList cannot hold a nil node", map[string]interface{}{"owner": NodeName(l.owner)})
	}
	if err := checkAdoptable(l.owner, n); err != nil {
		return err
	}
	node.setParent(l.owner)
	return nil
}

func (l *NodeList[T]) release(old T) {
	n := asNode(old)
	if n != nil && l.IndexOf(n) < 0 && n.Parent() == l.owner {
		old.setParent(nil)
	}
}

// replace swaps old for replacement in place, or removes old when replacement
// is nil. It backs Replace.
func (l *NodeList[T]) replace(old, replacement Node) (bool, error) {
	index := l.IndexOf(old)
	if index < 0 {
		return false, nil
	}
	if isNil(replacement) {
		_, err := l.RemoveAt(index)
		return true, err
	}
	typed, ok := replacement.(T)
	if !ok {
		return true, asterrors.NewStandardError(asterrors.CategoryValidation, "TYPE_MISMATCH",
			NodeName(replacement)+" cannot be stored in this list", nil)
	}
	_, err := l.Set(index, typed)
	return true, err
}
