package ast

import (
	"reflect"

	"github.com/orizon-lang/astkit/internal/token"
)

// Equal reports whether a and b are structurally equal: the same node variant,
// tokens of the same type and lexeme in the same positions, and recursively
// equal children. Token offsets and parent references are ignored.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if pa, ok := a.(FormalParameter); ok && pa.Kind() != b.(FormalParameter).Kind() {
		return false
	}
	ea, eb := a.ChildEntities(), b.ChildEntities()
	if len(ea) != len(eb) {
		return false
	}
	for i := range ea {
		if !equalEntity(ea[i], eb[i]) {
			return false
		}
	}
	return true
}

func equalEntity(a, b interface{}) bool {
	switch x := a.(type) {
	case *token.Token:
		y, ok := b.(*token.Token)
		return ok && x.Type() == y.Type() && x.Keyword() == y.Keyword() && x.Lexeme() == y.Lexeme()
	case nodeSequence:
		y, ok := b.(nodeSequence)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i := 0; i < x.Len(); i++ {
			if !Equal(x.node(i), y.node(i)) {
				return false
			}
		}
		return true
	case Node:
		y, ok := b.(Node)
		return ok && Equal(x, y)
	}
	return false
}
