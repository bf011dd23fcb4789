package ast

import (
	"reflect"

	asterrors "github.com/orizon-lang/astkit/internal/errors"
)

// listReplacer is the type-erased view of NodeList used by Replace.
type listReplacer interface {
	replace(old, replacement Node) (bool, error)
}

// Replace substitutes replacement for old in old's parent, whether old sits
// in a single child slot or in a NodeList. The old node is detached and the
// replacement adopted. A nil replacement clears a slot or removes the list
// element. The replacement must be unattached and assignable to the slot's
// type.
func Replace(old, replacement Node) error {
	if isNil(old) {
		return asterrors.NewStandardError(asterrors.CategoryValidation, "NIL_NODE", "cannot replace a nil node", nil)
	}
	parent := old.Parent()
	if parent == nil {
		return asterrors.NewStandardError(asterrors.CategoryOwnership, "NOT_ATTACHED",
			NodeName(old)+" has no parent to replace it in", nil)
	}
	if !isNil(replacement) {
		if err := checkAdoptable(parent, replacement); err != nil {
			return err
		}
	}

	v := reflect.ValueOf(parent).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !f.CanSet() || (f.Kind() != reflect.Ptr && f.Kind() != reflect.Interface) || f.IsNil() {
			continue
		}
		if list, ok := f.Interface().(listReplacer); ok {
			found, err := list.replace(old, replacement)
			if found {
				return err
			}
			continue
		}
		if f.Interface() != interface{}(old) {
			continue
		}
		if isNil(replacement) {
			f.Set(reflect.Zero(f.Type()))
		} else {
			rv := reflect.ValueOf(replacement)
			if !rv.Type().AssignableTo(f.Type()) {
				return asterrors.NewStandardError(asterrors.CategoryValidation, "TYPE_MISMATCH",
					NodeName(replacement)+" cannot be stored in "+NodeName(parent)+"."+v.Type().Field(i).Name, nil)
			}
			f.Set(rv)
			replacement.setParent(parent)
		}
		old.setParent(nil)
		return nil
	}
	return asterrors.NewStandardError(asterrors.CategoryOwnership, "CHILD_NOT_FOUND",
		NodeName(old)+" is not a child of its parent "+NodeName(parent), nil)
}
