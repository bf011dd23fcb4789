// Package errors provides standardized error values for the AST toolkit.
package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
)

// ErrorCategory represents different categories of errors
type ErrorCategory string

const (
	CategoryBounds     ErrorCategory = "BOUNDS"
	CategoryOwnership  ErrorCategory = "OWNERSHIP"
	CategoryValidation ErrorCategory = "VALIDATION"
	CategoryDocument   ErrorCategory = "DOCUMENT"
)

// Sentinels matched with errors.Is against any StandardError of the
// corresponding code.
var (
	ErrIndexOutOfBounds    = stderrors.New("index out of bounds")
	ErrNodeAlreadyAttached = stderrors.New("node already attached to another parent")
	ErrInvalidDocument     = stderrors.New("invalid document")
	ErrUnsupportedShape    = stderrors.New("node shape not supported by language version")
)

// StandardError provides a consistent error format
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string

	sentinel error
}

// Error implements the error interface
func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *StandardError) Unwrap() error { return e.sentinel }

// NewStandardError creates a new standardized error
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	return newStandardError(2, category, code, message, context, nil)
}

func newStandardError(skip int, category ErrorCategory, code, message string, context map[string]interface{}, sentinel error) *StandardError {
	pc, _, _, ok := runtime.Caller(skip)
	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
		sentinel: sentinel,
	}
}

// Common error constructors

// IndexOutOfBounds reports an index outside [0, length) (or [0, length] for
// insertion; the caller picks the bound it checked).
func IndexOutOfBounds(index, length int) *StandardError {
	return newStandardError(2, CategoryBounds, "INDEX_OUT_OF_BOUNDS",
		fmt.Sprintf("Index %d out of bounds for length %d", index, length),
		map[string]interface{}{"index": index, "length": length},
		ErrIndexOutOfBounds)
}

// NodeAlreadyAttached reports an insertion of a node that another parent owns.
func NodeAlreadyAttached(node, currentParent, newParent string) *StandardError {
	return newStandardError(2, CategoryOwnership, "NODE_ALREADY_ATTACHED",
		fmt.Sprintf("%s is already a child of %s and cannot be adopted by %s", node, currentParent, newParent),
		map[string]interface{}{"node": node, "parent": currentParent, "adopter": newParent},
		ErrNodeAlreadyAttached)
}

// InvalidDocument reports a malformed tree document at a line and column.
func InvalidDocument(line, column int, format string, args ...interface{}) *StandardError {
	msg := fmt.Sprintf(format, args...)
	return newStandardError(2, CategoryDocument, "INVALID_DOCUMENT",
		fmt.Sprintf("%d:%d: %s", line, column, msg),
		map[string]interface{}{"line": line, "column": column},
		ErrInvalidDocument)
}

// UnsupportedShape reports a node shape that the target language version predates.
func UnsupportedShape(feature, version, requires string) *StandardError {
	return newStandardError(2, CategoryValidation, "UNSUPPORTED_SHAPE",
		fmt.Sprintf("%s requires language %s, target is %s", feature, requires, version),
		map[string]interface{}{"feature": feature, "version": version, "requires": requires},
		ErrUnsupportedShape)
}
