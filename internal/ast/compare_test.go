package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asterrors "github.com/orizon-lang/astkit/internal/errors"
	"github.com/orizon-lang/astkit/internal/token"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Node
		want bool
	}{
		{"same shape", binary(ident("a"), token.Plus, intLit(1)), binary(ident("a"), token.Plus, intLit(1)), true},
		{"different operator", binary(ident("a"), token.Plus, intLit(1)), binary(ident("a"), token.Minus, intLit(1)), false},
		{"different name", ident("a"), ident("b"), false},
		{"different variant", ident("a"), intLit(1), false},
		{"optional part", ifStmt(ident("c"), block(), nil), ifStmt(ident("c"), block(), block()), false},
		{"both nil", nil, nil, true},
		{"one nil", ident("a"), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}

func TestEqualIgnoresOffsets(t *testing.T) {
	a := NewSimpleIdentifier(token.New(token.Identifier, "x", 0))
	b := NewSimpleIdentifier(token.New(token.Identifier, "x", 42))
	assert.True(t, Equal(a, b))
}

func TestReplaceSlot(t *testing.T) {
	old := ident("a")
	stmt := exprStmt(old)
	replacement := intLit(7)

	require.NoError(t, Replace(old, replacement))
	assert.Same(t, replacement, stmt.Expression)
	assert.Same(t, stmt, replacement.Parent())
	assert.Nil(t, old.Parent())
}

func TestReplaceInList(t *testing.T) {
	second := exprStmt(ident("b"))
	body := block(exprStmt(ident("a")), second, exprStmt(ident("c")))
	replacement := returnStmt(nil)

	require.NoError(t, Replace(second, replacement))
	assert.Equal(t, 3, body.Statements.Len())
	assert.Same(t, replacement, body.Statements.At(1))
	assert.Nil(t, second.Parent())

	require.NoError(t, Replace(replacement, nil))
	assert.Equal(t, 2, body.Statements.Len())
}

func TestReplaceErrors(t *testing.T) {
	assert.Error(t, Replace(ident("orphan"), ident("b")))

	cond := ident("c")
	ifStmt(cond, block(), nil)
	err := Replace(cond, block())
	require.Error(t, err)

	var stdErr *asterrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, "TYPE_MISMATCH", stdErr.Code)

	taken := ident("t")
	exprStmt(taken)
	assert.ErrorIs(t, Replace(cond, taken), asterrors.ErrNodeAlreadyAttached)
}
