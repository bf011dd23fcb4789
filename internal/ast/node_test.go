package ast

import (
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asterrors "github.com/orizon-lang/astkit/internal/errors"
	"github.com/orizon-lang/astkit/internal/token"
)

func ident(name string) *SimpleIdentifier {
	return NewSimpleIdentifier(token.FromTypeAndText(token.Identifier, name))
}

func intLit(v int64) *IntegerLiteral {
	return NewIntegerLiteral(token.FromTypeAndText(token.Int, strconv.FormatInt(v, 10)), big.NewInt(v))
}

func boolLit(v bool) *BooleanLiteral {
	if v {
		return NewBooleanLiteral(token.FromKeyword(token.KwTrue), true)
	}
	return NewBooleanLiteral(token.FromKeyword(token.KwFalse), false)
}

func binary(left Expression, op token.Type, right Expression) *BinaryExpression {
	return NewBinaryExpression(left, token.FromType(op), right)
}

func exprStmt(e Expression) *ExpressionStatement {
	return NewExpressionStatement(e, token.FromType(token.Semicolon))
}

func returnStmt(e Expression) *ReturnStatement {
	return NewReturnStatement(token.FromKeyword(token.KwReturn), e, token.FromType(token.Semicolon))
}

func block(statements ...Statement) *Block {
	return NewBlock(token.FromType(token.OpenCurlyBracket), statements, token.FromType(token.CloseCurlyBracket))
}

func ifStmt(cond Expression, then, otherwise Statement) *IfStatement {
	var elseKeyword *token.Token
	if otherwise != nil {
		elseKeyword = token.FromKeyword(token.KwElse)
	}
	return NewIfStatement(token.FromKeyword(token.KwIf), token.FromType(token.OpenParen), cond,
		token.FromType(token.CloseParen), then, elseKeyword, otherwise)
}

func TestConstructorSetsParents(t *testing.T) {
	left, right := ident("a"), intLit(1)
	expr := binary(left, token.Plus, right)

	assert.Same(t, expr, left.Parent())
	assert.Same(t, expr, right.Parent())
	assert.Nil(t, expr.Parent())

	stmt := exprStmt(expr)
	assert.Same(t, stmt, expr.Parent())
	assert.Same(t, stmt, Root(left))
}

func TestConstructorRejectsAttachedChild(t *testing.T) {
	shared := ident("x")
	exprStmt(shared)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, asterrors.ErrNodeAlreadyAttached)
	}()
	exprStmt(shared)
}

func TestOptionalChildrenAreOmitted(t *testing.T) {
	stmt := NewReturnStatement(token.FromKeyword(token.KwReturn), nil, token.FromType(token.Semicolon))

	ents := stmt.ChildEntities()
	require.Len(t, ents, 2)
	assert.Nil(t, stmt.Expression)
	assert.Empty(t, Children(stmt))
}

func TestTypedNilChildIsNormalised(t *testing.T) {
	var missing *BooleanLiteral
	stmt := NewReturnStatement(token.FromKeyword(token.KwReturn), missing, token.FromType(token.Semicolon))

	assert.True(t, stmt.Expression == nil)
}

func TestBeginAndEndTokens(t *testing.T) {
	tests := []struct {
		name  string
		node  Node
		begin string
		end   string
	}{
		{"binary", binary(ident("a"), token.Star, ident("b")), "a", "b"},
		{"if without else", ifStmt(ident("c"), exprStmt(ident("d")), nil), "if", ";"},
		{"if with else", ifStmt(ident("c"), exprStmt(ident("d")), block()), "if", "}"},
		{"empty block", block(), "{", "}"},
		{"variable without initializer", NewVariableDeclaration(nil, ident("v"), nil, nil), "v", "v"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotNil(t, tt.node.BeginToken())
			require.NotNil(t, tt.node.EndToken())
			assert.Equal(t, tt.begin, tt.node.BeginToken().Lexeme())
			assert.Equal(t, tt.end, tt.node.EndToken().Lexeme())
		})
	}
}

func TestAnnotatedNodeBeginsWithMetadata(t *testing.T) {
	at := NewAnnotation(token.FromType(token.At), ident("deprecated"), nil, nil, nil)
	decl := NewVariableDeclaration([]*Annotation{at}, ident("v"), nil, nil)

	assert.Equal(t, "@", decl.BeginToken().Lexeme())
	assert.Same(t, decl, at.Parent())
}

func TestEmptyCompilationUnitUsesSentinels(t *testing.T) {
	start := token.New(token.EOF, "", 0)
	eof := token.New(token.EOF, "", 0)
	unit := NewCompilationUnit(start, nil, nil, nil, eof)

	assert.Same(t, start, unit.BeginToken())
	assert.Same(t, eof, unit.EndToken())
	assert.Empty(t, unit.ChildEntities())
}

func TestSourceRange(t *testing.T) {
	expr := NewBinaryExpression(
		NewSimpleIdentifier(token.New(token.Identifier, "left", 4)),
		token.New(token.Plus, "+", 9),
		NewSimpleIdentifier(token.New(token.Identifier, "right", 11)))

	offset, length := SourceRange(expr)
	assert.Equal(t, 4, offset)
	assert.Equal(t, 12, length)

	offset, length = SourceRange(nil)
	assert.Equal(t, -1, offset)
	assert.Equal(t, 0, length)
}

func TestTokensInSourceOrder(t *testing.T) {
	stmt := exprStmt(binary(ident("a"), token.Minus, intLit(2)))

	var lexemes []string
	for _, tok := range Tokens(stmt) {
		lexemes = append(lexemes, tok.Lexeme())
	}
	assert.Equal(t, []string{"a", "-", "2", ";"}, lexemes)
}

func TestSetChildAndDetach(t *testing.T) {
	old, replacement := ident("a"), ident("b")
	stmt := exprStmt(old)

	require.NoError(t, SetChild[Expression](stmt, &stmt.Expression, replacement))
	assert.Nil(t, old.Parent())
	assert.Same(t, stmt, replacement.Parent())

	other := exprStmt(ident("c"))
	err := SetChild[Expression](other, &other.Expression, replacement)
	assert.ErrorIs(t, err, asterrors.ErrNodeAlreadyAttached)

	Detach(replacement)
	assert.Nil(t, replacement.Parent())
	require.NoError(t, SetChild[Expression](other, &other.Expression, replacement))
}

func TestAncestor(t *testing.T) {
	leaf := ident("x")
	body := block(exprStmt(leaf))
	_ = ifStmt(boolLit(true), body, nil)

	found := Ancestor(leaf, func(n Node) bool {
		_, ok := n.(*Block)
		return ok
	})
	assert.Same(t, body, found)
	assert.Nil(t, Ancestor(leaf, func(Node) bool { return false }))
}

func TestFormalParameterKinds(t *testing.T) {
	required := NewSimpleFormalParameter(nil, nil, nil, ident("a"))
	inner := NewSimpleFormalParameter(nil, nil, nil, ident("b"))
	named := NewDefaultFormalParameter(inner, ParameterNamed, token.FromType(token.Colon), intLit(0))

	list := NewFormalParameterList(token.FromType(token.OpenParen), []FormalParameter{required, named},
		token.FromType(token.OpenCurlyBracket), token.FromType(token.CloseCurlyBracket), token.FromType(token.CloseParen))

	assert.Equal(t, ParameterRequired, required.Kind())
	assert.Equal(t, ParameterNamed, inner.Kind())
	assert.Equal(t, "b", named.ParameterName().Name())

	var lexemes []string
	for _, tok := range Tokens(list) {
		lexemes = append(lexemes, tok.Lexeme())
	}
	assert.Equal(t, []string{"(", "a", "{", "b", ":", "0", "}", ")"}, lexemes)
}
