package ast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/astkit/internal/token"
)

func TestConstantFoldingIntegers(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want string
	}{
		{"add", binary(intLit(2), token.Plus, intLit(3)), "5"},
		{"nested", binary(binary(intLit(2), token.Star, intLit(3)), token.Minus, intLit(1)), "5"},
		{"truncating division", binary(intLit(-7), token.TildeSlash, intLit(2)), "-3"},
		{"modulus is non-negative", binary(intLit(-7), token.Percent, intLit(3)), "2"},
		{"negation", NewPrefixExpression(token.FromType(token.Minus), intLit(4)), "-4"},
		{"parenthesized", binary(NewParenthesizedExpression(token.FromType(token.OpenParen),
			binary(intLit(1), token.Plus, intLit(1)), token.FromType(token.CloseParen)), token.Star, intLit(4)), "8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := exprStmt(tt.expr)

			_, err := (&ConstantFoldingTransformer{}).Transform(stmt)
			require.NoError(t, err)

			lit, ok := stmt.Expression.(*IntegerLiteral)
			require.True(t, ok, "got %s", NodeName(stmt.Expression))
			assert.Equal(t, tt.want, lit.Value.String())
			assert.Equal(t, tt.want, lit.Literal.Lexeme())
			assert.Same(t, stmt, lit.Parent())
		})
	}
}

func TestConstantFoldingBooleans(t *testing.T) {
	tests := []struct {
		name string
		expr Expression
		want bool
	}{
		{"and", binary(boolLit(true), token.AmpersandAmpersand, boolLit(false)), false},
		{"or", binary(boolLit(false), token.BarBar, boolLit(true)), true},
		{"not", NewPrefixExpression(token.FromType(token.Bang), boolLit(false)), true},
		{"comparison", binary(intLit(1), token.Lt, intLit(2)), true},
		{"equality", binary(intLit(3), token.EqEq, intLit(4)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := (&ConstantFoldingTransformer{}).Transform(tt.expr)
			require.NoError(t, err)

			lit, ok := root.(*BooleanLiteral)
			require.True(t, ok)
			assert.Equal(t, tt.want, lit.Value)
		})
	}
}

func TestConstantFoldingLeavesUnfoldableExpressions(t *testing.T) {
	divByZero := binary(intLit(1), token.TildeSlash, intLit(0))
	stmt := exprStmt(divByZero)
	_, err := (&ConstantFoldingTransformer{}).Transform(stmt)
	require.NoError(t, err)
	assert.Same(t, divByZero, stmt.Expression)

	mixed := binary(ident("x"), token.Plus, intLit(1))
	root, err := (&ConstantFoldingTransformer{}).Transform(mixed)
	require.NoError(t, err)
	assert.Same(t, mixed, root)
}

func TestDeadCodeEliminationIf(t *testing.T) {
	then := exprStmt(ident("then"))
	otherwise := exprStmt(ident("otherwise"))
	body := block(ifStmt(boolLit(false), then, otherwise))

	_, err := (&DeadCodeEliminationTransformer{}).Transform(body)
	require.NoError(t, err)

	require.Equal(t, 1, body.Statements.Len())
	assert.Same(t, otherwise, body.Statements.At(0))
	assert.Same(t, body, otherwise.Parent())
}

func TestDeadCodeEliminationIfWithoutTakenBranch(t *testing.T) {
	body := block(ifStmt(boolLit(false), exprStmt(ident("never")), nil))

	_, err := (&DeadCodeEliminationTransformer{}).Transform(body)
	require.NoError(t, err)

	_, ok := body.Statements.At(0).(*EmptyStatement)
	assert.True(t, ok)
}

func TestDeadCodeEliminationWhileFalse(t *testing.T) {
	loop := NewWhileStatement(token.FromKeyword(token.KwWhile), token.FromType(token.OpenParen), boolLit(false),
		token.FromType(token.CloseParen), block())

	root, err := (&DeadCodeEliminationTransformer{}).Transform(loop)
	require.NoError(t, err)
	assert.IsType(t, &EmptyStatement{}, root)
}

func TestDeadCodeEliminationAfterReturn(t *testing.T) {
	body := block(
		exprStmt(ident("a")),
		returnStmt(ident("b")),
		exprStmt(ident("unreachable")),
		exprStmt(ident("also unreachable")),
	)

	_, err := (&DeadCodeEliminationTransformer{}).Transform(body)
	require.NoError(t, err)
	assert.Equal(t, 2, body.Statements.Len())
}

func TestValidatorAcceptsWellFormedTree(t *testing.T) {
	tree := block(ifStmt(ident("c"), exprStmt(ident("d")), block()))

	_, err := (&ValidatorTransformer{}).Transform(tree)
	assert.NoError(t, err)
}

func TestValidatorReportsUnpairedTokens(t *testing.T) {
	stmt := ifStmt(ident("c"), exprStmt(ident("d")), nil)
	stmt.ElseKeyword = token.FromKeyword(token.KwElse)

	_, err := (&ValidatorTransformer{}).Transform(stmt)
	require.Error(t, err)

	var te *TransformationError
	require.True(t, errors.As(err, &te))
	assert.Same(t, stmt, te.Node)
	assert.Contains(t, te.Error(), "IfStatement")
}

func TestValidatorReportsBrokenParentLinks(t *testing.T) {
	stmt := exprStmt(ident("x"))
	Detach(stmt.Expression)

	_, err := (&ValidatorTransformer{}).Transform(stmt)
	assert.Error(t, err)
}

func TestPipeline(t *testing.T) {
	body := block(ifStmt(binary(intLit(1), token.Gt, intLit(2)), exprStmt(ident("then")), exprStmt(ident("else"))))

	pipeline := NewTransformationPipeline(&ConstantFoldingTransformer{}, &DeadCodeEliminationTransformer{})
	pipeline.AddTransformer(&ValidatorTransformer{})

	root, err := pipeline.Transform(body)
	require.NoError(t, err)
	assert.Same(t, body, root)

	stmt, ok := body.Statements.At(0).(*ExpressionStatement)
	require.True(t, ok)
	assert.Equal(t, "else", stmt.Expression.(*SimpleIdentifier).Name())
}

func TestPipelineCollectsErrors(t *testing.T) {
	stmt := exprStmt(ident("x"))
	Detach(stmt.Expression)

	pipeline := NewTransformationPipeline(&ValidatorTransformer{}, &ValidatorTransformer{})
	pipeline.SetStopOnError(false)

	root, err := pipeline.Transform(stmt)
	require.Error(t, err)
	assert.Same(t, stmt, root)
	assert.Len(t, err.(interface{ Unwrap() []error }).Unwrap(), 2)
}
