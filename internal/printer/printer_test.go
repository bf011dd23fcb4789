package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/astkit/internal/ast"
	af "github.com/orizon-lang/astkit/internal/astfactory"
	"github.com/orizon-lang/astkit/internal/token"
)

func lessThanOne() *ast.BinaryExpression {
	return af.BinaryExpression(af.Identifier("a"), token.Lt, af.Integer(1))
}

func TestToSourceIfStatement(t *testing.T) {
	stmt := af.IfStatement(lessThanOne(),
		af.Block(af.ReturnStatement(af.Integer(1))),
		af.Block(af.ReturnStatement(nil)))

	assert.Equal(t, "if (a < 1) {return 1;} else {return;}", ToSource(stmt))
}

func TestToSource(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"nil", nil, ""},
		{"typed nil", (*ast.Block)(nil), ""},
		{"method call", af.MethodInvocation(af.Identifier("a"), "f", af.Integer(1), af.Identifier("b")), "a.f(1, b)"},
		{"cascade", af.CascadeExpression(af.Identifier("a"), af.CascadedMethodInvocation("f"),
			af.CascadedPropertyAccess("b"), af.CascadedIndexExpression(af.Integer(0))), "a..f()..b..[0]"},
		{"conditional", af.ConditionalExpression(af.Identifier("c"), af.Integer(1), af.Integer(2)), "c ? 1 : 2"},
		{"is not", af.IsExpression(af.Identifier("x"), true, af.TypeName("int")), "x is! int"},
		{"await", af.AwaitExpression(af.Identifier("f")), "await f"},
		{"symbol", af.SymbolLiteral("a", "b"), "#a.b"},
		{"library name", af.LibraryIdentifier("app", "main"), "app.main"},
		{"list", af.ListLiteral(af.ListLiteralOptions{Const: true, TypeArguments: af.TypeArgumentList(af.TypeName("int"))},
			af.Integer(1), af.Integer(2)), "const <int> [1, 2]"},
		{"map", af.MapLiteral(af.MapLiteralOptions{}, af.MapLiteralEntry("k", af.Integer(1))), "{'k' : 1}"},
		{"generic type", af.TypeName("Map", af.TypeName("String"), af.TypeName("int")), "Map<String, int>"},
		{"for in", af.ForEachStatement(af.DeclaredIdentifier(token.KwVar, nil, "x"), af.Identifier("xs"), af.Block()),
			"for (var x in xs) {}"},
		{"await for", af.AwaitForEachStatementWithIdentifier(af.Identifier("x"), af.Identifier("xs"), af.Block()),
			"await for (x in xs) {}"},
		{"yield each", af.YieldEachStatement(af.Identifier("xs")), "yield* xs;"},
		{"async generator", af.AsyncGeneratorBlockFunctionBody(), "async* {}"},
		{"arrow body", af.ExpressionFunctionBody(af.Integer(1)), "=> 1;"},
		{"catch", af.CatchClause(af.CatchClauseOptions{ExceptionType: af.TypeName("E"), ExceptionParameter: "e",
			StackTraceParameter: "s"}), "on E catch (e, s) {}"},
		{"switch", af.SwitchStatement(af.Identifier("x"),
			af.SwitchCase(af.Integer(1), af.BreakStatement("")),
			af.SwitchDefault(af.ReturnStatement(nil))), "switch (x) {case 1: break; default: return;}"},
		{"positional parameters", af.FormalParameterList(
			af.SimpleFormalParameter(token.NoKeyword, nil, "a"),
			af.PositionalFormalParameter(af.SimpleFormalParameter(token.NoKeyword, nil, "b"), af.Integer(1))),
			"(a, [b = 1])"},
		{"named parameters", af.FormalParameterList(
			af.NamedFormalParameter(af.SimpleFormalParameter(token.KwFinal, af.TypeName("int"), "b"), af.Integer(2))),
			"({final int b : 2})"},
		{"import", af.ImportDirective(af.ImportOptions{URI: "dart:math", Deferred: true, Prefix: "m"},
			af.ShowCombinator("max", "min")), "import 'dart:math' deferred as m show max, min;"},
		{"part of", af.PartOfDirective(af.LibraryIdentifier("app", "util")), "part of app.util;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSource(tt.node))
		})
	}
}

func TestToSourceClass(t *testing.T) {
	class := af.ClassDeclaration(af.ClassOptions{Name: "A", Extends: af.ExtendsClause(af.TypeName("B"))},
		af.FieldDeclaration(false, token.KwFinal, af.TypeName("int"), af.VariableDeclaration("x", nil)),
		af.ConstructorDeclaration(af.ConstructorOptions{
			ReturnType:   af.Identifier("A"),
			Initializers: []ast.ConstructorInitializer{af.ConstructorFieldInitializer(true, "x", af.Integer(0))},
		}),
		af.MethodDeclaration(af.MethodOptions{
			ReturnType: af.TypeName("int"),
			Property:   token.KwGet,
			Name:       "y",
			Body:       af.ExpressionFunctionBody(af.Identifier("x")),
		}))

	assert.Equal(t, "class A extends B {final int x; A() : this.x = 0; int get y => x;}", ToSource(class))
}

func TestToSourceCompilationUnit(t *testing.T) {
	unit := af.CompilationUnit(af.CompilationUnitOptions{
		ScriptTag:  "#!/usr/bin/env dart",
		Directives: []ast.Directive{af.LibraryDirective("app")},
		Declarations: []ast.CompilationUnitMember{
			af.FunctionDeclaration(af.TypeName("void"), token.NoKeyword, "main", af.FunctionExpression(nil, nil)),
		},
	})

	assert.Equal(t, "#!/usr/bin/env dart library app; void main() {}", ToSource(unit))
	assert.Equal(t, "#!/usr/bin/env dart\nlibrary app;\nvoid main() {}\n", FormatFile(unit))
	assert.Equal(t, "", ToSource(af.CompilationUnit(af.CompilationUnitOptions{})))
}

func TestResultSpans(t *testing.T) {
	cond := lessThanOne()
	ret := af.ReturnStatement(af.Integer(1))
	stmt := af.IfStatement(cond, af.Block(ret), nil)

	result := Print("main.dart", stmt)
	require.Equal(t, "if (a < 1) {return 1;}", result.Source)

	offset, length, ok := result.Range(cond)
	require.True(t, ok)
	assert.Equal(t, 4, offset)
	assert.Equal(t, 5, length)
	assert.Equal(t, "a < 1", result.Text(cond))
	assert.Equal(t, "return 1;", result.Text(ret))

	span := result.Span(cond)
	require.True(t, span.IsValid())
	assert.Equal(t, "main.dart:1:5-10", span.String())

	_, ok = result.Offset(cond.Operator)
	assert.True(t, ok)
	_, _, ok = result.Range(af.Identifier("other"))
	assert.False(t, ok)
	assert.False(t, result.Span(af.Identifier("other")).IsValid())
}

func TestResultNodeAt(t *testing.T) {
	cond := lessThanOne()
	stmt := af.IfStatement(cond, af.Block(), nil)
	result := Print("", stmt)

	assert.Same(t, stmt, result.NodeAt(stmt, 0))
	assert.Same(t, cond.LeftOperand, result.NodeAt(stmt, 4))
	assert.Same(t, cond, result.NodeAt(stmt, 6))
	assert.Nil(t, result.NodeAt(stmt, len(result.Source)))
}

func TestEmptyCompilationUnitSpan(t *testing.T) {
	unit := af.CompilationUnit(af.CompilationUnitOptions{})
	result := Print("empty.dart", unit)

	offset, length, ok := result.Range(unit)
	require.True(t, ok)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 0, length)
}

func TestFormatText(t *testing.T) {
	assert.Equal(t, "\n", FormatText(""))
	assert.Equal(t, "a\nb\n", FormatText("a  \r\nb"))
	assert.Equal(t, "a\n", FormatText("a\t\n"))
}

func TestPrintFileSpans(t *testing.T) {
	ret := af.ReturnStatement(af.Integer(1))
	fn := af.FunctionDeclaration(af.TypeName("int"), token.NoKeyword, "one",
		af.FunctionExpression(nil, af.BlockFunctionBody(ret)))
	unit := af.CompilationUnit(af.CompilationUnitOptions{
		Directives:   []ast.Directive{af.LibraryDirective("app")},
		Declarations: []ast.CompilationUnitMember{fn},
	})

	result := PrintFile("app.dart", unit)
	require.Equal(t, "library app;\nint one() {return 1;}\n", result.Source)

	span := result.Span(ret)
	require.True(t, span.IsValid())
	assert.Equal(t, 2, span.Start.Line)
	assert.Equal(t, 12, span.Start.Column)
	assert.Equal(t, "return 1;", result.Text(ret))

	assert.Equal(t, "\n", PrintFile("empty.dart", af.CompilationUnit(af.CompilationUnitOptions{})).Source)
}
