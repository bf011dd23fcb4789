package astfactory

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// lexemes joins the token text of n with single spaces.
func lexemes(n ast.Node) string {
	var parts []string
	for _, t := range ast.Tokens(n) {
		parts = append(parts, t.Lexeme())
	}
	return strings.Join(parts, " ")
}

func TestListCopiesInput(t *testing.T) {
	in := []int{1, 2, 3}
	out := List(in...)
	out[0] = 9
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Empty(t, List[int]())
}

func TestBinaryExpression(t *testing.T) {
	e := BinaryExpression(Identifier("a"), token.Plus, Integer(1))

	assert.Equal(t, "a + 1", lexemes(e))
	assert.Same(t, e, e.LeftOperand.Parent())
	assert.Same(t, e, e.RightOperand.Parent())
	assert.Equal(t, token.Plus, e.Operator.Type())
}

func TestLiteralText(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"string", String("value"), "'value'"},
		{"integer", Integer(-42), "-42"},
		{"true", Boolean(true), "true"},
		{"false", Boolean(false), "false"},
		{"null", Null(), "null"},
		{"symbol", SymbolLiteral("a", "b"), "# a b"},
		{"prefixed", PrefixedIdentifierFromStrings("p", "x"), "p . x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexemes(tt.node))
		})
	}
}

func TestDoubleTextParsesBack(t *testing.T) {
	for _, v := range []float64{0, 1, -2.5, 3.14159, 1e22, 1.5e-9, 123456789} {
		d := Double(v)
		text := d.Literal.Lexeme()
		assert.True(t, strings.ContainsAny(text, ".e"), "text %q has no point or exponent", text)
		parsed, err := strconv.ParseFloat(text, 64)
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
		assert.Equal(t, v, d.Value)
	}
}

func TestCatchClauseCombinations(t *testing.T) {
	tests := []struct {
		name string
		opts CatchClauseOptions
		want string
	}{
		{"on only", CatchClauseOptions{ExceptionType: TypeName("E")}, "on E { }"},
		{"catch only", CatchClauseOptions{ExceptionParameter: "e"}, "catch ( e ) { }"},
		{"catch with stack", CatchClauseOptions{ExceptionParameter: "e", StackTraceParameter: "s"}, "catch ( e , s ) { }"},
		{"on and catch", CatchClauseOptions{ExceptionType: TypeName("E"), ExceptionParameter: "e", StackTraceParameter: "s"},
			"on E catch ( e , s ) { }"},
		{"stack without exception", CatchClauseOptions{ExceptionType: TypeName("E"), StackTraceParameter: "s"}, "on E { }"},
		{"no type no parameter", CatchClauseOptions{}, "{ }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CatchClause(tt.opts)
			assert.Equal(t, tt.want, lexemes(c))
			if tt.opts.ExceptionParameter == "" {
				assert.Nil(t, c.CatchKeyword)
				assert.Nil(t, c.StackTraceParameter)
			}
		})
	}
}

func TestVariadicAndSliceFormsAgree(t *testing.T) {
	stmts := []ast.Statement{ReturnStatement(Integer(1))}
	fromSlice := Block(stmts...)
	fromArgs := Block(ReturnStatement(Integer(1)))

	assert.True(t, ast.Equal(fromSlice, fromArgs))

	args := []ast.Expression{Identifier("x"), Integer(2)}
	assert.True(t, ast.Equal(
		MethodInvocation(nil, "f", args...),
		MethodInvocation(nil, "f", Identifier("x"), Integer(2))))
}

func TestMethodInvocationPeriod(t *testing.T) {
	assert.Equal(t, "f ( )", lexemes(MethodInvocation(nil, "f")))
	assert.Equal(t, "a . f ( 1 )", lexemes(MethodInvocation(Identifier("a"), "f", Integer(1))))
}

func TestIfStatementElse(t *testing.T) {
	withoutElse := IfStatement(Boolean(true), Block(), nil)
	assert.Nil(t, withoutElse.ElseKeyword)
	assert.Equal(t, "if ( true ) { }", lexemes(withoutElse))

	withElse := IfStatement(Boolean(true), Block(), EmptyStatement())
	assert.NotNil(t, withElse.ElseKeyword)
	assert.Equal(t, "if ( true ) { } else ;", lexemes(withElse))

	typedNil := IfStatement(Boolean(true), Block(), (*ast.Block)(nil))
	assert.Nil(t, typedNil.ElseKeyword)
	assert.Nil(t, typedNil.ElseStatement)
	_, err := (&ast.ValidatorTransformer{}).Transform(typedNil)
	assert.NoError(t, err)
}

func TestTypedNilOptionalChildren(t *testing.T) {
	inner := func() ast.NormalFormalParameter { return SimpleFormalParameter(token.NoKeyword, nil, "x") }
	tests := []struct {
		name  string
		node  ast.Node
		token func(ast.Node) *token.Token
	}{
		{"initializer", VariableDeclaration("x", (*ast.IntegerLiteral)(nil)),
			func(n ast.Node) *token.Token { return n.(*ast.VariableDeclaration).Equals }},
		{"named default", NamedFormalParameter(inner(), (*ast.IntegerLiteral)(nil)),
			func(n ast.Node) *token.Token { return n.(*ast.DefaultFormalParameter).Separator }},
		{"positional default", PositionalFormalParameter(inner(), (*ast.IntegerLiteral)(nil)),
			func(n ast.Node) *token.Token { return n.(*ast.DefaultFormalParameter).Separator }},
		{"bound", TypeParameter("T", nil),
			func(n ast.Node) *token.Token { return n.(*ast.TypeParameter).ExtendsKeyword }},
		{"target", MethodInvocation((*ast.SimpleIdentifier)(nil), "m"),
			func(n ast.Node) *token.Token { return n.(*ast.MethodInvocation).Period }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tt.token(tt.node))
			_, err := (&ast.ValidatorTransformer{}).Transform(tt.node)
			assert.NoError(t, err)
		})
	}
}

func TestStringIsDeterministic(t *testing.T) {
	first, second := String("value"), String("value")

	assert.Equal(t, first.Literal.Lexeme(), second.Literal.Lexeme())
	assert.Equal(t, "'value'", first.Literal.Lexeme())
	assert.Equal(t, first.Value, second.Value)
	assert.True(t, ast.Equal(first, second))
}

func TestFormalParameterListDelimiters(t *testing.T) {
	tests := []struct {
		name   string
		params []ast.FormalParameter
		want   string
	}{
		{"required", []ast.FormalParameter{SimpleFormalParameter(token.NoKeyword, nil, "a")}, "( a )"},
		{"positional", []ast.FormalParameter{
			SimpleFormalParameter(token.NoKeyword, nil, "a"),
			PositionalFormalParameter(SimpleFormalParameter(token.NoKeyword, nil, "b"), Integer(1)),
		}, "( a [ b = 1 ] )"},
		{"named", []ast.FormalParameter{
			NamedFormalParameter(SimpleFormalParameter(token.KwFinal, TypeName("int"), "b"), nil),
		}, "( { final int b } )"},
		{"empty", nil, "( )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexemes(FormalParameterList(tt.params...)))
		})
	}
}

func TestDefaultParameterKind(t *testing.T) {
	inner := SimpleFormalParameter(token.NoKeyword, nil, "x")
	named := NamedFormalParameter(inner, Integer(0))

	assert.Equal(t, ast.ParameterNamed, named.Kind())
	assert.Equal(t, ast.ParameterNamed, inner.Kind())
	assert.Equal(t, token.Colon, named.Separator.Type())
}

func TestClassDeclarationLookup(t *testing.T) {
	class := ClassDeclaration(ClassOptions{Name: "Point", Extends: ExtendsClause(TypeName("Object"))},
		FieldDeclaration(false, token.KwFinal, TypeName("int"), VariableDeclaration("x", nil)),
		ConstructorDeclaration(ConstructorOptions{ReturnType: Identifier("Point")}),
		ConstructorDeclaration(ConstructorOptions{
			ReturnType: Identifier("Point"),
			Name:       "origin",
			Initializers: []ast.ConstructorInitializer{
				ConstructorFieldInitializer(true, "x", Integer(0)),
			},
		}),
		MethodDeclaration(MethodOptions{ReturnType: TypeName("int"), Property: token.KwGet, Name: "sum",
			Body: ExpressionFunctionBody(Identifier("x"))}),
	)

	unnamed := class.Constructor("")
	require.NotNil(t, unnamed)
	assert.Nil(t, unnamed.Name)
	assert.Nil(t, unnamed.Separator)

	origin := class.Constructor("origin")
	require.NotNil(t, origin)
	assert.Equal(t, token.Colon, origin.Separator.Type())
	assert.Equal(t, "Point . origin ( ) : this . x = 0 ;", lexemes(origin))

	assert.Nil(t, class.Constructor("missing"))
	assert.NotNil(t, class.Field("x"))
	assert.NotNil(t, class.Method("sum"))
	assert.Nil(t, class.Method("sum").Parameters)
	assert.Same(t, class, origin.Parent())
}

func TestRedirectingConstructorSeparator(t *testing.T) {
	c := ConstructorDeclaration(ConstructorOptions{
		Factory:               true,
		ReturnType:            Identifier("A"),
		RedirectedConstructor: ConstructorName(TypeName("B"), "named"),
	})
	assert.Equal(t, token.Eq, c.Separator.Type())
	assert.Equal(t, "factory A ( ) = B . named ;", lexemes(c))
}

func TestDirectives(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"library", LibraryDirective("app.main"), "library app main ;"},
		{"import", ImportDirective(ImportOptions{URI: "dart:math", Deferred: true, Prefix: "m"}, ShowCombinator("max")),
			"import 'dart:math' deferred as m show max ;"},
		{"export", ExportDirective("a.dart", HideCombinator("x", "y")), "export 'a.dart' hide x y ;"},
		{"part", PartDirective("b.dart"), "part 'b.dart' ;"},
		{"part of", PartOfDirective(LibraryIdentifier("lib")), "part of lib ;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexemes(tt.node))
		})
	}
}

func TestCompilationUnit(t *testing.T) {
	unit := CompilationUnit(CompilationUnitOptions{
		Directives:   []ast.Directive{LibraryDirective("l")},
		Declarations: []ast.CompilationUnitMember{TopLevelVariableDeclaration(token.KwVar, nil, VariableDeclaration("v", Integer(1)))},
	})

	assert.Equal(t, 1, unit.Directives.Len())
	assert.Equal(t, 1, unit.Declarations.Len())
	assert.Equal(t, token.KwLibrary, unit.BeginToken().Keyword())
	assert.Equal(t, token.Semicolon, unit.EndToken().Type())
}

func TestFunctionDeclarationDefaults(t *testing.T) {
	fn := FunctionDeclaration(TypeName("void"), token.NoKeyword, "main", FunctionExpression(nil, nil))
	assert.Equal(t, "void main ( ) { }", lexemes(fn))
	assert.Nil(t, fn.PropertyKeyword)
}

func TestEnumDeclarationFromStrings(t *testing.T) {
	e := EnumDeclarationFromStrings("Color", "red", "green")
	assert.Equal(t, "enum Color { red green }", lexemes(e))
}

func TestTypeNameArguments(t *testing.T) {
	assert.Nil(t, TypeName("int").TypeArguments)
	assert.Equal(t, "Map < String int >", lexemes(TypeName("Map", TypeName("String"), TypeName("int"))))
	assert.Equal(t, "T extends num", lexemes(TypeParameter("T", TypeName("num"))))
}
