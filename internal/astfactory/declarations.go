package astfactory

import (
	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// ===== Classes =====

// ClassOptions describes the header of a class declaration.
type ClassOptions struct {
	Metadata       []*ast.Annotation
	Abstract       bool
	Name           string
	TypeParameters *ast.TypeParameterList
	Extends        *ast.ExtendsClause
	With           *ast.WithClause
	Implements     *ast.ImplementsClause
	Native         *ast.NativeClause
}

// ClassDeclaration creates "abstract class Name<T> extends S with M
// implements I { members }".
func ClassDeclaration(opts ClassOptions, members ...ast.ClassMember) *ast.ClassDeclaration {
	return ast.NewClassDeclaration(List(opts.Metadata...), optKeywordIf(opts.Abstract, token.KwAbstract),
		kw(token.KwClass), Identifier(opts.Name), opts.TypeParameters, opts.Extends, opts.With, opts.Implements,
		opts.Native, tok(token.OpenCurlyBracket), List(members...), tok(token.CloseCurlyBracket))
}

// ClassTypeAlias creates the mixin application "abstract class Name<T> = S
// with M implements I;".
func ClassTypeAlias(name string, typeParameters *ast.TypeParameterList, abstract bool, superclass *ast.TypeName,
	withClause *ast.WithClause, implementsClause *ast.ImplementsClause) *ast.ClassTypeAlias {
	return ast.NewClassTypeAlias(nil, kw(token.KwClass), Identifier(name), typeParameters, tok(token.Eq),
		optKeywordIf(abstract, token.KwAbstract), superclass, withClause, implementsClause, tok(token.Semicolon))
}

// ExtendsClause creates "extends Type".
func ExtendsClause(typ *ast.TypeName) *ast.ExtendsClause {
	return ast.NewExtendsClause(kw(token.KwExtends), typ)
}

// WithClause creates "with A, B".
func WithClause(types ...*ast.TypeName) *ast.WithClause {
	return ast.NewWithClause(kw(token.KwWith), List(types...))
}

// ImplementsClause creates "implements A, B".
func ImplementsClause(types ...*ast.TypeName) *ast.ImplementsClause {
	return ast.NewImplementsClause(kw(token.KwImplements), List(types...))
}

// NativeClause creates "native 'code'".
func NativeClause(nativeCode string) *ast.NativeClause {
	return ast.NewNativeClause(token.FromText("native"), String(nativeCode))
}

// ===== Constructors =====

// ConstructorOptions describes a constructor declaration. ReturnType names
// the class. A nil Parameters becomes "()" and a nil Body becomes ";".
type ConstructorOptions struct {
	Metadata              []*ast.Annotation
	External              bool
	Const                 bool
	Factory               bool
	ReturnType            ast.Identifier
	Name                  string
	Parameters            *ast.FormalParameterList
	Initializers          []ast.ConstructorInitializer
	RedirectedConstructor *ast.ConstructorName
	Body                  ast.FunctionBody
}

// ConstructorDeclaration creates "const Type.name(params) : initializers body"
// or, with a redirect, "factory Type(params) = Other;". The separator is a
// colon before initializers and an equals sign before a redirect.
func ConstructorDeclaration(opts ConstructorOptions) *ast.ConstructorDeclaration {
	params := opts.Parameters
	if params == nil {
		params = FormalParameterList()
	}
	body := opts.Body
	if body == nil {
		body = EmptyFunctionBody()
	}

	var separator *token.Token
	switch {
	case len(opts.Initializers) > 0:
		separator = tok(token.Colon)
	case opts.RedirectedConstructor != nil:
		separator = tok(token.Eq)
	}

	return ast.NewConstructorDeclaration(List(opts.Metadata...), optKeywordIf(opts.External, token.KwExternal),
		optKeywordIf(opts.Const, token.KwConst), optKeywordIf(opts.Factory, token.KwFactory), opts.ReturnType,
		optTok(opts.Name != "", token.Period), optIdentifier(opts.Name), params, separator,
		List(opts.Initializers...), opts.RedirectedConstructor, body)
}

// ConstructorFieldInitializer creates "this.field = expression" or
// "field = expression".
func ConstructorFieldInitializer(prefixedWithThis bool, fieldName string, expression ast.Expression) *ast.ConstructorFieldInitializer {
	return ast.NewConstructorFieldInitializer(optKeywordIf(prefixedWithThis, token.KwThis),
		optTok(prefixedWithThis, token.Period), Identifier(fieldName), tok(token.Eq), expression)
}

// ConstructorName creates "Type" or "Type.name".
func ConstructorName(typ *ast.TypeName, name string) *ast.ConstructorName {
	return ast.NewConstructorName(typ, optTok(name != "", token.Period), optIdentifier(name))
}

// RedirectingConstructorInvocation creates "this.name(arguments)" or
// "this(arguments)".
func RedirectingConstructorInvocation(constructorName string, arguments ...ast.Expression) *ast.RedirectingConstructorInvocation {
	return ast.NewRedirectingConstructorInvocation(kw(token.KwThis), optTok(constructorName != "", token.Period),
		optIdentifier(constructorName), ArgumentList(arguments...))
}

// SuperConstructorInvocation creates "super.name(arguments)" or
// "super(arguments)".
func SuperConstructorInvocation(constructorName string, arguments ...ast.Expression) *ast.SuperConstructorInvocation {
	return ast.NewSuperConstructorInvocation(kw(token.KwSuper), optTok(constructorName != "", token.Period),
		optIdentifier(constructorName), ArgumentList(arguments...))
}

// ===== Enums =====

// EnumDeclaration creates "enum Name { constants }".
func EnumDeclaration(name *ast.SimpleIdentifier, constants ...*ast.EnumConstantDeclaration) *ast.EnumDeclaration {
	return ast.NewEnumDeclaration(nil, kw(token.KwEnum), name, tok(token.OpenCurlyBracket), List(constants...),
		tok(token.CloseCurlyBracket))
}

// EnumDeclarationFromStrings creates an enum from plain names.
func EnumDeclarationFromStrings(name string, constantNames ...string) *ast.EnumDeclaration {
	constants := make([]*ast.EnumConstantDeclaration, 0, len(constantNames))
	for _, c := range constantNames {
		constants = append(constants, EnumConstantDeclaration(c))
	}
	return EnumDeclaration(Identifier(name), constants...)
}

// EnumConstantDeclaration creates one enum constant.
func EnumConstantDeclaration(name string) *ast.EnumConstantDeclaration {
	return ast.NewEnumConstantDeclaration(nil, Identifier(name))
}

// ===== Members and top-level declarations =====

// FieldDeclaration creates "static final Type a, b;".
func FieldDeclaration(static bool, keyword token.Keyword, typ *ast.TypeName,
	variables ...*ast.VariableDeclaration) *ast.FieldDeclaration {
	return ast.NewFieldDeclaration(nil, optKeywordIf(static, token.KwStatic),
		VariableDeclarationList(keyword, typ, variables...), tok(token.Semicolon))
}

// FunctionDeclaration creates a top-level function, getter or setter.
// property is token.KwGet, token.KwSet or token.NoKeyword.
func FunctionDeclaration(returnType *ast.TypeName, property token.Keyword, name string,
	function *ast.FunctionExpression) *ast.FunctionDeclaration {
	return ast.NewFunctionDeclaration(nil, nil, returnType, optKeyword(property), Identifier(name), function)
}

// FunctionTypeAlias creates "typedef R Name<T>(params);".
func FunctionTypeAlias(returnType *ast.TypeName, name string, typeParameters *ast.TypeParameterList,
	parameters *ast.FormalParameterList) *ast.FunctionTypeAlias {
	if parameters == nil {
		parameters = FormalParameterList()
	}
	return ast.NewFunctionTypeAlias(nil, kw(token.KwTypedef), returnType, Identifier(name), typeParameters,
		parameters, tok(token.Semicolon))
}

// MethodOptions describes a method declaration. Modifier is token.KwStatic,
// token.KwAbstract or token.NoKeyword; Property is token.KwGet, token.KwSet
// or token.NoKeyword. A nil Body becomes ";". A nil Parameters becomes "()"
// except for getters, which have no parameter list.
type MethodOptions struct {
	Metadata   []*ast.Annotation
	External   bool
	Modifier   token.Keyword
	ReturnType *ast.TypeName
	Property   token.Keyword
	Operator   bool
	Name       string
	Parameters *ast.FormalParameterList
	Body       ast.FunctionBody
}

// MethodDeclaration creates a class method, getter, setter or operator.
func MethodDeclaration(opts MethodOptions) *ast.MethodDeclaration {
	params := opts.Parameters
	if params == nil && opts.Property != token.KwGet {
		params = FormalParameterList()
	}
	body := opts.Body
	if body == nil {
		body = EmptyFunctionBody()
	}
	return ast.NewMethodDeclaration(List(opts.Metadata...), optKeywordIf(opts.External, token.KwExternal),
		optKeyword(opts.Modifier), opts.ReturnType, optKeyword(opts.Property),
		optKeywordIf(opts.Operator, token.KwOperator), Identifier(opts.Name), params, body)
}

// TopLevelVariableDeclaration creates "final Type a = 1, b;" at file scope.
func TopLevelVariableDeclaration(keyword token.Keyword, typ *ast.TypeName,
	variables ...*ast.VariableDeclaration) *ast.TopLevelVariableDeclaration {
	return ast.NewTopLevelVariableDeclaration(nil, VariableDeclarationList(keyword, typ, variables...),
		tok(token.Semicolon))
}

// VariableDeclaration creates "name" or, with an initializer, "name = value".
func VariableDeclaration(name string, initializer ast.Expression) *ast.VariableDeclaration {
	return ast.NewVariableDeclaration(nil, Identifier(name), optTok(!ast.IsNil(initializer), token.Eq), initializer)
}

// VariableDeclarationList creates "var a, b" without a terminator. keyword
// is token.KwVar, token.KwFinal, token.KwConst or token.NoKeyword.
func VariableDeclarationList(keyword token.Keyword, typ *ast.TypeName,
	variables ...*ast.VariableDeclaration) *ast.VariableDeclarationList {
	return ast.NewVariableDeclarationList(nil, optKeyword(keyword), typ, List(variables...))
}

// DeclaredIdentifier creates the loop variable "final Type name".
func DeclaredIdentifier(keyword token.Keyword, typ *ast.TypeName, name string) *ast.DeclaredIdentifier {
	return ast.NewDeclaredIdentifier(nil, optKeyword(keyword), typ, Identifier(name))
}

// ===== Types =====

// TypeName creates "Name" or "Name<A, B>".
func TypeName(name string, arguments ...*ast.TypeName) *ast.TypeName {
	return TypeNameOf(Identifier(name), arguments...)
}

// TypeNameOf creates a type name from an identifier node, for prefixed types
// such as "async.Future".
func TypeNameOf(name ast.Identifier, arguments ...*ast.TypeName) *ast.TypeName {
	if len(arguments) == 0 {
		return ast.NewTypeName(name, nil)
	}
	return ast.NewTypeName(name, TypeArgumentList(arguments...))
}

// TypeArgumentList creates "<A, B>".
func TypeArgumentList(typeNames ...*ast.TypeName) *ast.TypeArgumentList {
	return ast.NewTypeArgumentList(tok(token.Lt), List(typeNames...), tok(token.Gt))
}

// TypeParameter creates "T" or, with a bound, "T extends B".
func TypeParameter(name string, bound *ast.TypeName) *ast.TypeParameter {
	return ast.NewTypeParameter(nil, Identifier(name), optKeywordIf(!ast.IsNil(bound), token.KwExtends), bound)
}

// TypeParameterList creates "<K, V>" from unbounded names.
func TypeParameterList(typeNames ...string) *ast.TypeParameterList {
	params := make([]*ast.TypeParameter, 0, len(typeNames))
	for _, name := range typeNames {
		params = append(params, TypeParameter(name, nil))
	}
	return TypeParameterListOf(params...)
}

// TypeParameterListOf creates "<T extends B, U>" from built parameters.
func TypeParameterListOf(params ...*ast.TypeParameter) *ast.TypeParameterList {
	return ast.NewTypeParameterList(tok(token.Lt), List(params...), tok(token.Gt))
}

// ===== Annotations and labels =====

// Annotation creates "@name".
func Annotation(name ast.Identifier) *ast.Annotation {
	return ast.NewAnnotation(tok(token.At), name, nil, nil, nil)
}

// ConstructorAnnotation creates "@Name.constructor(arguments)". An empty
// constructorName yields "@Name(arguments)".
func ConstructorAnnotation(name ast.Identifier, constructorName string, arguments *ast.ArgumentList) *ast.Annotation {
	return ast.NewAnnotation(tok(token.At), name, optTok(constructorName != "", token.Period),
		optIdentifier(constructorName), arguments)
}

// Label creates "name:".
func Label(name string) *ast.Label {
	return ast.NewLabel(Identifier(name), tok(token.Colon))
}
