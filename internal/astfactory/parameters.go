package astfactory

import (
	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// FormalParameterList creates "(a, b, [c = 1])" or "(a, {b: 1})". The group
// delimiters are derived from the kinds of the parameters: square brackets
// around positional and braces around named parameters.
func FormalParameterList(parameters ...ast.FormalParameter) *ast.FormalParameterList {
	var left, right *token.Token
	for _, p := range parameters {
		switch p.Kind() {
		case ast.ParameterPositional:
			left, right = tok(token.OpenSquareBracket), tok(token.CloseSquareBracket)
		case ast.ParameterNamed:
			left, right = tok(token.OpenCurlyBracket), tok(token.CloseCurlyBracket)
		default:
			continue
		}
		break
	}
	return ast.NewFormalParameterList(tok(token.OpenParen), List(parameters...), left, right, tok(token.CloseParen))
}

// SimpleFormalParameter creates "final Type name". keyword is token.KwVar,
// token.KwFinal, token.KwConst or token.NoKeyword.
func SimpleFormalParameter(keyword token.Keyword, typ *ast.TypeName, name string) *ast.SimpleFormalParameter {
	return ast.NewSimpleFormalParameter(nil, optKeyword(keyword), typ, Identifier(name))
}

// FieldFormalParameter creates "Type this.name" or, with a parameter list,
// "this.name(params)".
func FieldFormalParameter(keyword token.Keyword, typ *ast.TypeName, name string,
	parameters *ast.FormalParameterList) *ast.FieldFormalParameter {
	return ast.NewFieldFormalParameter(nil, optKeyword(keyword), typ, kw(token.KwThis), tok(token.Period),
		Identifier(name), parameters)
}

// FunctionTypedFormalParameter creates "R name(params)".
func FunctionTypedFormalParameter(returnType *ast.TypeName, name string,
	parameters ...ast.FormalParameter) *ast.FunctionTypedFormalParameter {
	return ast.NewFunctionTypedFormalParameter(nil, returnType, Identifier(name), FormalParameterList(parameters...))
}

// NamedFormalParameter wraps parameter as a named parameter with an optional
// default value, "name: value".
func NamedFormalParameter(parameter ast.NormalFormalParameter, defaultValue ast.Expression) *ast.DefaultFormalParameter {
	return ast.NewDefaultFormalParameter(parameter, ast.ParameterNamed, optTok(!ast.IsNil(defaultValue), token.Colon),
		defaultValue)
}

// PositionalFormalParameter wraps parameter as an optional positional
// parameter with an optional default value, "name = value".
func PositionalFormalParameter(parameter ast.NormalFormalParameter, defaultValue ast.Expression) *ast.DefaultFormalParameter {
	return ast.NewDefaultFormalParameter(parameter, ast.ParameterPositional, optTok(!ast.IsNil(defaultValue), token.Eq),
		defaultValue)
}
