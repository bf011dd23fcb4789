package astfactory

import (
	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// ArgumentList creates "(arguments)".
func ArgumentList(arguments ...ast.Expression) *ast.ArgumentList {
	return ast.NewArgumentList(tok(token.OpenParen), List(arguments...), tok(token.CloseParen))
}

// AsExpression creates "expression as Type".
func AsExpression(expression ast.Expression, typ *ast.TypeName) *ast.AsExpression {
	return ast.NewAsExpression(expression, kw(token.KwAs), typ)
}

// AssignmentExpression creates "left op right" for = and the compound
// assignment operators.
func AssignmentExpression(leftHandSide ast.Expression, operator token.Type, rightHandSide ast.Expression) *ast.AssignmentExpression {
	return ast.NewAssignmentExpression(leftHandSide, tok(operator), rightHandSide)
}

// AwaitExpression creates "await expression".
func AwaitExpression(expression ast.Expression) *ast.AwaitExpression {
	return ast.NewAwaitExpression(contextual("await"), expression)
}

// BinaryExpression creates "left op right".
func BinaryExpression(leftOperand ast.Expression, operator token.Type, rightOperand ast.Expression) *ast.BinaryExpression {
	return ast.NewBinaryExpression(leftOperand, tok(operator), rightOperand)
}

// CascadeExpression creates "target..a..b()". The sections are normally built
// with the Cascaded* functions.
func CascadeExpression(target ast.Expression, cascadeSections ...ast.Expression) *ast.CascadeExpression {
	return ast.NewCascadeExpression(target, List(cascadeSections...))
}

// CascadedIndexExpression creates the cascade section "..[index]".
func CascadedIndexExpression(index ast.Expression) *ast.IndexExpression {
	return ast.NewCascadedIndexExpression(tok(token.PeriodPeriod), tok(token.OpenSquareBracket), index,
		tok(token.CloseSquareBracket))
}

// CascadedMethodInvocation creates the cascade section "..name(arguments)".
func CascadedMethodInvocation(methodName string, arguments ...ast.Expression) *ast.MethodInvocation {
	return ast.NewMethodInvocation(nil, tok(token.PeriodPeriod), Identifier(methodName), ArgumentList(arguments...))
}

// CascadedPropertyAccess creates the cascade section "..name".
func CascadedPropertyAccess(propertyName string) *ast.PropertyAccess {
	return ast.NewPropertyAccess(nil, tok(token.PeriodPeriod), Identifier(propertyName))
}

// ConditionalExpression creates "condition ? then : else".
func ConditionalExpression(condition, thenExpression, elseExpression ast.Expression) *ast.ConditionalExpression {
	return ast.NewConditionalExpression(condition, tok(token.Question), thenExpression, tok(token.Colon), elseExpression)
}

// FunctionExpression creates "(parameters) body". A nil parameter list
// becomes "()" and a nil body an empty block.
func FunctionExpression(parameters *ast.FormalParameterList, body ast.FunctionBody) *ast.FunctionExpression {
	if parameters == nil {
		parameters = FormalParameterList()
	}
	if body == nil {
		body = BlockFunctionBody()
	}
	return ast.NewFunctionExpression(parameters, body)
}

// FunctionExpressionInvocation creates "function(arguments)" for a callee
// that is not a plain method name.
func FunctionExpressionInvocation(function ast.Expression, arguments ...ast.Expression) *ast.FunctionExpressionInvocation {
	return ast.NewFunctionExpressionInvocation(function, ArgumentList(arguments...))
}

// IndexExpression creates "target[index]".
func IndexExpression(target, index ast.Expression) *ast.IndexExpression {
	return ast.NewIndexExpression(target, tok(token.OpenSquareBracket), index, tok(token.CloseSquareBracket))
}

// InstanceCreationOptions describes the constructor an instance creation
// expression calls. ConstructorName takes precedence over Type and Name.
type InstanceCreationOptions struct {
	// Keyword is token.KwNew, token.KwConst or token.NoKeyword.
	Keyword         token.Keyword
	Type            *ast.TypeName
	Name            string
	ConstructorName *ast.ConstructorName
}

// InstanceCreationExpression creates "new Type.name(arguments)".
func InstanceCreationExpression(opts InstanceCreationOptions, arguments ...ast.Expression) *ast.InstanceCreationExpression {
	name := opts.ConstructorName
	if name == nil {
		name = ConstructorName(opts.Type, opts.Name)
	}
	return ast.NewInstanceCreationExpression(optKeyword(opts.Keyword), name, ArgumentList(arguments...))
}

// IsExpression creates "expression is Type" or, when negated,
// "expression is! Type".
func IsExpression(expression ast.Expression, negated bool, typ *ast.TypeName) *ast.IsExpression {
	return ast.NewIsExpression(expression, kw(token.KwIs), optTok(negated, token.Bang), typ)
}

// MethodInvocation creates "target.name(arguments)", or "name(arguments)"
// when target is nil.
func MethodInvocation(target ast.Expression, methodName string, arguments ...ast.Expression) *ast.MethodInvocation {
	return ast.NewMethodInvocation(target, optTok(!ast.IsNil(target), token.Period), Identifier(methodName),
		ArgumentList(arguments...))
}

// NamedExpression creates the named argument "label: expression".
func NamedExpression(label string, expression ast.Expression) *ast.NamedExpression {
	return ast.NewNamedExpression(Label(label), expression)
}

// ParenthesizedExpression creates "(expression)".
func ParenthesizedExpression(expression ast.Expression) *ast.ParenthesizedExpression {
	return ast.NewParenthesizedExpression(tok(token.OpenParen), expression, tok(token.CloseParen))
}

// PostfixExpression creates "operand++" or "operand--".
func PostfixExpression(operand ast.Expression, operator token.Type) *ast.PostfixExpression {
	return ast.NewPostfixExpression(operand, tok(operator))
}

// PrefixExpression creates "op operand", e.g. "-x", "!b" or "++i".
func PrefixExpression(operator token.Type, operand ast.Expression) *ast.PrefixExpression {
	return ast.NewPrefixExpression(tok(operator), operand)
}

// PropertyAccess creates "target.name" for an arbitrary target expression.
func PropertyAccess(target ast.Expression, propertyName string) *ast.PropertyAccess {
	return ast.NewPropertyAccess(target, tok(token.Period), Identifier(propertyName))
}

// RethrowExpression creates "rethrow".
func RethrowExpression() *ast.RethrowExpression {
	return ast.NewRethrowExpression(kw(token.KwRethrow))
}

// SuperExpression creates "super".
func SuperExpression() *ast.SuperExpression {
	return ast.NewSuperExpression(kw(token.KwSuper))
}

// ThisExpression creates "this".
func ThisExpression() *ast.ThisExpression {
	return ast.NewThisExpression(kw(token.KwThis))
}

// ThrowExpression creates "throw expression"; a nil expression yields a bare
// "throw".
func ThrowExpression(expression ast.Expression) *ast.ThrowExpression {
	return ast.NewThrowExpression(kw(token.KwThrow), expression)
}
