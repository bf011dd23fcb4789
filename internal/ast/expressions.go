package ast

import "github.com/orizon-lang/astkit/internal/token"

// ArgumentList is "(a, b: c)".
type ArgumentList struct {
	baseNode
	LeftParenthesis  *token.Token
	Arguments        *NodeList[Expression]
	RightParenthesis *token.Token
}

func NewArgumentList(leftParenthesis *token.Token, arguments []Expression, rightParenthesis *token.Token) *ArgumentList {
	n := &ArgumentList{LeftParenthesis: leftParenthesis, RightParenthesis: rightParenthesis}
	n.Arguments = newNodeListOf(n, arguments)
	return n
}

func (n *ArgumentList) BeginToken() *token.Token { return n.LeftParenthesis }
func (n *ArgumentList) EndToken() *token.Token   { return n.RightParenthesis }
func (n *ArgumentList) ChildEntities() []interface{} {
	return entities(n.LeftParenthesis, n.Arguments, n.RightParenthesis)
}
func (n *ArgumentList) Accept(visitor Visitor) interface{} { return visitor.VisitArgumentList(n) }

// AsExpression is "expression as Type".
type AsExpression struct {
	baseNode
	Expression Expression
	AsOperator *token.Token
	Type       *TypeName
}

func NewAsExpression(expression Expression, asOperator *token.Token, typ *TypeName) *AsExpression {
	n := &AsExpression{AsOperator: asOperator}
	n.Expression = becomeParentOf(n, expression)
	n.Type = becomeParentOf(n, typ)
	return n
}

func (n *AsExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *AsExpression) EndToken() *token.Token   { return endOf(n) }
func (n *AsExpression) ChildEntities() []interface{} {
	return entities(n.Expression, n.AsOperator, n.Type)
}
func (n *AsExpression) Accept(visitor Visitor) interface{} { return visitor.VisitAsExpression(n) }
func (n *AsExpression) expressionNode()                    {}

// AssignmentExpression is "lhs op rhs" for "=" and the compound assignment
// operators.
type AssignmentExpression struct {
	baseNode
	LeftHandSide  Expression
	Operator      *token.Token
	RightHandSide Expression
}

func NewAssignmentExpression(leftHandSide Expression, operator *token.Token, rightHandSide Expression) *AssignmentExpression {
	n := &AssignmentExpression{Operator: operator}
	n.LeftHandSide = becomeParentOf(n, leftHandSide)
	n.RightHandSide = becomeParentOf(n, rightHandSide)
	return n
}

func (n *AssignmentExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *AssignmentExpression) EndToken() *token.Token   { return endOf(n) }
func (n *AssignmentExpression) ChildEntities() []interface{} {
	return entities(n.LeftHandSide, n.Operator, n.RightHandSide)
}
func (n *AssignmentExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignmentExpression(n)
}
func (n *AssignmentExpression) expressionNode() {}

// AwaitExpression is "await expression".
type AwaitExpression struct {
	baseNode
	AwaitKeyword *token.Token
	Expression   Expression
}

func NewAwaitExpression(awaitKeyword *token.Token, expression Expression) *AwaitExpression {
	n := &AwaitExpression{AwaitKeyword: awaitKeyword}
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *AwaitExpression) BeginToken() *token.Token { return n.AwaitKeyword }
func (n *AwaitExpression) EndToken() *token.Token   { return endOf(n) }
func (n *AwaitExpression) ChildEntities() []interface{} {
	return entities(n.AwaitKeyword, n.Expression)
}
func (n *AwaitExpression) Accept(visitor Visitor) interface{} { return visitor.VisitAwaitExpression(n) }
func (n *AwaitExpression) expressionNode()                    {}

// BinaryExpression is "left op right".
type BinaryExpression struct {
	baseNode
	LeftOperand  Expression
	Operator     *token.Token
	RightOperand Expression
}

func NewBinaryExpression(leftOperand Expression, operator *token.Token, rightOperand Expression) *BinaryExpression {
	n := &BinaryExpression{Operator: operator}
	n.LeftOperand = becomeParentOf(n, leftOperand)
	n.RightOperand = becomeParentOf(n, rightOperand)
	return n
}

func (n *BinaryExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *BinaryExpression) EndToken() *token.Token   { return endOf(n) }
func (n *BinaryExpression) ChildEntities() []interface{} {
	return entities(n.LeftOperand, n.Operator, n.RightOperand)
}
func (n *BinaryExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpression(n)
}
func (n *BinaryExpression) expressionNode() {}

// CascadeExpression is "target..a..b()". Each section is an IndexExpression,
// MethodInvocation, PropertyAccess or AssignmentExpression whose innermost
// target is a cascaded section.
type CascadeExpression struct {
	baseNode
	Target          Expression
	CascadeSections *NodeList[Expression]
}

func NewCascadeExpression(target Expression, cascadeSections []Expression) *CascadeExpression {
	n := &CascadeExpression{}
	n.Target = becomeParentOf(n, target)
	n.CascadeSections = newNodeListOf(n, cascadeSections)
	return n
}

func (n *CascadeExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *CascadeExpression) EndToken() *token.Token   { return endOf(n) }
func (n *CascadeExpression) ChildEntities() []interface{} {
	return entities(n.Target, n.CascadeSections)
}
func (n *CascadeExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitCascadeExpression(n)
}
func (n *CascadeExpression) expressionNode() {}

// ConditionalExpression is "condition ? then : else".
type ConditionalExpression struct {
	baseNode
	Condition      Expression
	Question       *token.Token
	ThenExpression Expression
	Colon          *token.Token
	ElseExpression Expression
}

func NewConditionalExpression(condition Expression, question *token.Token, thenExpression Expression,
	colon *token.Token, elseExpression Expression) *ConditionalExpression {
	n := &ConditionalExpression{Question: question, Colon: colon}
	n.Condition = becomeParentOf(n, condition)
	n.ThenExpression = becomeParentOf(n, thenExpression)
	n.ElseExpression = becomeParentOf(n, elseExpression)
	return n
}

func (n *ConditionalExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *ConditionalExpression) EndToken() *token.Token   { return endOf(n) }
func (n *ConditionalExpression) ChildEntities() []interface{} {
	return entities(n.Condition, n.Question, n.ThenExpression, n.Colon, n.ElseExpression)
}
func (n *ConditionalExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitConditionalExpression(n)
}
func (n *ConditionalExpression) expressionNode() {}

// FunctionExpression is an anonymous function "(params) body".
type FunctionExpression struct {
	baseNode
	Parameters *FormalParameterList
	Body       FunctionBody
}

func NewFunctionExpression(parameters *FormalParameterList, body FunctionBody) *FunctionExpression {
	n := &FunctionExpression{}
	n.Parameters = becomeParentOf(n, parameters)
	n.Body = becomeParentOf(n, body)
	return n
}

func (n *FunctionExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *FunctionExpression) EndToken() *token.Token   { return endOf(n) }
func (n *FunctionExpression) ChildEntities() []interface{} {
	return entities(n.Parameters, n.Body)
}
func (n *FunctionExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionExpression(n)
}
func (n *FunctionExpression) expressionNode() {}

// FunctionExpressionInvocation applies an arbitrary expression to arguments.
type FunctionExpressionInvocation struct {
	baseNode
	Function     Expression
	ArgumentList *ArgumentList
}

func NewFunctionExpressionInvocation(function Expression, argumentList *ArgumentList) *FunctionExpressionInvocation {
	n := &FunctionExpressionInvocation{}
	n.Function = becomeParentOf(n, function)
	n.ArgumentList = becomeParentOf(n, argumentList)
	return n
}

func (n *FunctionExpressionInvocation) BeginToken() *token.Token { return beginOf(n) }
func (n *FunctionExpressionInvocation) EndToken() *token.Token   { return endOf(n) }
func (n *FunctionExpressionInvocation) ChildEntities() []interface{} {
	return entities(n.Function, n.ArgumentList)
}
func (n *FunctionExpressionInvocation) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionExpressionInvocation(n)
}
func (n *FunctionExpressionInvocation) expressionNode() {}

// IndexExpression is "target[index]", or "..[index]" inside a cascade, in
// which case Target is nil and Period holds the ".." token.
type IndexExpression struct {
	baseNode
	Target       Expression
	Period       *token.Token
	LeftBracket  *token.Token
	Index        Expression
	RightBracket *token.Token
}

func NewIndexExpression(target Expression, leftBracket *token.Token, index Expression, rightBracket *token.Token) *IndexExpression {
	n := &IndexExpression{LeftBracket: leftBracket, RightBracket: rightBracket}
	n.Target = becomeParentOf(n, target)
	n.Index = becomeParentOf(n, index)
	return n
}

func NewCascadedIndexExpression(period, leftBracket *token.Token, index Expression, rightBracket *token.Token) *IndexExpression {
	n := &IndexExpression{Period: period, LeftBracket: leftBracket, RightBracket: rightBracket}
	n.Index = becomeParentOf(n, index)
	return n
}

func (n *IndexExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *IndexExpression) EndToken() *token.Token   { return n.RightBracket }
func (n *IndexExpression) ChildEntities() []interface{} {
	return entities(n.Target, n.Period, n.LeftBracket, n.Index, n.RightBracket)
}
func (n *IndexExpression) Accept(visitor Visitor) interface{} { return visitor.VisitIndexExpression(n) }
func (n *IndexExpression) expressionNode()                    {}

// IsCascaded reports whether the expression is a cascade section.
func (n *IndexExpression) IsCascaded() bool { return n.Period != nil }

// InstanceCreationExpression is "new C.name(args)" or "const C(args)".
type InstanceCreationExpression struct {
	baseNode
	Keyword         *token.Token
	ConstructorName *ConstructorName
	ArgumentList    *ArgumentList
}

func NewInstanceCreationExpression(keyword *token.Token, constructorName *ConstructorName, argumentList *ArgumentList) *InstanceCreationExpression {
	n := &InstanceCreationExpression{Keyword: keyword}
	n.ConstructorName = becomeParentOf(n, constructorName)
	n.ArgumentList = becomeParentOf(n, argumentList)
	return n
}

func (n *InstanceCreationExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *InstanceCreationExpression) EndToken() *token.Token   { return endOf(n) }
func (n *InstanceCreationExpression) ChildEntities() []interface{} {
	return entities(n.Keyword, n.ConstructorName, n.ArgumentList)
}
func (n *InstanceCreationExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitInstanceCreationExpression(n)
}
func (n *InstanceCreationExpression) expressionNode() {}

// IsConst reports whether the creation uses the const keyword.
func (n *InstanceCreationExpression) IsConst() bool {
	return n.Keyword != nil && n.Keyword.IsKeyword(token.KwConst)
}

// IsExpression is "expression is Type" or "expression is! Type".
type IsExpression struct {
	baseNode
	Expression  Expression
	IsOperator  *token.Token
	NotOperator *token.Token
	Type        *TypeName
}

func NewIsExpression(expression Expression, isOperator, notOperator *token.Token, typ *TypeName) *IsExpression {
	n := &IsExpression{IsOperator: isOperator, NotOperator: notOperator}
	n.Expression = becomeParentOf(n, expression)
	n.Type = becomeParentOf(n, typ)
	return n
}

func (n *IsExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *IsExpression) EndToken() *token.Token   { return endOf(n) }
func (n *IsExpression) ChildEntities() []interface{} {
	return entities(n.Expression, n.IsOperator, n.NotOperator, n.Type)
}
func (n *IsExpression) Accept(visitor Visitor) interface{} { return visitor.VisitIsExpression(n) }
func (n *IsExpression) expressionNode()                    {}

// MethodInvocation is "target.name(args)", "name(args)" or "..name(args)"
// inside a cascade. Period is nil only when there is no target and the call is
// not cascaded.
type MethodInvocation struct {
	baseNode
	Target       Expression
	Period       *token.Token
	MethodName   *SimpleIdentifier
	ArgumentList *ArgumentList
}

func NewMethodInvocation(target Expression, period *token.Token, methodName *SimpleIdentifier, argumentList *ArgumentList) *MethodInvocation {
	n := &MethodInvocation{Period: period}
	n.Target = becomeParentOf(n, target)
	n.MethodName = becomeParentOf(n, methodName)
	n.ArgumentList = becomeParentOf(n, argumentList)
	return n
}

func (n *MethodInvocation) BeginToken() *token.Token { return beginOf(n) }
func (n *MethodInvocation) EndToken() *token.Token   { return endOf(n) }
func (n *MethodInvocation) ChildEntities() []interface{} {
	return entities(n.Target, n.Period, n.MethodName, n.ArgumentList)
}
func (n *MethodInvocation) Accept(visitor Visitor) interface{} {
	return visitor.VisitMethodInvocation(n)
}
func (n *MethodInvocation) expressionNode() {}

// IsCascaded reports whether the invocation is a cascade section.
func (n *MethodInvocation) IsCascaded() bool {
	return n.Period != nil && n.Period.Type() == token.PeriodPeriod
}

// NamedExpression is "label: expression", used for named arguments.
type NamedExpression struct {
	baseNode
	Name       *Label
	Expression Expression
}

func NewNamedExpression(name *Label, expression Expression) *NamedExpression {
	n := &NamedExpression{}
	n.Name = becomeParentOf(n, name)
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *NamedExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *NamedExpression) EndToken() *token.Token   { return endOf(n) }
func (n *NamedExpression) ChildEntities() []interface{} {
	return entities(n.Name, n.Expression)
}
func (n *NamedExpression) Accept(visitor Visitor) interface{} { return visitor.VisitNamedExpression(n) }
func (n *NamedExpression) expressionNode()                    {}

// ParenthesizedExpression is "(expression)".
type ParenthesizedExpression struct {
	baseNode
	LeftParenthesis  *token.Token
	Expression       Expression
	RightParenthesis *token.Token
}

func NewParenthesizedExpression(leftParenthesis *token.Token, expression Expression, rightParenthesis *token.Token) *ParenthesizedExpression {
	n := &ParenthesizedExpression{LeftParenthesis: leftParenthesis, RightParenthesis: rightParenthesis}
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *ParenthesizedExpression) BeginToken() *token.Token { return n.LeftParenthesis }
func (n *ParenthesizedExpression) EndToken() *token.Token   { return n.RightParenthesis }
func (n *ParenthesizedExpression) ChildEntities() []interface{} {
	return entities(n.LeftParenthesis, n.Expression, n.RightParenthesis)
}
func (n *ParenthesizedExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitParenthesizedExpression(n)
}
func (n *ParenthesizedExpression) expressionNode() {}

// PostfixExpression is "operand op" for "++" and "--".
type PostfixExpression struct {
	baseNode
	Operand  Expression
	Operator *token.Token
}

func NewPostfixExpression(operand Expression, operator *token.Token) *PostfixExpression {
	n := &PostfixExpression{Operator: operator}
	n.Operand = becomeParentOf(n, operand)
	return n
}

func (n *PostfixExpression) BeginToken() *token.Token { return beginOf(n) }
func (n *PostfixExpression) EndToken() *token.Token   { return n.Operator }
func (n *PostfixExpression) ChildEntities() []interface{} {
	return entities(n.Operand, n.Operator)
}
func (n *PostfixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitPostfixExpression(n)
}
func (n *PostfixExpression) expressionNode() {}

// PrefixExpression is "op operand".
type PrefixExpression struct {
	baseNode
	Operator *token.Token
	Operand  Expression
}

func NewPrefixExpression(operator *token.Token, operand Expression) *PrefixExpression {
	n := &PrefixExpression{Operator: operator}
	n.Operand = becomeParentOf(n, operand)
	return n
}

func (n *PrefixExpression) BeginToken() *token.Token { return n.Operator }
func (n *PrefixExpression) EndToken() *token.Token   { return endOf(n) }
func (n *PrefixExpression) ChildEntities() []interface{} {
	return entities(n.Operator, n.Operand)
}
func (n *PrefixExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrefixExpression(n)
}
func (n *PrefixExpression) expressionNode() {}

// PropertyAccess is "target.name" where the target is an arbitrary
// expression, or "..name" inside a cascade.
type PropertyAccess struct {
	baseNode
	Target       Expression
	Operator     *token.Token
	PropertyName *SimpleIdentifier
}

func NewPropertyAccess(target Expression, operator *token.Token, propertyName *SimpleIdentifier) *PropertyAccess {
	n := &PropertyAccess{Operator: operator}
	n.Target = becomeParentOf(n, target)
	n.PropertyName = becomeParentOf(n, propertyName)
	return n
}

func (n *PropertyAccess) BeginToken() *token.Token { return beginOf(n) }
func (n *PropertyAccess) EndToken() *token.Token   { return endOf(n) }
func (n *PropertyAccess) ChildEntities() []interface{} {
	return entities(n.Target, n.Operator, n.PropertyName)
}
func (n *PropertyAccess) Accept(visitor Visitor) interface{} { return visitor.VisitPropertyAccess(n) }
func (n *PropertyAccess) expressionNode()                    {}

// IsCascaded reports whether the access is a cascade section.
func (n *PropertyAccess) IsCascaded() bool {
	return n.Operator != nil && n.Operator.Type() == token.PeriodPeriod
}

// RethrowExpression is "rethrow".
type RethrowExpression struct {
	baseNode
	Keyword *token.Token
}

func NewRethrowExpression(keyword *token.Token) *RethrowExpression {
	return &RethrowExpression{Keyword: keyword}
}

func (n *RethrowExpression) BeginToken() *token.Token     { return n.Keyword }
func (n *RethrowExpression) EndToken() *token.Token       { return n.Keyword }
func (n *RethrowExpression) ChildEntities() []interface{} { return entities(n.Keyword) }
func (n *RethrowExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitRethrowExpression(n)
}
func (n *RethrowExpression) expressionNode() {}

// SuperExpression is "super".
type SuperExpression struct {
	baseNode
	Keyword *token.Token
}

func NewSuperExpression(keyword *token.Token) *SuperExpression {
	return &SuperExpression{Keyword: keyword}
}

func (n *SuperExpression) BeginToken() *token.Token           { return n.Keyword }
func (n *SuperExpression) EndToken() *token.Token             { return n.Keyword }
func (n *SuperExpression) ChildEntities() []interface{}       { return entities(n.Keyword) }
func (n *SuperExpression) Accept(visitor Visitor) interface{} { return visitor.VisitSuperExpression(n) }
func (n *SuperExpression) expressionNode()                    {}

// ThisExpression is "this".
type ThisExpression struct {
	baseNode
	Keyword *token.Token
}

func NewThisExpression(keyword *token.Token) *ThisExpression {
	return &ThisExpression{Keyword: keyword}
}

func (n *ThisExpression) BeginToken() *token.Token           { return n.Keyword }
func (n *ThisExpression) EndToken() *token.Token             { return n.Keyword }
func (n *ThisExpression) ChildEntities() []interface{}       { return entities(n.Keyword) }
func (n *ThisExpression) Accept(visitor Visitor) interface{} { return visitor.VisitThisExpression(n) }
func (n *ThisExpression) expressionNode()                    {}

// ThrowExpression is "throw expression". The expression may be nil.
type ThrowExpression struct {
	baseNode
	Keyword    *token.Token
	Expression Expression
}

func NewThrowExpression(keyword *token.Token, expression Expression) *ThrowExpression {
	n := &ThrowExpression{Keyword: keyword}
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *ThrowExpression) BeginToken() *token.Token { return n.Keyword }
func (n *ThrowExpression) EndToken() *token.Token   { return endOf(n) }
func (n *ThrowExpression) ChildEntities() []interface{} {
	return entities(n.Keyword, n.Expression)
}
func (n *ThrowExpression) Accept(visitor Visitor) interface{} { return visitor.VisitThrowExpression(n) }
func (n *ThrowExpression) expressionNode()                    {}
