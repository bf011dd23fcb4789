package ast

import "github.com/orizon-lang/astkit/internal/token"

// FormalParameterList is "(a, [b = 1])" or "(a, {b: 1})". LeftDelimiter and
// RightDelimiter bracket the optional group and are nil when there is none.
type FormalParameterList struct {
	baseNode
	LeftParenthesis  *token.Token
	Parameters       *NodeList[FormalParameter]
	LeftDelimiter    *token.Token
	RightDelimiter   *token.Token
	RightParenthesis *token.Token
}

func NewFormalParameterList(leftParenthesis *token.Token, parameters []FormalParameter, leftDelimiter,
	rightDelimiter, rightParenthesis *token.Token) *FormalParameterList {
	n := &FormalParameterList{LeftParenthesis: leftParenthesis, LeftDelimiter: leftDelimiter,
		RightDelimiter: rightDelimiter, RightParenthesis: rightParenthesis}
	n.Parameters = newNodeListOf(n, parameters)
	return n
}

func (n *FormalParameterList) BeginToken() *token.Token { return n.LeftParenthesis }
func (n *FormalParameterList) EndToken() *token.Token   { return n.RightParenthesis }

// ChildEntities interleaves the optional-group delimiters with the
// parameters they enclose.
func (n *FormalParameterList) ChildEntities() []interface{} {
	parts := []interface{}{n.LeftParenthesis}
	opened := false
	for _, p := range n.Parameters.All() {
		if !opened && p.Kind() != ParameterRequired {
			parts = append(parts, n.LeftDelimiter)
			opened = true
		}
		parts = append(parts, p)
	}
	if !opened {
		parts = append(parts, n.LeftDelimiter)
	}
	parts = append(parts, n.RightDelimiter, n.RightParenthesis)
	return entities(parts...)
}
func (n *FormalParameterList) Accept(visitor Visitor) interface{} {
	return visitor.VisitFormalParameterList(n)
}

// normalKind is the kind of a parameter that may be wrapped by a
// DefaultFormalParameter.
func normalKind(n Node) ParameterKind {
	if d, ok := n.Parent().(*DefaultFormalParameter); ok {
		return d.kind
	}
	return ParameterRequired
}

// SimpleFormalParameter is "final Type name".
type SimpleFormalParameter struct {
	baseNode
	Metadata   *NodeList[*Annotation]
	Keyword    *token.Token
	Type       *TypeName
	Identifier *SimpleIdentifier
}

func NewSimpleFormalParameter(metadata []*Annotation, keyword *token.Token, typ *TypeName,
	identifier *SimpleIdentifier) *SimpleFormalParameter {
	n := &SimpleFormalParameter{Keyword: keyword}
	n.Metadata = newNodeListOf(n, metadata)
	n.Type = becomeParentOf(n, typ)
	n.Identifier = becomeParentOf(n, identifier)
	return n
}

func (n *SimpleFormalParameter) BeginToken() *token.Token { return beginOf(n) }
func (n *SimpleFormalParameter) EndToken() *token.Token   { return endOf(n) }
func (n *SimpleFormalParameter) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Keyword, n.Type, n.Identifier)
}
func (n *SimpleFormalParameter) Accept(visitor Visitor) interface{} {
	return visitor.VisitSimpleFormalParameter(n)
}
func (n *SimpleFormalParameter) formalParameterNode()             {}
func (n *SimpleFormalParameter) normalFormalParameterNode()       {}
func (n *SimpleFormalParameter) ParameterName() *SimpleIdentifier { return n.Identifier }
func (n *SimpleFormalParameter) Kind() ParameterKind              { return normalKind(n) }

// FieldFormalParameter is "Type this.name" or "this.name(params)".
type FieldFormalParameter struct {
	baseNode
	Metadata    *NodeList[*Annotation]
	Keyword     *token.Token
	Type        *TypeName
	ThisKeyword *token.Token
	Period      *token.Token
	Identifier  *SimpleIdentifier
	Parameters  *FormalParameterList
}

func NewFieldFormalParameter(metadata []*Annotation, keyword *token.Token, typ *TypeName, thisKeyword,
	period *token.Token, identifier *SimpleIdentifier, parameters *FormalParameterList) *FieldFormalParameter {
	n := &FieldFormalParameter{Keyword: keyword, ThisKeyword: thisKeyword, Period: period}
	n.Metadata = newNodeListOf(n, metadata)
	n.Type = becomeParentOf(n, typ)
	n.Identifier = becomeParentOf(n, identifier)
	n.Parameters = becomeParentOf(n, parameters)
	return n
}

func (n *FieldFormalParameter) BeginToken() *token.Token { return beginOf(n) }
func (n *FieldFormalParameter) EndToken() *token.Token   { return endOf(n) }
func (n *FieldFormalParameter) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Keyword, n.Type, n.ThisKeyword, n.Period, n.Identifier, n.Parameters)
}
func (n *FieldFormalParameter) Accept(visitor Visitor) interface{} {
	return visitor.VisitFieldFormalParameter(n)
}
func (n *FieldFormalParameter) formalParameterNode()             {}
func (n *FieldFormalParameter) normalFormalParameterNode()       {}
func (n *FieldFormalParameter) ParameterName() *SimpleIdentifier { return n.Identifier }
func (n *FieldFormalParameter) Kind() ParameterKind              { return normalKind(n) }

// FunctionTypedFormalParameter is "R name(params)".
type FunctionTypedFormalParameter struct {
	baseNode
	Metadata   *NodeList[*Annotation]
	ReturnType *TypeName
	Identifier *SimpleIdentifier
	Parameters *FormalParameterList
}

func NewFunctionTypedFormalParameter(metadata []*Annotation, returnType *TypeName, identifier *SimpleIdentifier,
	parameters *FormalParameterList) *FunctionTypedFormalParameter {
	n := &FunctionTypedFormalParameter{}
	n.Metadata = newNodeListOf(n, metadata)
	n.ReturnType = becomeParentOf(n, returnType)
	n.Identifier = becomeParentOf(n, identifier)
	n.Parameters = becomeParentOf(n, parameters)
	return n
}

func (n *FunctionTypedFormalParameter) BeginToken() *token.Token { return beginOf(n) }
func (n *FunctionTypedFormalParameter) EndToken() *token.Token   { return endOf(n) }
func (n *FunctionTypedFormalParameter) ChildEntities() []interface{} {
	return entities(n.Metadata, n.ReturnType, n.Identifier, n.Parameters)
}
func (n *FunctionTypedFormalParameter) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionTypedFormalParameter(n)
}
func (n *FunctionTypedFormalParameter) formalParameterNode()             {}
func (n *FunctionTypedFormalParameter) normalFormalParameterNode()       {}
func (n *FunctionTypedFormalParameter) ParameterName() *SimpleIdentifier { return n.Identifier }
func (n *FunctionTypedFormalParameter) Kind() ParameterKind              { return normalKind(n) }

// DefaultFormalParameter wraps an optional parameter with its default value.
// Separator is ":" for named and "=" for positional parameters, and is
// present iff DefaultValue is.
type DefaultFormalParameter struct {
	baseNode
	Parameter    NormalFormalParameter
	Separator    *token.Token
	DefaultValue Expression

	kind ParameterKind
}

func NewDefaultFormalParameter(parameter NormalFormalParameter, kind ParameterKind, separator *token.Token,
	defaultValue Expression) *DefaultFormalParameter {
	n := &DefaultFormalParameter{Separator: separator, kind: kind}
	n.Parameter = becomeParentOf(n, parameter)
	n.DefaultValue = becomeParentOf(n, defaultValue)
	return n
}

func (n *DefaultFormalParameter) BeginToken() *token.Token { return beginOf(n) }
func (n *DefaultFormalParameter) EndToken() *token.Token   { return endOf(n) }
func (n *DefaultFormalParameter) ChildEntities() []interface{} {
	return entities(n.Parameter, n.Separator, n.DefaultValue)
}
func (n *DefaultFormalParameter) Accept(visitor Visitor) interface{} {
	return visitor.VisitDefaultFormalParameter(n)
}
func (n *DefaultFormalParameter) formalParameterNode() {}
func (n *DefaultFormalParameter) Kind() ParameterKind  { return n.kind }
func (n *DefaultFormalParameter) ParameterName() *SimpleIdentifier {
	if n.Parameter == nil {
		return nil
	}
	return n.Parameter.ParameterName()
}
