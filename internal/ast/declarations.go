package ast

import "github.com/orizon-lang/astkit/internal/token"

// Annotation is "@name", "@name(args)" or "@Type.ctor(args)".
type Annotation struct {
	baseNode
	AtSign          *token.Token
	Name            Identifier
	Period          *token.Token
	ConstructorName *SimpleIdentifier
	Arguments       *ArgumentList
}

func NewAnnotation(atSign *token.Token, name Identifier, period *token.Token, constructorName *SimpleIdentifier,
	arguments *ArgumentList) *Annotation {
	n := &Annotation{AtSign: atSign, Period: period}
	n.Name = becomeParentOf(n, name)
	n.ConstructorName = becomeParentOf(n, constructorName)
	n.Arguments = becomeParentOf(n, arguments)
	return n
}

func (n *Annotation) BeginToken() *token.Token { return n.AtSign }
func (n *Annotation) EndToken() *token.Token   { return endOf(n) }
func (n *Annotation) ChildEntities() []interface{} {
	return entities(n.AtSign, n.Name, n.Period, n.ConstructorName, n.Arguments)
}
func (n *Annotation) Accept(visitor Visitor) interface{} { return visitor.VisitAnnotation(n) }

// ===== Classes =====

// ClassDeclaration is
// "abstract class Name<T> extends S with M implements I native 'x' { members }".
type ClassDeclaration struct {
	baseNode
	Metadata         *NodeList[*Annotation]
	AbstractKeyword  *token.Token
	ClassKeyword     *token.Token
	Name             *SimpleIdentifier
	TypeParameters   *TypeParameterList
	ExtendsClause    *ExtendsClause
	WithClause       *WithClause
	ImplementsClause *ImplementsClause
	NativeClause     *NativeClause
	LeftBracket      *token.Token
	Members          *NodeList[ClassMember]
	RightBracket     *token.Token
}

func NewClassDeclaration(metadata []*Annotation, abstractKeyword, classKeyword *token.Token, name *SimpleIdentifier,
	typeParameters *TypeParameterList, extendsClause *ExtendsClause, withClause *WithClause,
	implementsClause *ImplementsClause, nativeClause *NativeClause, leftBracket *token.Token,
	members []ClassMember, rightBracket *token.Token) *ClassDeclaration {
	n := &ClassDeclaration{AbstractKeyword: abstractKeyword, ClassKeyword: classKeyword,
		LeftBracket: leftBracket, RightBracket: rightBracket}
	n.Metadata = newNodeListOf(n, metadata)
	n.Name = becomeParentOf(n, name)
	n.TypeParameters = becomeParentOf(n, typeParameters)
	n.ExtendsClause = becomeParentOf(n, extendsClause)
	n.WithClause = becomeParentOf(n, withClause)
	n.ImplementsClause = becomeParentOf(n, implementsClause)
	n.NativeClause = becomeParentOf(n, nativeClause)
	n.Members = newNodeListOf(n, members)
	return n
}

func (n *ClassDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *ClassDeclaration) EndToken() *token.Token   { return n.RightBracket }
func (n *ClassDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.AbstractKeyword, n.ClassKeyword, n.Name, n.TypeParameters, n.ExtendsClause,
		n.WithClause, n.ImplementsClause, n.NativeClause, n.LeftBracket, n.Members, n.RightBracket)
}
func (n *ClassDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitClassDeclaration(n)
}
func (n *ClassDeclaration) declarationNode()           {}
func (n *ClassDeclaration) compilationUnitMemberNode() {}

// IsAbstract reports whether the class is declared abstract.
func (n *ClassDeclaration) IsAbstract() bool { return n.AbstractKeyword != nil }

// Constructor returns the constructor with the given name, or nil. An empty
// name selects the unnamed constructor.
func (n *ClassDeclaration) Constructor(name string) *ConstructorDeclaration {
	for _, m := range n.Members.All() {
		c, ok := m.(*ConstructorDeclaration)
		if !ok {
			continue
		}
		if name == "" && c.Name == nil {
			return c
		}
		if c.Name != nil && c.Name.Name() == name {
			return c
		}
	}
	return nil
}

// Field returns the field variable with the given name, or nil.
func (n *ClassDeclaration) Field(name string) *VariableDeclaration {
	for _, m := range n.Members.All() {
		f, ok := m.(*FieldDeclaration)
		if !ok || f.Fields == nil {
			continue
		}
		for _, v := range f.Fields.Variables.All() {
			if v.Name != nil && v.Name.Name() == name {
				return v
			}
		}
	}
	return nil
}

// Method returns the method with the given name, or nil.
func (n *ClassDeclaration) Method(name string) *MethodDeclaration {
	for _, m := range n.Members.All() {
		if md, ok := m.(*MethodDeclaration); ok && md.Name != nil && md.Name.Name() == name {
			return md
		}
	}
	return nil
}

// ClassTypeAlias is "abstract class Name<T> = S with M implements I;".
type ClassTypeAlias struct {
	baseNode
	Metadata         *NodeList[*Annotation]
	Keyword          *token.Token
	Name             *SimpleIdentifier
	TypeParameters   *TypeParameterList
	Equals           *token.Token
	AbstractKeyword  *token.Token
	SuperclassType   *TypeName
	WithClause       *WithClause
	ImplementsClause *ImplementsClause
	Semicolon        *token.Token
}

func NewClassTypeAlias(metadata []*Annotation, keyword *token.Token, name *SimpleIdentifier,
	typeParameters *TypeParameterList, equals, abstractKeyword *token.Token, superclass *TypeName,
	withClause *WithClause, implementsClause *ImplementsClause, semicolon *token.Token) *ClassTypeAlias {
	n := &ClassTypeAlias{Keyword: keyword, Equals: equals, AbstractKeyword: abstractKeyword, Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.Name = becomeParentOf(n, name)
	n.TypeParameters = becomeParentOf(n, typeParameters)
	n.SuperclassType = becomeParentOf(n, superclass)
	n.WithClause = becomeParentOf(n, withClause)
	n.ImplementsClause = becomeParentOf(n, implementsClause)
	return n
}

func (n *ClassTypeAlias) BeginToken() *token.Token { return beginOf(n) }
func (n *ClassTypeAlias) EndToken() *token.Token   { return n.Semicolon }
func (n *ClassTypeAlias) ChildEntities() []interface{} {
	return entities(n.Metadata, n.AbstractKeyword, n.Keyword, n.Name, n.TypeParameters, n.Equals,
		n.SuperclassType, n.WithClause, n.ImplementsClause, n.Semicolon)
}
func (n *ClassTypeAlias) Accept(visitor Visitor) interface{} { return visitor.VisitClassTypeAlias(n) }
func (n *ClassTypeAlias) declarationNode()                   {}
func (n *ClassTypeAlias) compilationUnitMemberNode()         {}

// ExtendsClause is "extends Type".
type ExtendsClause struct {
	baseNode
	Keyword    *token.Token
	Superclass *TypeName
}

func NewExtendsClause(keyword *token.Token, superclass *TypeName) *ExtendsClause {
	n := &ExtendsClause{Keyword: keyword}
	n.Superclass = becomeParentOf(n, superclass)
	return n
}

func (n *ExtendsClause) BeginToken() *token.Token           { return n.Keyword }
func (n *ExtendsClause) EndToken() *token.Token             { return endOf(n) }
func (n *ExtendsClause) ChildEntities() []interface{}       { return entities(n.Keyword, n.Superclass) }
func (n *ExtendsClause) Accept(visitor Visitor) interface{} { return visitor.VisitExtendsClause(n) }

// WithClause is "with M1, M2".
type WithClause struct {
	baseNode
	WithKeyword *token.Token
	MixinTypes  *NodeList[*TypeName]
}

func NewWithClause(withKeyword *token.Token, mixinTypes []*TypeName) *WithClause {
	n := &WithClause{WithKeyword: withKeyword}
	n.MixinTypes = newNodeListOf(n, mixinTypes)
	return n
}

func (n *WithClause) BeginToken() *token.Token           { return n.WithKeyword }
func (n *WithClause) EndToken() *token.Token             { return endOf(n) }
func (n *WithClause) ChildEntities() []interface{}       { return entities(n.WithKeyword, n.MixinTypes) }
func (n *WithClause) Accept(visitor Visitor) interface{} { return visitor.VisitWithClause(n) }

// ImplementsClause is "implements I1, I2".
type ImplementsClause struct {
	baseNode
	Keyword    *token.Token
	Interfaces *NodeList[*TypeName]
}

func NewImplementsClause(keyword *token.Token, interfaces []*TypeName) *ImplementsClause {
	n := &ImplementsClause{Keyword: keyword}
	n.Interfaces = newNodeListOf(n, interfaces)
	return n
}

func (n *ImplementsClause) BeginToken() *token.Token { return n.Keyword }
func (n *ImplementsClause) EndToken() *token.Token   { return endOf(n) }
func (n *ImplementsClause) ChildEntities() []interface{} {
	return entities(n.Keyword, n.Interfaces)
}
func (n *ImplementsClause) Accept(visitor Visitor) interface{} {
	return visitor.VisitImplementsClause(n)
}

// NativeClause is "native 'name'".
type NativeClause struct {
	baseNode
	Keyword *token.Token
	Name    *SimpleStringLiteral
}

func NewNativeClause(keyword *token.Token, name *SimpleStringLiteral) *NativeClause {
	n := &NativeClause{Keyword: keyword}
	n.Name = becomeParentOf(n, name)
	return n
}

func (n *NativeClause) BeginToken() *token.Token           { return n.Keyword }
func (n *NativeClause) EndToken() *token.Token             { return endOf(n) }
func (n *NativeClause) ChildEntities() []interface{}       { return entities(n.Keyword, n.Name) }
func (n *NativeClause) Accept(visitor Visitor) interface{} { return visitor.VisitNativeClause(n) }

// ===== Constructors =====

// ConstructorDeclaration is
// "external const factory Type.name(params) : initializers = Redirect body".
type ConstructorDeclaration struct {
	baseNode
	Metadata              *NodeList[*Annotation]
	ExternalKeyword       *token.Token
	ConstKeyword          *token.Token
	FactoryKeyword        *token.Token
	ReturnType            Identifier
	Period                *token.Token
	Name                  *SimpleIdentifier
	Parameters            *FormalParameterList
	Separator             *token.Token
	Initializers          *NodeList[ConstructorInitializer]
	RedirectedConstructor *ConstructorName
	Body                  FunctionBody
}

func NewConstructorDeclaration(metadata []*Annotation, externalKeyword, constKeyword, factoryKeyword *token.Token,
	returnType Identifier, period *token.Token, name *SimpleIdentifier, parameters *FormalParameterList,
	separator *token.Token, initializers []ConstructorInitializer, redirectedConstructor *ConstructorName,
	body FunctionBody) *ConstructorDeclaration {
	n := &ConstructorDeclaration{ExternalKeyword: externalKeyword, ConstKeyword: constKeyword,
		FactoryKeyword: factoryKeyword, Period: period, Separator: separator}
	n.Metadata = newNodeListOf(n, metadata)
	n.ReturnType = becomeParentOf(n, returnType)
	n.Name = becomeParentOf(n, name)
	n.Parameters = becomeParentOf(n, parameters)
	n.Initializers = newNodeListOf(n, initializers)
	n.RedirectedConstructor = becomeParentOf(n, redirectedConstructor)
	n.Body = becomeParentOf(n, body)
	return n
}

func (n *ConstructorDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *ConstructorDeclaration) EndToken() *token.Token   { return endOf(n) }
func (n *ConstructorDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.ExternalKeyword, n.ConstKeyword, n.FactoryKeyword, n.ReturnType, n.Period,
		n.Name, n.Parameters, n.Separator, n.Initializers, n.RedirectedConstructor, n.Body)
}
func (n *ConstructorDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitConstructorDeclaration(n)
}
func (n *ConstructorDeclaration) declarationNode() {}
func (n *ConstructorDeclaration) classMemberNode() {}

// ConstructorFieldInitializer is "this.field = expression".
type ConstructorFieldInitializer struct {
	baseNode
	ThisKeyword *token.Token
	Period      *token.Token
	FieldName   *SimpleIdentifier
	Equals      *token.Token
	Expression  Expression
}

func NewConstructorFieldInitializer(thisKeyword, period *token.Token, fieldName *SimpleIdentifier,
	equals *token.Token, expression Expression) *ConstructorFieldInitializer {
	n := &ConstructorFieldInitializer{ThisKeyword: thisKeyword, Period: period, Equals: equals}
	n.FieldName = becomeParentOf(n, fieldName)
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *ConstructorFieldInitializer) BeginToken() *token.Token { return beginOf(n) }
func (n *ConstructorFieldInitializer) EndToken() *token.Token   { return endOf(n) }
func (n *ConstructorFieldInitializer) ChildEntities() []interface{} {
	return entities(n.ThisKeyword, n.Period, n.FieldName, n.Equals, n.Expression)
}
func (n *ConstructorFieldInitializer) Accept(visitor Visitor) interface{} {
	return visitor.VisitConstructorFieldInitializer(n)
}
func (n *ConstructorFieldInitializer) constructorInitializerNode() {}

// ConstructorName is "Type" or "Type.name" in an instance creation or
// redirection.
type ConstructorName struct {
	baseNode
	Type   *TypeName
	Period *token.Token
	Name   *SimpleIdentifier
}

func NewConstructorName(typ *TypeName, period *token.Token, name *SimpleIdentifier) *ConstructorName {
	n := &ConstructorName{Period: period}
	n.Type = becomeParentOf(n, typ)
	n.Name = becomeParentOf(n, name)
	return n
}

func (n *ConstructorName) BeginToken() *token.Token { return beginOf(n) }
func (n *ConstructorName) EndToken() *token.Token   { return endOf(n) }
func (n *ConstructorName) ChildEntities() []interface{} {
	return entities(n.Type, n.Period, n.Name)
}
func (n *ConstructorName) Accept(visitor Visitor) interface{} { return visitor.VisitConstructorName(n) }

// RedirectingConstructorInvocation is "this.name(args)" in an initializer
// list.
type RedirectingConstructorInvocation struct {
	baseNode
	ThisKeyword     *token.Token
	Period          *token.Token
	ConstructorName *SimpleIdentifier
	ArgumentList    *ArgumentList
}

func NewRedirectingConstructorInvocation(thisKeyword, period *token.Token, constructorName *SimpleIdentifier,
	argumentList *ArgumentList) *RedirectingConstructorInvocation {
	n := &RedirectingConstructorInvocation{ThisKeyword: thisKeyword, Period: period}
	n.ConstructorName = becomeParentOf(n, constructorName)
	n.ArgumentList = becomeParentOf(n, argumentList)
	return n
}

func (n *RedirectingConstructorInvocation) BeginToken() *token.Token { return n.ThisKeyword }
func (n *RedirectingConstructorInvocation) EndToken() *token.Token   { return endOf(n) }
func (n *RedirectingConstructorInvocation) ChildEntities() []interface{} {
	return entities(n.ThisKeyword, n.Period, n.ConstructorName, n.ArgumentList)
}
func (n *RedirectingConstructorInvocation) Accept(visitor Visitor) interface{} {
	return visitor.VisitRedirectingConstructorInvocation(n)
}
func (n *RedirectingConstructorInvocation) constructorInitializerNode() {}

// SuperConstructorInvocation is "super.name(args)" in an initializer list.
type SuperConstructorInvocation struct {
	baseNode
	SuperKeyword    *token.Token
	Period          *token.Token
	ConstructorName *SimpleIdentifier
	ArgumentList    *ArgumentList
}

func NewSuperConstructorInvocation(superKeyword, period *token.Token, constructorName *SimpleIdentifier,
	argumentList *ArgumentList) *SuperConstructorInvocation {
	n := &SuperConstructorInvocation{SuperKeyword: superKeyword, Period: period}
	n.ConstructorName = becomeParentOf(n, constructorName)
	n.ArgumentList = becomeParentOf(n, argumentList)
	return n
}

func (n *SuperConstructorInvocation) BeginToken() *token.Token { return n.SuperKeyword }
func (n *SuperConstructorInvocation) EndToken() *token.Token   { return endOf(n) }
func (n *SuperConstructorInvocation) ChildEntities() []interface{} {
	return entities(n.SuperKeyword, n.Period, n.ConstructorName, n.ArgumentList)
}
func (n *SuperConstructorInvocation) Accept(visitor Visitor) interface{} {
	return visitor.VisitSuperConstructorInvocation(n)
}
func (n *SuperConstructorInvocation) constructorInitializerNode() {}

// ===== Enums =====

// EnumDeclaration is "enum Name { A, B }".
type EnumDeclaration struct {
	baseNode
	Metadata     *NodeList[*Annotation]
	EnumKeyword  *token.Token
	Name         *SimpleIdentifier
	LeftBracket  *token.Token
	Constants    *NodeList[*EnumConstantDeclaration]
	RightBracket *token.Token
}

func NewEnumDeclaration(metadata []*Annotation, enumKeyword *token.Token, name *SimpleIdentifier,
	leftBracket *token.Token, constants []*EnumConstantDeclaration, rightBracket *token.Token) *EnumDeclaration {
	n := &EnumDeclaration{EnumKeyword: enumKeyword, LeftBracket: leftBracket, RightBracket: rightBracket}
	n.Metadata = newNodeListOf(n, metadata)
	n.Name = becomeParentOf(n, name)
	n.Constants = newNodeListOf(n, constants)
	return n
}

func (n *EnumDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *EnumDeclaration) EndToken() *token.Token   { return n.RightBracket }
func (n *EnumDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.EnumKeyword, n.Name, n.LeftBracket, n.Constants, n.RightBracket)
}
func (n *EnumDeclaration) Accept(visitor Visitor) interface{} { return visitor.VisitEnumDeclaration(n) }
func (n *EnumDeclaration) declarationNode()                   {}
func (n *EnumDeclaration) compilationUnitMemberNode()         {}

// EnumConstantDeclaration is a single enum constant.
type EnumConstantDeclaration struct {
	baseNode
	Metadata *NodeList[*Annotation]
	Name     *SimpleIdentifier
}

func NewEnumConstantDeclaration(metadata []*Annotation, name *SimpleIdentifier) *EnumConstantDeclaration {
	n := &EnumConstantDeclaration{}
	n.Metadata = newNodeListOf(n, metadata)
	n.Name = becomeParentOf(n, name)
	return n
}

func (n *EnumConstantDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *EnumConstantDeclaration) EndToken() *token.Token   { return endOf(n) }
func (n *EnumConstantDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Name)
}
func (n *EnumConstantDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitEnumConstantDeclaration(n)
}
func (n *EnumConstantDeclaration) declarationNode() {}

// ===== Members and functions =====

// FieldDeclaration is "static final int x = 1, y;" in a class body.
type FieldDeclaration struct {
	baseNode
	Metadata      *NodeList[*Annotation]
	StaticKeyword *token.Token
	Fields        *VariableDeclarationList
	Semicolon     *token.Token
}

func NewFieldDeclaration(metadata []*Annotation, staticKeyword *token.Token, fields *VariableDeclarationList,
	semicolon *token.Token) *FieldDeclaration {
	n := &FieldDeclaration{StaticKeyword: staticKeyword, Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.Fields = becomeParentOf(n, fields)
	return n
}

func (n *FieldDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *FieldDeclaration) EndToken() *token.Token   { return n.Semicolon }
func (n *FieldDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.StaticKeyword, n.Fields, n.Semicolon)
}
func (n *FieldDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitFieldDeclaration(n)
}
func (n *FieldDeclaration) declarationNode() {}
func (n *FieldDeclaration) classMemberNode() {}

// IsStatic reports whether the fields are static.
func (n *FieldDeclaration) IsStatic() bool { return n.StaticKeyword != nil }

// FunctionDeclaration is a top-level or local function, getter or setter.
type FunctionDeclaration struct {
	baseNode
	Metadata           *NodeList[*Annotation]
	ExternalKeyword    *token.Token
	ReturnType         *TypeName
	PropertyKeyword    *token.Token
	Name               *SimpleIdentifier
	FunctionExpression *FunctionExpression
}

func NewFunctionDeclaration(metadata []*Annotation, externalKeyword *token.Token, returnType *TypeName,
	propertyKeyword *token.Token, name *SimpleIdentifier, functionExpression *FunctionExpression) *FunctionDeclaration {
	n := &FunctionDeclaration{ExternalKeyword: externalKeyword, PropertyKeyword: propertyKeyword}
	n.Metadata = newNodeListOf(n, metadata)
	n.ReturnType = becomeParentOf(n, returnType)
	n.Name = becomeParentOf(n, name)
	n.FunctionExpression = becomeParentOf(n, functionExpression)
	return n
}

func (n *FunctionDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *FunctionDeclaration) EndToken() *token.Token   { return endOf(n) }
func (n *FunctionDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.ExternalKeyword, n.ReturnType, n.PropertyKeyword, n.Name, n.FunctionExpression)
}
func (n *FunctionDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionDeclaration(n)
}
func (n *FunctionDeclaration) declarationNode()           {}
func (n *FunctionDeclaration) compilationUnitMemberNode() {}

// IsGetter reports whether the function is a getter.
func (n *FunctionDeclaration) IsGetter() bool {
	return n.PropertyKeyword != nil && n.PropertyKeyword.IsKeyword(token.KwGet)
}

// IsSetter reports whether the function is a setter.
func (n *FunctionDeclaration) IsSetter() bool {
	return n.PropertyKeyword != nil && n.PropertyKeyword.IsKeyword(token.KwSet)
}

// FunctionTypeAlias is "typedef R Name<T>(params);".
type FunctionTypeAlias struct {
	baseNode
	Metadata       *NodeList[*Annotation]
	Keyword        *token.Token
	ReturnType     *TypeName
	Name           *SimpleIdentifier
	TypeParameters *TypeParameterList
	Parameters     *FormalParameterList
	Semicolon      *token.Token
}

func NewFunctionTypeAlias(metadata []*Annotation, keyword *token.Token, returnType *TypeName, name *SimpleIdentifier,
	typeParameters *TypeParameterList, parameters *FormalParameterList, semicolon *token.Token) *FunctionTypeAlias {
	n := &FunctionTypeAlias{Keyword: keyword, Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.ReturnType = becomeParentOf(n, returnType)
	n.Name = becomeParentOf(n, name)
	n.TypeParameters = becomeParentOf(n, typeParameters)
	n.Parameters = becomeParentOf(n, parameters)
	return n
}

func (n *FunctionTypeAlias) BeginToken() *token.Token { return beginOf(n) }
func (n *FunctionTypeAlias) EndToken() *token.Token   { return n.Semicolon }
func (n *FunctionTypeAlias) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Keyword, n.ReturnType, n.Name, n.TypeParameters, n.Parameters, n.Semicolon)
}
func (n *FunctionTypeAlias) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunctionTypeAlias(n)
}
func (n *FunctionTypeAlias) declarationNode()           {}
func (n *FunctionTypeAlias) compilationUnitMemberNode() {}

// MethodDeclaration is a method, getter, setter or operator in a class body.
// Parameters is nil for getters.
type MethodDeclaration struct {
	baseNode
	Metadata        *NodeList[*Annotation]
	ExternalKeyword *token.Token
	ModifierKeyword *token.Token
	ReturnType      *TypeName
	PropertyKeyword *token.Token
	OperatorKeyword *token.Token
	Name            *SimpleIdentifier
	Parameters      *FormalParameterList
	Body            FunctionBody
}

func NewMethodDeclaration(metadata []*Annotation, externalKeyword, modifierKeyword *token.Token, returnType *TypeName,
	propertyKeyword, operatorKeyword *token.Token, name *SimpleIdentifier, parameters *FormalParameterList,
	body FunctionBody) *MethodDeclaration {
	n := &MethodDeclaration{ExternalKeyword: externalKeyword, ModifierKeyword: modifierKeyword,
		PropertyKeyword: propertyKeyword, OperatorKeyword: operatorKeyword}
	n.Metadata = newNodeListOf(n, metadata)
	n.ReturnType = becomeParentOf(n, returnType)
	n.Name = becomeParentOf(n, name)
	n.Parameters = becomeParentOf(n, parameters)
	n.Body = becomeParentOf(n, body)
	return n
}

func (n *MethodDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *MethodDeclaration) EndToken() *token.Token   { return endOf(n) }
func (n *MethodDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.ExternalKeyword, n.ModifierKeyword, n.ReturnType, n.PropertyKeyword,
		n.OperatorKeyword, n.Name, n.Parameters, n.Body)
}
func (n *MethodDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitMethodDeclaration(n)
}
func (n *MethodDeclaration) declarationNode() {}
func (n *MethodDeclaration) classMemberNode() {}

// IsStatic reports whether the method has the static modifier.
func (n *MethodDeclaration) IsStatic() bool {
	return n.ModifierKeyword != nil && n.ModifierKeyword.IsKeyword(token.KwStatic)
}

// IsAbstract reports whether the method is abstract: not external and with an
// empty body.
func (n *MethodDeclaration) IsAbstract() bool {
	_, empty := n.Body.(*EmptyFunctionBody)
	return n.ExternalKeyword == nil && empty
}

// IsGetter reports whether the method is a getter.
func (n *MethodDeclaration) IsGetter() bool {
	return n.PropertyKeyword != nil && n.PropertyKeyword.IsKeyword(token.KwGet)
}

// IsSetter reports whether the method is a setter.
func (n *MethodDeclaration) IsSetter() bool {
	return n.PropertyKeyword != nil && n.PropertyKeyword.IsKeyword(token.KwSet)
}

// IsOperator reports whether the method declares an operator.
func (n *MethodDeclaration) IsOperator() bool { return n.OperatorKeyword != nil }

// ===== Variables =====

// TopLevelVariableDeclaration is "var a = 1, b;" at library level.
type TopLevelVariableDeclaration struct {
	baseNode
	Metadata     *NodeList[*Annotation]
	VariableList *VariableDeclarationList
	Semicolon    *token.Token
}

func NewTopLevelVariableDeclaration(metadata []*Annotation, variableList *VariableDeclarationList,
	semicolon *token.Token) *TopLevelVariableDeclaration {
	n := &TopLevelVariableDeclaration{Semicolon: semicolon}
	n.Metadata = newNodeListOf(n, metadata)
	n.VariableList = becomeParentOf(n, variableList)
	return n
}

func (n *TopLevelVariableDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *TopLevelVariableDeclaration) EndToken() *token.Token   { return n.Semicolon }
func (n *TopLevelVariableDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.VariableList, n.Semicolon)
}
func (n *TopLevelVariableDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitTopLevelVariableDeclaration(n)
}
func (n *TopLevelVariableDeclaration) declarationNode()           {}
func (n *TopLevelVariableDeclaration) compilationUnitMemberNode() {}

// VariableDeclaration is "name = initializer". Equals is present iff
// Initializer is.
type VariableDeclaration struct {
	baseNode
	Metadata    *NodeList[*Annotation]
	Name        *SimpleIdentifier
	Equals      *token.Token
	Initializer Expression
}

func NewVariableDeclaration(metadata []*Annotation, name *SimpleIdentifier, equals *token.Token,
	initializer Expression) *VariableDeclaration {
	n := &VariableDeclaration{Equals: equals}
	n.Metadata = newNodeListOf(n, metadata)
	n.Name = becomeParentOf(n, name)
	n.Initializer = becomeParentOf(n, initializer)
	return n
}

func (n *VariableDeclaration) BeginToken() *token.Token { return beginOf(n) }
func (n *VariableDeclaration) EndToken() *token.Token   { return endOf(n) }
func (n *VariableDeclaration) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Name, n.Equals, n.Initializer)
}
func (n *VariableDeclaration) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariableDeclaration(n)
}
func (n *VariableDeclaration) declarationNode() {}

// VariableDeclarationList is "final int a, b = 2". Keyword is var, final,
// const or nil.
type VariableDeclarationList struct {
	baseNode
	Metadata  *NodeList[*Annotation]
	Keyword   *token.Token
	Type      *TypeName
	Variables *NodeList[*VariableDeclaration]
}

func NewVariableDeclarationList(metadata []*Annotation, keyword *token.Token, typ *TypeName,
	variables []*VariableDeclaration) *VariableDeclarationList {
	n := &VariableDeclarationList{Keyword: keyword}
	n.Metadata = newNodeListOf(n, metadata)
	n.Type = becomeParentOf(n, typ)
	n.Variables = newNodeListOf(n, variables)
	return n
}

func (n *VariableDeclarationList) BeginToken() *token.Token { return beginOf(n) }
func (n *VariableDeclarationList) EndToken() *token.Token   { return endOf(n) }
func (n *VariableDeclarationList) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Keyword, n.Type, n.Variables)
}
func (n *VariableDeclarationList) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariableDeclarationList(n)
}

// IsConst reports whether the variables are declared const.
func (n *VariableDeclarationList) IsConst() bool {
	return n.Keyword != nil && n.Keyword.IsKeyword(token.KwConst)
}

// IsFinal reports whether the variables are declared final.
func (n *VariableDeclarationList) IsFinal() bool {
	return n.Keyword != nil && n.Keyword.IsKeyword(token.KwFinal)
}

// DeclaredIdentifier is the loop variable of a for-in statement.
type DeclaredIdentifier struct {
	baseNode
	Metadata   *NodeList[*Annotation]
	Keyword    *token.Token
	Type       *TypeName
	Identifier *SimpleIdentifier
}

func NewDeclaredIdentifier(metadata []*Annotation, keyword *token.Token, typ *TypeName,
	identifier *SimpleIdentifier) *DeclaredIdentifier {
	n := &DeclaredIdentifier{Keyword: keyword}
	n.Metadata = newNodeListOf(n, metadata)
	n.Type = becomeParentOf(n, typ)
	n.Identifier = becomeParentOf(n, identifier)
	return n
}

func (n *DeclaredIdentifier) BeginToken() *token.Token { return beginOf(n) }
func (n *DeclaredIdentifier) EndToken() *token.Token   { return endOf(n) }
func (n *DeclaredIdentifier) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Keyword, n.Type, n.Identifier)
}
func (n *DeclaredIdentifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitDeclaredIdentifier(n)
}
func (n *DeclaredIdentifier) declarationNode() {}

// ===== Types =====

// TypeName is "Name<Args>".
type TypeName struct {
	baseNode
	Name          Identifier
	TypeArguments *TypeArgumentList
}

func NewTypeName(name Identifier, typeArguments *TypeArgumentList) *TypeName {
	n := &TypeName{}
	n.Name = becomeParentOf(n, name)
	n.TypeArguments = becomeParentOf(n, typeArguments)
	return n
}

func (n *TypeName) BeginToken() *token.Token           { return beginOf(n) }
func (n *TypeName) EndToken() *token.Token             { return endOf(n) }
func (n *TypeName) ChildEntities() []interface{}       { return entities(n.Name, n.TypeArguments) }
func (n *TypeName) Accept(visitor Visitor) interface{} { return visitor.VisitTypeName(n) }

// TypeArgumentList is "<A, B>".
type TypeArgumentList struct {
	baseNode
	LeftBracket  *token.Token
	Arguments    *NodeList[*TypeName]
	RightBracket *token.Token
}

func NewTypeArgumentList(leftBracket *token.Token, arguments []*TypeName, rightBracket *token.Token) *TypeArgumentList {
	n := &TypeArgumentList{LeftBracket: leftBracket, RightBracket: rightBracket}
	n.Arguments = newNodeListOf(n, arguments)
	return n
}

func (n *TypeArgumentList) BeginToken() *token.Token { return n.LeftBracket }
func (n *TypeArgumentList) EndToken() *token.Token   { return n.RightBracket }
func (n *TypeArgumentList) ChildEntities() []interface{} {
	return entities(n.LeftBracket, n.Arguments, n.RightBracket)
}
func (n *TypeArgumentList) Accept(visitor Visitor) interface{} {
	return visitor.VisitTypeArgumentList(n)
}

// TypeParameter is "T extends Bound". ExtendsKeyword is present iff Bound is.
type TypeParameter struct {
	baseNode
	Metadata       *NodeList[*Annotation]
	Name           *SimpleIdentifier
	ExtendsKeyword *token.Token
	Bound          *TypeName
}

func NewTypeParameter(metadata []*Annotation, name *SimpleIdentifier, extendsKeyword *token.Token, bound *TypeName) *TypeParameter {
	n := &TypeParameter{ExtendsKeyword: extendsKeyword}
	n.Metadata = newNodeListOf(n, metadata)
	n.Name = becomeParentOf(n, name)
	n.Bound = becomeParentOf(n, bound)
	return n
}

func (n *TypeParameter) BeginToken() *token.Token { return beginOf(n) }
func (n *TypeParameter) EndToken() *token.Token   { return endOf(n) }
func (n *TypeParameter) ChildEntities() []interface{} {
	return entities(n.Metadata, n.Name, n.ExtendsKeyword, n.Bound)
}
func (n *TypeParameter) Accept(visitor Visitor) interface{} { return visitor.VisitTypeParameter(n) }
func (n *TypeParameter) declarationNode()                   {}

// TypeParameterList is "<T, U extends V>".
type TypeParameterList struct {
	baseNode
	LeftBracket    *token.Token
	TypeParameters *NodeList[*TypeParameter]
	RightBracket   *token.Token
}

func NewTypeParameterList(leftBracket *token.Token, typeParameters []*TypeParameter, rightBracket *token.Token) *TypeParameterList {
	n := &TypeParameterList{LeftBracket: leftBracket, RightBracket: rightBracket}
	n.TypeParameters = newNodeListOf(n, typeParameters)
	return n
}

func (n *TypeParameterList) BeginToken() *token.Token { return n.LeftBracket }
func (n *TypeParameterList) EndToken() *token.Token   { return n.RightBracket }
func (n *TypeParameterList) ChildEntities() []interface{} {
	return entities(n.LeftBracket, n.TypeParameters, n.RightBracket)
}
func (n *TypeParameterList) Accept(visitor Visitor) interface{} {
	return visitor.VisitTypeParameterList(n)
}
